package models

// RouteRequest is a parsed /api/route query.
type RouteRequest struct {
	Source      LatLng    `json:"src"`
	Destination LatLng    `json:"dst"`
	Algorithm   Algorithm `json:"algo"`
}

// CompareRequest is a parsed /api/compare query.
type CompareRequest struct {
	Source      LatLng `json:"src"`
	Destination LatLng `json:"dst"`
}
