package models

// LatLng is a coordinate pair in degrees.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// VisitedEdge is one predecessor->node edge of a search trace.
type VisitedEdge struct {
	From LatLng `json:"from"`
	To   LatLng `json:"to"`
}

// Bounds is the coordinate bounding box of a graph.
type Bounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}
