package models

// RouteResponse is the body of a successful /api/route reply.
//
// DistanceM is nil when the destination is unreachable. TimeS is always nil;
// travel time estimation is not implemented but clients expect the key.
type RouteResponse struct {
	Polyline     []LatLng      `json:"polyline"`
	DistanceM    *float64      `json:"distance_m"`
	TimeS        *float64      `json:"time_s"`
	RuntimeMS    float64       `json:"runtime_ms"`
	VisitedNodes int           `json:"visited_nodes"`
	VisitedEdges []VisitedEdge `json:"visited_edges"`
}

// CompareResult summarises one strategy in a comparison run.
type CompareResult struct {
	Algorithm    Algorithm `json:"algo"`
	Name         string    `json:"name"`
	DistanceM    *float64  `json:"distance_m"`
	RuntimeMS    float64   `json:"runtime_ms"`
	VisitedNodes int       `json:"visited_nodes"`
	PathNodes    int       `json:"path_nodes"`
	Optimal      bool      `json:"optimal"`
	Efficiency   string    `json:"efficiency"`
}

// CompareResponse is the body of a /api/compare reply.
type CompareResponse struct {
	Source      LatLng          `json:"src"`
	Destination LatLng          `json:"dst"`
	Results     []CompareResult `json:"results"`
}

// GraphInfo describes the loaded road network.
type GraphInfo struct {
	Nodes  int    `json:"nodes"`
	Edges  int    `json:"edges"`
	Bounds Bounds `json:"bounds"`
}

// ApiError is the body of every error reply.
type ApiError struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
