package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Cleawwy/Project-Omega/apperrors"
	"github.com/Cleawwy/Project-Omega/models"
)

// GraphInfoProvider reports the loaded graph.
type GraphInfoProvider interface {
	Info() models.GraphInfo
}

// AdminHandler serves liveness, readiness and graph diagnostics on the
// internal listener.
type AdminHandler struct {
	graph GraphInfoProvider
}

func NewAdminHandler(graph GraphInfoProvider) *AdminHandler {
	return &AdminHandler{
		graph: graph,
	}
}

func (h *AdminHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/healthz", h.Healthz).Methods("GET")
	router.HandleFunc("/readyz", h.Readyz).Methods("GET")
	router.HandleFunc("/debug/graph", h.DebugGraph).Methods("GET")
}

// NewAdminRouter returns a mux router with the admin routes registered.
func NewAdminRouter(h *AdminHandler) *mux.Router {
	router := mux.NewRouter()
	h.RegisterRoutes(router)
	return router
}

func (h *AdminHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
	})
}

// Readyz reports ready once a non-empty graph is loaded.
func (h *AdminHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	if h.graph == nil || h.graph.Info().Nodes == 0 {
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status": "graph not loaded",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ready",
	})
}

func (h *AdminHandler) DebugGraph(w http.ResponseWriter, r *http.Request) {
	if h.graph == nil {
		writeJSON(w, http.StatusServiceUnavailable, models.ApiError{
			Error: "graph not loaded",
			Code:  string(apperrors.ErrCodeUnavailable),
		})
		return
	}
	writeJSON(w, http.StatusOK, h.graph.Info())
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
