package controllers

import (
	"net/http"

	"github.com/zhenghui88/dtqueue/internal/runtime"
)

// GeneralController handles endpoints that are not tied to a single
// queue: health checks and the queue listing.
type GeneralController struct {
	rt *runtime.Runtime
}

// NewGeneralController creates a new general controller.
func NewGeneralController(rt *runtime.Runtime) *GeneralController {
	return &GeneralController{rt: rt}
}

// RegisterRoutes registers general routes with the given mux.
func (c *GeneralController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/healthz", c.handleHealth)
	mux.HandleFunc("/v1/queues", c.handleListQueues)
}

// handleHealth returns the health status of the service.
//
// Returns 200 OK with {"status": "ok"} if the storage probe passes,
// 503 Service Unavailable otherwise.
func (c *GeneralController) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, codeBadRequest, "method not allowed")
		return
	}
	if err := c.rt.CheckHealth(r.Context()); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, codeInternalError, "not_serving")
		return
	}
	writeJSON(w, map[string]string{"status": "ok"})
}

// handleListQueues lists the configured queues with depth and byte size.
//
// GET /v1/queues
func (c *GeneralController) handleListQueues(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, codeBadRequest, "method not allowed")
		return
	}
	stats, err := c.rt.Engine().StatsAll(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, codeInternalError, "failed to list queues")
		return
	}
	writeJSON(w, map[string]any{"queues": stats})
}
