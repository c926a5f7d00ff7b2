package controllers

import (
	"net/http"

	"github.com/zhenghui88/dtqueue/internal/runtime"
	logpkg "github.com/zhenghui88/dtqueue/pkg/log"
)

// ControllerRegistry manages all HTTP controllers.
//
// It provides a centralized way to register all controller routes.
type ControllerRegistry struct {
	general *GeneralController
	items   *ItemsController
}

// NewControllerRegistry creates a new controller registry.
func NewControllerRegistry(rt *runtime.Runtime, logger logpkg.Logger) *ControllerRegistry {
	return &ControllerRegistry{
		general: NewGeneralController(rt),
		items:   NewItemsController(rt, logger),
	}
}

// RegisterAllRoutes registers all controller routes with the given mux.
//
// General endpoints (health, queue listing) claim their /v1 paths first;
// the items controller takes the catch-all so any remaining single-segment
// path is treated as a queue name.
func (r *ControllerRegistry) RegisterAllRoutes(mux *http.ServeMux) {
	r.general.RegisterRoutes(mux)
	r.items.RegisterRoutes(mux)
}
