package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/zhenghui88/dtqueue/internal/queue"
	"github.com/zhenghui88/dtqueue/internal/runtime"
	logpkg "github.com/zhenghui88/dtqueue/pkg/log"
)

// ItemsController serves the per-queue item operations.
//
// The whole surface lives on one route shape:
//
//	PUT    /{queue}  enqueue (201 created, 200 replaced)
//	GET    /{queue}  peek the earliest item (200, or 204 when empty)
//	DELETE /{queue}  dequeue the earliest item (200, or 204 when empty)
//
// A queue name that fails validation is 403 for PUT and 400 for GET and
// DELETE.
type ItemsController struct {
	rt     *runtime.Runtime
	logger logpkg.Logger
}

// NewItemsController creates a new items controller.
func NewItemsController(rt *runtime.Runtime, logger logpkg.Logger) *ItemsController {
	if logger == nil {
		logger = logpkg.NewLogger()
	}
	return &ItemsController{rt: rt, logger: logger}
}

// RegisterRoutes registers the catch-all item route. Longer patterns
// (/v1/..., /metrics) win under ServeMux matching, so only unclaimed
// single-segment paths land here.
func (c *ItemsController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", c.handleItem)
}

func (c *ItemsController) handleItem(w http.ResponseWriter, r *http.Request) {
	name := strings.Trim(r.URL.Path, "/")
	if name == "" || strings.ContainsRune(name, '/') {
		writeError(w, r, http.StatusNotFound, codeBadRequest, "no such route")
		return
	}
	switch r.Method {
	case http.MethodPut:
		c.handleEnqueue(w, r, name)
	case http.MethodGet:
		c.handleTake(w, r, name, false)
	case http.MethodDelete:
		c.handleTake(w, r, name, true)
	default:
		writeError(w, r, http.StatusMethodNotAllowed, codeBadRequest, "method not allowed")
	}
}

// handleEnqueue stores the item from the request body.
//
// PUT /{queue} with {"datetime": RFC3339, "datetime_secondary"?: RFC3339,
// "message"?: string}
func (c *ItemsController) handleEnqueue(w http.ResponseWriter, r *http.Request, name string) {
	h, err := c.rt.Engine().Resolve(name)
	if err != nil {
		writeError(w, r, http.StatusForbidden, codeInvalidQueueName, err.Error())
		return
	}
	var it queue.Item
	if err := json.NewDecoder(r.Body).Decode(&it); err != nil {
		writeError(w, r, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}
	out, err := c.rt.Engine().Enqueue(r.Context(), h, it)
	if err != nil {
		c.serverError(w, r, "enqueue", err)
		return
	}
	if out == queue.OutcomeReplaced {
		w.WriteHeader(http.StatusOK)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// handleTake reads the earliest item, removing it when remove is set.
//
// GET /{queue} peeks; DELETE /{queue} dequeues.
func (c *ItemsController) handleTake(w http.ResponseWriter, r *http.Request, name string, remove bool) {
	h, err := c.rt.Engine().Resolve(name)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, codeInvalidQueueName, err.Error())
		return
	}
	var (
		it queue.Item
		ok bool
	)
	op := "peek"
	if remove {
		op = "dequeue"
		it, ok, err = c.rt.Engine().Dequeue(r.Context(), h)
	} else {
		it, ok, err = c.rt.Engine().Peek(r.Context(), h)
	}
	if err != nil {
		c.serverError(w, r, op, err)
		return
	}
	if !ok {
		writeNoContent(w)
		return
	}
	writeBody(w, r, http.StatusOK, it)
}

func (c *ItemsController) serverError(w http.ResponseWriter, r *http.Request, op string, err error) {
	c.logger.Error("request failed",
		logpkg.Str("op", op),
		logpkg.Str("path", r.URL.Path),
		logpkg.Str("requestId", w.Header().Get("X-Request-Id")),
		logpkg.Err(err))
	writeError(w, r, http.StatusInternalServerError, codeInternalError, "internal error")
}
