// Package httpserver provides the REST surface of dtqueue: the per-queue
// item routes, health and queue-listing endpoints, and the Prometheus
// exposition, behind request-id, access-log, and metrics middleware.
//
// Example:
//
//	rt, _ := runtime.Open(runtime.Options{Config: cfg})
//	s := httpserver.New(rt, logger)
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//	_ = s.ListenAndServe(ctx, cfg.HTTPAddr())
package httpserver
