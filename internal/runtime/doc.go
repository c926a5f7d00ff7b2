// Package runtime wires storage, the queue registry, and the engine into
// a single-node dtqueue instance. It exposes Open/Close, a basic health
// check, and accessors used by the HTTP layer.
//
// Example:
//
//	cfg := config.Default()
//	cfg.DataDir = "./data"
//	rt, _ := runtime.Open(runtime.Options{Config: cfg})
//	defer rt.Close()
//	_ = rt.CheckHealth(context.Background())
//	h, _ := rt.Engine().Resolve("default")
//	_, _ = rt.Engine().Enqueue(context.Background(), h, item)
package runtime
