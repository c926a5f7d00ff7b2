package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestEngineHookCountsOutcomes(t *testing.T) {
	c := opTotal.WithLabelValues("enqueue", "created")
	before := testutil.ToFloat64(c)

	EngineHook{}.ObserveOp("enqueue", "created", 3*time.Millisecond)
	EngineHook{}.ObserveOp("enqueue", "created", 1*time.Millisecond)

	if got := testutil.ToFloat64(c) - before; got != 2 {
		t.Fatalf("counted %v observations, want 2", got)
	}
}

func TestStoreHookAccumulatesBytes(t *testing.T) {
	c := storageBytes.WithLabelValues("commit")
	before := testutil.ToFloat64(c)

	StoreHook{}.ObserveBatchCommit(time.Millisecond, 3, 128)

	if got := testutil.ToFloat64(c) - before; got != 128 {
		t.Fatalf("commit bytes delta = %v, want 128", got)
	}
}

func TestHandlerCountsStatusCodes(t *testing.T) {
	c := httpRequests.WithLabelValues("204", "get")
	before := testutil.ToFloat64(c)

	h := Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/default", nil))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := testutil.ToFloat64(c) - before; got != 1 {
		t.Fatalf("request counter delta = %v, want 1", got)
	}
}

func TestEndpointExposesSeries(t *testing.T) {
	EngineHook{}.ObserveOp("peek", "empty", time.Millisecond)

	rec := httptest.NewRecorder()
	Endpoint().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Result().Body)
	if !strings.Contains(string(body), "dtqueue_ops_total") {
		t.Fatal("exposition is missing dtqueue_ops_total")
	}
}
