package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type recordedRequest struct {
	method     string
	statusCode int
}

type stubRecorder struct {
	requests []recordedRequest
}

func (s *stubRecorder) RecordRequest(method string, statusCode int, _ time.Duration) {
	s.requests = append(s.requests, recordedRequest{method: method, statusCode: statusCode})
}

func TestMetrics_RecordsStatusAndMethod(t *testing.T) {
	rec := &stubRecorder{}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})

	Metrics(rec)(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/products", nil))

	if len(rec.requests) != 1 {
		t.Fatalf("recorded requests = %d, want 1", len(rec.requests))
	}
	if rec.requests[0].method != http.MethodPost || rec.requests[0].statusCode != http.StatusConflict {
		t.Fatalf("recorded %+v, want POST/409", rec.requests[0])
	}
}

func TestMetrics_DefaultsToOK(t *testing.T) {
	rec := &stubRecorder{}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	Metrics(rec)(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.requests[0].statusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.requests[0].statusCode)
	}
}
