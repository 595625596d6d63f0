package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestCollector_ExposesRecordedRequests(t *testing.T) {
	c := NewCollector()

	c.RecordRequest(http.MethodGet, http.StatusOK, 10*time.Millisecond)
	c.RecordRequest(http.MethodPost, http.StatusConflict, 5*time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()

	c.Handler().ServeHTTP(rec, req)

	res := rec.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	out := string(body)
	if !strings.Contains(out, "blueprint_http_requests_total") {
		t.Fatalf("metrics output missing requests counter:\n%s", out)
	}
	if !strings.Contains(out, `status_code="409"`) {
		t.Fatalf("metrics output missing 409 label:\n%s", out)
	}
}
