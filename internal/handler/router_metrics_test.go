package handler

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mmeshcher/blueprint-system/internal/metrics"
)

// Prometheus по умолчанию шлёт Accept-Encoding: gzip, поэтому /metrics
// проверяется через полную цепочку middleware: тело должно быть сжато
// ровно один раз.
func TestRouter_MetricsWithGzipAcceptEncoding(t *testing.T) {
	collector := metrics.NewCollector()
	h := newTestHandler(t, &stubAuth{}, &stubProducts{})
	router := h.SetupRouter(collector)

	// Пара запросов, чтобы счётчикам было что показать.
	warmup := httptest.NewRequest(http.MethodGet, "/products", nil)
	router.ServeHTTP(httptest.NewRecorder(), warmup)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	res := rec.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", res.StatusCode)
	}
	if ce := res.Header.Get("Content-Encoding"); ce != "gzip" {
		t.Fatalf("content-encoding = %q, want gzip", ce)
	}

	gr, err := gzip.NewReader(res.Body)
	if err != nil {
		t.Fatalf("new gzip reader: %v", err)
	}
	defer gr.Close()

	body, err := io.ReadAll(gr)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	// После одного слоя распаковки должен быть текстовый формат
	// Prometheus, а не вложенный gzip-поток.
	if len(body) >= 2 && body[0] == 0x1f && body[1] == 0x8b {
		t.Fatalf("body is double-gzipped")
	}
	if !strings.Contains(string(body), "blueprint_http_requests_total") {
		t.Fatalf("metrics payload missing requests counter:\n%s", string(body))
	}
}
