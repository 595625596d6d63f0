// Package metrics реализует сбор и публикацию метрик Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector собирает метрики HTTP-слоя сервиса blueprint.
type Collector struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration prometheus.Histogram
}

// NewCollector создаёт коллектор и регистрирует метрики в собственном реестре.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "blueprint_http_requests_total",
			Help: "Количество HTTP-ответов по кодам статуса",
		}, []string{"status_code", "method"}),
		requestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "blueprint_http_request_duration_seconds",
			Help:    "Длительность обработки HTTP-запросов в секундах",
			Buckets: prometheus.DefBuckets,
		}),
	}

	c.registry.MustRegister(c.requestsTotal, c.requestDuration)
	return c
}

// RecordRequest учитывает завершённый HTTP-запрос.
func (c *Collector) RecordRequest(method string, statusCode int, duration time.Duration) {
	c.requestsTotal.WithLabelValues(strconv.Itoa(statusCode), method).Inc()
	c.requestDuration.Observe(duration.Seconds())
}

// Handler возвращает HTTP-обработчик эндпоинта /metrics.
// Собственное сжатие promhttp отключено: ответ сжимает общий
// gzip middleware, иначе тело оказывается сжатым дважды.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{
		DisableCompression: true,
	})
}
