package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics agrupa os coletores Prometheus da aplicação
type Metrics struct {
	HTTPRequestTotal    *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	VendorRequestTotal    *prometheus.CounterVec
	VendorRequestDuration *prometheus.HistogramVec

	PublishTotal *prometheus.CounterVec

	AdMetricsFetchTotal *prometheus.CounterVec

	AttributionTotal *prometheus.CounterVec
}

var (
	globalMetrics *Metrics
	metricsMutex  sync.Mutex
)

// Get retorna a instância única, registrando os coletores na primeira chamada
func Get() *Metrics {
	metricsMutex.Lock()
	defer metricsMutex.Unlock()

	if globalMetrics != nil {
		return globalMetrics
	}

	m := &Metrics{
		HTTPRequestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total de requisições HTTP recebidas",
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duração das requisições HTTP em segundos",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),

		VendorRequestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vendor_requests_total",
			Help: "Total de chamadas às APIs das plataformas",
		}, []string{"vendor", "status"}),

		VendorRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vendor_request_duration_seconds",
			Help:    "Duração das chamadas às APIs das plataformas em segundos",
			Buckets: prometheus.DefBuckets,
		}, []string{"vendor"}),

		PublishTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "social_publish_total",
			Help: "Total de tentativas de publicação por plataforma e resultado",
		}, []string{"platform", "outcome"}),

		AdMetricsFetchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ad_metrics_fetch_total",
			Help: "Total de consultas de métricas de anúncios por plataforma e resultado",
		}, []string{"platform", "outcome"}),

		AttributionTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "social_attribution_events_total",
			Help: "Total de eventos de atribuição de tráfego social",
		}, []string{"platform", "outcome"}),
	}

	m.HTTPRequestTotal = registerOrGet(m.HTTPRequestTotal).(*prometheus.CounterVec)
	m.HTTPRequestDuration = registerOrGet(m.HTTPRequestDuration).(*prometheus.HistogramVec)
	m.VendorRequestTotal = registerOrGet(m.VendorRequestTotal).(*prometheus.CounterVec)
	m.VendorRequestDuration = registerOrGet(m.VendorRequestDuration).(*prometheus.HistogramVec)
	m.PublishTotal = registerOrGet(m.PublishTotal).(*prometheus.CounterVec)
	m.AdMetricsFetchTotal = registerOrGet(m.AdMetricsFetchTotal).(*prometheus.CounterVec)
	m.AttributionTotal = registerOrGet(m.AttributionTotal).(*prometheus.CounterVec)

	globalMetrics = m

	return m
}

// registerOrGet registra o coletor ou devolve o já registrado
func registerOrGet(c prometheus.Collector) prometheus.Collector {
	if err := prometheus.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector
		}
	}
	return c
}

// Outcome converte um booleano de sucesso no rótulo usado nos contadores
func Outcome(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}

// StatusClass agrupa códigos HTTP em 2xx, 4xx, 5xx ou "error" para falhas de transporte
func StatusClass(status int) string {
	if status <= 0 {
		return "error"
	}
	return strconv.Itoa(status/100) + "xx"
}
