package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/social-media-os-api/pkg/metrics"
)

// Metrics conta requisições e latência por rota. O rótulo é o padrão da rota
// ("/v1/cron/:type/run"), nunca o caminho recebido.
func Metrics(route string) func(http.Handler) http.Handler {
	m := metrics.Get()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recorder := newStatusRecorder(w)
			startTime := time.Now()

			next.ServeHTTP(recorder, r)

			m.HTTPRequestTotal.WithLabelValues(r.Method, route, strconv.Itoa(recorder.statusCode)).Inc()
			m.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(startTime).Seconds())
		})
	}
}
