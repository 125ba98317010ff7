package web

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/junaway/serverless-stack/pkg/metrics"
)

const (
	alwaysSample = 1

	metricCountPrefix    = "stack.api.count."
	metricDurationPrefix = "stack.api.duration."
	metricSuccessPrefix  = "stack.api.success."
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// MetricsMiddleware emits a count, a timing, and a success gauge per request,
// keyed by the route name.
func MetricsMiddleware(statter metrics.Statter) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			name := "Unknown"
			if route := mux.CurrentRoute(r); route != nil && route.GetName() != "" {
				name = route.GetName()
			}

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			start := time.Now()
			next.ServeHTTP(recorder, r)
			duration := time.Since(start)

			_ = statter.Inc(metricCountPrefix+name, 1, alwaysSample)
			_ = statter.TimingDuration(metricDurationPrefix+name, duration, alwaysSample)

			var success int64
			if recorder.status < http.StatusInternalServerError {
				success = 1
			}
			_ = statter.Gauge(metricSuccessPrefix+name, success, alwaysSample)
		})
	}
}
