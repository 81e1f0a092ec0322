package farm

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// withRateLimit rejects requests once the token bucket is empty.
// A limit of rate.Inf lets everything through. Rejected requests never reach
// the dispatcher, so their target is logged here.
func withRateLimit(next http.Handler, limit rate.Limit, burst int, logger *log.Logger) http.Handler {
	limiter := rate.NewLimiter(limit, burst)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			logger.Println(requestTarget(r))
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withRequestLog logs one line per request after it has been served.
// The request id is only ever written to the log.
func withRequestLog(next http.Handler, logger *log.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := uuid.NewString()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		logger.Printf("req=%s %s %s %d %dms", id, r.Method, requestTarget(r), sw.status, time.Since(start).Milliseconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(status int) {
	if !w.wroteHeader {
		w.status = status
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(status)
}
