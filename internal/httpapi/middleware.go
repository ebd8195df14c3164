package httpapi

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// RequestLogging tags every request with a generated id, echoes it back in
// the X-Request-Id header and logs the request line with its duration.
func RequestLogging(logger *log.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)

		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Printf("%s %s %s %s", requestID, r.Method, r.URL.RequestURI(), time.Since(start))
	})
}
