package http

import (
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"

	"loan-amortizer/logging"
)

// RateLimitMiddleware answers 429 with Retry-After once a client IP spends its window.
func RateLimitMiddleware(
	limiter *RateLimiter,
	logger *slog.Logger,
	next http.Handler,
) http.Handler {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		ip := clientIP(r)

		allowed, retryAfter := limiter.Allow(ip)
		if !allowed {
			logger.Warn("rate limit exceeded",
				logging.FieldClientIP, ip,
				logging.FieldRequestID, RequestIDFromContext(r.Context()),
			)
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
