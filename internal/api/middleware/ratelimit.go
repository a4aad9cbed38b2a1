package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/m04kA/MediCare-Portal/internal/api/handlers"
)

const msgRateLimited = "too many attempts, try again later"

// RateLimiter ограничивает частоту запросов с одного IP
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
	logger   Logger
}

// NewRateLimiter perMinute запросов в минуту с запасом burst на каждый IP.
// perMinute <= 0 - без ограничений. burst меньше 1 поднимается до 1.
func NewRateLimiter(perMinute, burst int, logger Logger) *RateLimiter {
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(perMinute))
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    burst,
		logger:   logger,
	}
}

// getLimiter возвращает limiter для IP, создавая его при первом запросе
func (l *RateLimiter) getLimiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[ip]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[ip] = limiter
	}
	return limiter
}

// Middleware отвечает 429, если лимит исчерпан
func (l *RateLimiter) Middleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			if !l.getLimiter(ip).Allow() {
				l.logger.Warn("RateLimiter: limit exceeded for ip=%s on %s", ip, r.URL.Path)
				w.Header().Set("Retry-After", "60")
				handlers.RespondError(w, http.StatusTooManyRequests, msgRateLimited)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
