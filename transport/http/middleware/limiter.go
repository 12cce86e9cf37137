package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pms/shared"
	"pms/shared/constant"
	"pms/transport/http/response"

	"github.com/rs/zerolog/log"
)

const cacheKeyRateLimit = "limiter"

// RateLimit counts requests per client in a fixed redis window. Cache failures let the request through.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	settings := a.config.App.RateLimiter
	window := time.Duration(settings.WindowSeconds) * time.Second

	return func(next http.Handler) http.Handler {
		if !settings.Enable || settings.MaxRequests <= 0 || window <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := shared.BuildCacheKey(cacheKeyRateLimit, clientIP(r), userAgent(r))

			count, ttl, err := a.cache.Increment(r.Context(), key, window)
			if err != nil {
				log.Warn().Err(err).Msg("rate limiter cache unavailable")
				next.ServeHTTP(w, r)

				return
			}

			limit := int64(settings.MaxRequests)
			header := w.Header()
			header.Set(constant.RequestHeaderRateLimit, strconv.FormatInt(limit, 10))
			header.Set(constant.RequestHeaderRateLimitRemaining, strconv.FormatInt(max(0, limit-count), 10))
			header.Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(settings.WindowSeconds))

			if count > limit {
				header.Set("Retry-After", strconv.Itoa(int(math.Ceil(ttl.Seconds()))))
				response.WithRequestLimitExceeded(w)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func userAgent(r *http.Request) string {
	if ua := r.Header.Get(constant.RequestHeaderUserAgent); ua != "" {
		return ua
	}

	return "unknown"
}

// clientIP prefers proxy headers and falls back to the peer address without its port.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get(constant.RequestHeaderForwardedFor); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")

		return strings.TrimSpace(first)
	}

	if realIP := strings.TrimSpace(r.Header.Get(constant.RequestHeaderRealIP)); realIP != "" {
		return realIP
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}

	return r.RemoteAddr
}
