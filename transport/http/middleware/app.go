package middleware

import (
	"context"
	"fmt"
	"net/http"
	"resort/config"
	"resort/infras/otel"
	"resort/shared/cache"
	"resort/shared/constant"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

const otelHTTPScopeName = "http"

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	RateLimit() func(http.Handler) http.Handler
	CacheControl(next http.Handler) http.Handler
}

type appMiddleware struct {
	otel    otel.Otel
	config  *config.Config
	cache   cache.RedisCache
	metrics *HTTPMetrics
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache, metrics *HTTPMetrics) AppMiddleware {
	return &appMiddleware{
		otel:    otel,
		config:  config,
		cache:   cache,
		metrics: metrics,
	}
}

// Tracing opens the request span and records request metrics once the route is resolved.
func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()

		ctx, scope := a.otel.NewScope(r.Context(), otelHTTPScopeName, fmt.Sprintf("%s %s", r.Method, r.URL.Path))
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       r.URL.Path,
			"http.method":     r.Method,
			"http.user_agent": userAgent(r),
			"http.host":       r.Host,
			"http.source":     clientIP(r),
		})

		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r.WithContext(ctx))

		route := servedRoute(r)
		status := ww.Status()

		scope.SetAttribute("http.route", route)
		scope.SetAttribute("http.status_code", status)

		if a.metrics != nil {
			a.metrics.Requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
			a.metrics.Duration.WithLabelValues(r.Method, route).Observe(time.Since(started).Seconds())
		}
	})
}

// CacheControl honours "Cache-Control: no-cache" by flagging the request so services skip redis reads.
func (a *appMiddleware) CacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		directive := strings.ToLower(r.Header.Get(constant.RequestHeaderCacheControl))
		if !strings.Contains(directive, constant.CacheControlNoCache) {
			next.ServeHTTP(w, r)

			return
		}

		ctx := context.WithValue(r.Context(), constant.ContextKeyCacheBypass, true)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// servedRoute reports the pattern chi matched. Unmatched paths share one label.
func servedRoute(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != constant.Empty {
			return pattern
		}
	}

	return "unmatched"
}
