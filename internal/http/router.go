// Package httpapi wires the HTTP transport (Gin) to the feed's services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging, panic recovery, metrics, compression,
// rate limiting, CORS and security headers.
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/tbourn/bhakti-feed/internal/app"
	"github.com/tbourn/bhakti-feed/internal/config"
	"github.com/tbourn/bhakti-feed/internal/http/handlers"
	"github.com/tbourn/bhakti-feed/internal/http/middleware"
)

// maxBodyBytes caps request bodies; the largest payload is an assistant
// question with a few turns of history.
const maxBodyBytes = 1 << 20

var corsAllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.DeviceIDHeader}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine and mounts the API under cfg.APIBasePath.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured access logs with a request-scoped logger
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics
//  7. Rate limiter (per device/IP; health checks exempt)
//  8. CORS, security headers and compression
func RegisterRoutes(r *gin.Engine, a *app.App, cfg config.Config) {
	r.HandleMethodNotAllowed = true
	apiBase := cfg.APIBasePath

	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(a.Log))
	r.Use(middleware.Recovery())
	r.Use(limitBody(maxBodyBytes))

	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByDeviceOrIP()).
		Exempt("/health", "/metrics", "/swagger")
	r.Use(rl.Handler())

	r.Use(corsMiddleware(cfg.CORS.AllowedOrigins)...)

	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS: cfg.Security.EnableHSTS,
		HSTSMaxAge: cfg.Security.HSTSMaxAge,
		NoStorePrefixes: []string{
			joinPath(apiBase, "/assistant"),
			joinPath(apiBase, "/engagement"),
			joinPath(apiBase, "/refresh"),
			joinPath(apiBase, "/cache"),
		},
		EnablePolicy: true,
	}))

	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	h := handlers.New(handlers.Services{
		Recommendations: a.Recommendations,
		Spiritual:       a.Spiritual,
		Panchangam:      a.Panchangam,
		Trending:        a.Trending,
		Assistant:       a.Assistant,
		Refresher:       a,
	}, a.Profile)

	api := groupWithPrefix(r, apiBase)
	{
		// Content
		api.GET("/recommendations/:kind", h.Recommendations)
		api.GET("/trending", h.Trending)
		api.POST("/engagement", h.RecordEngagement)

		// Daily
		api.GET("/daily/bhajan", h.DailyBhajan)
		api.GET("/daily/temple", h.TempleOfTheDay)
		api.GET("/daily/message", h.DailyMessage)
		api.GET("/daily/quote", h.DailyQuote)
		api.GET("/daily/gita", h.DailyGita)
		api.GET("/horoscope/weekly", h.WeeklyHoroscope)
		api.GET("/quotes", h.Quotes)

		// Calendar and meditation
		api.GET("/panchangam/today", h.Panchangam)
		api.GET("/meditation/plan", h.MeditationPlan)

		// Assistant
		api.POST("/assistant/chat", h.AssistantChat)
		api.POST("/assistant/guidance", h.AssistantGuidance)
		api.GET("/mantra", h.Mantra)

		// Admin
		api.POST("/refresh", h.Refresh)
		api.POST("/cache/sweep", h.SweepCache)
	}
}

// corsMiddleware allows every origin when none are configured, otherwise
// echoes allow-listed origins.
func corsMiddleware(origins []string) []gin.HandlerFunc {
	base := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     corsAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "Content-Length", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}

	if len(origins) == 0 {
		base.AllowAllOrigins = true
		return []gin.HandlerFunc{
			// ACAO: * even without an Origin header, for health checks and curl
			func(c *gin.Context) {
				c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
				c.Next()
			},
			cors.New(base),
		}
	}

	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[o] = struct{}{}
	}
	base.AllowOrigins = origins
	return []gin.HandlerFunc{
		func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		},
		cors.New(base),
	}
}

// limitBody caps the request body at maxBytes; larger bodies fail to read.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}

func joinPath(base, p string) string {
	if base == "" || base == "/" {
		return p
	}
	return base + p
}
