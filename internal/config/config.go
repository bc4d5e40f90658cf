// Package config provides application configuration loaded from environment
// variables with defaults and validation. It centralizes server timeouts,
// logging, storage backends, the text generator client, background refresh
// schedules, rate limiting, and observability.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // APP_TIMEZONE must resolve on hosts without zoneinfo

	"github.com/tbourn/bhakti-feed/internal/sysutil"
)

// CORSConfig defines Cross-Origin Resource Sharing settings.
type CORSConfig struct {
	AllowedOrigins []string
}

// SecurityConfig defines security-related settings such as HSTS.
type SecurityConfig struct {
	EnableHSTS bool
	HSTSMaxAge time.Duration
}

// OTELConfig defines OpenTelemetry observability settings.
type OTELConfig struct {
	Enabled     bool    // OTEL_ENABLED
	Endpoint    string  // OTEL_EXPORTER_OTLP_ENDPOINT (e.g. "otel:4317")
	Insecure    bool    // OTEL_EXPORTER_OTLP_INSECURE (true if no TLS)
	ServiceName string  // OTEL_SERVICE_NAME (e.g. "bhakti-feed")
	SampleRatio float64 // OTEL_TRACES_SAMPLER_ARG in [0..1]
}

// CacheConfig selects the key/value backend used by the cache and
// engagement stores and the recommendation list validity window.
type CacheConfig struct {
	Backend           string        // sqlite|badger
	BadgerPath        string        // directory for badger files
	RecommendationTTL time.Duration // list cache validity for posts/reels/music
}

// AIConfig configures the remote text generator.
type AIConfig struct {
	Enabled          bool
	Endpoint         string // chat completions URL
	APIKey           string
	Model            string
	Timeout          time.Duration // per request
	MaxTokens        int
	Temperature      float64
	RateRPS          float64 // client-side request budget
	RateBurst        int
	BreakerFailures  uint32        // consecutive failures before the breaker opens
	BreakerOpenFor   time.Duration // how long the breaker stays open
	BreakerHalfOpen  uint32        // requests allowed while half-open
}

// RefreshConfig configures the background refresh scheduler. Specs use the
// robfig/cron syntax, including descriptors such as "@hourly" and "@every 6h".
type RefreshConfig struct {
	Enabled         bool
	DailySpec       string
	WeeklySpec      string
	Recommendations string
}

// ProfileConfig is the user context used by scheduled refreshes when no
// request supplies one.
type ProfileConfig struct {
	Region     string
	Language   string
	Deity      string
	ZodiacSign string
}

// Config holds all configuration values for the application.
type Config struct {
	// Server
	Port              string        // just the number
	ReadTimeout       time.Duration // e.g. 15s
	ReadHeaderTimeout time.Duration // e.g. 10s
	WriteTimeout      time.Duration // e.g. 20s
	IdleTimeout       time.Duration // e.g. 60s
	MaxHeaderBytes    int           // bytes
	GinMode           string        // debug|release|test

	// Logging / Docs
	LogLevel       string // debug|info|warn|error|fatal|panic
	LogPretty      bool   // pretty console logs in dev
	SwaggerEnabled bool   // enable Swagger UI route
	APIBasePath    string // base path for API routes

	// Storage
	// Calendar. Day and week rollover, the Gita/quote rotation and the
	// morning/evening music bonus follow Location, not the host clock.
	Timezone string         // IANA name, e.g. Asia/Kolkata
	Location *time.Location // resolved from Timezone by Load

	DBPath       string        // SQLite path
	RepoTimeout  time.Duration // bound on a single content repository query
	SeedFallback bool          // insert the built-in dataset into empty tables at boot

	Cache   CacheConfig
	AI      AIConfig
	Refresh RefreshConfig
	Profile ProfileConfig

	// Rate limiting
	RateRPS   float64 // tokens per second (>= 0)
	RateBurst int     // bucket size (>= 1)

	// Web protection
	CORS     CORSConfig
	Security SecurityConfig

	// Observability
	OTEL OTELConfig
}

// MustLoad loads the configuration and panics if validation fails.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads configuration from environment variables,
// applies defaults, normalizes values, and validates the result.
func Load() (Config, error) {
	cfg := Config{
		// Server
		Port:              getenv("PORT", "8080"),
		ReadTimeout:       getdur("READ_TIMEOUT", 15*time.Second),
		ReadHeaderTimeout: getdur("READ_HEADER_TIMEOUT", 10*time.Second),
		WriteTimeout:      getdur("WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:       getdur("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes:    getint("MAX_HEADER_BYTES", 1<<20),
		GinMode:           strings.ToLower(getenv("GIN_MODE", "release")),

		// Logging / Docs
		LogLevel:       strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogPretty:      getbool("LOG_PRETTY", false),
		SwaggerEnabled: getbool("SWAGGER_ENABLED", false),
		APIBasePath:    normalizeBasePath(getenv("API_BASE_PATH", "/api/v1")),

		Timezone: strings.TrimSpace(getenv("APP_TIMEZONE", "Asia/Kolkata")),

		// Storage
		DBPath:       getenv("DB_PATH", "bhakti.db"),
		RepoTimeout:  getdur("REPO_TIMEOUT", 5*time.Second),
		SeedFallback: getbool("SEED_FALLBACK", false),

		Cache: CacheConfig{
			Backend:           strings.ToLower(getenv("CACHE_BACKEND", "sqlite")),
			BadgerPath:        getenv("BADGER_PATH", "data/cache"),
			RecommendationTTL: getdur("RECOMMENDATION_TTL", 6*time.Hour),
		},

		AI: AIConfig{
			Enabled:          getbool("AI_ENABLED", false),
			Endpoint:         getenv("AI_ENDPOINT", "https://ai.gateway.lovable.dev/v1/chat/completions"),
			APIKey:           getenv("AI_API_KEY", ""),
			Model:            getenv("AI_MODEL", "google/gemini-2.5-flash"),
			Timeout:          getdur("AI_TIMEOUT", 15*time.Second),
			MaxTokens:        getint("AI_MAX_TOKENS", 500),
			Temperature:      getfloat("AI_TEMPERATURE", 0.7),
			RateRPS:          getfloat("AI_RATE_RPS", 2.0),
			RateBurst:        getint("AI_RATE_BURST", 4),
			BreakerFailures:  uint32(getint("AI_BREAKER_FAILURES", 5)),
			BreakerOpenFor:   getdur("AI_BREAKER_TIMEOUT", 60*time.Second),
			BreakerHalfOpen:  uint32(getint("AI_BREAKER_HALF_OPEN", 1)),
		},

		Refresh: RefreshConfig{
			Enabled:         getbool("REFRESH_ENABLED", true),
			DailySpec:       getenv("REFRESH_DAILY_SPEC", "@hourly"),
			WeeklySpec:      getenv("REFRESH_WEEKLY_SPEC", "@every 6h"),
			Recommendations: getenv("REFRESH_RECS_SPEC", "@every 6h"),
		},

		Profile: ProfileConfig{
			Region:     strings.ToLower(getenv("DEFAULT_REGION", "other")),
			Language:   strings.ToLower(getenv("DEFAULT_LANGUAGE", "other")),
			Deity:      strings.ToLower(getenv("DEFAULT_DEITY", "other")),
			ZodiacSign: strings.ToLower(getenv("DEFAULT_ZODIAC", "leo")),
		},

		// Rate limiting
		RateRPS:   getfloat("RATE_RPS", 10.0),
		RateBurst: getint("RATE_BURST", 20),

		// Web protection
		CORS: CORSConfig{
			AllowedOrigins: splitCSV(getenv("CORS_ALLOWED_ORIGINS", "")),
		},
		Security: SecurityConfig{
			EnableHSTS: getbool("ENABLE_HSTS", false),
			HSTSMaxAge: getdur("HSTS_MAX_AGE", 180*24*time.Hour),
		},

		// Observability (OpenTelemetry)
		OTEL: OTELConfig{
			Enabled:     getbool("OTEL_ENABLED", false),
			Endpoint:    getenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			Insecure:    getbool("OTEL_EXPORTER_OTLP_INSECURE", true),
			ServiceName: getenv("OTEL_SERVICE_NAME", "bhakti-feed"),
			SampleRatio: getfloat("OTEL_TRACES_SAMPLER_ARG", 1.0),
		},
	}

	// --- normalization ---
	if cfg.LogLevel == "warning" {
		cfg.LogLevel = "warn"
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		cfg.GinMode = "release"
	}
	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = "sqlite"
	}
	// Without a key there is nothing to call.
	if strings.TrimSpace(cfg.AI.APIKey) == "" {
		cfg.AI.Enabled = false
	}

	// --- validation ---
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error", "fatal", "panic":
	default:
		return cfg, errors.New("LOG_LEVEL must be one of: debug, info, warn, error, fatal, panic")
	}
	if strings.TrimSpace(cfg.Port) == "" {
		return cfg, errors.New("PORT must not be empty")
	}
	if cfg.ReadTimeout <= 0 || cfg.ReadHeaderTimeout <= 0 || cfg.WriteTimeout <= 0 || cfg.IdleTimeout <= 0 {
		return cfg, errors.New("timeouts must be positive durations")
	}
	if cfg.MaxHeaderBytes <= 0 {
		return cfg, errors.New("MAX_HEADER_BYTES must be > 0")
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return cfg, fmt.Errorf("APP_TIMEZONE %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc
	if strings.TrimSpace(cfg.DBPath) == "" {
		return cfg, errors.New("DB_PATH must not be empty")
	}
	if cfg.RepoTimeout <= 0 {
		return cfg, errors.New("REPO_TIMEOUT must be > 0")
	}
	switch cfg.Cache.Backend {
	case "sqlite":
	case "badger":
		if strings.TrimSpace(cfg.Cache.BadgerPath) == "" {
			return cfg, errors.New("BADGER_PATH must not be empty when CACHE_BACKEND=badger")
		}
	default:
		return cfg, errors.New("CACHE_BACKEND must be one of: sqlite, badger")
	}
	if cfg.Cache.RecommendationTTL <= 0 {
		return cfg, errors.New("RECOMMENDATION_TTL must be > 0")
	}
	if cfg.AI.Timeout <= 0 {
		return cfg, errors.New("AI_TIMEOUT must be > 0")
	}
	if cfg.AI.MaxTokens <= 0 {
		return cfg, errors.New("AI_MAX_TOKENS must be > 0")
	}
	if cfg.AI.Temperature < 0 || cfg.AI.Temperature > 2 {
		return cfg, errors.New("AI_TEMPERATURE must be in [0,2]")
	}
	if cfg.AI.RateRPS < 0 || cfg.AI.RateBurst < 1 {
		return cfg, errors.New("AI_RATE_RPS must be >= 0 and AI_RATE_BURST >= 1")
	}
	if cfg.AI.BreakerFailures == 0 {
		return cfg, errors.New("AI_BREAKER_FAILURES must be >= 1")
	}
	if cfg.Refresh.Enabled {
		if strings.TrimSpace(cfg.Refresh.DailySpec) == "" ||
			strings.TrimSpace(cfg.Refresh.WeeklySpec) == "" ||
			strings.TrimSpace(cfg.Refresh.Recommendations) == "" {
			return cfg, errors.New("refresh schedules must not be empty when REFRESH_ENABLED")
		}
	}
	if cfg.RateRPS < 0 {
		return cfg, errors.New("RATE_RPS must be >= 0")
	}
	if cfg.RateBurst < 1 {
		return cfg, errors.New("RATE_BURST must be >= 1")
	}
	if cfg.Security.HSTSMaxAge < 0 {
		return cfg, errors.New("HSTS_MAX_AGE must be >= 0")
	}
	if cfg.OTEL.SampleRatio < 0 || cfg.OTEL.SampleRatio > 1 {
		return cfg, errors.New("OTEL_TRACES_SAMPLER_ARG must be in [0,1]")
	}

	return cfg, nil
}

// ---- helpers ----

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		return v
	}
	return def
}

func getfloat(k string, def float64) float64 {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getint(k string, def int) int {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getbool(k string, def bool) bool {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if sysutil.IsTruthy(v) {
			return true
		}
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return def
}

func getdur(k string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// normalizeBasePath ensures leading '/' and strips trailing '/' (except root).
func normalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		p = strings.TrimRight(p, "/")
	}
	return p
}
