// Package config provides configuration management for the packaging service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Engine   EngineConfig
	Cache    CacheConfig
	Database DatabaseConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port        string
	RateLimit   int
	RateWindow  time.Duration
	CORSOrigins []string
	SwaggerUser string
	SwaggerPass string
}

// EngineConfig holds the tunable constants of the packaging engine.
// The defaults mirror the standard scoring policy; they are configuration,
// not fixed business rules.
type EngineConfig struct {
	CapacityWeight        float64
	AreaWeight            float64
	EfficiencyWeight      float64
	TargetUtilization     float64
	StandardStackHeightCm float64
	MaxCandidates         int
	ComplexityMaxProducts int
	ComplexityMaxQuantity float64
}

// CacheConfig holds catalog cache configuration. Shards above 1 switch the
// snapshot cache to its sharded variant for write-heavy deployments.
type CacheConfig struct {
	Size   int
	TTL    time.Duration
	Shards int
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			RateLimit:   getEnvInt("RATE_LIMIT", 100),
			RateWindow:  getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins: parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser: getEnv("SWAGGER_USER", ""),
			SwaggerPass: getEnv("SWAGGER_PASS", ""),
		},
		Engine: EngineConfig{
			CapacityWeight:        getEnvFloat("SCORE_CAPACITY_WEIGHT", 0.3),
			AreaWeight:            getEnvFloat("SCORE_AREA_WEIGHT", 0.3),
			EfficiencyWeight:      getEnvFloat("SCORE_EFFICIENCY_WEIGHT", 0.4),
			TargetUtilization:     getEnvFloat("SCORE_TARGET_UTILIZATION", 0.8),
			StandardStackHeightCm: getEnvFloat("STANDARD_STACK_HEIGHT_CM", 180),
			MaxCandidates:         getEnvInt("MAX_PALLET_CANDIDATES", 5),
			ComplexityMaxProducts: getEnvInt("COMPLEXITY_MAX_PRODUCTS", 10),
			ComplexityMaxQuantity: getEnvFloat("COMPLEXITY_MAX_QUANTITY", 200),
		},
		Cache: CacheConfig{
			Size:   getEnvInt("CACHE_SIZE", 1000),
			TTL:    getEnvDuration("CACHE_TTL", 5*time.Minute),
			Shards: getEnvInt("CACHE_SHARDS", 1),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "packaging_service"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
