package config

import "time"

// APIConfig holds runtime configuration for the API service. The token
// secret is read once at startup and never mutated; it must be stable
// across restarts or outstanding tokens stop verifying.
type APIConfig struct {
	Environment        string
	Addr               string
	AuthTokenSecret    string
	SessionTTL         time.Duration
	StoreRedisAddr     string
	StoreRedisPass     string
	StoreRedisDB       int
	RateLimitRedisAddr string
	RateLimitRedisPass string
	RateLimitRedisDB   int
}

// LoadAPIConfig constructs an APIConfig from environment variables.
func LoadAPIConfig() APIConfig {
	return APIConfig{
		Environment:        GetString("APP_ENV", "development"),
		Addr:               GetString("API_ADDR", ":4000"),
		AuthTokenSecret:    GetString("AUTH_TOKEN_SECRET", "supersecuresecret"),
		SessionTTL:         time.Duration(GetInt("SESSION_TTL_HOURS", 168)) * time.Hour,
		StoreRedisAddr:     GetString("STORE_REDIS_ADDR", "redis:6379"),
		StoreRedisPass:     GetString("STORE_REDIS_PASSWORD", ""),
		StoreRedisDB:       GetInt("STORE_REDIS_DB", 0),
		RateLimitRedisAddr: GetString("RATE_LIMIT_REDIS_ADDR", ""),
		RateLimitRedisPass: GetString("RATE_LIMIT_REDIS_PASSWORD", ""),
		RateLimitRedisDB:   GetInt("RATE_LIMIT_REDIS_DB", 1),
	}
}
