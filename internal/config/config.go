package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Events    EventsConfig    `yaml:"events"`
	Backfill  BackfillConfig  `yaml:"backfill"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ApplicationName string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"chaosjournal"`
}

// AuthConfig holds custom token settings.
type AuthConfig struct {
	JWTSecret   string        `yaml:"jwt_secret"   env:"AUTH_JWT_SECRET"   env-required:"true"`
	JWTIssuer   string        `yaml:"jwt_issuer"   env:"AUTH_JWT_ISSUER"   env-default:"chaosjournal"`
	JWTAudience string        `yaml:"jwt_audience" env:"AUTH_JWT_AUDIENCE" env-default:"chaosjournal-app"`
	TokenTTL    time.Duration `yaml:"token_ttl"    env:"AUTH_TOKEN_TTL"    env-default:"1h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig limits unauthenticated token requests per client IP.
type RateLimitConfig struct {
	IssueTokenPerMinute int           `yaml:"issue_token_per_minute" env:"RATE_LIMIT_ISSUE_TOKEN_PER_MINUTE" env-default:"30"`
	CleanupInterval     time.Duration `yaml:"cleanup_interval"       env:"RATE_LIMIT_CLEANUP_INTERVAL"       env-default:"5m"`
}

// Event sources for entry change notifications.
const (
	EventSourcePostgres = "postgres"
	EventSourceRedis    = "redis"
	EventSourceNone     = "none"
)

// EventsConfig selects and tunes the entry change-notification source.
type EventsConfig struct {
	Source       string        `yaml:"source"        env:"EVENTS_SOURCE"        env-default:"postgres"`
	PollInterval time.Duration `yaml:"poll_interval" env:"EVENTS_POLL_INTERVAL" env-default:"5s"`
	BatchSize    int           `yaml:"batch_size"    env:"EVENTS_BATCH_SIZE"    env-default:"100"`
	Redis        RedisConfig   `yaml:"redis"`
}

// RedisConfig holds the Redis stream consumer settings.
type RedisConfig struct {
	Addr     string        `yaml:"addr"     env:"EVENTS_REDIS_ADDR"`
	Password string        `yaml:"password" env:"EVENTS_REDIS_PASSWORD"`
	DB       int           `yaml:"db"       env:"EVENTS_REDIS_DB"       env-default:"0"`
	Stream   string        `yaml:"stream"   env:"EVENTS_REDIS_STREAM"   env-default:"chaos:entry-events"`
	Group    string        `yaml:"group"    env:"EVENTS_REDIS_GROUP"    env-default:"feed-mirror"`
	Consumer string        `yaml:"consumer" env:"EVENTS_REDIS_CONSUMER" env-default:"feed-mirror-1"`
	Block    time.Duration `yaml:"block"    env:"EVENTS_REDIS_BLOCK"    env-default:"5s"`
}

// BackfillConfig tunes the administrative backfill jobs.
type BackfillConfig struct {
	PageSize int `yaml:"page_size" env:"BACKFILL_PAGE_SIZE" env-default:"200"`
}
