package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be > 0 (got %s)", c.Auth.TokenTTL)
	}

	if c.RateLimit.IssueTokenPerMinute <= 0 {
		return fmt.Errorf("rate_limit.issue_token_per_minute must be > 0 (got %d)", c.RateLimit.IssueTokenPerMinute)
	}

	if err := c.Events.validate(); err != nil {
		return fmt.Errorf("events: %w", err)
	}

	if c.Backfill.PageSize <= 0 {
		return fmt.Errorf("backfill.page_size must be > 0 (got %d)", c.Backfill.PageSize)
	}

	return nil
}

func (e *EventsConfig) validate() error {
	e.Source = strings.ToLower(strings.TrimSpace(e.Source))

	switch e.Source {
	case EventSourcePostgres:
		if e.PollInterval <= 0 {
			return fmt.Errorf("poll_interval must be > 0 (got %s)", e.PollInterval)
		}
		if e.BatchSize <= 0 {
			return fmt.Errorf("batch_size must be > 0 (got %d)", e.BatchSize)
		}
	case EventSourceRedis:
		if e.Redis.Addr == "" {
			return fmt.Errorf("redis.addr is required when source is %q", EventSourceRedis)
		}
		if e.Redis.Stream == "" || e.Redis.Group == "" || e.Redis.Consumer == "" {
			return fmt.Errorf("redis.stream, redis.group and redis.consumer are required")
		}
	case EventSourceNone:
	default:
		return fmt.Errorf("unknown source %q (want postgres, redis or none)", e.Source)
	}

	return nil
}
