package config

import (
	"fmt"
	"time"
)

const (
	maxDueCardsLimit       = 100
	maxRecommendationLimit = 10
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.Progress.validate(); err != nil {
		return fmt.Errorf("progress: %w", err)
	}

	if c.Jobs.ReconcileEnabled && c.Jobs.ReconcileInterval < time.Minute {
		return fmt.Errorf("jobs.reconcile_interval must be at least 1m (got %v)", c.Jobs.ReconcileInterval)
	}

	return nil
}

func (p *ProgressConfig) validate() error {
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", p.Timezone, err)
	}
	p.Location = loc

	if p.DueCardsLimit < 1 || p.DueCardsLimit > maxDueCardsLimit {
		return fmt.Errorf("due_cards_limit must be in 1..%d (got %d)", maxDueCardsLimit, p.DueCardsLimit)
	}
	if p.RecommendationLimit < 1 || p.RecommendationLimit > maxRecommendationLimit {
		return fmt.Errorf("recommendation_limit must be in 1..%d (got %d)", maxRecommendationLimit, p.RecommendationLimit)
	}

	return nil
}
