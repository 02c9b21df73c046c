package config

import (
	"fmt"
	"strings"
)

const minSignInSecretLength = 16

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.SignInEnabled {
		if c.Auth.SignInRateLimit <= 0 {
			return fmt.Errorf("auth.signin_rate_limit must be > 0 (got %d)", c.Auth.SignInRateLimit)
		}
		if len(c.Auth.SignInSecret) < minSignInSecretLength {
			return fmt.Errorf("auth.signin_secret must be at least %d characters when sign-in is enabled (got %d)",
				minSignInSecretLength, len(c.Auth.SignInSecret))
		}
	}

	if c.CORS.AllowCredentials && strings.TrimSpace(c.CORS.AllowedOrigins) == "*" {
		return fmt.Errorf("cors.allow_credentials requires an explicit cors.allowed_origins list")
	}

	if err := c.Cache.validate(); err != nil {
		return fmt.Errorf("cache: %w", err)
	}

	if c.Broker.Enabled() && c.Broker.Exchange == "" {
		return fmt.Errorf("broker.exchange is required when broker.url is set")
	}

	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return fmt.Errorf("tracing.sample_ratio must be within [0, 1] (got %v)", c.Tracing.SampleRatio)
	}

	return nil
}

func (c *CacheConfig) validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Size <= 0 {
		return fmt.Errorf("size must be > 0 (got %d)", c.Size)
	}
	if c.TTL <= 0 {
		return fmt.Errorf("ttl must be > 0 (got %v)", c.TTL)
	}
	return nil
}
