package app

import (
	"fmt"
	"os"
	"time"

	"github.com/aussiebroadwan/bankgate/pkg/ratelimit"
	"gopkg.in/yaml.v3"
)

// limitFile is the on-disk form of the endpoint limit table:
//
//	window: 60s
//	default_limit: 10
//	endpoints:
//	  /auth/login:
//	    ANONYMOUS: 5
//	  /bank/accounts/{id}/credit:
//	    ADMIN: 15
//	    CLIENT: 5
//
// window and default_limit are optional and override the environment.
type limitFile struct {
	Window       string          `yaml:"window"`
	DefaultLimit int             `yaml:"default_limit"`
	Endpoints    ratelimit.Table `yaml:"endpoints"`
}

// LimiterConfig builds the limiter configuration from cfg, reading the
// limit table file when one is configured.
func LimiterConfig(cfg Config) (ratelimit.Config, error) {
	out := ratelimit.Config{
		Window:       cfg.RateLimitWindow,
		DefaultLimit: cfg.RateLimitDefaultLimit,
		Table:        ratelimit.DefaultTable(),
	}
	if cfg.RateLimitConfigFile == "" {
		return out, nil
	}

	raw, err := os.ReadFile(cfg.RateLimitConfigFile)
	if err != nil {
		return ratelimit.Config{}, fmt.Errorf("read rate limit file: %w", err)
	}

	var f limitFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return ratelimit.Config{}, fmt.Errorf("parse rate limit file: %w", err)
	}
	if len(f.Endpoints) == 0 {
		return ratelimit.Config{}, fmt.Errorf("rate limit file %s lists no endpoints", cfg.RateLimitConfigFile)
	}
	if err := f.Endpoints.Validate(); err != nil {
		return ratelimit.Config{}, err
	}

	out.Table = f.Endpoints
	if f.Window != "" {
		w, err := time.ParseDuration(f.Window)
		if err != nil || w <= 0 {
			return ratelimit.Config{}, fmt.Errorf("rate limit file: invalid window %q", f.Window)
		}
		out.Window = w
	}
	if f.DefaultLimit > 0 {
		out.DefaultLimit = f.DefaultLimit
	}
	return out, nil
}
