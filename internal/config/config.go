// Package config resolves process-wide configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// EnvAPIURL is the primary environment variable naming the API base URL.
	EnvAPIURL = "RTASK_API_URL"

	// EnvAPIURLFallback is consulted when EnvAPIURL is empty.
	EnvAPIURLFallback = "TASKS_API_URL"
)

// baseURLSources is the resolution order for the base URL. The first
// non-empty value wins; nothing outside this list is consulted.
var baseURLSources = []string{EnvAPIURL, EnvAPIURLFallback}

// Config holds the configuration resolved once for an invocation.
type Config struct {
	// BaseURL is the prefix for every API request path, without a trailing
	// slash. Empty means no API endpoint is configured.
	BaseURL string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New resolves configuration for this invocation. apiURL, when non-empty,
// overrides the environment (the --api flag). A .env file in the working
// directory is merged into the environment first, so development setups work
// without exporting variables.
func New(apiURL string) (*Config, error) {
	if err := loadDotenv(); err != nil {
		return nil, err
	}

	base := resolveBaseURL(apiURL)
	if base != "" {
		if err := validateBaseURL(base); err != nil {
			return nil, err
		}
	}
	return &Config{BaseURL: base}, nil
}

// loadDotenv merges ./.env into the process environment. A missing file is
// fine; variables already present always win because godotenv never
// overrides existing keys.
func loadDotenv() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// resolveBaseURL picks the first non-empty candidate and strips trailing
// slashes so that request-path joining stays predictable.
func resolveBaseURL(explicit string) string {
	if explicit != "" {
		return strings.TrimRight(explicit, "/")
	}
	for _, name := range baseURLSources {
		if v := os.Getenv(name); v != "" {
			return strings.TrimRight(v, "/")
		}
	}
	return ""
}

// validateBaseURL rejects anything that is not an absolute http or https
// URL. Catching this up front beats the cryptic transport errors a relative
// or schemeless URL produces later.
func validateBaseURL(base string) error {
	u, err := url.Parse(base)
	if err != nil {
		return fmt.Errorf("invalid API base URL %q: %w", base, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("API base URL must be absolute, got %q", base)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("API base URL scheme must be http or https, got %q", u.Scheme)
	}
	return nil
}
