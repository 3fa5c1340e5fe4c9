package config

import "time"

// APIConfig configures the client for the remote booking platform API.
type APIConfig struct {
	// BaseURL is the platform API root, e.g. "https://api.classpoint.io/api".
	BaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:3000/api"`

	// Timeout bounds each request to the platform API.
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"15s"`
}

// Sanitize applies guardrails to API configuration values.
func (a *APIConfig) Sanitize() {
	if a.Timeout <= 0 {
		a.Timeout = 15 * time.Second
	}
}
