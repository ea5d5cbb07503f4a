package configs

import "time"

// News configures the upstream NewsAPI integration. Requests without an
// APIKey are rejected before reaching the network, mirroring how the
// service degrades when no key is provisioned.
type News struct {
	// APIKey authenticates against NewsAPI. Empty means the news feature
	// is unavailable.
	APIKey string `env:"API_KEY"`
	// BaseURL is the NewsAPI endpoint prefix. Overridable for tests.
	BaseURL string `env:"BASE_URL" envDefault:"https://newsapi.org/v2"`
	// Timeout bounds each upstream request.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}
