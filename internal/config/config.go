package config

import (
	"log"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Running localy or not
	Debug bool `env:"DEBUG" envDefault:"false"`

	// Free-text deployment label, emitted in the startup log event only
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	// Bearer token secret guarding the transcript route
	APIKey string `env:"API_KEY"`

	// Forward proxy for all captioning backend calls.
	// The credentials get embedded into the proxy URL.
	ProxyUser string `env:"PROXY_USER"`
	ProxyPass string `env:"PROXY_PASS"`
	ProxyHost string `env:"PROXY_HOST" envDefault:"us.smartproxy.com:10001"`

	// Transcript language preference, scanned in order
	Languages []string `env:"TRANSCRIPT_LANGUAGES" envDefault:"en,es,fr,de,ar"`

	// Captioning backend transport settings
	BackendTimeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"30s"`
	BackendRPS     float64       `env:"BACKEND_RPS" envDefault:"0"`

	// Local app port
	Port int `env:"PORT" envDefault:"3000"`
}

// New creates new config object
func New() *Config {

	// Parse the config from the environment
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to parse the config; %v", err)
	}

	// The app refuses to start without the auth secret
	if cfg.APIKey == "" {
		log.Fatalf("empty or no API_KEY defined in env")
	}

	return &cfg
}

// ProxyURL assembles the forward proxy URL with the credentials embedded.
// Returns nil when no proxy credentials are configured, in which case the
// backend calls go out directly.
func (c *Config) ProxyURL() *url.URL {
	if c.ProxyUser == "" || c.ProxyPass == "" {
		return nil
	}

	return &url.URL{
		Scheme: "https",
		User:   url.UserPassword(c.ProxyUser, c.ProxyPass),
		Host:   c.ProxyHost,
	}
}
