package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Placeholders left in a fresh deployment
const (
	EndpointPlaceholder = "YOUR_FORMSPREE_ENDPOINT"
	RedirectPlaceholder = "SUA_NOVA_URL"
)

// Config holds all application configuration values
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	FormspreeEndpoint string `mapstructure:"FORMSPREE_ENDPOINT"`
	RedirectURL       string `mapstructure:"REDIRECT_URL"`
	RedirectDelayMS   int    `mapstructure:"REDIRECT_DELAY_MS"`
	FormSubject       string `mapstructure:"FORM_SUBJECT"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	AllowedOrigins    string `mapstructure:"ALLOWED_ORIGINS"`
}

var defaults = map[string]interface{}{
	"APP_PORT":             "8080",
	"ENV":                  "development",
	"LOG_LEVEL":            "info",
	"FORMSPREE_ENDPOINT":   EndpointPlaceholder,
	"REDIRECT_URL":         RedirectPlaceholder,
	"REDIRECT_DELAY_MS":    3000,
	"FORM_SUBJECT":         "Nova solicitação de pré-agendamento",
	"MAX_REQUESTS_PER_MIN": 30,
	"ALLOWED_ORIGINS":      "*",
}

// LoadConfig reads configuration from the environment and, when present,
// a config.yaml in the working directory or ./config.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if cfg.RedirectDelayMS < 0 {
		return nil, fmt.Errorf("REDIRECT_DELAY_MS must not be negative, got %d", cfg.RedirectDelayMS)
	}
	return &cfg, nil
}

// IsProduction checks if the environment is production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// RedirectDelay is the pause between the success message and the redirect
func (c *Config) RedirectDelay() time.Duration {
	return time.Duration(c.RedirectDelayMS) * time.Millisecond
}

// EndpointConfigured reports whether the relay endpoint was replaced
func (c *Config) EndpointConfigured() bool {
	return IsEndpointConfigured(c.FormspreeEndpoint)
}

// Origins splits ALLOWED_ORIGINS on commas
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// IsEndpointConfigured is false for an empty or placeholder endpoint
func IsEndpointConfigured(endpoint string) bool {
	endpoint = strings.TrimSpace(endpoint)
	return endpoint != "" && endpoint != EndpointPlaceholder
}

// IsRedirectConfigured is false for an empty or placeholder redirect
func IsRedirectConfigured(target string) bool {
	target = strings.TrimSpace(target)
	return target != "" && target != RedirectPlaceholder
}
