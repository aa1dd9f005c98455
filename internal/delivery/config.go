package delivery

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

// Config selects the delivery strategy. Earlier iterations of the site had
// several parallel form integrations; this file is the single switch that
// replaced them.
type Config struct {
	Strategy    string `yaml:"strategy"`     // "webhook" or "noop"
	WebhookURL  string `yaml:"webhook_url"`  // primary channel
	FallbackURL string `yaml:"fallback_url"` // optional secondary channel
}

// LoadConfig reads a YAML strategy file. A missing path means noop.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return Config{Strategy: "noop"}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read delivery config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse delivery config: %w", err)
	}
	if cfg.Strategy == "" {
		cfg.Strategy = "noop"
	}
	return cfg, nil
}

// FromConfig builds the configured notifier chain.
func FromConfig(cfg Config, log *zap.Logger) (Notifier, error) {
	switch cfg.Strategy {
	case "noop":
		return Noop{}, nil
	case "webhook":
		if cfg.WebhookURL == "" {
			return nil, fmt.Errorf("delivery strategy %q requires webhook_url", cfg.Strategy)
		}
		notifiers := []Notifier{NewWebhookNotifier(cfg.WebhookURL)}
		if cfg.FallbackURL != "" {
			notifiers = append(notifiers, NewWebhookNotifier(cfg.FallbackURL))
		}
		return NewChain(log, notifiers...), nil
	default:
		return nil, fmt.Errorf("unknown delivery strategy %q", cfg.Strategy)
	}
}
