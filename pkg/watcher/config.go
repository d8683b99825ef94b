package watcher

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so config files can express delays as
// Go duration strings ("500ms", "1m30s").
type Duration time.Duration

// Duration returns the wrapped time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// BackoffConfig tunes the reconnection backoff. Zero-valued fields use
// the package defaults.
type BackoffConfig struct {
	// Initial is the first reconnection delay.
	Initial Duration `yaml:"initial,omitempty"`

	// Max caps the reconnection delay.
	Max Duration `yaml:"max,omitempty"`

	// Multiplier is the factor by which the delay grows per attempt.
	Multiplier float64 `yaml:"multiplier,omitempty"`

	// Jitter is the maximum random fraction added to each delay.
	Jitter float64 `yaml:"jitter,omitempty"`
}

// Config holds watcher settings.
type Config struct {
	// Backoff tunes reconnection behavior.
	Backoff BackoffConfig `yaml:"backoff,omitempty"`

	// EventLog is an optional path for a CBOR event log. When set, the
	// watcher records state transitions, neighbor changes and backend
	// log lines to this file. Read it back with log.NewReader.
	EventLog string `yaml:"event_log,omitempty"`
}

// DefaultConfig returns the default watcher configuration.
func DefaultConfig() Config {
	return Config{
		Backoff: BackoffConfig{
			Initial:    Duration(InitialBackoff),
			Max:        Duration(MaxBackoff),
			Multiplier: BackoffMultiplier,
			Jitter:     JitterFactor,
		},
	}
}

// LoadConfig reads a YAML config file. Settings absent from the file keep
// their defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
