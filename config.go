package tgnotify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Environment variables read by FromEnv.
const (
	EnvToken        = "TELEGRAM_BOT_TOKEN"
	EnvDestinations = "TELEGRAM_ALLOWED_IDS"
)

var (
	ErrNoToken        = errors.New("bot token is not configured")
	ErrNoDestinations = errors.New("destination list is empty")
)

// Config holds everything the notifier needs. It is read once at
// construction and never mutated afterwards.
type Config struct {
	Token        string
	Destinations []Destination
}

func (c Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return ErrNoToken
	}
	if len(c.Destinations) == 0 {
		return ErrNoDestinations
	}
	return nil
}

type envSpec struct {
	BotToken   string `envconfig:"BOT_TOKEN"`
	AllowedIDs string `envconfig:"ALLOWED_IDS"`
}

// FromEnv loads the configuration from TELEGRAM_BOT_TOKEN and
// TELEGRAM_ALLOWED_IDS (a comma-separated list of chat IDs and/or
// @usernames). Missing or empty values are fatal.
func FromEnv() (Config, error) {
	var spec envSpec
	if err := envconfig.Process("telegram", &spec); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	cfg := Config{
		Token:        strings.TrimSpace(spec.BotToken),
		Destinations: ParseDestinations(spec.AllowedIDs),
	}
	if cfg.Token == "" {
		return Config{}, fmt.Errorf("%s: %w", EnvToken, ErrNoToken)
	}
	if len(cfg.Destinations) == 0 {
		return Config{}, fmt.Errorf("%s: %w", EnvDestinations, ErrNoDestinations)
	}
	return cfg, nil
}
