package config

import (
	"errors"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"pokertable-server/internal/util"
	"pokertable-server/pkg/playable/poker/texasholdem"
)

// Config provides configuration for the poker table server
type Config struct {
	loaded bool
	Table  struct {
		Name       string `yaml:"name"`
		NumSeats   int    `yaml:"numSeats" envconfig:"num_seats"`
		SmallBlind int    `yaml:"smallBlind" envconfig:"small_blind"`
		BigBlind   int    `yaml:"bigBlind" envconfig:"big_blind"`
		BuyIn      int    `yaml:"buyIn" envconfig:"buy_in"`
		MaxBuyIn   int    `yaml:"maxBuyIn" envconfig:"max_buy_in"`
		Rebuy      struct {
			Enabled bool `yaml:"enabled"`
			Amount  int  `yaml:"amount"`
		} `yaml:"rebuy"`
	} `yaml:"table"`
	TickInterval time.Duration `yaml:"tickInterval" envconfig:"tick_interval"`
	Log          struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	opts := texasholdem.DefaultOptions()

	var cfg Config
	cfg.Table.Name = opts.Name
	cfg.Table.NumSeats = opts.NumSeats
	cfg.Table.SmallBlind = opts.SmallBlind
	cfg.Table.BigBlind = opts.BigBlind
	cfg.Table.BuyIn = opts.BuyIn
	cfg.Table.MaxBuyIn = opts.MaxBuyIn
	cfg.Table.Rebuy.Enabled = opts.Rebuy.Enabled
	cfg.Table.Rebuy.Amount = opts.Rebuy.Amount
	cfg.TickInterval = opts.TickInterval
	cfg.Log.Level = logrus.InfoLevel.String()

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error, the defaults and environment are used instead
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("PTS_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logrus.WithField("file", configFile).Debug("config file not found, using defaults")
	case err != nil:
		return err
	default:
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("pts", &cfg); err != nil {
		return err
	}

	if _, err := logrus.ParseLevel(cfg.Log.Level); err != nil {
		return err
	}

	if err := cfg.TableOptions().Validate(); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// TableOptions returns the engine options for the configured table
func (c Config) TableOptions() texasholdem.Options {
	return texasholdem.Options{
		Name:       c.Table.Name,
		NumSeats:   c.Table.NumSeats,
		SmallBlind: c.Table.SmallBlind,
		BigBlind:   c.Table.BigBlind,
		BuyIn:      c.Table.BuyIn,
		MaxBuyIn:   c.Table.MaxBuyIn,
		Rebuy: texasholdem.RebuyPolicy{
			Enabled: c.Table.Rebuy.Enabled,
			Amount:  c.Table.Rebuy.Amount,
		},
		TickInterval: c.TickInterval,
	}
}

// LogLevel returns the configured log level
func (c Config) LogLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.InfoLevel
	}

	return level
}
