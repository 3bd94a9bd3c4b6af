package config

import (
	"errors"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"pokerhand-evaluator/internal/util"
)

// Config provides configuration for the hand evaluator binaries
type Config struct {
	loaded bool
	Log    struct {
		Level             string `yaml:"level" envconfig:"level"`
		Format            string `yaml:"format" envconfig:"format"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	Server struct {
		Addr           string   `yaml:"addr" envconfig:"addr"`
		AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
	} `yaml:"server"`
	Deal struct {
		// Seed of 0 picks a random seed for every deal
		Seed    int64 `yaml:"seed" envconfig:"seed"`
		Players int   `yaml:"players" envconfig:"players"`
	} `yaml:"deal"`
}

var config Config

// DefaultConfig returns the configuration used when nothing else is specified
func DefaultConfig() Config {
	cfg := Config{}
	cfg.Log.Level = "info"
	cfg.Server.Addr = ":5000"
	cfg.Server.AllowedOrigins = []string{"*"}
	cfg.Deal.Players = 2

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
// The YAML file is optional. Environment variables prefixed with PHE_ take precedence.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("PHE_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := envconfig.Process("phe", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
