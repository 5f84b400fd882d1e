package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Config is the node configuration. Values are read from an optional TOML
// file and then overwritten by environment variables.
type Config struct {
	// Home is the directory holding the vault database.
	Home string `toml:"home" env:"VAULT_HOME"`
	// Genesis is the path of the genesis document, used only when the
	// database is not initialized yet. Defaults to genesis.json in Home.
	Genesis string `toml:"genesis" env:"VAULT_GENESIS"`
	// ChainID overrides the chain ID declared by the genesis document.
	ChainID  string `toml:"chain_id" env:"VAULT_CHAIN_ID"`
	LogLevel string `toml:"log_level" env:"VAULT_LOG_LEVEL"`
}

func defaultConfig(environ map[string]string) Config {
	home := environ["HOME"]
	if home == "" {
		home = "."
	}
	return Config{
		Home:     filepath.Join(home, ".vaultd"),
		LogLevel: "info",
	}
}

// loadConfig builds the configuration. An empty path skips the file.
// environ is the environment used for the overrides.
func loadConfig(path string, environ map[string]string) (Config, error) {
	cfg := defaultConfig(environ)
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config: %s", err)
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return cfg, fmt.Errorf("parse env: %s", err)
	}
	if cfg.Home == "" {
		return cfg, fmt.Errorf("home directory is required")
	}
	if cfg.Genesis == "" {
		cfg.Genesis = filepath.Join(cfg.Home, "genesis.json")
	}
	return cfg, nil
}

// environ returns the process environment as a map.
func environ() map[string]string {
	return env.ToMap(os.Environ())
}
