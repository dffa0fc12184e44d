package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config is read from an optional TOML file and then overridden by
// GRIDCALC_* environment variables, so containerized deployments can
// skip the file entirely.
type Config struct {
	ListenAddr       string `toml:"listen_addr"`
	DatabaseFilepath string `toml:"database_filepath"`
	Rows             int    `toml:"rows"`
	Cols             int    `toml:"cols"`
	LogLevel         string `toml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		ListenAddr:       ":8080",
		DatabaseFilepath: "gridcalc.db",
		Rows:             10,
		Cols:             10,
		LogLevel:         "info",
	}
}

func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	if path != "" {
		if _, err := toml.DecodeFile(path, &config); err != nil {
			return config, fmt.Errorf("config %s: %w", path, err)
		}
	}

	if v := os.Getenv("GRIDCALC_LISTEN_ADDR"); v != "" {
		config.ListenAddr = v
	}
	if v := os.Getenv("GRIDCALC_DATABASE_FILEPATH"); v != "" {
		config.DatabaseFilepath = v
	}
	if v := os.Getenv("GRIDCALC_LOG_LEVEL"); v != "" {
		config.LogLevel = v
	}
	if v := os.Getenv("GRIDCALC_ROWS"); v != "" {
		rows, err := strconv.Atoi(v)
		if err != nil {
			return config, fmt.Errorf("GRIDCALC_ROWS: %w", err)
		}
		config.Rows = rows
	}
	if v := os.Getenv("GRIDCALC_COLS"); v != "" {
		cols, err := strconv.Atoi(v)
		if err != nil {
			return config, fmt.Errorf("GRIDCALC_COLS: %w", err)
		}
		config.Cols = cols
	}

	return config, nil
}
