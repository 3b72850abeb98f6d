// internal/config/config.go
//
// Environment configuration.
// Values come from the process environment, optionally seeded from a
// .env file in the working directory (missing file is fine).
//
// Environment variables:
//   CONNECT4_ROWS=6            grid rows (6–9)
//   CONNECT4_COLS=7            grid columns (7–9)
//   CONNECT4_TOKENS=red,yellow tokens for player 0 and player 1
//   LOG_LEVEL=info             zerolog level name
//   LOG_FORMAT=console         "console" or "json"

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/robalobadob/connectfour/internal/token"
)

var ErrInvalid = errors.New("invalid configuration")

// Config is the resolved runtime configuration.
type Config struct {
	Rows      int
	Cols      int
	Tokens    [2]token.Token
	LogLevel  zerolog.Level
	LogFormat string
}

// Load reads an optional .env file and then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv resolves configuration through lookup, which returns "" for
// unset keys.
func FromEnv(lookup func(string) string) (Config, error) {
	get := func(k, def string) string {
		if v := strings.TrimSpace(lookup(k)); v != "" {
			return v
		}
		return def
	}

	var cfg Config
	var err error
	if cfg.Rows, err = atoi("CONNECT4_ROWS", get("CONNECT4_ROWS", "6")); err != nil {
		return Config{}, err
	}
	if cfg.Cols, err = atoi("CONNECT4_COLS", get("CONNECT4_COLS", "7")); err != nil {
		return Config{}, err
	}

	names := strings.Split(get("CONNECT4_TOKENS", "red,yellow"), ",")
	if len(names) != 2 {
		return Config{}, fmt.Errorf("CONNECT4_TOKENS: want two tokens, got %d: %w", len(names), ErrInvalid)
	}
	for i, n := range names {
		t, err := token.Parse(n)
		if err != nil {
			return Config{}, fmt.Errorf("CONNECT4_TOKENS %q: %w", n, err)
		}
		cfg.Tokens[i] = t
	}

	if cfg.LogLevel, err = zerolog.ParseLevel(get("LOG_LEVEL", "info")); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	cfg.LogFormat = strings.ToLower(get("LOG_FORMAT", "console"))
	if cfg.LogFormat != "console" && cfg.LogFormat != "json" {
		return Config{}, fmt.Errorf("LOG_FORMAT %q: %w", cfg.LogFormat, ErrInvalid)
	}
	return cfg, nil
}

func atoi(key, v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", key, v, ErrInvalid)
	}
	return n, nil
}
