package config

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/robalobadob/connectfour/internal/token"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefaults(t *testing.T) {
	cfg, err := FromEnv(env(nil))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Rows != 6 || cfg.Cols != 7 {
		t.Fatalf("dimensions = %dx%d", cfg.Rows, cfg.Cols)
	}
	if cfg.Tokens != [2]token.Token{token.Red, token.Yellow} {
		t.Fatalf("tokens = %v", cfg.Tokens)
	}
	if cfg.LogLevel != zerolog.InfoLevel || cfg.LogFormat != "console" {
		t.Fatalf("log = %v/%s", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestOverrides(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		"CONNECT4_ROWS":   "9",
		"CONNECT4_COLS":   "8",
		"CONNECT4_TOKENS": "B, white",
		"LOG_LEVEL":       "debug",
		"LOG_FORMAT":      "JSON",
	}))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Rows != 9 || cfg.Cols != 8 {
		t.Fatalf("dimensions = %dx%d", cfg.Rows, cfg.Cols)
	}
	if cfg.Tokens != [2]token.Token{token.Blue, token.White} {
		t.Fatalf("tokens = %v", cfg.Tokens)
	}
	if cfg.LogLevel != zerolog.DebugLevel || cfg.LogFormat != "json" {
		t.Fatalf("log = %v/%s", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestInvalid(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want error
	}{
		{"rows not a number", map[string]string{"CONNECT4_ROWS": "six"}, ErrInvalid},
		{"cols not a number", map[string]string{"CONNECT4_COLS": "7.5"}, ErrInvalid},
		{"one token", map[string]string{"CONNECT4_TOKENS": "red"}, ErrInvalid},
		{"three tokens", map[string]string{"CONNECT4_TOKENS": "red,blue,green"}, ErrInvalid},
		{"unknown token", map[string]string{"CONNECT4_TOKENS": "red,teal"}, token.ErrUnknownToken},
		{"bad format", map[string]string{"LOG_FORMAT": "xml"}, ErrInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := FromEnv(env(tc.env)); !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
	if _, err := FromEnv(env(map[string]string{"LOG_LEVEL": "loud"})); err == nil {
		t.Fatal("unknown log level accepted")
	}
}
