// internal/token/token.go
//
// Player tokens for the rules engine.
// Responsibilities:
//   - Define the closed set of token values a player can drop.
//   - Provide the "is it set" check used by token assignment.
//   - Resolve configured names/symbols into tokens (Parse).
//
// Notes:
//   - The engine only ever compares tokens for equality; the names and
//     symbols exist for configuration and rendering.
//   - None is the zero value and doubles as the empty-cell marker.

package token

import (
	"errors"
	"strings"
)

// ErrUnknownToken is returned by Parse for names that match no token.
var ErrUnknownToken = errors.New("unknown token")

// Token is an opaque player marker.
type Token uint8

const (
	None Token = iota
	Red
	Yellow
	Blue
	Green
	Purple
	Orange
	Black
	White
)

type info struct {
	name   string
	symbol rune
}

var catalog = map[Token]info{
	Red:    {"red", 'R'},
	Yellow: {"yellow", 'Y'},
	Blue:   {"blue", 'B'},
	Green:  {"green", 'G'},
	Purple: {"purple", 'P'},
	Orange: {"orange", 'O'},
	Black:  {"black", 'K'},
	White:  {"white", 'W'},
}

// All returns the named tokens in declaration order.
func All() []Token {
	return []Token{Red, Yellow, Blue, Green, Purple, Orange, Black, White}
}

// Valid reports whether t is one of the named tokens (i.e. it is set).
func (t Token) Valid() bool {
	_, ok := catalog[t]
	return ok
}

func (t Token) String() string {
	if i, ok := catalog[t]; ok {
		return i.name
	}
	if t == None {
		return "none"
	}
	return "unknown"
}

// Symbol is the single-rune form used when printing a grid.
// Empty cells (None) print as a space.
func (t Token) Symbol() rune {
	if i, ok := catalog[t]; ok {
		return i.symbol
	}
	return ' '
}

// Parse resolves a token from its name ("red") or symbol ("R").
// Matching is case-insensitive and ignores surrounding whitespace.
func Parse(s string) (Token, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, t := range All() {
		i := catalog[t]
		if s == i.name || s == strings.ToLower(string(i.symbol)) {
			return t, nil
		}
	}
	return None, ErrUnknownToken
}
