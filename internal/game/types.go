// internal/game/types.go
//
// Core type definitions for the Connect Four rules engine.
// Defines:
//   - Phase: coarse lifecycle of a game (new → ready → playable → over).
//   - GameState: grid, player tokens, move counters and phase.
//   - Snapshot/Renderer: read-only grid view handed to a display routine.

package game

import (
	"io"

	"github.com/robalobadob/connectfour/internal/token"
)

// Phase is the current stage of a game. Phases only ever move forward.
type Phase uint8

const (
	PhaseNew      Phase = iota // created, player tokens not yet assigned
	PhaseReady                 // tokens assigned, nothing dropped yet
	PhasePlayable              // at least one token dropped
	PhaseOver                  // somebody connected four, or the grid is full
)

var phaseNames = map[Phase]string{
	PhaseNew:      "NEW",
	PhaseReady:    "READY",
	PhasePlayable: "PLAYABLE",
	PhaseOver:     "OVER",
}

func (p Phase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return "UNKNOWN"
}

// CanAdvanceTo reports whether moving from p to next is a legal transition.
// Each phase may only step to its immediate successor; OVER → OVER is
// accepted so that ending an already finished game is a no-op.
func (p Phase) CanAdvanceTo(next Phase) bool {
	switch p {
	case PhaseNew:
		return next == PhaseReady
	case PhaseReady:
		return next == PhasePlayable
	case PhasePlayable, PhaseOver:
		return next == PhaseOver
	}
	return false
}

// GameState holds a single game. It is not safe for concurrent use;
// callers sharing one across goroutines must serialize access
// (see internal/store).
type GameState struct {
	rows       int
	cols       int
	cells      []token.Token // row-major, rows*cols, token.None when empty
	players    [2]token.Token
	numDropped int
	lastRow    int // -1 until the first drop
	lastCol    int
	phase      Phase
	winner     token.Token
}

// Snapshot is a read-only copy of the grid.
type Snapshot struct {
	Rows  int
	Cols  int
	Cells []token.Token // row-major
}

// At returns the token at (row, col). The position must be in bounds.
func (s Snapshot) At(row, col int) token.Token {
	return s.Cells[row*s.Cols+col]
}

// Renderer turns a grid snapshot into something a human can read.
type Renderer interface {
	Render(w io.Writer, s Snapshot) error
}
