// internal/game/win.go
//
// Four-in-a-row detection anchored at the most recent drop.
//
// A single line scanner handles all four axes. For an axis step (dr, dc)
// it first walks back from the anchor to the edge of the grid, then scans
// forward to the opposite edge counting runs of the anchor's token. A run
// only counts as a win when it reaches four while containing the anchor
// cell, so a four elsewhere on the board is ignored here.

package game

import "github.com/robalobadob/connectfour/internal/token"

const connect = 4

// axes: horizontal, vertical, "\" and "/".
var axes = [...][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// IsLastDropWinning reports whether the last dropped token completed a run
// of four or more on any axis.
//
// State transitions:
//   - Win → PhaseOver, returns true.
//   - No win but the grid is full → PhaseOver, returns false (draw).
//   - Otherwise the phase is unchanged.
//
// Only the phase (and the recorded winner) are ever modified.
func (g *GameState) IsLastDropWinning() bool {
	if g.lastRow < 0 || g.lastCol < 0 {
		return false
	}
	// lastRow/lastCol only ever point at a cell DropToken filled with an
	// assigned player token, so anchor is never token.None.
	anchor := g.at(g.lastRow, g.lastCol)
	for _, ax := range axes {
		if g.scanLine(g.lastRow, g.lastCol, ax[0], ax[1], anchor) {
			g.winner = anchor
			g.advance(PhaseOver)
			return true
		}
	}
	if g.numDropped == g.rows*g.cols {
		g.advance(PhaseOver)
	}
	return false
}

// scanLine walks the full line through (row, col) along (dr, dc).
func (g *GameState) scanLine(row, col, dr, dc int, tok token.Token) bool {
	r, c := row, col
	for g.InBounds(r-dr, c-dc) {
		r, c = r-dr, c-dc
	}

	count := 0
	withAnchor := false
	for ; g.InBounds(r, c); r, c = r+dr, c+dc {
		if g.at(r, c) != tok {
			count, withAnchor = 0, false
			continue
		}
		count++
		if r == row && c == col {
			withAnchor = true
		}
		if withAnchor && count >= connect {
			return true
		}
	}
	return false
}
