// internal/game/engine.go
//
// Rules engine for a single Connect Four game.
// Responsibilities:
//   - Create games with validated dimensions (6–9 rows, 7–9 columns).
//   - Assign the two player tokens (NEW → READY).
//   - Drop tokens with gravity semantics (READY → PLAYABLE).
//   - Gate every accessor/mutator on the current phase.
//
// Notes:
//   - Every precondition is checked before any field is written, so a
//     failing call leaves the game exactly as it was.
//   - Turn order is not enforced; callers may drop for either player.
//   - Win/draw detection lives in win.go and is invoked explicitly.
package game

import (
	"errors"
	"io"

	"github.com/robalobadob/connectfour/internal/token"
)

// Accepted grid dimensions, inclusive.
const (
	MinRows = 6 // fewest rows New accepts
	MaxRows = 9 // most rows New accepts
	MinCols = 7 // fewest columns New accepts
	MaxCols = 9 // most columns New accepts
)

var (
	ErrInvalidDimension = errors.New("invalid grid dimension")
	ErrOutOfBounds      = errors.New("position out of bounds")
	ErrInvalidPlayer    = errors.New("invalid player")
	ErrInvalidPhase     = errors.New("operation not allowed in current phase")
	ErrNullToken        = errors.New("player token not set")
	ErrDuplicateToken   = errors.New("player tokens must differ")
	ErrColumnFull       = errors.New("column full")
)

// New constructs an empty game in PhaseNew.
// Returns ErrInvalidDimension unless 6 ≤ rows ≤ 9 and 7 ≤ cols ≤ 9.
func New(rows, cols int) (*GameState, error) {
	if rows < MinRows || rows > MaxRows || cols < MinCols || cols > MaxCols {
		return nil, ErrInvalidDimension
	}
	return &GameState{
		rows:    rows,
		cols:    cols,
		cells:   make([]token.Token, rows*cols),
		lastRow: -1,
		lastCol: -1,
		phase:   PhaseNew,
	}, nil
}

// Rows returns the number of grid rows fixed at creation.
func (g *GameState) Rows() int { return g.rows }

// Cols returns the number of grid columns fixed at creation.
func (g *GameState) Cols() int { return g.cols }

// InBounds reports whether (row, col) lies inside the grid.
func (g *GameState) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// TokenAt returns the token at (row, col), or token.None if the cell is empty.
func (g *GameState) TokenAt(row, col int) (token.Token, error) {
	if !g.InBounds(row, col) {
		return token.None, ErrOutOfBounds
	}
	return g.at(row, col), nil
}

// Phase is readable at any time.
func (g *GameState) Phase() Phase { return g.phase }

// NumDropped returns the number of tokens placed so far.
// Not available before the first drop.
func (g *GameState) NumDropped() (int, error) {
	if !g.started() {
		return 0, ErrInvalidPhase
	}
	return g.numDropped, nil
}

// LastDropRow returns the row of the most recent drop.
func (g *GameState) LastDropRow() (int, error) {
	if !g.started() {
		return -1, ErrInvalidPhase
	}
	return g.lastRow, nil
}

// LastDropCol returns the column of the most recent drop.
func (g *GameState) LastDropCol() (int, error) {
	if !g.started() {
		return -1, ErrInvalidPhase
	}
	return g.lastCol, nil
}

// AssignTokens sets the tokens of player 0 and player 1.
//
// Validation rules:
//   - Both tokens must be set (ErrNullToken).
//   - Tokens must differ (ErrDuplicateToken).
//   - Play must not have started (ErrInvalidPhase in PLAYABLE/OVER).
//
// Calling it again while READY overwrites the previous assignment.
func (g *GameState) AssignTokens(t0, t1 token.Token) error {
	if !t0.Valid() || !t1.Valid() {
		return ErrNullToken
	}
	if t0 == t1 {
		return ErrDuplicateToken
	}
	if g.phase != PhaseNew && g.phase != PhaseReady {
		return ErrInvalidPhase
	}
	g.players = [2]token.Token{t0, t1}
	if g.phase == PhaseNew {
		g.advance(PhaseReady)
	}
	return nil
}

// PlayerToken returns the token assigned to player 0 or 1.
func (g *GameState) PlayerToken(player int) (token.Token, error) {
	if !validPlayer(player) {
		return token.None, ErrInvalidPlayer
	}
	if g.phase == PhaseNew {
		return token.None, ErrInvalidPhase
	}
	return g.players[player], nil
}

// DropToken drops the player's token into col. It lands in the lowest
// empty cell of that column.
//
// Errors, in the order they are checked:
//   - ErrOutOfBounds if col is not a column of the grid.
//   - ErrInvalidPlayer if player is not 0 or 1.
//   - ErrInvalidPhase unless the game is READY or PLAYABLE.
//   - ErrColumnFull if the column has no empty cell left.
//
// DropToken never checks for a win; see IsLastDropWinning.
func (g *GameState) DropToken(player, col int) error {
	if col < 0 || col >= g.cols {
		return ErrOutOfBounds
	}
	if !validPlayer(player) {
		return ErrInvalidPlayer
	}
	if g.phase != PhaseReady && g.phase != PhasePlayable {
		return ErrInvalidPhase
	}
	row := g.landingRow(col)
	if row < 0 {
		return ErrColumnFull
	}

	g.cells[g.offset(row, col)] = g.players[player]
	g.numDropped++
	g.lastRow, g.lastCol = row, col
	if g.phase == PhaseReady {
		g.advance(PhasePlayable)
	}
	return nil
}

// Winner returns the token that connected four, or token.None while the
// game is undecided or ended in a draw.
func (g *GameState) Winner() token.Token { return g.winner }

// Snapshot copies the grid for display or inspection.
func (g *GameState) Snapshot() Snapshot {
	cells := make([]token.Token, len(g.cells))
	copy(cells, g.cells)
	return Snapshot{Rows: g.rows, Cols: g.cols, Cells: cells}
}

// PrintGrid renders the current grid to w.
func (g *GameState) PrintGrid(w io.Writer, r Renderer) error {
	return r.Render(w, g.Snapshot())
}

// landingRow scans the column bottom-up and returns the first empty row,
// or -1 if the column is full.
func (g *GameState) landingRow(col int) int {
	for r := g.rows - 1; r >= 0; r-- {
		if g.at(r, col) == token.None {
			return r
		}
	}
	return -1
}

// advance moves the phase forward; illegal transitions are ignored.
func (g *GameState) advance(next Phase) {
	if g.phase.CanAdvanceTo(next) {
		g.phase = next
	}
}

// started reports whether at least one token has been dropped.
func (g *GameState) started() bool {
	return g.phase == PhasePlayable || g.phase == PhaseOver
}

func (g *GameState) offset(row, col int) int { return row*g.cols + col }

func (g *GameState) at(row, col int) token.Token { return g.cells[g.offset(row, col)] }

func validPlayer(p int) bool { return p == 0 || p == 1 }
