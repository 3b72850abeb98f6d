// internal/render/text.go
//
// Plain-text grid renderer.
// Output for a 6x7 grid looks like:
//
//	    0   1   2   3   4   5   6
//	  +---+---+---+---+---+---+---+
//	0 |   |   |   |   |   |   |   |
//	...
//	5 | R | Y |   |   |   |   |   |
//	  +---+---+---+---+---+---+---+
//
// Rendering has no effect on game state.

package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/connectfour/internal/game"
)

// Text renders a grid snapshot with row and column indices.
type Text struct{}

var _ game.Renderer = Text{}

// Render writes s to w.
func (Text) Render(w io.Writer, s game.Snapshot) error {
	bw := bufio.NewWriter(w)
	border := "  +" + strings.Repeat("---+", s.Cols)

	bw.WriteString("  ")
	for c := 0; c < s.Cols; c++ {
		fmt.Fprintf(bw, "  %d ", c)
	}
	bw.WriteString("\n")
	bw.WriteString(border + "\n")
	for r := 0; r < s.Rows; r++ {
		fmt.Fprintf(bw, "%d |", r)
		for c := 0; c < s.Cols; c++ {
			fmt.Fprintf(bw, " %c |", s.At(r, c).Symbol())
		}
		bw.WriteString("\n")
	}
	bw.WriteString(border + "\n")
	return bw.Flush()
}
