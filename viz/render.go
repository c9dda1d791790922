package viz

import (
	"errors"
	"fmt"
	"strings"

	"github.com/DarkPhoenix42/Pathfinding-Algorithms-Visualiser/grid"
	"github.com/DarkPhoenix42/Pathfinding-Algorithms-Visualiser/search"
)

// stateRunes maps each cell state to its frame glyph, indexed by State.
var stateRunes = [...]rune{
	grid.Normal:   '·',
	grid.Start:    'S',
	grid.End:      'E',
	grid.Obstacle: '░',
	grid.Open:     'o',
	grid.Visited:  'x',
	grid.Path:     '#',
}

// Rune returns the frame glyph for s.
func Rune(s grid.State) rune {
	if int(s) < len(stateRunes) {
		return stateRunes[s]
	}

	return '?'
}

// Render draws g as a bordered ASCII frame, one glyph per cell.
func Render(g *grid.Grid) string {
	var b strings.Builder
	RenderTo(&b, g)

	return b.String()
}

// RenderTo appends the frame into a caller-owned builder, letting an
// animation loop reuse one buffer across frames.
func RenderTo(b *strings.Builder, g *grid.Grid) {
	cols := g.Cols()
	b.Grow((cols + 3) * (g.Rows() + 2))

	b.WriteRune('┌')
	b.WriteString(strings.Repeat("─", cols))
	b.WriteString("┐\n")

	for r := 0; r < g.Rows(); r++ {
		b.WriteRune('│')
		for c := 0; c < cols; c++ {
			b.WriteRune(Rune(g.At(r, c).State))
		}
		b.WriteString("│\n")
	}

	b.WriteRune('└')
	b.WriteString(strings.Repeat("─", cols))
	b.WriteString("┘\n")
}

// StatusLine formats the outcome message for a finished run: the result
// summary on success, otherwise the canonical "no path"/"cancelled"
// lines the collaborator layer prints verbatim.
func StatusLine(res *search.Result, err error) string {
	switch {
	case res != nil:
		return fmt.Sprintf("A path of length %d is found in %s.", res.Length, res.Elapsed)
	case errors.Is(err, search.ErrNoPath):
		return "No Path Found."
	case errors.Is(err, search.ErrCancelled):
		return "Pathfinding was cancelled."
	case err != nil:
		return err.Error()
	default:
		return ""
	}
}
