package ticker

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// Cell is one terminal cell of the track.
type Cell struct {
	Rune  rune
	FG    colorful.Color
	BG    colorful.Color
	HasFG bool
	HasBG bool
	Bold  bool
	Link  string
	// Cont marks the right half of a wide rune.
	Cont bool
}

var blank = Cell{Rune: ' '}

// Grid is a block of cells, row major. All rows have the same width.
type Grid [][]Cell

func newGrid(rows, cols int) Grid {
	g := make(Grid, rows)
	for r := range g {
		g[r] = make([]Cell, cols)
		for c := range g[r] {
			g[r][c] = blank
		}
	}
	return g
}

func (g Grid) Rows() int { return len(g) }

func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// appendGrid places b to the right of g. Both must have the same row count.
func appendGrid(g, b Grid) Grid {
	for r := range g {
		g[r] = append(g[r], b[r]...)
	}
	return g
}

// textCells lays out s on one row, padding wide runes with a
// continuation cell and dropping zero-width runes.
func textCells(s string, fg colorful.Color, hasFG bool) []Cell {
	cells := make([]Cell, 0, runewidth.StringWidth(s))
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		cells = append(cells, Cell{Rune: r, FG: fg, HasFG: hasFG})
		if w == 2 {
			cells = append(cells, Cell{Rune: ' ', FG: fg, HasFG: hasFG, Cont: true})
		}
	}
	return cells
}

type cellStyle struct {
	fg, bg string
	bold   bool
	link   string
}

func (c Cell) style() cellStyle {
	s := cellStyle{bold: c.Bold, link: c.Link}
	if c.HasFG {
		s.fg = c.FG.Hex()
	}
	if c.HasBG {
		s.bg = c.BG.Hex()
	}
	return s
}

// renderRow writes a row of cells, grouping runs of equal style. The
// right half of a wide rune is covered by the rune itself.
func renderRow(cells []Cell) string {
	var b strings.Builder
	var run strings.Builder
	var cur cellStyle
	flush := func() {
		if run.Len() == 0 {
			return
		}
		b.WriteString(paint(cur, run.String()))
		run.Reset()
	}
	for i, c := range cells {
		if c.Cont {
			continue
		}
		st := c.style()
		if i == 0 || st != cur {
			flush()
			cur = st
		}
		run.WriteRune(c.Rune)
	}
	flush()
	return b.String()
}

func paint(st cellStyle, text string) string {
	if st.fg != "" || st.bg != "" || st.bold {
		style := lipgloss.NewStyle().Bold(st.bold)
		if st.fg != "" {
			style = style.Foreground(lipgloss.Color(st.fg))
		}
		if st.bg != "" {
			style = style.Background(lipgloss.Color(st.bg))
		}
		text = style.Render(text)
	}
	if st.link != "" {
		text = ansi.SetHyperlink(st.link) + text + ansi.ResetHyperlink()
	}
	return text
}
