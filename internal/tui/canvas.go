// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/codetype/internal/highlight"
	"github.com/verte-zerg/codetype/internal/layout"
	"github.com/verte-zerg/codetype/internal/palette"
)

type cell struct {
	s     string
	width int
	// cont marks the trailing column of a wide glyph.
	cont bool
}

// canvas is a fixed-size grid of styled cells for one frame.
type canvas struct {
	rows   [][]cell
	width  int
	top    int
	margin int
	bg     lipgloss.Style
}

func newCanvas(width, height, top int, metrics layout.Metrics, bg lipgloss.Style) *canvas {
	rows := make([][]cell, height)
	for i := range rows {
		rows[i] = make([]cell, width)
	}
	return &canvas{
		rows:   rows,
		width:  width,
		top:    top,
		margin: marginCells(metrics),
		bg:     bg,
	}
}

// marginCells converts the pixel margin into whole terminal columns.
func marginCells(m layout.Metrics) int {
	adv := m.Advance()
	if adv <= 0 || m.LeftMargin <= 0 {
		return 0
	}
	return int(math.Round(m.LeftMargin / adv))
}

func (c *canvas) put(line, col int, r rune, style lipgloss.Style) {
	row := line - c.top
	if row < 0 || row >= len(c.rows) {
		return
	}
	col += c.margin
	w := runewidth.RuneWidth(r)
	if w <= 0 || col < 0 || col+w > c.width {
		return
	}
	c.rows[row][col] = cell{s: style.Render(string(r)), width: w}
	for i := 1; i < w; i++ {
		c.rows[row][col+i] = cell{cont: true}
	}
}

// drawInstructions paints the highlighted practice text.
func (c *canvas) drawInstructions(draws []highlight.DrawInstruction, metrics layout.Metrics, styles *styleCache) {
	for _, d := range draws {
		c.put(d.Line, metrics.Column(d.X), d.Char, styles.get(d.Color))
	}
}

// drawTranscript overlays transcript lines at the left margin. Spaces are
// left transparent so the practice glyph beneath stays visible.
func (c *canvas) drawTranscript(lines []string, style lipgloss.Style) {
	for i, line := range lines {
		col := 0
		for _, r := range line {
			if r != ' ' {
				c.put(i, col, r, style)
			}
			col++
		}
	}
}

func (c *canvas) lines() []string {
	out := make([]string, 0, len(c.rows))
	blank := c.bg.Render(" ")
	for _, row := range c.rows {
		var b strings.Builder
		for _, item := range row {
			switch {
			case item.cont:
				continue
			case item.s == "":
				b.WriteString(blank)
			default:
				b.WriteString(item.s)
			}
		}
		out = append(out, b.String())
	}
	return out
}

// styleCache holds one lipgloss style per palette color.
type styleCache struct {
	bg     lipgloss.Style
	styles map[palette.Color]lipgloss.Style
}

func newStyleCache(bg lipgloss.Style) *styleCache {
	return &styleCache{bg: bg, styles: map[palette.Color]lipgloss.Style{}}
}

func (s *styleCache) get(c palette.Color) lipgloss.Style {
	if st, ok := s.styles[c]; ok {
		return st
	}
	st := s.bg.Foreground(lipgloss.Color(c.Hex()))
	s.styles[c] = st
	return st
}
