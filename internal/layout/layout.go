// Package layout tracks glyph positions for a monospace text pass.
package layout

import (
	"math"
	"unicode"
)

const (
	advanceRatio = 0.615
	pitchRatio   = 1.3
	tabAdvances  = 2
)

// Metrics describes the fixed-width font approximation.
type Metrics struct {
	FontSize   float64
	LeftMargin float64
}

// Advance returns the horizontal advance of one glyph.
func (m Metrics) Advance() float64 {
	return m.FontSize * advanceRatio
}

// LinePitch returns the vertical distance between baselines.
func (m Metrics) LinePitch() float64 {
	return math.Floor(m.FontSize * pitchRatio)
}

// Y returns the baseline of a line. Line 0 sits one pitch below the top.
func (m Metrics) Y(line int) float64 {
	return m.LinePitch() * float64(line+1)
}

// Column converts a pixel x into a zero-based glyph column.
func (m Metrics) Column(x float64) int {
	adv := m.Advance()
	if adv <= 0 {
		return 0
	}
	col := int(math.Round((x - m.LeftMargin) / adv))
	if col < 0 {
		return 0
	}
	return col
}

// Glyph is a printable character placed by the cursor.
type Glyph struct {
	Char rune
	Line int
	X    float64
	Y    float64
}

// Cursor walks text one rune at a time. X is derived from a whole number of
// advances so positions never accumulate rounding drift.
type Cursor struct {
	metrics  Metrics
	line     int
	advances int
}

// NewCursor returns a cursor at line 0 on the left margin.
func NewCursor(m Metrics) *Cursor {
	return &Cursor{metrics: m}
}

// Line returns the current line number.
func (c *Cursor) Line() int { return c.line }

// X returns the current pixel x.
func (c *Cursor) X() float64 {
	return c.metrics.LeftMargin + float64(c.advances)*c.metrics.Advance()
}

// Reset moves the cursor back to the start of a pass.
func (c *Cursor) Reset() {
	c.line = 0
	c.advances = 0
}

// Step advances past r. It reports a glyph only for printable runes.
func (c *Cursor) Step(r rune) (Glyph, bool) {
	switch {
	case r == '\n':
		c.line++
		c.advances = 0
		return Glyph{}, false
	case r == '\t':
		c.advances += tabAdvances
		return Glyph{}, false
	case r == ' ':
		c.advances++
		return Glyph{}, false
	case unicode.IsControl(r) || unicode.IsSpace(r):
		return Glyph{}, false
	}
	g := Glyph{Char: r, Line: c.line, X: c.X(), Y: c.metrics.Y(c.line)}
	c.advances++
	return g, true
}
