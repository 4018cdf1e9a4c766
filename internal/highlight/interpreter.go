// Package highlight turns lexical highlight events into positioned glyphs.
package highlight

import (
	"errors"
	"fmt"
	"log"
	"unicode/utf8"

	"github.com/verte-zerg/codetype/internal/layout"
	"github.com/verte-zerg/codetype/internal/palette"
)

// ErrInvalidSpan reports a source event that does not fit the text it was
// generated for.
var ErrInvalidSpan = errors.New("invalid highlight span")

// DrawInstruction places one glyph in one color.
type DrawInstruction struct {
	Char     rune
	Line     int
	X        float64
	Y        float64
	Category palette.Category
	Color    palette.Color
}

// Interpreter folds an event stream into draw instructions.
type Interpreter struct {
	Metrics layout.Metrics
	// Warnf receives non-fatal conditions. Defaults to log.Printf.
	Warnf func(format string, args ...any)
}

// pass is the fold state of a single run.
type pass struct {
	cursor   *layout.Cursor
	category palette.Category
	color    palette.Color
	out      []DrawInstruction
}

// Run interprets events over text. It never reuses state between calls.
func (in Interpreter) Run(text string, events []Event) ([]DrawInstruction, error) {
	base, err := palette.Resolve(palette.Text)
	if err != nil {
		return nil, err
	}
	p := &pass{
		cursor:   layout.NewCursor(in.Metrics),
		category: palette.Text,
		color:    base,
		out:      make([]DrawInstruction, 0, len(text)),
	}
	for i, ev := range events {
		switch ev.Kind {
		case KindSource:
			if err := p.span(text, ev); err != nil {
				return nil, fmt.Errorf("event %d: %w", i, err)
			}
		case KindStyleStart:
			if ev.Category == p.category {
				continue
			}
			color, err := palette.Resolve(ev.Category)
			if err != nil {
				in.warnf("highlight: %v; keeping %s", err, p.category)
				continue
			}
			p.category = ev.Category
			p.color = color
		}
	}
	return p.out, nil
}

func (p *pass) span(text string, ev Event) error {
	if ev.Start < 0 || ev.End < ev.Start || ev.End > len(text) {
		return fmt.Errorf("%w: [%d,%d) outside text of %d bytes", ErrInvalidSpan, ev.Start, ev.End, len(text))
	}
	chunk := text[ev.Start:ev.End]
	if !boundary(text, ev.Start) || !boundary(text, ev.End) || !utf8.ValidString(chunk) {
		return fmt.Errorf("%w: [%d,%d) is not valid UTF-8", ErrInvalidSpan, ev.Start, ev.End)
	}
	for _, r := range chunk {
		g, ok := p.cursor.Step(r)
		if !ok {
			continue
		}
		p.out = append(p.out, DrawInstruction{
			Char:     g.Char,
			Line:     g.Line,
			X:        g.X,
			Y:        g.Y,
			Category: p.category,
			Color:    p.color,
		})
	}
	return nil
}

func boundary(text string, i int) bool {
	return i == len(text) || utf8.RuneStart(text[i])
}

func (in Interpreter) warnf(format string, args ...any) {
	if in.Warnf != nil {
		in.Warnf(format, args...)
		return
	}
	log.Printf(format, args...)
}
