// Package highlight turns lexical highlight events into positioned glyphs.
package highlight

import (
	"fmt"

	"github.com/verte-zerg/codetype/internal/palette"
)

// EventKind distinguishes highlight event variants.
type EventKind int

const (
	// KindSource covers a byte range of the text under the current style.
	KindSource EventKind = iota
	// KindStyleStart switches the active category.
	KindStyleStart
	// KindStyleEnd closes a category. Renderers ignore it.
	KindStyleEnd
)

// Event is one entry of the linear stream produced by a Parser.
type Event struct {
	Kind     EventKind
	Start    int
	End      int
	Category palette.Category
}

// SourceSpan returns a source event over text[start:end].
func SourceSpan(start, end int) Event {
	return Event{Kind: KindSource, Start: start, End: end}
}

// StyleStart returns an event that activates category c.
func StyleStart(c palette.Category) Event {
	return Event{Kind: KindStyleStart, Category: c}
}

// StyleEnd returns a category close event.
func StyleEnd() Event {
	return Event{Kind: KindStyleEnd}
}

func (e Event) String() string {
	switch e.Kind {
	case KindSource:
		return fmt.Sprintf("Source(%d,%d)", e.Start, e.End)
	case KindStyleStart:
		return fmt.Sprintf("StyleStart(%s)", e.Category)
	case KindStyleEnd:
		return "StyleEnd"
	default:
		return fmt.Sprintf("Event(%d)", int(e.Kind))
	}
}

// Parser produces highlight events over byte ranges of exactly text.
type Parser interface {
	Parse(path, text string) ([]Event, error)
}

// Plain returns a stream that renders text in the default category.
func Plain(text string) []Event {
	if text == "" {
		return nil
	}
	return []Event{StyleStart(palette.Text), SourceSpan(0, len(text)), StyleEnd()}
}
