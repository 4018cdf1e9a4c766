// Package palette resolves lexical categories to terminal colors.
package palette

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Category identifies a lexical category emitted by a parser integration.
type Category int

// Known categories. The numbering is part of the parser contract.
const (
	Text Category = iota
	Comment
	Keyword
	String
	Number
	Embedded
	Type
	TypeBuiltin
	Function
	FunctionBuiltin
	FunctionMacro
	Constant
	ConstantBuiltin
	Variable
	VariableBuiltin
	VariableParameter
	Property
	Operator
	Punctuation
	PunctuationBracket
	PunctuationDelimiter
	Attribute

	categoryCount
)

// ErrUnmappedCategory is returned for a category without a palette entry.
var ErrUnmappedCategory = errors.New("unmapped highlight category")

var categoryNames = [categoryCount]string{
	Text:                 "text",
	Comment:              "comment",
	Keyword:              "keyword",
	String:               "string",
	Number:               "number",
	Embedded:             "embedded",
	Type:                 "type",
	TypeBuiltin:          "type.builtin",
	Function:             "function",
	FunctionBuiltin:      "function.builtin",
	FunctionMacro:        "function.macro",
	Constant:             "constant",
	ConstantBuiltin:      "constant.builtin",
	Variable:             "variable",
	VariableBuiltin:      "variable.builtin",
	VariableParameter:    "variable.parameter",
	Property:             "property",
	Operator:             "operator",
	Punctuation:          "punctuation",
	PunctuationBracket:   "punctuation.bracket",
	PunctuationDelimiter: "punctuation.delimiter",
	Attribute:            "attribute",
}

// categoryPalette maps each category to an index into the xterm palette.
var categoryPalette = [categoryCount]uint8{
	Text:                 250,
	Comment:              244,
	Keyword:              176,
	String:               114,
	Number:               215,
	Embedded:             252,
	Type:                 179,
	TypeBuiltin:          180,
	Function:             75,
	FunctionBuiltin:      74,
	FunctionMacro:        140,
	Constant:             209,
	ConstantBuiltin:      173,
	Variable:             250,
	VariableBuiltin:      203,
	VariableParameter:    223,
	Property:             117,
	Operator:             152,
	Punctuation:          246,
	PunctuationBracket:   248,
	PunctuationDelimiter: 246,
	Attribute:            150,
}

// Color is an RGBA color with 8 bits per channel.
type Color struct {
	R, G, B, A uint8
}

// Hex returns the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Categories returns every known category in index order.
func Categories() []Category {
	out := make([]Category, 0, categoryCount)
	for c := Text; c < categoryCount; c++ {
		out = append(out, c)
	}
	return out
}

// Known reports whether c has a palette entry.
func (c Category) Known() bool {
	return c >= 0 && c < categoryCount
}

// String returns the capture name of the category.
func (c Category) String() string {
	if !c.Known() {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryNames[c]
}

// PaletteIndex returns the xterm palette index for c.
func PaletteIndex(c Category) (int, bool) {
	if !c.Known() {
		return 0, false
	}
	return int(categoryPalette[c]), true
}

// XtermHex returns the stored hex string for a 256-color palette index.
func XtermHex(index uint8) string {
	return xterm[index]
}

// Resolve maps a category to its RGB color at full opacity.
func Resolve(c Category) (Color, error) {
	idx, ok := PaletteIndex(c)
	if !ok {
		return Color{}, fmt.Errorf("%w: %d", ErrUnmappedCategory, int(c))
	}
	return FromHex(xterm[idx])
}

// FromHex decodes a #rrggbb string.
func FromHex(s string) (Color, error) {
	parsed, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := parsed.RGB255()
	return Color{R: r, G: g, B: b, A: 0xff}, nil
}
