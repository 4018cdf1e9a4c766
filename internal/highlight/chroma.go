// Package highlight turns lexical highlight events into positioned glyphs.
package highlight

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/verte-zerg/codetype/internal/palette"
)

// ErrLexerMismatch reports lexer output that does not reproduce the input.
var ErrLexerMismatch = errors.New("lexer output does not match text")

const (
	brackets   = "()[]{}<>"
	delimiters = ",;.:"
)

// ChromaParser emits highlight events from chroma lexers.
type ChromaParser struct {
	// Language forces a lexer by name. Empty selects by file name, then content.
	Language string
}

// Parse tokenises text and emits one styled span per token.
func (p ChromaParser) Parse(path, text string) ([]Event, error) {
	if text == "" {
		return nil, nil
	}
	lexer := chroma.Coalesce(p.lexerFor(path, text))
	it, err := lexer.Tokenise(&chroma.TokeniseOptions{State: "root"}, text)
	if err != nil {
		return nil, fmt.Errorf("failed to tokenise %s: %w", path, err)
	}
	events := make([]Event, 0, 64)
	offset := 0
	for tok := it(); tok != chroma.EOF; tok = it() {
		if offset >= len(text) {
			// Some lexers append a newline the text never had.
			break
		}
		value := tok.Value
		if offset+len(value) > len(text) {
			value = value[:len(text)-offset]
		}
		if value == "" {
			continue
		}
		end := offset + len(value)
		if text[offset:end] != value {
			return nil, fmt.Errorf("%w: diverges at byte %d", ErrLexerMismatch, offset)
		}
		events = append(events, StyleStart(categoryFor(tok.Type, value)), SourceSpan(offset, end), StyleEnd())
		offset = end
	}
	if offset != len(text) {
		return nil, fmt.Errorf("%w: covered %d of %d bytes", ErrLexerMismatch, offset, len(text))
	}
	return events, nil
}

func (p ChromaParser) lexerFor(path, text string) chroma.Lexer {
	if p.Language != "" {
		if l := lexers.Get(p.Language); l != nil {
			return l
		}
	}
	if path != "" {
		if l := lexers.Match(filepath.Base(path)); l != nil {
			return l
		}
	}
	if l := lexers.Analyse(text); l != nil {
		return l
	}
	return lexers.Fallback
}

func categoryFor(t chroma.TokenType, value string) palette.Category {
	switch {
	case t == chroma.CommentPreproc || t == chroma.CommentPreprocFile:
		return palette.FunctionMacro
	case t.InCategory(chroma.Comment):
		return palette.Comment
	case t == chroma.KeywordType:
		return palette.TypeBuiltin
	case t == chroma.KeywordConstant:
		return palette.ConstantBuiltin
	case t.InCategory(chroma.Keyword), t == chroma.OperatorWord:
		return palette.Keyword
	case t.InCategory(chroma.Operator):
		return palette.Operator
	case t == chroma.LiteralStringInterpol || t == chroma.LiteralStringEscape:
		return palette.Embedded
	case t.InSubCategory(chroma.LiteralString):
		return palette.String
	case t.InSubCategory(chroma.LiteralNumber):
		return palette.Number
	case t.InCategory(chroma.Literal):
		return palette.Constant
	case t.InCategory(chroma.Name):
		return nameCategory(t)
	case t == chroma.Punctuation:
		return punctuationCategory(value)
	}
	return palette.Text
}

func nameCategory(t chroma.TokenType) palette.Category {
	switch t {
	case chroma.NameFunction:
		return palette.Function
	case chroma.NameFunctionMagic:
		return palette.FunctionMacro
	case chroma.NameBuiltin:
		return palette.FunctionBuiltin
	case chroma.NameBuiltinPseudo, chroma.NameVariableMagic:
		return palette.VariableBuiltin
	case chroma.NameClass, chroma.NameException:
		return palette.Type
	case chroma.NameConstant:
		return palette.Constant
	case chroma.NameAttribute, chroma.NameDecorator, chroma.NameTag, chroma.NameLabel:
		return palette.Attribute
	case chroma.NameProperty:
		return palette.Property
	}
	return palette.Variable
}

func punctuationCategory(value string) palette.Category {
	trimmed := strings.TrimSpace(value)
	switch {
	case trimmed == "":
		return palette.Punctuation
	case strings.Trim(trimmed, brackets) == "":
		return palette.PunctuationBracket
	case strings.Trim(trimmed, delimiters) == "":
		return palette.PunctuationDelimiter
	}
	return palette.Punctuation
}
