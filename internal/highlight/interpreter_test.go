package highlight

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/codetype/internal/layout"
	"github.com/verte-zerg/codetype/internal/palette"
)

var testMetrics = layout.Metrics{FontSize: 14, LeftMargin: 12}

func mustResolve(t *testing.T, c palette.Category) palette.Color {
	t.Helper()
	color, err := palette.Resolve(c)
	require.NoError(t, err)
	return color
}

func TestRunKeywordThenDefault(t *testing.T) {
	text := "fn main() {}\n"
	events := []Event{
		StyleStart(palette.Keyword),
		SourceSpan(0, 2),
		StyleStart(palette.Text),
		SourceSpan(2, 12),
		SourceSpan(12, 13),
	}
	in := Interpreter{Metrics: testMetrics}
	draws, err := in.Run(text, events)
	require.NoError(t, err)

	var chars []rune
	for _, d := range draws {
		chars = append(chars, d.Char)
	}
	require.Equal(t, "fnmain(){}", string(chars))

	keyword := mustResolve(t, palette.Keyword)
	base := mustResolve(t, palette.Text)
	require.Equal(t, keyword, draws[0].Color)
	require.Equal(t, keyword, draws[1].Color)
	require.Equal(t, testMetrics.LeftMargin, draws[0].X)
	require.Equal(t, 0, draws[0].Line)
	for _, d := range draws[2:] {
		require.Equal(t, base, d.Color)
		require.Equal(t, 0, d.Line)
		require.NotEqual(t, '\n', d.Char)
	}
}

func TestRunSpanPastEndIsFatal(t *testing.T) {
	text := "fn main() {}\n"
	events := []Event{
		StyleStart(palette.Keyword),
		SourceSpan(0, 2),
		StyleStart(palette.Text),
		SourceSpan(2, 13),
		SourceSpan(13, 14),
	}
	_, err := Interpreter{Metrics: testMetrics}.Run(text, events)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidSpan))
}

func TestRunSplitRuneIsFatal(t *testing.T) {
	text := "é!"
	_, err := Interpreter{Metrics: testMetrics}.Run(text, []Event{SourceSpan(0, 1)})
	require.True(t, errors.Is(err, ErrInvalidSpan))

	_, err = Interpreter{Metrics: testMetrics}.Run(text, []Event{SourceSpan(2, 1)})
	require.True(t, errors.Is(err, ErrInvalidSpan))
}

func TestRunUnmappedCategoryKeepsColor(t *testing.T) {
	var warnings []string
	in := Interpreter{
		Metrics: testMetrics,
		Warnf: func(format string, args ...any) {
			warnings = append(warnings, fmt.Sprintf(format, args...))
		},
	}
	events := []Event{
		StyleStart(palette.String),
		SourceSpan(0, 1),
		StyleStart(palette.Category(42)),
		SourceSpan(1, 2),
		StyleEnd(),
		SourceSpan(2, 3),
	}
	draws, err := in.Run("abc", events)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	require.Contains(t, warnings[0], "42")
	str := mustResolve(t, palette.String)
	for _, d := range draws {
		require.Equal(t, str, d.Color)
		require.Equal(t, palette.String, d.Category)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	text := "package main\n\nfunc main() {\n\tprintln(\"hi\", 42)\n}\n"
	events, err := ChromaParser{}.Parse("main.go", text)
	require.NoError(t, err)
	in := Interpreter{Metrics: testMetrics}
	first, err := in.Run(text, events)
	require.NoError(t, err)
	second, err := in.Run(text, events)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestRunXPositionsWithoutTabs(t *testing.T) {
	text := "ab  c\nxyz"
	draws, err := Interpreter{Metrics: testMetrics}.Run(text, Plain(text))
	require.NoError(t, err)
	lines := strings.Split(text, "\n")
	idx := 0
	for lineNo, line := range lines {
		for n, r := range []rune(line) {
			if r == ' ' {
				continue
			}
			d := draws[idx]
			idx++
			require.Equal(t, lineNo, d.Line)
			require.Equal(t, testMetrics.LeftMargin+float64(n)*testMetrics.Advance(), d.X)
			require.Equal(t, testMetrics.Y(lineNo), d.Y)
		}
	}
	require.Equal(t, len(draws), idx)
}

func TestRunDistinctLinesMatchNonBlankLines(t *testing.T) {
	texts := []string{
		"",
		"\n\n\n",
		"one\n\ntwo\n \t \nthree",
		"\r\n\x00\nx",
		"trailing\n",
		"\t\tindented\n\n\n\tmore\n",
	}
	for _, text := range texts {
		draws, err := Interpreter{Metrics: testMetrics}.Run(text, Plain(text))
		require.NoError(t, err)
		seen := map[int]struct{}{}
		for _, d := range draws {
			seen[d.Line] = struct{}{}
		}
		want := 0
		for _, line := range strings.Split(text, "\n") {
			if strings.IndexFunc(line, func(r rune) bool {
				return !unicode.IsSpace(r) && !unicode.IsControl(r)
			}) >= 0 {
				want++
			}
		}
		require.Equal(t, want, len(seen), "text %q", text)
	}
}
