package session

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/codetype/internal/highlight"
	"github.com/verte-zerg/codetype/internal/layout"
	"github.com/verte-zerg/codetype/internal/model"
	"github.com/verte-zerg/codetype/internal/sampler"
)

var testMetrics = layout.Metrics{FontSize: 14, LeftMargin: 12}

var errBoom = errors.New("boom")

type scriptedSource struct {
	initial    sampler.Practice
	initialErr error
	next       []sampler.Practice
	nextErr    error
}

func (s *scriptedSource) Initial() (sampler.Practice, error) {
	if s.initialErr != nil {
		return sampler.Practice{Text: sampler.Placeholder}, s.initialErr
	}
	return s.initial, nil
}

func (s *scriptedSource) Next() (sampler.Practice, error) {
	if len(s.next) == 0 {
		return sampler.Practice{}, fmt.Errorf("%w: %w", sampler.ErrNoReadableCandidate, s.nextErr)
	}
	p := s.next[0]
	s.next = s.next[1:]
	return p, nil
}

type recordingParser struct {
	texts []string
}

func (p *recordingParser) Parse(_, text string) ([]highlight.Event, error) {
	p.texts = append(p.texts, text)
	return highlight.Plain(text), nil
}

type failingParser struct{}

func (failingParser) Parse(string, string) ([]highlight.Event, error) {
	return nil, errBoom
}

type brokenParser struct{}

func (brokenParser) Parse(_, text string) ([]highlight.Event, error) {
	return []highlight.Event{highlight.SourceSpan(0, len(text)+1)}, nil
}

type memRecorder struct {
	rounds []model.RoundStats
}

func (r *memRecorder) RecordRound(stats model.RoundStats) {
	r.rounds = append(r.rounds, stats)
}

func quiet(string, ...any) {}

func newSession(t *testing.T, src Source, parser highlight.Parser, rec Recorder) *Session {
	t.Helper()
	clock := time.Unix(1000, 0)
	s, err := New(src, parser, Options{
		Metrics:  testMetrics,
		Recorder: rec,
		Warnf:    quiet,
		Now: func() time.Time {
			clock = clock.Add(time.Second)
			return clock
		},
	})
	require.NoError(t, err)
	return s
}

func typeString(t *testing.T, s *Session, text string) {
	t.Helper()
	for _, r := range text {
		require.NoError(t, s.HandleKey(RuneKey(r)))
	}
}

func TestClassify(t *testing.T) {
	require.Equal(t, ActionAppend, Classify(RuneKey('a')))
	require.Equal(t, ActionAppend, Classify(RuneKey(' ')))
	require.Equal(t, ActionAppend, Classify(RuneKey('~')))
	require.Equal(t, ActionIgnore, Classify(RuneKey('é')))
	require.Equal(t, ActionIgnore, Classify(RuneKey('\x7f')))
	require.Equal(t, ActionNewline, Classify(Key{Code: KeyEnter}))
	require.Equal(t, ActionNewline, Classify(Key{Code: KeyBackspace}))
	require.Equal(t, ActionQuit, Classify(Key{Code: KeyEscape}))
	require.Equal(t, ActionNext, Classify(Key{Code: KeyTab}))
	require.Equal(t, ActionIgnore, Classify(Key{Code: KeyOther, Name: "f5"}))
}

func TestNewRendersInitialText(t *testing.T) {
	parser := &recordingParser{}
	src := &scriptedSource{initial: sampler.Practice{Path: "a.go", Text: "ab\ncd"}}
	s := newSession(t, src, parser, nil)

	require.Equal(t, Running, s.State())
	require.Equal(t, []string{"ab\ncd"}, parser.texts)
	require.Len(t, s.Draws(), 4)
	require.Equal(t, 2, s.PracticeLines())
	require.Equal(t, "", s.Transcript())
}

func TestEnterSplitsTranscriptLines(t *testing.T) {
	s := newSession(t, &scriptedSource{initial: sampler.Practice{Path: "a.go", Text: "x"}}, &recordingParser{}, nil)
	typeString(t, s, "ab")
	require.NoError(t, s.HandleKey(Key{Code: KeyEnter}))
	typeString(t, s, "c")

	require.Equal(t, "ab\nc", s.Transcript())
	require.Equal(t, []string{"ab", "c"}, s.TranscriptLines())
	require.Equal(t, 3, s.Typed())
}

func TestBackspaceInsertsNewline(t *testing.T) {
	s := newSession(t, &scriptedSource{initial: sampler.Practice{Path: "a.go", Text: "x"}}, &recordingParser{}, nil)
	typeString(t, s, "ab")
	require.NoError(t, s.HandleKey(Key{Code: KeyBackspace}))
	require.Equal(t, "ab\n", s.Transcript())
}

func TestTabResamplesAndReinterprets(t *testing.T) {
	parser := &recordingParser{}
	src := &scriptedSource{
		initial: sampler.Practice{Path: "old.go", Text: "old"},
		next:    []sampler.Practice{{Path: "new.go", Text: "new"}},
	}
	s := newSession(t, src, parser, nil)
	typeString(t, s, "ol")

	require.NoError(t, s.HandleKey(Key{Code: KeyTab}))
	require.Equal(t, Running, s.State())
	require.Equal(t, "", s.Transcript())
	require.Equal(t, "new", s.Practice().Text)
	require.Equal(t, []string{"old", "new"}, parser.texts)

	var chars []rune
	for _, d := range s.Draws() {
		chars = append(chars, d.Char)
	}
	require.Equal(t, "new", string(chars))
}

func TestEscapeStops(t *testing.T) {
	s := newSession(t, &scriptedSource{initial: sampler.Practice{Path: "a.go", Text: "x"}}, &recordingParser{}, nil)
	err := s.HandleKeys([]Key{RuneKey('a'), {Code: KeyEscape}, RuneKey('b')})
	require.NoError(t, err)
	require.Equal(t, Stopped, s.State())
	require.Equal(t, "a", s.Transcript())

	require.NoError(t, s.HandleKey(RuneKey('c')))
	require.Equal(t, "a", s.Transcript())
}

func TestUnknownKeyIsReportedAndIgnored(t *testing.T) {
	var warnings []string
	s, err := New(&scriptedSource{initial: sampler.Practice{Path: "a.go", Text: "x"}}, &recordingParser{}, Options{
		Metrics: testMetrics,
		Warnf: func(format string, args ...any) {
			warnings = append(warnings, fmt.Sprintf(format, args...))
		},
	})
	require.NoError(t, err)
	require.NoError(t, s.HandleKey(Key{Code: KeyOther, Name: "f5"}))
	require.NoError(t, s.HandleKey(RuneKey('ü')))
	require.Equal(t, "", s.Transcript())
	require.Len(t, warnings, 2)
	require.Contains(t, warnings[0], "f5")
}

func TestNextFailureAfterLoadIsFatal(t *testing.T) {
	src := &scriptedSource{initial: sampler.Practice{Path: "a.go", Text: "x"}, nextErr: errBoom}
	s := newSession(t, src, &recordingParser{}, nil)

	err := s.HandleKey(Key{Code: KeyTab})
	require.Error(t, err)
	require.True(t, errors.Is(err, sampler.ErrNoReadableCandidate))
	require.Equal(t, Stopped, s.State())
	require.Equal(t, err, s.Err())
}

func TestPlaceholderSurvivesFailedNext(t *testing.T) {
	src := &scriptedSource{initialErr: sampler.ErrNoCandidates, nextErr: errBoom}
	s := newSession(t, src, &recordingParser{}, nil)
	require.True(t, s.Practice().IsPlaceholder())

	typeString(t, s, "hi")
	require.NoError(t, s.HandleKey(Key{Code: KeyTab}))
	require.Equal(t, Running, s.State())
	require.True(t, s.Practice().IsPlaceholder())
	require.Equal(t, "", s.Transcript())
}

func TestPlaceholderReplacedOnNext(t *testing.T) {
	src := &scriptedSource{
		initialErr: sampler.ErrNoCandidates,
		next:       []sampler.Practice{{Path: "b.go", Text: "b"}},
		nextErr:    errBoom,
	}
	s := newSession(t, src, &recordingParser{}, nil)
	require.NoError(t, s.HandleKey(Key{Code: KeyTab}))
	require.Equal(t, "b.go", s.Practice().Path)

	require.Error(t, s.HandleKey(Key{Code: KeyTab}))
	require.Equal(t, Stopped, s.State())
}

func TestParserFailureRendersPlain(t *testing.T) {
	s := newSession(t, &scriptedSource{initial: sampler.Practice{Path: "a.go", Text: "abc"}}, failingParser{}, nil)
	require.Len(t, s.Draws(), 3)
}

func TestInvalidSpanIsFatal(t *testing.T) {
	_, err := New(&scriptedSource{initial: sampler.Practice{Path: "a.go", Text: "abc"}}, brokenParser{}, Options{Metrics: testMetrics, Warnf: quiet})
	require.Error(t, err)
	require.True(t, errors.Is(err, highlight.ErrInvalidSpan))
}

func TestRoundsAreRecorded(t *testing.T) {
	rec := &memRecorder{}
	src := &scriptedSource{
		initial: sampler.Practice{Path: "a.go", Text: "ab\ncd"},
		next:    []sampler.Practice{{Path: "b.rs", Text: "x"}},
	}
	s := newSession(t, src, &recordingParser{}, rec)

	require.NoError(t, s.HandleKey(Key{Code: KeyTab}))
	require.Empty(t, rec.rounds)

	typeString(t, s, "y")
	require.NoError(t, s.HandleKey(Key{Code: KeyEscape}))
	require.Len(t, rec.rounds, 1)
	round := rec.rounds[0]
	require.Equal(t, "b.rs", round.Path)
	require.Equal(t, ".rs", round.Ext)
	require.Equal(t, 1, round.TypedChars)
	require.Equal(t, 0, round.Correct)
	require.Equal(t, 1, round.Incorrect)
	require.Equal(t, int64(1000), round.DurationMs)
}
