// Package session implements the typing session state machine.
package session

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/codetype/internal/highlight"
	"github.com/verte-zerg/codetype/internal/layout"
	"github.com/verte-zerg/codetype/internal/model"
	"github.com/verte-zerg/codetype/internal/sampler"
	"github.com/verte-zerg/codetype/internal/stats"
)

// State is the lifecycle state of a session.
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Source supplies practice texts.
type Source interface {
	Initial() (sampler.Practice, error)
	Next() (sampler.Practice, error)
}

// Recorder receives finished rounds.
type Recorder interface {
	RecordRound(model.RoundStats)
}

// Options configures a Session.
type Options struct {
	Metrics  layout.Metrics
	Recorder Recorder
	Now      func() time.Time
	Warnf    func(format string, args ...any)
}

// Session owns the practice text, the transcript and the cached draw list.
type Session struct {
	source   Source
	parser   highlight.Parser
	interp   highlight.Interpreter
	recorder Recorder
	now      func() time.Time
	warnf    func(format string, args ...any)

	state    State
	err      error
	sampled  bool
	practice sampler.Practice
	draws    []highlight.DrawInstruction
	lines    int

	transcript strings.Builder
	typed      int
	started    bool
	startedAt  time.Time
}

// New loads the initial practice text and enters Running. A failed initial
// sample falls back to the placeholder text.
func New(src Source, parser highlight.Parser, opts Options) (*Session, error) {
	s := &Session{
		source:   src,
		parser:   parser,
		recorder: opts.Recorder,
		now:      opts.Now,
		warnf:    opts.Warnf,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.warnf == nil {
		s.warnf = log.Printf
	}
	s.interp = highlight.Interpreter{Metrics: opts.Metrics, Warnf: s.warnf}

	practice, err := src.Initial()
	if err != nil {
		s.warnf("session: initial load failed, showing placeholder: %v", err)
	} else {
		s.sampled = true
	}
	if err := s.load(practice); err != nil {
		return nil, err
	}
	s.state = Running
	return s, nil
}

// HandleKeys processes pending keystrokes in order until the session stops.
func (s *Session) HandleKeys(keys []Key) error {
	for _, k := range keys {
		if err := s.HandleKey(k); err != nil {
			return err
		}
		if s.state == Stopped {
			return nil
		}
	}
	return nil
}

// HandleKey applies one keystroke. It returns an error only for fatal
// conditions, after which the session is Stopped.
func (s *Session) HandleKey(k Key) error {
	if s.state == Stopped {
		return nil
	}
	switch Classify(k) {
	case ActionAppend:
		s.markStarted()
		s.transcript.WriteRune(k.Rune)
		s.typed++
	case ActionNewline:
		s.markStarted()
		s.transcript.WriteByte('\n')
	case ActionQuit:
		s.finishRound()
		s.state = Stopped
	case ActionNext:
		return s.next()
	default:
		s.warnf("session: ignoring key %s", k)
	}
	return nil
}

func (s *Session) next() error {
	s.finishRound()
	practice, err := s.source.Next()
	if err != nil {
		if !s.sampled {
			s.warnf("session: no practice text available: %v", err)
			s.resetTranscript()
			return nil
		}
		return s.fail(fmt.Errorf("failed to sample next practice text: %w", err))
	}
	s.sampled = true
	if err := s.load(practice); err != nil {
		return s.fail(err)
	}
	return nil
}

// load parses and interprets a new practice text and resets the transcript.
func (s *Session) load(p sampler.Practice) error {
	events, err := s.parser.Parse(p.Path, p.Text)
	if err != nil {
		s.warnf("session: highlighting %s failed, rendering plain: %v", p.Path, err)
		events = highlight.Plain(p.Text)
	}
	draws, err := s.interp.Run(p.Text, events)
	if err != nil {
		return fmt.Errorf("failed to lay out %s: %w", displayPath(p), err)
	}
	s.practice = p
	s.draws = draws
	s.lines = strings.Count(p.Text, "\n") + 1
	s.resetTranscript()
	return nil
}

func (s *Session) fail(err error) error {
	s.err = err
	s.state = Stopped
	return err
}

func (s *Session) markStarted() {
	if s.started {
		return
	}
	s.started = true
	s.startedAt = s.now()
}

func (s *Session) resetTranscript() {
	s.transcript.Reset()
	s.typed = 0
	s.started = false
	s.startedAt = time.Time{}
}

func (s *Session) finishRound() {
	if !s.started || s.recorder == nil || s.practice.IsPlaceholder() {
		return
	}
	ended := s.now()
	transcript := s.transcript.String()
	correct, incorrect := stats.CompareLines(s.practice.Text, transcript)
	s.recorder.RecordRound(model.RoundStats{
		StartedAt:     s.startedAt,
		EndedAt:       ended,
		Path:          s.practice.Path,
		Ext:           filepath.Ext(s.practice.Path),
		PracticeChars: len([]rune(s.practice.Text)),
		TypedChars:    s.typed,
		Correct:       correct,
		Incorrect:     incorrect,
		DurationMs:    ended.Sub(s.startedAt).Milliseconds(),
	})
}

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Err returns the fatal error that stopped the session, if any.
func (s *Session) Err() error { return s.err }

// Practice returns the current practice text.
func (s *Session) Practice() sampler.Practice { return s.practice }

// Draws returns the cached draw instructions for the practice text.
func (s *Session) Draws() []highlight.DrawInstruction { return s.draws }

// PracticeLines returns the number of lines in the practice text.
func (s *Session) PracticeLines() int { return s.lines }

// Transcript returns everything typed since the practice text was loaded.
func (s *Session) Transcript() string { return s.transcript.String() }

// TranscriptLines splits the transcript on newlines.
func (s *Session) TranscriptLines() []string {
	return strings.Split(s.transcript.String(), "\n")
}

// Typed returns the number of printable characters typed.
func (s *Session) Typed() int { return s.typed }

// StartedAt returns when the first keystroke of the round arrived.
func (s *Session) StartedAt() (time.Time, bool) { return s.startedAt, s.started }

func displayPath(p sampler.Practice) string {
	if p.Path == "" {
		return "placeholder"
	}
	return p.Path
}
