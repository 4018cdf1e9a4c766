// Package sampler discovers candidate source files and picks practice texts.
package sampler

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"math/rand"
	"time"
	"unicode/utf8"
)

// Placeholder is shown when no candidate could be loaded at startup.
const Placeholder = "Please press TAB!"

var (
	// ErrNoReadableCandidate is returned once the retry budget is spent.
	ErrNoReadableCandidate = errors.New("no readable candidate found")
	// ErrNoCandidates is returned when discovery found nothing to sample.
	ErrNoCandidates = errors.New("candidate set is empty")

	errInvalidUTF8 = errors.New("file is not valid UTF-8")
	errEmptyText   = errors.New("file is empty")
)

// RetryPolicy bounds how many candidates are tried per sample.
type RetryPolicy struct {
	MaxAttempts int
}

// DefaultRetryPolicy tries up to 100 candidates.
var DefaultRetryPolicy = RetryPolicy{MaxAttempts: 100}

// Practice is a loaded practice text and where it came from.
type Practice struct {
	Path string
	Text string
}

// IsPlaceholder reports whether p is the startup fallback.
func (p Practice) IsPlaceholder() bool {
	return p.Path == "" && p.Text == Placeholder
}

// Sampler picks practice texts from a candidate set.
type Sampler struct {
	fsys       fs.FS
	candidates CandidateSet
	policy     RetryPolicy
	rnd        *rand.Rand
	// Warnf receives per-attempt read failures. Defaults to log.Printf.
	Warnf func(format string, args ...any)
}

// New returns a Sampler seeded with the current time.
func New(fsys fs.FS, candidates CandidateSet, policy RetryPolicy) *Sampler {
	return NewSeeded(fsys, candidates, policy, time.Now().UnixNano())
}

// NewSeeded returns a Sampler with a fixed seed.
func NewSeeded(fsys fs.FS, candidates CandidateSet, policy RetryPolicy, seed int64) *Sampler {
	if policy.MaxAttempts <= 0 {
		policy = DefaultRetryPolicy
	}
	return &Sampler{
		fsys:       fsys,
		candidates: candidates,
		policy:     policy,
		rnd:        rand.New(rand.NewSource(seed)),
	}
}

// Candidates returns the set the sampler draws from.
func (s *Sampler) Candidates() CandidateSet {
	return s.candidates
}

// Sample picks uniformly with replacement until a candidate reads cleanly.
func (s *Sampler) Sample() (Practice, error) {
	if s.candidates.Len() == 0 {
		return Practice{}, fmt.Errorf("%w: %w", ErrNoReadableCandidate, ErrNoCandidates)
	}
	var lastErr error
	for attempt := 1; attempt <= s.policy.MaxAttempts; attempt++ {
		p := s.candidates.At(s.rnd.Intn(s.candidates.Len()))
		text, err := ReadText(s.fsys, p)
		if err == nil {
			return Practice{Path: p, Text: text}, nil
		}
		lastErr = err
		s.warnf("sampler: attempt %d/%d: %v", attempt, s.policy.MaxAttempts, err)
	}
	return Practice{}, fmt.Errorf("%w after %d attempts: %w", ErrNoReadableCandidate, s.policy.MaxAttempts, lastErr)
}

// Initial samples a text for session start, falling back to Placeholder.
func (s *Sampler) Initial() (Practice, error) {
	p, err := s.Sample()
	if err != nil {
		return Practice{Text: Placeholder}, err
	}
	return p, nil
}

// Next samples a replacement text. Failure is left to the caller.
func (s *Sampler) Next() (Practice, error) {
	return s.Sample()
}

// ReadText reads a whole file as UTF-8 text.
func ReadText(fsys fs.FS, p string) (string, error) {
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", p, err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%s: %w", p, errEmptyText)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", p, errInvalidUTF8)
	}
	return string(data), nil
}

func (s *Sampler) warnf(format string, args ...any) {
	if s.Warnf != nil {
		s.Warnf(format, args...)
		return
	}
	log.Printf(format, args...)
}
