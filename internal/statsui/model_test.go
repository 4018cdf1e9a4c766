package statsui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/codetype/internal/model"
	"github.com/verte-zerg/codetype/internal/stats"
)

type fakeLoader struct {
	calls []model.HistoryConfig
	err   error
}

func (f *fakeLoader) load(_ context.Context, cfg model.HistoryConfig) (stats.Report, error) {
	f.calls = append(f.calls, cfg)
	if f.err != nil {
		return stats.Report{}, f.err
	}
	now := time.Now()
	return stats.Report{
		Rounds: []model.RoundAggregate{
			{RoundID: 1, EndedAt: now.Add(-time.Hour), Path: "a.go", TypedChars: 50, Correct: 40, Incorrect: 10, DurationMs: 60000},
			{RoundID: 2, EndedAt: now, Path: "b.go", TypedChars: 100, Correct: 100, DurationMs: 60000},
		},
		TopPaths: []stats.PathCount{{Path: "a.go", Rounds: 1}, {Path: "b.go", Rounds: 1}},
	}, nil
}

func sized(m *Model) *Model {
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func TestOverviewShowsCards(t *testing.T) {
	loader := &fakeLoader{}
	m := sized(NewModel(loader.load, model.HistoryConfig{}, 5))
	view := m.View()
	for _, want := range []string{"Overview", "Rounds", "Avg WPM", "Best WPM", "20.0", "window=5"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q", want)
		}
	}
}

func TestRoundsTabListsNewestFirst(t *testing.T) {
	m := sized(NewModel((&fakeLoader{}).load, model.HistoryConfig{}, 5))
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	view := m.View()
	b := strings.Index(view, "b.go")
	a := strings.Index(view, "a.go")
	if a < 0 || b < 0 || b > a {
		t.Fatalf("expected b.go before a.go in rounds table")
	}
}

func TestFilesTab(t *testing.T) {
	m := sized(NewModel((&fakeLoader{}).load, model.HistoryConfig{}, 5))
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.activeTab != tabFiles {
		t.Fatalf("expected tab to wrap to files, got %d", m.activeTab)
	}
	if !strings.Contains(m.View(), "Most practiced") {
		t.Fatalf("expected files tab content")
	}
}

func TestFilterReloadsReport(t *testing.T) {
	loader := &fakeLoader{}
	m := sized(NewModel(loader.load, model.HistoryConfig{}, 5))
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	if !m.filterMode {
		t.Fatalf("expected filter mode")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(".rs")})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.filterMode {
		t.Fatalf("expected filter mode to close")
	}
	if len(loader.calls) != 2 {
		t.Fatalf("expected 2 loads, got %d", len(loader.calls))
	}
	if loader.calls[1].Ext != ".rs" {
		t.Fatalf("expected ext filter .rs, got %q", loader.calls[1].Ext)
	}
}

func TestFilterRejectsBadExt(t *testing.T) {
	m := sized(NewModel((&fakeLoader{}).load, model.HistoryConfig{}, 5))
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("rs")})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.filterMode || m.filterError == "" {
		t.Fatalf("expected filter error")
	}
}

func TestLoadErrorIsShown(t *testing.T) {
	m := sized(NewModel((&fakeLoader{err: errors.New("db locked")}).load, model.HistoryConfig{}, 5))
	view := m.View()
	if !strings.Contains(view, "db locked") || !strings.Contains(view, "Failed to load history.") {
		t.Fatalf("expected error in view")
	}
}

func TestCurveWindowSteps(t *testing.T) {
	cases := []struct{ in, next, prev int }{
		{1, 5, 1},
		{5, 10, 1},
		{7, 10, 5},
		{20, 25, 15},
	}
	for _, tc := range cases {
		if got := nextCurveWindow(tc.in); got != tc.next {
			t.Fatalf("next(%d) = %d, want %d", tc.in, got, tc.next)
		}
		if got := prevCurveWindow(tc.in); got != tc.prev {
			t.Fatalf("prev(%d) = %d, want %d", tc.in, got, tc.prev)
		}
	}
}

func TestQuit(t *testing.T) {
	m := sized(NewModel((&fakeLoader{}).load, model.HistoryConfig{}, 5))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
}
