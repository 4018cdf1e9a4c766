// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/codetype/internal/layout"
	"github.com/verte-zerg/codetype/internal/model"
	"github.com/verte-zerg/codetype/internal/session"
	statsPkg "github.com/verte-zerg/codetype/internal/stats"
	"github.com/verte-zerg/codetype/internal/store"
)

const backgroundColor = "#20232c"

var (
	backgroundStyle = lipgloss.NewStyle().Background(lipgloss.Color(backgroundColor))
	footerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Model implements the Bubble Tea typing UI.
type Model struct {
	session         *session.Session
	metrics         layout.Metrics
	keys            keyMap
	styles          *styleCache
	transcriptStyle lipgloss.Style
	now             func() time.Time

	width  int
	height int
}

// NewModel constructs a typing TUI model around a running session.
func NewModel(s *session.Session, metrics layout.Metrics, transcriptColor string) *Model {
	return &Model{
		session:         s,
		metrics:         metrics,
		keys:            defaultKeyMap(),
		styles:          newStyleCache(backgroundStyle),
		transcriptStyle: backgroundStyle.Foreground(lipgloss.Color(transcriptColor)),
		now:             time.Now,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if err := m.session.HandleKeys(m.keys.translate(msg)); err != nil {
			log.Printf("session stopped: %v", err)
		}
		if m.session.State() == session.Stopped {
			return m, tea.Quit
		}
		return m, nil
	default:
		return m, nil
	}
}

// Err returns the fatal error that ended the session, if any.
func (m *Model) Err() error {
	return m.session.Err()
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.session.State() == session.Stopped {
		return ""
	}
	width, height := m.width, m.height
	if width == 0 || height == 0 {
		width, height = 80, 24
	}
	bodyHeight := height
	footer := ""
	if height >= 3 {
		bodyHeight = height - 1
		footer = m.renderFooter(width)
	}
	body := m.renderBody(width, bodyHeight)
	if footer == "" {
		return body
	}
	return body + "\n" + footer
}

func (m *Model) renderBody(width, height int) string {
	lines := m.session.TranscriptLines()
	top := 0
	if current := len(lines) - 1; current >= height {
		top = current - height + 1
	}
	c := newCanvas(width, height, top, m.metrics, backgroundStyle)
	c.drawInstructions(m.session.Draws(), m.metrics, m.styles)
	c.drawTranscript(lines, m.transcriptStyle)
	return strings.Join(c.lines(), "\n")
}

func (m *Model) renderFooter(width int) string {
	practice := m.session.Practice()
	name := practice.Path
	if practice.IsPlaceholder() {
		name = "no file"
	}
	lines := m.session.TranscriptLines()
	segments := []string{
		name,
		fmt.Sprintf("Line %d/%d", len(lines), m.session.PracticeLines()),
		fmt.Sprintf("Typed %d", m.session.Typed()),
	}
	if startedAt, ok := m.session.StartedAt(); ok {
		elapsed := m.now().Sub(startedAt).Milliseconds()
		correct, incorrect := statsPkg.CompareLines(practice.Text, m.session.Transcript())
		wpm, _, acc := statsPkg.RoundMetrics(correct, incorrect, elapsed)
		segments = append(segments, fmt.Sprintf("%.1f WPM · %.1f%%", wpm, acc*100))
	}
	segments = append(segments, m.keys.help())
	footer := strings.Join(segments, "  ")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, footerStyle.Render(footer))
}

// StoreRecorder persists finished rounds.
type StoreRecorder struct {
	Store *store.Store
}

// RecordRound implements session.Recorder.
func (r StoreRecorder) RecordRound(round model.RoundStats) {
	if _, err := r.Store.InsertRound(context.Background(), round); err != nil {
		log.Printf("failed to save round: %v", err)
	}
}
