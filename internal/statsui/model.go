// Package statsui provides the Bubble Tea history interface.
package statsui

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/verte-zerg/codetype/internal/model"
	"github.com/verte-zerg/codetype/internal/stats"
)

const (
	tabOverview = iota
	tabRounds
	tabFiles
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)

// ReportLoader loads history for a filter.
type ReportLoader func(ctx context.Context, cfg model.HistoryConfig) (stats.Report, error)

// Model implements the Bubble Tea history UI.
type Model struct {
	load   ReportLoader
	cfg    model.HistoryConfig
	window int

	report stats.Report
	errMsg string

	tabs       []string
	activeTab  int
	viewports  []viewport.Model
	roundTable table.Model

	width  int
	height int

	filterMode   bool
	filterInputs []textinput.Model
	filterIndex  int
	filterError  string
}

// NewModel constructs a history UI model.
func NewModel(load ReportLoader, cfg model.HistoryConfig, window int) *Model {
	if window < 1 {
		window = 1
	}
	m := &Model{
		load:   load,
		cfg:    cfg,
		window: window,
		tabs:   []string{"Overview", "Rounds", "Files"},
	}
	m.viewports = make([]viewport.Model, len(m.tabs))
	for i := range m.viewports {
		m.viewports[i] = viewport.New(0, 0)
	}
	m.filterInputs = []textinput.Model{
		newFilterInput("Ext: "),
		newFilterInput("Since (YYYY-MM-DD): "),
		newFilterInput("Last: "),
		newFilterInput("Curve window: "),
	}
	m.roundTable = table.New(
		table.WithColumns(roundColumns(80)),
		table.WithStyles(roundTableStyles()),
	)
	m.refreshReport()
	return m
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
		m.updateLayout()
		m.renderTabContents()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.filterMode {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "left", "h":
			m.moveTab(-1)
			return m, nil
		case "right", "l", "tab":
			m.moveTab(1)
			return m, nil
		case "=":
			m.window = nextCurveWindow(m.window)
			m.renderTabContents()
			return m, nil
		case "-":
			m.window = prevCurveWindow(m.window)
			m.renderTabContents()
			return m, nil
		case "/":
			return m.startFilter()
		case "g", "home":
			if m.activeTab == tabRounds {
				m.roundTable.GotoTop()
			} else {
				m.viewports[m.activeTab].GotoTop()
			}
			return m, nil
		case "G", "end":
			if m.activeTab == tabRounds {
				m.roundTable.GotoBottom()
			} else {
				m.viewports[m.activeTab].GotoBottom()
			}
			return m, nil
		}
		var cmd tea.Cmd
		if m.activeTab == tabRounds {
			m.roundTable, cmd = m.roundTable.Update(msg)
			return m, cmd
		}
		m.viewports[m.activeTab], cmd = m.viewports[m.activeTab].Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(bodyHeight), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func newFilterInput(prompt string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := lipgloss.Height(activeNavStyle.Render("X"))
	headerHeight = tabsHeight + 1
	footerHeight = 1
	if !m.filterMode && m.errMsg != "" {
		footerHeight++
	}
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, bodyHeight, _ := m.layoutHeights()
	for i := range m.viewports {
		m.viewports[i].Width = m.width
		m.viewports[i].Height = bodyHeight
	}
	m.roundTable.SetColumns(roundColumns(m.width))
	m.roundTable.SetWidth(m.width)
	m.roundTable.SetHeight(maxInt(1, bodyHeight-1))
	for i := range m.filterInputs {
		promptWidth := lipgloss.Width(m.filterInputs[i].Prompt)
		m.filterInputs[i].Width = maxInt(10, m.width-promptWidth-2)
	}
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	next := (m.activeTab + delta + count) % count
	m.activeTab = next
	if m.activeTab == tabRounds {
		m.roundTable.Focus()
	} else {
		m.roundTable.Blur()
	}
}

func (m *Model) refreshReport() {
	report, err := m.load(context.Background(), m.cfg)
	if err != nil {
		m.errMsg = err.Error()
		m.report = stats.Report{}
	} else {
		m.errMsg = ""
		m.report = report
	}
	m.roundTable.SetRows(roundRows(m.report.Rounds))
	m.renderTabContents()
}

func (m *Model) renderTabContents() {
	if m.errMsg != "" {
		for i := range m.viewports {
			m.viewports[i].SetContent("Failed to load history.")
		}
		return
	}
	width := m.width
	if width <= 0 {
		width = 80
	}
	m.viewports[tabOverview].SetContent(renderOverview(m.report.Rounds, m.window, width))
	m.viewports[tabFiles].SetContent(renderFiles(m.report.TopPaths))
}

func renderOverview(rounds []model.RoundAggregate, window, width int) string {
	if len(rounds) == 0 {
		return "No rounds found."
	}
	var totalWPM, totalAcc float64
	bestWPM := 0.0
	typed := 0
	for _, r := range rounds {
		wpm, _, acc := stats.RoundMetrics(r.Correct, r.Incorrect, r.DurationMs)
		totalWPM += wpm
		totalAcc += acc
		typed += r.TypedChars
		if wpm > bestWPM {
			bestWPM = wpm
		}
	}
	count := float64(len(rounds))
	cards := []string{
		metricCard("Rounds", humanize.Comma(int64(len(rounds)))),
		metricCard("Typed", humanize.Comma(int64(typed))),
		metricCard("Avg WPM", fmt.Sprintf("%.1f", totalWPM/count)),
		metricCard("Best WPM", fmt.Sprintf("%.1f", bestWPM)),
		metricCard("Avg Acc", fmt.Sprintf("%.1f%%", (totalAcc/count)*100)),
	}
	var summary string
	if width < 80 {
		summary = strings.Join(cards, "\n")
	} else {
		row1 := lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1], cards[2])
		row2 := lipgloss.JoinHorizontal(lipgloss.Top, cards[3], cards[4])
		summary = lipgloss.JoinVertical(lipgloss.Left, row1, row2)
	}
	var buf bytes.Buffer
	if err := stats.RenderCurve(&buf, rounds, window); err != nil {
		return fmt.Sprintf("Failed to render curve: %v", err)
	}
	return strings.TrimRight(summary+"\n\n"+buf.String(), "\n")
}

func renderFiles(top []stats.PathCount) string {
	var buf bytes.Buffer
	if err := stats.RenderTopPaths(&buf, top); err != nil {
		return fmt.Sprintf("Failed to render files: %v", err)
	}
	if buf.Len() == 0 {
		return "No rounds found."
	}
	return strings.TrimRight(buf.String(), "\n")
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func roundColumns(width int) []table.Column {
	fixed := []table.Column{
		{Title: "Ended", Width: 16},
		{Title: "Typed", Width: 7},
		{Title: "WPM", Width: 6},
		{Title: "Accuracy", Width: 9},
	}
	used := 0
	for _, c := range fixed {
		used += c.Width + 1
	}
	path := table.Column{Title: "Path", Width: maxInt(10, width-used-1)}
	return []table.Column{fixed[0], path, fixed[1], fixed[2], fixed[3]}
}

func roundRows(rounds []model.RoundAggregate) []table.Row {
	rows := make([]table.Row, 0, len(rounds))
	for i := len(rounds) - 1; i >= 0; i-- {
		r := rounds[i]
		wpm, _, acc := stats.RoundMetrics(r.Correct, r.Incorrect, r.DurationMs)
		rows = append(rows, table.Row{
			humanize.Time(r.EndedAt),
			r.Path,
			humanize.Comma(int64(r.TypedChars)),
			fmt.Sprintf("%.1f", wpm),
			fmt.Sprintf("%.1f%%", acc*100),
		})
	}
	return rows
}

func roundTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func (m *Model) renderHeader() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	tabs := padLines(lipgloss.JoinHorizontal(lipgloss.Top, parts...), m.width)
	return tabs + "\n" + padLines(m.renderFilterSummary(), m.width)
}

func (m *Model) renderFilterSummary() string {
	ext := m.cfg.Ext
	if ext == "" {
		ext = "any"
	}
	since := "any"
	if m.cfg.Since != nil {
		since = m.cfg.Since.Format("2006-01-02")
	}
	last := "all"
	if m.cfg.Last > 0 {
		last = strconv.Itoa(m.cfg.Last)
	}
	summary := fmt.Sprintf("Filter: ext=%s  since=%s  last=%s  window=%d", ext, since, last, m.window)
	return headerStyle.Render(truncateLine(summary, m.width))
}

func (m *Model) renderFooter() string {
	if m.filterMode {
		return headerStyle.Render("tab/shift+tab: next field  enter: apply  esc: cancel")
	}
	help := headerStyle.Render("Nav: left/right  Scroll: up/down/pgup/pgdn  Window: -/=  Filter: /  Quit: q")
	if m.errMsg != "" {
		return help + "\n" + errorStyle.Render(m.errMsg)
	}
	return help
}

func (m *Model) renderBody(height int) string {
	if m.filterMode {
		lines := []string{"Filter (enter to apply, esc to cancel)"}
		for _, input := range m.filterInputs {
			lines = append(lines, input.View())
		}
		if m.filterError != "" {
			lines = append(lines, errorStyle.Render(m.filterError))
		}
		return fitLines(strings.Join(lines, "\n"), m.width, height)
	}
	if m.activeTab == tabRounds {
		if len(m.report.Rounds) == 0 {
			return fitLines("No rounds found.", m.width, height)
		}
		return fitLines(m.roundTable.View(), m.width, height)
	}
	return fitLines(m.viewports[m.activeTab].View(), m.width, height)
}

func (m *Model) startFilter() (tea.Model, tea.Cmd) {
	m.filterMode = true
	m.filterError = ""
	m.filterInputs[0].SetValue(m.cfg.Ext)
	m.filterInputs[1].SetValue("")
	if m.cfg.Since != nil {
		m.filterInputs[1].SetValue(m.cfg.Since.Format("2006-01-02"))
	}
	m.filterInputs[2].SetValue("")
	if m.cfg.Last > 0 {
		m.filterInputs[2].SetValue(strconv.Itoa(m.cfg.Last))
	}
	m.filterInputs[3].SetValue(strconv.Itoa(m.window))
	return m, m.setFilterIndex(0)
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filterMode = false
		m.filterError = ""
		return m, nil
	case tea.KeyEnter:
		if err := m.applyFilter(); err != nil {
			m.filterError = err.Error()
			return m, nil
		}
		m.filterMode = false
		m.filterError = ""
		m.refreshReport()
		m.updateLayout()
		return m, nil
	case tea.KeyTab:
		return m, m.setFilterIndex(m.filterIndex + 1)
	case tea.KeyShiftTab:
		return m, m.setFilterIndex(m.filterIndex - 1)
	}
	var cmd tea.Cmd
	m.filterInputs[m.filterIndex], cmd = m.filterInputs[m.filterIndex].Update(msg)
	return m, cmd
}

func (m *Model) setFilterIndex(idx int) tea.Cmd {
	count := len(m.filterInputs)
	m.filterIndex = (idx + count) % count
	var cmd tea.Cmd
	for i := range m.filterInputs {
		if i == m.filterIndex {
			cmd = m.filterInputs[i].Focus()
		} else {
			m.filterInputs[i].Blur()
		}
	}
	return cmd
}

func (m *Model) applyFilter() error {
	ext := strings.TrimSpace(m.filterInputs[0].Value())
	if ext != "" && !strings.HasPrefix(ext, ".") {
		return fmt.Errorf("invalid ext (must start with '.')")
	}

	var since *time.Time
	if sinceInput := strings.TrimSpace(m.filterInputs[1].Value()); sinceInput != "" {
		parsed, err := time.ParseInLocation("2006-01-02", sinceInput, time.Local)
		if err != nil {
			return fmt.Errorf("invalid since date (expected YYYY-MM-DD)")
		}
		since = &parsed
	}

	last := 0
	if lastInput := strings.TrimSpace(m.filterInputs[2].Value()); lastInput != "" {
		parsed, err := strconv.Atoi(lastInput)
		if err != nil || parsed < 0 {
			return fmt.Errorf("invalid last value (use 0 or positive integer)")
		}
		last = parsed
	}

	window := m.window
	if windowInput := strings.TrimSpace(m.filterInputs[3].Value()); windowInput != "" {
		parsed, err := strconv.Atoi(windowInput)
		if err != nil || parsed < 1 {
			return fmt.Errorf("invalid curve window (use integer >= 1)")
		}
		window = parsed
	}

	m.cfg = model.HistoryConfig{Ext: ext, Since: since, Last: last}
	m.window = window
	return nil
}

func nextCurveWindow(n int) int {
	if n < 5 {
		return 5
	}
	return ((n / 5) + 1) * 5
}

func prevCurveWindow(n int) int {
	if n <= 5 {
		return 1
	}
	if n%5 == 0 {
		return n - 5
	}
	return (n / 5) * 5
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func padLines(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	return strings.Join(lines, "\n")
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
