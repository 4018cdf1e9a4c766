// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/verte-zerg/codetype/internal/model"
)

const sparkChars = " .:-=+*#%@"

// RoundMetrics computes WPM, CPM, and accuracy for a round.
func RoundMetrics(correct, incorrect int, durationMs int64) (wpm, cpm, accuracy float64) {
	if durationMs <= 0 {
		return 0, 0, 0
	}
	minutes := float64(durationMs) / 60000.0
	if minutes <= 0 {
		return 0, 0, 0
	}
	wpm = (float64(correct) / 5.0) / minutes
	cpm = float64(correct) / minutes
	den := float64(correct + incorrect)
	if den > 0 {
		accuracy = float64(correct) / den
	}
	return wpm, cpm, accuracy
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderSummary prints aggregate figures for rounds.
func RenderSummary(w io.Writer, rounds []model.RoundAggregate) error {
	if len(rounds) == 0 {
		_, err := fmt.Fprintln(w, "No rounds found.")
		return err
	}
	var totalWPM, totalAcc float64
	var typed int
	var duration int64
	bestWPM := 0.0
	for _, r := range rounds {
		wpm, _, acc := RoundMetrics(r.Correct, r.Incorrect, r.DurationMs)
		totalWPM += wpm
		totalAcc += acc
		typed += r.TypedChars
		duration += r.DurationMs
		if wpm > bestWPM {
			bestWPM = wpm
		}
	}
	count := float64(len(rounds))
	lines := []string{
		"Summary",
		fmt.Sprintf("Rounds: %s", humanize.Comma(int64(len(rounds)))),
		fmt.Sprintf("Typed: %s chars", humanize.Comma(int64(typed))),
		fmt.Sprintf("Practice time: %s", formatDuration(duration)),
		fmt.Sprintf("Avg WPM: %.2f", totalWPM/count),
		fmt.Sprintf("Best WPM: %.2f", bestWPM),
		fmt.Sprintf("Avg Accuracy: %.2f%%", (totalAcc/count)*100),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderCurve prints a WPM sparkline smoothed over window rounds.
func RenderCurve(w io.Writer, rounds []model.RoundAggregate, window int) error {
	if len(rounds) == 0 {
		return nil
	}
	wpms := make([]float64, len(rounds))
	for i, r := range rounds {
		wpms[i], _, _ = RoundMetrics(r.Correct, r.Incorrect, r.DurationMs)
	}
	if _, err := fmt.Fprintf(w, "WPM trend  %s\n\n", Sparkline(MovingAverage(wpms, window))); err != nil {
		return err
	}
	return nil
}

// RenderRoundTable prints one row per round, newest last. Paths are
// shortened to fit width when width is positive.
func RenderRoundTable(w io.Writer, rounds []model.RoundAggregate, width int) error {
	if len(rounds) == 0 {
		return nil
	}
	headers := []string{"Ended", "Path", "Typed", "WPM", "Accuracy"}
	tableRows := make([][]string, 0, len(rounds))
	for _, r := range rounds {
		wpm, _, acc := RoundMetrics(r.Correct, r.Incorrect, r.DurationMs)
		tableRows = append(tableRows, []string{
			humanize.Time(r.EndedAt),
			r.Path,
			humanize.Comma(int64(r.TypedChars)),
			fmt.Sprintf("%.1f", wpm),
			fmt.Sprintf("%.1f%%", acc*100),
		})
	}
	if width > 0 {
		fixed := 0
		for i, h := range headers {
			if i == 1 {
				continue
			}
			colWidth := len(h)
			for _, row := range tableRows {
				if l := len(row[i]); l > colWidth {
					colWidth = l
				}
			}
			fixed += colWidth + 1
		}
		for _, row := range tableRows {
			row[1] = truncatePath(row[1], width-fixed)
		}
	}
	rightAlign := map[int]bool{2: true, 3: true, 4: true}
	for _, line := range formatTable(headers, tableRows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func formatDuration(ms int64) string {
	secs := ms / 1000
	if secs < 60 {
		return fmt.Sprintf("%ds", secs)
	}
	mins := secs / 60
	if mins < 60 {
		return fmt.Sprintf("%dm%02ds", mins, secs%60)
	}
	return fmt.Sprintf("%dh%02dm", mins/60, mins%60)
}
