// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"sort"
)

// PathCount pairs a practiced path with its number of rounds.
type PathCount struct {
	Path   string
	Rounds int
}

// TopPaths returns the n most practiced paths.
func TopPaths(counts map[string]int, n int) []PathCount {
	if n <= 0 || len(counts) == 0 {
		return nil
	}
	items := make([]PathCount, 0, len(counts))
	for p, c := range counts {
		items = append(items, PathCount{Path: p, Rounds: c})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Rounds == items[j].Rounds {
			return items[i].Path < items[j].Path
		}
		return items[i].Rounds > items[j].Rounds
	})
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}

// RenderTopPaths prints the most practiced files.
func RenderTopPaths(w io.Writer, top []PathCount) error {
	if len(top) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Most practiced"); err != nil {
		return err
	}
	rows := make([][]string, 0, len(top))
	for _, item := range top {
		rows = append(rows, []string{item.Path, fmt.Sprintf("%d", item.Rounds)})
	}
	for _, line := range formatTable([]string{"Path", "Rounds"}, rows, map[int]bool{1: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}
