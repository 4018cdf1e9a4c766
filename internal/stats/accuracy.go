// Package stats contains statistics calculations and reporting.
package stats

import "strings"

// CompareLines scores a transcript against the practice text line by line.
// Leading indentation is ignored on both sides since it cannot be typed.
func CompareLines(practice, transcript string) (correct, incorrect int) {
	if transcript == "" {
		return 0, 0
	}
	want := strings.Split(practice, "\n")
	got := strings.Split(transcript, "\n")
	for i, line := range got {
		typed := []rune(strings.TrimLeft(line, " "))
		var target []rune
		if i < len(want) {
			target = []rune(strings.TrimLeft(want[i], " \t"))
		}
		for j, r := range typed {
			if j < len(target) && target[j] == r {
				correct++
				continue
			}
			incorrect++
		}
	}
	return correct, incorrect
}
