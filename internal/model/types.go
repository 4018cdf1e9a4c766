// Package model defines shared data structures.
package model

import "time"

// Config defines practice settings.
type Config struct {
	Root            string
	Ext             string
	Depth           int
	FontSize        float64
	Margin          float64
	TranscriptColor string
	Seed            int64
	History         bool
	CacheSize       int
	Language        string
}

// HistoryConfig defines filters for history output.
type HistoryConfig struct {
	Ext   string
	Since *time.Time
	Last  int
}

// RoundStats captures one finished practice text.
type RoundStats struct {
	StartedAt     time.Time
	EndedAt       time.Time
	Path          string
	Ext           string
	PracticeChars int
	TypedChars    int
	Correct       int
	Incorrect     int
	DurationMs    int64
}

// RoundAggregate summarizes a stored round for reporting.
type RoundAggregate struct {
	RoundID    int64
	EndedAt    time.Time
	Path       string
	TypedChars int
	Correct    int
	Incorrect  int
	DurationMs int64
}
