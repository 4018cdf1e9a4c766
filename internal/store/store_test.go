package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/codetype/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "codetype.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func insertRounds(t *testing.T, st *Store, paths ...string) {
	t.Helper()
	ctx := context.Background()
	for i, p := range paths {
		start := time.Unix(0, 0).Add(time.Duration(i) * time.Minute)
		end := start.Add(30 * time.Second)
		round := model.RoundStats{
			StartedAt:     start,
			EndedAt:       end,
			Path:          p,
			Ext:           filepath.Ext(p),
			PracticeChars: 100,
			TypedChars:    50,
			Correct:       45,
			Incorrect:     5,
			DurationMs:    end.Sub(start).Milliseconds(),
		}
		if _, err := st.InsertRound(ctx, round); err != nil {
			t.Fatalf("insert round: %v", err)
		}
	}
}

func TestListRoundsFilters(t *testing.T) {
	st := openTestStore(t)
	insertRounds(t, st, "a.go", "b.rs", "c.go", "a.go")
	ctx := context.Background()

	all, err := st.ListRounds(ctx, model.HistoryConfig{})
	if err != nil {
		t.Fatalf("list rounds: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 rounds, got %d", len(all))
	}
	if !all[0].EndedAt.Before(all[3].EndedAt) {
		t.Fatalf("expected ascending order: %+v", all)
	}

	goRounds, err := st.ListRounds(ctx, model.HistoryConfig{Ext: ".go", Last: 2})
	if err != nil {
		t.Fatalf("list go rounds: %v", err)
	}
	if len(goRounds) != 2 || goRounds[0].Path != "c.go" || goRounds[1].Path != "a.go" {
		t.Fatalf("unexpected rounds: %+v", goRounds)
	}

	since := time.Unix(0, 0).Add(2 * time.Minute)
	recent, err := st.ListRounds(ctx, model.HistoryConfig{Since: &since})
	if err != nil {
		t.Fatalf("list recent rounds: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 recent rounds, got %d", len(recent))
	}
}

func TestCountByPath(t *testing.T) {
	st := openTestStore(t)
	insertRounds(t, st, "a.go", "b.rs", "a.go")
	counts, err := st.CountByPath(context.Background(), model.HistoryConfig{Ext: ".go"})
	if err != nil {
		t.Fatalf("count by path: %v", err)
	}
	if counts["a.go"] != 2 || len(counts) != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}
