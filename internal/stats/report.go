// Package stats contains statistics calculations and reporting.
package stats

import (
	"context"
	"fmt"
	"io"

	"github.com/verte-zerg/codetype/internal/model"
	"github.com/verte-zerg/codetype/internal/store"
)

const topPathCount = 5

// Report contains precomputed data for history rendering.
type Report struct {
	Rounds   []model.RoundAggregate
	TopPaths []PathCount
}

// BuildReport loads and prepares data for history rendering.
func BuildReport(ctx context.Context, st *store.Store, cfg model.HistoryConfig) (Report, error) {
	rounds, err := st.ListRounds(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	counts, err := st.CountByPath(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Rounds:   rounds,
		TopPaths: TopPaths(counts, topPathCount),
	}, nil
}

// Render writes the full history report.
func (r Report) Render(w io.Writer, window, width int) error {
	if err := RenderSummary(w, r.Rounds); err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}
	if err := RenderCurve(w, r.Rounds, window); err != nil {
		return fmt.Errorf("failed to render curve: %w", err)
	}
	if err := RenderTopPaths(w, r.TopPaths); err != nil {
		return fmt.Errorf("failed to render top paths: %w", err)
	}
	if err := RenderRoundTable(w, r.Rounds, width); err != nil {
		return fmt.Errorf("failed to render rounds: %w", err)
	}
	return nil
}
