package review

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/hucha-fin/importer/internal/domain/rowparse"
)

// CommitResult summarizes one save batch.
type CommitResult struct {
	Saved      int
	Failed     int
	FailedIDs  []int64
	TotalSaved decimal.Decimal // sum of absolute amounts actually persisted
	Errors     []string        // backend messages, aggregated for display
}

// Summary renders the user-facing outcome line.
func (r *CommitResult) Summary() string {
	return fmt.Sprintf("%d saved, %d failed", r.Saved, r.Failed)
}

type rowOutcome struct {
	id     int64
	amount decimal.Decimal
	err    error
}

// Commit persists every selected row: one create call per row, chosen by the
// row's type, all requests in flight together and joined as a batch. A failed
// row never affects its siblings. With zero failures the session is cleared;
// otherwise exactly the failed rows remain pending so the user can retry.
func (s *Session) Commit(ctx context.Context) (*CommitResult, error) {
	var selected []*Pending
	for _, p := range s.pending {
		if p.Selected {
			selected = append(selected, p)
		}
	}
	if len(selected) == 0 {
		return nil, ErrNothingSelected
	}

	outcomes := make(chan rowOutcome, len(selected))
	var wg sync.WaitGroup
	for _, p := range selected {
		wg.Add(1)
		go func(p *Pending) {
			defer wg.Done()
			payload := s.payload(p)

			var err error
			if p.Type == rowparse.TypeIncome {
				_, err = s.client.CreateIncome(ctx, payload)
			} else {
				_, err = s.client.CreateExpense(ctx, payload)
			}
			outcomes <- rowOutcome{id: p.ID, amount: p.Amount.Abs(), err: err}
		}(p)
	}
	wg.Wait()
	close(outcomes)

	result := &CommitResult{TotalSaved: decimal.Zero}
	failed := make(map[int64]struct{})
	for o := range outcomes {
		if o.err != nil {
			result.Failed++
			result.FailedIDs = append(result.FailedIDs, o.id)
			result.Errors = append(result.Errors, o.err.Error())
			failed[o.id] = struct{}{}
			continue
		}
		result.Saved++
		result.TotalSaved = result.TotalSaved.Add(o.amount)
	}

	s.metrics.AddSaved(result.Saved)
	s.metrics.AddSaveFailed(result.Failed)
	s.logger.Info("commit finished",
		slog.String("run", s.RunID.String()),
		slog.Int("saved", result.Saved),
		slog.Int("failed", result.Failed))

	if result.Failed == 0 {
		s.pending = nil
		s.FileName = ""
		return result, nil
	}

	// Keep only the rows that failed, in their original order, for retry.
	remaining := s.pending[:0]
	for _, p := range s.pending {
		if _, ok := failed[p.ID]; ok {
			remaining = append(remaining, p)
		}
	}
	s.pending = remaining
	return result, nil
}
