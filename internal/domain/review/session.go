// Package review stages parsed transactions for user review before they are
// persisted. Rows can be toggled, retyped and recategorized; the commit step
// fires one create call per selected row, all in flight at once, and isolates
// failures per row.
package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hucha-fin/importer/internal/backend"
	"github.com/hucha-fin/importer/internal/domain/rowparse"
	"github.com/hucha-fin/importer/pkg/metrics"
)

var (
	// ErrNothingSelected is the "no rows picked" notice for a commit.
	ErrNothingSelected = errors.New("no transactions selected")
	// ErrRowNotFound marks edits addressed at an unknown pending row.
	ErrRowNotFound = errors.New("pending transaction not found")
)

// Pending is one reviewable transaction candidate. Rows start selected; the
// user deselects what should not be imported.
type Pending struct {
	rowparse.Transaction
	Selected bool
}

// Params carries the backend identity every created record is stamped with.
type Params struct {
	UserID    int
	AccountID int
}

// Session owns the pending rows of one import run. A new file selection
// simply builds a new session; the old one is discarded wholesale.
type Session struct {
	RunID    uuid.UUID
	FileName string

	pending []*Pending
	skipped int

	client  *backend.Client
	params  Params
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewSession stages the parse result for review.
func NewSession(fileName string, result *rowparse.Result, client *backend.Client, params Params, logger *slog.Logger) *Session {
	s := &Session{
		RunID:    uuid.New(),
		FileName: fileName,
		client:   client,
		params:   params,
		logger:   logger,
	}
	if result != nil {
		s.skipped = result.Skipped
		s.pending = make([]*Pending, 0, len(result.Transactions))
		for _, tx := range result.Transactions {
			s.pending = append(s.pending, &Pending{Transaction: tx, Selected: true})
		}
	}
	return s
}

// WithMetrics enables commit counters.
func (s *Session) WithMetrics(m *metrics.Metrics) *Session {
	s.metrics = m
	return s
}

// Pending returns the reviewable rows in sheet order.
func (s *Session) Pending() []*Pending {
	return s.pending
}

// SkippedRows reports how many sheet rows were dropped during parsing.
func (s *Session) SkippedRows() int {
	return s.skipped
}

func (s *Session) find(id int64) *Pending {
	for _, p := range s.pending {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// SetSelected toggles a row's inclusion in the next commit.
func (s *Session) SetSelected(id int64, selected bool) error {
	p := s.find(id)
	if p == nil {
		return ErrRowNotFound
	}
	p.Selected = selected
	return nil
}

// SetType flips a row between income and expense and renormalizes the amount
// sign to stay consistent: incomes are positive, expenses negative.
func (s *Session) SetType(id int64, t rowparse.Type) error {
	p := s.find(id)
	if p == nil {
		return ErrRowNotFound
	}
	p.Type = t
	switch t {
	case rowparse.TypeIncome:
		p.Amount = p.Amount.Abs()
	case rowparse.TypeExpense:
		p.Amount = p.Amount.Abs().Neg()
	default:
		return fmt.Errorf("unknown transaction type %q", t)
	}
	return nil
}

// SetCategory reassigns a row's category.
func (s *Session) SetCategory(id int64, categoryID int) error {
	p := s.find(id)
	if p == nil {
		return ErrRowNotFound
	}
	p.CategoryID = categoryID
	return nil
}

// CreateCategory creates a category by name through the endpoint matching the
// row's type, reloads the category list and assigns the new id to the row.
// This is a review-time side effect, independent of commit.
func (s *Session) CreateCategory(ctx context.Context, id int64, name string) ([]backend.Category, error) {
	p := s.find(id)
	if p == nil {
		return nil, ErrRowNotFound
	}

	var (
		created *backend.Category
		cats    []backend.Category
		err     error
	)
	if p.Type == rowparse.TypeIncome {
		if created, err = s.client.CreateIncomeCategory(ctx, name); err != nil {
			return nil, err
		}
		cats, err = s.client.ListIncomeCategories(ctx)
	} else {
		if created, err = s.client.CreateExpenseCategory(ctx, name); err != nil {
			return nil, err
		}
		cats, err = s.client.ListExpenseCategories(ctx)
	}
	if err != nil {
		return nil, err
	}

	p.CategoryID = created.ID
	s.logger.Info("category created during review",
		slog.String("name", name), slog.Int("id", created.ID), slog.Int64("row", id))
	return cats, nil
}

// payload builds the create payload for one row. Amounts go out as absolute
// values; the endpoint choice carries the sign information.
func (s *Session) payload(p *Pending) backend.TransactionPayload {
	out := backend.TransactionPayload{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Amount:      p.Amount.Abs().InexactFloat64(),
		Currency:    p.Currency,
		UserID:      s.params.UserID,
		AccountID:   s.params.AccountID,
		CategoryID:  p.CategoryID,
	}
	if p.Comment != "" {
		out.Description = p.Comment
	}
	if !p.Date.IsZero() {
		out.Date = p.Date.Format("2006-01-02")
	}
	if p.Type == rowparse.TypeIncome {
		source := p.SourceID
		out.SourceID = &source
	} else if p.PlaceID != nil {
		place := *p.PlaceID
		out.PlaceID = &place
	}
	return out
}

// TotalAmount sums the absolute amounts of the given rows.
func TotalAmount(rows []*Pending) decimal.Decimal {
	total := decimal.Zero
	for _, p := range rows {
		total = total.Add(p.Amount.Abs())
	}
	return total
}
