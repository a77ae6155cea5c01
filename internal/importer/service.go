// Package importer wires the pipeline together: load a workbook, recognize
// its format, parse and classify the data rows, and stage the result for
// review.
package importer

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hucha-fin/importer/internal/backend"
	"github.com/hucha-fin/importer/internal/domain/classify"
	"github.com/hucha-fin/importer/internal/domain/format"
	"github.com/hucha-fin/importer/internal/domain/review"
	"github.com/hucha-fin/importer/internal/domain/rowparse"
	"github.com/hucha-fin/importer/internal/domain/workbook"
	"github.com/hucha-fin/importer/pkg/metrics"
)

// Service orchestrates one import run per call. Runs are independent:
// starting a new one discards nothing but the previous session the caller
// may still hold.
type Service struct {
	client     *backend.Client
	classifier *classify.Classifier
	logger     *slog.Logger
	metrics    *metrics.Metrics
	params     review.Params
	currency   string
}

// NewService creates the import orchestrator.
func NewService(client *backend.Client, params review.Params, currency string, logger *slog.Logger) *Service {
	return &Service{
		client:     client,
		classifier: classify.New(),
		logger:     logger,
		params:     params,
		currency:   currency,
	}
}

// WithMetrics enables import counters.
func (s *Service) WithMetrics(m *metrics.Metrics) *Service {
	s.metrics = m
	return s
}

// WithClassifier overrides the default keyword tables.
func (s *Service) WithClassifier(c *classify.Classifier) *Service {
	s.classifier = c
	return s
}

// Run imports one spreadsheet file and returns the review session holding its
// candidate transactions. Load failures and unrecognized formats abort the
// run; unparsable rows are skipped, counted and reported in aggregate only.
func (s *Service) Run(path string) (*review.Session, error) {
	wb, err := workbook.Load(path)
	if err != nil {
		return nil, err
	}

	sheet := wb.FirstSheet()
	if sheet == nil {
		return nil, fmt.Errorf("%w: workbook has no sheets", workbook.ErrLoad)
	}

	det, err := format.Detect(sheet)
	if err != nil {
		if errors.Is(err, format.ErrUnknownFormat) {
			if near := format.SuggestClosest(sheet, 3); len(near) > 0 {
				s.logger.Warn("no known layout matched",
					slog.String("file", wb.FileName),
					slog.Any("closest_headers", near))
			}
		}
		return nil, err
	}

	s.logger.Info("format detected",
		slog.String("file", wb.FileName),
		slog.String("format", det.Format.Name),
		slog.Int("header_row", det.HeaderRow))

	result := rowparse.NewParser(s.currency).
		WithClassifier(s.classifier).
		ParseSheet(sheet, det)

	s.metrics.AddParsed(len(result.Transactions))
	s.metrics.AddSkipped(result.Skipped)
	if result.Skipped > 0 {
		s.logger.Info("rows skipped for unparsable amounts",
			slog.Int("skipped", result.Skipped), slog.Int("rows", result.Rows))
	}

	session := review.NewSession(wb.FileName, result, s.client, s.params, s.logger).
		WithMetrics(s.metrics)
	return session, nil
}
