// Command importer loads a bank spreadsheet export, recognizes its layout,
// parses and classifies the rows, and either prints the candidates for review
// or commits them to the finance backend.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/hucha-fin/importer/internal/backend"
	"github.com/hucha-fin/importer/internal/domain/format"
	"github.com/hucha-fin/importer/internal/domain/review"
	"github.com/hucha-fin/importer/internal/domain/workbook"
	"github.com/hucha-fin/importer/internal/importer"
	"github.com/hucha-fin/importer/pkg/config"
	"github.com/hucha-fin/importer/pkg/metrics"
	"github.com/hucha-fin/importer/pkg/money"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	var (
		file   = flag.String("file", "", "spreadsheet file to import (.xlsx, .xls, .csv)")
		auto   = flag.Bool("auto", false, "commit all parsed rows without interactive review")
		dryRun = flag.Bool("dry-run", false, "parse and classify only; never call the backend")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *file == "" {
		fmt.Fprintln(os.Stderr, "usage: importer -file <spreadsheet> [-auto] [-dry-run]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	client := backend.NewClient(cfg.Backend.BaseURL, logger).
		WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.Backend.TimeoutSeconds) * time.Second}).
		WithRateLimit(cfg.Backend.RequestsPerSec, cfg.Backend.RateLimitBurst)

	m := metrics.New(prometheus.NewRegistry())

	svc := importer.NewService(client, review.Params{
		UserID:    cfg.Import.UserID,
		AccountID: cfg.Import.AccountID,
	}, cfg.Import.Currency, logger).WithMetrics(m)

	session, err := svc.Run(*file)
	if err != nil {
		switch {
		case errors.Is(err, workbook.ErrLoad):
			logger.Error("could not process file", slog.String("file", *file), slog.Any("error", err))
		case errors.Is(err, format.ErrUnknownFormat):
			logger.Error("spreadsheet format not recognized", slog.String("file", *file))
		default:
			logger.Error("import failed", slog.Any("error", err))
		}
		os.Exit(1)
	}

	pending := session.Pending()
	fmt.Printf("%s: %d candidate transactions (%d rows skipped)\n",
		session.FileName, len(pending), session.SkippedRows())
	for _, p := range pending {
		date := "----------"
		if !p.Date.IsZero() {
			date = p.Date.Format("2006-01-02")
		}
		fmt.Printf("  %s  %-7s  %12s  cat=%d  %s\n",
			date, p.Type, money.Format(p.Amount, p.Currency), p.CategoryID, p.Name)
	}

	if *dryRun || !*auto {
		if !*auto && !*dryRun {
			fmt.Println("re-run with -auto to save these transactions")
		}
		return
	}

	result, err := session.Commit(context.Background())
	if err != nil {
		if errors.Is(err, review.ErrNothingSelected) {
			fmt.Println("nothing selected, nothing saved")
			return
		}
		logger.Error("commit failed", slog.Any("error", err))
		os.Exit(1)
	}

	fmt.Printf("%s (total %s)\n", result.Summary(), money.Format(result.TotalSaved, cfg.Import.Currency))
	for _, msg := range result.Errors {
		fmt.Printf("  backend: %s\n", msg)
	}
	if result.Failed > 0 {
		os.Exit(1)
	}
}
