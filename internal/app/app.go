package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"posreport/internal/config"
	"posreport/internal/logger"
	"posreport/internal/report"
	"posreport/internal/store"
	"posreport/internal/types"
)

// App fetches open positions once and renders the report.
type App struct {
	cfg  *config.Config
	open Opener
	out  io.Writer
	now  func() time.Time
}

// Option customises an App; tests use it to swap the reader and clock.
type Option func(*App)

func WithOpener(open Opener) Option {
	return func(a *App) {
		if open != nil {
			a.open = open
		}
	}
}

func WithOutput(w io.Writer) Option {
	return func(a *App) {
		if w != nil {
			a.out = w
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(a *App) {
		if now != nil {
			a.now = now
		}
	}
}

// NewApp builds the application without touching the database.
func NewApp(cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config")
	}
	logger.SetLevel(cfg.App.LogLevel)
	a := &App{
		cfg:  cfg,
		open: OpenReader,
		out:  os.Stdout,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Run produces one report. Data-access failures never surface here: they are
// logged and the report is rendered over zero positions. Only a failure to
// write the report itself is returned.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.cfg == nil {
		return fmt.Errorf("app not initialized")
	}
	positions := a.fetch(ctx)
	rep := report.Build(positions, a.now(), a.reportOptions())
	if rep.Age.Unparseable > 0 {
		logger.Warnf("%d open positions have an unparseable opened_at and were left out of the age buckets", rep.Age.Unparseable)
	}
	if path := a.cfg.Report.ChartPath; path != "" {
		if err := report.WriteChartFile(path, rep); err != nil {
			logger.Warnf("writing chart %s failed: %v", path, err)
		} else {
			logger.Infof("chart written to %s", path)
		}
	}
	if err := report.Render(a.out, rep, a.cfg.Report.Format); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

func (a *App) fetch(ctx context.Context) []types.Position {
	db := a.cfg.Database
	reader, err := a.open(db)
	if err == nil && reader == nil {
		err = store.ErrNotConfigured
	}
	if err != nil {
		logger.Errorf("open %s database failed: %v", db.NormalizedDriver(), err)
		return nil
	}
	defer func() {
		if err := reader.Close(); err != nil {
			logger.Warnf("closing database failed: %v", err)
		}
	}()
	started := time.Now()
	positions, err := reader.OpenPositions(ctx)
	if err != nil {
		logger.Errorf("fetching open positions failed: %v", err)
		return nil
	}
	logger.Debugf("fetched %d open positions in %s", len(positions), time.Since(started).Round(time.Millisecond))
	return positions
}

func (a *App) reportOptions() report.Options {
	rc := a.cfg.Report
	return report.Options{
		QuoteCurrency:     rc.QuoteCurrency,
		TopLosing:         rc.TopLosing,
		MissingExitSample: rc.MissingExitSample,
		OldAfterHours:     rc.OldAfterHours,
		OldSample:         rc.OldSample,
	}
}
