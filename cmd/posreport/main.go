package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"posreport/internal/app"
	"posreport/internal/config"
	"posreport/internal/logger"

	"github.com/google/uuid"
)

// The tool always exits 0: every failure degrades to a smaller report and is
// logged to stderr.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.With("run_id", uuid.NewString())

	cfgPath := config.ResolvePath()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Errorf("loading config %s failed, using defaults: %v", cfgPath, err)
		cfg = config.Default()
	}
	logger.SetLevel(cfg.App.LogLevel)
	logger.Debugf("config loaded (driver=%s, format=%s)", cfg.Database.NormalizedDriver(), cfg.Report.NormalizedFormat())

	a, err := app.NewApp(cfg)
	if err != nil {
		logger.Errorf("initializing app failed: %v", err)
		return
	}
	if err := a.Run(ctx); err != nil {
		logger.Errorf("report failed: %v", err)
	}
}
