package main

import (
	"context"
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/skarimo/downwatch/internal/config"
	"github.com/skarimo/downwatch/internal/logging"
	"github.com/skarimo/downwatch/internal/notify"
	"github.com/skarimo/downwatch/internal/probe"
	"github.com/skarimo/downwatch/internal/reconcile"
	"github.com/skarimo/downwatch/internal/tracker"
	trackergh "github.com/skarimo/downwatch/internal/tracker/github"
	trackermem "github.com/skarimo/downwatch/internal/tracker/memory"
)

// One synchronous pass per invocation; the schedule lives outside (a CI cron
// trigger). Overlapping runs are not coordinated.
func main() {
	dryRun := flag.Bool("dry-run", false, "use an in-memory tracker; no issue is touched")
	flag.Parse()

	cfg, err := config.LoadMonitor()
	if err != nil {
		// Fatal precondition: no tracker or messaging call is attempted.
		log.Fatal(err)
	}

	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx := context.Background()

	var tr tracker.Tracker = trackergh.New(ctx, cfg.GitHubToken, cfg.RepoOwner, cfg.RepoName)
	if *dryRun {
		logger.Info("dry_run")
		tr = trackermem.New()
	}

	var checker probe.Checker = probe.NewHTTPChecker(cfg.ProbeTimeout, logger)
	notifier := notify.NewWhatsApp(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.Sender, cfg.Recipient, logger)
	engine := reconcile.NewEngine(logger, tr, notifier, cfg.Title)

	result := checker.CheckAll(ctx, cfg.Targets)
	if err := engine.Reconcile(ctx, result); err != nil {
		logger.Fatal("reconcile_error", zap.Error(err))
	}
}
