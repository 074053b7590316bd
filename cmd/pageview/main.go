// Command pageview sends a single pageview built from flags. The destination
// comes from BEACON_* environment variables or a .env file.
//
//	pageview -url https://example.com/pricing -title Pricing -sw 1920 -sh 1080
package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrymomot/beacon/pkg/config"
	"github.com/dmitrymomot/beacon/pkg/logger"
	"github.com/dmitrymomot/beacon/pkg/pageview"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr))
}

// run returns the process exit code: 2 for bad flags, 1 for configuration
// errors, 0 otherwise. A failed delivery is logged but does not fail the command.
func run(ctx context.Context, args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("pageview", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var snap pageview.Snapshot
	fs.StringVar(&snap.URL, "url", "", "page URL")
	fs.StringVar(&snap.Referrer, "referrer", "", "referring URL")
	fs.StringVar(&snap.Title, "title", "", "document title")
	fs.StringVar(&snap.UserAgent, "ua", "", "user agent string")
	fs.StringVar(&snap.Language, "lang", "", "preferred language tag")
	fs.IntVar(&snap.ScreenWidth, "sw", 0, "screen width in pixels")
	fs.IntVar(&snap.ScreenHeight, "sh", 0, "screen height in pixels")
	fs.IntVar(&snap.ViewportWidth, "vw", 0, "viewport width in pixels")
	fs.IntVar(&snap.ViewportHeight, "vh", 0, "viewport height in pixels")
	wait := fs.Bool("wait", true, "wait for the delivery outcome; without it the process may exit before the request completes")
	timeout := fs.Duration("timeout", 15*time.Second, "how long -wait blocks")
	envFile := fs.String("env", "", "load variables from this .env file")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := logger.New(logger.WithOutput(stderr), logger.WithFormat(logger.FormatText), logger.WithLevel(level))

	var opts []config.Option
	if *envFile != "" {
		opts = append(opts, config.WithEnvFiles(*envFile))
	}
	var cfg pageview.Config
	if err := config.Load(&cfg, opts...); err != nil {
		log.Error("invalid configuration", logger.Error(err))
		return 1
	}

	tracker, err := pageview.NewTracker(cfg, pageview.StaticEnvironment(snap))
	if err != nil {
		log.Error("invalid configuration", logger.Error(err))
		return 1
	}

	event := tracker.Collect(ctx)
	log.Debug("sending pageview", slog.Any("snapshot", snap), slog.String("timestamp", event.Timestamp))
	delivery := tracker.Send(ctx, event)
	if !*wait {
		return 0
	}

	if err := delivery.WaitWithTimeout(*timeout); err != nil {
		log.Warn("pageview not delivered",
			logger.Table(cfg.TableName),
			logger.StatusCode(delivery.StatusCode()),
			logger.Error(err),
		)
		return 0
	}
	log.Info("pageview delivered",
		logger.Table(cfg.TableName),
		logger.StatusCode(delivery.StatusCode()),
		logger.Duration(delivery.Duration()),
	)
	return 0
}
