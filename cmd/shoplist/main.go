package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/idilsaglam/shoplist/internal/cli"
	"github.com/idilsaglam/shoplist/internal/config"
	"github.com/idilsaglam/shoplist/internal/logger"
	"github.com/idilsaglam/shoplist/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	configPath := flag.String("config", "", "config file (default: ./shoplist.yaml)")
	theme := flag.String("theme", "", "color theme: classic, neon or mono")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		ui.Fail(os.Stderr, err.Error())
		os.Exit(2)
	}

	ui.SetTheme(cfg.UI.Theme)
	if *theme != "" {
		ui.SetTheme(*theme)
	}

	log, err := logger.New(cfg.Log.Mode, cfg.Log.ToLoggerOptions())
	if err != nil {
		// keep going without a log file
		ui.Fail(os.Stderr, "logger: "+err.Error())
		log = zap.NewNop()
	}
	log, _ = logger.WithSession(log)
	log.Info("starting", zap.String("config", cfg.File), zap.String("theme", ui.Current().Name))

	// Hand the remaining args to the CLI runner.
	code := cli.Run(flag.Args(), cli.Options{
		ShowHelp:  cfg.UI.ShowHelp,
		CharLimit: cfg.UI.CharLimit,
		Logger:    log,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	_ = log.Sync()
	os.Exit(code)
}
