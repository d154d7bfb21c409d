package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/shopfront/internal/cli"
	"github.com/idilsaglam/shopfront/internal/config"
	"github.com/idilsaglam/shopfront/internal/logger"
	"github.com/idilsaglam/shopfront/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		ui.Fail(err.Error())
		os.Exit(2)
	}
	ui.SetTheme(cfg.Theme)

	log, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		ui.Fail("logger: " + err.Error())
		os.Exit(1)
	}

	// Hand the remaining args to the CLI runner; no args opens the storefront.
	args := flag.Args()
	if len(args) == 0 {
		args = []string{"browse"}
	}

	code := cli.Run(args, cli.Options{Config: cfg, Log: log})
	_ = log.Sync()
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
