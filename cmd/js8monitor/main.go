// cmd/js8monitor/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/tamzrod/js8-monitor/internal/config"
	"github.com/tamzrod/js8-monitor/internal/freq"
	"github.com/tamzrod/js8-monitor/internal/js8"
	"github.com/tamzrod/js8-monitor/internal/monitor"
	"github.com/tamzrod/js8-monitor/internal/poller"
	"github.com/tamzrod/js8-monitor/internal/rxlog"
	"github.com/tamzrod/js8-monitor/internal/writer"
)

const (
	exitOK    = 0
	exitStart = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	logger := log.New(stderr, "", log.LstdFlags)

	// --------------------
	// Load + validate config
	// --------------------

	cfgPath := config.Path()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Printf("config load failed: %v", err)
		return exitUsage
	}

	if err := config.Validate(cfg); err != nil {
		logger.Printf("config validation failed (%s): %v", cfgPath, err)
		return exitUsage
	}
	config.Normalize(cfg)

	// --------------------
	// Status publisher (optional)
	// --------------------

	statusWriter, closeStatus, statusEnabled, err := writer.Build(cfg.Status)
	if err != nil {
		logger.Printf("status writer build failed: %v", err)
		return exitUsage
	}
	if statusEnabled {
		defer closeStatus()
	}

	// --------------------
	// Client + controller
	// --------------------

	client := js8.New(js8.ConfigFrom(cfg.JS8Call))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctrl := &monitor.Controller{
		Client:  client,
		Options: opts,
		Log:     rxlog.New(cfg.Monitor.LogFile),
		Ready:   poller.ConfigFrom(cfg.Monitor),
		Out:     stdout,
	}
	if statusEnabled {
		ctrl.Status = statusWriter
	}

	if err := ctrl.Run(ctx); err != nil {
		if !errors.Is(err, monitor.ErrStart) {
			logger.Printf("monitor: %v", err)
		}
		return exitStart
	}

	return exitOK
}

// parseOptions accepts --gn and --std only. Positional arguments are rejected.
func parseOptions(args []string, stderr io.Writer) (freq.Options, error) {
	var opts freq.Options

	fs := flag.NewFlagSet("js8monitor", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "JS8Call Monitor")
		fmt.Fprintln(stderr, "\nusage: js8monitor [--gn] [--std]")
		fs.PrintDefaults()
	}

	fs.BoolVar(&opts.GN, "gn", false, "set the frequency to the ghost net frequency")
	fs.BoolVar(&opts.STD, "std", false, "set the frequency to the standard 40m js8 call freq")

	if err := fs.Parse(args); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fs.Usage()
		}
		return freq.Options{}, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return freq.Options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	return opts, nil
}
