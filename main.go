// Copyright (c) 2025 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ffutop/onkyo-rs232/internal/config"
	"github.com/ffutop/onkyo-rs232/internal/receiver"
	"github.com/ffutop/onkyo-rs232/transport"
	"github.com/ffutop/onkyo-rs232/transport/local"
	"github.com/ffutop/onkyo-rs232/transport/serial"
	"github.com/ffutop/onkyo-rs232/transport/tcp"
)

// To be set via go build -ldflags "-X main.buildVersion=$(git describe --dirty) -X main.buildDate=$(date -u +%FT%TZ)"
var (
	buildVersion = "unspecified"
	buildDate    = "unknown"
)

func main() {
	fs := pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)
	config.RegisterFlags(fs)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <command> [args]\n\n%s\nFlags:\n", os.Args[0], usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}
	if fs.NArg() == 0 {
		fs.Usage()
		os.Exit(2)
	}

	// Load Configuration
	configFile, _ := fs.GetString("config")
	cfg, err := config.LoadConfig(configFile, fs)
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	closeLog := setupLogger(cfg.Log)
	defer closeLog()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, fs.Args()); err != nil {
		slog.Error("Command failed", "command", fs.Arg(0), "err", err)
		closeLog()
		os.Exit(1)
	}
}

// run opens the configured link, executes one command and releases the link.
func run(ctx context.Context, cfg *config.Config, args []string) error {
	link, err := newLink(cfg.Link, os.Stdout)
	if err != nil {
		return err
	}

	rcv, err := receiver.Open(ctx, link, cfg.Receiver.CommandDelay)
	if err != nil {
		link.Close()
		return err
	}
	slog.Debug("Link open", "type", cfg.Link.Type, "commandDelay", cfg.Receiver.CommandDelay)

	err = dispatch(ctx, rcv, cfg, args)
	if cerr := rcv.Close(); err == nil {
		err = cerr
	}
	return err
}

func newLink(cfg config.LinkConfig, out io.Writer) (transport.Link, error) {
	switch cfg.Type {
	case "serial":
		return serial.NewClient(cfg.Serial), nil
	case "tcp":
		return tcp.NewClient(cfg.Tcp), nil
	case "local":
		return local.NewClient(out), nil
	}
	return nil, fmt.Errorf("unknown link type %q", cfg.Type)
}

func setupLogger(cfg config.LogConfig) (closeLog func()) {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}
	switch cfg.Level {
	case "debug":
		opts.Level = slog.LevelDebug
	case "warn":
		opts.Level = slog.LevelWarn
	case "error":
		opts.Level = slog.LevelError
	}

	closeLog = func() {}
	var handler slog.Handler
	if cfg.File != "" && cfg.File != "-" {
		w := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
		}
		handler = slog.NewTextHandler(w, opts)
		closeLog = func() { w.Close() }
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
	return closeLog
}
