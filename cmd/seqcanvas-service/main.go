// Copyright 2026 The Seqcanvas Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/seqcanvas/seqcanvas/lib/benchling"
	"github.com/seqcanvas/seqcanvas/lib/config"
	"github.com/seqcanvas/seqcanvas/lib/interaction"
	"github.com/seqcanvas/seqcanvas/lib/process"
	"github.com/seqcanvas/seqcanvas/lib/seqera"
	"github.com/seqcanvas/seqcanvas/lib/version"
	"github.com/seqcanvas/seqcanvas/lib/web"
)

func main() {
	if err := run(); err != nil {
		process.Fatal(err)
	}
}

func run() error {
	var (
		configPath  string
		showVersion bool
	)
	flag.StringVar(&configPath, "config", "", "path to the YAML config file (overrides SEQCANVAS_CONFIG)")
	flag.BoolVar(&showVersion, "version", false, "print version information and exit")
	flag.Parse()

	if showVersion {
		version.Print("seqcanvas-service")
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	secrets := config.LoadSecrets()
	if secrets.SeqeraToken == "" {
		return fmt.Errorf("SEQERA_ACCESS_TOKEN environment variable not set")
	}
	if secrets.BenchlingClientSecret == "" {
		return fmt.Errorf("BENCHLING_CLIENT_SECRET environment variable not set")
	}
	if secrets.WebhookSecret == "" {
		logger.Warn("SEQCANVAS_WEBHOOK_SECRET not set, webhook signature verification disabled")
	}

	registry, err := seqera.NewClient(seqera.Config{
		BaseURL: cfg.Seqera.APIURL,
		Token:   secrets.SeqeraToken,
		Logger:  logger.With("component", "seqera"),
	})
	if err != nil {
		return err
	}

	notebook, err := benchling.NewClient(benchling.Config{
		BaseURL:      cfg.Benchling.APIURL,
		AppID:        cfg.Benchling.AppID,
		ClientID:     cfg.Benchling.ClientID,
		ClientSecret: secrets.BenchlingClientSecret,
		Logger:       logger.With("component", "benchling"),
	})
	if err != nil {
		return err
	}

	handler := interaction.NewHandler(interaction.Config{
		Registry:     registry,
		Notebook:     notebook,
		Organization: cfg.Seqera.Organization,
		Workspace:    cfg.Seqera.Workspace,
		SyncSchemaID: cfg.NotebookSync.SchemaID,
		SyncFolderID: cfg.NotebookSync.FolderID,
		Logger:       logger.With("component", "interaction"),
	})

	webhook := NewWebhookHandler(WebhookHandlerConfig{
		Handler: handler,
		Secret:  []byte(secrets.WebhookSecret),
		Logger:  logger.With("component", "webhook"),
	})

	mux := http.NewServeMux()
	mux.Handle("POST /webhook", webhook)
	mux.HandleFunc("GET /health", func(writer http.ResponseWriter, request *http.Request) {
		fmt.Fprint(writer, "ok")
	})

	server := web.NewServer(web.ServerConfig{
		Address: cfg.Listen,
		Handler: mux,
		Logger:  logger,
	})

	serveDone := make(chan error, 1)
	go func() {
		serveDone <- server.Serve(ctx)
	}()

	select {
	case <-server.Ready():
		logger.Info("webhook listener ready", "address", server.Addr().String())
	case err := <-serveDone:
		return err
	}

	return <-serveDone
}
