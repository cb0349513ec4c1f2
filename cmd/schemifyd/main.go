package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/jwielgosz/schemify/goquery"
	schemifyhttp "github.com/jwielgosz/schemify/http"
	"github.com/jwielgosz/schemify/prometheus"
	"github.com/jwielgosz/schemify/rod"
	"github.com/jwielgosz/schemify/scrape"
	schemifylog "github.com/jwielgosz/schemify/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if cfg.LogPretty {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	session := rod.NewSession()
	defer session.Close()

	staticOpts := []schemifyhttp.Option{schemifyhttp.WithTimeout(cfg.FetchTimeout)}
	if cfg.UserAgent != "" {
		staticOpts = append(staticOpts, schemifyhttp.WithUserAgent(cfg.UserAgent))
	}
	static := schemifyhttp.NewFetcher(staticOpts...)
	defer static.Close()

	dynamic := rod.NewFetcher(session, rod.WithNavTimeout(cfg.NavTimeout))

	metrics := prometheus.NewMetrics(promclient.DefaultRegisterer)

	scraper := scrape.NewScraper(static, dynamic, goquery.NewExtractor(),
		scrape.WithMetrics(metrics))

	server := schemifyhttp.NewServer(
		schemifylog.NewLoggingScraper(scraper, logger),
		schemifyhttp.WithStaticDir(cfg.StaticDir),
		schemifyhttp.WithLogger(logger),
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("server listening")
		errCh <- server.Start(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-sigCh:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}

	logger.Info().Msg("server stopped")
	return nil
}
