package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jask/artgrid/core"
	"github.com/jask/artgrid/internal/catalog"
	"github.com/jask/artgrid/internal/config"
	"github.com/jask/artgrid/internal/export"
	"github.com/jask/artgrid/internal/logging"
	"github.com/jask/artgrid/screens"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "artgrid",
		Short: "Browse the Art Institute of Chicago catalog and pick artworks",
		Long: `artgrid pages through the artwork catalog ten records at a time.

Selections survive page changes. Press enter to confirm and the selection is
written as JSON, YAML or Parquet; q quits without writing anything.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd.Context(), cmd, cfg)
		},
	}
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func run(ctx context.Context, cmd *cobra.Command, cfg config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	format, err := export.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	logger, closer, err := logging.Setup(logging.Config{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty,
		File:   cfg.Log.File,
	})
	if err != nil {
		return err
	}
	defer closer.Close()

	metrics := catalog.NewMetrics()
	if cfg.Metrics.Addr != "" {
		stop := serveMetrics(cfg.Metrics.Addr, metrics, logger)
		defer stop()
	}

	client, err := catalog.New(catalog.Config{
		BaseURL:   cfg.API.BaseURL,
		PageLimit: cfg.API.PageLimit,
		Timeout:   cfg.API.Timeout,
		UserAgent: cfg.API.UserAgent,
	}, logger, metrics)
	if err != nil {
		return err
	}

	keys := core.NewKeyRegistry(core.DefaultKeyBindings())
	model := core.NewModel(ctx, client, keys, logger, cfg.UI.StartPage)
	model.OpenBulkSelect = screens.OpenBulkSelect(keys)

	logger.Info().Str("base_url", cfg.API.BaseURL).Int("start_page", cfg.UI.StartPage).Msg("grid starting")
	final, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("run grid: %w", err)
	}

	m, ok := final.(core.Model)
	if !ok || !m.Confirmed() {
		logger.Info().Msg("quit without confirming")
		return nil
	}
	selection := m.Selection()
	if err := export.WriteFile(cfg.Output.File, cmd.OutOrStdout(), format, selection); err != nil {
		return fmt.Errorf("export selection: %w", err)
	}
	logger.Info().Int("records", len(selection)).Str("format", string(format)).Str("file", cfg.Output.File).Msg("selection exported")
	return nil
}

// serveMetrics exposes the catalog registry until the returned stop func runs.
func serveMetrics(addr string, metrics *catalog.Metrics, logger zerolog.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Str("addr", addr).Msg("metrics server stopped")
		}
	}()
	logger.Info().Str("addr", addr).Msg("metrics server listening")

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
