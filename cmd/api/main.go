package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	_ "mini-blog/docs"
	"mini-blog/internal/config"
	"mini-blog/internal/observability/logging"
	"mini-blog/internal/observability/tracing"
)

// @title           Mini Blog API
// @version         1.0
// @description     カテゴリ・著者・記事を管理するブログバックエンドの REST API
// @description     記事の作成と更新では、参照するカテゴリと著者の存在を検証します。

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the CLI. Running the binary without a subcommand serves
// the API.
func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "mini-blog",
		Short:         "Mini blog HTTP API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", os.Getenv("MINIBLOG_CONFIG"),
		"path to a YAML config file (env MINIBLOG_CONFIG)")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}

	routes := &cobra.Command{
		Use:   "routes",
		Short: "Print the route table as Markdown",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), routesDoc(config.Default()))
			return err
		},
	}

	root.AddCommand(serve, routes)
	root.RunE = serve.RunE
	return root
}

// runServe loads configuration and runs the server until SIGINT or SIGTERM.
func runServe(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		// The logger is configured from cfg, so this goes to stderr as is.
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	logger, err := initLogger(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	shutdownTracing := tracing.InitProvider(tracing.ProviderConfig{
		ServiceName: cfg.Tracing.ServiceName,
		SampleRatio: cfg.Tracing.SampleRatio,
	})
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("failed to shut down tracing", slog.Any("error", err))
		}
	}()

	store, err := openStore(ctx, logger, cfg)
	if err != nil {
		logger.Error("failed to open document store",
			slog.String("store", cfg.Store.Kind),
			slog.Any("error", err))
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close document store", slog.Any("error", err))
		}
	}()

	version := getVersion()
	srv := setupServer(logger, cfg, store, version)

	return runServer(ctx, logger, srv, cfg.HTTP.ShutdownTimeout, version)
}

// initLogger builds the process logger and installs it as the slog default.
func initLogger(cfg config.LogConfig) (*slog.Logger, error) {
	logger, err := logging.New(logging.Options{
		Level:  cfg.Level,
		Format: cfg.Format,
		Output: os.Stdout,
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	slog.SetDefault(logger)
	return logger, nil
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	if v := os.Getenv("VERSION"); v != "" {
		return v
	}
	return "dev"
}
