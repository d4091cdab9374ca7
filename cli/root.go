// Package cli is the command-line entry point: an interactive calculator loop,
// one-shot calculate/compare commands and the HTTP server.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"loan-amortizer/config"
	"loan-amortizer/logging"
	"loan-amortizer/repository"
	"loan-amortizer/service"
)

// app holds what PersistentPreRunE builds for the subcommands.
type app struct {
	cfg    *config.Config
	logger *slog.Logger

	loanService       *service.LoanService
	comparisonService *service.TermComparisonService
	cache             repository.CacheRepository
	closeCache        func() error
}

// Execute runs the root command against the process arguments.
func Execute() {
	if err := executeRoot(newRootCmd()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// executeRoot runs root and releases what setup opened. cobra skips post-run
// hooks when a command fails, so teardown happens here.
func executeRoot(root *cobra.Command, a *app) error {
	err := root.Execute()
	if closeErr := a.teardown(); err == nil {
		err = closeErr
	}
	return err
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}

	root := &cobra.Command{
		Use:   "loan-amortizer",
		Short: "Fixed-rate loan payment and amortization schedule calculator",
		Long: `loan-amortizer computes the monthly payment of a fixed-rate loan and its
full amortization schedule from the principal, the annual nominal rate and
the term in years.

Without a subcommand it starts the interactive calculator.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInteractive(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("env-file", "", "env file to load (default: ./.env when present)")
	flags.String("log-level", "", "log level override (debug, info, warn, error)")
	flags.String("log-format", "", "log format override (text, json)")
	flags.String("cache-backend", "", "calculation cache (memory, redis)")
	flags.String("redis-addr", "", "redis address for the redis cache backend")

	root.AddCommand(
		newInteractiveCmd(a),
		newCalculateCmd(a),
		newCompareCmd(a),
		newServeCmd(a),
	)
	return root, a
}

func (a *app) setup(cmd *cobra.Command) error {
	envFile, _ := cmd.Flags().GetString("env-file")
	cfg, err := config.Load(envFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	cache, closeCache, err := newCache(cfg, logger)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.cache = cache
	a.closeCache = closeCache
	a.loanService = service.NewLoanService(repository.NewLoanRepositoryMemory(), cache, logger)
	a.comparisonService = service.NewTermComparisonService(a.loanService, logger)
	return nil
}

// teardown closes the cache at most once.
func (a *app) teardown() error {
	if a.closeCache == nil {
		return nil
	}
	closeCache := a.closeCache
	a.closeCache = nil
	return closeCache()
}

func newCache(cfg *config.Config, logger *slog.Logger) (repository.CacheRepository, func() error, error) {
	if cfg.CacheBackend != config.CacheBackendRedis {
		return repository.NewMockCache(), nil, nil
	}

	cache := repository.NewRedisCache(cfg.RedisAddr, cfg.RedisDB, cfg.CacheTTL)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := cache.Ping(ctx); err != nil {
		_ = cache.Close()
		return nil, nil, fmt.Errorf("redis cache unavailable at %s: %w", cfg.RedisAddr, err)
	}
	logger.Info("using redis cache", "addr", cfg.RedisAddr, "db", cfg.RedisDB, "ttl", cfg.CacheTTL)
	return cache, cache.Close, nil
}
