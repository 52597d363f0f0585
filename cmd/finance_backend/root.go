package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/personal_finance_api/internal/adapters/notifier"
	portssvc "github.com/SscSPs/personal_finance_api/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_api/internal/core/services"
	"github.com/SscSPs/personal_finance_api/internal/platform/config"
	"github.com/SscSPs/personal_finance_api/internal/repositories/database/pgsql"
	"github.com/SscSPs/personal_finance_api/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var flagConfigFile string

var rootCmd = &cobra.Command{
	Use:   "finance_backend",
	Short: "Personal finance API server",
	Long:  "Serves the personal finance REST API and runs its maintenance tasks.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagConfigFile != "" {
			viper.SetConfigFile(flagConfigFile)
		}
	},
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func init() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	rootCmd.PersistentFlags().StringVar(&flagConfigFile, "config", "", "Config file (yaml, toml, json or env) read in addition to the environment")
	rootCmd.Flags().BoolVar(&flagServeMigrate, "migrate", true, "Apply pending migrations before serving")
}

// runtimeDeps is what every command needs to talk to the database and the services.
type runtimeDeps struct {
	cfg      *config.Config
	pool     *pgxpool.Pool
	services *portssvc.ServiceContainer
	closers  []func()
}

func (d *runtimeDeps) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
}

// buildRuntime opens the pool and the optional AMQP publisher, and wires
// repositories into the service container.
func buildRuntime(ctx context.Context, cfg *config.Config) (*runtimeDeps, error) {
	deps := &runtimeDeps{cfg: cfg}

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return nil, fmt.Errorf("initialize database pool: %w", err)
	}
	deps.pool = pool
	deps.closers = append(deps.closers, func() { database.ClosePgxPool(pool) })

	var publishers []portssvc.NotificationSink
	if cfg.AMQPURL != "" {
		amqpNotifier, err := notifier.NewAMQPNotifier(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			deps.Close()
			return nil, fmt.Errorf("connect notification broker: %w", err)
		}
		publishers = append(publishers, amqpNotifier)
		deps.closers = append(deps.closers, func() {
			if err := amqpNotifier.Close(); err != nil {
				slog.Warn("Failed to close AMQP notifier", slog.String("error", err.Error()))
			}
		})
		slog.Info("AMQP notification publisher enabled", slog.String("exchange", cfg.AMQPExchange))
	}

	container, err := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(pool), publishers...)
	if err != nil {
		deps.Close()
		return nil, fmt.Errorf("build services: %w", err)
	}
	deps.services = container
	return deps, nil
}
