package main

import (
	"context"
	"fmt"
	"strings"

	"flights/internal/domain/repository"
	"flights/internal/infrastructure/config"
	"flights/internal/interface/presenter"
	"flights/internal/usecase"
	"flights/pkg/logger"
	"flights/pkg/metrics"

	"github.com/spf13/cobra"
)

const metricsNamespace = "flights"

// app carries what every command needs once flags are parsed
type app struct {
	cfg     *config.Config
	log     logger.Logger
	metrics *metrics.Metrics
	verbose bool

	// openRepo is swapped in tests
	openRepo func(ctx context.Context, cfg *config.Config, filename string, log logger.Logger) (repository.FlightRepository, error)
}

func newApp(cfg *config.Config) *app {
	return &app{
		cfg:      cfg,
		openRepo: openRepository,
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "flights",
		Short: "Keep a list of flights in a JSON file",
		Long: `flights appends, lists and filters flight records.

Records are stored as a JSON array in <data dir>/<filename>, where the data
directory is $FLIGHTS_HOME or the user's home directory.`,
		Version:       a.cfg.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	rootCmd.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "Log debug output to stderr")

	rootCmd.AddCommand(newAddCmd(a), newDisplayCmd(a), newSelectCmd(a))
	return rootCmd
}

func (a *app) init() error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	if a.log == nil {
		level := a.cfg.LogLevel
		if a.verbose {
			level = "debug"
		}
		log, err := logger.NewLogger(level)
		if err != nil {
			return err
		}
		a.log = log
	}
	if a.metrics == nil {
		a.metrics = metrics.NewMetrics(metricsNamespace)
	}
	return nil
}

// withService opens the list named filename, runs fn and releases the
// storage. STORAGE_TIMEOUT bounds everything fn does against storage.
// Metrics are pushed whether or not fn failed.
func (a *app) withService(ctx context.Context, filename string, fn func(context.Context, *usecase.FlightService) error) error {
	log := a.log.With("file", filename, "backend", a.cfg.Backend)
	defer a.pushMetrics()

	if a.cfg.StorageTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.StorageTimeout)
		defer cancel()
	}

	repo, err := a.openRepo(ctx, a.cfg, filename, log)
	if err != nil {
		a.metrics.ErrorsCount.WithLabelValues("open").Inc()
		return err
	}
	defer func() {
		if err := repo.Close(context.Background()); err != nil {
			log.Warn("Failed to close storage", "error", err)
		}
	}()

	return fn(ctx, usecase.NewFlightService(repo, a.metrics, log))
}

func (a *app) pushMetrics() {
	if a.cfg.PushgatewayURL == "" {
		return
	}
	if err := a.metrics.Push(a.cfg.PushgatewayURL, metricsNamespace); err != nil {
		a.log.Warn("Failed to push metrics", "url", a.cfg.PushgatewayURL, "error", err)
	}
}

func addOutputFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "output", "o", string(presenter.FormatTable), "Output format: table, json or yaml")
}

// legacyShorthands maps the two-letter single-dash options to their long
// names; pflag only accepts one-letter shorthands.
var legacyShorthands = map[string]string{
	"-dd": "--departure_date",
	"-at": "--aircraft_type",
}

// normalizeArgs rewrites legacy shorthands, including the -dd=value form.
// Nothing after a bare "--" is touched.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		name, value, hasValue := strings.Cut(arg, "=")
		if long, ok := legacyShorthands[name]; ok {
			if hasValue {
				arg = fmt.Sprintf("%s=%s", long, value)
			} else {
				arg = long
			}
		}
		out = append(out, arg)
	}
	return out
}
