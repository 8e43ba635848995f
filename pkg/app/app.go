package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"prepkit/internal/console"
	"prepkit/pkg/catalog"
	"prepkit/pkg/config"
	"prepkit/pkg/drill"
	"prepkit/pkg/version"
)

// flags captures CLI options; anything left unset falls back to the config file.
type flags struct {
	configPath string
	envFile    string
	format     string
	logLevel   string
	catalog    string
	drills     []string
}

// Run parses args and executes the requested drills, writing their output to stdout.
// A nil logger means one is built from the configured level and sent to stderr.
func Run(ctx context.Context, args []string, stdout io.Writer, logger *zap.Logger) error {
	root := newRootCmd(stdout, logger)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func newRootCmd(stdout io.Writer, logger *zap.Logger) *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:           "prepkit",
		Short:         "Run interview-preparation drills",
		Long:          "prepkit runs small drills covering record literals, map/filter, callbacks and closures, printing each result.",
		Version:       version.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDrills(cmd, f, stdout, logger)
		},
	}
	root.SetOut(stdout)
	root.SetVersionTemplate("prepkit version {{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "prepkit.yaml", "Path to the YAML config file; a missing file means defaults")
	pf.StringVar(&f.envFile, "env-file", ".env", "Optional dotenv file with PREPKIT_* overrides")
	pf.StringVar(&f.format, "format", "", "Output format: text or json")
	pf.StringVar(&f.logLevel, "log-level", "", "Diagnostic log level: debug, info, warn, error")
	pf.StringVar(&f.catalog, "catalog", "", "Path to a YAML catalog replacing the built-in one")
	root.Flags().StringSliceVar(&f.drills, "drill", nil, "Drill to run; repeat or comma-separate for several (default: all)")

	root.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the available drills",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listDrills(cmd, f, stdout, logger)
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default inputs to --config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeDefaultConfig(cmd, f.configPath, force)
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	root.AddCommand(initCmd)
	return root
}

// session is everything a command needs once configuration is resolved.
type session struct {
	cfg      *config.Config
	logger   *zap.Logger
	printer  *console.Printer
	registry *drill.Registry
	cleanup  func()
}

func openSession(cmd *cobra.Command, f flags, stdout io.Writer, logger *zap.Logger) (*session, error) {
	if err := godotenv.Load(f.envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("unable to load env file: %w", err)
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}
	applyFlags(cmd, f, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	format, err := console.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	printer, err := console.NewPrinter(stdout, format)
	if err != nil {
		return nil, err
	}

	owned := logger == nil
	if owned {
		if logger, err = newLogger(cfg.Logging.Level); err != nil {
			return nil, fmt.Errorf("failed to initialize logger: %w", err)
		}
	}
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	ctx := cmd.Context()
	c, err := catalog.NewRepository(cfg.CatalogPath).Load(ctx)
	if err != nil {
		if owned {
			_ = logger.Sync()
		}
		return nil, fmt.Errorf("unable to load catalog: %w", err)
	}
	catalogs := catalog.NewService(c)
	logger.Debug("Catalog loaded", zap.String("path", cfg.CatalogPath), zap.Int("categories", len(c)))

	return &session{
		cfg:      cfg,
		logger:   logger,
		printer:  printer,
		registry: drill.Standard(catalogs, inputsFrom(cfg)),
		cleanup: func() {
			catalogs.Close()
			if owned {
				_ = logger.Sync()
			}
		},
	}, nil
}

func runDrills(cmd *cobra.Command, f flags, stdout io.Writer, logger *zap.Logger) error {
	s, err := openSession(cmd, f, stdout, logger)
	if err != nil {
		return err
	}
	defer s.cleanup()

	s.logger.Info("Starting drills", zap.Strings("drills", s.cfg.Drills), zap.String("format", s.cfg.Output.Format))
	runner := drill.NewRunner(s.registry, s.printer, s.logger)
	if err := runner.Run(cmd.Context(), s.cfg.Drills...); err != nil {
		s.logger.Warn("Drills failed", zap.Error(err))
		return err
	}
	return nil
}

func listDrills(cmd *cobra.Command, f flags, stdout io.Writer, logger *zap.Logger) error {
	s, err := openSession(cmd, f, stdout, logger)
	if err != nil {
		return err
	}
	defer s.cleanup()

	for _, d := range s.registry.All() {
		summary := d.Summary
		if d.Extra {
			summary += " (run by name only)"
		}
		s.printer.Line(d.Name, summary)
	}
	return s.printer.Err()
}

// writeDefaultConfig saves config.DefaultConfig so users have a file to edit.
func writeDefaultConfig(cmd *cobra.Command, path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists; pass --force to overwrite", path)
	}
	if err := config.DefaultConfig().Save(path); err != nil {
		return err
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return err
}

// applyFlags lets explicitly set flags win over file and environment values.
func applyFlags(cmd *cobra.Command, f flags, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("format") {
		cfg.Output.Format = f.format
	}
	if changed("log-level") {
		cfg.Logging.Level = f.logLevel
	}
	if changed("catalog") {
		cfg.CatalogPath = f.catalog
	}
	if changed("drill") {
		cfg.Drills = f.drills
	}
}

func inputsFrom(cfg *config.Config) drill.Inputs {
	in := cfg.Inputs
	return drill.Inputs{
		Numbers:         in.Numbers,
		Fruits:          in.Fruits,
		FilterNumbers:   in.FilterNumbers,
		FilterThreshold: in.FilterThreshold,
		CallbackResult:  in.CallbackResult,
		PriceLookup:     in.PriceLookup,
	}
}

// newLogger builds a production zap logger on stderr at the given level.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}
