package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/medconnect/landing/internal/adapters/cli"
	"github.com/medconnect/landing/internal/config"
	"github.com/medconnect/landing/internal/logging"
)

var (
	configPath string
	logLevel   string
	logFormat  string
	noColor    bool

	cfg    *config.Config
	logger *zap.Logger
	out    *cli.Output
)

// flagKeys maps command flags onto config keys.
var flagKeys = map[string]string{
	"log-level":  config.KeyLogLevel,
	"log-format": config.KeyLogFormat,
	"addr":       config.KeyServerAddr,
	"render":     config.KeyRenderMode,
	"dev":        config.KeyDev,
	"out":        config.KeyExportDir,
	"cache-ttl":  config.KeyCacheTTL,
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "medconnect",
		Short:         "Serve or export the MedConnect landing page",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			out = cli.NewOutputTo(cmd.OutOrStdout(), cmd.ErrOrStderr())
			if noColor {
				out.DisableColors()
			}

			loaded, v, err := config.Load(configPath)
			if err != nil {
				out.PrintError("%v", err)
				return err
			}
			if err := bindFlags(cmd, v); err != nil {
				return err
			}
			if loaded, err = config.FromViper(v); err != nil {
				out.PrintError("%v", err)
				return err
			}
			cfg = loaded

			logger, err = logging.New(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				out.PrintError("%v", err)
				return err
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./medconnect.{yaml,json,toml})")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: json or console")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured output")

	root.AddCommand(serveCmd(), exportCmd(), doctorCmd(), versionCmd())
	return root
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}
