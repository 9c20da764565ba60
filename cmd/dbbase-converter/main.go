package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/daidoji-traincrew-office/dbbase-converter/config"
	"github.com/daidoji-traincrew-office/dbbase-converter/converter"
	"github.com/daidoji-traincrew-office/dbbase-converter/internal"
)

func main() {
	if err := rootCmd(afero.NewOsFs()).Execute(); err != nil {
		log.Error("conversion failed", "err", err)
		os.Exit(1)
	}
}

func rootCmd(fsys afero.Fs) *cobra.Command {
	var (
		configPath string
		overrides  config.Overrides
	)
	cmd := &cobra.Command{
		Use:           "dbbase-converter",
		Short:         "Convert the signaling CSV tables into DBBase.json",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(fsys, configPath)
			if err != nil {
				return err
			}
			cfg, err = overrides.Apply(cfg)
			if err != nil {
				return err
			}

			logger := internal.InitLogging(cfg.Logging.Level, cfg.Logging.JSON)
			conv := converter.NewConverter(fsys, cfg, logger)
			return conv.ConvertAll(cfg.InputFiles(), cfg.OutputPath())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "YAML config file (defaults are used when empty)")
	flags.StringVar(&overrides.DataDir, "data-dir", "", "directory holding the CSV tables (overrides config)")
	flags.StringVarP(&overrides.Output, "output", "o", "", "output file (default <data-dir>/DBBase.json)")
	flags.StringVar(&overrides.Encoding, "encoding", "", "input encoding: utf-8|shift_jis (overrides config)")
	flags.StringVar(&overrides.LogLevel, "log-level", "", "debug|info|warn|error (overrides config)")
	flags.BoolVar(&overrides.LogJSON, "log-json", false, "log as JSON")
	return cmd
}
