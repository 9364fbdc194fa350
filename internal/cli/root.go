package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"geodna/internal/buildinfo"
	"geodna/internal/config"
	"geodna/internal/logging"
	"geodna/internal/render"
)

// Execute runs the geodna command tree and exits with status 1 on error.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app is the state shared by every subcommand once the root command has
// loaded configuration.
type app struct {
	cfg *config.Config
	out *render.Renderer
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	var configPath string
	a := &app{}

	cmd := &cobra.Command{
		Use:          "geodna",
		Short:        "Encode coordinates as geodna codes and query them",
		Version:      buildinfo.String(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			v := config.New(configPath)
			if err := bindFlags(v, cmd); err != nil {
				return err
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			format, err := render.ParseFormat(cfg.Output.Format)
			if err != nil {
				return err
			}

			a.cfg = cfg
			a.out = render.New(cmd.OutOrStdout(), format)
			a.log = logging.Setup(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
			a.log.Debug("command.start", "command", cmd.CommandPath(), "config", v.ConfigFileUsed())
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default ./geodna.yaml or $HOME/.config/geodna/geodna.yaml)")
	flags.StringP("output", "o", "", "output format: text, json or yaml")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.String("log-format", "", "log format: text or json")

	cmd.AddCommand(
		encodeCmd(a),
		decodeCmd(a),
		bboxCmd(a),
		infoCmd(a),
		pairCmd(a),
		projectCmd(a),
		distanceCmd(a),
		neighboursCmd(a),
		radiusCmd(a),
		reduceCmd(a),
	)
	return cmd
}

// bindFlags layers the global flags over file and environment values.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for key, name := range map[string]string{
		"output.format": "output",
		"log.level":     "log-level",
		"log.format":    "log-format",
	} {
		f := cmd.Flags().Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}
