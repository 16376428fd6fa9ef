package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/simonhull/firebird-suite/parrot"
	"github.com/simonhull/firebird-suite/parrot/internal/config"
	"github.com/simonhull/firebird-suite/parrot/logger"
	"github.com/simonhull/firebird-suite/parrot/output"
)

// ErrDeclined is returned by confirm when the user answers no. It only
// sets the exit status, so main does not print it.
var ErrDeclined = errors.New("declined")

type configKey struct{}

// RootCmd creates and returns the root command for the Parrot CLI
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parrot",
		Short: "Ask questions in the terminal, get typed answers back",
		Long: `Parrot runs interactive questionnaires on the command line.

Describe your questions in YAML and Parrot will:
• Prompt for each one in order, showing defaults
• Validate replies against types, options and patterns
• Skip questions whose dependencies aren't met
• Print the answers as YAML or JSON

Settings are read from parrot.yml and PARROT_* environment variables.`,
		Version:       parrot.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			output.SetVerbose(cfg.Verbose)
			logger.SetDefault(logger.NewLogger(cfg.LogLevel, cmd.ErrOrStderr()))
			if cfg.File != "" {
				output.Verbose("Using config " + cfg.File)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(context.WithValue(ctx, configKey{}, cfg))
			return nil
		},
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for debugging")
	cmd.PersistentFlags().String("config", "", "Config file (default is ./parrot.yml)")

	return cmd
}

// loadConfig resolves settings with flags from cmd taking priority over
// the environment and the config file
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	v := config.New()

	bindings := map[string]string{
		config.KeyVerbose: "verbose",
		config.KeyMask:    "mask",
		config.KeyFormat:  "format",
	}
	for key, name := range bindings {
		if f := lookupFlag(cmd, name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, err
			}
		}
	}

	path := ""
	if f := lookupFlag(cmd, "config"); f != nil {
		path = f.Value.String()
	}
	return config.Load(v, path)
}

func lookupFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f
	}
	return cmd.InheritedFlags().Lookup(name)
}

// settings returns the config loaded by the root command
func settings(cmd *cobra.Command) (*config.Config, error) {
	if ctx := cmd.Context(); ctx != nil {
		if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
			return cfg, nil
		}
	}
	return loadConfig(cmd)
}
