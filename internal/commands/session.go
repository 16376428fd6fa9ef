package commands

import (
	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/parrot/flow"
	"github.com/simonhull/firebird-suite/parrot/internal/config"
	"github.com/simonhull/firebird-suite/parrot/logger"
	"github.com/simonhull/firebird-suite/parrot/terminal"
)

// flowOptions opens sessions on the command's own input and output so
// tests can drive commands through cmd.SetIn and cmd.SetOut
func flowOptions(cmd *cobra.Command, cfg *config.Config) []flow.Option {
	return []flow.Option{
		flow.WithOpener(func() (*terminal.Session, error) {
			t, err := terminal.NewStdio(cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return nil, err
			}
			return terminal.NewSession(t), nil
		}),
		flow.WithMask(cfg.Mask),
		flow.WithLogger(logger.Default()),
	}
}
