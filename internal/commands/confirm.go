package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/parrot"
	"github.com/simonhull/firebird-suite/parrot/flow"
)

// ConfirmCmd asks a single yes/no question. The exit status carries the
// reply, which makes it usable from shell scripts:
//
//	parrot confirm "Deploy to production?" && make deploy
func ConfirmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "confirm <message>",
		Short: "Ask a yes/no question, exit 0 for yes and 1 for no",
		Long: `Ask a yes/no question. Pressing Enter answers yes.

Exit status:
• 0 when the answer is yes
• 1 when the answer is no, or the prompt was cancelled

Example:
  parrot confirm "Overwrite existing config?" && cp new.yml config.yml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := settings(cmd)
			if err != nil {
				return err
			}

			ok, err := parrot.Confirm(cmd.Context(), strings.Join(args, " "), flowOptions(cmd, cfg)...)
			if err != nil {
				if errors.Is(err, flow.ErrCancelled) {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				return err
			}
			if !ok {
				return ErrDeclined
			}
			return nil
		},
	}
}
