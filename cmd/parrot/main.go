package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/simonhull/firebird-suite/parrot/internal/commands"
	"github.com/simonhull/firebird-suite/parrot/output"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.AskCmd())
	rootCmd.AddCommand(commands.ConfirmCmd())
	rootCmd.AddCommand(commands.ValidateCmd())
	rootCmd.AddCommand(commands.VersionCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		if !errors.Is(err, commands.ErrDeclined) {
			output.Error(err.Error())
		}
		os.Exit(1)
	}
}
