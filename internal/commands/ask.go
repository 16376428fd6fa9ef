package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/parrot"
	"github.com/simonhull/firebird-suite/parrot/answer"
	"github.com/simonhull/firebird-suite/parrot/flow"
	"github.com/simonhull/firebird-suite/parrot/output"
	"github.com/simonhull/firebird-suite/parrot/question"
)

// AskCmd runs a questionnaire loaded from a YAML file
func AskCmd() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "ask <questions.yml>",
		Short: "Run a questionnaire and print the answers",
		Long: `Ask each question in the file, in order, and print the answers.

Questions whose depends_on conditions aren't met are skipped. Press
Enter to accept a default. Ctrl+C or end of input stops the run; the
answers given so far are still printed.

Example:
  parrot ask questions.yml
  parrot ask questions.yml --format json -o answers.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := settings(cmd)
			if err != nil {
				return err
			}

			output.Verbose("Loading questions from " + args[0])
			reg, err := question.Load(args[0])
			if err != nil {
				return err
			}

			answers, runErr := parrot.Ask(cmd.Context(), reg, flowOptions(cmd, cfg)...)
			if answers == nil {
				return runErr
			}

			var cancelled *flow.CancelledError
			if errors.As(runErr, &cancelled) {
				// Prompt was left mid-line
				fmt.Fprintln(cmd.OutOrStdout())
			}

			if err := emit(cmd, outFile, cfg.Format, answers); err != nil {
				return err
			}
			return runErr
		},
	}

	cmd.Flags().StringP("format", "f", "yaml", "Output format (yaml|json)")
	cmd.Flags().String("mask", "*", "Character echoed at password prompts")
	cmd.Flags().StringVarP(&outFile, "output", "o", "", "Write answers to a file instead of stdout")

	return cmd
}

// emit writes answers to path, or to the command's output when path is empty
func emit(cmd *cobra.Command, path, format string, answers *answer.Answers) error {
	var w io.Writer = cmd.OutOrStdout()
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		defer f.Close()
		w = f
	}

	if err := writeAnswers(w, answers, format); err != nil {
		return err
	}
	if path != "" {
		output.New(cmd.ErrOrStderr()).Success(fmt.Sprintf("Saved %d answers to %s", answers.Len(), path))
	}
	return nil
}
