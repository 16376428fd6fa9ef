package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/parrot/output"
	"github.com/simonhull/firebird-suite/parrot/question"
)

// ValidateCmd checks a questions file without asking anything
func ValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <questions.yml>",
		Short: "Check a questions file for errors",
		Long: `Load a questions file and report configuration errors.

Checks include:
• Every question has a unique id
• Types are one of confirm, password, boolean, number, string
• depends_on only refers to questions declared earlier
• Defaults and patterns are well-formed`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := question.Load(args[0])
			if err != nil {
				return err
			}

			out := output.New(cmd.OutOrStdout())
			out.Success(fmt.Sprintf("%s: %d questions", args[0], reg.Len()))
			for i := 0; i < reg.Len(); i++ {
				out.Step(describe(reg.At(i)))
			}
			return nil
		},
	}
}

func describe(spec *question.Spec) string {
	var b strings.Builder
	b.WriteString(spec.ID)
	if spec.Type != question.TypeAny {
		fmt.Fprintf(&b, " (%s)", spec.Type)
	}
	if len(spec.DependsOn) > 0 {
		conds := make([]string, len(spec.DependsOn))
		for i, c := range spec.DependsOn {
			conds[i] = c.String()
		}
		fmt.Fprintf(&b, " when %s", strings.Join(conds, ", "))
	}
	return b.String()
}
