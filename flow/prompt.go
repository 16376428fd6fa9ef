package flow

import (
	"strings"

	"github.com/simonhull/firebird-suite/parrot/answer"
	"github.com/simonhull/firebird-suite/parrot/question"
	"github.com/simonhull/firebird-suite/parrot/validate"
)

// Prompt builds the input line for spec. Confirm questions show a yes/no
// hint instead of the id; a non-blank default is shown in brackets.
func Prompt(spec *question.Spec, fallback answer.Value) string {
	prompt := " - " + spec.ID + ": "
	if spec.Type == question.TypeConfirm {
		prompt = " - yes/no: "
	}
	if s := fallback.String(); !fallback.IsEmpty() && s != "" {
		prompt += "[" + s + "] "
	}
	return prompt
}

// Banner builds the line printed above the prompt: the message followed by
// the options, if any. It is empty when there is nothing to show.
func Banner(spec *question.Spec) string {
	var b strings.Builder
	if msg := strings.TrimSpace(spec.Message); msg != "" {
		b.WriteString(msg)
		b.WriteString(" ")
	}
	if len(spec.Options) > 0 {
		b.WriteString("(options are " + validate.JoinOptions(spec.Options) + ")")
	}
	return strings.TrimSpace(b.String())
}
