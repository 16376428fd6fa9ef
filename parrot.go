// Package parrot asks a user a series of questions over the terminal and
// returns their typed answers.
//
//	reg, _ := question.New(
//	    question.Spec{ID: "country", Message: "What country do you live in?", Default: answer.Text("US")},
//	    question.Spec{ID: "tz", Message: "And your timezone?", Default: answer.Text("Pacific")},
//	)
//	answers, err := parrot.Ask(ctx, reg)
//
// Confirm is a shortcut for a single yes/no question:
//
//	if ok, _ := parrot.Confirm(ctx, "Overwrite existing file?"); ok {
//	    ...
//	}
package parrot

import (
	"context"

	"github.com/simonhull/firebird-suite/parrot/answer"
	"github.com/simonhull/firebird-suite/parrot/flow"
	"github.com/simonhull/firebird-suite/parrot/question"
)

// Version is the Parrot release version
const Version = "0.1.0"

// confirmID is the id of the question Confirm asks
const confirmID = "reply"

// Ask runs the questionnaire described by reg. See flow.Controller.Run for
// the error contract.
func Ask(ctx context.Context, reg *question.Registry, opts ...flow.Option) (*answer.Answers, error) {
	return flow.New(opts...).Run(ctx, reg)
}

// Confirm asks a single yes/no question whose default is yes
func Confirm(ctx context.Context, message string, opts ...flow.Option) (bool, error) {
	reg, err := question.New(question.Spec{
		ID:      confirmID,
		Type:    question.TypeConfirm,
		Message: message,
		Default: answer.Text("yes"),
	})
	if err != nil {
		return false, err
	}

	answers, err := Ask(ctx, reg, opts...)
	if err != nil {
		return false, err
	}

	reply, _ := answers.Get(confirmID)
	if b, ok := reply.AsBool(); ok {
		return b, nil
	}
	return reply.Equal(answer.Text("yes")), nil
}
