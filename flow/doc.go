// Package flow runs a questionnaire.
//
// # Overview
//
// A Controller walks a question.Registry in order. For each question it
// checks dependencies against the answers so far, resolves the default,
// prints the banner and prompt, reads a reply, then coerces and validates
// it. Invalid replies print an error and ask the same question again; there
// is no retry limit.
//
// # Usage
//
//	reg, err := question.Load("questions.yml")
//	if err != nil {
//	    return err
//	}
//	answers, err := flow.New().Run(ctx, reg)
//	if errors.Is(err, flow.ErrCancelled) {
//	    // answers holds what was given before the user gave up
//	}
//
// # Sessions
//
// By default Run opens a session on stdin/stdout and closes it when the
// questionnaire ends. Pass WithSession to reuse a session across runs; the
// caller then owns it and must close it.
//
// # Cancellation
//
// Closing the session while questions remain (end of input, Ctrl+C at a
// password prompt, ctx cancellation) ends the run with a *CancelledError and
// the partial answers.
package flow
