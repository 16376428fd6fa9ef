// Package validate decides whether a coerced reply is acceptable for a
// question and builds the message shown when it is not.
package validate

import (
	"strings"

	"github.com/simonhull/firebird-suite/parrot/answer"
	"github.com/simonhull/firebird-suite/parrot/question"
)

// DefaultMessage is shown when a question declares no custom error
const DefaultMessage = "Invalid value."

// Validate checks v against spec. fallback is the question's resolved
// default, which makes an empty reply acceptable when present.
//
// Rules are checked in order and the first applicable one decides:
// empty reply, regex, options, confirm, declared type.
func Validate(spec *question.Spec, v answer.Value, fallback answer.Value) bool {
	switch {
	case v.IsEmpty():
		return spec.AllowEmpty || !fallback.IsEmpty()
	case spec.Regex != nil:
		return spec.Regex.MatchString(v.String())
	case len(spec.Options) > 0:
		return spec.HasOption(v)
	case spec.Type == question.TypeConfirm:
		return v.Kind() == answer.KindBool
	case spec.Type != question.TypeAny && spec.Type != question.TypePassword:
		return v.Kind().String() == string(spec.Type)
	default:
		return true
	}
}

// Message returns the error text for a rejected reply, listing the
// options when the question has them.
func Message(spec *question.Spec) string {
	msg := DefaultMessage
	if spec.Error != "" {
		msg = spec.Error
	}
	if len(spec.Options) > 0 {
		msg += " (options are " + JoinOptions(spec.Options) + ")"
	}
	return msg
}

// JoinOptions renders options as a comma separated list
func JoinOptions(options []answer.Value) string {
	parts := make([]string, len(options))
	for i, opt := range options {
		parts[i] = opt.String()
	}
	return strings.Join(parts, ", ")
}
