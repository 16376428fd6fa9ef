package question

import (
	"regexp"

	"github.com/simonhull/firebird-suite/parrot/answer"
)

// Type is the declared answer type of a question
type Type string

const (
	TypeAny      Type = ""
	TypeConfirm  Type = "confirm"
	TypePassword Type = "password"
	TypeBoolean  Type = "boolean"
	TypeNumber   Type = "number"
	TypeString   Type = "string"
)

// validTypes lists every type a registry may declare
var validTypes = []Type{TypeAny, TypeConfirm, TypePassword, TypeBoolean, TypeNumber, TypeString}

// IsValid reports whether t is a known question type
func (t Type) IsValid() bool {
	for _, valid := range validTypes {
		if t == valid {
			return true
		}
	}
	return false
}

// Spec describes one question
type Spec struct {
	ID      string
	Message string
	Type    Type

	// Default is used when the reply is empty. DefaultFunc, when set,
	// computes it from the answers given so far and takes precedence.
	Default     answer.Value
	DefaultFunc func(*answer.Answers) answer.Value

	Options    []answer.Value
	Regex      *regexp.Regexp
	AllowEmpty bool
	Error      string
	DependsOn  []Condition
}

// ResolveDefault returns the default for this question given the partial
// answers collected so far. The result is Empty when there is no default.
func (s *Spec) ResolveDefault(answers *answer.Answers) answer.Value {
	if s.DefaultFunc != nil {
		return s.DefaultFunc(answers)
	}
	return s.Default
}

// DependenciesMet reports whether every condition in DependsOn holds
func (s *Spec) DependenciesMet(answers *answer.Answers) bool {
	for _, cond := range s.DependsOn {
		if !cond.Met(answers) {
			return false
		}
	}
	return true
}

// HasOption reports whether v is one of the declared options
func (s *Spec) HasOption(v answer.Value) bool {
	for _, opt := range s.Options {
		if opt.Equal(v) {
			return true
		}
	}
	return false
}

// Choices converts literals into option values.
//
//	Options: question.Choices("admin", "user", 3)
func Choices(literals ...any) []answer.Value {
	values := make([]answer.Value, 0, len(literals))
	for _, lit := range literals {
		values = append(values, answer.MustLiteral(lit))
	}
	return values
}
