package question

import (
	"fmt"
	"strings"

	"github.com/simonhull/firebird-suite/parrot/answer"
)

// Operator selects how a Condition compares an earlier answer
type Operator int

const (
	OpEquals Operator = iota
	OpNot
	OpIn
)

// String returns the YAML keyword for the operator
func (o Operator) String() string {
	switch o {
	case OpEquals:
		return "equals"
	case OpNot:
		return "not"
	case OpIn:
		return "in"
	default:
		return "unknown"
	}
}

// Condition gates a question on the answer to an earlier question
type Condition struct {
	ID     string
	Op     Operator
	Values []answer.Value
}

// Equals requires the answer for id to be exactly v
func Equals(id string, v any) Condition {
	return Condition{ID: id, Op: OpEquals, Values: []answer.Value{answer.MustLiteral(v)}}
}

// Not requires the answer for id to differ from v. A skipped question
// differs from everything.
func Not(id string, v any) Condition {
	return Condition{ID: id, Op: OpNot, Values: []answer.Value{answer.MustLiteral(v)}}
}

// In requires the answer for id to be one of values
func In(id string, values ...any) Condition {
	return Condition{ID: id, Op: OpIn, Values: Choices(values...)}
}

// Met evaluates the condition against the answers collected so far.
// Comparison is strict: the number 1 does not equal the text "1".
func (c Condition) Met(answers *answer.Answers) bool {
	got, ok := answers.Get(c.ID)

	switch c.Op {
	case OpNot:
		return !ok || !got.Equal(c.first())
	case OpIn:
		if !ok {
			return false
		}
		for _, v := range c.Values {
			if v.Equal(got) {
				return true
			}
		}
		return false
	default:
		return ok && got.Equal(c.first())
	}
}

func (c Condition) first() answer.Value {
	if len(c.Values) == 0 {
		return answer.Empty()
	}
	return c.Values[0]
}

// String renders the condition for logs and error messages
func (c Condition) String() string {
	parts := make([]string, len(c.Values))
	for i, v := range c.Values {
		parts[i] = v.String()
	}
	return fmt.Sprintf("%s %s [%s]", c.ID, c.Op, strings.Join(parts, ", "))
}
