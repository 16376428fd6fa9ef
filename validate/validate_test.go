package validate

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/simonhull/firebird-suite/parrot/answer"
	"github.com/simonhull/firebird-suite/parrot/question"
)

func TestValidate(t *testing.T) {
	none := answer.Empty()

	tests := []struct {
		name     string
		spec     question.Spec
		raw      string
		fallback answer.Value
		want     bool
	}{
		{"empty without default", question.Spec{ID: "a"}, "", none, false},
		{"empty with default", question.Spec{ID: "a"}, "", answer.Text("US"), true},
		{"empty with empty-string default", question.Spec{ID: "a"}, "", answer.Text(""), true},
		{"empty allowed", question.Spec{ID: "a", AllowEmpty: true}, "  ", none, true},

		{"regex match", question.Spec{ID: "a", Regex: regexp.MustCompile(`^\d{4}$`)}, "1234", none, true},
		{"regex mismatch", question.Spec{ID: "a", Regex: regexp.MustCompile(`^\d{4}$`)}, "12", none, false},
		{"regex matches bool text", question.Spec{ID: "a", Regex: regexp.MustCompile(`^true$`)}, "yes", none, true},

		{"option member", question.Spec{ID: "a", Options: question.Choices("a", "b", "c")}, "b", none, true},
		{"option non member", question.Spec{ID: "a", Options: question.Choices("a", "b", "c")}, "d", none, false},
		{"option ignores type", question.Spec{ID: "a", Type: question.TypeNumber, Options: question.Choices("a", "b")}, "a", none, true},
		{"number option", question.Spec{ID: "a", Options: question.Choices(1, 2)}, "2", none, true},
		{
			"regex wins over options",
			question.Spec{ID: "a", Regex: regexp.MustCompile(`^z$`), Options: question.Choices("a")},
			"z", none, true,
		},

		{"confirm yes", question.Spec{ID: "a", Type: question.TypeConfirm}, "y", none, true},
		{"confirm no", question.Spec{ID: "a", Type: question.TypeConfirm}, "no", none, true},
		{"confirm garbage", question.Spec{ID: "a", Type: question.TypeConfirm}, "maybe", none, false},

		{"number ok", question.Spec{ID: "a", Type: question.TypeNumber}, "42", none, true},
		{"number rejects text", question.Spec{ID: "a", Type: question.TypeNumber}, "42abc", none, false},
		{"boolean ok", question.Spec{ID: "a", Type: question.TypeBoolean}, "false", none, true},
		{"boolean rejects number", question.Spec{ID: "a", Type: question.TypeBoolean}, "1", none, false},
		{"string ok", question.Spec{ID: "a", Type: question.TypeString}, "hello", none, true},
		{"string rejects number", question.Spec{ID: "a", Type: question.TypeString}, "42", none, false},

		{"password accepts anything", question.Spec{ID: "a", Type: question.TypePassword}, "42", none, true},
		{"untyped accepts anything", question.Spec{ID: "a"}, "anything", none, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(&tt.spec, answer.Coerce(tt.raw), tt.fallback)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Invalid value.", Message(&question.Spec{ID: "a"}))
	assert.Equal(t, "Nope.", Message(&question.Spec{ID: "a", Error: "Nope."}))
	assert.Equal(t,
		"Invalid value. (options are a, b, c)",
		Message(&question.Spec{ID: "a", Options: question.Choices("a", "b", "c")}))
	assert.Equal(t,
		"Pick one. (options are 1, 2)",
		Message(&question.Spec{ID: "a", Error: "Pick one.", Options: question.Choices(1, 2)}))
}
