package parrot

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/firebird-suite/parrot/answer"
	"github.com/simonhull/firebird-suite/parrot/flow"
	"github.com/simonhull/firebird-suite/parrot/question"
	"github.com/simonhull/firebird-suite/parrot/terminal"
)

func scripted(t *testing.T, input string) (flow.Option, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	term, err := terminal.NewStdio(strings.NewReader(input), &out)
	require.NoError(t, err)
	return flow.WithSession(terminal.NewSession(term)), &out
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"enter takes default yes", "\n", true},
		{"explicit yes", "yes\n", true},
		{"y", "Y\n", true},
		{"no", "no\n", false},
		{"n", "n\n", false},
		{"garbage then no", "maybe\nn\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, out := scripted(t, tt.input)
			got, err := Confirm(context.Background(), "Continue?", session)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Continue?")
			assert.Contains(t, out.String(), " - yes/no: [yes] ")
		})
	}
}

func TestConfirmCancelled(t *testing.T) {
	session, _ := scripted(t, "")
	ok, err := Confirm(context.Background(), "Continue?", session)
	assert.False(t, ok)
	assert.ErrorIs(t, err, flow.ErrCancelled)
}

func TestAskEndToEnd(t *testing.T) {
	reg, err := question.New(
		question.Spec{ID: "country", Message: "Country?", Default: answer.Text("US")},
		question.Spec{ID: "tz", Message: "TZ?", Default: answer.Text("Pacific")},
	)
	require.NoError(t, err)

	session, _ := scripted(t, "\n\n")
	answers, err := Ask(context.Background(), reg, session)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"country": "US", "tz": "Pacific"}, answers.Map())
}
