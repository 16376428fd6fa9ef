//go:build cucumber

package flow

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"github.com/simonhull/firebird-suite/parrot/answer"
	"github.com/simonhull/firebird-suite/parrot/question"
	"github.com/simonhull/firebird-suite/parrot/terminal"
)

// TestQuestionnaireFeatures executes the questionnaire scenarios via godog.
func TestQuestionnaireFeatures(t *testing.T) {
	featurePath := filepath.Join("..", "features", "questionnaire.feature")
	suite := godog.TestSuite{
		Name:                "questionnaire",
		ScenarioInitializer: InitializeQuestionnaireScenario,
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{featurePath},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeQuestionnaireScenario wires step definitions for the flow scenarios.
func InitializeQuestionnaireScenario(ctx *godog.ScenarioContext) {
	state := &questionnaireState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		*state = questionnaireState{}
		return ctx, nil
	})

	ctx.Step(`^the registry:$`, state.givenRegistry)
	ctx.Step(`^the user types:$`, state.whenUserTypes)
	ctx.Step(`^the user presses enter (\d+) times$`, state.whenUserPressesEnter)
	ctx.Step(`^the questionnaire finishes$`, state.thenFinishes)
	ctx.Step(`^the questionnaire is cancelled after (\d+) answers$`, state.thenCancelledAfter)
	ctx.Step(`^there are (\d+) answers$`, state.thenAnswerCount)
	ctx.Step(`^there is no answer "([^"]+)"$`, state.thenNoAnswer)
	ctx.Step(`^the answer "([^"]+)" is the text "([^"]*)"$`, state.thenText)
	ctx.Step(`^the answer "([^"]+)" is the number (-?\d+(?:\.\d+)?)$`, state.thenNumber)
	ctx.Step(`^the answer "([^"]+)" is the boolean (true|false)$`, state.thenBool)
	ctx.Step(`^the output shows "([^"]+)" (\d+) times?$`, state.thenOutputCount)
}

// questionnaireState holds scenario state for the feature tests.
type questionnaireState struct {
	reg     *question.Registry
	answers *answer.Answers
	err     error
	out     bytes.Buffer
}

func (s *questionnaireState) givenRegistry(doc *godog.DocString) error {
	reg, err := question.Parse([]byte(doc.Content))
	if err != nil {
		return err
	}
	s.reg = reg
	return nil
}

func (s *questionnaireState) whenUserTypes(doc *godog.DocString) error {
	return s.run(doc.Content + "\n")
}

func (s *questionnaireState) whenUserPressesEnter(n int) error {
	return s.run(strings.Repeat("\n", n))
}

func (s *questionnaireState) run(input string) error {
	term, err := terminal.NewStdio(strings.NewReader(input), &s.out)
	if err != nil {
		return err
	}
	s.answers, s.err = New(WithSession(terminal.NewSession(term))).Run(context.Background(), s.reg)
	return nil
}

func (s *questionnaireState) thenFinishes() error {
	if s.err != nil {
		return fmt.Errorf("expected the questionnaire to finish, got %v", s.err)
	}
	return nil
}

func (s *questionnaireState) thenCancelledAfter(n int) error {
	var cancelled *CancelledError
	if !errors.As(s.err, &cancelled) {
		return fmt.Errorf("expected a cancellation, got %v", s.err)
	}
	if cancelled.Answered != n {
		return fmt.Errorf("expected %d answers before cancelling, got %d", n, cancelled.Answered)
	}
	return nil
}

func (s *questionnaireState) thenAnswerCount(n int) error {
	if s.answers.Len() != n {
		return fmt.Errorf("expected %d answers, got %d (%v)", n, s.answers.Len(), s.answers.Keys())
	}
	return nil
}

func (s *questionnaireState) thenNoAnswer(id string) error {
	if s.answers.Has(id) {
		return fmt.Errorf("expected no answer for %q", id)
	}
	return nil
}

func (s *questionnaireState) expect(id string, want answer.Value) error {
	got, ok := s.answers.Get(id)
	if !ok {
		return fmt.Errorf("no answer for %q", id)
	}
	if !got.Equal(want) {
		return fmt.Errorf("answer %q = %v (%s), want %v (%s)", id, got, got.Kind(), want, want.Kind())
	}
	return nil
}

func (s *questionnaireState) thenText(id, text string) error {
	return s.expect(id, answer.Text(text))
}

func (s *questionnaireState) thenNumber(id string, n float64) error {
	return s.expect(id, answer.Number(n))
}

func (s *questionnaireState) thenBool(id, b string) error {
	return s.expect(id, answer.Bool(b == "true"))
}

func (s *questionnaireState) thenOutputCount(text string, n int) error {
	if got := strings.Count(s.out.String(), text); got != n {
		return fmt.Errorf("expected %q %d times in output, got %d:\n%s", text, n, got, s.out.String())
	}
	return nil
}
