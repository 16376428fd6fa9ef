package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/simonhull/firebird-suite/parrot/answer"
	"github.com/simonhull/firebird-suite/parrot/logger"
	"github.com/simonhull/firebird-suite/parrot/output"
	"github.com/simonhull/firebird-suite/parrot/question"
	"github.com/simonhull/firebird-suite/parrot/terminal"
	"github.com/simonhull/firebird-suite/parrot/validate"
)

// Controller asks the questions of a registry one at a time
type Controller struct {
	session *terminal.Session
	open    func() (*terminal.Session, error)
	log     logger.Logger
	mask    rune
}

// Option configures a Controller
type Option func(*Controller)

// WithSession makes the controller use s instead of opening its own
// session. The controller never closes s unless the run is cancelled.
func WithSession(s *terminal.Session) Option {
	return func(c *Controller) {
		c.session = s
	}
}

// WithOpener replaces the function used to open a session when none was
// given with WithSession
func WithOpener(open func() (*terminal.Session, error)) Option {
	return func(c *Controller) {
		c.open = open
	}
}

// WithLogger sets the logger for flow events
func WithLogger(l logger.Logger) Option {
	return func(c *Controller) {
		c.log = l
	}
}

// WithMask sets the character echoed at password prompts
func WithMask(mask rune) Option {
	return func(c *Controller) {
		c.mask = mask
	}
}

// New creates a controller. Without options it opens a session on
// stdin/stdout for each run and logs through logger.Default.
func New(opts ...Option) *Controller {
	c := &Controller{
		open: terminal.OpenStdio,
		mask: terminal.DefaultMask,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.Default()
	}
	return c
}

// Run asks every question in reg and returns the answers. Questions whose
// dependencies are not met are skipped and absent from the result.
//
// An invalid registry fails with question.ErrInvalidConfiguration before
// any terminal interaction. An empty registry returns empty answers
// without opening a session. A session closed before the last question is
// answered yields a *CancelledError together with the partial answers.
func (c *Controller) Run(ctx context.Context, reg *question.Registry) (*answer.Answers, error) {
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	if reg.Len() == 0 {
		return answer.NewAnswers(), nil
	}

	session, owned, err := c.acquire()
	if err != nil {
		if errors.Is(err, terminal.ErrClosed) {
			return answer.NewAnswers(), &CancelledError{Cause: err}
		}
		return nil, err
	}
	if owned {
		defer session.Close()
	}

	stop := context.AfterFunc(ctx, func() { _ = session.Close() })
	defer stop()

	out := output.New(session.Writer())
	answers := answer.NewAnswers()
	c.log.Debug("starting questionnaire", logger.F("questions", reg.Len()))

	for i := 0; i < reg.Len(); {
		spec := reg.At(i)
		log := c.log.WithFields(logger.F("question", spec.ID), logger.F("index", i))

		// AfterFunc closes the session asynchronously; don't race it
		if ctx.Err() != nil {
			_ = session.Close()
			return answers, &CancelledError{Answered: answers.Len(), Cause: context.Cause(ctx)}
		}

		if !spec.DependenciesMet(answers) {
			log.Debug("skipping question, dependencies not met")
			i++
			continue
		}

		fallback := spec.ResolveDefault(answers)
		if banner := Banner(spec); banner != "" {
			out.Banner(banner)
		}

		raw, err := c.read(session, spec, Prompt(spec, fallback))
		if err != nil {
			if errors.Is(err, terminal.ErrClosed) {
				log.Debug("session closed before questionnaire finished", logger.F("answered", answers.Len()))
				return answers, &CancelledError{Answered: answers.Len(), Cause: context.Cause(ctx)}
			}
			return answers, fmt.Errorf("reading answer for %q: %w", spec.ID, err)
		}

		value := answer.Coerce(raw)
		if !validate.Validate(spec, value, fallback) {
			log.Debug("invalid answer, asking again", logger.F("kind", value.Kind()))
			out.Invalid(validate.Message(spec))
			continue
		}
		if value.IsEmpty() {
			value = fallback
		}

		if err := answers.Set(spec.ID, value); err != nil {
			return answers, err
		}
		log.Debug("answer recorded", logger.F("kind", value.Kind()))
		i++
	}

	c.log.Debug("questionnaire finished", logger.F("answered", answers.Len()))
	return answers, nil
}

// acquire returns the session to use and whether this run owns it
func (c *Controller) acquire() (*terminal.Session, bool, error) {
	if c.session != nil {
		if c.session.Closed() {
			return nil, false, terminal.ErrClosed
		}
		return c.session, false, nil
	}
	s, err := c.open()
	if err != nil {
		return nil, false, fmt.Errorf("failed to open terminal session: %w", err)
	}
	return s, true, nil
}

func (c *Controller) read(s *terminal.Session, spec *question.Spec, prompt string) (string, error) {
	if spec.Type == question.TypePassword {
		return s.Masked(prompt, c.mask)
	}
	return s.Line(prompt)
}
