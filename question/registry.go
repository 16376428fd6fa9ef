package question

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is wrapped by every error describing a malformed
// registry. No terminal interaction happens when it is returned.
var ErrInvalidConfiguration = errors.New("invalid questionnaire configuration")

// ValidationError describes one problem found in a registry
type ValidationError struct {
	Field   string // Field path (e.g., "tz.depends_on.country")
	Message string
	Line    int // Line number in YAML (if available)
}

// Error returns a formatted error message
func (e *ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s (line %d): %s", e.Field, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error returns all validation errors formatted with clear separation
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	result := fmt.Sprintf("found %d validation errors:\n", len(e))
	for i, err := range e {
		result += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return result
}

// Registry is the ordered, read-only list of questions for one questionnaire
type Registry struct {
	specs []Spec
	index map[string]int
}

// New validates specs and builds a registry that asks them in the given order
func New(specs ...Spec) (*Registry, error) {
	return build(specs, nil)
}

// build validates specs; lines, when present, maps ids to YAML line numbers
func build(specs []Spec, lines map[string]int) (*Registry, error) {
	var errs ValidationErrors
	reg := &Registry{
		specs: make([]Spec, 0, len(specs)),
		index: make(map[string]int, len(specs)),
	}

	for i, spec := range specs {
		field := spec.ID
		if field == "" {
			field = fmt.Sprintf("[%d]", i)
		}
		line := lines[spec.ID]

		if spec.ID == "" {
			errs = append(errs, ValidationError{Field: field, Message: "question id is required", Line: line})
		} else if _, dup := reg.index[spec.ID]; dup {
			errs = append(errs, ValidationError{Field: field, Message: "duplicate question id", Line: line})
		}

		if !spec.Type.IsValid() {
			errs = append(errs, ValidationError{
				Field:   field + ".type",
				Message: fmt.Sprintf("unknown type %q (expected confirm|password|boolean|number|string)", spec.Type),
				Line:    line,
			})
		}

		// Dependencies may only look backwards: later answers do not exist yet
		for _, cond := range spec.DependsOn {
			if _, earlier := reg.index[cond.ID]; !earlier {
				errs = append(errs, ValidationError{
					Field:   field + ".depends_on." + cond.ID,
					Message: "depends on a question that is not declared earlier",
					Line:    line,
				})
			}
			if cond.Op == OpIn && len(cond.Values) == 0 {
				errs = append(errs, ValidationError{
					Field:   field + ".depends_on." + cond.ID,
					Message: "\"in\" needs at least one value",
					Line:    line,
				})
			}
		}

		if spec.ID != "" {
			if _, dup := reg.index[spec.ID]; !dup {
				reg.index[spec.ID] = len(reg.specs)
			}
		}
		reg.specs = append(reg.specs, spec)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, errs)
	}
	return reg, nil
}

// Len returns the number of questions
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.specs)
}

// At returns the question at position i in asking order
func (r *Registry) At(i int) *Spec {
	return &r.specs[i]
}

// Lookup finds a question by id
func (r *Registry) Lookup(id string) (*Spec, bool) {
	i, ok := r.index[id]
	if !ok {
		return nil, false
	}
	return &r.specs[i], true
}

// IDs returns question ids in asking order
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.specs))
	for i := range r.specs {
		ids[i] = r.specs[i].ID
	}
	return ids
}

// Validate reports whether r is usable. A nil registry is invalid; an empty
// one is not and simply asks nothing.
func (r *Registry) Validate() error {
	if r == nil {
		return fmt.Errorf("%w: no registry given", ErrInvalidConfiguration)
	}
	return nil
}
