package answer

import "fmt"

// Answers maps question ids to values, remembering the order in which they
// were recorded. Once an id is recorded it is never overwritten.
type Answers struct {
	values map[string]Value
	order  []string
}

// NewAnswers creates an empty answer set
func NewAnswers() *Answers {
	return &Answers{values: make(map[string]Value)}
}

// Set records v under id. Recording an id twice is an error.
func (a *Answers) Set(id string, v Value) error {
	if _, exists := a.values[id]; exists {
		return fmt.Errorf("answer for %q already recorded", id)
	}
	a.values[id] = v
	a.order = append(a.order, id)
	return nil
}

// Get returns the value for id and whether it was recorded
func (a *Answers) Get(id string) (Value, bool) {
	if a == nil {
		return Empty(), false
	}
	v, ok := a.values[id]
	return v, ok
}

// Has reports whether id was recorded
func (a *Answers) Has(id string) bool {
	_, ok := a.Get(id)
	return ok
}

// Len returns the number of recorded answers
func (a *Answers) Len() int {
	if a == nil {
		return 0
	}
	return len(a.order)
}

// Keys returns the recorded ids in recording order
func (a *Answers) Keys() []string {
	if a == nil {
		return nil
	}
	keys := make([]string, len(a.order))
	copy(keys, a.order)
	return keys
}

// Map returns the answers as plain Go values. Empty answers map to nil.
func (a *Answers) Map() map[string]any {
	m := make(map[string]any, a.Len())
	if a == nil {
		return m
	}
	for _, id := range a.order {
		m[id] = a.values[id].Interface()
	}
	return m
}
