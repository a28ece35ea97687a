// Package wizard implements a declarative, conditionally-branching question
// flow for interactive prompts.
//
// Questions are declared once, in order, but every derived field (activity,
// title, choices, default) is a function of the answers collected so far and
// is evaluated at the moment the question is reached. This lets later
// questions branch on earlier answers without precomputing a static list.
package wizard

import "errors"

// ErrCanceled is returned when the operator aborts a prompt. It is an
// early-exit signal, not a failure.
var ErrCanceled = errors.New("canceled")

// Kind identifies how a question is presented and what it stores.
type Kind int

const (
	// Text stores the entered string.
	Text Kind = iota
	// Secret is Text with masked entry.
	Secret
	// Toggle stores a bool.
	Toggle
	// Number stores an int; non-integer input is re-prompted.
	Number
	// Select stores the chosen option value.
	Select
	// MultiSelect stores the chosen option values as []string.
	MultiSelect
)

// Option is a selectable choice.
type Option struct {
	Label string
	Value string
}

// Answers accumulates operator responses keyed by question. Entries are never
// retracted once a question resolves, and a skipped question leaves no entry.
type Answers map[string]any

// Has reports whether key has resolved.
func (a Answers) Has(key string) bool {
	_, ok := a[key]
	return ok
}

// String returns the answer under key as a string, or "".
func (a Answers) String(key string) string {
	v, _ := a[key].(string)
	return v
}

// Bool returns the answer under key as a bool, or false.
func (a Answers) Bool(key string) bool {
	v, _ := a[key].(bool)
	return v
}

// Int returns the answer under key as an int, or 0.
func (a Answers) Int(key string) int {
	v, _ := a[key].(int)
	return v
}

// Strings returns the answer under key as a []string, or nil.
func (a Answers) Strings(key string) []string {
	v, _ := a[key].([]string)
	return v
}

// Question is a single prompt in a flow. All function fields receive the live
// answer set; nil means always-active, no choices, no default, no validation
// or identity formatting respectively.
type Question struct {
	Key         string
	Kind        Kind
	Title       string
	Description string
	Placeholder string

	// TitleFunc overrides Title when the prompt text depends on earlier
	// answers.
	TitleFunc func(Answers) string

	// Active decides whether the question is asked at all.
	Active func(Answers) bool

	// Choices supplies the options for Select and MultiSelect kinds.
	Choices func(Answers) []Option

	// Default supplies the initial value: string for Text/Secret/Number/
	// Select, bool for Toggle, []string for MultiSelect.
	Default func(Answers) any

	// Validate gates raw input for Text, Secret and Number kinds. A non-nil
	// error re-prompts in place with the message.
	Validate func(Answers, string) error

	// Format maps accepted raw input (or the selected value) to the stored
	// answer.
	Format func(string) any
}

func (q Question) title(a Answers) string {
	if q.TitleFunc != nil {
		return q.TitleFunc(a)
	}
	return q.Title
}
