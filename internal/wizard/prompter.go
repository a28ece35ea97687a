package wizard

import "context"

// Field is a fully rendered prompt: every answer-dependent part has already
// been evaluated against the current answer set.
type Field struct {
	Title       string
	Description string
	Placeholder string
	Options     []Option

	// Default is the initial value; its type depends on the prompt kind.
	Default any

	// Validate gates raw input in place; the prompter re-prompts with the
	// returned message until it passes.
	Validate func(string) error
}

// Prompter presents rendered fields to the operator. Implementations return
// ErrCanceled when the operator aborts.
type Prompter interface {
	Input(ctx context.Context, f Field) (string, error)
	Secret(ctx context.Context, f Field) (string, error)
	Confirm(ctx context.Context, f Field) (bool, error)
	Select(ctx context.Context, f Field) (string, error)
	MultiSelect(ctx context.Context, f Field) ([]string, error)
}
