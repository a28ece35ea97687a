package wizard

import (
	"context"
	"fmt"
)

// CancelResponse aborts the prompt it answers, as if the operator pressed
// escape.
type CancelResponse struct{}

// ScriptPrompter answers prompts from a fixed queue of responses. It is used
// by tests to drive flows without a terminal.
//
// Responses are consumed in order: string for Input/Secret/Select, bool for
// Confirm, []string for MultiSelect, CancelResponse to abort. When a response
// fails the field's validator the next response is consumed, mirroring the
// in-place re-prompt of the interactive prompter.
type ScriptPrompter struct {
	Responses []any

	pos int
}

var _ Prompter = (*ScriptPrompter)(nil)

func (s *ScriptPrompter) next(title string) (any, error) {
	if s.pos >= len(s.Responses) {
		return nil, fmt.Errorf("script exhausted at prompt %q", title)
	}
	r := s.Responses[s.pos]
	s.pos++
	if _, ok := r.(CancelResponse); ok {
		return nil, ErrCanceled
	}
	return r, nil
}

func (s *ScriptPrompter) text(ctx context.Context, f Field) (string, error) {
	for {
		r, err := s.next(f.Title)
		if err != nil {
			return "", err
		}
		v, ok := r.(string)
		if !ok {
			return "", fmt.Errorf("prompt %q: expected string response, got %T", f.Title, r)
		}
		if f.Validate != nil {
			if err := f.Validate(v); err != nil {
				continue // re-prompt with the next response
			}
		}
		return v, nil
	}
}

func (s *ScriptPrompter) Input(ctx context.Context, f Field) (string, error) {
	return s.text(ctx, f)
}

func (s *ScriptPrompter) Secret(ctx context.Context, f Field) (string, error) {
	return s.text(ctx, f)
}

func (s *ScriptPrompter) Confirm(ctx context.Context, f Field) (bool, error) {
	r, err := s.next(f.Title)
	if err != nil {
		return false, err
	}
	v, ok := r.(bool)
	if !ok {
		return false, fmt.Errorf("prompt %q: expected bool response, got %T", f.Title, r)
	}
	return v, nil
}

func (s *ScriptPrompter) Select(ctx context.Context, f Field) (string, error) {
	r, err := s.next(f.Title)
	if err != nil {
		return "", err
	}
	v, ok := r.(string)
	if !ok {
		return "", fmt.Errorf("prompt %q: expected string response, got %T", f.Title, r)
	}
	for _, o := range f.Options {
		if o.Value == v {
			return v, nil
		}
	}
	return "", fmt.Errorf("prompt %q: response %q is not among the offered options", f.Title, v)
}

func (s *ScriptPrompter) MultiSelect(ctx context.Context, f Field) ([]string, error) {
	r, err := s.next(f.Title)
	if err != nil {
		return nil, err
	}
	v, ok := r.([]string)
	if !ok {
		return nil, fmt.Errorf("prompt %q: expected []string response, got %T", f.Title, r)
	}
	return v, nil
}
