package wizard

import (
	"context"
	"errors"
	"strconv"
	"strings"
)

// Flow walks an ordered list of questions once, accumulating answers.
type Flow struct {
	Questions []Question
}

// Run executes the flow against an empty answer set. On cancellation no
// partial answers are returned.
func (f *Flow) Run(ctx context.Context, p Prompter) (Answers, error) {
	answers := Answers{}
	if err := f.RunWith(ctx, p, answers); err != nil {
		return nil, err
	}
	return answers, nil
}

// RunWith executes the flow against an existing answer set, so a wizard can
// be split into stages that share answers (for example around the user-add
// sub-loop).
func (f *Flow) RunWith(ctx context.Context, p Prompter, answers Answers) error {
	for _, q := range f.Questions {
		if q.Active != nil && !q.Active(answers) {
			continue
		}
		v, err := ask(ctx, p, q, answers)
		if err != nil {
			return err
		}
		answers[q.Key] = v
	}
	return nil
}

// ask renders one question against the live answer set and collects its
// answer.
func ask(ctx context.Context, p Prompter, q Question, answers Answers) (any, error) {
	field := Field{
		Title:       q.title(answers),
		Description: q.Description,
		Placeholder: q.Placeholder,
		Validate:    renderValidator(q, answers),
	}
	if q.Choices != nil {
		field.Options = q.Choices(answers)
	}
	if q.Default != nil {
		field.Default = q.Default(answers)
	}

	switch q.Kind {
	case Toggle:
		return p.Confirm(ctx, field)

	case Select:
		v, err := p.Select(ctx, field)
		if err != nil {
			return nil, err
		}
		return format(q, v), nil

	case MultiSelect:
		return p.MultiSelect(ctx, field)

	case Secret:
		v, err := p.Secret(ctx, field)
		if err != nil {
			return nil, err
		}
		return format(q, v), nil

	case Number:
		v, err := p.Input(ctx, field)
		if err != nil {
			return nil, err
		}
		if q.Format != nil {
			return q.Format(v), nil
		}
		n, _ := strconv.Atoi(strings.TrimSpace(v))
		return n, nil

	default: // Text
		v, err := p.Input(ctx, field)
		if err != nil {
			return nil, err
		}
		return format(q, v), nil
	}
}

func format(q Question, raw string) any {
	if q.Format != nil {
		return q.Format(raw)
	}
	return raw
}

// renderValidator binds the question's validator to the current answer set
// and, for Number questions, prepends the integer gate.
func renderValidator(q Question, answers Answers) func(string) error {
	return func(s string) error {
		if q.Kind == Number {
			if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
				return errors.New("enter a whole number")
			}
		}
		if q.Validate != nil {
			return q.Validate(answers, s)
		}
		return nil
	}
}
