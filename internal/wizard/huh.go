package wizard

import (
	"context"
	"errors"

	"github.com/charmbracelet/huh"
)

// HuhPrompter presents fields as single-field huh forms. Validation failures
// re-prompt in place; aborting a form maps to ErrCanceled.
type HuhPrompter struct{}

var _ Prompter = HuhPrompter{}

func (HuhPrompter) Input(ctx context.Context, f Field) (string, error) {
	v, _ := f.Default.(string)
	in := huh.NewInput().
		Title(f.Title).
		Description(f.Description).
		Placeholder(f.Placeholder).
		Value(&v)
	if f.Validate != nil {
		in = in.Validate(f.Validate)
	}
	if err := runField(ctx, in); err != nil {
		return "", err
	}
	return v, nil
}

func (HuhPrompter) Secret(ctx context.Context, f Field) (string, error) {
	v, _ := f.Default.(string)
	in := huh.NewInput().
		Title(f.Title).
		Description(f.Description).
		EchoMode(huh.EchoModePassword).
		Value(&v)
	if f.Validate != nil {
		in = in.Validate(f.Validate)
	}
	if err := runField(ctx, in); err != nil {
		return "", err
	}
	return v, nil
}

func (HuhPrompter) Confirm(ctx context.Context, f Field) (bool, error) {
	v, _ := f.Default.(bool)
	c := huh.NewConfirm().
		Title(f.Title).
		Description(f.Description).
		Value(&v)
	if err := runField(ctx, c); err != nil {
		return false, err
	}
	return v, nil
}

func (HuhPrompter) Select(ctx context.Context, f Field) (string, error) {
	v, _ := f.Default.(string)
	opts := make([]huh.Option[string], len(f.Options))
	for i, o := range f.Options {
		opts[i] = huh.NewOption(o.Label, o.Value)
	}
	sel := huh.NewSelect[string]().
		Title(f.Title).
		Description(f.Description).
		Options(opts...).
		Value(&v)
	if err := runField(ctx, sel); err != nil {
		return "", err
	}
	return v, nil
}

func (HuhPrompter) MultiSelect(ctx context.Context, f Field) ([]string, error) {
	v, _ := f.Default.([]string)
	opts := make([]huh.Option[string], len(f.Options))
	for i, o := range f.Options {
		opts[i] = huh.NewOption(o.Label, o.Value)
	}
	sel := huh.NewMultiSelect[string]().
		Title(f.Title).
		Description(f.Description).
		Options(opts...).
		Value(&v)
	if err := runField(ctx, sel); err != nil {
		return nil, err
	}
	return v, nil
}

func runField(ctx context.Context, field huh.Field) error {
	err := huh.NewForm(huh.NewGroup(field)).RunWithContext(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrCanceled
	}
	return err
}
