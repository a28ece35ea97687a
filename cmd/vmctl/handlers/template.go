package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/imamik/vmctl/internal/descriptor"
	"github.com/imamik/vmctl/internal/template"
	"github.com/imamik/vmctl/internal/wizard"
)

// TemplateOptions are the shared flag values for "vmctl template".
type TemplateOptions struct {
	ConfigPath string
	Kubeconfig string
}

// TemplateList prints the saved template names, one per line.
func TemplateList(opts TemplateOptions) error {
	deps, err := buildStoreDeps(opts.ConfigPath)
	if err != nil {
		return err
	}

	names := deps.templates.List()
	if len(names) == 0 {
		fmt.Fprintln(deps.out, "No templates saved.")
		return nil
	}
	for _, name := range names {
		fmt.Fprintln(deps.out, name)
	}
	return nil
}

// TemplateDelete removes the named template. A missing name is reported as a
// diagnostic, not a failure.
func TemplateDelete(opts TemplateOptions, name string) error {
	deps, err := buildStoreDeps(opts.ConfigPath)
	if err != nil {
		return err
	}
	return templateDelete(deps, name)
}

func templateDelete(deps *wizardDeps, name string) error {
	if err := deps.templates.Delete(name); err != nil {
		if errors.Is(err, template.ErrNotFound) {
			fmt.Fprintf(deps.out, "No template named %q.\n", name)
			return nil
		}
		return err
	}
	fmt.Fprintf(deps.out, "Deleted template %q.\n", name)
	return nil
}

// TemplateUse deploys a new instance from a saved template. The template's
// identity fields are re-prompted so the copy gets its own coordinates;
// everything else is submitted as saved.
func TemplateUse(ctx context.Context, opts TemplateOptions, name string) error {
	if !stdoutIsTerminal() {
		return errors.New("vmctl template --from-save requires an interactive terminal")
	}

	deps, err := buildDeps(ctx, opts.ConfigPath, opts.Kubeconfig, "")
	if err != nil {
		return err
	}

	return runTemplateUse(ctx, deps, wizard.HuhPrompter{}, name)
}

// runTemplateUse is the testable core of TemplateUse.
func runTemplateUse(ctx context.Context, deps *wizardDeps, p wizard.Prompter, name string) error {
	vs, err := deps.templates.Instantiate(name)
	if err != nil {
		return err
	}

	identity := &wizard.Flow{Questions: []wizard.Question{
		{
			Key:      descriptor.KeyName,
			Kind:     wizard.Text,
			Title:    "Instance name",
			Default:  func(wizard.Answers) any { return vs.Name },
			Validate: labelValidator,
		},
		{
			Key:      descriptor.KeyNamespace,
			Kind:     wizard.Text,
			Title:    "Namespace",
			Default:  func(wizard.Answers) any { return vs.Namespace },
			Validate: labelValidator,
		},
	}}

	answers, err := identity.Run(ctx, p)
	if err != nil {
		return err
	}
	vs.Name = answers.String(descriptor.KeyName)
	vs.Namespace = answers.String(descriptor.KeyNamespace)

	return runSubmitLoop(ctx, deps, p, vs)
}
