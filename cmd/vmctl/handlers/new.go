// Package handlers implements the execution logic behind the vmctl
// commands. Command definitions in the commands package parse flags and
// delegate here.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/mattn/go-isatty"

	"github.com/imamik/vmctl/internal/cachestore"
	"github.com/imamik/vmctl/internal/config"
	"github.com/imamik/vmctl/internal/descriptor"
	"github.com/imamik/vmctl/internal/platform/orchestrator"
	"github.com/imamik/vmctl/internal/pricing"
	"github.com/imamik/vmctl/internal/template"
	"github.com/imamik/vmctl/internal/wizard"
)

// NewOptions are the flag values for "vmctl new".
type NewOptions struct {
	ConfigPath string
	Kubeconfig string
	Namespace  string
}

// Factory function variable so tests can substitute a fake client.
var newOrchestratorClient = func(kubeconfig string, log logr.Logger) (orchestrator.Interface, error) {
	return orchestrator.NewClient(kubeconfig, log)
}

// wizardDeps carries the collaborators the wizard needs. Tests construct one
// directly with fakes; New assembles the real thing.
type wizardDeps struct {
	cfg       *config.Config
	cache     *cachestore.Store
	orch      orchestrator.Interface
	catalog   pricing.Catalog
	templates *template.Store
	out       io.Writer
}

// New runs the interactive deployment wizard end to end: collect answers,
// build the descriptor, offer to save it as a template, then drive the
// submission loop.
func New(ctx context.Context, opts NewOptions) error {
	if !stdoutIsTerminal() {
		return errors.New("vmctl new requires an interactive terminal")
	}

	deps, err := buildDeps(ctx, opts.ConfigPath, opts.Kubeconfig, opts.Namespace)
	if err != nil {
		return err
	}

	return runWizard(ctx, deps, wizard.HuhPrompter{})
}

// buildDeps loads config and wires the real collaborators.
func buildDeps(ctx context.Context, configPath, kubeconfig, namespace string) (*wizardDeps, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if namespace != "" {
		cfg.Namespace = namespace
	}
	if kubeconfig == "" {
		kubeconfig = cfg.Kubeconfig
	}

	cache, err := cachestore.Open(cfg.ResolveCacheDir())
	if err != nil {
		return nil, err
	}

	orch, err := newOrchestratorClient(kubeconfig, logr.Discard())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the orchestration API: %w", err)
	}

	deps := &wizardDeps{
		cfg:       cfg,
		cache:     cache,
		orch:      orch,
		templates: template.NewStore(cache),
		out:       os.Stdout,
	}

	// A missing catalog degrades to "no estimate available" rather than
	// blocking the wizard.
	client := pricing.NewClient(cfg.CatalogEndpoint, logr.Discard())
	catalog, err := client.FetchOrCached(ctx, cache)
	if err != nil {
		fmt.Fprintln(deps.out, dimStyle.Render("  Warning: billing catalog unavailable: "+err.Error()))
	}
	deps.catalog = catalog

	return deps, nil
}

// buildStoreDeps wires only the local store collaborators, for template
// operations that never touch the orchestration API.
func buildStoreDeps(configPath string) (*wizardDeps, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	cache, err := cachestore.Open(cfg.ResolveCacheDir())
	if err != nil {
		return nil, err
	}

	return &wizardDeps{
		cfg:       cfg,
		cache:     cache,
		templates: template.NewStore(cache),
		out:       os.Stdout,
	}, nil
}

// runWizard is the testable core of New: everything after dependency wiring.
func runWizard(ctx context.Context, deps *wizardDeps, p wizard.Prompter) error {
	images := deps.images(ctx)
	services := deps.networkServices(ctx)
	claims := deps.volumeClaims(ctx)

	answers := wizard.Answers{}

	configure := &wizard.Flow{Questions: configQuestions(deps, images, claims)}
	if err := configure.RunWith(ctx, p, answers); err != nil {
		return err
	}

	users, err := wizard.RunUserLoop(ctx, p)
	if err != nil {
		return err
	}
	if len(users) > 0 {
		answers[descriptor.KeyUsers] = users
	}

	network := &wizard.Flow{Questions: networkQuestions(services)}
	if err := network.RunWith(ctx, p, answers); err != nil {
		return err
	}

	vs := descriptor.Build(answers)
	if def := deps.definitionFor(ctx, computeClass(vs)); def != "" {
		vs.Compute.Definition = def
	}

	if err := offerTemplateSave(ctx, deps, p, vs); err != nil {
		return err
	}

	return runSubmitLoop(ctx, deps, p, vs)
}

// computeClass returns the selected compute class, GPU or CPU.
func computeClass(vs descriptor.VirtualServer) string {
	if vs.Compute.GPUType != "" {
		return vs.Compute.GPUType
	}
	return vs.Compute.CPUType
}

// offerTemplateSave asks whether to keep the built descriptor as a named
// template. Declining is the default.
func offerTemplateSave(ctx context.Context, deps *wizardDeps, p wizard.Prompter, vs descriptor.VirtualServer) error {
	save, err := p.Confirm(ctx, wizard.Field{
		Title:       "Save this configuration as a template?",
		Description: "Templates can be redeployed with vmctl template --from-save",
	})
	if err != nil {
		return err
	}
	if !save {
		return nil
	}

	name, err := p.Input(ctx, wizard.Field{
		Title: "Template name",
		Validate: func(s string) error {
			if err := dnsLabel(s); err != nil {
				return err
			}
			if deps.templates.Exists(s) {
				return errors.New("a template with this name already exists")
			}
			return nil
		},
	})
	if err != nil {
		return err
	}

	if err := deps.templates.Save(name, vs); err != nil {
		return err
	}
	fmt.Fprintf(deps.out, "Saved template %q.\n", name)
	return nil
}

func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
