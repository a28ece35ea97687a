package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/vmctl/internal/descriptor"
	"github.com/imamik/vmctl/internal/pricing"
	"github.com/imamik/vmctl/internal/wizard"
)

// submitState drives the submission loop.
type submitState int

const (
	stateConfirming submitState = iota
	stateSubmitting
	stateFailed
	stateDone
)

// runSubmitLoop shows the built descriptor with its price estimate, asks for
// confirmation and submits. Failures report the server's message and offer a
// retry; retries are unbounded and purely operator-driven. This is the only
// place the wizard performs a mutating call against the orchestration API.
func runSubmitLoop(ctx context.Context, deps *wizardDeps, p wizard.Prompter, vs descriptor.VirtualServer) error {
	obj, err := vs.ToUnstructured()
	if err != nil {
		return fmt.Errorf("failed to encode descriptor: %w", err)
	}

	price, priced := pricing.Estimate(vs, deps.catalog)
	fmt.Fprint(deps.out, renderSummary(vs, price, priced))

	var lastErr error
	state := stateConfirming

	for state != stateDone {
		switch state {
		case stateConfirming:
			confirm, err := p.Confirm(ctx, wizard.Field{
				Title:   "Deploy this virtual server?",
				Default: true,
			})
			if err != nil {
				return err
			}
			if !confirm {
				fmt.Fprintln(deps.out, "Not submitted.")
				return nil
			}
			state = stateSubmitting

		case stateSubmitting:
			if err := deps.orch.Create(ctx, obj); err != nil {
				lastErr = err
				state = stateFailed
				continue
			}
			fmt.Fprintf(deps.out, "Created VirtualServer %s/%s\n", vs.Namespace, vs.Name)
			state = stateDone

		case stateFailed:
			fmt.Fprintf(deps.out, "Submission failed: %v\n", lastErr)
			retry, err := p.Confirm(ctx, wizard.Field{
				Title:   "Try again?",
				Default: true,
			})
			if err != nil {
				return err
			}
			if !retry {
				return fmt.Errorf("submission failed: %w", lastErr)
			}
			state = stateSubmitting
		}
	}

	return nil
}
