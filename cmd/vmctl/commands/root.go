// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and validation. Command execution is delegated to
// handler functions in the handlers package.
package commands

import (
	"errors"

	"github.com/spf13/cobra"
)

// Root returns the root command for the vmctl CLI.
//
// vmctl runs in strict mode: invoking it without a subcommand, or with an
// unknown one, prints help and exits non-zero.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "vmctl",
		Short:         "Deploy virtual server instances interactively",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New("a subcommand is required")
		},
	}

	cmd.AddCommand(New())
	cmd.AddCommand(Template())
	cmd.AddCommand(Completion())
	cmd.AddCommand(Version())

	return cmd
}
