package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/imamik/vmctl/cmd/vmctl/handlers"
)

// Template returns the command for operating on saved templates.
//
// Flags (exactly one is required):
//
//	--list: List saved template names
//	--from-save <name>: Deploy a new instance from a saved template
//	--delete <name>: Delete a saved template
func Template() *cobra.Command {
	var (
		opts     handlers.TemplateOptions
		fromSave string
		del      string
		list     bool
	)

	cmd := &cobra.Command{
		Use:   "template",
		Short: "List, deploy from, or delete saved templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set := 0
			for _, on := range []bool{list, fromSave != "", del != ""} {
				if on {
					set++
				}
			}
			if set != 1 {
				_ = cmd.Help()
				return errors.New("exactly one of --list, --from-save or --delete is required")
			}

			switch {
			case list:
				return handlers.TemplateList(opts)
			case del != "":
				return handlers.TemplateDelete(opts, del)
			default:
				return handlers.TemplateUse(cmd.Context(), opts, fromSave)
			}
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "list saved template names")
	cmd.Flags().StringVar(&fromSave, "from-save", "", "deploy a new instance from the named template")
	cmd.Flags().StringVar(&del, "delete", "", "delete the named template")
	cmd.Flags().StringVar(&opts.Kubeconfig, "kubeconfig", "", "path to the orchestration API kubeconfig")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "path to the vmctl config file")

	return cmd
}
