package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/vmctl/cmd/vmctl/handlers"
)

// New returns the command that runs the interactive deployment wizard.
//
// Flags:
//
//	--kubeconfig: Path to the orchestration API kubeconfig
//	--namespace, -n: Default namespace offered by the wizard
//	--config: Path to the vmctl config file
func New() *cobra.Command {
	var opts handlers.NewOptions

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Interactively configure and deploy a virtual server",
		Long: `Interactively configure and deploy a virtual server.

This command walks you through configuring a virtual server step by
step. It will ask about:

  - Instance identity (name and namespace)
  - Region and operating system
  - Compute resources (GPU or CPU class, counts, memory)
  - Root storage (existing image or manually specified volume)
  - Optional swap volume
  - User accounts
  - Network exposure (ports, load balancer, floating IPs)

The assembled descriptor is shown with an hourly cost estimate before
anything is submitted, and can be saved as a named template for reuse
with "vmctl template".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.New(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.Kubeconfig, "kubeconfig", "", "path to the orchestration API kubeconfig")
	cmd.Flags().StringVarP(&opts.Namespace, "namespace", "n", "", "default namespace offered by the wizard")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "path to the vmctl config file")

	return cmd
}
