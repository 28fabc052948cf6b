package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/eksbp/cmd/eksbp/handlers"
)

// Plan returns the command that renders a cluster plan from a props file.
func Plan() *cobra.Command {
	var configPath string
	var output string
	var metricsFile string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Render the EKS requests for a managed node group cluster",
		Long: `Render the EKS requests for a cluster with a single managed node group.

The props file is merged over the library defaults, the node group is built
from the props (id, AMI, sizes, instance types, capacity type), and the result
is validated and rendered without calling AWS:
  - the CreateCluster request (version, endpoint access, subnets, tags)
  - one CreateNodegroup request with the node group defaults applied
  - subnet selectors that still need a VPC lookup
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Plan(cmd.Context(), configPath, output, metricsFile, verbose)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to props file (default: eksbp.yaml)")
	cmd.Flags().StringVarP(&output, "output", "o", handlers.OutputTable, "Output format: table or yaml")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "Write planner metrics to this file in Prometheus text format")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every planning phase")

	return cmd
}
