package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/eksbp/cmd/eksbp/handlers"
)

// Check returns the command that verifies a live cluster runs on EC2 capacity.
func Check() *cobra.Command {
	var opts handlers.CheckOptions

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that a live EKS cluster is backed by EC2 capacity",
		Long: `Describe a live EKS cluster and check that it runs on EC2 capacity.

Managed node groups are preferred; self-managed Auto Scaling groups tagged
with kubernetes.io/cluster/<name> are accepted when no managed node group
exists. A cluster without either (e.g. Fargate only) fails the check.

Credentials come from the default AWS credential chain. Only read-only
Describe and List calls are made.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Check(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.ClusterName, "cluster", "", "EKS cluster name")
	cmd.Flags().StringVar(&opts.Region, "region", "", "AWS region (default: from the AWS config)")
	cmd.Flags().StringVar(&opts.Profile, "profile", "", "AWS shared config profile")
	cmd.Flags().StringVar(&opts.Endpoint, "endpoint", "", "Override the AWS endpoint URL")
	cmd.Flags().StringVar(&opts.Source, "source", handlers.DefaultCheckSource, "Label reported when the cluster has no EC2 capacity")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Log AWS calls")
	_ = cmd.MarkFlagRequired("cluster")

	return cmd
}
