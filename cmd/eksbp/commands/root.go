// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the eksbp CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "eksbp",
		Short:         "Plan EKS clusters backed by a managed node group",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(Plan())
	cmd.AddCommand(Check())
	cmd.AddCommand(Version())

	return cmd
}
