// Package orchestration provides high-level workflow coordination for cluster planning.
//
// GenericClusterProvider is the base provider. It runs the planning phases from
// internal/provisioning in order and returns the planned cluster descriptor:
//  1. Validation - Pre-flight configuration validation
//  2. Control plane - EKS cluster request
//  3. Managed node groups - EKS node group requests
//  4. Autoscaling groups - self-managed EC2 Auto Scaling group requests
//
// # Usage
//
//	base := orchestration.NewGenericClusterProvider(observer)
//	info, err := provider.NewMngClusterProvider(props, base).Provision(ctx)
//	plan := base.LastPlan()
//
// Planning never calls AWS; the rendered requests are only recorded in the plan.
package orchestration
