// Package controlplane renders the EKS control plane request.
//
// The phase translates the merged cluster options into an eks.CreateClusterInput
// and records the cluster descriptor EKS would report while the cluster is created.
// Subnet selections that name no subnet ids are left for a VPC lookup and are
// recorded as unresolved in the plan.
package controlplane
