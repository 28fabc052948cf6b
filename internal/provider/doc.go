// Package provider contains the cluster providers and the checks that run
// against the clusters they produce.
//
// A provider turns caller props into the merged options of a base
// [ClusterProvisioner] and delegates the actual work to it.
// [MngClusterProvider] is the preset for a cluster backed by exactly one EKS
// managed node group. [AssertEC2NodeGroup] lets features that need EC2
// worker nodes refuse clusters that have none.
package provider
