// Package nodegroup renders the compute capacity of the cluster.
//
// ManagedProvisioner applies the base node group defaults and renders one
// eks.CreateNodegroupInput per managed node group. AutoscalingProvisioner
// renders self-managed EC2 Auto Scaling groups tagged for the cluster.
package nodegroup
