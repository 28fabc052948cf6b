// Package aws provides read-only access to EKS clusters and their EC2 capacity.
//
// Client describes a live cluster, its managed node groups and the self-managed
// Auto Scaling groups tagged for it, and returns them as a provider.ClusterInfo.
// Every API call is retried on throttling; a missing cluster is reported as
// ErrClusterNotFound without retrying.
package aws
