// Package naming provides consistent naming functions for EKS cluster resources.
//
// Managed node groups fall back to a fixed id when neither an explicit id
// nor a cluster name is configured. Self-managed autoscaling groups are named
// {cluster}-{id} and carry the Kubernetes cluster ownership tag so that
// inspection can find them again.
package naming
