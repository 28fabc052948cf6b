// Package provisioning provides shared types, interfaces, and orchestration for cluster planning.
//
// # Subpackages
//
//   - controlplane/: EKS control plane request rendering
//   - nodegroup/: managed node groups and self-managed Auto Scaling groups
//
// # Core Types
//
// Context carries the merged options, the plan state, and the observer.
// Phase defines a planning step with Name() and Provision() methods.
// State accumulates the rendered API requests and the planned resource descriptors.
package provisioning
