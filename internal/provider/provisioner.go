package provider

import (
	"context"

	asgtypes "github.com/aws/aws-sdk-go-v2/service/autoscaling/types"
	ekstypes "github.com/aws/aws-sdk-go-v2/service/eks/types"

	"github.com/imamik/eksbp/internal/config"
)

// ClusterProvisioner builds a cluster from merged provider options.
type ClusterProvisioner interface {
	Provision(ctx context.Context, opts *config.GenericProviderOptions) (*ClusterInfo, error)
}

// ClusterInfo describes a provisioned cluster and its EC2 compute.
// Either collection may be nil.
type ClusterInfo struct {
	Cluster           *ekstypes.Cluster
	NodeGroups        []ekstypes.Nodegroup
	AutoscalingGroups []asgtypes.AutoScalingGroup
}
