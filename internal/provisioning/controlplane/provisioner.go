package controlplane

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eks"
	ekstypes "github.com/aws/aws-sdk-go-v2/service/eks/types"
	"github.com/samber/lo"

	"github.com/imamik/eksbp/internal/config"
	"github.com/imamik/eksbp/internal/provisioning"
)

const phaseName = "control-plane"

// Provisioner renders the control plane of the cluster.
type Provisioner struct{}

// NewProvisioner creates a new control plane provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name implements the provisioning.Phase interface.
func (p *Provisioner) Name() string {
	return phaseName
}

// Provision implements the provisioning.Phase interface.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	opts := ctx.Options
	name := ctx.State.ClusterName

	subnetIDs, unresolved := provisioning.SplitSubnetSelections(opts.VpcSubnets)
	ctx.State.RecordUnresolved("cluster", unresolved)

	input := CreateClusterInput(name, opts.ClusterOptions, subnetIDs)
	ctx.State.Cluster = input
	ctx.State.PlannedCluster = plannedCluster(input, opts.VpcID)

	provisioning.LogResourcePlanned(ctx.Observer, phaseName, "cluster", name)
	return nil
}

// CreateClusterInput renders the request for the named cluster.
// The private endpoint is always enabled; the public one only for non-private clusters.
func CreateClusterInput(name string, opts config.ClusterOptions, subnetIDs []string) *eks.CreateClusterInput {
	return &eks.CreateClusterInput{
		Name:    aws.String(name),
		Version: lo.EmptyableToPtr(opts.Version),
		RoleArn: lo.EmptyableToPtr(opts.RoleARN),
		ResourcesVpcConfig: &ekstypes.VpcConfigRequest{
			SubnetIds:             subnetIDs,
			EndpointPrivateAccess: aws.Bool(true),
			EndpointPublicAccess:  aws.Bool(!opts.PrivateCluster),
		},
		Tags: provisioning.OwnershipTags(name, opts.Tags),
	}
}

func plannedCluster(input *eks.CreateClusterInput, vpcID string) *ekstypes.Cluster {
	vpc := input.ResourcesVpcConfig
	return &ekstypes.Cluster{
		Name:    input.Name,
		Version: input.Version,
		RoleArn: input.RoleArn,
		Status:  ekstypes.ClusterStatusCreating,
		ResourcesVpcConfig: &ekstypes.VpcConfigResponse{
			VpcId:                 lo.EmptyableToPtr(vpcID),
			SubnetIds:             vpc.SubnetIds,
			EndpointPrivateAccess: aws.ToBool(vpc.EndpointPrivateAccess),
			EndpointPublicAccess:  aws.ToBool(vpc.EndpointPublicAccess),
		},
		Tags: input.Tags,
	}
}
