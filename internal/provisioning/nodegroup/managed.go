package nodegroup

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eks"
	ekstypes "github.com/aws/aws-sdk-go-v2/service/eks/types"
	"github.com/samber/lo"

	"github.com/imamik/eksbp/internal/config"
	"github.com/imamik/eksbp/internal/provisioning"
	"github.com/imamik/eksbp/internal/util/async"
)

const managedPhaseName = "managed-node-groups"

// ManagedProvisioner renders EKS managed node groups.
type ManagedProvisioner struct{}

// NewManagedProvisioner creates a new managed node group provisioner.
func NewManagedProvisioner() *ManagedProvisioner {
	return &ManagedProvisioner{}
}

// Name implements the provisioning.Phase interface.
func (p *ManagedProvisioner) Name() string {
	return managedPhaseName
}

// Provision implements the provisioning.Phase interface.
// Groups are rendered in parallel; each task writes only its own slot of the plan.
func (p *ManagedProvisioner) Provision(ctx *provisioning.Context) error {
	cluster := ctx.State.ClusterName
	groups := ctx.Options.ManagedNodeGroups

	ctx.State.NodeGroups = make([]*eks.CreateNodegroupInput, len(groups))
	ctx.State.PlannedNodeGroups = make([]ekstypes.Nodegroup, len(groups))

	tasks := make([]async.Task, 0, len(groups))
	for i, ng := range groups {
		tasks = append(tasks, async.Task{
			Name: fmt.Sprintf("nodegroup %s", ng.ID),
			Func: func(taskCtx context.Context) error {
				if err := taskCtx.Err(); err != nil {
					return err
				}

				group := ManagedDefaults(ng)
				selections := group.VpcSubnets
				if len(selections) == 0 {
					selections = ctx.Options.VpcSubnets
				}
				subnetIDs, unresolved := provisioning.SplitSubnetSelections(selections)
				ctx.State.RecordUnresolved(group.ID, unresolved)

				input := CreateNodegroupInput(cluster, ctx.Options.Version, group, subnetIDs)
				ctx.State.NodeGroups[i] = input
				ctx.State.PlannedNodeGroups[i] = plannedNodegroup(input)

				provisioning.LogResourcePlanned(ctx.Observer, managedPhaseName, "nodegroup", group.ID)
				return nil
			},
		})
	}

	if err := async.RunParallel(ctx, tasks); err != nil {
		return err
	}

	provisioning.RecordPlannedResources(cluster, "managed-node-group", len(groups))
	return nil
}

// CreateNodegroupInput renders the request for a defaulted node group.
// With a custom AMI the launch template carries the image, so the AMI type,
// the release version and the Kubernetes version are omitted.
func CreateNodegroupInput(cluster, version string, ng config.ManagedNodeGroup, subnetIDs []string) *eks.CreateNodegroupInput {
	input := &eks.CreateNodegroupInput{
		ClusterName:   aws.String(cluster),
		NodegroupName: aws.String(ng.ID),
		Subnets:       subnetIDs,
		InstanceTypes: ng.InstanceTypes,
		CapacityType:  ng.CapacityType,
		ScalingConfig: &ekstypes.NodegroupScalingConfig{
			MinSize:     ng.MinSize,
			MaxSize:     ng.MaxSize,
			DesiredSize: ng.DesiredSize,
		},
		Labels: ng.Labels,
		Tags:   ng.Tags,
	}

	if ng.CustomAMI != nil {
		input.LaunchTemplate = &ekstypes.LaunchTemplateSpecification{
			Id:      lo.EmptyableToPtr(ng.CustomAMI.LaunchTemplateID),
			Name:    lo.EmptyableToPtr(ng.CustomAMI.LaunchTemplateName),
			Version: lo.EmptyableToPtr(ng.CustomAMI.Version),
		}
		return input
	}

	input.AmiType = ng.AMIType
	input.ReleaseVersion = lo.EmptyableToPtr(ng.AMIReleaseVersion)
	input.Version = lo.EmptyableToPtr(version)
	return input
}

func plannedNodegroup(input *eks.CreateNodegroupInput) ekstypes.Nodegroup {
	return ekstypes.Nodegroup{
		ClusterName:    input.ClusterName,
		NodegroupName:  input.NodegroupName,
		Status:         ekstypes.NodegroupStatusCreating,
		AmiType:        input.AmiType,
		CapacityType:   input.CapacityType,
		InstanceTypes:  input.InstanceTypes,
		ReleaseVersion: input.ReleaseVersion,
		Version:        input.Version,
		ScalingConfig:  input.ScalingConfig,
		Subnets:        input.Subnets,
		LaunchTemplate: input.LaunchTemplate,
		Labels:         input.Labels,
		Tags:           input.Tags,
	}
}
