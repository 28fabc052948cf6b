package nodegroup

import (
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	asgtypes "github.com/aws/aws-sdk-go-v2/service/autoscaling/types"
	"github.com/samber/lo"

	"github.com/imamik/eksbp/internal/config"
	"github.com/imamik/eksbp/internal/provisioning"
	"github.com/imamik/eksbp/internal/util/naming"
)

const autoscalingPhaseName = "autoscaling-groups"

// AutoscalingProvisioner renders self-managed EC2 Auto Scaling groups.
type AutoscalingProvisioner struct{}

// NewAutoscalingProvisioner creates a new Auto Scaling group provisioner.
func NewAutoscalingProvisioner() *AutoscalingProvisioner {
	return &AutoscalingProvisioner{}
}

// Name implements the provisioning.Phase interface.
func (p *AutoscalingProvisioner) Name() string {
	return autoscalingPhaseName
}

// Provision implements the provisioning.Phase interface.
func (p *AutoscalingProvisioner) Provision(ctx *provisioning.Context) error {
	cluster := ctx.State.ClusterName
	groups := ctx.Options.AutoscalingNodeGroups

	ctx.State.AutoscalingGroups = make([]*autoscaling.CreateAutoScalingGroupInput, 0, len(groups))
	ctx.State.PlannedAutoscalingGroups = make([]asgtypes.AutoScalingGroup, 0, len(groups))

	for _, ng := range groups {
		ng = AutoscalingDefaults(ng)
		selections := ng.VpcSubnets
		if len(selections) == 0 {
			selections = ctx.Options.VpcSubnets
		}
		subnetIDs, unresolved := provisioning.SplitSubnetSelections(selections)
		ctx.State.RecordUnresolved(ng.ID, unresolved)

		input := CreateAutoScalingGroupInput(cluster, ng, subnetIDs)
		ctx.State.AutoscalingGroups = append(ctx.State.AutoscalingGroups, input)
		ctx.State.PlannedAutoscalingGroups = append(ctx.State.PlannedAutoscalingGroups, plannedAutoScalingGroup(input))

		provisioning.LogResourcePlanned(ctx.Observer, autoscalingPhaseName, "autoscaling-group", aws.ToString(input.AutoScalingGroupName))
	}

	provisioning.RecordPlannedResources(cluster, "autoscaling-group", len(groups))
	return nil
}

// CreateAutoScalingGroupInput renders the request for a defaulted group.
// The instance type goes into a launch template override; a spot price makes
// the group run spot instances only.
func CreateAutoScalingGroupInput(cluster string, ng config.AutoscalingNodeGroup, subnetIDs []string) *autoscaling.CreateAutoScalingGroupInput {
	name := naming.AutoscalingGroup(cluster, ng.ID)

	policy := &asgtypes.MixedInstancesPolicy{
		LaunchTemplate: &asgtypes.LaunchTemplate{
			LaunchTemplateSpecification: &asgtypes.LaunchTemplateSpecification{
				LaunchTemplateName: aws.String(naming.LaunchTemplate(cluster, ng.ID)),
				Version:            aws.String("$Latest"),
			},
			Overrides: []asgtypes.LaunchTemplateOverrides{
				{InstanceType: aws.String(ng.InstanceType)},
			},
		},
	}
	if ng.SpotPrice != "" {
		policy.InstancesDistribution = &asgtypes.InstancesDistribution{
			OnDemandPercentageAboveBaseCapacity: aws.Int32(0),
			SpotMaxPrice:                        aws.String(ng.SpotPrice),
		}
	}

	return &autoscaling.CreateAutoScalingGroupInput{
		AutoScalingGroupName: aws.String(name),
		MinSize:              ng.MinSize,
		MaxSize:              ng.MaxSize,
		DesiredCapacity:      ng.DesiredSize,
		VPCZoneIdentifier:    lo.EmptyableToPtr(strings.Join(subnetIDs, ",")),
		MixedInstancesPolicy: policy,
		Tags: []asgtypes.Tag{{
			Key:               aws.String(naming.ClusterTagKey(cluster)),
			Value:             aws.String(naming.OwnedTagValue),
			PropagateAtLaunch: aws.Bool(true),
			ResourceId:        aws.String(name),
			ResourceType:      aws.String("auto-scaling-group"),
		}},
	}
}

func plannedAutoScalingGroup(input *autoscaling.CreateAutoScalingGroupInput) asgtypes.AutoScalingGroup {
	return asgtypes.AutoScalingGroup{
		AutoScalingGroupName: input.AutoScalingGroupName,
		MinSize:              input.MinSize,
		MaxSize:              input.MaxSize,
		DesiredCapacity:      input.DesiredCapacity,
		VPCZoneIdentifier:    input.VPCZoneIdentifier,
		MixedInstancesPolicy: input.MixedInstancesPolicy,
		Tags: lo.Map(input.Tags, func(t asgtypes.Tag, _ int) asgtypes.TagDescription {
			return asgtypes.TagDescription{
				Key:               t.Key,
				Value:             t.Value,
				PropagateAtLaunch: t.PropagateAtLaunch,
				ResourceId:        t.ResourceId,
				ResourceType:      t.ResourceType,
			}
		}),
	}
}
