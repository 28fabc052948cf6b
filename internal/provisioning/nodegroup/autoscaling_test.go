package nodegroup_test

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	asgtypes "github.com/aws/aws-sdk-go-v2/service/autoscaling/types"
	"github.com/samber/lo"

	"github.com/imamik/eksbp/internal/config"
	"github.com/imamik/eksbp/internal/provisioning"
	"github.com/imamik/eksbp/internal/provisioning/nodegroup"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("AutoscalingProvisioner", func() {
	var opts *config.GenericProviderOptions
	var pctx *provisioning.Context

	BeforeEach(func() {
		opts = &config.GenericProviderOptions{
			ClusterOptions: config.ClusterOptions{ClusterName: "payments"},
			AutoscalingNodeGroups: []config.AutoscalingNodeGroup{{
				ID:         "spot-pool",
				VpcSubnets: []config.SubnetSelection{{SubnetIDs: []string{"subnet-a", "subnet-b"}}},
			}},
		}
	})

	JustBeforeEach(func() {
		pctx = provisioning.NewContext(context.Background(), opts, nil)
		Expect(nodegroup.NewAutoscalingProvisioner().Provision(pctx)).To(Succeed())
	})

	It("should be named autoscaling-groups", func() {
		Expect(nodegroup.NewAutoscalingProvisioner().Name()).To(Equal("autoscaling-groups"))
	})

	It("should render a defaulted group", func() {
		Expect(pctx.State.AutoscalingGroups).To(HaveLen(1))
		input := pctx.State.AutoscalingGroups[0]

		Expect(input.AutoScalingGroupName).To(Equal(aws.String("payments-spot-pool")))
		Expect(input.MinSize).To(Equal(aws.Int32(1)))
		Expect(input.DesiredCapacity).To(Equal(aws.Int32(1)))
		Expect(input.MaxSize).To(Equal(aws.Int32(3)))
		Expect(input.VPCZoneIdentifier).To(Equal(aws.String("subnet-a,subnet-b")))

		lt := input.MixedInstancesPolicy.LaunchTemplate
		Expect(lt.LaunchTemplateSpecification.LaunchTemplateName).To(Equal(aws.String("payments-spot-pool-lt")))
		Expect(lt.Overrides).To(ConsistOf(asgtypes.LaunchTemplateOverrides{InstanceType: aws.String("m5.large")}))
		Expect(input.MixedInstancesPolicy.InstancesDistribution).To(BeNil())
	})

	It("should tag the group as owned by the cluster", func() {
		tags := pctx.State.AutoscalingGroups[0].Tags
		Expect(tags).To(HaveLen(1))
		Expect(tags[0].Key).To(Equal(aws.String("kubernetes.io/cluster/payments")))
		Expect(tags[0].Value).To(Equal(aws.String("owned")))
		Expect(tags[0].PropagateAtLaunch).To(Equal(aws.Bool(true)))
	})

	It("should record the planned group with the same tags", func() {
		Expect(pctx.State.PlannedAutoscalingGroups).To(HaveLen(1))
		planned := pctx.State.PlannedAutoscalingGroups[0]
		Expect(planned.AutoScalingGroupName).To(Equal(aws.String("payments-spot-pool")))
		Expect(planned.Tags).To(HaveLen(1))
		Expect(planned.Tags[0].Key).To(Equal(aws.String("kubernetes.io/cluster/payments")))
	})

	Context("with a spot price", func() {
		BeforeEach(func() {
			opts.AutoscalingNodeGroups[0].SpotPrice = "0.05"
			opts.AutoscalingNodeGroups[0].InstanceType = "c5.large"
			opts.AutoscalingNodeGroups[0].MaxSize = lo.ToPtr[int32](8)
		})

		It("should run spot instances only", func() {
			input := pctx.State.AutoscalingGroups[0]
			dist := input.MixedInstancesPolicy.InstancesDistribution
			Expect(dist).ToNot(BeNil())
			Expect(dist.SpotMaxPrice).To(Equal(aws.String("0.05")))
			Expect(dist.OnDemandPercentageAboveBaseCapacity).To(Equal(aws.Int32(0)))
			Expect(input.MixedInstancesPolicy.LaunchTemplate.Overrides[0].InstanceType).To(Equal(aws.String("c5.large")))
			Expect(input.MaxSize).To(Equal(aws.Int32(8)))
		})
	})

	Context("with selectors only", func() {
		BeforeEach(func() {
			opts.AutoscalingNodeGroups[0].VpcSubnets = []config.SubnetSelection{{SubnetType: config.SubnetTypePublic}}
		})

		It("should leave the zone identifier unset", func() {
			Expect(pctx.State.AutoscalingGroups[0].VPCZoneIdentifier).To(BeNil())
			Expect(pctx.State.UnresolvedSubnets).To(HaveLen(1))
			Expect(pctx.State.UnresolvedSubnets[0].Owner).To(Equal("spot-pool"))
		})
	})
})
