package nodegroup_test

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eks"
	ekstypes "github.com/aws/aws-sdk-go-v2/service/eks/types"
	"github.com/samber/lo"

	"github.com/imamik/eksbp/internal/config"
	"github.com/imamik/eksbp/internal/provisioning"
	"github.com/imamik/eksbp/internal/provisioning/nodegroup"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ManagedProvisioner", func() {
	var opts *config.GenericProviderOptions
	var pctx *provisioning.Context
	var provisionErr error

	BeforeEach(func() {
		opts = &config.GenericProviderOptions{
			ClusterOptions: config.ClusterOptions{
				ClusterName: "payments",
				Version:     "1.31",
				VpcSubnets:  []config.SubnetSelection{{SubnetIDs: []string{"subnet-a", "subnet-b"}}},
			},
			ManagedNodeGroups: []config.ManagedNodeGroup{{ID: "payments"}},
		}
	})

	JustBeforeEach(func() {
		pctx = provisioning.NewContext(context.Background(), opts, nil)
		provisionErr = nodegroup.NewManagedProvisioner().Provision(pctx)
	})

	It("should be named managed-node-groups", func() {
		Expect(nodegroup.NewManagedProvisioner().Name()).To(Equal("managed-node-groups"))
	})

	It("should render a defaulted node group", func() {
		Expect(provisionErr).ToNot(HaveOccurred())
		Expect(pctx.State.NodeGroups).To(HaveLen(1))

		input := pctx.State.NodeGroups[0]
		Expect(input.ClusterName).To(Equal(aws.String("payments")))
		Expect(input.NodegroupName).To(Equal(aws.String("payments")))
		Expect(input.InstanceTypes).To(Equal([]string{"m5.large"}))
		Expect(input.CapacityType).To(Equal(ekstypes.CapacityTypesOnDemand))
		Expect(input.AmiType).To(Equal(ekstypes.AMITypesAl2X8664))
		Expect(input.Version).To(Equal(aws.String("1.31")))
		Expect(input.ScalingConfig.MinSize).To(Equal(aws.Int32(1)))
		Expect(input.ScalingConfig.DesiredSize).To(Equal(aws.Int32(1)))
		Expect(input.ScalingConfig.MaxSize).To(Equal(aws.Int32(3)))
		Expect(input.LaunchTemplate).To(BeNil())
	})

	It("should fall back to the cluster subnets", func() {
		Expect(pctx.State.NodeGroups[0].Subnets).To(Equal([]string{"subnet-a", "subnet-b"}))
	})

	It("should record a creating node group descriptor", func() {
		Expect(pctx.State.PlannedNodeGroups).To(HaveLen(1))
		planned := pctx.State.PlannedNodeGroups[0]
		Expect(planned.Status).To(Equal(ekstypes.NodegroupStatusCreating))
		Expect(planned.NodegroupName).To(Equal(aws.String("payments")))
		Expect(planned.ScalingConfig).To(BeIdenticalTo(pctx.State.NodeGroups[0].ScalingConfig))
	})

	It("should not modify the options", func() {
		Expect(opts.ManagedNodeGroups[0].InstanceTypes).To(BeEmpty())
		Expect(opts.ManagedNodeGroups[0].MinSize).To(BeNil())
	})

	Context("with a custom AMI", func() {
		BeforeEach(func() {
			opts.ManagedNodeGroups[0].CustomAMI = &config.CustomAMI{
				LaunchTemplateID: "lt-0123456789abcdef0",
				Version:          "3",
			}
		})

		It("should set the launch template and drop the AMI selection", func() {
			input := pctx.State.NodeGroups[0]
			Expect(input.LaunchTemplate).To(Equal(&ekstypes.LaunchTemplateSpecification{
				Id:      aws.String("lt-0123456789abcdef0"),
				Version: aws.String("3"),
			}))
			Expect(input.AmiType).To(BeEmpty())
			Expect(input.ReleaseVersion).To(BeNil())
			Expect(input.Version).To(BeNil())
			Expect(input.InstanceTypes).To(BeEmpty())
		})
	})

	Context("with several groups", func() {
		BeforeEach(func() {
			opts.ManagedNodeGroups = []config.ManagedNodeGroup{
				{ID: "general"},
				{ID: "spot", CapacityType: ekstypes.CapacityTypesSpot, InstanceTypes: []string{"m5.large", "m5a.large"}},
				{
					ID:         "isolated",
					VpcSubnets: []config.SubnetSelection{{SubnetType: config.SubnetTypePrivateIsolated}},
					MaxSize:    lo.ToPtr[int32](9),
					Labels:     map[string]string{"workload": "batch"},
				},
			}
		})

		It("should keep the option order", func() {
			names := lo.Map(pctx.State.NodeGroups, func(in *eks.CreateNodegroupInput, _ int) string {
				return aws.ToString(in.NodegroupName)
			})
			Expect(names).To(Equal([]string{"general", "spot", "isolated"}))
		})

		It("should render each group from its own options", func() {
			spot := pctx.State.NodeGroups[1]
			Expect(spot.CapacityType).To(Equal(ekstypes.CapacityTypesSpot))
			Expect(spot.InstanceTypes).To(Equal([]string{"m5.large", "m5a.large"}))

			isolated := pctx.State.NodeGroups[2]
			Expect(isolated.ScalingConfig.MaxSize).To(Equal(aws.Int32(9)))
			Expect(isolated.Labels).To(HaveKeyWithValue("workload", "batch"))
			Expect(isolated.Subnets).To(BeEmpty())
		})

		It("should record the group's own selectors as unresolved", func() {
			Expect(pctx.State.UnresolvedSubnets).To(HaveLen(1))
			Expect(pctx.State.UnresolvedSubnets[0].Owner).To(Equal("isolated"))
		})
	})

	Context("without groups", func() {
		BeforeEach(func() {
			opts.ManagedNodeGroups = nil
		})

		It("should render nothing", func() {
			Expect(provisionErr).ToNot(HaveOccurred())
			Expect(pctx.State.NodeGroups).To(BeEmpty())
			Expect(pctx.State.ClusterInfo().NodeGroups).To(BeEmpty())
		})
	})
})
