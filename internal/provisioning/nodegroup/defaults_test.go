package nodegroup_test

import (
	ekstypes "github.com/aws/aws-sdk-go-v2/service/eks/types"
	"github.com/samber/lo"

	"github.com/imamik/eksbp/internal/config"
	"github.com/imamik/eksbp/internal/provisioning/nodegroup"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Defaults", func() {
	Context("ManagedDefaults", func() {
		It("should default every unset field", func() {
			ng := nodegroup.ManagedDefaults(config.ManagedNodeGroup{ID: "payments"})

			Expect(ng.InstanceTypes).To(Equal([]string{"m5.large"}))
			Expect(*ng.MinSize).To(BeEquivalentTo(1))
			Expect(*ng.DesiredSize).To(BeEquivalentTo(1))
			Expect(*ng.MaxSize).To(BeEquivalentTo(3))
			Expect(ng.CapacityType).To(Equal(ekstypes.CapacityTypesOnDemand))
			Expect(ng.AMIType).To(Equal(ekstypes.AMITypesAl2X8664))
		})

		It("should keep set fields", func() {
			ng := nodegroup.ManagedDefaults(config.ManagedNodeGroup{
				ID:            "payments",
				InstanceTypes: []string{"c5.xlarge"},
				MinSize:       lo.ToPtr[int32](2),
				DesiredSize:   lo.ToPtr[int32](4),
				MaxSize:       lo.ToPtr[int32](10),
				CapacityType:  ekstypes.CapacityTypesSpot,
				AMIType:       ekstypes.AMITypesBottlerocketX8664,
			})

			Expect(ng.InstanceTypes).To(Equal([]string{"c5.xlarge"}))
			Expect(*ng.MinSize).To(BeEquivalentTo(2))
			Expect(*ng.DesiredSize).To(BeEquivalentTo(4))
			Expect(*ng.MaxSize).To(BeEquivalentTo(10))
			Expect(ng.CapacityType).To(Equal(ekstypes.CapacityTypesSpot))
			Expect(ng.AMIType).To(Equal(ekstypes.AMITypesBottlerocketX8664))
		})

		It("should not choose an AMI type or instance types for a custom AMI", func() {
			ng := nodegroup.ManagedDefaults(config.ManagedNodeGroup{
				ID:        "payments",
				CustomAMI: &config.CustomAMI{LaunchTemplateName: "payments-lt"},
			})

			Expect(ng.AMIType).To(BeEmpty())
			Expect(ng.InstanceTypes).To(BeEmpty())
		})

		DescribeTable("should keep defaulted sizes ordered around a set desired size",
			func(desired int32, wantMin, wantMax int32) {
				ng := nodegroup.ManagedDefaults(config.ManagedNodeGroup{ID: "payments", DesiredSize: lo.ToPtr(desired)})

				Expect(*ng.MinSize).To(Equal(wantMin))
				Expect(*ng.DesiredSize).To(Equal(desired))
				Expect(*ng.MaxSize).To(Equal(wantMax))
				Expect(*ng.MinSize).To(BeNumerically("<=", *ng.DesiredSize))
				Expect(*ng.DesiredSize).To(BeNumerically("<=", *ng.MaxSize))
			},
			Entry("desired only, above the default max", int32(10), int32(1), int32(10)),
			Entry("desired zero, min unset", int32(0), int32(0), int32(3)),
			Entry("desired within defaults", int32(2), int32(1), int32(3)),
		)

		It("should not share size pointers with the input", func() {
			minSize := lo.ToPtr[int32](2)
			ng := nodegroup.ManagedDefaults(config.ManagedNodeGroup{ID: "payments", MinSize: minSize})

			*ng.MinSize = 7
			Expect(*minSize).To(BeEquivalentTo(2))
		})
	})

	DescribeTable("AutoscalingDefaults sizes",
		func(minSize, desired, maxSize *int32, wantMin, wantDesired, wantMax int32) {
			ng := nodegroup.AutoscalingDefaults(config.AutoscalingNodeGroup{
				ID:          "spot",
				MinSize:     minSize,
				DesiredSize: desired,
				MaxSize:     maxSize,
			})
			Expect(ng.InstanceType).To(Equal("m5.large"))
			Expect(*ng.MinSize).To(Equal(wantMin))
			Expect(*ng.DesiredSize).To(Equal(wantDesired))
			Expect(*ng.MaxSize).To(Equal(wantMax))
		},
		Entry("all unset", nil, nil, nil, int32(1), int32(1), int32(3)),
		Entry("min above default max", lo.ToPtr[int32](5), nil, nil, int32(5), int32(5), int32(5)),
		Entry("desired set", nil, lo.ToPtr[int32](2), nil, int32(1), int32(2), int32(3)),
		Entry("desired above default max", nil, lo.ToPtr[int32](10), nil, int32(1), int32(10), int32(10)),
		Entry("desired zero with min unset", nil, lo.ToPtr[int32](0), nil, int32(0), int32(0), int32(3)),
		Entry("desired above set min", lo.ToPtr[int32](2), lo.ToPtr[int32](7), nil, int32(2), int32(7), int32(7)),
		Entry("all set", lo.ToPtr[int32](0), lo.ToPtr[int32](0), lo.ToPtr[int32](6), int32(0), int32(0), int32(6)),
	)
})
