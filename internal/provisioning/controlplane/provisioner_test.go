package controlplane_test

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	ekstypes "github.com/aws/aws-sdk-go-v2/service/eks/types"

	"github.com/imamik/eksbp/internal/config"
	"github.com/imamik/eksbp/internal/provisioning"
	"github.com/imamik/eksbp/internal/provisioning/controlplane"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Provisioner", func() {
	var opts *config.GenericProviderOptions
	var pctx *provisioning.Context

	BeforeEach(func() {
		opts = &config.GenericProviderOptions{
			ClusterOptions: config.ClusterOptions{
				ClusterName: "payments",
				Version:     "1.31",
				VpcID:       "vpc-123",
				RoleARN:     "arn:aws:iam::111122223333:role/eks",
				Tags:        map[string]string{"team": "payments"},
			},
		}
	})

	JustBeforeEach(func() {
		pctx = provisioning.NewContext(context.Background(), opts, nil)
		Expect(controlplane.NewProvisioner().Provision(pctx)).To(Succeed())
	})

	It("should be named control-plane", func() {
		Expect(controlplane.NewProvisioner().Name()).To(Equal("control-plane"))
	})

	It("should render the cluster request", func() {
		input := pctx.State.Cluster
		Expect(input).ToNot(BeNil())
		Expect(input.Name).To(Equal(aws.String("payments")))
		Expect(input.Version).To(Equal(aws.String("1.31")))
		Expect(input.RoleArn).To(Equal(aws.String("arn:aws:iam::111122223333:role/eks")))
		Expect(input.Tags).To(HaveKeyWithValue("team", "payments"))
		Expect(input.Tags).To(HaveKeyWithValue("kubernetes.io/cluster/payments", "owned"))
	})

	It("should expose both endpoints by default", func() {
		vpc := pctx.State.Cluster.ResourcesVpcConfig
		Expect(vpc.EndpointPrivateAccess).To(Equal(aws.Bool(true)))
		Expect(vpc.EndpointPublicAccess).To(Equal(aws.Bool(true)))
	})

	It("should record a creating cluster descriptor", func() {
		planned := pctx.State.PlannedCluster
		Expect(planned).ToNot(BeNil())
		Expect(planned.Status).To(Equal(ekstypes.ClusterStatusCreating))
		Expect(planned.ResourcesVpcConfig.VpcId).To(Equal(aws.String("vpc-123")))
		Expect(planned.ResourcesVpcConfig.EndpointPublicAccess).To(BeTrue())
	})

	Context("private cluster", func() {
		BeforeEach(func() {
			opts.PrivateCluster = true
		})

		It("should disable the public endpoint", func() {
			vpc := pctx.State.Cluster.ResourcesVpcConfig
			Expect(vpc.EndpointPrivateAccess).To(Equal(aws.Bool(true)))
			Expect(vpc.EndpointPublicAccess).To(Equal(aws.Bool(false)))
			Expect(pctx.State.PlannedCluster.ResourcesVpcConfig.EndpointPublicAccess).To(BeFalse())
		})
	})

	Context("subnet selections", func() {
		BeforeEach(func() {
			opts.VpcSubnets = []config.SubnetSelection{
				{SubnetIDs: []string{"subnet-a", "subnet-b"}},
				{SubnetType: config.SubnetTypePrivateWithEgress},
			}
		})

		It("should pass explicit ids through", func() {
			Expect(pctx.State.Cluster.ResourcesVpcConfig.SubnetIds).To(Equal([]string{"subnet-a", "subnet-b"}))
		})

		It("should record selections without ids as unresolved", func() {
			Expect(pctx.State.UnresolvedSubnets).To(HaveLen(1))
			Expect(pctx.State.UnresolvedSubnets[0].Owner).To(Equal("cluster"))
			Expect(pctx.State.UnresolvedSubnets[0].Selection.SubnetType).To(Equal(config.SubnetTypePrivateWithEgress))
		})
	})

	Context("without optional fields", func() {
		BeforeEach(func() {
			opts = &config.GenericProviderOptions{
				ClusterOptions: config.ClusterOptions{Name: "legacy"},
			}
		})

		It("should fall back to the deprecated name and leave the rest unset", func() {
			input := pctx.State.Cluster
			Expect(input.Name).To(Equal(aws.String("legacy")))
			Expect(input.Version).To(BeNil())
			Expect(input.RoleArn).To(BeNil())
			Expect(pctx.State.PlannedCluster.ResourcesVpcConfig.VpcId).To(BeNil())
		})
	})
})
