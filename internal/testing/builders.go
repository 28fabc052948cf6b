package testing

import (
	"maps"
	"slices"

	ekstypes "github.com/aws/aws-sdk-go-v2/service/eks/types"

	"github.com/imamik/eksbp/internal/config"
	"github.com/imamik/eksbp/internal/util/ptr"
)

// PropsBuilder provides a fluent interface for constructing test props.
// Each method returns a new builder (immutable) for chaining.
type PropsBuilder struct {
	props config.MngClusterProviderProps
}

// NewPropsBuilder creates a builder for a named cluster in a single subnet.
func NewPropsBuilder() *PropsBuilder {
	return &PropsBuilder{
		props: config.MngClusterProviderProps{
			ClusterOptions: config.ClusterOptions{
				ClusterName: "test-cluster",
				VpcSubnets:  []config.SubnetSelection{{SubnetIDs: []string{"subnet-test"}}},
			},
		},
	}
}

// WithClusterName sets the cluster name.
func (b *PropsBuilder) WithClusterName(name string) *PropsBuilder {
	nb := b.clone()
	nb.props.ClusterName = name
	return nb
}

// WithSubnetIDs replaces the cluster subnets with one selection naming ids.
func (b *PropsBuilder) WithSubnetIDs(ids ...string) *PropsBuilder {
	nb := b.clone()
	nb.props.VpcSubnets = []config.SubnetSelection{{SubnetIDs: slices.Clone(ids)}}
	return nb
}

// WithSubnetSelection appends a cluster subnet selection.
func (b *PropsBuilder) WithSubnetSelection(sel config.SubnetSelection) *PropsBuilder {
	nb := b.clone()
	nb.props.VpcSubnets = append(nb.props.VpcSubnets, sel)
	return nb
}

// WithPrivateCluster disables the public API endpoint.
func (b *PropsBuilder) WithPrivateCluster() *PropsBuilder {
	nb := b.clone()
	nb.props.PrivateCluster = true
	return nb
}

// WithNodeGroupID sets the managed node group id.
func (b *PropsBuilder) WithNodeGroupID(id string) *PropsBuilder {
	nb := b.clone()
	nb.props.ID = id
	return nb
}

// WithSizes sets the node group sizes. Zero values are left unset.
func (b *PropsBuilder) WithSizes(minSize, desired, maxSize int32) *PropsBuilder {
	nb := b.clone()
	nb.props.MinSize = sizeOrNil(minSize)
	nb.props.DesiredSize = sizeOrNil(desired)
	nb.props.MaxSize = sizeOrNil(maxSize)
	return nb
}

// WithInstanceTypes sets the node group instance types.
func (b *PropsBuilder) WithInstanceTypes(types ...string) *PropsBuilder {
	nb := b.clone()
	nb.props.InstanceTypes = slices.Clone(types)
	return nb
}

// WithCapacityType sets the node group capacity type.
func (b *PropsBuilder) WithCapacityType(ct ekstypes.CapacityTypes) *PropsBuilder {
	nb := b.clone()
	nb.props.CapacityType = ct
	return nb
}

// WithCustomAMI points the node group at a launch template by name.
func (b *PropsBuilder) WithCustomAMI(launchTemplateName string) *PropsBuilder {
	nb := b.clone()
	nb.props.CustomAMI = &config.CustomAMI{LaunchTemplateName: launchTemplateName}
	return nb
}

// WithTag adds a cluster tag.
func (b *PropsBuilder) WithTag(key, value string) *PropsBuilder {
	nb := b.clone()
	if nb.props.Tags == nil {
		nb.props.Tags = map[string]string{}
	}
	nb.props.Tags[key] = value
	return nb
}

// Build returns a copy of the props.
func (b *PropsBuilder) Build() *config.MngClusterProviderProps {
	props := b.clone().props
	return &props
}

// clone creates a deep copy of the builder for immutability.
func (b *PropsBuilder) clone() *PropsBuilder {
	p := b.props
	p.Tags = maps.Clone(b.props.Tags)
	p.InstanceTypes = slices.Clone(b.props.InstanceTypes)
	if b.props.VpcSubnets != nil {
		p.VpcSubnets = make([]config.SubnetSelection, len(b.props.VpcSubnets))
		for i, sel := range b.props.VpcSubnets {
			p.VpcSubnets[i] = cloneSelection(sel)
		}
	}
	if b.props.CustomAMI != nil {
		ami := *b.props.CustomAMI
		p.CustomAMI = &ami
	}
	return &PropsBuilder{props: p}
}

func cloneSelection(sel config.SubnetSelection) config.SubnetSelection {
	sel.SubnetIDs = slices.Clone(sel.SubnetIDs)
	sel.AvailabilityZones = slices.Clone(sel.AvailabilityZones)
	return sel
}

func sizeOrNil(v int32) *int32 {
	if v == 0 {
		return nil
	}
	return ptr.Int32(v)
}

// MinimalProps returns props that plan successfully with every default applied.
func MinimalProps() *config.MngClusterProviderProps {
	return NewPropsBuilder().Build()
}
