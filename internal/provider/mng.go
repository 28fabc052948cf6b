package provider

import (
	"context"
	"fmt"

	"dario.cat/mergo"

	"github.com/imamik/eksbp/internal/config"
	"github.com/imamik/eksbp/internal/util/naming"
)

// MngClusterProvider provisions an EKS cluster with a single managed node group.
type MngClusterProvider struct {
	opts     config.GenericProviderOptions
	buildErr error
	base     ClusterProvisioner
}

// NewMngClusterProvider merges props over the library defaults and binds the
// result to base. props may be nil. A merge failure is reported by Provision.
func NewMngClusterProvider(props *config.MngClusterProviderProps, base ClusterProvisioner) *MngClusterProvider {
	opts, err := BuildMngOptions(props)
	return &MngClusterProvider{
		opts:     opts,
		buildErr: err,
		base:     base,
	}
}

// Options returns a deep copy of the merged options handed to the base provisioner.
func (p *MngClusterProvider) Options() config.GenericProviderOptions {
	return p.opts.DeepCopy()
}

// Provision delegates to the base provisioner with a deep copy of the merged options.
func (p *MngClusterProvider) Provision(ctx context.Context) (*ClusterInfo, error) {
	if p.buildErr != nil {
		return nil, p.buildErr
	}
	opts := p.opts.DeepCopy()
	return p.base.Provision(ctx, &opts)
}

// BuildMngOptions merges defaults < props < a forced single managed node group.
// Whatever node groups the caller listed are replaced. No validation happens here.
func BuildMngOptions(props *config.MngClusterProviderProps) (config.GenericProviderOptions, error) {
	if props == nil {
		props = &config.MngClusterProviderProps{}
	}

	opts := config.DefaultOptions()
	if err := mergo.Merge(&opts.ClusterOptions, props.ClusterOptions.DeepCopy(), mergo.WithOverride); err != nil {
		return config.GenericProviderOptions{}, fmt.Errorf("failed to merge cluster options: %w", err)
	}

	opts.ManagedNodeGroups = []config.ManagedNodeGroup{{
		ID:                managedNodeGroupID(props),
		AMIReleaseVersion: props.AMIReleaseVersion,
		CustomAMI:         props.CustomAMI,
		AMIType:           props.AMIType,
		DesiredSize:       props.DesiredSize,
		InstanceTypes:     props.InstanceTypes,
		MaxSize:           props.MaxSize,
		MinSize:           props.MinSize,
		CapacityType:      props.CapacityType,
		VpcSubnets:        props.VpcSubnets,
	}}
	opts.AutoscalingNodeGroups = nil

	return opts, nil
}

// managedNodeGroupID resolves id, then clusterName, then the fixed fallback.
// The deprecated name field is not consulted.
func managedNodeGroupID(props *config.MngClusterProviderProps) string {
	if props.ID != "" {
		return props.ID
	}
	if props.ClusterName != "" {
		return props.ClusterName
	}
	return naming.DefaultManagedNodeGroupID
}
