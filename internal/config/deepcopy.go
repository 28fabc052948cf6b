package config

import (
	"maps"
	"slices"

	"github.com/samber/lo"
)

// DeepCopy returns a copy of in that shares no slices, maps or pointers with it.
func (in SubnetSelection) DeepCopy() SubnetSelection {
	out := in
	out.SubnetIDs = slices.Clone(in.SubnetIDs)
	out.AvailabilityZones = slices.Clone(in.AvailabilityZones)
	return out
}

// DeepCopy returns a copy of in that shares no slices, maps or pointers with it.
func (in ManagedNodeGroup) DeepCopy() ManagedNodeGroup {
	out := in
	if in.CustomAMI != nil {
		ami := *in.CustomAMI
		out.CustomAMI = &ami
	}
	out.DesiredSize = cloneInt32(in.DesiredSize)
	out.MinSize = cloneInt32(in.MinSize)
	out.MaxSize = cloneInt32(in.MaxSize)
	out.InstanceTypes = slices.Clone(in.InstanceTypes)
	out.VpcSubnets = deepCopySelections(in.VpcSubnets)
	out.Labels = maps.Clone(in.Labels)
	out.Tags = maps.Clone(in.Tags)
	return out
}

// DeepCopy returns a copy of in that shares no slices, maps or pointers with it.
func (in AutoscalingNodeGroup) DeepCopy() AutoscalingNodeGroup {
	out := in
	out.DesiredSize = cloneInt32(in.DesiredSize)
	out.MinSize = cloneInt32(in.MinSize)
	out.MaxSize = cloneInt32(in.MaxSize)
	out.VpcSubnets = deepCopySelections(in.VpcSubnets)
	return out
}

// DeepCopy returns a copy of in that shares no slices, maps or pointers with it.
func (in ClusterOptions) DeepCopy() ClusterOptions {
	out := in
	out.VpcSubnets = deepCopySelections(in.VpcSubnets)
	out.Tags = maps.Clone(in.Tags)
	return out
}

// DeepCopy returns a copy of in that shares no slices, maps or pointers with it.
func (in GenericProviderOptions) DeepCopy() GenericProviderOptions {
	return GenericProviderOptions{
		ClusterOptions:        in.ClusterOptions.DeepCopy(),
		ManagedNodeGroups:     deepCopyAll(in.ManagedNodeGroups, ManagedNodeGroup.DeepCopy),
		AutoscalingNodeGroups: deepCopyAll(in.AutoscalingNodeGroups, AutoscalingNodeGroup.DeepCopy),
	}
}

func deepCopySelections(in []SubnetSelection) []SubnetSelection {
	return deepCopyAll(in, SubnetSelection.DeepCopy)
}

// deepCopyAll keeps nil and empty slices apart.
func deepCopyAll[T any](in []T, deepCopy func(T) T) []T {
	if in == nil {
		return nil
	}
	return lo.Map(in, func(item T, _ int) T { return deepCopy(item) })
}

func cloneInt32(p *int32) *int32 {
	if p == nil {
		return nil
	}
	return lo.ToPtr(*p)
}
