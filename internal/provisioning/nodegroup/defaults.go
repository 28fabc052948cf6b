package nodegroup

import (
	"github.com/samber/lo"

	"github.com/imamik/eksbp/internal/config"
	"github.com/imamik/eksbp/internal/util/ptr"
)

// ManagedDefaults returns ng with every unset field defaulted.
// A custom AMI launch template may carry its own instance types, so none are
// defaulted then, and no AMI type is chosen.
func ManagedDefaults(ng config.ManagedNodeGroup) config.ManagedNodeGroup {
	if len(ng.InstanceTypes) == 0 && ng.CustomAMI == nil {
		ng.InstanceTypes = []string{config.DefaultInstanceType}
	}
	ng.MinSize, ng.DesiredSize, ng.MaxSize = defaultSizes(ng.MinSize, ng.DesiredSize, ng.MaxSize)
	if ng.CapacityType == "" {
		ng.CapacityType = config.DefaultCapacityType
	}
	if ng.AMIType == "" && ng.CustomAMI == nil {
		ng.AMIType = config.DefaultAMIType
	}
	return ng
}

// AutoscalingDefaults returns ng with every unset field defaulted.
func AutoscalingDefaults(ng config.AutoscalingNodeGroup) config.AutoscalingNodeGroup {
	if ng.InstanceType == "" {
		ng.InstanceType = config.DefaultInstanceType
	}
	ng.MinSize, ng.DesiredSize, ng.MaxSize = defaultSizes(ng.MinSize, ng.DesiredSize, ng.MaxSize)
	return ng
}

// defaultSizes fills unset bounds around whatever the caller set. A default min
// never exceeds a set desired size, a default max never drops below min or desired,
// and desired starts at min. New pointers are returned so callers' values are never shared.
func defaultSizes(minSize, desired, maxSize *int32) (*int32, *int32, *int32) {
	defaultMin := config.DefaultMinSize
	if desired != nil {
		defaultMin = min(defaultMin, *desired)
	}
	minVal := ptr.Int32Or(minSize, defaultMin)
	desiredVal := ptr.Int32Or(desired, minVal)
	maxVal := ptr.Int32Or(maxSize, max(config.DefaultMaxSize, minVal, desiredVal))
	return lo.ToPtr(minVal), lo.ToPtr(desiredVal), lo.ToPtr(maxVal)
}
