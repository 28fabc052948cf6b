package config

import ekstypes "github.com/aws/aws-sdk-go-v2/service/eks/types"

// Library-wide defaults.
const (
	// DefaultKubernetesVersion is the control plane version used when none is configured.
	DefaultKubernetesVersion = "1.31"

	// DefaultInstanceType is used for node groups without instance types.
	DefaultInstanceType = "m5.large"

	DefaultMinSize int32 = 1
	DefaultMaxSize int32 = 3

	// DefaultCapacityType is the purchasing model for managed node groups.
	DefaultCapacityType = ekstypes.CapacityTypesOnDemand

	// DefaultAMIType is used for managed node groups without a custom AMI.
	DefaultAMIType = ekstypes.AMITypesAl2X8664
)

// DefaultOptions returns the defaults every provider starts from.
// A fresh value is returned on each call, so callers may mutate it.
func DefaultOptions() GenericProviderOptions {
	return GenericProviderOptions{
		ClusterOptions: ClusterOptions{
			Version: DefaultKubernetesVersion,
		},
	}
}
