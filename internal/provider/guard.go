package provider

import (
	"errors"
	"fmt"

	asgtypes "github.com/aws/aws-sdk-go-v2/service/autoscaling/types"
	ekstypes "github.com/aws/aws-sdk-go-v2/service/eks/types"
)

// ErrUnsupportedTopology is matched by every UnsupportedTopologyError.
var ErrUnsupportedTopology = errors.New("unsupported cluster topology")

// UnsupportedTopologyError reports that an operation needs EC2 worker nodes
// but the cluster has neither managed node groups nor autoscaling groups.
type UnsupportedTopologyError struct {
	// Source names the operation that required EC2 capacity.
	Source string
}

func (e *UnsupportedTopologyError) Error() string {
	return fmt.Sprintf("%s is supported with EKS EC2 only", e.Source)
}

func (e *UnsupportedTopologyError) Is(target error) bool {
	return target == ErrUnsupportedTopology
}

// Capacity kinds reported by EC2Capacity.Kind.
const (
	KindManagedNodeGroup = "managed-node-group"
	KindAutoscalingGroup = "autoscaling-group"
)

// EC2Capacity is the EC2 compute found by AssertEC2NodeGroup.
// Exactly one of the fields is set, and it shares its backing array with the ClusterInfo it came from.
type EC2Capacity struct {
	NodeGroups        []ekstypes.Nodegroup
	AutoscalingGroups []asgtypes.AutoScalingGroup
}

// Kind returns KindManagedNodeGroup or KindAutoscalingGroup.
func (c EC2Capacity) Kind() string {
	if len(c.NodeGroups) > 0 {
		return KindManagedNodeGroup
	}
	return KindAutoscalingGroup
}

// Len returns the number of groups backing the cluster.
func (c EC2Capacity) Len() int {
	if len(c.NodeGroups) > 0 {
		return len(c.NodeGroups)
	}
	return len(c.AutoscalingGroups)
}

// AssertEC2NodeGroup validates that the cluster is backed by EC2, either through
// managed node groups or through self-managed autoscaling groups. Managed node
// groups win when both are present. source is used in the error message to
// identify the caller.
func AssertEC2NodeGroup(info *ClusterInfo, source string) (EC2Capacity, error) {
	if info != nil && len(info.NodeGroups) > 0 {
		return EC2Capacity{NodeGroups: info.NodeGroups}, nil
	}
	if info != nil && len(info.AutoscalingGroups) > 0 {
		return EC2Capacity{AutoscalingGroups: info.AutoscalingGroups}, nil
	}
	return EC2Capacity{}, &UnsupportedTopologyError{Source: source}
}
