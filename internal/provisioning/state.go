package provisioning

import (
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	asgtypes "github.com/aws/aws-sdk-go-v2/service/autoscaling/types"
	"github.com/aws/aws-sdk-go-v2/service/eks"
	ekstypes "github.com/aws/aws-sdk-go-v2/service/eks/types"

	"github.com/imamik/eksbp/internal/config"
	"github.com/imamik/eksbp/internal/provider"
)

// UnresolvedSubnets is a subnet selection that names no subnet ids and
// therefore needs a VPC lookup before the rendered request can be sent.
type UnresolvedSubnets struct {
	Owner     string // "cluster" or the node group id
	Selection config.SubnetSelection
}

// State holds the rendered plan. It is progressively populated as each
// phase completes. Node group slices are indexed like the option slices
// they were rendered from.
type State struct {
	ClusterName string

	// Rendered API requests
	Cluster           *eks.CreateClusterInput
	NodeGroups        []*eks.CreateNodegroupInput
	AutoscalingGroups []*autoscaling.CreateAutoScalingGroupInput

	// Planned descriptors, as the APIs would report them right after creation
	PlannedCluster           *ekstypes.Cluster
	PlannedNodeGroups        []ekstypes.Nodegroup
	PlannedAutoscalingGroups []asgtypes.AutoScalingGroup

	mu                sync.Mutex
	UnresolvedSubnets []UnresolvedSubnets
}

// NewState creates an empty plan for the named cluster.
func NewState(clusterName string) *State {
	return &State{ClusterName: clusterName}
}

// RecordUnresolved adds selections that could not be turned into subnet ids.
// It is safe for concurrent use.
func (s *State) RecordUnresolved(owner string, selections []config.SubnetSelection) {
	if len(selections) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sel := range selections {
		s.UnresolvedSubnets = append(s.UnresolvedSubnets, UnresolvedSubnets{Owner: owner, Selection: sel})
	}
}

// ClusterInfo returns the cluster descriptor built from the planned resources.
func (s *State) ClusterInfo() *provider.ClusterInfo {
	return &provider.ClusterInfo{
		Cluster:           s.PlannedCluster,
		NodeGroups:        s.PlannedNodeGroups,
		AutoscalingGroups: s.PlannedAutoscalingGroups,
	}
}
