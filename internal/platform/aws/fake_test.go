package aws

import (
	"context"
	"strconv"
	"sync"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	asgtypes "github.com/aws/aws-sdk-go-v2/service/autoscaling/types"
	"github.com/aws/aws-sdk-go-v2/service/eks"
	ekstypes "github.com/aws/aws-sdk-go-v2/service/eks/types"
)

// fakeEKS serves a single cluster. Queued errors are returned, one per call,
// before the fake starts answering DescribeCluster.
type fakeEKS struct {
	mu sync.Mutex

	cluster             *ekstypes.Cluster
	describeClusterErrs []error
	describeClusterCall int

	nodegroupPages [][]string
	nodegroups     map[string]ekstypes.Nodegroup
}

func (f *fakeEKS) DescribeCluster(_ context.Context, in *eks.DescribeClusterInput, _ ...func(*eks.Options)) (*eks.DescribeClusterOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.describeClusterCall++
	if len(f.describeClusterErrs) > 0 {
		err := f.describeClusterErrs[0]
		f.describeClusterErrs = f.describeClusterErrs[1:]
		return nil, err
	}
	if f.cluster == nil || sdkaws.ToString(f.cluster.Name) != sdkaws.ToString(in.Name) {
		return nil, &ekstypes.ResourceNotFoundException{Message: sdkaws.String("No cluster found for name: " + sdkaws.ToString(in.Name))}
	}
	return &eks.DescribeClusterOutput{Cluster: f.cluster}, nil
}

func (f *fakeEKS) ListNodegroups(_ context.Context, in *eks.ListNodegroupsInput, _ ...func(*eks.Options)) (*eks.ListNodegroupsOutput, error) {
	page := 0
	if in.NextToken != nil {
		page, _ = strconv.Atoi(*in.NextToken)
	}
	out := &eks.ListNodegroupsOutput{}
	if page < len(f.nodegroupPages) {
		out.Nodegroups = f.nodegroupPages[page]
	}
	if page+1 < len(f.nodegroupPages) {
		out.NextToken = sdkaws.String(strconv.Itoa(page + 1))
	}
	return out, nil
}

func (f *fakeEKS) DescribeNodegroup(_ context.Context, in *eks.DescribeNodegroupInput, _ ...func(*eks.Options)) (*eks.DescribeNodegroupOutput, error) {
	ng, ok := f.nodegroups[sdkaws.ToString(in.NodegroupName)]
	if !ok {
		return nil, &ekstypes.ResourceNotFoundException{Message: sdkaws.String("No node group found")}
	}
	return &eks.DescribeNodegroupOutput{Nodegroup: &ng}, nil
}

type fakeAutoScaling struct {
	mu     sync.Mutex
	groups []asgtypes.AutoScalingGroup
	inputs []*autoscaling.DescribeAutoScalingGroupsInput
	err    error
}

func (f *fakeAutoScaling) DescribeAutoScalingGroups(_ context.Context, in *autoscaling.DescribeAutoScalingGroupsInput, _ ...func(*autoscaling.Options)) (*autoscaling.DescribeAutoScalingGroupsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputs = append(f.inputs, in)
	if f.err != nil {
		return nil, f.err
	}
	return &autoscaling.DescribeAutoScalingGroupsOutput{AutoScalingGroups: f.groups}, nil
}

func nodegroup(cluster, name string) ekstypes.Nodegroup {
	return ekstypes.Nodegroup{
		ClusterName:   sdkaws.String(cluster),
		NodegroupName: sdkaws.String(name),
		Status:        ekstypes.NodegroupStatusActive,
	}
}

func autoScalingGroup(name string, tags map[string]string) asgtypes.AutoScalingGroup {
	g := asgtypes.AutoScalingGroup{AutoScalingGroupName: sdkaws.String(name)}
	for k, v := range tags {
		g.Tags = append(g.Tags, asgtypes.TagDescription{Key: sdkaws.String(k), Value: sdkaws.String(v)})
	}
	return g
}
