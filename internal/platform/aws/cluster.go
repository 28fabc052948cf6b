package aws

import (
	"context"
	"fmt"
	"slices"
	"sync"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	asgtypes "github.com/aws/aws-sdk-go-v2/service/autoscaling/types"
	"github.com/aws/aws-sdk-go-v2/service/eks"
	ekstypes "github.com/aws/aws-sdk-go-v2/service/eks/types"
	"github.com/samber/lo"

	"github.com/imamik/eksbp/internal/provider"
	"github.com/imamik/eksbp/internal/util/async"
	"github.com/imamik/eksbp/internal/util/naming"
	"github.com/imamik/eksbp/internal/util/retry"
)

// DescribeClusterInfo returns the cluster, its managed node groups and the
// self-managed Auto Scaling groups tagged for it. Auto Scaling groups that
// back a managed node group are left out, since the node group already covers them.
func (c *Client) DescribeClusterInfo(ctx context.Context, clusterName string) (*provider.ClusterInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeouts.Describe)
	defer cancel()

	cluster, err := c.describeCluster(ctx, clusterName)
	if err != nil {
		return nil, err
	}

	names, err := c.listNodegroups(ctx, clusterName)
	if err != nil {
		return nil, err
	}

	nodeGroups, err := c.describeNodegroups(ctx, clusterName, names)
	if err != nil {
		return nil, err
	}

	asgs, err := c.selfManagedAutoScalingGroups(ctx, clusterName)
	if err != nil {
		return nil, err
	}

	c.log.V(1).Info("described cluster", "cluster", clusterName, "nodegroups", len(nodeGroups), "autoscalingGroups", len(asgs))
	return &provider.ClusterInfo{
		Cluster:           cluster,
		NodeGroups:        nodeGroups,
		AutoscalingGroups: asgs,
	}, nil
}

func (c *Client) describeCluster(ctx context.Context, clusterName string) (*ekstypes.Cluster, error) {
	var out *eks.DescribeClusterOutput
	err := c.call(ctx, "DescribeCluster", func(ctx context.Context) error {
		var err error
		out, err = c.eks.DescribeCluster(ctx, &eks.DescribeClusterInput{Name: sdkaws.String(clusterName)})
		if IsNotFound(err) {
			return retry.Fatal(fmt.Errorf("%w: %s", ErrClusterNotFound, clusterName))
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe cluster %s: %w", clusterName, err)
	}
	return out.Cluster, nil
}

func (c *Client) listNodegroups(ctx context.Context, clusterName string) ([]string, error) {
	var names []string
	paginator := eks.NewListNodegroupsPaginator(c.eks, &eks.ListNodegroupsInput{
		ClusterName: sdkaws.String(clusterName),
	})
	for paginator.HasMorePages() {
		var page *eks.ListNodegroupsOutput
		err := c.call(ctx, "ListNodegroups", func(ctx context.Context) error {
			var err error
			page, err = paginator.NextPage(ctx)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list node groups of %s: %w", clusterName, err)
		}
		names = append(names, page.Nodegroups...)
	}
	return names, nil
}

// describeNodegroups describes node groups in parallel and returns them in
// the order of names. Node groups deleted since listing are skipped.
func (c *Client) describeNodegroups(ctx context.Context, clusterName string, names []string) ([]ekstypes.Nodegroup, error) {
	var mu sync.Mutex
	found := make(map[string]ekstypes.Nodegroup, len(names))

	tasks := lo.Map(names, func(name string, _ int) async.Task {
		return async.Task{
			Name: fmt.Sprintf("nodegroup %s", name),
			Func: func(ctx context.Context) error {
				var out *eks.DescribeNodegroupOutput
				err := c.call(ctx, "DescribeNodegroup", func(ctx context.Context) error {
					var err error
					out, err = c.eks.DescribeNodegroup(ctx, &eks.DescribeNodegroupInput{
						ClusterName:   sdkaws.String(clusterName),
						NodegroupName: sdkaws.String(name),
					})
					if IsNotFound(err) {
						return retry.Fatal(err)
					}
					return err
				})
				if IsNotFound(err) {
					c.log.V(1).Info("node group disappeared while describing", "cluster", clusterName, "nodegroup", name)
					return nil
				}
				if err != nil {
					return err
				}
				mu.Lock()
				found[name] = *out.Nodegroup
				mu.Unlock()
				return nil
			},
		}
	})

	if err := async.RunParallel(ctx, tasks); err != nil {
		return nil, fmt.Errorf("failed to describe node groups of %s: %w", clusterName, err)
	}

	return lo.FilterMap(names, func(name string, _ int) (ekstypes.Nodegroup, bool) {
		ng, ok := found[name]
		return ng, ok
	}), nil
}

func (c *Client) selfManagedAutoScalingGroups(ctx context.Context, clusterName string) ([]asgtypes.AutoScalingGroup, error) {
	var groups []asgtypes.AutoScalingGroup
	paginator := autoscaling.NewDescribeAutoScalingGroupsPaginator(c.asg, &autoscaling.DescribeAutoScalingGroupsInput{
		Filters: []asgtypes.Filter{{
			Name:   sdkaws.String("tag-key"),
			Values: []string{naming.ClusterTagKey(clusterName)},
		}},
	})
	for paginator.HasMorePages() {
		var page *autoscaling.DescribeAutoScalingGroupsOutput
		err := c.call(ctx, "DescribeAutoScalingGroups", func(ctx context.Context) error {
			var err error
			page, err = paginator.NextPage(ctx)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("failed to describe autoscaling groups of %s: %w", clusterName, err)
		}
		groups = append(groups, lo.Reject(page.AutoScalingGroups, func(g asgtypes.AutoScalingGroup, _ int) bool {
			return isManagedNodeGroupASG(g)
		})...)
	}
	return groups, nil
}

func isManagedNodeGroupASG(g asgtypes.AutoScalingGroup) bool {
	return slices.ContainsFunc(g.Tags, func(t asgtypes.TagDescription) bool {
		return sdkaws.ToString(t.Key) == naming.NodegroupNameTagKey
	})
}
