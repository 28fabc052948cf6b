package naming

import "fmt"

// DefaultManagedNodeGroupID is used when no node group id and no cluster name are configured.
const DefaultManagedNodeGroupID = "eks-ssp-mng"

// NodegroupNameTagKey is set by EKS on autoscaling groups that back a managed node group.
const NodegroupNameTagKey = "eks:nodegroup-name"

// OwnedTagValue marks a resource as owned by the cluster named in the tag key.
const OwnedTagValue = "owned"

func ClusterTagKey(cluster string) string {
	return fmt.Sprintf("kubernetes.io/cluster/%s", cluster)
}

func AutoscalingGroup(cluster, id string) string {
	return fmt.Sprintf("%s-%s", cluster, id)
}

func LaunchTemplate(cluster, id string) string {
	return fmt.Sprintf("%s-%s-lt", cluster, id)
}
