package config

import (
	ekstypes "github.com/aws/aws-sdk-go-v2/service/eks/types"
)

// SubnetType selects subnets by their routing role in the VPC.
type SubnetType string

const (
	// SubnetTypePublic selects subnets with a route to an internet gateway.
	SubnetTypePublic SubnetType = "PUBLIC"
	// SubnetTypePrivateWithEgress selects private subnets routed through a NAT.
	SubnetTypePrivateWithEgress SubnetType = "PRIVATE_WITH_EGRESS"
	// SubnetTypePrivateIsolated selects private subnets without any egress.
	SubnetTypePrivateIsolated SubnetType = "PRIVATE_ISOLATED"
)

// IsValid returns true if the subnet type is known. The empty type is valid and means "any".
func (t SubnetType) IsValid() bool {
	switch t {
	case "", SubnetTypePublic, SubnetTypePrivateWithEgress, SubnetTypePrivateIsolated:
		return true
	default:
		return false
	}
}

// SubnetSelection is a filter over the subnets of the cluster VPC.
// Explicit SubnetIDs take precedence over the other criteria.
type SubnetSelection struct {
	SubnetType        SubnetType `yaml:"subnetType,omitempty"`
	SubnetIDs         []string   `yaml:"subnetIds,omitempty"`
	AvailabilityZones []string   `yaml:"availabilityZones,omitempty"`
	SubnetGroupName   string     `yaml:"subnetGroupName,omitempty"`
	OnePerAZ          bool       `yaml:"onePerAz,omitempty"`
}

// CustomAMI references a launch template that supplies the node AMI.
type CustomAMI struct {
	LaunchTemplateID   string `yaml:"launchTemplateId,omitempty"`
	LaunchTemplateName string `yaml:"launchTemplateName,omitempty"`
	Version            string `yaml:"version,omitempty"`
}

// ManagedNodeGroup describes an EKS managed node group.
// Unset fields are left for the base provider to default.
type ManagedNodeGroup struct {
	ID                string                 `yaml:"id,omitempty"`
	AMIReleaseVersion string                 `yaml:"amiReleaseVersion,omitempty"`
	CustomAMI         *CustomAMI             `yaml:"customAmi,omitempty"`
	AMIType           ekstypes.AMITypes      `yaml:"amiType,omitempty"`
	DesiredSize       *int32                 `yaml:"desiredSize,omitempty"`
	MinSize           *int32                 `yaml:"minSize,omitempty"`
	MaxSize           *int32                 `yaml:"maxSize,omitempty"`
	InstanceTypes     []string               `yaml:"instanceTypes,omitempty"`
	CapacityType      ekstypes.CapacityTypes `yaml:"nodeGroupCapacityType,omitempty"`
	VpcSubnets        []SubnetSelection      `yaml:"vpcSubnets,omitempty"`
	Labels            map[string]string      `yaml:"labels,omitempty"`
	Tags              map[string]string      `yaml:"tags,omitempty"`
}

// AutoscalingNodeGroup describes a self-managed EC2 Auto Scaling group joined to the cluster.
type AutoscalingNodeGroup struct {
	ID           string            `yaml:"id"`
	InstanceType string            `yaml:"instanceType,omitempty"`
	DesiredSize  *int32            `yaml:"desiredSize,omitempty"`
	MinSize      *int32            `yaml:"minSize,omitempty"`
	MaxSize      *int32            `yaml:"maxSize,omitempty"`
	SpotPrice    string            `yaml:"spotPrice,omitempty"`
	VpcSubnets   []SubnetSelection `yaml:"vpcSubnets,omitempty"`
}

// ClusterOptions holds the cluster-wide options shared by every provider.
type ClusterOptions struct {
	// ClusterName is the EKS cluster name.
	ClusterName string `yaml:"clusterName,omitempty"`

	// Name is the cluster name.
	//
	// Deprecated: use ClusterName. Name is only consulted when ClusterName is empty.
	Name string `yaml:"name,omitempty"`

	// Version is the Kubernetes version of the control plane, e.g. "1.31".
	Version string `yaml:"version,omitempty"`

	// PrivateCluster restricts the API endpoint to the VPC.
	// The default exposes both the public and the private endpoint.
	PrivateCluster bool `yaml:"privateCluster,omitempty"`

	VpcID string `yaml:"vpcId,omitempty"`

	// VpcSubnets affects both the control plane and the managed node group.
	VpcSubnets []SubnetSelection `yaml:"vpcSubnets,omitempty"`

	RoleARN string            `yaml:"roleArn,omitempty"`
	Tags    map[string]string `yaml:"tags,omitempty"`
}

// ResolvedClusterName returns ClusterName, falling back to the deprecated Name.
func (o ClusterOptions) ResolvedClusterName() string {
	if o.ClusterName != "" {
		return o.ClusterName
	}
	return o.Name
}

// GenericProviderOptions is the merged options record consumed by a base provider.
type GenericProviderOptions struct {
	ClusterOptions        `yaml:",inline"`
	ManagedNodeGroups     []ManagedNodeGroup     `yaml:"managedNodeGroups,omitempty"`
	AutoscalingNodeGroups []AutoscalingNodeGroup `yaml:"autoscalingNodeGroups,omitempty"`
}

// MngClusterProviderProps configures a cluster with a single managed node group.
// Every field is optional.
type MngClusterProviderProps struct {
	ClusterOptions `yaml:",inline"`

	ID                string                 `yaml:"id,omitempty"`
	AMIReleaseVersion string                 `yaml:"amiReleaseVersion,omitempty"`
	CustomAMI         *CustomAMI             `yaml:"customAmi,omitempty"`
	AMIType           ekstypes.AMITypes      `yaml:"amiType,omitempty"`
	DesiredSize       *int32                 `yaml:"desiredSize,omitempty"`
	MinSize           *int32                 `yaml:"minSize,omitempty"`
	MaxSize           *int32                 `yaml:"maxSize,omitempty"`
	InstanceTypes     []string               `yaml:"instanceTypes,omitempty"`
	CapacityType      ekstypes.CapacityTypes `yaml:"nodeGroupCapacityType,omitempty"`

	// ManagedNodeGroups is accepted for parity with the generic options but is
	// always replaced by the single node group built from the fields above.
	ManagedNodeGroups []ManagedNodeGroup `yaml:"managedNodeGroups,omitempty"`
}
