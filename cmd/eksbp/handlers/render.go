package handlers

import (
	"fmt"
	"io"
	"os"
	"strings"

	asgtypes "github.com/aws/aws-sdk-go-v2/service/autoscaling/types"
	ekstypes "github.com/aws/aws-sdk-go-v2/service/eks/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/imamik/eksbp/internal/config"
	"github.com/imamik/eksbp/internal/provider"
	"github.com/imamik/eksbp/internal/provisioning"
)

var (
	colorGreen = lipgloss.Color("#22c55e")
	colorBlue  = lipgloss.Color("#3b82f6")
	colorDim   = lipgloss.Color("#6b7280")
	colorWhite = lipgloss.Color("#f9fafb")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	okStyle = lipgloss.NewStyle().
		Foreground(colorGreen)
)

// isInteractiveTTY reports whether stdout is a terminal. Replaced in tests.
var isInteractiveTTY = func() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// styled renders s with style only on an interactive terminal.
func styled(style lipgloss.Style, s string) string {
	if !isInteractiveTTY() {
		return s
	}
	return style.Render(s)
}

func renderPlan(plan *provisioning.State, capacity provider.EC2Capacity) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(styled(titleStyle, fmt.Sprintf("  eksbp plan: %s", plan.ClusterName)))
	b.WriteString("\n")
	b.WriteString(styled(dimStyle, "  "+strings.Repeat("═", 30)))
	b.WriteString("\n\n")

	if c := plan.PlannedCluster; c != nil {
		fmt.Fprintf(&b, "    Version:   %s\n", lo.FromPtrOr(c.Version, "(EKS default)"))
		if c.ResourcesVpcConfig != nil {
			fmt.Fprintf(&b, "    VPC:       %s\n", lo.FromPtrOr(c.ResourcesVpcConfig.VpcId, "-"))
			fmt.Fprintf(&b, "    Endpoint:  %s\n", endpointAccess(c.ResourcesVpcConfig))
		}
	}
	b.WriteString("    Capacity:  ")
	b.WriteString(styled(okStyle, fmt.Sprintf("%d %s", capacity.Len(), capacity.Kind())))
	b.WriteString("\n\n")

	b.WriteString(styled(sectionStyle, "  Node groups"))
	b.WriteString("\n")
	b.WriteString(renderGroupTable(capacity))
	b.WriteString("\n")

	if len(plan.UnresolvedSubnets) > 0 {
		b.WriteString("\n")
		b.WriteString(styled(sectionStyle, "  Unresolved subnet selections"))
		b.WriteString("\n")
		for _, u := range plan.UnresolvedSubnets {
			fmt.Fprintf(&b, "    %s: %s\n", u.Owner, describeSelection(u.Selection))
		}
		b.WriteString(styled(dimStyle, "  Note: these selections need a VPC lookup before the requests can be sent."))
		b.WriteString("\n")
	}

	return b.String()
}

func renderCheck(clusterName string, info *provider.ClusterInfo, capacity provider.EC2Capacity) string {
	var b strings.Builder

	b.WriteString(styled(titleStyle, fmt.Sprintf("eksbp check: %s", clusterName)))
	b.WriteString("\n")
	if info.Cluster != nil {
		fmt.Fprintf(&b, "  Status:    %s\n", info.Cluster.Status)
		fmt.Fprintf(&b, "  Version:   %s\n", lo.FromPtrOr(info.Cluster.Version, "-"))
	}
	b.WriteString("  Capacity:  ")
	b.WriteString(styled(okStyle, fmt.Sprintf("%d %s", capacity.Len(), capacity.Kind())))
	b.WriteString("\n")
	b.WriteString(renderGroupTable(capacity))
	b.WriteString("\n")
	return b.String()
}

func renderGroupTable(capacity provider.EC2Capacity) string {
	t := table.NewWriter()
	if isInteractiveTTY() {
		t.SetStyle(table.StyleRounded)
	} else {
		t.SetStyle(table.StyleLight)
	}
	t.AppendHeader(table.Row{"Name", "Kind", "Capacity", "Instance types", "Min", "Desired", "Max"})

	for _, ng := range capacity.NodeGroups {
		row := table.Row{lo.FromPtr(ng.NodegroupName), provider.KindManagedNodeGroup, string(ng.CapacityType), joinOrDash(ng.InstanceTypes)}
		t.AppendRow(append(row, scalingColumns(ng.ScalingConfig)...))
	}
	for _, asg := range capacity.AutoscalingGroups {
		t.AppendRow(table.Row{
			lo.FromPtr(asg.AutoScalingGroupName),
			provider.KindAutoscalingGroup,
			asgCapacityType(asg),
			joinOrDash(asgInstanceTypes(asg)),
			lo.FromPtr(asg.MinSize),
			lo.FromPtr(asg.DesiredCapacity),
			lo.FromPtr(asg.MaxSize),
		})
	}
	return t.Render()
}

func scalingColumns(sc *ekstypes.NodegroupScalingConfig) table.Row {
	if sc == nil {
		return table.Row{"-", "-", "-"}
	}
	return table.Row{lo.FromPtr(sc.MinSize), lo.FromPtr(sc.DesiredSize), lo.FromPtr(sc.MaxSize)}
}

func asgCapacityType(asg asgtypes.AutoScalingGroup) string {
	if p := asg.MixedInstancesPolicy; p != nil && p.InstancesDistribution != nil && p.InstancesDistribution.SpotMaxPrice != nil {
		return "SPOT"
	}
	return "ON_DEMAND"
}

func asgInstanceTypes(asg asgtypes.AutoScalingGroup) []string {
	p := asg.MixedInstancesPolicy
	if p == nil || p.LaunchTemplate == nil {
		return nil
	}
	return overrideInstanceTypes(p.LaunchTemplate.Overrides)
}

func overrideInstanceTypes(overrides []asgtypes.LaunchTemplateOverrides) []string {
	return lo.FilterMap(overrides, func(o asgtypes.LaunchTemplateOverrides, _ int) (string, bool) {
		return lo.FromPtr(o.InstanceType), o.InstanceType != nil
	})
}

func endpointAccess(vpc *ekstypes.VpcConfigResponse) string {
	if vpc.EndpointPublicAccess {
		return "public and private"
	}
	return "private"
}

func describeSelection(sel config.SubnetSelection) string {
	parts := []string{}
	if sel.SubnetType != "" {
		parts = append(parts, "type="+string(sel.SubnetType))
	}
	if sel.SubnetGroupName != "" {
		parts = append(parts, "group="+sel.SubnetGroupName)
	}
	if len(sel.AvailabilityZones) > 0 {
		parts = append(parts, "azs="+strings.Join(sel.AvailabilityZones, ","))
	}
	if sel.OnePerAZ {
		parts = append(parts, "onePerAz")
	}
	if len(parts) == 0 {
		return "(empty selection)"
	}
	return strings.Join(parts, " ")
}

func joinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ",")
}

// planView is the YAML shape of a rendered plan.
type planView struct {
	Cluster           clusterView      `yaml:"cluster"`
	Capacity          capacityView     `yaml:"capacity"`
	NodeGroups        []nodeGroupView  `yaml:"nodeGroups,omitempty"`
	AutoscalingGroups []asgView        `yaml:"autoscalingGroups,omitempty"`
	UnresolvedSubnets []unresolvedView `yaml:"unresolvedSubnets,omitempty"`
}

type clusterView struct {
	Name           string            `yaml:"name"`
	Version        string            `yaml:"version,omitempty"`
	RoleArn        string            `yaml:"roleArn,omitempty"`
	SubnetIDs      []string          `yaml:"subnetIds,omitempty"`
	PublicEndpoint bool              `yaml:"publicEndpoint"`
	Tags           map[string]string `yaml:"tags,omitempty"`
}

type capacityView struct {
	Kind  string `yaml:"kind"`
	Count int    `yaml:"count"`
}

type nodeGroupView struct {
	Name           string            `yaml:"name"`
	CapacityType   string            `yaml:"capacityType,omitempty"`
	AmiType        string            `yaml:"amiType,omitempty"`
	InstanceTypes  []string          `yaml:"instanceTypes,omitempty"`
	LaunchTemplate string            `yaml:"launchTemplate,omitempty"`
	MinSize        int32             `yaml:"minSize"`
	DesiredSize    int32             `yaml:"desiredSize"`
	MaxSize        int32             `yaml:"maxSize"`
	SubnetIDs      []string          `yaml:"subnetIds,omitempty"`
	Tags           map[string]string `yaml:"tags,omitempty"`
}

type asgView struct {
	Name           string   `yaml:"name"`
	LaunchTemplate string   `yaml:"launchTemplate,omitempty"`
	InstanceTypes  []string `yaml:"instanceTypes,omitempty"`
	SpotMaxPrice   string   `yaml:"spotMaxPrice,omitempty"`
	MinSize        int32    `yaml:"minSize"`
	DesiredSize    int32    `yaml:"desiredSize"`
	MaxSize        int32    `yaml:"maxSize"`
	Subnets        string   `yaml:"vpcZoneIdentifier,omitempty"`
}

type unresolvedView struct {
	Owner     string                 `yaml:"owner"`
	Selection config.SubnetSelection `yaml:"selection"`
}

func newPlanView(plan *provisioning.State, capacity provider.EC2Capacity) planView {
	view := planView{
		Cluster:  clusterView{Name: plan.ClusterName},
		Capacity: capacityView{Kind: capacity.Kind(), Count: capacity.Len()},
	}

	if in := plan.Cluster; in != nil {
		view.Cluster.Version = lo.FromPtr(in.Version)
		view.Cluster.RoleArn = lo.FromPtr(in.RoleArn)
		view.Cluster.Tags = in.Tags
		if in.ResourcesVpcConfig != nil {
			view.Cluster.SubnetIDs = in.ResourcesVpcConfig.SubnetIds
			view.Cluster.PublicEndpoint = lo.FromPtr(in.ResourcesVpcConfig.EndpointPublicAccess)
		}
	}

	for _, in := range plan.NodeGroups {
		if in == nil {
			continue
		}
		v := nodeGroupView{
			Name:          lo.FromPtr(in.NodegroupName),
			CapacityType:  string(in.CapacityType),
			AmiType:       string(in.AmiType),
			InstanceTypes: in.InstanceTypes,
			SubnetIDs:     in.Subnets,
			Tags:          in.Tags,
		}
		if lt := in.LaunchTemplate; lt != nil {
			v.LaunchTemplate = lo.FromPtr(lt.Name)
		}
		if sc := in.ScalingConfig; sc != nil {
			v.MinSize, v.DesiredSize, v.MaxSize = lo.FromPtr(sc.MinSize), lo.FromPtr(sc.DesiredSize), lo.FromPtr(sc.MaxSize)
		}
		view.NodeGroups = append(view.NodeGroups, v)
	}

	for _, in := range plan.AutoscalingGroups {
		if in == nil {
			continue
		}
		v := asgView{
			Name:        lo.FromPtr(in.AutoScalingGroupName),
			MinSize:     lo.FromPtr(in.MinSize),
			DesiredSize: lo.FromPtr(in.DesiredCapacity),
			MaxSize:     lo.FromPtr(in.MaxSize),
			Subnets:     lo.FromPtr(in.VPCZoneIdentifier),
		}
		if p := in.MixedInstancesPolicy; p != nil {
			if lt := p.LaunchTemplate; lt != nil {
				v.InstanceTypes = overrideInstanceTypes(lt.Overrides)
				if lt.LaunchTemplateSpecification != nil {
					v.LaunchTemplate = lo.FromPtr(lt.LaunchTemplateSpecification.LaunchTemplateName)
				}
			}
			if p.InstancesDistribution != nil {
				v.SpotMaxPrice = lo.FromPtr(p.InstancesDistribution.SpotMaxPrice)
			}
		}
		view.AutoscalingGroups = append(view.AutoscalingGroups, v)
	}

	for _, u := range plan.UnresolvedSubnets {
		view.UnresolvedSubnets = append(view.UnresolvedSubnets, unresolvedView{Owner: u.Owner, Selection: u.Selection})
	}
	return view
}

func renderPlanYAML(w io.Writer, plan *provisioning.State, capacity provider.EC2Capacity) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newPlanView(plan, capacity)); err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	return enc.Close()
}
