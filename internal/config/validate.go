package config

import (
	"fmt"
	"regexp"
	"slices"

	"k8s.io/apimachinery/pkg/util/sets"
	"k8s.io/apimachinery/pkg/util/validation"
	"k8s.io/apimachinery/pkg/util/validation/field"
)

// eksNameRegex matches the name constraint EKS applies to clusters and node groups.
var eksNameRegex = regexp.MustCompile(`^[0-9A-Za-z][A-Za-z0-9\-_]*$`)

const (
	maxClusterNameLength   = 100
	maxNodegroupNameLength = 63
)

// Validate checks the merged options the way a base provider does before synthesis.
// All problems are reported together as an aggregate error.
func (o *GenericProviderOptions) Validate() error {
	var errs field.ErrorList

	errs = append(errs, validateClusterName(o.ResolvedClusterName(), field.NewPath("clusterName"))...)

	for i, sel := range o.VpcSubnets {
		errs = append(errs, validateSubnetSelection(sel, field.NewPath("vpcSubnets").Index(i))...)
	}

	mngPath := field.NewPath("managedNodeGroups")
	mngIDs := sets.New[string]()
	for i, ng := range o.ManagedNodeGroups {
		p := mngPath.Index(i)
		if mngIDs.Has(ng.ID) {
			errs = append(errs, field.Duplicate(p.Child("id"), ng.ID))
		}
		mngIDs.Insert(ng.ID)
		errs = append(errs, validateManagedNodeGroup(ng, p)...)
	}

	asgPath := field.NewPath("autoscalingNodeGroups")
	asgIDs := sets.New[string]()
	for i, ng := range o.AutoscalingNodeGroups {
		p := asgPath.Index(i)
		if asgIDs.Has(ng.ID) {
			errs = append(errs, field.Duplicate(p.Child("id"), ng.ID))
		}
		asgIDs.Insert(ng.ID)
		errs = append(errs, validateNodegroupName(ng.ID, p.Child("id"))...)
		errs = append(errs, validateSizes(ng.MinSize, ng.DesiredSize, ng.MaxSize, p)...)
		for j, sel := range ng.VpcSubnets {
			errs = append(errs, validateSubnetSelection(sel, p.Child("vpcSubnets").Index(j))...)
		}
	}

	return errs.ToAggregate()
}

// Warnings returns non-fatal findings, such as use of deprecated fields.
func (o *GenericProviderOptions) Warnings() []string {
	var warnings []string
	if o.Name != "" {
		if o.ClusterName != "" && o.ClusterName != o.Name {
			warnings = append(warnings, fmt.Sprintf("name %q is deprecated and ignored in favor of clusterName %q", o.Name, o.ClusterName))
		} else {
			warnings = append(warnings, "name is deprecated, use clusterName")
		}
	}
	return warnings
}

func validateClusterName(name string, p *field.Path) field.ErrorList {
	switch {
	case name == "":
		return field.ErrorList{field.Required(p, "a cluster name is required (clusterName, or the deprecated name)")}
	case len(name) > maxClusterNameLength:
		return field.ErrorList{field.TooLong(p, name, maxClusterNameLength)}
	case !eksNameRegex.MatchString(name):
		return field.ErrorList{field.Invalid(p, name, "must start with an alphanumeric character and contain only alphanumerics, '-' and '_'")}
	}
	return nil
}

func validateNodegroupName(id string, p *field.Path) field.ErrorList {
	switch {
	case id == "":
		return field.ErrorList{field.Required(p, "")}
	case len(id) > maxNodegroupNameLength:
		return field.ErrorList{field.TooLong(p, id, maxNodegroupNameLength)}
	case !eksNameRegex.MatchString(id):
		return field.ErrorList{field.Invalid(p, id, "must start with an alphanumeric character and contain only alphanumerics, '-' and '_'")}
	}
	return nil
}

func validateManagedNodeGroup(ng ManagedNodeGroup, p *field.Path) field.ErrorList {
	var errs field.ErrorList

	errs = append(errs, validateNodegroupName(ng.ID, p.Child("id"))...)
	errs = append(errs, validateSizes(ng.MinSize, ng.DesiredSize, ng.MaxSize, p)...)

	if ng.CustomAMI != nil {
		if ng.CustomAMI.LaunchTemplateID == "" && ng.CustomAMI.LaunchTemplateName == "" {
			errs = append(errs, field.Required(p.Child("customAmi"), "launchTemplateId or launchTemplateName must be set"))
		}
		if ng.CustomAMI.LaunchTemplateID != "" && ng.CustomAMI.LaunchTemplateName != "" {
			errs = append(errs, field.Invalid(p.Child("customAmi"), ng.CustomAMI.LaunchTemplateName, "launchTemplateId and launchTemplateName are mutually exclusive"))
		}
		if ng.AMIType != "" {
			errs = append(errs, field.Forbidden(p.Child("amiType"), "cannot be combined with customAmi"))
		}
		if ng.AMIReleaseVersion != "" {
			errs = append(errs, field.Forbidden(p.Child("amiReleaseVersion"), "cannot be combined with customAmi"))
		}
	}

	if ng.AMIType != "" && !slices.Contains(ng.AMIType.Values(), ng.AMIType) {
		errs = append(errs, field.NotSupported(p.Child("amiType"), ng.AMIType, ng.AMIType.Values()))
	}
	if ng.CapacityType != "" && !slices.Contains(ng.CapacityType.Values(), ng.CapacityType) {
		errs = append(errs, field.NotSupported(p.Child("nodeGroupCapacityType"), ng.CapacityType, ng.CapacityType.Values()))
	}

	for i, it := range ng.InstanceTypes {
		if it == "" {
			errs = append(errs, field.Required(p.Child("instanceTypes").Index(i), ""))
		}
	}

	for k := range ng.Labels {
		for _, msg := range validation.IsQualifiedName(k) {
			errs = append(errs, field.Invalid(p.Child("labels").Key(k), k, msg))
		}
	}

	for i, sel := range ng.VpcSubnets {
		errs = append(errs, validateSubnetSelection(sel, p.Child("vpcSubnets").Index(i))...)
	}

	return errs
}

// validateSizes enforces 0 <= min <= desired <= max and max >= 1 for whichever bounds are set.
func validateSizes(minSize, desired, maxSize *int32, p *field.Path) field.ErrorList {
	var errs field.ErrorList

	bounds := []struct {
		name string
		v    *int32
	}{{"minSize", minSize}, {"desiredSize", desired}, {"maxSize", maxSize}}
	for _, b := range bounds {
		if b.v != nil && *b.v < 0 {
			errs = append(errs, field.Invalid(p.Child(b.name), *b.v, "must be non-negative"))
		}
	}
	if maxSize != nil && *maxSize == 0 {
		errs = append(errs, field.Invalid(p.Child("maxSize"), *maxSize, "must be at least 1"))
	}
	if minSize != nil && maxSize != nil && *minSize > *maxSize {
		errs = append(errs, field.Invalid(p.Child("minSize"), *minSize, fmt.Sprintf("must not exceed maxSize (%d)", *maxSize)))
	}
	if desired != nil && minSize != nil && *desired < *minSize {
		errs = append(errs, field.Invalid(p.Child("desiredSize"), *desired, fmt.Sprintf("must not be below minSize (%d)", *minSize)))
	}
	if desired != nil && maxSize != nil && *desired > *maxSize {
		errs = append(errs, field.Invalid(p.Child("desiredSize"), *desired, fmt.Sprintf("must not exceed maxSize (%d)", *maxSize)))
	}

	return errs
}

func validateSubnetSelection(sel SubnetSelection, p *field.Path) field.ErrorList {
	if !sel.SubnetType.IsValid() {
		return field.ErrorList{field.NotSupported(p.Child("subnetType"), sel.SubnetType,
			[]SubnetType{SubnetTypePublic, SubnetTypePrivateWithEgress, SubnetTypePrivateIsolated})}
	}
	return nil
}
