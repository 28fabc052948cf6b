// Package config defines the configuration model shared by the cluster
// providers and the provisioning phases.
//
// [MngClusterProviderProps] is what callers write, usually as YAML.
// [GenericProviderOptions] is the merged record a base provider consumes:
// cluster-wide options plus the managed and self-managed node group lists.
// [DefaultOptions] holds the library-wide defaults that sit underneath
// every caller-supplied value.
package config
