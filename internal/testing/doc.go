// Package testing provides test builders and helpers shared by package tests.
//
//   - PropsBuilder: immutable builder for managed node group provider props
//   - TestContext: a context bounded by the test lifetime
//
// Usage:
//
//	props := testutil.NewPropsBuilder().
//	    WithClusterName("payments").
//	    WithSubnetIDs("subnet-a").
//	    Build()
package testing
