// Package async provides utilities for parallel task execution.
//
// [RunParallel] starts every task at once and waits for all of them. It is
// used to render node groups and to describe them against the EKS API
// concurrently.
package async
