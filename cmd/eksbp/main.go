// Package main is the entry point for the eksbp CLI.
//
// eksbp plans Amazon EKS clusters backed by a single managed node group.
// It merges library defaults with caller properties, renders the EKS and
// Auto Scaling requests a provisioner would send, and checks that a cluster
// runs on EC2 capacity. It never modifies AWS resources.
//
// Commands: plan, check, version.
//
// For detailed usage information, run:
//
//	eksbp --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/eksbp/cmd/eksbp/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
