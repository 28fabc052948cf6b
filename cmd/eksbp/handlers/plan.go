// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command definitions
// in the commands package. Handlers are framework-agnostic and can be tested
// independently of the CLI framework.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/imamik/eksbp/internal/config"
	"github.com/imamik/eksbp/internal/orchestration"
	"github.com/imamik/eksbp/internal/provider"
	"github.com/imamik/eksbp/internal/provisioning"
)

// Output formats of the plan command.
const (
	OutputTable = "table"
	OutputYAML  = "yaml"
)

// planSource labels guard failures raised by the plan command.
const planSource = "plan"

// BaseProvider is the base provider the plan command builds on.
// Implemented by orchestration.GenericClusterProvider.
type BaseProvider interface {
	provider.ClusterProvisioner
	LastPlan() *provisioning.State
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadProps loads the provider props from a YAML file.
	loadProps = config.LoadProps

	// newLogger creates the CLI logger.
	newLogger = newZapLogger

	// newBaseProvider creates the dry-run base provider.
	newBaseProvider = func(observer provisioning.Observer) BaseProvider {
		return orchestration.NewGenericClusterProvider(observer)
	}

	// writeMetrics writes the planner metrics to a file.
	writeMetrics = provisioning.WriteMetrics

	// stdout receives the command output.
	stdout io.Writer = os.Stdout
)

// Plan renders the cluster plan for the props in configPath.
//
// The workflow is:
//  1. Load the props file (default: eksbp.yaml)
//  2. Build the single managed node group options over the library defaults
//  3. Validate and render the requests with the dry-run base provider
//  4. Check the planned cluster is backed by EC2 capacity
//  5. Print the plan and optionally write the planner metrics
func Plan(ctx context.Context, configPath, output, metricsFile string, verbose bool) error {
	if output != OutputTable && output != OutputYAML {
		return fmt.Errorf("unsupported output format %q (use %s or %s)", output, OutputTable, OutputYAML)
	}
	if configPath == "" {
		configPath = config.DefaultPropsFilename
	}

	props, err := loadProps(configPath)
	if err != nil {
		return err
	}

	log, flush, err := newLogger(verbose)
	if err != nil {
		return err
	}
	defer flush()

	base := newBaseProvider(provisioning.NewLogObserver(log.WithName("plan")))
	info, err := provider.NewMngClusterProvider(props, base).Provision(ctx)
	if err != nil {
		return err
	}

	capacity, err := provider.AssertEC2NodeGroup(info, planSource)
	if err != nil {
		return err
	}

	plan := base.LastPlan()
	if plan == nil {
		return errors.New("base provider returned no plan")
	}

	if metricsFile != "" {
		if err := writeMetrics(metricsFile); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}

	if output == OutputYAML {
		return renderPlanYAML(stdout, plan, capacity)
	}
	_, err = fmt.Fprint(stdout, renderPlan(plan, capacity))
	return err
}
