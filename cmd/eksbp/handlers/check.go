package handlers

import (
	"context"
	"errors"
	"fmt"

	awsplatform "github.com/imamik/eksbp/internal/platform/aws"
	"github.com/imamik/eksbp/internal/provider"
)

// DefaultCheckSource is the label reported when a checked cluster has no EC2 capacity.
const DefaultCheckSource = "check"

// CheckOptions configures the check command.
type CheckOptions struct {
	ClusterName string
	Region      string
	Profile     string
	Endpoint    string
	Source      string
	Verbose     bool
}

// ClusterInspector describes live clusters - matches awsplatform.Client.
type ClusterInspector interface {
	DescribeClusterInfo(ctx context.Context, clusterName string) (*provider.ClusterInfo, error)
}

// newInspector creates the read-only AWS client. Replaced in tests.
var newInspector = func(ctx context.Context, opts awsplatform.Options) (ClusterInspector, error) {
	return awsplatform.NewClient(ctx, opts)
}

// Check describes a live cluster and verifies it is backed by EC2 capacity.
func Check(ctx context.Context, opts CheckOptions) error {
	if opts.ClusterName == "" {
		return errors.New("a cluster name is required")
	}
	if opts.Source == "" {
		opts.Source = DefaultCheckSource
	}

	log, flush, err := newLogger(opts.Verbose)
	if err != nil {
		return err
	}
	defer flush()

	inspector, err := newInspector(ctx, awsplatform.Options{
		Region:   opts.Region,
		Profile:  opts.Profile,
		Endpoint: opts.Endpoint,
		Logger:   log.WithName("aws"),
	})
	if err != nil {
		return fmt.Errorf("failed to create AWS client: %w", err)
	}

	info, err := inspector.DescribeClusterInfo(ctx, opts.ClusterName)
	if err != nil {
		return err
	}

	capacity, err := provider.AssertEC2NodeGroup(info, opts.Source)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(stdout, renderCheck(opts.ClusterName, info, capacity))
	return err
}
