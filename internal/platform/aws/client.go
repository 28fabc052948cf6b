package aws

import (
	"context"
	"errors"
	"fmt"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	"github.com/aws/aws-sdk-go-v2/service/eks"
	"github.com/go-logr/logr"

	"github.com/imamik/eksbp/internal/config"
	"github.com/imamik/eksbp/internal/util/retry"
)

// EKSAPI is the subset of the EKS API used by Client.
type EKSAPI interface {
	eks.ListNodegroupsAPIClient
	DescribeCluster(ctx context.Context, params *eks.DescribeClusterInput, optFns ...func(*eks.Options)) (*eks.DescribeClusterOutput, error)
	DescribeNodegroup(ctx context.Context, params *eks.DescribeNodegroupInput, optFns ...func(*eks.Options)) (*eks.DescribeNodegroupOutput, error)
}

// AutoScalingAPI is the subset of the Auto Scaling API used by Client.
type AutoScalingAPI interface {
	autoscaling.DescribeAutoScalingGroupsAPIClient
}

// Options selects the account, region and endpoint to talk to.
// Empty fields fall back to the shared AWS configuration.
type Options struct {
	Region   string
	Profile  string
	Endpoint string // e.g. a LocalStack URL
	Logger   logr.Logger
}

// Client describes EKS clusters. It never modifies any resource.
type Client struct {
	eks      EKSAPI
	asg      AutoScalingAPI
	timeouts *config.Timeouts
	log      logr.Logger
}

// NewClient creates a client from the default AWS credential chain.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}
	if opts.Profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(opts.Profile))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	if cfg.Region == "" {
		return nil, errors.New("no AWS region configured, use --region or AWS_REGION")
	}

	eksClient := eks.NewFromConfig(cfg, func(o *eks.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = sdkaws.String(opts.Endpoint)
		}
	})
	asgClient := autoscaling.NewFromConfig(cfg, func(o *autoscaling.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = sdkaws.String(opts.Endpoint)
		}
	})

	return NewClientWithAPIs(eksClient, asgClient, config.LoadTimeouts(), opts.Logger), nil
}

// NewClientWithAPIs creates a client on top of existing API implementations.
func NewClientWithAPIs(eksAPI EKSAPI, asgAPI AutoScalingAPI, timeouts *config.Timeouts, log logr.Logger) *Client {
	if timeouts == nil {
		timeouts = config.LoadTimeouts()
	}
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	return &Client{
		eks:      eksAPI,
		asg:      asgAPI,
		timeouts: timeouts,
		log:      log,
	}
}

// call runs op with the client's retry policy. Only throttling is retried.
func (c *Client) call(ctx context.Context, operation string, op func(context.Context) error) error {
	attempt := 0
	return retry.Do(ctx, func(ctx context.Context) error {
		attempt++
		if attempt > 1 {
			c.log.V(1).Info("retrying throttled call", "operation", operation, "attempt", attempt)
		}
		return op(ctx)
	},
		retry.WithMaxAttempts(c.timeouts.RetryMaxAttempts),
		retry.WithInitialDelay(c.timeouts.RetryInitialDelay),
		retry.WithRetryable(IsThrottling),
	)
}
