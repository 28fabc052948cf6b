package orchestration

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-logr/logr"

	"github.com/imamik/eksbp/internal/config"
	"github.com/imamik/eksbp/internal/provider"
	"github.com/imamik/eksbp/internal/provisioning"
	"github.com/imamik/eksbp/internal/provisioning/controlplane"
	"github.com/imamik/eksbp/internal/provisioning/nodegroup"
)

var _ provider.ClusterProvisioner = (*GenericClusterProvider)(nil)

// GenericClusterProvider plans a cluster from merged provider options.
type GenericClusterProvider struct {
	observer provisioning.Observer
	phases   []provisioning.Phase

	mu       sync.Mutex
	lastPlan *provisioning.State
}

// NewGenericClusterProvider creates a base provider. A nil observer discards all events.
func NewGenericClusterProvider(observer provisioning.Observer) *GenericClusterProvider {
	if observer == nil {
		observer = provisioning.NewLogObserver(logr.Discard())
	}
	return &GenericClusterProvider{
		observer: observer,
		phases: []provisioning.Phase{
			provisioning.NewValidationPhase(),
			controlplane.NewProvisioner(),
			nodegroup.NewManagedProvisioner(),
			nodegroup.NewAutoscalingProvisioner(),
		},
	}
}

// Provision validates opts, renders the plan and returns the planned cluster.
// opts is only read. A cluster without a name is named after its first managed node group.
func (p *GenericClusterProvider) Provision(ctx context.Context, opts *config.GenericProviderOptions) (*provider.ClusterInfo, error) {
	if opts == nil {
		return nil, errors.New("provider options are required")
	}

	resolved, derived := withClusterName(opts)
	observer := p.observer.WithFields(map[string]string{"cluster": resolved.ResolvedClusterName()})
	if derived {
		provisioning.LogValidationWarning(observer, fmt.Sprintf("no cluster name set, using node group id %q", resolved.ClusterName))
	}
	pCtx := provisioning.NewContext(ctx, resolved, observer)

	if err := provisioning.NewPipeline(p.phases...).Run(pCtx); err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.lastPlan = pCtx.State
	p.mu.Unlock()

	return pCtx.State.ClusterInfo(), nil
}

// withClusterName names an unnamed cluster after its first managed node group.
// opts is returned as is when a name is set or there is nothing to derive it from.
func withClusterName(opts *config.GenericProviderOptions) (*config.GenericProviderOptions, bool) {
	if opts.ResolvedClusterName() != "" || len(opts.ManagedNodeGroups) == 0 || opts.ManagedNodeGroups[0].ID == "" {
		return opts, false
	}
	named := *opts
	named.ClusterName = opts.ManagedNodeGroups[0].ID
	return &named, true
}

// LastPlan returns the plan of the last successful Provision, or nil.
func (p *GenericClusterProvider) LastPlan() *provisioning.State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastPlan
}
