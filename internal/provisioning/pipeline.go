package provisioning

import (
	"fmt"
	"time"
)

// Pipeline is an ordered list of phases.
type Pipeline struct {
	Phases []Phase
}

// NewPipeline creates a pipeline that runs phases in the given order.
func NewPipeline(phases ...Phase) *Pipeline {
	return &Pipeline{Phases: phases}
}

// Run executes the pipeline's phases.
func (p *Pipeline) Run(ctx *Context) error {
	return RunPhases(ctx, p.Phases)
}

// RunPhases executes all provisioning phases sequentially and stops at the first failure.
func RunPhases(ctx *Context, phases []Phase) error {
	start := time.Now()
	cluster := ctx.State.ClusterName
	ctx.Observer.Printf("Planning cluster %q with %d phases...", cluster, len(phases))

	for _, phase := range phases {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%s phase not started: %w", phase.Name(), err)
		}

		phaseStart := time.Now()
		LogPhaseStart(ctx.Observer, phase.Name())

		if err := phase.Provision(ctx); err != nil {
			LogPhaseFailed(ctx.Observer, phase.Name(), err)
			recordPhaseMetric(cluster, phase.Name(), "error", time.Since(phaseStart).Seconds())
			return fmt.Errorf("%s phase failed: %w", phase.Name(), err)
		}

		LogPhaseComplete(ctx.Observer, phase.Name(), time.Since(phaseStart))
		recordPhaseMetric(cluster, phase.Name(), "success", time.Since(phaseStart).Seconds())
	}

	ctx.Observer.Printf("Planning completed in %v", time.Since(start).Round(time.Millisecond))
	return nil
}
