package provisioning

import "fmt"

// ValidationPhase implements the Phase interface for pre-flight validation.
type ValidationPhase struct{}

// NewValidationPhase creates a new validation phase.
func NewValidationPhase() *ValidationPhase {
	return &ValidationPhase{}
}

// Name implements the Phase interface.
func (vp *ValidationPhase) Name() string {
	return "validation"
}

// Provision implements the Phase interface. Warnings are reported through
// the observer and never fail the phase.
func (vp *ValidationPhase) Provision(ctx *Context) error {
	for _, warning := range ctx.Options.Warnings() {
		LogValidationWarning(ctx.Observer, warning)
	}

	if err := ctx.Options.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}
