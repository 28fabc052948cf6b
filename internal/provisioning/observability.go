package provisioning

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/go-logr/logr"
)

// Observer defines the interface for structured observability during provisioning.
type Observer interface {
	// Printf logs a free-form message.
	Printf(format string, v ...any)

	// Event emits a structured event
	Event(event Event)

	// WithFields returns a new Observer with additional context fields
	WithFields(fields map[string]string) Observer
}

// Event represents a structured provisioning event.
type Event struct {
	Type     EventType         // Type of event
	Phase    string            // Phase name (e.g., "control-plane", "managed-node-groups")
	Message  string            // Human-readable message
	Resource string            // Resource name if applicable
	Fields   map[string]string // Additional contextual fields
}

// EventType represents the type of provisioning event.
type EventType string

const (
	// EventPhaseStarted indicates a provisioning phase has started.
	EventPhaseStarted EventType = "phase.started"
	// EventPhaseCompleted indicates a provisioning phase completed successfully.
	EventPhaseCompleted EventType = "phase.completed"
	// EventPhaseFailed indicates a provisioning phase failed.
	EventPhaseFailed EventType = "phase.failed"

	// EventResourcePlanned indicates a resource request was rendered into the plan.
	EventResourcePlanned EventType = "resource.planned"

	// EventValidationWarning indicates a validation warning.
	EventValidationWarning EventType = "validation.warning"
)

// LogObserver implements Observer on top of a logr.Logger.
type LogObserver struct {
	log logr.Logger
}

// NewLogObserver creates an observer that writes events to log.
func NewLogObserver(log logr.Logger) *LogObserver {
	return &LogObserver{log: log}
}

// Printf implements Observer.
func (o *LogObserver) Printf(format string, v ...any) {
	o.log.Info(fmt.Sprintf(format, v...))
}

// Event implements Observer. Failed phases are logged at error level.
func (o *LogObserver) Event(event Event) {
	kv := []any{"event", string(event.Type)}
	if event.Phase != "" {
		kv = append(kv, "phase", event.Phase)
	}
	if event.Resource != "" {
		kv = append(kv, "resource", event.Resource)
	}
	kv = append(kv, keysAndValues(event.Fields)...)

	if event.Type == EventPhaseFailed {
		o.log.Error(errors.New(event.Message), "phase failed", kv...)
		return
	}
	o.log.Info(event.Message, kv...)
}

// WithFields implements Observer.
func (o *LogObserver) WithFields(fields map[string]string) Observer {
	return &LogObserver{log: o.log.WithValues(keysAndValues(fields)...)}
}

// keysAndValues flattens fields in key order so log lines are stable.
func keysAndValues(fields map[string]string) []any {
	kv := make([]any, 0, 2*len(fields))
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		kv = append(kv, k, fields[k])
	}
	return kv
}

// Helper functions for common events

// LogPhaseStart logs a phase start event.
func LogPhaseStart(observer Observer, phase string) {
	observer.Event(Event{
		Type:    EventPhaseStarted,
		Phase:   phase,
		Message: "starting",
	})
}

// LogPhaseComplete logs a phase completion event.
func LogPhaseComplete(observer Observer, phase string, duration time.Duration) {
	observer.Event(Event{
		Type:    EventPhaseCompleted,
		Phase:   phase,
		Message: fmt.Sprintf("completed in %v", duration.Round(time.Millisecond)),
	})
}

// LogPhaseFailed logs a phase failure event.
func LogPhaseFailed(observer Observer, phase string, err error) {
	observer.Event(Event{
		Type:    EventPhaseFailed,
		Phase:   phase,
		Message: fmt.Sprintf("failed: %v", err),
	})
}

// LogResourcePlanned logs that a create request was rendered for a resource.
func LogResourcePlanned(observer Observer, phase, resourceType, resourceName string) {
	observer.Event(Event{
		Type:     EventResourcePlanned,
		Phase:    phase,
		Resource: resourceName,
		Message:  fmt.Sprintf("%s planned", resourceType),
		Fields: map[string]string{
			"type": resourceType,
		},
	})
}

// LogValidationWarning logs a non-fatal configuration finding.
func LogValidationWarning(observer Observer, message string) {
	observer.Event(Event{
		Type:    EventValidationWarning,
		Phase:   "validation",
		Message: message,
	})
}
