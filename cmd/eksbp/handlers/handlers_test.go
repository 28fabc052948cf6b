package handlers

import (
	"bytes"
	"testing"

	"github.com/go-logr/logr"
)

// saveAndRestoreFactories swaps every factory back after the test and points
// output at a buffer. Tests using it must not run in parallel.
func saveAndRestoreFactories(t *testing.T) *bytes.Buffer {
	t.Helper()
	origLoadProps := loadProps
	origNewLogger := newLogger
	origNewBaseProvider := newBaseProvider
	origWriteMetrics := writeMetrics
	origNewInspector := newInspector
	origIsInteractiveTTY := isInteractiveTTY
	origStdout := stdout

	t.Cleanup(func() {
		loadProps = origLoadProps
		newLogger = origNewLogger
		newBaseProvider = origNewBaseProvider
		writeMetrics = origWriteMetrics
		newInspector = origNewInspector
		isInteractiveTTY = origIsInteractiveTTY
		stdout = origStdout
	})

	var buf bytes.Buffer
	stdout = &buf
	newLogger = func(bool) (logr.Logger, func(), error) {
		return logr.Discard(), func() {}, nil
	}
	isInteractiveTTY = func() bool { return false }
	return &buf
}
