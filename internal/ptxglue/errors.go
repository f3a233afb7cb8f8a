package ptxglue

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedPhase is returned for phases other than PhasePTX.
	ErrUnsupportedPhase = errors.New("unsupported compilation phase")

	// ErrEmptyWhitelist is returned when no kernel was whitelisted.
	ErrEmptyWhitelist = errors.New("no kernels whitelisted")

	// ErrMissingKernel is returned when a whitelisted kernel is absent from
	// the compiled PTX.
	ErrMissingKernel = errors.New("whitelisted kernel not found in PTX")

	// ErrMalformedPTX is returned when PTX text cannot be split into entries.
	ErrMalformedPTX = errors.New("malformed PTX")
)

// CompileError reports a failed build step together with any tool output.
type CompileError struct {
	// Stage is the step that failed: "compile", "filter" or "write".
	Stage string

	// Kernel is the kernel involved, if any.
	Kernel string

	// Output is the combined stdout/stderr of the external compiler.
	Output string

	Err error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	msg := fmt.Sprintf("ptxglue %s", e.Stage)
	if e.Kernel != "" {
		msg += fmt.Sprintf(" (kernel %s)", e.Kernel)
	}
	msg += ": " + e.Err.Error()
	if e.Output != "" {
		msg += "\n" + e.Output
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *CompileError) Unwrap() error {
	return e.Err
}
