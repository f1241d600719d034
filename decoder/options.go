package decoder

import "context"

// DecodeOptions configures a decode pass.
type DecodeOptions struct {
	// Context allows the caller to cancel a long decode; checked between
	// pipeline stages (charset resolution, line reading, tree build,
	// semantic pass) per spec.md §5.
	Context context.Context

	// Strict, when true, promotes version-conformance warnings
	// (spec.md §4.4.6) from Diagnostics warnings into errors, giving
	// callers an opt-in to treat "could not be losslessly roundtripped"
	// deviations as failures rather than silent warnings.
	Strict bool
}

// DefaultOptions returns the default, lenient decode options.
func DefaultOptions() *DecodeOptions {
	return &DecodeOptions{
		Context: context.Background(),
		Strict:  false,
	}
}
