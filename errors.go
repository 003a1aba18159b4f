package worldgen

import "errors"

var (
	// ErrInvalidDomain indicates non-positive bounds, a negative point
	// count, or relaxation requested over an empty point set. Reported at
	// API entry, before any work is done.
	ErrInvalidDomain = errors.New("worldgen: invalid domain")

	// ErrPointSetExhausted indicates the sampler could not place a point
	// distinct from the ones already placed within its retry budget. Retry
	// with a larger domain or fewer points.
	ErrPointSetExhausted = errors.New("worldgen: point set exhausted")

	// ErrInvariantViolation indicates the dual-graph builder found the
	// tessellation topologically inconsistent: a border edge claimed by
	// more than two regions, or a region edge with no underlying border
	// edge. It is fatal and indicates a bug upstream of the builder.
	ErrInvariantViolation = errors.New("worldgen: dual graph invariant violation")
)
