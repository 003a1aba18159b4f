package voronoi

import "errors"

// ErrTessellationFailed indicates the tessellator could not produce a valid
// diagram from its input, either because a precondition does not hold
// (unsorted or coincident sites, sites outside the domain) or because of
// numerical breakdown during cell construction. The caller may retry with a
// different seed.
var ErrTessellationFailed = errors.New("voronoi: tessellation failed")
