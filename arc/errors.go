package arc

import "errors"

var (
	// ErrCollapsedRadius indicates a radius that is non-positive, NaN, or
	// below the collapsed-arc threshold.
	ErrCollapsedRadius = errors.New("arc: radius is collapsed or invalid")
	// ErrCollapsedEnds indicates a line (infinite radius) whose endpoints
	// coincide within the collapsed-arc threshold.
	ErrCollapsedEnds = errors.New("arc: endpoints are collapsed")
	// ErrDisconnected indicates two arcs expected to share an endpoint do not.
	ErrDisconnected = errors.New("arc: endpoints do not connect")
)
