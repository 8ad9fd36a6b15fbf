package geom

import "errors"

var (
	ErrTooFewPoints = errors.New("bound needs at least 2 points")
	ErrNoRectangles = errors.New("union needs at least 1 rectangle")
	ErrZeroVector   = errors.New("cannot normalize a zero-length vector")
)
