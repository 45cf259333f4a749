package solvers

import "errors"

// Domain errors for trajectory integration.
var (
	// ErrNonPositiveStep indicates a step size <= 0 at construction.
	ErrNonPositiveStep = errors.New("solvers: step size must be positive")

	// ErrNonPositiveTolerance indicates a tolerance <= 0 at construction.
	ErrNonPositiveTolerance = errors.New("solvers: tolerance must be positive")

	// ErrEmptyTrajectory indicates interpolation on a path with no samples.
	ErrEmptyTrajectory = errors.New("solvers: empty trajectory")

	// ErrDegenerateVelocity indicates an initial 4-velocity with a
	// vanishing metric norm, which cannot be normalized to a timelike
	// worldline.
	ErrDegenerateVelocity = errors.New("solvers: degenerate initial 4-velocity")
)
