// Package solvers integrates trajectories through the manifold using
// 4th-order Runge-Kutta.
//
// Two interchangeable [Strategy] implementations share one rk4Step
// primitive: [FixedRK4] advances with a constant step clamped at the
// end of the range, and [AdaptiveRK4] controls the step with a
// step-doubling error estimate. [GeodesicSolver] wraps either strategy
// with the geodesic equation of a [geometry.Manifold], normalizing the
// initial 4-velocity to a timelike worldline.
//
// The adaptive strategy has no internal iteration bound: a tolerance
// unreachable within the configured step bounds loops indefinitely.
// Callers bound wall-clock time through the parameter range and the
// min/max step configuration.
package solvers
