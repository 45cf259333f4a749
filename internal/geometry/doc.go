// Package geometry models the instantaneous state of the system as a
// point on a fixed 4-dimensional pseudo-Riemannian manifold.
//
// A [Manifold] owns one metric tensor and a chain of derived curvature
// quantities (Christoffel symbols, Riemann tensor, Ricci tensor, Ricci
// scalar). The metric is replaced wholesale by [Manifold.UpdateMetric]
// from external density and flow observations; every derived quantity
// is invalidated by the update and recomputed lazily, at most once per
// mutation, on the next access.
//
// A [Detector] thresholds the Ricci scalar magnitude and reports
// curvature blow-up events with an associated characteristic radius.
//
// Manifold instances are not safe for concurrent mutation and read;
// callers needing that must synchronize externally.
package geometry
