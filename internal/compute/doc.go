// Package compute provides interchangeable kernel backends for the
// tensor contractions and reductions used by the curvature pipeline
// and the geodesic integrator.
//
// Backends:
//
//   - scalar: reference nested-loop implementation
//   - parallel: goroutine lanes over disjoint output ranges
//   - cuda: GPU offload for the large kernels (build with -tags cuda)
//
// A backend is chosen at construction time and passed to the
// components that need it:
//
//	backend := compute.AutoSelect()
//	m := geometry.New(geometry.DefaultConstants(), backend)
//
// All backends must agree with the scalar reference within numerical
// tolerance; the conformance suite in this package enforces that.
package compute
