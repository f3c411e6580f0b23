// Package bigraded implements the combinatorial core of a two-parameter
// persistent homology preprocessor: a bifiltered simplicial complex
// engine that builds a simplex tree for a Vietoris-Rips-style
// bifiltration from pointwise birth times and pairwise distances, orders
// its simplices by a reverse-lexicographic multi-grade comparator, and
// emits the boundary, direct-sum merge/split, and per-multigrade
// index-column matrices that downstream multi-graded Betti computations
// consume.
//
// Everything is organized under one subpackage per component:
//
//	grade/        — the discrete bigrade value type
//	simplextree/  — the arena-backed simplex tree and its Vietoris-Rips build
//	views/        — dimension-ordered (Low/Mid/High) node sets
//	matrix/       — MapMatrix / MapMatrixPerm / IndexMatrix output types
//	emit/         — the boundary, merge/split and index matrix emitters
//	bifiltration/ — the single Complex type wiring the above together
//	offsetgrade/  — grade-normalization collaborator (external, unwired)
//	xisupport/    — support-point matrix collaborator (external, unwired)
//
// The core is single-threaded during construction and read-only
// thereafter: once a Complex is built, its query and emitter methods may
// be called concurrently from multiple goroutines without further
// synchronization.
package bigraded
