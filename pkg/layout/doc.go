// Package layout provides register layouts for neutral-atom arrays.
//
// # Overview
//
// A register layout is a fixed set of candidate trap positions on a 2D
// plane, used as a template from which smaller atom registers are carved.
// Each layout variant pairs a pattern generator from [pkg/pattern] with
// physical trap spacings (in µm):
//
//   - [NewRectangularLattice]: a grid with independent x/y spacings
//   - [NewSquareLattice]: a grid with one uniform spacing
//   - [NewTriangularLattice]: a triangular lattice filling a hexagonal area
//   - [NewTriangularRectLattice]: a triangular lattice filling a rectangle
//   - [NewRandomLayout]: rejection-sampled points packed inside a disk
//
// Layouts are immutable: trap coordinates are fixed at construction and
// identified by their index in generation order.
//
// # Registers
//
// A [Register] is a named subset of a layout's traps, each assigned a
// caller-supplied qubit identifier. Carving methods regenerate the
// requested sub-pattern, scale it exactly as the layout was scaled, and
// resolve every point against the stored traps. Resolution uses a k-d
// tree built once per layout with an absolute coordinate tolerance
// ([DefaultTolerance]) rather than implicit float equality.
//
// Capacity checks (a request larger than the layout) fail before any
// resolution is attempted with SHAPE_EXCEEDS_CAPACITY. A point that lands
// on no trap fails with TRAP_RESOLUTION_FAILED; carving methods propagate
// that error and never construct a partial register.
//
// # Serialization
//
// Every variant exposes a [Spec], a tagged parameter set sufficient to
// rebuild it deterministically (random layouts are only statistically
// reproducible unless a seed is recorded). A [Document] bundles the Spec
// with the realized trap coordinates for exact round-trip persistence.
//
// # Concurrency
//
// Layouts and registers are immutable after construction and safe for
// concurrent reads. Random layout construction consumes its random source
// sequentially; sharing one unsynchronized source across goroutines is
// the caller's problem.
package layout
