// Package pattern provides unit-spacing coordinate generators for trap
// lattices.
//
// # Overview
//
// Register layouts are built in two steps: a pattern function produces an
// ordered sequence of unscaled 2D points, and a layout scales those points
// by physical trap spacings (in µm). This package owns the first step.
//
// Three pattern families are provided:
//
//   - [SquareRect]: a rectangular grid of rows × columns points with unit
//     spacing along both axes.
//   - [TriangularHex]: the first n points of a triangular lattice,
//     enumerated center-outward so the covered area fills a roughly
//     hexagonal boundary.
//   - [TriangularRect]: a triangular lattice clipped to a rectangular
//     boundary of rows × columns points.
//
// # Alignment
//
// All generators of the same family emit points of one shared ideal
// lattice, shifted only by whole lattice vectors. This is what makes
// register carving work: the sub-pattern requested for a register is
// regenerated, scaled, and matched point-for-point against the traps of
// the parent layout, so sub-patterns must land exactly on parent lattice
// sites. Patterns are centered on the origin by integer lattice offsets,
// which preserves that property (see the tests for the containment
// guarantees).
//
// # Ordering
//
// Point order is part of the contract: qubit identifiers are assigned in
// generation order when a register is carved. Grid patterns are row-major
// from the lowest row; [TriangularHex] orders points by distance from the
// origin with a deterministic tie-break, so TriangularHex(m) is a prefix
// of TriangularHex(n) for every m ≤ n.
package pattern
