// Package kernel provides core domain primitives for the fleet simulation engine.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - Coordinate: A value object for WGS84 geographic points with validation and
//     Haversine distance/bearing math
//   - BoundingBox: A value object for the rectangular operational region with
//     clamping semantics
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use. Construction rejects
// NaN and infinite components, so geographic math over constructed values never
// propagates NaN.
package kernel
