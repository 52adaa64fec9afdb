// Package kernel provides the shared domain primitives of the dispatch system.
// It implements the fundamental building blocks used throughout the domain model:
//
//   - UUID: a value object for unique identifiers with validation and comparison
//   - Location: a geographic coordinate with great-circle distance calculation
//   - ServiceArea: a polygon of locations with point-in-polygon containment
//   - TimeWindow: a validated start/end interval with containment and overlap tests
//   - VehicleType: the enumeration of vehicle classes agents operate
//
// These primitives enforce domain invariants at construction time and are
// immutable once built, making them safe for concurrent use. They carry no
// behavior beyond validation and small geometry/arithmetic.
package kernel
