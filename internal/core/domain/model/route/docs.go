// Package route provides domain entities for the route optimization stage of
// batch planning.
//
// The package includes:
//   - RoutePoint: One facility visit with its location and visiting position
//   - RouteStage: The current optimization result with distance and duration
//
// Key business rules:
//   - An empty point list means the batch is not optimized
//   - Results apply atomically; a failed optimization never alters prior state
//   - Re-optimization fully supersedes the previous result
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package route
