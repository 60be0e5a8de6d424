// Package stop provides domain entities for the working set: the ordered list
// of delivery stops chosen for a batch.
//
// The package includes:
//   - Stop: An entity representing one facility to visit, with its requisitions
//     and vehicle load figures
//   - WorkingSet: The ordered collection of stops with derived aggregate totals
//
// Key business rules:
//   - A facility appears at most once in a working set
//   - Sequence values always form a contiguous 0..n-1 permutation of list order
//   - Duplicate adds are silent no-ops to keep bulk operations idempotent
//   - Aggregate totals are derived on read, never stored
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package stop
