// Package batch provides the Batch aggregate: the finalized delivery batch
// produced by committing a draft.
//
// The package includes:
//   - Batch: The immutable commit result with vehicle, driver, slot
//     placements, and the optimized route
//   - SlotPlacement: One persisted slot assignment
//   - Priority: The delivery urgency enum
//
// Key business rules:
//   - A batch always links back to the draft it was converted from
//   - Slot keys within a batch are unique
//   - A batch may be committed without a driver or an optimized route
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package batch
