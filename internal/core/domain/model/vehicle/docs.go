// Package vehicle provides domain entities for mapping tiered vehicle
// capacity to delivery stops.
//
// The package includes:
//   - Tier: A named capacity partition of a vehicle with a fixed slot count
//   - SlotKey: The "<tier_name>-<slot_number>" address of one slot
//   - SlotBoard: Manual and automatic placement of facilities into slots,
//     with derived utilization figures
//
// Key business rules:
//   - Slots are addressed by tier name plus a 1-based slot number
//   - A facility occupies at most one slot; reassigning moves it
//   - Automatic fill is deterministic first-fit in tier and slot order,
//     consuming unassigned facilities in working-set order
//   - The board never references a facility outside the working set
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package vehicle
