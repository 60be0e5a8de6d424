// Package session provides the WorkflowSession aggregate root: the five-step
// batch planning state machine.
//
// The package includes:
//   - Step: The ordered workflow step enum with validation
//   - WorkflowSession: The aggregate accumulating every user choice, composing
//     the working set, slot board, and route stage
//   - AIOptimizationOptions: The optimizer toggles with partial-update merge
//   - CanProceed: The pure per-step gate used by NextStep
//
// Key business rules:
//   - NextStep is allowed only when the current step's gate is satisfied
//   - GoToStep bypasses the gate and is reserved for draft resumption
//   - Removing or clearing working-set stops drops their slot assignments in
//     the same logical transaction
//   - Async operations (optimize, save draft, confirm) carry a pending flag
//     and refuse re-invocation while in flight
//   - Failed external calls leave the session untouched
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package session
