// Package prebatch provides the PreBatch aggregate: a batch planning session
// persisted as a resumable draft.
//
// The package includes:
//   - PreBatch: The draft aggregate with source selection, schedule fields,
//     and the ordered stops captured at save time
//   - Status: The Draft/Converted/Expired lifecycle state machine
//
// Key business rules:
//   - Drafts are saved at the schedule step and resumed at their saved step
//   - Only drafts in the Draft status can be converted or expired
//   - Converted and Expired are final states
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package prebatch
