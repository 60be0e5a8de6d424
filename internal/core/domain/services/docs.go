// Package services contains domain services coordinating operations across
// aggregates in the batch planning domain.
//
// The package includes:
//   - DraftAssembler: Converts between live sessions and persisted drafts
//   - BatchAssembler: Packages the commit payload into the Batch aggregate
//   - ReviewChecklist: Evaluates the session for the final review screen
//
// Domain services encapsulate logic that spans the session aggregate and the
// persistence aggregates without belonging to either, keeping the aggregates
// free of cross-aggregate packaging concerns.
package services
