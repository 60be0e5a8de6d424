// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"batching/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PreBatchRepoFactory provides access to the draft repository within a transaction.
	PreBatchRepoFactory interface {
		PreBatchRepository() ports.PreBatchRepository
	}

	// BatchRepoFactory provides access to the batch repository within a transaction.
	BatchRepoFactory interface {
		BatchRepository() ports.BatchRepository
	}

	// PreBatchUoW manages transactions for draft-only operations.
	// Used when commands only touch the prebatch aggregate.
	PreBatchUoW interface {
		TxManager
		PreBatchRepoFactory
	}

	// PreBatchUoWFactory creates new draft unit of work instances.
	PreBatchUoWFactory interface {
		Create() PreBatchUoW
	}

	// UoW manages transactions across both the draft and batch aggregates.
	// Used by the commit path, which converts a draft and inserts the batch
	// in one transaction.
	UoW interface {
		TxManager
		PreBatchRepoFactory
		BatchRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
