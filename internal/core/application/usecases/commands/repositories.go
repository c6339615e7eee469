// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, and a follow-up read so callers always see the post-write state.
package commands

import (
	"context"

	"shipping/internal/core/ports"
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

	// TransportationRepoFactory provides access to the transportation repository
	// within a transaction.
	TransportationRepoFactory interface {
		TransportationRepository() ports.TransportationRepository
	}

	// AddressRepoFactory provides access to the address repository within a transaction.
	AddressRepoFactory interface {
		AddressRepository() ports.AddressRepository
	}

	// CargoRepoFactory provides access to the cargo repository within a transaction.
	CargoRepoFactory interface {
		CargoRepository() ports.CargoRepository
	}

	// TransportationUoW manages transactions for transportation-only operations.
	TransportationUoW interface {
		TxManager
		TransportationRepoFactory
	}

	// TransportationUoWFactory creates new transportation unit of work instances.
	TransportationUoWFactory interface {
		Create() TransportationUoW
	}

	// AddressUoW manages transactions that create or update an address and
	// link it to its transportation. Both writes happen in one transaction,
	// so a failure between address creation and linking rolls both back.
	AddressUoW interface {
		TxManager
		TransportationRepoFactory
		AddressRepoFactory
	}

	// AddressUoWFactory creates new address unit of work instances.
	AddressUoWFactory interface {
		Create() AddressUoW
	}

	// CargoUoW manages transactions for cargo operations. The transportation
	// repository is included for parent existence and ownership checks.
	CargoUoW interface {
		TxManager
		TransportationRepoFactory
		CargoRepoFactory
	}

	// CargoUoWFactory creates new cargo unit of work instances.
	CargoUoWFactory interface {
		Create() CargoUoW
	}
)
