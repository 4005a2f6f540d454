// Package repository defines the persistence interfaces the services depend
// on. The postgres package implements them; service tests substitute mocks.
package repository

import "context"

// Tx is the common shape of a database transaction handle.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
