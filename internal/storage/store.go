// Package storage provides abstractions for group data storage.
package storage

import (
	"context"
	"errors"

	"github.com/jmartens/splittab/internal/models"
)

// ErrGroupNotFound is returned when a group id does not exist.
var ErrGroupNotFound = errors.New("group not found")

// Store defines the interface for group data storage. This abstraction keeps
// the service layer independent of the backend; the engine itself never
// touches storage, it only sees snapshots.
type Store interface {
	// CreateGroup persists a new group. The group.ID and CreatedAt fields
	// are populated by the store.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group by its ID.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroups returns all groups, ordered by creation time.
	ListGroups(ctx context.Context) ([]*models.Group, error)

	// CreateAccount adds an account to a group. The account.ID field is
	// assigned by the store, scoped to the group.
	CreateAccount(ctx context.Context, groupID string, account *models.Account) error

	// ListAccounts returns a snapshot of all accounts of a group, ordered
	// by account id.
	ListAccounts(ctx context.Context, groupID string) ([]models.Account, error)

	// CreateTransaction adds a transaction to a group. The transaction.ID
	// field is populated by the store.
	CreateTransaction(ctx context.Context, groupID string, tx *models.Transaction) error

	// ListTransactions returns a snapshot of all transactions of a group,
	// in insertion order.
	ListTransactions(ctx context.Context, groupID string) ([]models.Transaction, error)

	// Close releases any resources held by the store.
	Close() error
}
