// Package memory provides an in-memory implementation of storage.Store.
// Balances are always derived from the raw accounts and transactions, so the
// store only has to hold the group snapshots the engine consumes.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jmartens/splittab/internal/models"
	"github.com/jmartens/splittab/internal/storage"
)

// Ensure Store implements storage.Store.
var _ storage.Store = (*Store)(nil)

// groupData holds one group's state. Account ids are numeric and allocated
// per group from nextAccountID.
type groupData struct {
	group         models.Group
	accounts      map[models.AccountID]models.Account
	transactions  []models.Transaction
	nextAccountID models.AccountID
}

// Store is an in-memory implementation of storage.Store, guarded by an
// RWMutex for concurrent reads and writes.
type Store struct {
	mu     sync.RWMutex
	groups map[string]*groupData
}

// New constructs an empty in-memory store.
func New() *Store {
	return &Store{groups: make(map[string]*groupData)}
}

// Close implements storage.Store; there is nothing to release.
func (s *Store) Close() error { return nil }

// CreateGroup persists a new group and assigns its ID and CreatedAt.
func (s *Store) CreateGroup(_ context.Context, group *models.Group) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	if group.CreatedAt == 0 {
		group.CreatedAt = time.Now().Unix()
	}
	s.groups[group.ID] = &groupData{
		group:         *group,
		accounts:      make(map[models.AccountID]models.Account),
		nextAccountID: 1,
	}
	return nil
}

// GetGroup retrieves a group by its ID.
func (s *Store) GetGroup(_ context.Context, groupID string) (*models.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.groups[groupID]
	if !ok {
		return nil, storage.ErrGroupNotFound
	}
	group := data.group
	return &group, nil
}

// ListGroups returns all groups ordered by creation time, id as tie-break.
func (s *Store) ListGroups(_ context.Context) ([]*models.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Group, 0, len(s.groups))
	for _, data := range s.groups {
		group := data.group
		out = append(out, &group)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return out[i].CreatedAt < out[j].CreatedAt
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// CreateAccount adds an account to a group and assigns its group-scoped id.
func (s *Store) CreateAccount(_ context.Context, groupID string, account *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.groups[groupID]
	if !ok {
		return storage.ErrGroupNotFound
	}
	account.ID = data.nextAccountID
	data.nextAccountID++
	if account.LastChanged == 0 {
		account.LastChanged = time.Now().Unix()
	}

	stored := *account
	stored.ClearingShares = account.ClearingShares.Clone()
	data.accounts[stored.ID] = stored
	return nil
}

// ListAccounts returns a snapshot of a group's accounts ordered by id.
func (s *Store) ListAccounts(_ context.Context, groupID string) ([]models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.groups[groupID]
	if !ok {
		return nil, storage.ErrGroupNotFound
	}
	out := make([]models.Account, 0, len(data.accounts))
	for _, account := range data.accounts {
		account.ClearingShares = account.ClearingShares.Clone()
		out = append(out, account)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// CreateTransaction adds a transaction to a group and assigns ids to it and
// its positions.
func (s *Store) CreateTransaction(_ context.Context, groupID string, tx *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.groups[groupID]
	if !ok {
		return storage.ErrGroupNotFound
	}
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	if tx.LastChanged == 0 {
		tx.LastChanged = time.Now().Unix()
	}
	for i := range tx.Positions {
		if tx.Positions[i].ID == "" {
			tx.Positions[i].ID = uuid.New().String()
		}
	}

	data.transactions = append(data.transactions, cloneTransaction(*tx))
	return nil
}

// ListTransactions returns a snapshot of a group's transactions in insertion
// order.
func (s *Store) ListTransactions(_ context.Context, groupID string) ([]models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.groups[groupID]
	if !ok {
		return nil, storage.ErrGroupNotFound
	}
	out := make([]models.Transaction, 0, len(data.transactions))
	for _, tx := range data.transactions {
		out = append(out, cloneTransaction(tx))
	}
	return out, nil
}

// cloneTransaction deep-copies the share maps and positions so snapshots
// handed to callers never alias stored state.
func cloneTransaction(tx models.Transaction) models.Transaction {
	tx.CreditorShares = tx.CreditorShares.Clone()
	tx.DebitorShares = tx.DebitorShares.Clone()
	if tx.Positions != nil {
		positions := make([]models.TransactionPosition, len(tx.Positions))
		for i, pos := range tx.Positions {
			pos.Usages = pos.Usages.Clone()
			positions[i] = pos
		}
		tx.Positions = positions
	}
	return tx
}
