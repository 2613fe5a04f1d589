package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmartens/splittab/internal/calculator"
	"github.com/jmartens/splittab/internal/models"
	"github.com/jmartens/splittab/internal/storage"
)

// GroupService owns the write path for groups, accounts and transactions.
// It validates requests against the stored group state before handing them
// to the store; the balance engine itself only ever sees validated snapshots.
type GroupService struct {
	store storage.Store
}

// NewGroupService creates a GroupService with the given storage backend.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

// CreateGroup creates a new group.
func (s *GroupService) CreateGroup(ctx context.Context, name, currency string) (*models.Group, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if currency == "" {
		currency = "EUR"
	}

	group := &models.Group{Name: name, CurrencyIdentifier: currency}
	if err := s.store.CreateGroup(ctx, group); err != nil {
		slog.Error("CreateGroup failed", "error", err)
		return nil, fmt.Errorf("create group: %w", err)
	}
	slog.Info("Group created", "group_id", group.ID, "name", group.Name, "currency", group.CurrencyIdentifier)
	return group, nil
}

// GetGroup retrieves a group by ID.
func (s *GroupService) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	return s.store.GetGroup(ctx, groupID)
}

// ListGroups returns all groups.
func (s *GroupService) ListGroups(ctx context.Context) ([]*models.Group, error) {
	return s.store.ListGroups(ctx)
}

// CreateAccount validates and stores a new account. The numeric account id
// is assigned by the store, scoped to the group.
func (s *GroupService) CreateAccount(ctx context.Context, groupID string, account models.Account) (*models.Account, error) {
	if account.Name == "" {
		return nil, ErrEmptyName
	}
	if !account.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAccountType, account.Type)
	}
	if account.Type == models.AccountTypePersonal && len(account.ClearingShares) > 0 {
		return nil, ErrPersonalClearingShares
	}

	existing, err := s.store.ListAccounts(ctx, groupID)
	if err != nil {
		return nil, err
	}
	reference := fmt.Sprintf("account %q clearing_shares", account.Name)
	if err := s.checkShares(existing, account.ClearingShares, reference); err != nil {
		slog.Warn("CreateAccount rejected", "group_id", groupID, "name", account.Name, "error", err)
		return nil, err
	}

	if err := s.store.CreateAccount(ctx, groupID, &account); err != nil {
		slog.Error("CreateAccount failed", "group_id", groupID, "error", err)
		return nil, fmt.Errorf("create account: %w", err)
	}
	slog.Info("Account created",
		"group_id", groupID,
		"account_id", account.ID,
		"type", account.Type,
		"name", account.Name,
	)
	return &account, nil
}

// ListAccounts returns a snapshot of the group's accounts.
func (s *GroupService) ListAccounts(ctx context.Context, groupID string) ([]models.Account, error) {
	return s.store.ListAccounts(ctx, groupID)
}

// CreateTransaction validates and stores a new transaction.
func (s *GroupService) CreateTransaction(ctx context.Context, groupID string, tx models.Transaction) (*models.Transaction, error) {
	if err := s.validateTransaction(ctx, groupID, &tx); err != nil {
		slog.Warn("CreateTransaction rejected", "group_id", groupID, "error", err)
		return nil, err
	}

	if err := s.store.CreateTransaction(ctx, groupID, &tx); err != nil {
		slog.Error("CreateTransaction failed", "group_id", groupID, "error", err)
		return nil, fmt.Errorf("create transaction: %w", err)
	}
	slog.Info("Transaction created",
		"group_id", groupID,
		"transaction_id", tx.ID,
		"type", tx.Type,
		"value", tx.Value,
		"positions", len(tx.Positions),
	)
	return &tx, nil
}

// ListTransactions returns a snapshot of the group's transactions.
func (s *GroupService) ListTransactions(ctx context.Context, groupID string) ([]models.Transaction, error) {
	return s.store.ListTransactions(ctx, groupID)
}

// validateTransaction checks the transaction against the stored accounts and
// fills in defaults. A conversion rate of zero means "group currency".
func (s *GroupService) validateTransaction(ctx context.Context, groupID string, tx *models.Transaction) error {
	if !tx.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTransactionType, tx.Type)
	}
	if tx.Value <= 0 {
		return ErrNonPositiveValue
	}
	if tx.CurrencyConversionRate == 0 {
		tx.CurrencyConversionRate = 1
	}

	accounts, err := s.store.ListAccounts(ctx, groupID)
	if err != nil {
		return err
	}
	if err := s.checkShares(accounts, tx.CreditorShares, fmt.Sprintf("transaction %q creditor_shares", tx.Name)); err != nil {
		return err
	}
	if err := s.checkShares(accounts, tx.DebitorShares, fmt.Sprintf("transaction %q debitor_shares", tx.Name)); err != nil {
		return err
	}
	for _, pos := range tx.Positions {
		if pos.Price < 0 {
			return fmt.Errorf("position %q: price must not be negative", pos.Name)
		}
		if pos.CommunistShares < 0 {
			return fmt.Errorf("position %q: %w", pos.Name, ErrNegativeWeight)
		}
		if err := s.checkShares(accounts, pos.Usages, fmt.Sprintf("position %q usages", pos.Name)); err != nil {
			return err
		}
	}
	return nil
}

// checkShares rejects negative weights and references to unknown accounts.
func (s *GroupService) checkShares(accounts []models.Account, shares models.Shares, reference string) error {
	known := make(map[models.AccountID]bool, len(accounts))
	for _, account := range accounts {
		known[account.ID] = true
	}
	for id, weight := range shares {
		if weight < 0 {
			return fmt.Errorf("%s: %w", reference, ErrNegativeWeight)
		}
		if !known[id] {
			return &calculator.ConsistencyError{AccountID: id, Reference: reference}
		}
	}
	return nil
}
