package service

import (
	"context"
	"log/slog"

	"github.com/jmartens/splittab/internal/calculator"
	"github.com/jmartens/splittab/internal/models"
	"github.com/jmartens/splittab/internal/storage"
)

// BalanceService exposes the balance engine over stored group snapshots.
// Every call recomputes from scratch; there is no cached derived state that
// could drift from the transaction history.
type BalanceService struct {
	store storage.Store
}

// NewBalanceService creates a BalanceService with the given storage backend.
func NewBalanceService(store storage.Store) *BalanceService {
	return &BalanceService{store: store}
}

// Balances computes the current balance of every account in the group.
// The second return value lists clearing accounts that could not be resolved
// because their redistribution graph contains a cycle.
func (s *BalanceService) Balances(ctx context.Context, groupID string) (models.AccountBalanceMap, []models.AccountID, error) {
	accounts, transactions, err := s.snapshot(ctx, groupID)
	if err != nil {
		return nil, nil, err
	}

	balances, unresolved, err := calculator.CalculateAccountBalances(accounts, transactions)
	if err != nil {
		slog.Error("Balance computation failed", "group_id", groupID, "error", err)
		return nil, nil, err
	}
	balanceComputations.Inc()
	if len(unresolved) > 0 {
		unresolvedClearingAccounts.Add(float64(len(unresolved)))
		slog.Warn("Clearing accounts left unresolved",
			"group_id", groupID,
			"accounts", unresolved,
		)
	}
	slog.Debug("Balances computed",
		"group_id", groupID,
		"accounts", len(accounts),
		"transactions", len(transactions),
	)
	return balances, unresolved, nil
}

// Settlement computes the settlement plan for the group's current balances.
func (s *BalanceService) Settlement(ctx context.Context, groupID string) ([]models.SettlementEntry, error) {
	balances, _, err := s.Balances(ctx, groupID)
	if err != nil {
		return nil, err
	}
	entries := calculator.CalculateSettlement(balances)
	settlementPlanEntries.Observe(float64(len(entries)))
	slog.Info("Settlement computed", "group_id", groupID, "entries", len(entries))
	return entries, nil
}

// PreviewTransaction computes the per-account effect of a transaction
// without storing it, for UI previews while a purchase is being edited.
func (s *BalanceService) PreviewTransaction(ctx context.Context, groupID string, tx models.Transaction) (calculator.TransactionEffect, error) {
	accounts, err := s.store.ListAccounts(ctx, groupID)
	if err != nil {
		return nil, err
	}
	known := make(map[models.AccountID]models.Account, len(accounts))
	for _, account := range accounts {
		known[account.ID] = account
	}
	for id := range tx.CreditorShares {
		if _, ok := known[id]; !ok {
			return nil, &calculator.ConsistencyError{AccountID: id, Reference: "preview creditor_shares"}
		}
	}
	for id := range tx.DebitorShares {
		if _, ok := known[id]; !ok {
			return nil, &calculator.ConsistencyError{AccountID: id, Reference: "preview debitor_shares"}
		}
	}
	for _, pos := range tx.Positions {
		for id := range pos.Usages {
			if _, ok := known[id]; !ok {
				return nil, &calculator.ConsistencyError{AccountID: id, Reference: "preview position usages"}
			}
		}
	}
	if tx.CurrencyConversionRate == 0 {
		tx.CurrencyConversionRate = 1
	}
	return calculator.CalculateTransactionEffect(tx), nil
}

// ConvertShares re-expresses a share map in a different split mode,
// preserving each participant's allocation of totalValue.
func (s *BalanceService) ConvertShares(from, to calculator.SplitMode, shares models.Shares, totalValue float64) (calculator.SplitMode, models.Shares, error) {
	return calculator.ConvertShares(from, to, shares, totalValue)
}

// snapshot loads the immutable inputs of a balance computation.
func (s *BalanceService) snapshot(ctx context.Context, groupID string) ([]models.Account, []models.Transaction, error) {
	accounts, err := s.store.ListAccounts(ctx, groupID)
	if err != nil {
		return nil, nil, err
	}
	transactions, err := s.store.ListTransactions(ctx, groupID)
	if err != nil {
		return nil, nil, err
	}
	return accounts, transactions, nil
}
