package calculator

import (
	"fmt"

	"github.com/jmartens/splittab/internal/models"
)

// CalculateAccountBalances computes the derived balance of every account
// from a snapshot of the group's accounts and transactions. The result is a
// pure function of its inputs and is rebuilt in full on every call.
//
// Algorithm:
//   - Phase 1: fold every non-deleted transaction's effect into per-account
//     running totals. Creditor contributions increase balance and total_paid;
//     debitor contributions (positions + common debitors) decrease balance
//     and increase total_consumed by the same magnitude
//   - Phase 2: walk the clearing accounts in topological order and split
//     each one's balance onto its targets, recording the moved amounts in
//     the account's clearing_resolution
//
// The second return value lists clearing accounts stuck in a reference
// cycle; their balance stays un-redistributed.
//
// The only error returned is a *ConsistencyError for a share map that
// references an account id missing from accounts.
func CalculateAccountBalances(accounts []models.Account, transactions []models.Transaction) (models.AccountBalanceMap, []models.AccountID, error) {
	accountsByID := make(map[models.AccountID]models.Account, len(accounts))
	for _, account := range accounts {
		accountsByID[account.ID] = account
	}
	if err := checkConsistency(accountsByID, transactions); err != nil {
		return nil, nil, err
	}

	balances := make(models.AccountBalanceMap, len(accounts))
	for _, account := range accounts {
		balances[account.ID] = models.AccountBalance{}
	}

	// Phase 1: fold transaction effects.
	for _, tx := range transactions {
		if tx.Deleted {
			continue
		}
		for id, effect := range CalculateTransactionEffect(tx) {
			balance := balances[id]
			balance.Balance += effect.CommonCreditors
			balance.TotalPaid += effect.CommonCreditors
			debit := effect.CommonDebitors + effect.Positions
			balance.Balance -= debit
			balance.TotalConsumed += debit
			balance.BeforeClearing = balance.Balance
			balances[id] = balance
		}
	}

	// Phase 2: redistribute clearing accounts in dependency order.
	order, unresolved := ResolveClearingOrder(accountsByID)
	for _, clearingID := range order {
		account := accountsByID[clearingID]
		balance := balances[clearingID]
		toSplit := balance.Balance
		balance.Balance = 0
		if balance.ClearingResolution == nil {
			balance.ClearingResolution = make(models.Shares, len(account.ClearingShares))
		}

		split := SplitAmount(toSplit, account.ClearingShares)
		for _, targetID := range sortedAccountIDs(split) {
			share := split[targetID]
			target := balances[targetID]
			target.Balance += share
			if share > 0 {
				target.TotalPaid += share
			} else if share < 0 {
				target.TotalConsumed += -share
			}
			balances[targetID] = target

			// Summed, not assigned: a diamond-shaped graph may route the
			// same target through this node more than once.
			balance.ClearingResolution[targetID] += share
		}
		balances[clearingID] = balance
	}

	return balances, unresolved, nil
}

// checkConsistency verifies that every account id referenced by a clearing
// share, creditor/debitor share or position usage exists. Deleted
// transactions are skipped along with their shares; they contribute nothing.
func checkConsistency(accounts map[models.AccountID]models.Account, transactions []models.Transaction) error {
	for _, account := range accounts {
		ref := fmt.Sprintf("account %d clearing_shares", account.ID)
		if err := checkShares(accounts, account.ClearingShares, ref); err != nil {
			return err
		}
	}
	for _, tx := range transactions {
		if tx.Deleted {
			continue
		}
		if err := checkShares(accounts, tx.CreditorShares, fmt.Sprintf("transaction %q creditor_shares", tx.ID)); err != nil {
			return err
		}
		if err := checkShares(accounts, tx.DebitorShares, fmt.Sprintf("transaction %q debitor_shares", tx.ID)); err != nil {
			return err
		}
		for _, pos := range tx.Positions {
			if pos.Deleted {
				continue
			}
			if err := checkShares(accounts, pos.Usages, fmt.Sprintf("transaction %q position %q usages", tx.ID, pos.ID)); err != nil {
				return err
			}
		}
	}
	return nil
}
