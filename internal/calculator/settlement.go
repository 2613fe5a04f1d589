package calculator

import (
	"math"
	"sort"

	"github.com/jmartens/splittab/internal/models"
)

// balanceTolerance treats near-zero balances as settled. The engine works on
// IEEE-754 doubles throughout, so this tolerance is load-bearing: comparisons
// against exactly zero would loop on accumulated rounding noise.
const balanceTolerance = 1e-9

// CalculateSettlement computes a settlement plan: a list of pairwise
// payments that zeroes out every balance. It greedily matches the largest
// creditor with the largest debitor, which zeroes at least one account per
// payment and therefore never needs more than n-1 payments for n unbalanced
// accounts.
//
// Ties are broken by ascending account id so the plan is reproducible. If
// the balances do not sum to zero (corrupt input; folding and redistribution
// both conserve value, so this cannot normally happen) the loop still
// terminates after at most one payment per account, leaving the residual
// imbalance unsettled.
func CalculateSettlement(balances models.AccountBalanceMap) []models.SettlementEntry {
	working := make(map[models.AccountID]float64, len(balances))
	ids := make([]models.AccountID, 0, len(balances))
	for id, balance := range balances {
		working[id] = balance.Balance
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var entries []models.SettlementEntry
	for range ids {
		creditor, debitor, found := pickPair(ids, working)
		if !found {
			break
		}
		amount := math.Min(working[creditor], -working[debitor])
		entries = append(entries, models.SettlementEntry{
			CreditorID:    creditor,
			DebitorID:     debitor,
			PaymentAmount: amount,
		})
		working[creditor] -= amount
		working[debitor] += amount
	}
	return entries
}

// pickPair selects the account with the maximum positive balance and the one
// with the minimum negative balance. found is false once every balance is
// within tolerance of zero on either side.
func pickPair(ids []models.AccountID, working map[models.AccountID]float64) (creditor, debitor models.AccountID, found bool) {
	var maxBalance, minBalance float64
	for _, id := range ids {
		balance := working[id]
		if balance > maxBalance {
			maxBalance = balance
			creditor = id
		}
		if balance < minBalance {
			minBalance = balance
			debitor = id
		}
	}
	if maxBalance <= balanceTolerance || minBalance >= -balanceTolerance {
		return 0, 0, false
	}
	return creditor, debitor, true
}
