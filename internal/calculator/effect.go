package calculator

import "github.com/jmartens/splittab/internal/models"

// AccountEffect captures one account's share of a single transaction.
type AccountEffect struct {
	// Positions is what the account owes for named position usages.
	Positions float64 `json:"positions"`

	// CommonCreditors is the account's share of the paid value.
	CommonCreditors float64 `json:"common_creditors"`

	// CommonDebitors is the account's share of the non-itemized remainder.
	CommonDebitors float64 `json:"common_debitors"`

	// Total is the net effect on the account's balance:
	// common_creditors - positions - common_debitors.
	Total float64 `json:"total"`
}

// TransactionEffect maps account ids to their share of one transaction.
// An account touched only as a position-usage target still gets an entry
// with zero creditor and debitor fields.
type TransactionEffect map[models.AccountID]AccountEffect

// CalculateTransactionEffect decomposes a single transaction (with its
// positions) into per-account contributions, in the group currency.
// Transactions are independent: effects are additive across transactions
// in any order.
//
// Position costs with named usages are billed immediately and exactly; each
// position's communal part (its communist_shares portion) flows back into
// the remaining transaction value and is billed via the debitor shares.
// Creditor shares always split the original converted value.
//
// Deleted positions are skipped entirely. A position whose usages and
// communist shares sum to zero contributes nothing to anybody and leaves the
// remaining value untouched, so value is conserved for any input.
func CalculateTransactionEffect(tx models.Transaction) TransactionEffect {
	rate := tx.CurrencyConversionRate
	converted := tx.Value * rate
	remaining := converted

	effects := make(TransactionEffect)

	for _, pos := range tx.Positions {
		if pos.Deleted {
			continue
		}
		totalUsages := pos.CommunistShares + pos.Usages.Sum()
		if totalUsages == 0 {
			continue
		}
		for id, usage := range pos.Usages {
			effect := effects[id]
			effect.Positions += pos.Price * usage / totalUsages * rate
			effects[id] = effect
		}
		commonRemainder := pos.Price / totalUsages * pos.CommunistShares * rate
		remaining = remaining - pos.Price*rate + commonRemainder
	}

	for id, share := range SplitAmount(remaining, tx.DebitorShares) {
		effect := effects[id]
		effect.CommonDebitors += share
		effects[id] = effect
	}

	for id, share := range SplitAmount(converted, tx.CreditorShares) {
		effect := effects[id]
		effect.CommonCreditors += share
		effects[id] = effect
	}

	for id, effect := range effects {
		effect.Total = effect.CommonCreditors - effect.Positions - effect.CommonDebitors
		effects[id] = effect
	}

	return effects
}
