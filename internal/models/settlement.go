package models

// AccountBalance holds the derived running totals for one account.
// It is recomputed in full on every balance computation, never persisted.
type AccountBalance struct {
	// Balance is the account's net position in the group currency.
	// Positive means the account is owed money.
	Balance float64 `json:"balance"`

	// BeforeClearing is the balance after all transactions are folded but
	// before clearing accounts are redistributed.
	BeforeClearing float64 `json:"before_clearing"`

	// TotalPaid accumulates everything the account paid for.
	TotalPaid float64 `json:"total_paid"`

	// TotalConsumed accumulates everything the account consumed.
	TotalConsumed float64 `json:"total_consumed"`

	// ClearingResolution records, for a clearing account with shares, the
	// amount moved from this account to each target during redistribution.
	// Nil for every other account.
	ClearingResolution Shares `json:"clearing_resolution,omitempty"`
}

// AccountBalanceMap maps every account of a group to its derived balance.
type AccountBalanceMap map[AccountID]AccountBalance

// SettlementEntry represents one suggested real-world payment: the debitor
// pays the creditor the given amount.
type SettlementEntry struct {
	// CreditorID is the account receiving the payment.
	CreditorID AccountID `json:"creditor_id"`

	// DebitorID is the account making the payment.
	DebitorID AccountID `json:"debitor_id"`

	// PaymentAmount is the payment amount in the group currency.
	PaymentAmount float64 `json:"payment_amount"`
}
