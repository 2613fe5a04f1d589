package models

// TransactionType discriminates the transaction variants. Both variants are
// the same "money in, money out" concept; the split only matters to the UI.
type TransactionType string

const (
	// TransactionTypePurchase is an expense paid by the creditors and
	// consumed by the debitors, optionally itemized into positions.
	TransactionTypePurchase TransactionType = "purchase"

	// TransactionTypeTransfer is a direct money movement between accounts.
	TransactionTypeTransfer TransactionType = "transfer"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionTypePurchase || t == TransactionTypeTransfer
}

// Transaction represents a purchase or transfer inside a group.
type Transaction struct {
	// ID is the unique identifier for the transaction (UUID format).
	ID string `json:"id"`

	// Type is either purchase or transfer.
	Type TransactionType `json:"type"`

	// Name is the display name of the transaction.
	Name string `json:"name"`

	// Value is the positive monetary amount in the transaction currency.
	Value float64 `json:"value"`

	// CurrencyConversionRate converts Value into the group currency.
	// A rate of 1 means the transaction is already in the group currency.
	CurrencyConversionRate float64 `json:"currency_conversion_rate"`

	// CreditorShares maps the accounts that are owed money for this
	// transaction to their weights.
	CreditorShares Shares `json:"creditor_shares"`

	// DebitorShares maps the accounts that consumed (owe for) this
	// transaction to their weights. Position costs billed to named usages
	// are taken out before the debitor split is applied.
	DebitorShares Shares `json:"debitor_shares"`

	// Positions are the optional line items of a purchase.
	Positions []TransactionPosition `json:"positions,omitempty"`

	// Deleted marks the transaction as soft-deleted. Deleted transactions
	// contribute nothing to any balance.
	Deleted bool `json:"deleted,omitempty"`

	// LastChanged is the Unix timestamp of the last modification.
	LastChanged int64 `json:"last_changed"`
}

// TransactionPosition represents a single line item on a purchase.
// A position's cost is divided between its named usages and the communal
// pool: each named account pays price * weight / total_usages, where
// total_usages = communist_shares + sum(usages). The communal part flows
// back into the transaction's remaining value and is billed via the
// debitor shares.
type TransactionPosition struct {
	// ID is the unique identifier for the position (UUID format).
	ID string `json:"id"`

	// Name is the description of the item (e.g. "Pizza", "Lift tickets").
	Name string `json:"name"`

	// Price is the amount of this position in the transaction currency.
	Price float64 `json:"price"`

	// CommunistShares is the weight of the communal pool for this position,
	// competing with the named usages. A position with communist_shares 1
	// and no usages is split among the general debitors.
	CommunistShares float64 `json:"communist_shares"`

	// Usages allocates this position's cost to specific accounts by weight.
	Usages Shares `json:"usages"`

	// Deleted marks the position as soft-deleted; it is skipped entirely.
	Deleted bool `json:"deleted,omitempty"`
}
