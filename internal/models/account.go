package models

// AccountID identifies an account within its group.
// IDs are numeric and group-scoped: two groups may both have an account 1.
type AccountID int64

// Shares is a weighted share map: account id -> non-negative weight.
// Weights are relative; only their proportions matter. Insertion order is
// irrelevant, sums are order-independent.
type Shares map[AccountID]float64

// Sum returns the total weight in the map.
func (s Shares) Sum() float64 {
	var total float64
	for _, w := range s {
		total += w
	}
	return total
}

// Clone returns a copy of the share map. A nil map clones to nil.
func (s Shares) Clone() Shares {
	if s == nil {
		return nil
	}
	out := make(Shares, len(s))
	for id, w := range s {
		out[id] = w
	}
	return out
}

// AccountType discriminates the account variants.
type AccountType string

const (
	// AccountTypePersonal is a real account belonging to a person.
	AccountTypePersonal AccountType = "personal"

	// AccountTypeClearing is a virtual account (e.g. a shared event) whose
	// accumulated balance is redistributed onto other accounts instead of
	// being settled directly.
	AccountTypeClearing AccountType = "clearing"
)

// Valid reports whether t is a known account type.
func (t AccountType) Valid() bool {
	return t == AccountTypePersonal || t == AccountTypeClearing
}

// Account represents a balance-carrying entity inside a group.
type Account struct {
	// ID is the group-scoped numeric identifier, assigned by the store.
	ID AccountID `json:"id"`

	// Type is either personal or clearing.
	Type AccountType `json:"type"`

	// Name is the display name (e.g. "Alice", "Ski Trip 2026").
	Name string `json:"name"`

	// Description is an optional free-form note.
	Description string `json:"description,omitempty"`

	// OwningUserID optionally links a personal account to a user of the
	// surrounding application. The engine itself never inspects it.
	OwningUserID string `json:"owning_user_id,omitempty"`

	// Deleted marks the account as soft-deleted. Deleted accounts keep
	// their transaction history and still take part in balance computation.
	Deleted bool `json:"deleted,omitempty"`

	// ClearingShares is the redistribution map of a clearing account:
	// target account id -> positive weight. Once the account's balance is
	// known it is split proportionally onto the targets, which may
	// themselves be clearing accounts. An empty map means the balance is
	// absorbed and not redistributed further. Always empty for personal
	// accounts.
	ClearingShares Shares `json:"clearing_shares,omitempty"`

	// LastChanged is the Unix timestamp of the last modification.
	LastChanged int64 `json:"last_changed"`
}

// IsClearing reports whether the account is a clearing account.
func (a *Account) IsClearing() bool {
	return a.Type == AccountTypeClearing
}
