package models

// Group represents a set of people sharing expenses. Accounts and
// transactions are always scoped to exactly one group.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string `json:"id"`

	// Name is the display name of the group (e.g. "Flatshare", "Ski Trip").
	Name string `json:"name"`

	// CurrencyIdentifier is the group currency (e.g. "EUR"). Transaction
	// values are converted into it via their conversion rate.
	CurrencyIdentifier string `json:"currency_identifier"`

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64 `json:"created_at"`
}
