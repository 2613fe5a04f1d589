package calculator

import (
	"fmt"

	"github.com/jmartens/splittab/internal/models"
)

// ConsistencyError reports a programming-contract violation: a share map
// references an account id that does not exist in the group's account set.
// It is the only error class the calculator surfaces; malformed-but-plausible
// data (empty share maps, zero-usage positions, cyclic clearing graphs) is
// handled by zero-guards and silent exclusion instead. Callers need the
// distinction to tell "data not yet loaded" from "corrupt state".
type ConsistencyError struct {
	// AccountID is the unknown account id.
	AccountID models.AccountID

	// Reference names the share map holding the dangling id,
	// e.g. `transaction "ab12" debitor_shares`.
	Reference string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("inconsistent group data: %s references unknown account %d", e.Reference, e.AccountID)
}

// checkShares verifies that every id in shares exists in accounts.
func checkShares(accounts map[models.AccountID]models.Account, shares models.Shares, reference string) error {
	for id := range shares {
		if _, ok := accounts[id]; !ok {
			return &ConsistencyError{AccountID: id, Reference: reference}
		}
	}
	return nil
}
