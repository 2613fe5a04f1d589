package calculator

import (
	"fmt"
	"sort"

	"github.com/jmartens/splittab/internal/models"
)

// SplitMode identifies how the weights of a share map are interpreted.
type SplitMode string

const (
	// SplitModeEvenly splits equally: every participant has weight 1.
	SplitModeEvenly SplitMode = "evenly"

	// SplitModeShares splits by arbitrary relative weights.
	SplitModeShares SplitMode = "shares"

	// SplitModePercent uses weights that are fractions of 1.
	SplitModePercent SplitMode = "percent"

	// SplitModeAbsolute uses weights that are literal money amounts.
	SplitModeAbsolute SplitMode = "absolute"
)

// Valid reports whether m is a known split mode.
func (m SplitMode) Valid() bool {
	switch m {
	case SplitModeEvenly, SplitModeShares, SplitModePercent, SplitModeAbsolute:
		return true
	}
	return false
}

// SplitAmount distributes amount proportionally over a weighted share map.
// Each participant receives amount * weight / sum(weights). Every id in the
// map gets an entry, including zero-weight ones. If the weights sum to zero
// every allocation is zero; this never divides by zero and never errors.
//
// All split modes run through this same normalized division: "evenly" is
// equal weights, "percent" is weights summing to 1, "absolute" is weights
// that already equal the allocations.
func SplitAmount(amount float64, shares models.Shares) models.Shares {
	out := make(models.Shares, len(shares))
	total := shares.Sum()
	if total == 0 {
		for id := range shares {
			out[id] = 0
		}
		return out
	}
	for id, weight := range shares {
		out[id] = amount * weight / total
	}
	return out
}

// ConvertShares re-expresses a share map in a different split mode while
// preserving each participant's allocation of totalValue. Switching a
// transaction from "shares" to "absolute" (or back) must not change what
// anybody pays; converting to "evenly" deliberately discards the proportions.
func ConvertShares(from, to SplitMode, shares models.Shares, totalValue float64) (SplitMode, models.Shares, error) {
	if !from.Valid() {
		return "", nil, fmt.Errorf("unknown split mode %q", from)
	}
	if !to.Valid() {
		return "", nil, fmt.Errorf("unknown split mode %q", to)
	}

	// The incoming weights already encode the proportions regardless of
	// their mode, so the concrete allocations fall out of the same
	// normalized division.
	allocations := SplitAmount(totalValue, shares)

	out := make(models.Shares, len(shares))
	for id, allocation := range allocations {
		switch to {
		case SplitModeEvenly:
			out[id] = 1
		case SplitModeShares:
			out[id] = shares[id]
		case SplitModePercent:
			if totalValue == 0 {
				out[id] = 0
			} else {
				out[id] = allocation / totalValue
			}
		case SplitModeAbsolute:
			out[id] = allocation
		}
	}

	// Converting arbitrary weights to plain shares keeps them as-is unless
	// they came from "evenly", where the weights may be anything equal; pin
	// them to 1 so the result round-trips.
	if to == SplitModeShares && from == SplitModeEvenly {
		for id := range out {
			out[id] = 1
		}
	}

	return to, out, nil
}

// sortedAccountIDs returns the map's keys in ascending order. Map iteration
// order is randomized in Go; every deterministic walk goes through here.
func sortedAccountIDs(shares models.Shares) []models.AccountID {
	ids := make([]models.AccountID, 0, len(shares))
	for id := range shares {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
