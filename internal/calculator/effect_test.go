package calculator

import (
	"testing"

	"github.com/jmartens/splittab/internal/models"
)

func TestCalculateTransactionEffect(t *testing.T) {
	tests := []struct {
		name         string
		tx           models.Transaction
		validateFunc func(t *testing.T, effect TransactionEffect)
	}{
		{
			name: "no positions, weighted debitors",
			tx: models.Transaction{
				Value:                  100.0,
				CurrencyConversionRate: 1.0,
				CreditorShares:         models.Shares{1: 1},
				DebitorShares:          models.Shares{1: 1, 2: 2, 3: 1},
			},
			validateFunc: func(t *testing.T, effect TransactionEffect) {
				wantTotals := map[models.AccountID]float64{1: 75, 2: -50, 3: -25}
				for id, want := range wantTotals {
					if got := effect[id].Total; !approxEqual(got, want) {
						t.Errorf("total[%d] = %v, want %v", id, got, want)
					}
				}
				if got := effect[1].CommonCreditors; !approxEqual(got, 100) {
					t.Errorf("commonCreditors[1] = %v, want 100", got)
				}
			},
		},
		{
			name: "positions with named usages and communist remainder",
			tx: models.Transaction{
				Value:                  100.0,
				CurrencyConversionRate: 1.0,
				CreditorShares:         models.Shares{1: 1},
				DebitorShares:          models.Shares{1: 1, 2: 2},
				Positions: []models.TransactionPosition{
					{Price: 20.0, Usages: models.Shares{3: 1, 1: 1}},
					{Price: 40.0, CommunistShares: 1, Usages: models.Shares{2: 1}},
				},
			},
			validateFunc: func(t *testing.T, effect TransactionEffect) {
				// Position 1: 20 split between accounts 3 and 1 -> 10 each.
				// Position 2: 40 split between account 2 and the communal
				// pool -> 20 billed to 2, 20 returned to the pool.
				// Remaining 100 - 20 - 40 + 20 = 60 over debitors {1:1, 2:2}.
				want := map[models.AccountID]AccountEffect{
					1: {Positions: 10, CommonCreditors: 100, CommonDebitors: 20, Total: 70},
					2: {Positions: 20, CommonDebitors: 40, Total: -60},
					3: {Positions: 10, Total: -10},
				}
				if len(effect) != len(want) {
					t.Fatalf("effect touches %d accounts, want %d", len(effect), len(want))
				}
				for id, wantEffect := range want {
					got := effect[id]
					if !approxEqual(got.Positions, wantEffect.Positions) {
						t.Errorf("positions[%d] = %v, want %v", id, got.Positions, wantEffect.Positions)
					}
					if !approxEqual(got.CommonCreditors, wantEffect.CommonCreditors) {
						t.Errorf("commonCreditors[%d] = %v, want %v", id, got.CommonCreditors, wantEffect.CommonCreditors)
					}
					if !approxEqual(got.CommonDebitors, wantEffect.CommonDebitors) {
						t.Errorf("commonDebitors[%d] = %v, want %v", id, got.CommonDebitors, wantEffect.CommonDebitors)
					}
					if !approxEqual(got.Total, wantEffect.Total) {
						t.Errorf("total[%d] = %v, want %v", id, got.Total, wantEffect.Total)
					}
				}
			},
		},
		{
			name: "deleted position is skipped entirely",
			tx: models.Transaction{
				Value:                  50.0,
				CurrencyConversionRate: 1.0,
				CreditorShares:         models.Shares{1: 1},
				DebitorShares:          models.Shares{1: 1, 2: 1},
				Positions: []models.TransactionPosition{
					{Price: 30.0, Usages: models.Shares{3: 1}, Deleted: true},
				},
			},
			validateFunc: func(t *testing.T, effect TransactionEffect) {
				if _, ok := effect[3]; ok {
					t.Error("deleted position produced an entry for its usage target")
				}
				if got := effect[2].CommonDebitors; !approxEqual(got, 25) {
					t.Errorf("commonDebitors[2] = %v, want 25", got)
				}
			},
		},
		{
			name: "position with zero total usages contributes nothing",
			tx: models.Transaction{
				Value:                  50.0,
				CurrencyConversionRate: 1.0,
				CreditorShares:         models.Shares{1: 1},
				DebitorShares:          models.Shares{1: 1, 2: 1},
				Positions: []models.TransactionPosition{
					{Price: 30.0, Usages: models.Shares{}},
				},
			},
			validateFunc: func(t *testing.T, effect TransactionEffect) {
				// The position must not drain the pool either: the full 50
				// still goes through the debitor shares.
				if got := effect[2].CommonDebitors; !approxEqual(got, 25) {
					t.Errorf("commonDebitors[2] = %v, want 25", got)
				}
			},
		},
		{
			name: "currency conversion rate scales everything",
			tx: models.Transaction{
				Value:                  100.0,
				CurrencyConversionRate: 0.5,
				CreditorShares:         models.Shares{1: 1},
				DebitorShares:          models.Shares{2: 1},
				Positions: []models.TransactionPosition{
					{Price: 40.0, Usages: models.Shares{3: 1}},
				},
			},
			validateFunc: func(t *testing.T, effect TransactionEffect) {
				if got := effect[1].CommonCreditors; !approxEqual(got, 50) {
					t.Errorf("commonCreditors[1] = %v, want 50", got)
				}
				if got := effect[3].Positions; !approxEqual(got, 20) {
					t.Errorf("positions[3] = %v, want 20", got)
				}
				if got := effect[2].CommonDebitors; !approxEqual(got, 30) {
					t.Errorf("commonDebitors[2] = %v, want 30", got)
				}
			},
		},
		{
			name: "usage-only account gets a zero-credit zero-debit entry",
			tx: models.Transaction{
				Value:                  10.0,
				CurrencyConversionRate: 1.0,
				CreditorShares:         models.Shares{1: 1},
				DebitorShares:          models.Shares{1: 1},
				Positions: []models.TransactionPosition{
					{Price: 10.0, Usages: models.Shares{2: 1}},
				},
			},
			validateFunc: func(t *testing.T, effect TransactionEffect) {
				got, ok := effect[2]
				if !ok {
					t.Fatal("usage-only account has no entry")
				}
				if got.CommonCreditors != 0 || got.CommonDebitors != 0 {
					t.Errorf("usage-only account has creditor/debitor fields: %+v", got)
				}
				if !approxEqual(got.Total, -10) {
					t.Errorf("total[2] = %v, want -10", got.Total)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			effect := CalculateTransactionEffect(tt.tx)
			tt.validateFunc(t, effect)
		})
	}
}

func TestCalculateTransactionEffectConservation(t *testing.T) {
	// Sum of totals must be zero: the transaction redistributes a fixed
	// pool without creating or destroying value.
	tx := models.Transaction{
		Value:                  123.45,
		CurrencyConversionRate: 1.9,
		CreditorShares:         models.Shares{1: 2, 4: 1},
		DebitorShares:          models.Shares{1: 1, 2: 3, 3: 2},
		Positions: []models.TransactionPosition{
			{Price: 19.99, CommunistShares: 1, Usages: models.Shares{2: 2, 3: 1}},
			{Price: 7.5, Usages: models.Shares{4: 1}},
			{Price: 11.0, CommunistShares: 2},
		},
	}

	var sum float64
	for _, effect := range CalculateTransactionEffect(tx) {
		sum += effect.Total
	}
	if !approxEqual(sum, 0) {
		t.Errorf("sum of totals = %v, want 0", sum)
	}
}
