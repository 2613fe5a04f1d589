package calculator

import (
	"testing"

	"github.com/jmartens/splittab/internal/models"
)

func clearingAccount(id models.AccountID, shares models.Shares) models.Account {
	return models.Account{ID: id, Type: models.AccountTypeClearing, ClearingShares: shares}
}

func personalAccount(id models.AccountID) models.Account {
	return models.Account{ID: id, Type: models.AccountTypePersonal}
}

func accountsByID(accounts ...models.Account) map[models.AccountID]models.Account {
	out := make(map[models.AccountID]models.Account, len(accounts))
	for _, a := range accounts {
		out[a.ID] = a
	}
	return out
}

func indexOf(order []models.AccountID, id models.AccountID) int {
	for i, got := range order {
		if got == id {
			return i
		}
	}
	return -1
}

func TestResolveClearingOrder(t *testing.T) {
	tests := []struct {
		name         string
		accounts     map[models.AccountID]models.Account
		validateFunc func(t *testing.T, order, unresolved []models.AccountID)
	}{
		{
			name: "no clearing accounts",
			accounts: accountsByID(
				personalAccount(1),
				personalAccount(2),
			),
			validateFunc: func(t *testing.T, order, unresolved []models.AccountID) {
				if len(order) != 0 || len(unresolved) != 0 {
					t.Errorf("order = %v, unresolved = %v, want both empty", order, unresolved)
				}
			},
		},
		{
			name: "sink with empty shares is not a node",
			accounts: accountsByID(
				personalAccount(1),
				clearingAccount(10, nil),
			),
			validateFunc: func(t *testing.T, order, unresolved []models.AccountID) {
				if len(order) != 0 {
					t.Errorf("order = %v, want empty", order)
				}
			},
		},
		{
			name: "chain resolves source before dependent",
			accounts: accountsByID(
				personalAccount(1),
				personalAccount(2),
				clearingAccount(10, models.Shares{11: 1}),
				clearingAccount(11, models.Shares{1: 1, 2: 1}),
			),
			validateFunc: func(t *testing.T, order, unresolved []models.AccountID) {
				if len(order) != 2 {
					t.Fatalf("order = %v, want 2 nodes", order)
				}
				if indexOf(order, 10) > indexOf(order, 11) {
					t.Errorf("order = %v, want 10 before 11", order)
				}
				if len(unresolved) != 0 {
					t.Errorf("unresolved = %v, want empty", unresolved)
				}
			},
		},
		{
			name: "two-node cycle is excluded and reported",
			accounts: accountsByID(
				personalAccount(1),
				clearingAccount(10, models.Shares{11: 1}),
				clearingAccount(11, models.Shares{10: 1}),
			),
			validateFunc: func(t *testing.T, order, unresolved []models.AccountID) {
				if len(order) != 0 {
					t.Errorf("order = %v, want empty", order)
				}
				if len(unresolved) != 2 || indexOf(unresolved, 10) < 0 || indexOf(unresolved, 11) < 0 {
					t.Errorf("unresolved = %v, want [10 11]", unresolved)
				}
			},
		},
		{
			name: "node feeding into a cycle still resolves",
			accounts: accountsByID(
				personalAccount(1),
				clearingAccount(10, models.Shares{11: 1}),
				clearingAccount(11, models.Shares{10: 1}),
				clearingAccount(12, models.Shares{10: 1, 1: 1}),
			),
			validateFunc: func(t *testing.T, order, unresolved []models.AccountID) {
				if len(order) != 1 || order[0] != 12 {
					t.Errorf("order = %v, want [12]", order)
				}
				if len(unresolved) != 2 {
					t.Errorf("unresolved = %v, want [10 11]", unresolved)
				}
			},
		},
		{
			name: "diamond resolves all four nodes",
			accounts: accountsByID(
				personalAccount(1),
				clearingAccount(10, models.Shares{11: 1, 12: 1}),
				clearingAccount(11, models.Shares{13: 1}),
				clearingAccount(12, models.Shares{13: 1}),
				clearingAccount(13, models.Shares{1: 1}),
			),
			validateFunc: func(t *testing.T, order, unresolved []models.AccountID) {
				if len(order) != 4 {
					t.Fatalf("order = %v, want 4 nodes", order)
				}
				if indexOf(order, 10) != 0 {
					t.Errorf("order = %v, want 10 first", order)
				}
				if indexOf(order, 13) != 3 {
					t.Errorf("order = %v, want 13 last", order)
				}
				if len(unresolved) != 0 {
					t.Errorf("unresolved = %v, want empty", unresolved)
				}
			},
		},
		{
			name: "targets outside the graph do not count as dependencies",
			accounts: accountsByID(
				personalAccount(1),
				clearingAccount(10, models.Shares{1: 1}),
				clearingAccount(11, models.Shares{1: 2, 10: 1}),
			),
			// 10 has an incoming edge from 11, 11 has none.
			validateFunc: func(t *testing.T, order, unresolved []models.AccountID) {
				if len(order) != 2 || order[0] != 11 || order[1] != 10 {
					t.Errorf("order = %v, want [11 10]", order)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, unresolved := ResolveClearingOrder(tt.accounts)
			tt.validateFunc(t, order, unresolved)
		})
	}
}

func TestResolveClearingOrderDeterministic(t *testing.T) {
	accounts := accountsByID(
		personalAccount(1),
		clearingAccount(10, models.Shares{1: 1}),
		clearingAccount(11, models.Shares{1: 1}),
		clearingAccount(12, models.Shares{1: 1}),
	)

	first, _ := ResolveClearingOrder(accounts)
	for i := 0; i < 50; i++ {
		again, _ := ResolveClearingOrder(accounts)
		if len(again) != len(first) {
			t.Fatalf("order length changed between runs: %v vs %v", again, first)
		}
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("order changed between runs: %v vs %v", again, first)
			}
		}
	}
}
