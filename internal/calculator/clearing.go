package calculator

import (
	"sort"

	"github.com/jmartens/splittab/internal/models"
)

// ResolveClearingOrder linearizes the dependency graph between clearing
// accounts so that an account's balance is fully known (all of its inbound
// clearing contributions received) before it is redistributed further.
//
// Only clearing accounts with non-empty shares are graph nodes; a clearing
// account with empty shares is a sink and needs no resolution. The order is
// a topological sort (Kahn's algorithm) with ascending account id as the
// tie-break, so the result is reproducible for a given input.
//
// Accounts caught in a reference cycle cannot be linearized. They are left
// out of the order — their balance stays un-redistributed — and returned as
// unresolved so callers can warn users if they want to.
func ResolveClearingOrder(accounts map[models.AccountID]models.Account) (order, unresolved []models.AccountID) {
	// shareMap: graph nodes and their out-edges.
	shareMap := make(map[models.AccountID]models.Shares)
	for id, account := range accounts {
		if account.IsClearing() && len(account.ClearingShares) > 0 {
			shareMap[id] = account.ClearingShares
		}
	}
	if len(shareMap) == 0 {
		return nil, nil
	}

	// In-degree per node, counting only edges between graph nodes. A node
	// never referenced by another clearing account has in-degree zero.
	inDegree := make(map[models.AccountID]int, len(shareMap))
	for id := range shareMap {
		inDegree[id] = 0
	}
	for _, shares := range shareMap {
		for target := range shares {
			if _, ok := shareMap[target]; ok {
				inDegree[target]++
			}
		}
	}

	nodes := make([]models.AccountID, 0, len(shareMap))
	for id := range shareMap {
		nodes = append(nodes, id)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })

	queue := make([]models.AccountID, 0, len(shareMap))
	for _, id := range nodes {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	order = make([]models.AccountID, 0, len(shareMap))
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		order = append(order, node)

		for _, target := range sortedAccountIDs(shareMap[node]) {
			if _, ok := shareMap[target]; !ok {
				continue
			}
			inDegree[target]--
			if inDegree[target] == 0 {
				queue = append(queue, target)
			}
		}
	}

	if len(order) < len(shareMap) {
		inOrder := make(map[models.AccountID]bool, len(order))
		for _, id := range order {
			inOrder[id] = true
		}
		for _, id := range nodes {
			if !inOrder[id] {
				unresolved = append(unresolved, id)
			}
		}
	}

	return order, unresolved
}
