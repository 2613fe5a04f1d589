// Package models defines the core domain models for Splittab.
//
// # Model Overview
//
//   - Group: A set of people sharing expenses, with its own currency and
//     its own account-id namespace
//   - Account: A balance-carrying entity inside a group. Personal accounts
//     belong to a person; clearing accounts are virtual and redistribute
//     their balance onto other accounts
//   - Transaction: A purchase or transfer with weighted creditor and
//     debitor shares and an optional list of positions
//   - TransactionPosition: A line item on a purchase, billed to named
//     accounts and/or to the communal pool
//
// # Derived Models
//
// The following are computed, never persisted:
//   - AccountBalance / AccountBalanceMap: Per-account running balances,
//     recomputed in full from the group's accounts and transactions
//   - SettlementEntry: One suggested payment in a settlement plan
//
// # Design Principles
//
//  1. **Recompute, don't cache**: Balances are a pure function of the
//     account and transaction snapshots, so stored data can never drift
//     from derived data
//  2. **Weights, not amounts**: Share maps carry weights; the interpretation
//     (evenly, shares, percent, absolute) is decided by the caller and every
//     interpretation runs through the same normalized division
//  3. **Avoid circular references**: Models reference each other by ID, not
//     by pointer
package models
