// Package models defines the core domain models for splitledger.
//
// # Entities
//
//   - User: a registered account that can belong to groups
//   - Group: a set of members who share expenses, with a single currency
//   - Member: a group-scoped identity, either a registered user or a placeholder
//   - Expense: a shared cost with payers and a split method
//   - Split: one member's materialized share of one expense
//   - Settlement: a recorded payment between two members
//
// # Derived views
//
//   - MemberBalance: total paid minus total share for a member, recomputed
//     on every request from the current expense and split set
//   - SettlementTransaction: one suggested payment in a settlement plan
//
// Derived views are never persisted as authoritative state.
//
// # Design principles
//
//  1. All monetary fields are money.Amount (integer minor units), never floats
//  2. Members are always referenced by member ID, not user ID, so placeholders
//     and registered users flow through balance math uniformly
//  3. Entities reference each other by ID strings, no pointer cycles
package models
