package models

import (
	"github.com/shopspring/decimal"

	"splitledger/internal/money"
)

// Split is the materialized share of one expense for one member.
//
// At most one Split exists per (expense, member) pair; the schema enforces
// the uniqueness and the calculator never emits duplicates.
type Split struct {
	// ID is the unique identifier for the split (UUID format).
	ID string

	// ExpenseID is the expense this share belongs to.
	ExpenseID string

	// MemberID is the member who owes this share.
	MemberID string

	// Amount is the share in minor units.
	Amount money.Amount

	// Percentage is the requested percentage for percentage splits,
	// nil otherwise.
	Percentage *decimal.Decimal

	// ShareDescription is an optional human-readable explanation of how
	// the share was derived (e.g. "Split equally among 3 people").
	ShareDescription string
}
