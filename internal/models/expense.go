package models

import "splitledger/internal/money"

// SplitMethod identifies how an expense's total is divided among its
// participants.
type SplitMethod string

const (
	// SplitEqual divides the total evenly, distributing remainder cents
	// to the first participants in input order.
	SplitEqual SplitMethod = "equal"

	// SplitAmount uses explicit per-participant amounts that must sum to
	// the total.
	SplitAmount SplitMethod = "amount"

	// SplitPercentage uses per-participant percentages that must sum to 100.
	SplitPercentage SplitMethod = "percentage"
)

// ExpenseStatus is the lifecycle state of an expense.
type ExpenseStatus string

const (
	// StatusPendingConfirmation marks a newly created expense that has not
	// yet been confirmed.
	StatusPendingConfirmation ExpenseStatus = "pending_confirmation"

	// StatusConfirmed marks an expense eligible to affect balances.
	StatusConfirmed ExpenseStatus = "confirmed"

	// StatusEdited marks an expense modified after creation; it must be
	// re-confirmed before it counts toward balances again.
	StatusEdited ExpenseStatus = "edited"
)

// Expense represents a shared cost within a group.
//
// Invariants: TotalAmount is positive; the payer amounts sum to TotalAmount;
// the split amounts for the expense sum to TotalAmount (percentage splits
// may drift by up to one cent, see the calculator package).
//
// Only confirmed expenses should be fed into balance aggregation. That
// filter is the caller's responsibility, not enforced here.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// GroupID is the group this expense belongs to.
	GroupID string

	// Description is the human-readable label (e.g. "Dinner at Luigi's").
	Description string

	// TotalAmount is the full cost of the expense in minor units.
	TotalAmount money.Amount

	// Currency is the ISO 4217 code; must match the group currency.
	Currency string

	// SplitMethod records how the splits for this expense were computed.
	SplitMethod SplitMethod

	// Status is the lifecycle state of the expense.
	Status ExpenseStatus

	// Payers lists who fronted money for this expense and how much.
	// A payer does not have to be a participant.
	Payers []ExpensePayer

	// CreatedBy is the user ID that created the expense.
	CreatedBy string

	// CreatedAt and UpdatedAt are Unix timestamps.
	CreatedAt int64
	UpdatedAt int64
}

// ExpensePayer records one member's contribution to an expense's cost.
type ExpensePayer struct {
	// MemberID is the paying member.
	MemberID string

	// Amount is how much this member paid, in minor units.
	Amount money.Amount
}
