package models

import "splitledger/internal/money"

// MemberBalance is the derived net position of one member across a set of
// expenses. Positive NetBalance means the member is owed money, negative
// means the member owes money.
//
// Balances are a view: recomputed fully on each request, never persisted.
type MemberBalance struct {
	// MemberID identifies the member (registered or placeholder).
	MemberID string `json:"memberId"`

	// MemberName is the display name, carried for presentation.
	MemberName string `json:"memberName"`

	// TotalPaid is the sum this member paid across all expenses.
	TotalPaid money.Amount `json:"totalPaid"`

	// TotalShare is the sum of this member's shares across all expenses.
	TotalShare money.Amount `json:"totalShare"`

	// NetBalance is TotalPaid minus TotalShare.
	NetBalance money.Amount `json:"netBalance"`
}

// SettlementTransaction is one suggested payment in a settlement plan.
// Applying every transaction of a plan in order brings every balance to
// within one cent of zero.
type SettlementTransaction struct {
	// FromMemberID is the debtor making the payment.
	FromMemberID string `json:"fromMemberId"`

	// ToMemberID is the creditor receiving the payment.
	ToMemberID string `json:"toMemberId"`

	// Amount is the payment size in minor units.
	Amount money.Amount `json:"amount"`

	// Currency is the ISO 4217 code of the group.
	Currency string `json:"currency"`
}

// Settlement represents a payment between group members that was actually
// recorded, clearing part of the outstanding debt.
type Settlement struct {
	// ID is the unique identifier for the settlement (UUID format).
	ID string

	// GroupID is the group this settlement belongs to.
	GroupID string

	// FromMemberID is the member who paid (debtor settling up).
	FromMemberID string

	// ToMemberID is the member who received payment.
	ToMemberID string

	// Amount is the payment amount in minor units.
	Amount money.Amount

	// Currency is the ISO 4217 code of the group.
	Currency string

	// Note is an optional description for the settlement.
	Note string

	// CreatedBy is the user ID who recorded this settlement.
	CreatedBy string

	// CreatedAt is the Unix timestamp when the settlement was recorded.
	CreatedAt int64
}
