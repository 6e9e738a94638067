package service

import (
	"errors"
	"fmt"

	"splitledger/internal/money"
)

var (
	// ErrNotGroupMember means the acting user is not a member of the group.
	ErrNotGroupMember = errors.New("you must be a member of this group")

	// ErrUnknownMember means a referenced member id is not on the group
	// roster.
	ErrUnknownMember = errors.New("member is not part of this group")

	// ErrCurrencyMismatch means an expense or settlement used a currency
	// other than the group's. The core performs no conversion.
	ErrCurrencyMismatch = errors.New("currency does not match the group currency")

	// ErrInvalidStatus means an expense lifecycle transition is not allowed.
	ErrInvalidStatus = errors.New("expense status does not allow this operation")

	// ErrMemberIdentity means a member was neither a user reference nor a
	// placeholder, or both at once.
	ErrMemberIdentity = errors.New("member must reference exactly one of a user or a placeholder name")

	// ErrAlreadyMember means the user is already on the group roster.
	ErrAlreadyMember = errors.New("user is already a member of this group")

	// ErrDuplicatePayer means the same member was listed as a payer more
	// than once.
	ErrDuplicatePayer = errors.New("payer listed more than once")

	// ErrInvalidSettlement means a recorded settlement had a non-positive
	// amount or identical endpoints.
	ErrInvalidSettlement = errors.New("settlement must move a positive amount between two distinct members")
)

// PayerMismatchError means the payer amounts do not sum to the expense
// total.
type PayerMismatchError struct {
	Expected money.Amount
	Actual   money.Amount
}

func (e *PayerMismatchError) Error() string {
	return fmt.Sprintf("payer amounts sum to %s, expected %s", e.Actual, e.Expected)
}
