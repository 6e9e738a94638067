package calculator

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"splitledger/internal/money"
)

var (
	// ErrInvalidAmount means the total amount was zero or negative.
	ErrInvalidAmount = errors.New("total amount must be positive")

	// ErrEmptyParticipants means a split was requested with no participants.
	ErrEmptyParticipants = errors.New("at least one participant is required")

	// ErrUnknownSplitMethod means the split method tag was not recognized.
	ErrUnknownSplitMethod = errors.New("unknown split method")
)

// DuplicateParticipantError means the same member was referenced twice in
// one split request.
type DuplicateParticipantError struct {
	MemberID string
}

func (e *DuplicateParticipantError) Error() string {
	return fmt.Sprintf("participant %s appears more than once", e.MemberID)
}

// AmountMismatchError means fixed-amount shares do not sum to the expense
// total.
type AmountMismatchError struct {
	Expected money.Amount
	Actual   money.Amount
}

func (e *AmountMismatchError) Error() string {
	return fmt.Sprintf("split amounts sum to %s, expected %s", e.Actual, e.Expected)
}

// PercentageMismatchError means percentage shares do not sum to 100.
type PercentageMismatchError struct {
	Actual decimal.Decimal
}

func (e *PercentageMismatchError) Error() string {
	return fmt.Sprintf("split percentages sum to %s, expected 100", e.Actual)
}
