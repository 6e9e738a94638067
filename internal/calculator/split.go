// Package calculator implements the settlement engine: split computation,
// balance aggregation, debt simplification and share rationale.
//
// Every function here is pure: plain data in, plain data out, no I/O and
// no shared state. Given identical inputs (including input order, which
// drives remainder-cent and tie-break decisions) output is bit-identical,
// so all of them are safe for concurrent use.
package calculator

import (
	"github.com/shopspring/decimal"

	"splitledger/internal/models"
	"splitledger/internal/money"
)

// ShareInput describes one participant in a split request.
type ShareInput struct {
	// MemberID identifies the participant.
	MemberID string

	// Amount is the explicit share for the amount method; ignored otherwise.
	Amount money.Amount

	// Percentage is the requested share for the percentage method;
	// nil otherwise.
	Percentage *decimal.Decimal
}

var percentTolerance = decimal.NewFromFloat(0.01)

// ComputeSplits divides total among the participants according to method
// and returns one Split per participant, in input order.
//
// For the equal method the shares sum to total exactly: each participant
// gets floor(total/n) cents and the first total%n participants (in input
// order) get one extra cent. Callers wanting a different remainder policy
// reorder their input.
//
// For the amount method the shares must sum to total exactly (a sub-cent
// tolerance over integer cents leaves only the exact match); otherwise an
// AmountMismatchError is returned and no redistribution is attempted.
//
// For the percentage method the percentages must sum to 100 within 0.01.
// Each share is total*percentage/100 rounded half away from zero to the
// cent, independently, so the shares may drift from total by up to one
// cent in aggregate. This undistributed remainder is a documented
// approximation, deliberately preserved.
func ComputeSplits(total money.Amount, method models.SplitMethod, participants []ShareInput) ([]models.Split, error) {
	if total <= 0 {
		return nil, ErrInvalidAmount
	}
	if len(participants) == 0 {
		return nil, ErrEmptyParticipants
	}

	seen := make(map[string]bool, len(participants))
	for _, p := range participants {
		if seen[p.MemberID] {
			return nil, &DuplicateParticipantError{MemberID: p.MemberID}
		}
		seen[p.MemberID] = true
	}

	switch method {
	case models.SplitEqual:
		return splitEqually(total, participants), nil
	case models.SplitAmount:
		return splitByAmount(total, participants)
	case models.SplitPercentage:
		return splitByPercentage(total, participants)
	default:
		return nil, ErrUnknownSplitMethod
	}
}

func splitEqually(total money.Amount, participants []ShareInput) []models.Split {
	n := int64(len(participants))
	base := total.MinorUnits() / n
	remainder := total.MinorUnits() % n

	splits := make([]models.Split, len(participants))
	for i, p := range participants {
		share := base
		if int64(i) < remainder {
			share++
		}
		splits[i] = models.Split{
			MemberID: p.MemberID,
			Amount:   money.FromMinorUnits(share),
		}
	}
	return splits
}

func splitByAmount(total money.Amount, participants []ShareInput) ([]models.Split, error) {
	var sum money.Amount
	for _, p := range participants {
		sum += p.Amount
	}
	if (sum - total).Abs() >= money.Epsilon {
		return nil, &AmountMismatchError{Expected: total, Actual: sum}
	}

	splits := make([]models.Split, len(participants))
	for i, p := range participants {
		splits[i] = models.Split{
			MemberID: p.MemberID,
			Amount:   p.Amount,
		}
	}
	return splits, nil
}

func splitByPercentage(total money.Amount, participants []ShareInput) ([]models.Split, error) {
	sum := decimal.Zero
	for _, p := range participants {
		if p.Percentage != nil {
			sum = sum.Add(*p.Percentage)
		}
	}
	if sum.Sub(decimal.NewFromInt(100)).Abs().Cmp(percentTolerance) >= 0 {
		return nil, &PercentageMismatchError{Actual: sum}
	}

	totalDec := total.Decimal()
	splits := make([]models.Split, len(participants))
	for i, p := range participants {
		pct := decimal.Zero
		if p.Percentage != nil {
			pct = *p.Percentage
		}
		share := totalDec.Mul(pct).Div(decimal.NewFromInt(100)).Round(2)
		pctCopy := pct
		splits[i] = models.Split{
			MemberID:   p.MemberID,
			Amount:     money.FromDecimal(share),
			Percentage: &pctCopy,
		}
	}
	return splits, nil
}
