package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"splitledger/internal/models"
	"splitledger/internal/money"
)

// ShareExplanation pairs one member's share with a human-readable
// explanation of how it was derived.
type ShareExplanation struct {
	MemberID  string
	Amount    money.Amount
	Rationale string
}

// equalTolerance is looser than the one-cent settle threshold on purpose:
// it absorbs the remainder cents an equal split hands to the first
// participants.
const equalTolerance money.Amount = 2

// ExplainShares classifies each share and produces its rationale, in input
// order:
//
//   - a share with an explicit percentage: "50% of 100.00 total"
//   - every share within two cents of total/n: "Split equally among 3 people"
//   - otherwise: "Custom amount (33.3% of total)"
//
// An empty or nil share list yields an empty result, not an error.
func ExplainShares(shares []models.Split, total money.Amount) []ShareExplanation {
	if len(shares) == 0 {
		return nil
	}

	n := int64(len(shares))
	evenShare := total.MinorUnits() / n
	equal := true
	for _, s := range shares {
		if (s.Amount - money.FromMinorUnits(evenShare)).Abs() > equalTolerance {
			equal = false
			break
		}
	}

	explanations := make([]ShareExplanation, len(shares))
	for i, s := range shares {
		explanations[i] = ShareExplanation{
			MemberID:  s.MemberID,
			Amount:    s.Amount,
			Rationale: shareRationale(s, total, n, equal),
		}
	}
	return explanations
}

func shareRationale(s models.Split, total money.Amount, n int64, equal bool) string {
	if s.Percentage != nil {
		return fmt.Sprintf("%s%% of %s total", s.Percentage.String(), total)
	}
	if equal {
		if n == 1 {
			return "Split equally among 1 person"
		}
		return fmt.Sprintf("Split equally among %d people", n)
	}

	pct := decimal.Zero
	if total > 0 {
		pct = s.Amount.Decimal().Div(total.Decimal()).Mul(decimal.NewFromInt(100)).Round(1)
	}
	return fmt.Sprintf("Custom amount (%s%% of total)", pct.StringFixed(1))
}
