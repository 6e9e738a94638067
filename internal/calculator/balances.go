package calculator

import (
	"splitledger/internal/models"
)

// AggregateBalances computes each member's net position across the given
// expenses and splits.
//
// Every roster member gets a balance row, all zeros if they appear in no
// expense. Output order follows roster order; member ids that appear only
// in expenses or splits are appended in first-appearance order, so the
// result is deterministic for identical input.
//
// The aggregator performs no status filtering: callers must pre-filter to
// the expense subset they want reflected (typically confirmed). Passing an
// unfiltered list silently includes drafts. Splits whose expense is not in
// the expenses slice are ignored.
//
// A payer who is not also a participant is valid: someone can front money
// for others entirely.
func AggregateBalances(members []models.Member, expenses []models.Expense, splits []models.Split) []models.MemberBalance {
	index := make(map[string]int, len(members))
	balances := make([]models.MemberBalance, 0, len(members))

	record := func(memberID, name string) int {
		if i, ok := index[memberID]; ok {
			return i
		}
		balances = append(balances, models.MemberBalance{
			MemberID:   memberID,
			MemberName: name,
		})
		index[memberID] = len(balances) - 1
		return len(balances) - 1
	}

	for _, m := range members {
		record(m.ID, m.Name)
	}

	included := make(map[string]bool, len(expenses))
	for _, e := range expenses {
		included[e.ID] = true
		for _, payer := range e.Payers {
			i := record(payer.MemberID, payer.MemberID)
			balances[i].TotalPaid += payer.Amount
		}
	}

	for _, s := range splits {
		if !included[s.ExpenseID] {
			continue
		}
		i := record(s.MemberID, s.MemberID)
		balances[i].TotalShare += s.Amount
	}

	for i := range balances {
		balances[i].NetBalance = balances[i].TotalPaid - balances[i].TotalShare
	}

	return balances
}

// ApplySettlements folds recorded payments into a set of balances and
// returns the adjusted copy. A payment improves the payer's position
// (counted as paid) and reduces the receiver's (counted as share), so
// debts already settled drop out of the next plan.
func ApplySettlements(balances []models.MemberBalance, settlements []models.Settlement) []models.MemberBalance {
	adjusted := make([]models.MemberBalance, len(balances))
	copy(adjusted, balances)

	index := make(map[string]int, len(adjusted))
	for i, b := range adjusted {
		index[b.MemberID] = i
	}

	record := func(memberID string) int {
		if i, ok := index[memberID]; ok {
			return i
		}
		adjusted = append(adjusted, models.MemberBalance{
			MemberID:   memberID,
			MemberName: memberID,
		})
		index[memberID] = len(adjusted) - 1
		return len(adjusted) - 1
	}

	for _, s := range settlements {
		from := record(s.FromMemberID)
		adjusted[from].TotalPaid += s.Amount
		to := record(s.ToMemberID)
		adjusted[to].TotalShare += s.Amount
	}

	for i := range adjusted {
		adjusted[i].NetBalance = adjusted[i].TotalPaid - adjusted[i].TotalShare
	}

	return adjusted
}
