package calculator

import (
	"splitledger/internal/models"
	"splitledger/internal/money"
)

// Simplify computes a small set of transfers that settles every balance.
//
// Greedy matching: repeatedly pay the largest debt toward the largest
// credit until nothing owes or is owed a full cent. Each iteration zeroes
// at least one side, so with k non-zero balances the plan has at most k-1
// transactions. True minimum-cardinality settlement is NP-hard in general;
// this heuristic is the deliberate trade-off.
//
// Ties are broken by input order (the earlier member wins), so identical
// input yields identical output. Balances below one cent are treated as
// settled and skipped.
//
// Simplify assumes the balances conserve money (they sum to roughly zero).
// It does not validate that: on non-conserving input it still terminates,
// leaving the residue visible as an unsettled balance rather than
// producing a silently wrong plan.
func Simplify(balances []models.MemberBalance, currency string) []models.SettlementTransaction {
	remaining := make([]money.Amount, len(balances))
	for i, b := range balances {
		remaining[i] = b.NetBalance
	}

	var transactions []models.SettlementTransaction
	for {
		creditor, debtor := -1, -1
		for i, r := range remaining {
			if r >= money.Epsilon && (creditor == -1 || r > remaining[creditor]) {
				creditor = i
			}
			if r <= -money.Epsilon && (debtor == -1 || r < remaining[debtor]) {
				debtor = i
			}
		}
		if creditor == -1 || debtor == -1 {
			break
		}

		amount := remaining[creditor]
		if owed := -remaining[debtor]; owed < amount {
			amount = owed
		}

		remaining[creditor] -= amount
		remaining[debtor] += amount
		transactions = append(transactions, models.SettlementTransaction{
			FromMemberID: balances[debtor].MemberID,
			ToMemberID:   balances[creditor].MemberID,
			Amount:       amount,
			Currency:     currency,
		})
	}

	return transactions
}
