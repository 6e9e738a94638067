package calculator

import (
	"reflect"
	"testing"

	"splitledger/internal/models"
	"splitledger/internal/money"
)

func balance(memberID string, net money.Amount) models.MemberBalance {
	return models.MemberBalance{MemberID: memberID, MemberName: memberID, NetBalance: net}
}

func TestSimplify(t *testing.T) {
	tests := []struct {
		name     string
		balances []models.MemberBalance
		want     []models.SettlementTransaction
	}{
		{
			name: "largest debtor pays the single creditor first",
			balances: []models.MemberBalance{
				balance("alice", cents(3000)),
				balance("bob", cents(-1000)),
				balance("charlie", cents(-2000)),
			},
			want: []models.SettlementTransaction{
				{FromMemberID: "charlie", ToMemberID: "alice", Amount: cents(2000), Currency: "USD"},
				{FromMemberID: "bob", ToMemberID: "alice", Amount: cents(1000), Currency: "USD"},
			},
		},
		{
			name: "one debtor one creditor",
			balances: []models.MemberBalance{
				balance("alice", cents(500)),
				balance("bob", cents(-500)),
			},
			want: []models.SettlementTransaction{
				{FromMemberID: "bob", ToMemberID: "alice", Amount: cents(500), Currency: "USD"},
			},
		},
		{
			name: "everyone already settled",
			balances: []models.MemberBalance{
				balance("alice", cents(0)),
				balance("bob", cents(0)),
			},
			want: nil,
		},
		{
			name:     "no balances",
			balances: nil,
			want:     nil,
		},
		{
			name: "ties broken by input order",
			balances: []models.MemberBalance{
				balance("alice", cents(1000)),
				balance("bob", cents(1000)),
				balance("charlie", cents(-1000)),
				balance("dana", cents(-1000)),
			},
			want: []models.SettlementTransaction{
				{FromMemberID: "charlie", ToMemberID: "alice", Amount: cents(1000), Currency: "USD"},
				{FromMemberID: "dana", ToMemberID: "bob", Amount: cents(1000), Currency: "USD"},
			},
		},
		{
			name: "sub-cent residue is treated as settled",
			balances: []models.MemberBalance{
				balance("alice", cents(0)),
				balance("bob", cents(0)),
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Simplify(tt.balances, "USD")
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Simplify() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Applying every emitted transaction must bring each balance within one
// cent of zero, using at most one transaction fewer than there are
// non-zero balances.
func TestSimplifySettlesEverything(t *testing.T) {
	cases := [][]models.MemberBalance{
		{
			balance("a", cents(3333)), balance("b", cents(-1111)),
			balance("c", cents(-1111)), balance("d", cents(-1111)),
		},
		{
			balance("a", cents(10000)), balance("b", cents(-9999)),
			balance("c", cents(-1)),
		},
		{
			balance("a", cents(250)), balance("b", cents(750)),
			balance("c", cents(-400)), balance("d", cents(-600)),
		},
		{
			balance("a", cents(1)), balance("b", cents(-1)),
		},
	}

	for _, balances := range cases {
		transactions := Simplify(balances, "USD")

		remaining := make(map[string]money.Amount, len(balances))
		nonZero := 0
		for _, b := range balances {
			remaining[b.MemberID] = b.NetBalance
			if b.NetBalance != 0 {
				nonZero++
			}
		}
		for _, tx := range transactions {
			remaining[tx.FromMemberID] += tx.Amount
			remaining[tx.ToMemberID] -= tx.Amount
		}

		for id, r := range remaining {
			if r.Abs() >= money.Epsilon {
				t.Errorf("balances %v: %s left with %s", balances, id, r)
			}
		}
		if nonZero > 0 && len(transactions) > nonZero-1 {
			t.Errorf("balances %v: %d transactions for %d non-zero balances", balances, len(transactions), nonZero)
		}
	}
}

// Non-conserving input is an upstream bug: the simplifier still terminates,
// and the residue stays visible instead of becoming a wrong plan.
func TestSimplifyNonConservingInput(t *testing.T) {
	balances := []models.MemberBalance{
		balance("alice", cents(3000)),
		balance("bob", cents(-1000)),
	}

	transactions := Simplify(balances, "USD")
	if len(transactions) != 1 {
		t.Fatalf("got %d transactions, want 1", len(transactions))
	}
	if transactions[0].Amount != cents(1000) {
		t.Errorf("transaction = %s, want the 10.00 bob can cover", transactions[0].Amount)
	}
	// Alice's remaining 20.00 is the discrepancy the caller must surface.
}

func TestSimplifyDeterminism(t *testing.T) {
	balances := []models.MemberBalance{
		balance("alice", cents(1234)),
		balance("bob", cents(-617)),
		balance("charlie", cents(-617)),
	}

	first := Simplify(balances, "USD")
	second := Simplify(balances, "USD")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical input produced different output:\n%v\n%v", first, second)
	}
}

func TestSimplifyDoesNotMutateInput(t *testing.T) {
	balances := []models.MemberBalance{
		balance("alice", cents(500)),
		balance("bob", cents(-500)),
	}

	Simplify(balances, "USD")
	if balances[0].NetBalance != cents(500) || balances[1].NetBalance != cents(-500) {
		t.Errorf("input mutated: %v", balances)
	}
}
