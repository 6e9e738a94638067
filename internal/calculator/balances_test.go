package calculator

import (
	"reflect"
	"testing"

	"splitledger/internal/models"
	"splitledger/internal/money"
)

func member(id, name string) models.Member {
	return models.Member{ID: id, Name: name}
}

func expense(id string, total money.Amount, payers ...models.ExpensePayer) models.Expense {
	return models.Expense{
		ID:          id,
		TotalAmount: total,
		Status:      models.StatusConfirmed,
		Payers:      payers,
	}
}

func split(expenseID, memberID string, amount money.Amount) models.Split {
	return models.Split{ExpenseID: expenseID, MemberID: memberID, Amount: amount}
}

func TestAggregateBalances(t *testing.T) {
	members := []models.Member{
		member("alice", "Alice"),
		member("bob", "Bob"),
		member("charlie", "Charlie"),
	}

	t.Run("single payer equal shares", func(t *testing.T) {
		expenses := []models.Expense{
			expense("e1", cents(3000), models.ExpensePayer{MemberID: "alice", Amount: cents(3000)}),
		}
		splits := []models.Split{
			split("e1", "alice", cents(1000)),
			split("e1", "bob", cents(1000)),
			split("e1", "charlie", cents(1000)),
		}

		balances := AggregateBalances(members, expenses, splits)
		if len(balances) != 3 {
			t.Fatalf("got %d balances, want 3", len(balances))
		}

		if balances[0].TotalPaid != cents(3000) || balances[0].NetBalance != cents(2000) {
			t.Errorf("alice = %+v, want paid 30.00 net +20.00", balances[0])
		}
		if balances[1].NetBalance != cents(-1000) {
			t.Errorf("bob net = %s, want -10.00", balances[1].NetBalance)
		}
		if balances[2].NetBalance != cents(-1000) {
			t.Errorf("charlie net = %s, want -10.00", balances[2].NetBalance)
		}
	})

	t.Run("multiple payers on one expense", func(t *testing.T) {
		expenses := []models.Expense{
			expense("e1", cents(6000),
				models.ExpensePayer{MemberID: "alice", Amount: cents(4000)},
				models.ExpensePayer{MemberID: "bob", Amount: cents(2000)},
			),
		}
		splits := []models.Split{
			split("e1", "alice", cents(2000)),
			split("e1", "bob", cents(2000)),
			split("e1", "charlie", cents(2000)),
		}

		balances := AggregateBalances(members, expenses, splits)
		if balances[0].NetBalance != cents(2000) {
			t.Errorf("alice net = %s, want +20.00", balances[0].NetBalance)
		}
		if balances[1].NetBalance != cents(0) {
			t.Errorf("bob net = %s, want 0.00", balances[1].NetBalance)
		}
		if balances[2].NetBalance != cents(-2000) {
			t.Errorf("charlie net = %s, want -20.00", balances[2].NetBalance)
		}
	})

	t.Run("payer who is not a participant", func(t *testing.T) {
		// Alice fronts the whole dinner but eats nothing.
		expenses := []models.Expense{
			expense("e1", cents(2000), models.ExpensePayer{MemberID: "alice", Amount: cents(2000)}),
		}
		splits := []models.Split{
			split("e1", "bob", cents(1000)),
			split("e1", "charlie", cents(1000)),
		}

		balances := AggregateBalances(members, expenses, splits)
		if balances[0].TotalPaid != cents(2000) || balances[0].TotalShare != cents(0) {
			t.Errorf("alice = %+v, want paid 20.00 share 0.00", balances[0])
		}
		if balances[0].NetBalance != cents(2000) {
			t.Errorf("alice net = %s, want +20.00", balances[0].NetBalance)
		}
	})

	t.Run("member with no expenses gets an all-zero row", func(t *testing.T) {
		balances := AggregateBalances(members, nil, nil)
		if len(balances) != 3 {
			t.Fatalf("got %d balances, want 3", len(balances))
		}
		for _, b := range balances {
			if b.TotalPaid != 0 || b.TotalShare != 0 || b.NetBalance != 0 {
				t.Errorf("%s = %+v, want all zeros", b.MemberID, b)
			}
		}
	})

	t.Run("splits of an absent expense are ignored", func(t *testing.T) {
		splits := []models.Split{split("ghost", "bob", cents(500))}
		balances := AggregateBalances(members, nil, splits)
		if balances[1].TotalShare != 0 {
			t.Errorf("bob share = %s, want 0.00", balances[1].TotalShare)
		}
	})

	t.Run("off-roster members are appended in first-appearance order", func(t *testing.T) {
		expenses := []models.Expense{
			expense("e1", cents(1000), models.ExpensePayer{MemberID: "dave", Amount: cents(1000)}),
		}
		splits := []models.Split{split("e1", "erin", cents(1000))}

		balances := AggregateBalances(members, expenses, splits)
		if len(balances) != 5 {
			t.Fatalf("got %d balances, want 5", len(balances))
		}
		if balances[3].MemberID != "dave" || balances[4].MemberID != "erin" {
			t.Errorf("tail order = %s, %s; want dave, erin", balances[3].MemberID, balances[4].MemberID)
		}
	})
}

// The aggregator applies no status filter: whatever expense subset the
// caller passes is what counts. Both halves of the contract are exercised
// here so the behavior is documented, not accidental.
func TestAggregateBalancesStatusContract(t *testing.T) {
	members := []models.Member{member("alice", "Alice"), member("bob", "Bob")}

	confirmed := expense("e1", cents(1000), models.ExpensePayer{MemberID: "alice", Amount: cents(1000)})
	draft := expense("e2", cents(4000), models.ExpensePayer{MemberID: "bob", Amount: cents(4000)})
	draft.Status = models.StatusPendingConfirmation

	splits := []models.Split{
		split("e1", "alice", cents(500)),
		split("e1", "bob", cents(500)),
		split("e2", "alice", cents(2000)),
		split("e2", "bob", cents(2000)),
	}

	t.Run("caller pre-filters to confirmed", func(t *testing.T) {
		balances := AggregateBalances(members, []models.Expense{confirmed}, splits)
		if balances[0].NetBalance != cents(500) {
			t.Errorf("alice net = %s, want +5.00", balances[0].NetBalance)
		}
		if balances[1].NetBalance != cents(-500) {
			t.Errorf("bob net = %s, want -5.00", balances[1].NetBalance)
		}
	})

	t.Run("caller forgets to filter and the draft counts", func(t *testing.T) {
		balances := AggregateBalances(members, []models.Expense{confirmed, draft}, splits)
		if balances[0].NetBalance != cents(-1500) {
			t.Errorf("alice net = %s, want -15.00", balances[0].NetBalance)
		}
		if balances[1].NetBalance != cents(1500) {
			t.Errorf("bob net = %s, want +15.00", balances[1].NetBalance)
		}
	})
}

// For any expense set whose payers and splits individually sum to each
// expense total, the net balances sum to zero.
func TestBalanceConservation(t *testing.T) {
	members := []models.Member{
		member("alice", "Alice"), member("bob", "Bob"),
		member("charlie", "Charlie"), member("dana", "Dana"),
	}
	ids := []string{"alice", "bob", "charlie", "dana"}

	var expenses []models.Expense
	var splits []models.Split
	totals := []money.Amount{cents(1001), cents(333), cents(9999), cents(50), cents(123457)}
	for i, total := range totals {
		id := string(rune('a' + i))
		payer := ids[i%len(ids)]
		expenses = append(expenses, expense(id, total, models.ExpensePayer{MemberID: payer, Amount: total}))

		participants := make([]ShareInput, len(ids))
		for j, m := range ids {
			participants[j] = ShareInput{MemberID: m}
		}
		computed, err := ComputeSplits(total, models.SplitEqual, participants)
		if err != nil {
			t.Fatalf("ComputeSplits() error = %v", err)
		}
		for _, s := range computed {
			s.ExpenseID = id
			splits = append(splits, s)
		}
	}

	balances := AggregateBalances(members, expenses, splits)
	var sum money.Amount
	for _, b := range balances {
		sum += b.NetBalance
	}
	if sum != 0 {
		t.Errorf("net balances sum to %s, want 0.00", sum)
	}
}

func TestApplySettlements(t *testing.T) {
	balances := []models.MemberBalance{
		{MemberID: "alice", MemberName: "Alice", TotalPaid: cents(3000), NetBalance: cents(3000)},
		{MemberID: "bob", MemberName: "Bob", TotalShare: cents(3000), NetBalance: cents(-3000)},
	}
	settlements := []models.Settlement{
		{FromMemberID: "bob", ToMemberID: "alice", Amount: cents(3000)},
	}

	adjusted := ApplySettlements(balances, settlements)
	for _, b := range adjusted {
		if b.NetBalance != 0 {
			t.Errorf("%s net = %s, want 0.00 after settling", b.MemberID, b.NetBalance)
		}
	}

	// The input is not mutated.
	if balances[0].NetBalance != cents(3000) {
		t.Errorf("input mutated: alice net = %s", balances[0].NetBalance)
	}
}

func TestAggregateBalancesDeterminism(t *testing.T) {
	members := []models.Member{member("alice", "Alice"), member("bob", "Bob")}
	expenses := []models.Expense{
		expense("e1", cents(999), models.ExpensePayer{MemberID: "alice", Amount: cents(999)}),
	}
	splits := []models.Split{
		split("e1", "alice", cents(500)),
		split("e1", "bob", cents(499)),
	}

	first := AggregateBalances(members, expenses, splits)
	second := AggregateBalances(members, expenses, splits)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical input produced different output:\n%v\n%v", first, second)
	}
}
