package service

import (
	"context"
	"log/slog"

	"splitledger/internal/calculator"
	"splitledger/internal/metrics"
	"splitledger/internal/models"
	"splitledger/internal/money"
	"splitledger/internal/storage"
)

// SettlementService computes settlement plans and records payments.
type SettlementService struct {
	store storage.Store
}

// NewSettlementService creates a SettlementService.
func NewSettlementService(store storage.Store) *SettlementService {
	return &SettlementService{store: store}
}

// SettlementPlan is the computed view returned by ComputeSettlement.
type SettlementPlan struct {
	Transactions          []models.SettlementTransaction `json:"transactions"`
	MemberBalances        []models.MemberBalance         `json:"memberBalances"`
	TotalSettlementAmount money.Amount                   `json:"totalSettlementAmount"`
	Currency              string                         `json:"currency"`
	MinimumTransactions   int                            `json:"minimumTransactions"`
}

// ComputeSettlement derives the current balances of a group and a minimal
// set of transfers that settles them.
//
// Only confirmed expenses count toward balances: this is where the status
// filter the aggregator deliberately omits is applied. Recorded
// settlements are folded in so already-made payments drop out of the plan.
func (s *SettlementService) ComputeSettlement(ctx context.Context, userID, groupID string) (*SettlementPlan, error) {
	group, err := s.memberGroup(ctx, userID, groupID)
	if err != nil {
		return nil, err
	}

	expenses, err := s.store.ListExpensesByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	confirmed := expenses[:0:0]
	for _, e := range expenses {
		if e.Status == models.StatusConfirmed {
			confirmed = append(confirmed, e)
		}
	}

	splits, err := s.store.ListSplitsByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	settlements, err := s.store.ListSettlementsByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	balances := calculator.AggregateBalances(group.Members, confirmed, splits)
	balances = calculator.ApplySettlements(balances, settlements)
	transactions := calculator.Simplify(balances, group.Currency)

	var total money.Amount
	for _, tx := range transactions {
		total += tx.Amount
	}

	metrics.SettlementPlans.Inc()
	slog.Debug("settlement plan computed",
		"group_id", groupID,
		"expenses", len(confirmed),
		"transactions", len(transactions),
		"total", total,
	)

	return &SettlementPlan{
		Transactions:          transactions,
		MemberBalances:        balances,
		TotalSettlementAmount: total,
		Currency:              group.Currency,
		MinimumTransactions:   len(transactions),
	}, nil
}

// SettlementInput is a request to record a payment between two members.
type SettlementInput struct {
	FromMemberID string
	ToMemberID   string
	Amount       money.Amount
	Note         string
}

// RecordSettlement persists a payment between two group members.
func (s *SettlementService) RecordSettlement(ctx context.Context, userID, groupID string, in SettlementInput) (*models.Settlement, error) {
	group, err := s.memberGroup(ctx, userID, groupID)
	if err != nil {
		return nil, err
	}

	if in.Amount <= 0 || in.FromMemberID == in.ToMemberID {
		return nil, ErrInvalidSettlement
	}
	if group.MemberByID(in.FromMemberID) == nil || group.MemberByID(in.ToMemberID) == nil {
		return nil, ErrUnknownMember
	}

	settlement := &models.Settlement{
		GroupID:      groupID,
		FromMemberID: in.FromMemberID,
		ToMemberID:   in.ToMemberID,
		Amount:       in.Amount,
		Currency:     group.Currency,
		Note:         in.Note,
		CreatedBy:    userID,
	}
	if err := s.store.CreateSettlement(ctx, settlement); err != nil {
		slog.Error("RecordSettlement failed", "group_id", groupID, "error", err)
		return nil, err
	}
	return settlement, nil
}

// ListSettlements retrieves a group's recorded settlements, newest first.
func (s *SettlementService) ListSettlements(ctx context.Context, userID, groupID string) ([]models.Settlement, error) {
	if _, err := s.memberGroup(ctx, userID, groupID); err != nil {
		return nil, err
	}
	return s.store.ListSettlementsByGroup(ctx, groupID)
}

func (s *SettlementService) memberGroup(ctx context.Context, userID, groupID string) (*models.Group, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group.MemberByUserID(userID) == nil {
		return nil, ErrNotGroupMember
	}
	return group, nil
}
