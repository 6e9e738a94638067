package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"splitledger/internal/calculator"
	"splitledger/internal/metrics"
	"splitledger/internal/models"
	"splitledger/internal/money"
	"splitledger/internal/storage"
)

// ExpenseService creates and manages expenses together with their splits.
type ExpenseService struct {
	store storage.Store
}

// NewExpenseService creates an ExpenseService.
func NewExpenseService(store storage.Store) *ExpenseService {
	return &ExpenseService{store: store}
}

// PayerInput describes one paying member in an expense request.
type PayerInput struct {
	MemberID string
	Amount   money.Amount
}

// ParticipantInput describes one participant in an expense request.
// Amount is used by the amount split method, Percentage by the
// percentage method; both are ignored for equal splits.
type ParticipantInput struct {
	MemberID   string
	Amount     money.Amount
	Percentage *decimal.Decimal
}

// ExpenseInput is a request to create or update an expense.
type ExpenseInput struct {
	GroupID      string
	Description  string
	TotalAmount  money.Amount
	Currency     string
	SplitMethod  models.SplitMethod
	Payers       []PayerInput
	Participants []ParticipantInput
}

// CreateExpense validates the request, computes the splits and persists
// the expense, its payers and its splits atomically. On any validation
// failure nothing is written: the expense and its splits are created
// together or not at all.
func (s *ExpenseService) CreateExpense(ctx context.Context, userID string, in ExpenseInput) (*models.Expense, []models.Split, error) {
	group, err := s.memberGroup(ctx, userID, in.GroupID)
	if err != nil {
		return nil, nil, err
	}

	expense, splits, err := s.buildExpense(group, userID, in)
	if err != nil {
		return nil, nil, err
	}
	expense.Status = models.StatusPendingConfirmation
	expense.CreatedBy = userID

	if err := s.store.CreateExpense(ctx, expense, splits); err != nil {
		slog.Error("CreateExpense failed", "group_id", in.GroupID, "error", err)
		return nil, nil, err
	}

	metrics.ExpensesCreated.WithLabelValues(string(expense.SplitMethod)).Inc()
	return expense, splits, nil
}

// buildExpense runs all validation and split computation without touching
// storage.
func (s *ExpenseService) buildExpense(group *models.Group, userID string, in ExpenseInput) (*models.Expense, []models.Split, error) {
	currency := in.Currency
	if currency == "" {
		currency = group.Currency
	}
	if currency != group.Currency {
		return nil, nil, ErrCurrencyMismatch
	}

	payers := make([]models.ExpensePayer, 0, len(in.Payers))
	if len(in.Payers) == 0 {
		// No explicit payers: the acting user fronts the whole amount.
		self := group.MemberByUserID(userID)
		if self == nil {
			return nil, nil, ErrNotGroupMember
		}
		payers = append(payers, models.ExpensePayer{MemberID: self.ID, Amount: in.TotalAmount})
	} else {
		var paid money.Amount
		seen := make(map[string]bool, len(in.Payers))
		for _, p := range in.Payers {
			if group.MemberByID(p.MemberID) == nil {
				return nil, nil, ErrUnknownMember
			}
			if seen[p.MemberID] {
				return nil, nil, fmt.Errorf("member %s: %w", p.MemberID, ErrDuplicatePayer)
			}
			seen[p.MemberID] = true
			paid += p.Amount
			payers = append(payers, models.ExpensePayer{MemberID: p.MemberID, Amount: p.Amount})
		}
		if (paid - in.TotalAmount).Abs() >= money.Epsilon {
			return nil, nil, &PayerMismatchError{Expected: in.TotalAmount, Actual: paid}
		}
	}

	shares := make([]calculator.ShareInput, len(in.Participants))
	for i, p := range in.Participants {
		if group.MemberByID(p.MemberID) == nil {
			return nil, nil, ErrUnknownMember
		}
		shares[i] = calculator.ShareInput{
			MemberID:   p.MemberID,
			Amount:     p.Amount,
			Percentage: p.Percentage,
		}
	}

	splits, err := calculator.ComputeSplits(in.TotalAmount, in.SplitMethod, shares)
	if err != nil {
		metrics.SplitErrors.WithLabelValues(splitErrorKind(err)).Inc()
		return nil, nil, err
	}

	for i, explanation := range calculator.ExplainShares(splits, in.TotalAmount) {
		splits[i].ShareDescription = explanation.Rationale
	}

	expense := &models.Expense{
		GroupID:     group.ID,
		Description: in.Description,
		TotalAmount: in.TotalAmount,
		Currency:    currency,
		SplitMethod: in.SplitMethod,
		Payers:      payers,
	}
	return expense, splits, nil
}

// GetExpense retrieves an expense with its splits.
func (s *ExpenseService) GetExpense(ctx context.Context, userID, expenseID string) (*models.Expense, []models.Split, error) {
	expense, err := s.store.GetExpense(ctx, expenseID)
	if err != nil {
		return nil, nil, err
	}
	if _, err := s.memberGroup(ctx, userID, expense.GroupID); err != nil {
		return nil, nil, err
	}

	splits, err := s.store.ListSplitsByExpense(ctx, expenseID)
	if err != nil {
		return nil, nil, err
	}
	return expense, splits, nil
}

// ListExpenses retrieves a group's expenses, oldest first.
func (s *ExpenseService) ListExpenses(ctx context.Context, userID, groupID string) ([]models.Expense, error) {
	if _, err := s.memberGroup(ctx, userID, groupID); err != nil {
		return nil, err
	}
	return s.store.ListExpensesByGroup(ctx, groupID)
}

// UpdateExpense recomputes the splits for the new values and replaces the
// stored expense atomically. The expense drops back to the edited status
// and must be confirmed again before it counts toward balances.
func (s *ExpenseService) UpdateExpense(ctx context.Context, userID, expenseID string, in ExpenseInput) (*models.Expense, []models.Split, error) {
	existing, err := s.store.GetExpense(ctx, expenseID)
	if err != nil {
		return nil, nil, err
	}
	in.GroupID = existing.GroupID

	group, err := s.memberGroup(ctx, userID, existing.GroupID)
	if err != nil {
		return nil, nil, err
	}

	expense, splits, err := s.buildExpense(group, userID, in)
	if err != nil {
		return nil, nil, err
	}
	expense.ID = existing.ID
	expense.CreatedBy = existing.CreatedBy
	expense.CreatedAt = existing.CreatedAt
	expense.Status = models.StatusEdited

	if err := s.store.UpdateExpense(ctx, expense, splits); err != nil {
		slog.Error("UpdateExpense failed", "expense_id", expenseID, "error", err)
		return nil, nil, err
	}
	return expense, splits, nil
}

// ConfirmExpense transitions an expense to confirmed, making it eligible
// for balance aggregation.
func (s *ExpenseService) ConfirmExpense(ctx context.Context, userID, expenseID string) (*models.Expense, error) {
	expense, err := s.store.GetExpense(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if _, err := s.memberGroup(ctx, userID, expense.GroupID); err != nil {
		return nil, err
	}
	if expense.Status == models.StatusConfirmed {
		return nil, ErrInvalidStatus
	}

	if err := s.store.UpdateExpenseStatus(ctx, expenseID, models.StatusConfirmed); err != nil {
		return nil, err
	}
	expense.Status = models.StatusConfirmed
	return expense, nil
}

// DeleteExpense removes an expense with its payers and splits.
func (s *ExpenseService) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	expense, err := s.store.GetExpense(ctx, expenseID)
	if err != nil {
		return err
	}
	if _, err := s.memberGroup(ctx, userID, expense.GroupID); err != nil {
		return err
	}
	return s.store.DeleteExpense(ctx, expenseID)
}

func (s *ExpenseService) memberGroup(ctx context.Context, userID, groupID string) (*models.Group, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group.MemberByUserID(userID) == nil {
		return nil, ErrNotGroupMember
	}
	return group, nil
}

func splitErrorKind(err error) string {
	switch {
	case err == calculator.ErrInvalidAmount:
		return "invalid_amount"
	case err == calculator.ErrEmptyParticipants:
		return "empty_participants"
	case err == calculator.ErrUnknownSplitMethod:
		return "unknown_split_method"
	default:
		switch err.(type) {
		case *calculator.DuplicateParticipantError:
			return "duplicate_participant"
		case *calculator.AmountMismatchError:
			return "amount_mismatch"
		case *calculator.PercentageMismatchError:
			return "percentage_mismatch"
		}
	}
	return "other"
}
