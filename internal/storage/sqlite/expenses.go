package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"splitledger/internal/models"
	"splitledger/internal/money"
	"splitledger/internal/storage"
)

// CreateExpense persists an expense with its payers and splits in a single
// transaction. Either the whole set is written or nothing is, so a failed
// split insert never leaves a half-created expense behind.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense, splits []models.Split) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if expense.CreatedAt == 0 {
		expense.CreatedAt = now
	}
	expense.UpdatedAt = now
	if expense.Status == "" {
		expense.Status = models.StatusPendingConfirmation
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO expenses (id, group_id, description, total_amount, currency, split_method, status, created_by, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.GroupID, expense.Description, expense.TotalAmount.MinorUnits(),
		expense.Currency, expense.SplitMethod, expense.Status, expense.CreatedBy,
		expense.CreatedAt, expense.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	if err := insertPayersAndSplits(ctx, tx, expense, splits); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func insertPayersAndSplits(ctx context.Context, tx *sql.Tx, expense *models.Expense, splits []models.Split) error {
	for _, payer := range expense.Payers {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO expense_payers (expense_id, member_id, amount) VALUES (?, ?, ?)",
			expense.ID, payer.MemberID, payer.Amount.MinorUnits(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert payer: %w", err)
		}
	}

	for i := range splits {
		split := &splits[i]
		if split.ID == "" {
			split.ID = uuid.New().String()
		}
		split.ExpenseID = expense.ID

		var percentage, description interface{}
		if split.Percentage != nil {
			percentage = split.Percentage.String()
		}
		if split.ShareDescription != "" {
			description = split.ShareDescription
		}

		_, err := tx.ExecContext(ctx,
			`INSERT INTO splits (id, expense_id, member_id, amount, percentage, share_description)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			split.ID, split.ExpenseID, split.MemberID, split.Amount.MinorUnits(), percentage, description,
		)
		if err != nil {
			return fmt.Errorf("failed to insert split: %w", err)
		}
	}
	return nil
}

// GetExpense retrieves an expense with its payers.
func (s *SQLiteStore) GetExpense(ctx context.Context, expenseID string) (*models.Expense, error) {
	expense := &models.Expense{}
	var total int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id, group_id, description, total_amount, currency, split_method, status, created_by, created_at, updated_at
		 FROM expenses WHERE id = ?`,
		expenseID,
	).Scan(&expense.ID, &expense.GroupID, &expense.Description, &total,
		&expense.Currency, &expense.SplitMethod, &expense.Status, &expense.CreatedBy,
		&expense.CreatedAt, &expense.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	expense.TotalAmount = money.FromMinorUnits(total)

	if err := s.loadPayers(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *SQLiteStore) loadPayers(ctx context.Context, expense *models.Expense) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT member_id, amount FROM expense_payers WHERE expense_id = ? ORDER BY rowid",
		expense.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get payers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var payer models.ExpensePayer
		var amount int64
		if err := rows.Scan(&payer.MemberID, &amount); err != nil {
			return fmt.Errorf("failed to scan payer: %w", err)
		}
		payer.Amount = money.FromMinorUnits(amount)
		expense.Payers = append(expense.Payers, payer)
	}
	return rows.Err()
}

// ListExpensesByGroup retrieves a group's expenses with payers, oldest first.
func (s *SQLiteStore) ListExpensesByGroup(ctx context.Context, groupID string) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, group_id, description, total_amount, currency, split_method, status, created_by, created_at, updated_at
		 FROM expenses WHERE group_id = ? ORDER BY created_at, rowid`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		var total int64
		if err := rows.Scan(&e.ID, &e.GroupID, &e.Description, &total,
			&e.Currency, &e.SplitMethod, &e.Status, &e.CreatedBy,
			&e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		e.TotalAmount = money.FromMinorUnits(total)
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	for i := range expenses {
		if err := s.loadPayers(ctx, &expenses[i]); err != nil {
			return nil, err
		}
	}
	return expenses, nil
}

// ListSplitsByExpense retrieves the splits of one expense in insertion order.
func (s *SQLiteStore) ListSplitsByExpense(ctx context.Context, expenseID string) ([]models.Split, error) {
	return s.querySplits(ctx,
		`SELECT id, expense_id, member_id, amount, percentage, share_description
		 FROM splits WHERE expense_id = ? ORDER BY rowid`,
		expenseID,
	)
}

// ListSplitsByGroup retrieves every split belonging to a group's expenses.
func (s *SQLiteStore) ListSplitsByGroup(ctx context.Context, groupID string) ([]models.Split, error) {
	return s.querySplits(ctx,
		`SELECT sp.id, sp.expense_id, sp.member_id, sp.amount, sp.percentage, sp.share_description
		 FROM splits sp JOIN expenses e ON e.id = sp.expense_id
		 WHERE e.group_id = ? ORDER BY sp.rowid`,
		groupID,
	)
}

func (s *SQLiteStore) querySplits(ctx context.Context, query string, args ...interface{}) ([]models.Split, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query splits: %w", err)
	}
	defer rows.Close()

	var splits []models.Split
	for rows.Next() {
		var sp models.Split
		var amount int64
		var percentage, description sql.NullString
		if err := rows.Scan(&sp.ID, &sp.ExpenseID, &sp.MemberID, &amount, &percentage, &description); err != nil {
			return nil, fmt.Errorf("failed to scan split: %w", err)
		}
		sp.Amount = money.FromMinorUnits(amount)
		if percentage.Valid {
			d, err := decimal.NewFromString(percentage.String)
			if err != nil {
				return nil, fmt.Errorf("failed to parse stored percentage: %w", err)
			}
			sp.Percentage = &d
		}
		sp.ShareDescription = description.String
		splits = append(splits, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate splits: %w", err)
	}
	return splits, nil
}

// UpdateExpense replaces an expense's fields, payers and splits in one
// transaction.
func (s *SQLiteStore) UpdateExpense(ctx context.Context, expense *models.Expense, splits []models.Split) error {
	expense.UpdatedAt = time.Now().Unix()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE expenses SET description = ?, total_amount = ?, currency = ?, split_method = ?, status = ?, updated_at = ?
		 WHERE id = ?`,
		expense.Description, expense.TotalAmount.MinorUnits(), expense.Currency,
		expense.SplitMethod, expense.Status, expense.UpdatedAt, expense.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return storage.ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM expense_payers WHERE expense_id = ?", expense.ID); err != nil {
		return fmt.Errorf("failed to clear payers: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM splits WHERE expense_id = ?", expense.ID); err != nil {
		return fmt.Errorf("failed to clear splits: %w", err)
	}

	if err := insertPayersAndSplits(ctx, tx, expense, splits); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// UpdateExpenseStatus transitions an expense's lifecycle status.
func (s *SQLiteStore) UpdateExpenseStatus(ctx context.Context, expenseID string, status models.ExpenseStatus) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE expenses SET status = ?, updated_at = ? WHERE id = ?",
		status, time.Now().Unix(), expenseID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense status: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeleteExpense removes an expense; payers and splits cascade.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, expenseID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return storage.ErrNotFound
	}
	return nil
}
