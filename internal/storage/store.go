// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"splitledger/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Store defines the interface for splitledger storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// etc.) without changing the service layer.
type Store interface {
	// CreateUser persists a new user. The user ID is populated by the store.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email address.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// CreateGroup persists a new group together with its initial members.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group with its full member roster, in
	// insertion order.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroupsByUser retrieves every group the user is a member of.
	ListGroupsByUser(ctx context.Context, userID string) ([]*models.Group, error)

	// AddGroupMembers appends members to a group's roster. Each member
	// must satisfy the exactly-one-of user/placeholder invariant.
	AddGroupMembers(ctx context.Context, groupID string, members []models.Member) ([]models.Member, error)

	// CreateExpense persists an expense with its payers and splits in a
	// single transaction: everything is written or nothing is.
	CreateExpense(ctx context.Context, expense *models.Expense, splits []models.Split) error

	// GetExpense retrieves an expense with its payers.
	GetExpense(ctx context.Context, expenseID string) (*models.Expense, error)

	// ListExpensesByGroup retrieves a group's expenses (payers loaded),
	// oldest first.
	ListExpensesByGroup(ctx context.Context, groupID string) ([]models.Expense, error)

	// ListSplitsByExpense retrieves the splits of one expense.
	ListSplitsByExpense(ctx context.Context, expenseID string) ([]models.Split, error)

	// ListSplitsByGroup retrieves every split belonging to a group's
	// expenses.
	ListSplitsByGroup(ctx context.Context, groupID string) ([]models.Split, error)

	// UpdateExpense replaces an expense's fields, payers and splits in a
	// single transaction.
	UpdateExpense(ctx context.Context, expense *models.Expense, splits []models.Split) error

	// UpdateExpenseStatus transitions an expense's lifecycle status.
	UpdateExpenseStatus(ctx context.Context, expenseID string, status models.ExpenseStatus) error

	// DeleteExpense removes an expense with its payers and splits.
	DeleteExpense(ctx context.Context, expenseID string) error

	// CreateSettlement records a payment between two members.
	CreateSettlement(ctx context.Context, settlement *models.Settlement) error

	// ListSettlementsByGroup retrieves a group's recorded settlements,
	// newest first.
	ListSettlementsByGroup(ctx context.Context, groupID string) ([]models.Settlement, error)

	// DeleteSettlement removes a recorded settlement.
	DeleteSettlement(ctx context.Context, settlementID string) error

	// Close releases any resources held by the store.
	Close() error
}
