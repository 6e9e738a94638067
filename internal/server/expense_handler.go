package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"splitledger/internal/middleware"
	"splitledger/internal/service"
)

// ExpenseHandler exposes expense CRUD and confirmation.
type ExpenseHandler struct {
	expenses *service.ExpenseService
}

func NewExpenseHandler(expenses *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

func (h *ExpenseHandler) Create(c *gin.Context) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	in, err := toExpenseInput(c.Param("groupId"), req)
	if err != nil {
		badRequest(c, err)
		return
	}

	expense, splits, err := h.expenses.CreateExpense(c.Request.Context(), middleware.UserID(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toExpenseResponse(expense, splits))
}

func (h *ExpenseHandler) Get(c *gin.Context) {
	expense, splits, err := h.expenses.GetExpense(c.Request.Context(), middleware.UserID(c), c.Param("expenseId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toExpenseResponse(expense, splits))
}

func (h *ExpenseHandler) List(c *gin.Context) {
	expenses, err := h.expenses.ListExpenses(c.Request.Context(), middleware.UserID(c), c.Param("groupId"))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]expenseResponse, 0, len(expenses))
	for i := range expenses {
		resp = append(resp, toExpenseResponse(&expenses[i], nil))
	}
	c.JSON(http.StatusOK, gin.H{"expenses": resp})
}

func (h *ExpenseHandler) Update(c *gin.Context) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	// The group is taken from the stored expense, not the request.
	in, err := toExpenseInput("", req)
	if err != nil {
		badRequest(c, err)
		return
	}

	expense, splits, err := h.expenses.UpdateExpense(c.Request.Context(), middleware.UserID(c), c.Param("expenseId"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toExpenseResponse(expense, splits))
}

func (h *ExpenseHandler) Confirm(c *gin.Context) {
	expense, err := h.expenses.ConfirmExpense(c.Request.Context(), middleware.UserID(c), c.Param("expenseId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toExpenseResponse(expense, nil))
}

func (h *ExpenseHandler) Delete(c *gin.Context) {
	if err := h.expenses.DeleteExpense(c.Request.Context(), middleware.UserID(c), c.Param("expenseId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
