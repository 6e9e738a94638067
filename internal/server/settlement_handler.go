package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"splitledger/internal/middleware"
	"splitledger/internal/money"
	"splitledger/internal/service"
)

// SettlementHandler exposes settlement plans and recorded payments.
type SettlementHandler struct {
	settlements *service.SettlementService
}

func NewSettlementHandler(settlements *service.SettlementService) *SettlementHandler {
	return &SettlementHandler{settlements: settlements}
}

// Plan computes the current settlement plan for a group: per-member
// balances from confirmed expenses, adjusted for recorded payments,
// and the minimal transaction list that settles all debts.
func (h *SettlementHandler) Plan(c *gin.Context) {
	plan, err := h.settlements.ComputeSettlement(c.Request.Context(), middleware.UserID(c), c.Param("groupId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *SettlementHandler) Record(c *gin.Context) {
	var req recordSettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	amount, err := money.Parse(req.Amount)
	if err != nil {
		badRequest(c, err)
		return
	}

	settlement, err := h.settlements.RecordSettlement(c.Request.Context(), middleware.UserID(c), c.Param("groupId"), service.SettlementInput{
		FromMemberID: req.FromMemberID,
		ToMemberID:   req.ToMemberID,
		Amount:       amount,
		Note:         req.Note,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toSettlementResponse(settlement))
}

func (h *SettlementHandler) List(c *gin.Context) {
	settlements, err := h.settlements.ListSettlements(c.Request.Context(), middleware.UserID(c), c.Param("groupId"))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]settlementResponse, 0, len(settlements))
	for i := range settlements {
		resp = append(resp, toSettlementResponse(&settlements[i]))
	}
	c.JSON(http.StatusOK, gin.H{"settlements": resp})
}
