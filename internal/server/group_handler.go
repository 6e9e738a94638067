package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"splitledger/internal/middleware"
	"splitledger/internal/service"
)

// GroupHandler exposes group and member management.
type GroupHandler struct {
	groups          *service.GroupService
	defaultCurrency string
}

func NewGroupHandler(groups *service.GroupService, defaultCurrency string) *GroupHandler {
	return &GroupHandler{groups: groups, defaultCurrency: defaultCurrency}
}

func (h *GroupHandler) Create(c *gin.Context) {
	var req createGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = h.defaultCurrency
	}

	group, err := h.groups.CreateGroup(c.Request.Context(), middleware.UserID(c), req.Name, currency)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toGroupResponse(group))
}

func (h *GroupHandler) Get(c *gin.Context) {
	group, err := h.groups.GetGroup(c.Request.Context(), middleware.UserID(c), c.Param("groupId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toGroupResponse(group))
}

func (h *GroupHandler) List(c *gin.Context) {
	groups, err := h.groups.ListGroups(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]groupResponse, 0, len(groups))
	for _, g := range groups {
		resp = append(resp, toGroupResponse(g))
	}
	c.JSON(http.StatusOK, gin.H{"groups": resp})
}

func (h *GroupHandler) AddMembers(c *gin.Context) {
	var req addMembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	inputs := make([]service.MemberInput, 0, len(req.Members))
	for _, m := range req.Members {
		inputs = append(inputs, service.MemberInput{UserID: m.UserID, PlaceholderName: m.PlaceholderName})
	}

	members, err := h.groups.AddMembers(c.Request.Context(), middleware.UserID(c), c.Param("groupId"), inputs)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]memberResponse, 0, len(members))
	for _, m := range members {
		resp = append(resp, toMemberResponse(m))
	}
	c.JSON(http.StatusCreated, gin.H{"members": resp})
}
