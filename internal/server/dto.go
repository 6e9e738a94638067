package server

import (
	"github.com/shopspring/decimal"

	"splitledger/internal/models"
	"splitledger/internal/money"
	"splitledger/internal/service"
)

// Monetary amounts cross the API as decimal strings ("12.34") so
// clients never handle floats.

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type sessionResponse struct {
	Token  string       `json:"token"`
	Expiry int64        `json:"expiresAt"`
	User   userResponse `json:"user"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type createGroupRequest struct {
	Name     string `json:"name" binding:"required"`
	Currency string `json:"currency"`
}

type addMembersRequest struct {
	Members []memberRequest `json:"members" binding:"required,min=1"`
}

type memberRequest struct {
	UserID          string `json:"userId"`
	PlaceholderName string `json:"placeholderName"`
}

type memberResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	UserID        string `json:"userId,omitempty"`
	IsPlaceholder bool   `json:"isPlaceholder"`
}

type groupResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Currency  string           `json:"currency"`
	CreatedBy string           `json:"createdBy"`
	CreatedAt int64            `json:"createdAt"`
	Members   []memberResponse `json:"members,omitempty"`
}

type expenseRequest struct {
	Description  string               `json:"description" binding:"required"`
	TotalAmount  string               `json:"totalAmount" binding:"required"`
	Currency     string               `json:"currency"`
	SplitMethod  string               `json:"splitMethod" binding:"required"`
	Payers       []payerRequest       `json:"payers"`
	Participants []participantRequest `json:"participants" binding:"required,min=1"`
}

type payerRequest struct {
	MemberID string `json:"memberId" binding:"required"`
	Amount   string `json:"amount" binding:"required"`
}

type participantRequest struct {
	MemberID   string `json:"memberId" binding:"required"`
	Amount     string `json:"amount"`
	Percentage string `json:"percentage"`
}

type payerResponse struct {
	MemberID string       `json:"memberId"`
	Amount   money.Amount `json:"amount"`
}

type splitResponse struct {
	MemberID         string           `json:"memberId"`
	Amount           money.Amount     `json:"amount"`
	Percentage       *decimal.Decimal `json:"percentage,omitempty"`
	ShareDescription string           `json:"shareDescription"`
}

type expenseResponse struct {
	ID          string          `json:"id"`
	GroupID     string          `json:"groupId"`
	Description string          `json:"description"`
	TotalAmount money.Amount    `json:"totalAmount"`
	Currency    string          `json:"currency"`
	SplitMethod string          `json:"splitMethod"`
	Status      string          `json:"status"`
	Payers      []payerResponse `json:"payers"`
	Splits      []splitResponse `json:"splits,omitempty"`
	CreatedBy   string          `json:"createdBy"`
	CreatedAt   int64           `json:"createdAt"`
	UpdatedAt   int64           `json:"updatedAt"`
}

type recordSettlementRequest struct {
	FromMemberID string `json:"fromMemberId" binding:"required"`
	ToMemberID   string `json:"toMemberId" binding:"required"`
	Amount       string `json:"amount" binding:"required"`
	Note         string `json:"note"`
}

type settlementResponse struct {
	ID           string       `json:"id"`
	GroupID      string       `json:"groupId"`
	FromMemberID string       `json:"fromMemberId"`
	ToMemberID   string       `json:"toMemberId"`
	Amount       money.Amount `json:"amount"`
	Currency     string       `json:"currency"`
	Note         string       `json:"note,omitempty"`
	CreatedBy    string       `json:"createdBy"`
	CreatedAt    int64        `json:"createdAt"`
}

func toSessionResponse(s *service.Session) sessionResponse {
	return sessionResponse{
		Token:  s.Token,
		Expiry: s.Expiry.Unix(),
		User:   userResponse{ID: s.User.ID, Email: s.User.Email, Name: s.User.Name},
	}
}

func toGroupResponse(g *models.Group) groupResponse {
	resp := groupResponse{
		ID:        g.ID,
		Name:      g.Name,
		Currency:  g.Currency,
		CreatedBy: g.CreatedBy,
		CreatedAt: g.CreatedAt,
	}
	for _, m := range g.Members {
		resp.Members = append(resp.Members, toMemberResponse(m))
	}
	return resp
}

func toMemberResponse(m models.Member) memberResponse {
	return memberResponse{
		ID:            m.ID,
		Name:          m.Name,
		UserID:        m.UserID,
		IsPlaceholder: m.IsPlaceholder,
	}
}

func toExpenseResponse(e *models.Expense, splits []models.Split) expenseResponse {
	resp := expenseResponse{
		ID:          e.ID,
		GroupID:     e.GroupID,
		Description: e.Description,
		TotalAmount: e.TotalAmount,
		Currency:    e.Currency,
		SplitMethod: string(e.SplitMethod),
		Status:      string(e.Status),
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	for _, p := range e.Payers {
		resp.Payers = append(resp.Payers, payerResponse{MemberID: p.MemberID, Amount: p.Amount})
	}
	for _, s := range splits {
		resp.Splits = append(resp.Splits, splitResponse{
			MemberID:         s.MemberID,
			Amount:           s.Amount,
			Percentage:       s.Percentage,
			ShareDescription: s.ShareDescription,
		})
	}
	return resp
}

func toSettlementResponse(s *models.Settlement) settlementResponse {
	return settlementResponse{
		ID:           s.ID,
		GroupID:      s.GroupID,
		FromMemberID: s.FromMemberID,
		ToMemberID:   s.ToMemberID,
		Amount:       s.Amount,
		Currency:     s.Currency,
		Note:         s.Note,
		CreatedBy:    s.CreatedBy,
		CreatedAt:    s.CreatedAt,
	}
}

// toExpenseInput converts the wire request into a service input,
// parsing decimal strings into minor units.
func toExpenseInput(groupID string, req expenseRequest) (service.ExpenseInput, error) {
	total, err := money.Parse(req.TotalAmount)
	if err != nil {
		return service.ExpenseInput{}, err
	}

	in := service.ExpenseInput{
		GroupID:     groupID,
		Description: req.Description,
		TotalAmount: total,
		Currency:    req.Currency,
		SplitMethod: models.SplitMethod(req.SplitMethod),
	}

	for _, p := range req.Payers {
		amount, err := money.Parse(p.Amount)
		if err != nil {
			return service.ExpenseInput{}, err
		}
		in.Payers = append(in.Payers, service.PayerInput{MemberID: p.MemberID, Amount: amount})
	}

	for _, p := range req.Participants {
		part := service.ParticipantInput{MemberID: p.MemberID}
		if p.Amount != "" {
			amount, err := money.Parse(p.Amount)
			if err != nil {
				return service.ExpenseInput{}, err
			}
			part.Amount = amount
		}
		if p.Percentage != "" {
			pct, err := decimal.NewFromString(p.Percentage)
			if err != nil {
				return service.ExpenseInput{}, err
			}
			part.Percentage = &pct
		}
		in.Participants = append(in.Participants, part)
	}
	return in, nil
}
