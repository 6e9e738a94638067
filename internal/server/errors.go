package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"splitledger/internal/auth"
	"splitledger/internal/calculator"
	"splitledger/internal/service"
	"splitledger/internal/storage"
)

// errorBody is the structured error envelope returned on failure.
type errorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// respondError maps domain errors to HTTP status codes and the error
// taxonomy the API exposes. Split calculator failures keep their
// structured payloads so clients can show what went wrong.
func respondError(c *gin.Context, err error) {
	var (
		dup        *calculator.DuplicateParticipantError
		amountErr  *calculator.AmountMismatchError
		percentErr *calculator.PercentageMismatchError
		payerErr   *service.PayerMismatchError
	)

	switch {
	case errors.Is(err, calculator.ErrInvalidAmount):
		respond(c, http.StatusBadRequest, "invalid_amount", err, nil)
	case errors.Is(err, calculator.ErrEmptyParticipants):
		respond(c, http.StatusBadRequest, "empty_participants", err, nil)
	case errors.Is(err, calculator.ErrUnknownSplitMethod):
		respond(c, http.StatusBadRequest, "unknown_split_method", err, nil)
	case errors.As(err, &dup):
		respond(c, http.StatusBadRequest, "duplicate_participant", err, map[string]string{
			"memberId": dup.MemberID,
		})
	case errors.As(err, &amountErr):
		respond(c, http.StatusBadRequest, "amount_mismatch", err, map[string]string{
			"expected": amountErr.Expected.String(),
			"actual":   amountErr.Actual.String(),
		})
	case errors.As(err, &percentErr):
		respond(c, http.StatusBadRequest, "percentage_mismatch", err, map[string]string{
			"actual": percentErr.Actual.String(),
		})
	case errors.As(err, &payerErr):
		respond(c, http.StatusBadRequest, "payer_mismatch", err, map[string]string{
			"expected": payerErr.Expected.String(),
			"actual":   payerErr.Actual.String(),
		})
	case errors.Is(err, service.ErrDuplicatePayer):
		respond(c, http.StatusBadRequest, "duplicate_payer", err, nil)
	case errors.Is(err, service.ErrCurrencyMismatch),
		errors.Is(err, service.ErrUnknownMember),
		errors.Is(err, service.ErrMemberIdentity),
		errors.Is(err, service.ErrInvalidSettlement),
		errors.Is(err, service.ErrInvalidStatus):
		respond(c, http.StatusBadRequest, "invalid_request", err, nil)
	case errors.Is(err, service.ErrAlreadyMember):
		respond(c, http.StatusConflict, "already_member", err, nil)
	case errors.Is(err, service.ErrNotGroupMember):
		respond(c, http.StatusForbidden, "not_group_member", err, nil)
	case errors.Is(err, storage.ErrNotFound):
		respond(c, http.StatusNotFound, "not_found", err, nil)
	case errors.Is(err, auth.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, "invalid_credentials", err, nil)
	case errors.Is(err, auth.ErrEmailExists):
		respond(c, http.StatusConflict, "email_exists", err, nil)
	case errors.Is(err, auth.ErrWeakPassword):
		respond(c, http.StatusBadRequest, "weak_password", err, nil)
	default:
		respond(c, http.StatusInternalServerError, "internal", err, nil)
	}
}

func respond(c *gin.Context, status int, code string, err error, details map[string]string) {
	c.JSON(status, errorBody{Code: code, Message: err.Error(), Details: details})
}

// badRequest reports a malformed request body.
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, errorBody{Code: "bad_request", Message: err.Error()})
}
