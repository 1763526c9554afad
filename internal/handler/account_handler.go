package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emmanueldev/checking-account/internal/models"
)

// AccountOpener defines the opening operation used by AccountHandler.
type AccountOpener interface {
	Open(ctx context.Context, account *models.CheckingAccount) (*models.CheckingAccount, error)
}

// AccountHandler handles checking account HTTP requests.
type AccountHandler struct {
	service AccountOpener
}

type CustomerRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type OpenAccountRequest struct {
	Iban         string           `json:"iban"`
	CurrencyCode string           `json:"currencyCode"`
	Customer     *CustomerRequest `json:"customer"`
}

// ErrorResponse is the body returned for every rejected opening. Violations
// is empty unless input validation failed.
type ErrorResponse struct {
	Message    string             `json:"message"`
	Violations []models.Violation `json:"violations"`
}

func NewAccountHandler(service AccountOpener) *AccountHandler {
	return &AccountHandler{service: service}
}

func (h *AccountHandler) OpenAccount(c *gin.Context) {
	var req OpenAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message:    "Invalid request body",
			Violations: []models.Violation{},
		})
		return
	}

	account := models.NewCheckingAccount(req.Iban, req.CurrencyCode, customerFromRequest(req.Customer))

	opened, err := h.service.Open(c.Request.Context(), account)
	if err != nil {
		respondWithOpeningError(c, err)
		return
	}

	c.JSON(http.StatusOK, opened)
}

func customerFromRequest(req *CustomerRequest) *models.Customer {
	if req == nil {
		return nil
	}
	return &models.Customer{ID: req.ID, Name: req.Name}
}

// respondWithOpeningError maps the opening error taxonomy onto HTTP: business
// rejections are client errors with a message and violation list, storage
// failures are server errors.
func respondWithOpeningError(c *gin.Context, err error) {
	var violationErr *models.ViolationError
	switch {
	case errors.As(err, &violationErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message:    violationErr.Message,
			Violations: violationErr.Violations,
		})
	case errors.Is(err, models.ErrAccountAlreadyOpened):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message:    models.ErrAccountAlreadyOpened.Error(),
			Violations: []models.Violation{},
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to open account"})
	}
}
