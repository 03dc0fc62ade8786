package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"hunthub/internal/middleware"
	"hunthub/internal/model"
	"hunthub/internal/service"
)

// PaymentHandler bundles payment HTTP handlers.
type PaymentHandler struct {
	svc service.PaymentService
}

// NewPaymentHandler creates a handler layer.
func NewPaymentHandler(svc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

// CreateIntentRequest asks for a payment intent of the given amount.
type CreateIntentRequest struct {
	Amount   decimal.Decimal `json:"amount" validate:"required"`
	Currency string          `json:"currency" validate:"omitempty,len=3"`
}

// RecordPaymentRequest records a completed payment by its client secret.
type RecordPaymentRequest struct {
	TransactionID string `json:"transactionId" validate:"required"`
	UserName      string `json:"userName"`
}

// CreateIntent godoc
// @Summary Create a payment intent for the caller
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateIntentRequest true "Amount and currency"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	claims, err := middleware.ClaimsFrom(c)
	if err != nil {
		return err
	}

	var req CreateIntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	intent, err := h.svc.CreateIntent(c.Request().Context(), claims.Email, req.Amount, req.Currency)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"clientSecret": intent.ClientSecret,
	})
}

// Record godoc
// @Summary Record a completed payment and activate membership
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RecordPaymentRequest true "Payment details"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /payments [post]
func (h *PaymentHandler) Record(c echo.Context) error {
	claims, err := middleware.ClaimsFrom(c)
	if err != nil {
		return err
	}

	var req RecordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	payment := &model.Payment{
		Email:         claims.Email,
		UserName:      req.UserName,
		TransactionID: req.TransactionID,
	}
	recorded, err := h.svc.RecordPayment(c.Request().Context(), payment)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"insertedId": recorded.ID,
	})
}

// History godoc
// @Summary List payments made by an email
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param email path string true "Payer email"
// @Success 200 {array} model.Payment
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /payments/{email} [get]
func (h *PaymentHandler) History(c echo.Context) error {
	claims, err := middleware.ClaimsFrom(c)
	if err != nil {
		return err
	}
	// Callers can only read their own history.
	if c.Param("email") != claims.Email {
		return echo.NewHTTPError(http.StatusForbidden, "Forbidden access")
	}

	payments, err := h.svc.History(c.Request().Context(), claims.Email)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, payments)
}
