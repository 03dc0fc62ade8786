package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"hunthub/internal/model"
	"hunthub/internal/service"
)

// CouponHandler bundles coupon HTTP handlers.
type CouponHandler struct {
	svc service.CouponService
}

// NewCouponHandler creates a handler layer.
func NewCouponHandler(svc service.CouponService) *CouponHandler {
	return &CouponHandler{svc: svc}
}

// CouponRequest is the validated coupon payload for create and update.
type CouponRequest struct {
	Code        string          `json:"code" validate:"required,min=3,max=64"`
	Discount    decimal.Decimal `json:"discount" validate:"required"`
	Description string          `json:"description"`
	ExpiresAt   time.Time       `json:"expiresAt" validate:"required"`
}

// List godoc
// @Summary List all coupons
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Coupon
// @Failure 403 {object} errors.ErrorResponse
// @Router /coupons [get]
func (h *CouponHandler) List(c echo.Context) error {
	coupons, err := h.svc.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, coupons)
}

// ListValid godoc
// @Summary List coupons that have not expired
// @Tags coupons
// @Produce json
// @Success 200 {array} model.Coupon
// @Router /coupons/valid [get]
func (h *CouponHandler) ListValid(c echo.Context) error {
	coupons, err := h.svc.ListValid(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, coupons)
}

// Validate godoc
// @Summary Check a coupon code
// @Tags coupons
// @Produce json
// @Param code path string true "Coupon code"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /coupons/{code} [get]
func (h *CouponHandler) Validate(c echo.Context) error {
	coupon, valid, err := h.svc.Validate(c.Request().Context(), c.Param("code"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"coupon": coupon,
		"valid":  valid,
	})
}

// Create godoc
// @Summary Create a coupon
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CouponRequest true "Coupon payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /coupons [post]
func (h *CouponHandler) Create(c echo.Context) error {
	var req CouponRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	coupon := &model.Coupon{
		Code:        req.Code,
		Discount:    req.Discount,
		Description: req.Description,
		ExpiresAt:   req.ExpiresAt,
	}
	created, err := h.svc.Create(c.Request().Context(), coupon)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"insertedId": created.ID,
	})
}

// Update godoc
// @Summary Update a coupon
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Param request body CouponRequest true "Coupon payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /coupons/{id} [patch]
func (h *CouponHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req CouponRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	coupon := &model.Coupon{
		ID:          id,
		Code:        req.Code,
		Discount:    req.Discount,
		Description: req.Description,
		ExpiresAt:   req.ExpiresAt,
	}
	modified, err := h.svc.Update(c.Request().Context(), coupon)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, updateAck(1, modified))
}

// Delete godoc
// @Summary Delete a coupon
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /coupons/{id} [delete]
func (h *CouponHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	deleted, err := h.svc.Delete(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, deleteAck(deleted))
}
