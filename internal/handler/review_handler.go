package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"hunthub/internal/middleware"
	"hunthub/internal/model"
	"hunthub/internal/service"
)

// ReviewHandler bundles review HTTP handlers.
type ReviewHandler struct {
	svc service.ReviewService
}

// NewReviewHandler creates a handler layer.
func NewReviewHandler(svc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

// AddReviewRequest is the validated review payload.
type AddReviewRequest struct {
	ProductID   string `json:"productId" validate:"required,uuid"`
	Description string `json:"description" validate:"required"`
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
}

// Add godoc
// @Summary Add a review to a product
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddReviewRequest true "Review payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /reviews [post]
func (h *ReviewHandler) Add(c echo.Context) error {
	claims, err := middleware.ClaimsFrom(c)
	if err != nil {
		return err
	}

	var req AddReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid id")
	}

	review := &model.Review{
		ProductID:     productID,
		ReviewerEmail: claims.Email,
		ReviewerName:  claims.Name,
		ReviewerImage: claims.Image,
		Description:   req.Description,
		Rating:        req.Rating,
	}
	created, err := h.svc.Add(c.Request().Context(), review)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"insertedId": created.ID,
	})
}

// ByProduct godoc
// @Summary List reviews of a product
// @Tags reviews
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {array} model.Review
// @Failure 400 {object} errors.ErrorResponse
// @Router /reviews/{productId} [get]
func (h *ReviewHandler) ByProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid id")
	}

	reviews, err := h.svc.ByProduct(c.Request().Context(), productID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, reviews)
}
