package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"hunthub/internal/middleware"
	"hunthub/internal/model"
	"hunthub/internal/service"
)

const defaultPageSize = 6

// ProductHandler bundles product HTTP handlers.
type ProductHandler struct {
	svc service.ProductService
}

// NewProductHandler creates a handler layer.
func NewProductHandler(svc service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// CreateProductRequest is the validated payload for adding a product.
// Arbitrary extra fields in the body are dropped here rather than stored.
type CreateProductRequest struct {
	Name         string   `json:"name" validate:"required"`
	Image        string   `json:"image" validate:"omitempty,url"`
	Description  string   `json:"description" validate:"required"`
	ExternalLink string   `json:"externalLink" validate:"omitempty,url"`
	Tags         []string `json:"tags" validate:"omitempty,dive,min=1"`
}

// StatusRequest sets the moderation status.
type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending accepted rejected"`
}

// FeatureRequest flips the featured flag.
type FeatureRequest struct {
	IsFeatured *bool `json:"isFeatured" validate:"required"`
}

// Search godoc
// @Summary List accepted products with tag search and pagination
// @Tags products
// @Produce json
// @Param term query string false "Tag search term"
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} service.ProductPage
// @Failure 400 {object} errors.ErrorResponse
// @Router /products [get]
func (h *ProductHandler) Search(c echo.Context) error {
	page, err := queryInt(c, "page", 1)
	if err != nil || page < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid pagination parameter")
	}
	limit, err := queryInt(c, "limit", defaultPageSize)
	if err != nil || limit < 1 || limit > 100 {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid pagination parameter")
	}

	result, err := h.svc.Search(c.Request().Context(), c.QueryParam("term"), page, limit)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// Featured godoc
// @Summary List featured products, newest first
// @Tags products
// @Produce json
// @Success 200 {array} model.Product
// @Router /products/featured [get]
func (h *ProductHandler) Featured(c echo.Context) error {
	products, err := h.svc.Featured(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, products)
}

// Trending godoc
// @Summary List products with the most upvotes
// @Tags products
// @Produce json
// @Success 200 {array} model.Product
// @Router /products/trending [get]
func (h *ProductHandler) Trending(c echo.Context) error {
	products, err := h.svc.Trending(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, products)
}

// Get godoc
// @Summary Get a product by id
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	product, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, product)
}

// ByOwner godoc
// @Summary List products owned by the email
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param email path string true "Owner email"
// @Success 200 {array} model.Product
// @Router /products/owner/{email} [get]
func (h *ProductHandler) ByOwner(c echo.Context) error {
	products, err := h.svc.ByOwner(c.Request().Context(), c.Param("email"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, products)
}

// Create godoc
// @Summary Submit a product for moderation
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateProductRequest true "Product payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	claims, err := middleware.ClaimsFrom(c)
	if err != nil {
		return err
	}

	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product := &model.Product{
		Name:         req.Name,
		Image:        req.Image,
		Description:  req.Description,
		ExternalLink: req.ExternalLink,
		Tags:         req.Tags,
		OwnerEmail:   claims.Email,
		OwnerName:    claims.Name,
		OwnerImage:   claims.Image,
	}
	created, err := h.svc.Create(c.Request().Context(), product)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"insertedId": created.ID,
	})
}

// Update godoc
// @Summary Update an owned product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body CreateProductRequest true "Product payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	claims, err := middleware.ClaimsFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product := &model.Product{
		Name:         req.Name,
		Image:        req.Image,
		Description:  req.Description,
		ExternalLink: req.ExternalLink,
		Tags:         req.Tags,
	}
	modified, err := h.svc.Update(c.Request().Context(), id, claims.Email, product)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, updateAck(1, modified))
}

// Delete godoc
// @Summary Delete an owned product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	claims, err := middleware.ClaimsFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	deleted, err := h.svc.Delete(c.Request().Context(), id, claims.Email)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, deleteAck(deleted))
}

// Upvote godoc
// @Summary Upvote a product once per caller
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/upvote/{id} [patch]
func (h *ProductHandler) Upvote(c echo.Context) error {
	claims, err := middleware.ClaimsFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	modified, err := h.svc.Upvote(c.Request().Context(), id, claims.Email)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, updateAck(1, modified))
}

// Report godoc
// @Summary Report a product once per caller
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/report/{id} [post]
func (h *ProductHandler) Report(c echo.Context) error {
	claims, err := middleware.ClaimsFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	modified, err := h.svc.Report(c.Request().Context(), id, claims.Email)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, updateAck(1, modified))
}

// Queue godoc
// @Summary List the moderation queue, pending first
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Product
// @Failure 403 {object} errors.ErrorResponse
// @Router /products/queue [get]
func (h *ProductHandler) Queue(c echo.Context) error {
	products, err := h.svc.Queue(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, products)
}

// Reported godoc
// @Summary List products with at least one report
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Product
// @Failure 403 {object} errors.ErrorResponse
// @Router /products/reported [get]
func (h *ProductHandler) Reported(c echo.Context) error {
	products, err := h.svc.Reported(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, products)
}

// UpdateStatus godoc
// @Summary Set the moderation status of a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body StatusRequest true "New status"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/status/{id} [patch]
func (h *ProductHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	modified, err := h.svc.SetStatus(c.Request().Context(), id, model.ProductStatus(req.Status))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, updateAck(1, modified))
}

// UpdateFeatured godoc
// @Summary Set the featured flag of a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body FeatureRequest true "Featured flag"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/feature/{id} [patch]
func (h *ProductHandler) UpdateFeatured(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req FeatureRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	modified, err := h.svc.SetFeatured(c.Request().Context(), id, *req.IsFeatured)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, updateAck(1, modified))
}

func queryInt(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
