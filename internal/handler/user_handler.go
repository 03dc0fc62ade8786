package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hunthub/internal/model"
	"hunthub/internal/service"
)

// UserHandler bundles user HTTP handlers.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Image string `json:"image" validate:"omitempty,url"`
}

// Register godoc
// @Summary Register a user (idempotent on email)
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "User payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user := &model.User{Name: req.Name, Email: req.Email, Image: req.Image}
	created, inserted, err := h.svc.Register(c.Request().Context(), user)
	if err != nil {
		return httpError(err)
	}
	if !inserted {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"message":    "User already exists",
			"insertedId": nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"insertedId": created.ID,
	})
}

// List godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.svc.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// CheckAdmin godoc
// @Summary Report whether the email holds the admin role
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email path string true "User email"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} errors.ErrorResponse
// @Router /users/admin/{email} [get]
func (h *UserHandler) CheckAdmin(c echo.Context) error {
	isAdmin, err := h.svc.IsAdmin(c.Request().Context(), c.Param("email"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"admin": isAdmin})
}

// CheckModerator godoc
// @Summary Report whether the email holds the moderator role
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email path string true "User email"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} errors.ErrorResponse
// @Router /users/moderator/{email} [get]
func (h *UserHandler) CheckModerator(c echo.Context) error {
	isModerator, err := h.svc.IsModerator(c.Request().Context(), c.Param("email"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"moderator": isModerator})
}

// MakeAdmin godoc
// @Summary Promote a user to admin
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/make-admin/{id} [patch]
func (h *UserHandler) MakeAdmin(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	modified, err := h.svc.MakeAdmin(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, updateAck(1, modified))
}

// MakeModerator godoc
// @Summary Promote a user to moderator
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/make-moderator/{id} [patch]
func (h *UserHandler) MakeModerator(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	modified, err := h.svc.MakeModerator(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, updateAck(1, modified))
}
