package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ecoscope/internal/application/middleware"
	"ecoscope/internal/domain/model"
	"ecoscope/internal/domain/usecase/user"
	"ecoscope/pkg/msg"
	"ecoscope/pkg/util/numberutils"
)

type UserController struct {
	api           *echo.Group
	useCase       user.UseCase
	authenticator middleware.TokenAuthenticator
}

func NewUserController(api *echo.Group, useCase user.UseCase, authenticator middleware.TokenAuthenticator) *UserController {
	return &UserController{api: api, useCase: useCase, authenticator: authenticator}
}

// InitUserRoutes initializes the admin user management routes
func (controller *UserController) InitUserRoutes() {
	users := controller.api.Group("/users", middleware.AdminOnly(controller.authenticator)...)
	users.GET("", controller.List)
	users.GET("/:id", controller.Get)
	users.POST("", controller.Create)
	users.PUT("/:id", controller.Update)
	users.DELETE("/:id", controller.Delete)
}

// List godoc
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param search query string false "Name or email fragment"
// @Param role query string false "admin or moderator"
// @Param page query int false "Page number" default(0)
// @Param size query int false "Page size" default(100)
// @Success 200 {object} model.Page[entity.User]
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Failure 403 {object} map[string]string "Admin only"
// @Router /users [get]
func (controller *UserController) List(c echo.Context) error {
	filter := model.UserFilter{
		Search: c.QueryParam("search"),
		Role:   c.QueryParam("role"),
		Page:   numberutils.ToIntWithDefault(c.QueryParam("page"), 0),
		Size:   numberutils.ToIntWithDefault(c.QueryParam("size"), 100),
	}

	page, err := controller.useCase.List(c.Request().Context(), filter)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

// Get godoc
// @Summary Get a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} entity.User
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/{id} [get]
func (controller *UserController) Get(c echo.Context) error {
	id, ok, err := pathID(c)
	if !ok {
		return err
	}

	found, err := controller.useCase.Get(c.Request().Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, found)
}

// Create godoc
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body model.CreateUserRequest true "New user"
// @Success 201 {object} entity.User
// @Failure 400 {object} map[string]string "Invalid body or email already registered"
// @Router /users [post]
func (controller *UserController) Create(c echo.Context) error {
	var request model.CreateUserRequest
	if ok, err := bindAndValidate(c, &request); !ok {
		return err
	}

	created, err := controller.useCase.Create(c.Request().Context(), request)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update a user
// @Description Partial update; a new password is re-hashed
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param user body model.UpdateUserRequest true "Fields to change"
// @Success 200 {object} entity.User
// @Failure 400 {object} map[string]string "Invalid body or email already registered"
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/{id} [put]
func (controller *UserController) Update(c echo.Context) error {
	id, ok, err := pathID(c)
	if !ok {
		return err
	}

	var request model.UpdateUserRequest
	if ok, err := bindAndValidate(c, &request); !ok {
		return err
	}

	updated, err := controller.useCase.Update(c.Request().Context(), id, request)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a user
// @Description The primary admin cannot be deleted
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string "Cannot delete primary admin"
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/{id} [delete]
func (controller *UserController) Delete(c echo.Context) error {
	id, ok, err := pathID(c)
	if !ok {
		return err
	}

	if err := controller.useCase.Delete(c.Request().Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": msg.GetMessage("user.deleted")})
}
