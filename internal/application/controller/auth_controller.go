package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ecoscope/internal/application/middleware"
	"ecoscope/internal/domain/model"
	"ecoscope/internal/domain/usecase/auth"
)

type AuthController struct {
	api     *echo.Group
	useCase auth.UseCase
	limiter middleware.Limiter
}

// NewAuthController wires the auth routes. limiter throttles /auth/login per
// client IP and may be nil.
func NewAuthController(api *echo.Group, useCase auth.UseCase, limiter middleware.Limiter) *AuthController {
	return &AuthController{api: api, useCase: useCase, limiter: limiter}
}

// InitAuthRoutes initializes auth routes
func (controller *AuthController) InitAuthRoutes() {
	controller.api.POST("/auth/login", controller.Login, middleware.RateLimitByIP(controller.limiter))
	controller.api.GET("/auth/me", controller.Me, middleware.RequireAuth(controller.useCase))
	controller.api.POST("/auth/register-admin", controller.RegisterAdmin)
}

// Login godoc
// @Summary Log in with email and password
// @Description Wrong credentials still answer 200 with success=false and a message
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body model.LoginRequest true "Credentials"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 429 {object} map[string]string "Too many login attempts"
// @Router /auth/login [post]
func (controller *AuthController) Login(c echo.Context) error {
	var request model.LoginRequest
	if ok, err := bindAndValidate(c, &request); !ok {
		return err
	}

	response, err := controller.useCase.Login(c.Request().Context(), request)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} entity.User
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Failure 404 {object} map[string]string "User not found"
// @Router /auth/me [get]
func (controller *AuthController) Me(c echo.Context) error {
	claims, _ := middleware.ClaimsFrom(c)
	userID, err := claims.UserID()
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
	}

	user, err := controller.useCase.Me(c.Request().Context(), userID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// RegisterAdmin godoc
// @Summary Register the first admin
// @Description Only allowed while no admin account exists
// @Tags auth
// @Accept json
// @Produce json
// @Param admin body model.RegisterAdminRequest true "Admin account"
// @Success 201 {object} entity.User
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 403 {object} map[string]string "An admin already exists"
// @Router /auth/register-admin [post]
func (controller *AuthController) RegisterAdmin(c echo.Context) error {
	var request model.RegisterAdminRequest
	if ok, err := bindAndValidate(c, &request); !ok {
		return err
	}

	user, err := controller.useCase.RegisterAdmin(c.Request().Context(), request)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, user)
}
