package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ecoscope/internal/application/middleware"
	"ecoscope/internal/domain/model"
	"ecoscope/internal/domain/usecase/market"
	"ecoscope/pkg/msg"
	"ecoscope/pkg/util/numberutils"
)

type MarketController struct {
	api           *echo.Group
	useCase       market.UseCase
	authenticator middleware.TokenAuthenticator
}

func NewMarketController(api *echo.Group, useCase market.UseCase, authenticator middleware.TokenAuthenticator) *MarketController {
	return &MarketController{api: api, useCase: useCase, authenticator: authenticator}
}

// InitMarketRoutes initializes market price routes. Writes need an admin token.
func (controller *MarketController) InitMarketRoutes() {
	admin := middleware.AdminOnly(controller.authenticator)

	controller.api.GET("/market/list", controller.List)
	controller.api.GET("/market/trends", controller.Trends)
	controller.api.GET("/market/realtime", controller.Realtime)
	controller.api.POST("/market/add", controller.Add, admin...)
	controller.api.PUT("/market/update/:id", controller.Update, admin...)
	controller.api.DELETE("/market/delete/:id", controller.Delete, admin...)
	controller.api.POST("/market/sync", controller.Sync, admin...)
}

func marketFilter(c echo.Context) model.MarketFilter {
	return model.MarketFilter{
		Commodity: c.QueryParam("commodity"),
		Location:  c.QueryParam("location"),
		StartDate: c.QueryParam("start_date"),
		EndDate:   c.QueryParam("end_date"),
		Limit:     numberutils.ToIntWithDefault(c.QueryParam("limit"), 100),
	}
}

// List godoc
// @Summary List stored market prices
// @Description Newest first; commodity and location match case-insensitively on fragments
// @Tags market
// @Produce json
// @Param commodity query string false "Commodity fragment"
// @Param location query string false "Market fragment"
// @Param start_date query string false "YYYY-MM-DD"
// @Param end_date query string false "YYYY-MM-DD"
// @Param limit query int false "Maximum rows" default(100)
// @Success 200 {object} model.MarketListResponse
// @Router /market/list [get]
func (controller *MarketController) List(c echo.Context) error {
	response, err := controller.useCase.List(c.Request().Context(), marketFilter(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// Trends godoc
// @Summary Price movement per commodity
// @Description Compares each commodity's two newest prices
// @Tags market
// @Produce json
// @Param commodity query string false "Commodity fragment"
// @Param location query string false "Market fragment"
// @Param limit query int false "Rows considered" default(100)
// @Success 200 {object} model.TrendsResponse
// @Router /market/trends [get]
func (controller *MarketController) Trends(c echo.Context) error {
	response, err := controller.useCase.Trends(c.Request().Context(), marketFilter(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// Realtime godoc
// @Summary Live commodity list from Disdagkopukm
// @Tags market
// @Produce json
// @Param komoditas query string false "Commodity name fragment"
// @Success 200 {object} model.RealtimeResponse
// @Failure 502 {object} map[string]string "Source unavailable"
// @Router /market/realtime [get]
func (controller *MarketController) Realtime(c echo.Context) error {
	response, err := controller.useCase.Realtime(c.Request().Context(), c.QueryParam("komoditas"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// Add godoc
// @Summary Add a market price
// @Tags market
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param price body model.MarketPriceRequest true "Price entry"
// @Success 201 {object} entity.MarketPrice
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 403 {object} map[string]string "Admin only"
// @Router /market/add [post]
func (controller *MarketController) Add(c echo.Context) error {
	var request model.MarketPriceRequest
	if ok, err := bindAndValidate(c, &request); !ok {
		return err
	}

	var userID *int64
	if claims, ok := middleware.ClaimsFrom(c); ok {
		if id, err := claims.UserID(); err == nil {
			userID = &id
		}
	}

	created, err := controller.useCase.Add(c.Request().Context(), userID, request)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update a market price
// @Tags market
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Price ID"
// @Param price body model.MarketPriceUpdate true "Fields to change"
// @Success 200 {object} entity.MarketPrice
// @Failure 404 {object} map[string]string "Price not found"
// @Router /market/update/{id} [put]
func (controller *MarketController) Update(c echo.Context) error {
	id, ok, err := pathID(c)
	if !ok {
		return err
	}

	var request model.MarketPriceUpdate
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
// @Summary Delete a market price
// @Tags market
// @Produce json
// @Security BearerAuth
// @Param id path int true "Price ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Price not found"
// @Router /market/delete/{id} [delete]
func (controller *MarketController) Delete(c echo.Context) error {
	id, ok, err := pathID(c)
	if !ok {
		return err
	}

	if err := controller.useCase.Delete(c.Request().Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": msg.GetMessage("market.deleted")})
}

// Sync godoc
// @Summary Pull prices from Disdagkopukm now
// @Tags market
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.SyncResult
// @Failure 502 {object} map[string]string "Source unavailable"
// @Router /market/sync [post]
func (controller *MarketController) Sync(c echo.Context) error {
	result, err := controller.useCase.Sync(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, result)
}
