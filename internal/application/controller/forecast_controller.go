package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ecoscope/internal/domain/model"
	"ecoscope/internal/domain/usecase/forecast"
	"ecoscope/pkg/msg"
	"ecoscope/pkg/util/numberutils"
)

type ForecastController struct {
	api     *echo.Group
	useCase forecast.UseCase
}

func NewForecastController(api *echo.Group, useCase forecast.UseCase) *ForecastController {
	return &ForecastController{api: api, useCase: useCase}
}

// InitForecastRoutes initializes price forecast routes.
func (controller *ForecastController) InitForecastRoutes() {
	controller.api.GET("/forecast/commodity/:name", controller.Commodity)
	controller.api.POST("/forecast/batch", controller.Batch)
	controller.api.GET("/forecast/available-commodities", controller.AvailableCommodities)
}

// queryInt returns def for a missing parameter and -1 for a malformed one.
func queryInt(c echo.Context, key string, def int) int {
	value := c.QueryParam(key)
	if value == "" {
		return def
	}
	return numberutils.ToIntWithDefault(value, -1)
}

func invalidDays(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("forecast.invalid-days")})
}

// Commodity godoc
// @Summary Forecast a commodity's price
// @Description Linear trend over the daily mean prices, with a 95% band and the five best selling dates
// @Tags forecast
// @Produce json
// @Param name path string true "Commodity name fragment"
// @Param days_forward query int false "Days to forecast (1-90)" default(30)
// @Param days_back query int false "Days of history (30-365)" default(90)
// @Success 200 {object} model.PriceForecastResponse
// @Failure 400 {object} map[string]string "Invalid window"
// @Failure 404 {object} map[string]string "No prices for the commodity"
// @Failure 422 {object} map[string]string "Fewer than 10 days of prices"
// @Router /forecast/commodity/{name} [get]
func (controller *ForecastController) Commodity(c echo.Context) error {
	opts := model.ForecastOptions{
		DaysForward: queryInt(c, "days_forward", model.DefaultForecastDays),
		DaysBack:    queryInt(c, "days_back", model.DefaultHistoryDays),
	}
	if !opts.Valid() {
		return invalidDays(c)
	}

	response, err := controller.useCase.Commodity(c.Request().Context(), c.Param("name"), opts)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// Batch godoc
// @Summary Forecast several commodities
// @Tags forecast
// @Accept json
// @Produce json
// @Param request body model.BatchForecastRequest true "Up to 10 commodity names"
// @Param days_forward query int false "Days to forecast (1-90)" default(30)
// @Success 200 {object} model.BatchForecastResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /forecast/batch [post]
func (controller *ForecastController) Batch(c echo.Context) error {
	daysForward := queryInt(c, "days_forward", model.DefaultForecastDays)
	if !(model.ForecastOptions{DaysForward: daysForward, DaysBack: model.DefaultHistoryDays}).Valid() {
		return invalidDays(c)
	}

	var request model.BatchForecastRequest
	if ok, err := bindAndValidate(c, &request); !ok {
		return err
	}

	response, err := controller.useCase.Batch(c.Request().Context(), request.CommodityNames, daysForward)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// AvailableCommodities godoc
// @Summary Commodities with stored prices
// @Tags forecast
// @Produce json
// @Success 200 {object} model.AvailableCommoditiesResponse
// @Router /forecast/available-commodities [get]
func (controller *ForecastController) AvailableCommodities(c echo.Context) error {
	response, err := controller.useCase.Commodities(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, response)
}
