package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"ecoscope/internal/domain/model"
	"ecoscope/internal/domain/usecase/weather"
	"ecoscope/pkg/msg"
)

type WeatherController struct {
	api         *echo.Group
	useCase     weather.UseCase
	defaultAdm4 string
}

// NewWeatherController serves BMKG forecasts; defaultAdm4 is used when the
// adm4 query parameter is missing.
func NewWeatherController(api *echo.Group, useCase weather.UseCase, defaultAdm4 string) *WeatherController {
	return &WeatherController{api: api, useCase: useCase, defaultAdm4: defaultAdm4}
}

// InitWeatherRoutes initializes weather and region routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather/current", controller.GetCurrent)
	controller.api.GET("/weather/daily", controller.GetDaily)
	controller.api.GET("/weather/districts", controller.GetDistricts)

	controller.api.GET("/wilayah", controller.ListWilayah)
	controller.api.GET("/wilayah/count", controller.CountWilayah)
	controller.api.GET("/wilayah/kecamatan/:nama", controller.FindWilayah)
}

func (controller *WeatherController) adm4(c echo.Context) string {
	if adm4 := c.QueryParam("adm4"); adm4 != "" {
		return adm4
	}
	return controller.defaultAdm4
}

// GetCurrent godoc
// @Summary Current BMKG forecast
// @Description Flattened 3-hourly forecast for an ADM4 village code
// @Tags weather
// @Produce json
// @Param adm4 query string false "ADM4 code, e.g. 33.07.09.1020"
// @Success 200 {object} model.CurrentWeatherResponse
// @Failure 404 {object} map[string]string "Malformed ADM4 code"
// @Failure 502 {object} map[string]string "BMKG unavailable"
// @Router /weather/current [get]
func (controller *WeatherController) GetCurrent(c echo.Context) error {
	response, err := controller.useCase.GetCurrent(c.Request().Context(), controller.adm4(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// GetDaily godoc
// @Summary Daily forecast summary
// @Description Forecast slots grouped per local date with mean temperature, total rainfall and dominant condition
// @Tags weather
// @Produce json
// @Param adm4 query string false "ADM4 code"
// @Success 200 {object} model.DailyWeatherResponse
// @Failure 502 {object} map[string]string "BMKG unavailable"
// @Router /weather/daily [get]
func (controller *WeatherController) GetDaily(c echo.Context) error {
	response, err := controller.useCase.GetDaily(c.Request().Context(), controller.adm4(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// GetDistricts godoc
// @Summary Forecast for every Wonosobo district
// @Description Districts that fail are listed under errors and estimated from their three nearest districts (is_interpolated)
// @Tags weather
// @Produce json
// @Success 200 {object} model.DistrictsWeatherResponse
// @Router /weather/districts [get]
func (controller *WeatherController) GetDistricts(c echo.Context) error {
	response, err := controller.useCase.GetAllDistricts(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// ListWilayah godoc
// @Summary Wonosobo region list
// @Tags wilayah
// @Produce json
// @Success 200 {object} model.WilayahListResponse
// @Failure 502 {object} map[string]string "Region service unavailable"
// @Router /wilayah [get]
func (controller *WeatherController) ListWilayah(c echo.Context) error {
	entries, err := controller.useCase.Wilayah(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}

	data := make([]map[string]any, len(entries))
	for i, e := range entries {
		data[i] = e
	}
	return c.JSON(http.StatusOK, model.WilayahListResponse{
		Success: true,
		Message: msg.GetMessage("wilayah.list-success", len(data)),
		Data:    data,
	})
}

// CountWilayah godoc
// @Summary Number of kecamatan
// @Tags wilayah
// @Produce json
// @Success 200 {object} map[string]any
// @Router /wilayah/count [get]
func (controller *WeatherController) CountWilayah(c echo.Context) error {
	entries, err := controller.useCase.Wilayah(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"count":   len(entries),
		"message": msg.GetMessage("wilayah.count", len(entries)),
	})
}

// FindWilayah godoc
// @Summary Find a kecamatan by name
// @Tags wilayah
// @Produce json
// @Param nama path string true "Kecamatan name"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string "Kecamatan not found"
// @Router /wilayah/kecamatan/{nama} [get]
func (controller *WeatherController) FindWilayah(c echo.Context) error {
	name := c.Param("nama")
	entry, err := controller.useCase.FindWilayah(c.Request().Context(), name)
	if errors.Is(err, model.ErrUnknownLocation) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": msg.GetMessage("wilayah.not-found", name)})
	}
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": entry})
}
