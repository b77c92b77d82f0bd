package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"ecoscope/internal/domain/entity"
	"ecoscope/internal/domain/model"
	"ecoscope/internal/domain/usecase/crop"
	"ecoscope/pkg/msg"
	"ecoscope/pkg/util/numberutils"
)

const defaultPredictionDays = 7

type CropController struct {
	api     *echo.Group
	useCase crop.UseCase
}

func NewCropController(api *echo.Group, useCase crop.UseCase) *CropController {
	return &CropController{api: api, useCase: useCase}
}

// InitCropRoutes initializes crop recommendation routes
func (controller *CropController) InitCropRoutes() {
	controller.api.GET("/crops/recommend", controller.RecommendByLocation)
	controller.api.GET("/crops/recommend/coordinates", controller.RecommendByCoordinates)
	controller.api.GET("/crops/database", controller.Database)
	controller.api.GET("/crops/locations", controller.Locations)
}

// RecommendByLocation godoc
// @Summary Crop recommendations for a district
// @Tags crops
// @Produce json
// @Param location query string true "Kecamatan name"
// @Param days query int false "Forecast days considered" default(7)
// @Success 200 {object} model.CropRecommendationResponse
// @Failure 404 {object} map[string]string "Unknown location"
// @Router /crops/recommend [get]
func (controller *CropController) RecommendByLocation(c echo.Context) error {
	location := c.QueryParam("location")
	days := numberutils.ToIntWithDefault(c.QueryParam("days"), defaultPredictionDays)

	response, err := controller.useCase.RecommendByLocation(c.Request().Context(), location, days)
	if errors.Is(err, model.ErrUnknownLocation) {
		names := make([]string, len(entity.Districts))
		for i, d := range entity.Districts {
			names[i] = d.Name
		}
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": msg.GetMessage("crop.location-not-found", location, strings.Join(names, ", ")),
		})
	}
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// RecommendByCoordinates godoc
// @Summary Crop recommendations for a coordinate
// @Description Uses the forecast of the nearest Wonosobo district
// @Tags crops
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param location_name query string false "Display name"
// @Param days query int false "Forecast days considered" default(7)
// @Success 200 {object} model.CropRecommendationResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Router /crops/recommend/coordinates [get]
func (controller *CropController) RecommendByCoordinates(c echo.Context) error {
	lat, err := numberutils.ToFloatWithError(c.QueryParam("lat"))
	if err != nil || lat < -90 || lat > 90 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("crop.invalid-lat")})
	}
	lon, err := numberutils.ToFloatWithError(c.QueryParam("lon"))
	if err != nil || lon < -180 || lon > 180 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("crop.invalid-lon")})
	}
	days := numberutils.ToIntWithDefault(c.QueryParam("days"), defaultPredictionDays)

	response, err := controller.useCase.RecommendByCoordinates(c.Request().Context(), lat, lon, c.QueryParam("location_name"), days)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// Database godoc
// @Summary Crop knowledge base
// @Tags crops
// @Produce json
// @Success 200 {object} model.CropDatabaseResponse
// @Router /crops/database [get]
func (controller *CropController) Database(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.useCase.Database())
}

// Locations godoc
// @Summary Districts available for recommendations
// @Tags crops
// @Produce json
// @Success 200 {object} model.CropLocationsResponse
// @Router /crops/locations [get]
func (controller *CropController) Locations(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.useCase.Locations())
}
