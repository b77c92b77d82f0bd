package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ecoscope/internal/domain/model"
	"ecoscope/internal/domain/usecase/slope"
	"ecoscope/pkg/msg"
	"ecoscope/pkg/util/numberutils"
)

type SlopeController struct {
	api     *echo.Group
	useCase slope.UseCase
}

func NewSlopeController(api *echo.Group, useCase slope.UseCase) *SlopeController {
	return &SlopeController{api: api, useCase: useCase}
}

// InitSlopeRoutes initializes landslide risk routes
func (controller *SlopeController) InitSlopeRoutes() {
	controller.api.GET("/slope/analyze", controller.Analyze)
	controller.api.GET("/slope/profile", controller.Profile)
}

// queryFloats parses required float query parameters in order.
func queryFloats(c echo.Context, names ...string) ([]float64, bool) {
	values := make([]float64, len(names))
	for i, name := range names {
		v, err := numberutils.ToFloatWithError(c.QueryParam(name))
		if err != nil {
			return nil, false
		}
		values[i] = v
	}
	return values, true
}

// Analyze godoc
// @Summary Landslide risk around a coordinate
// @Description Samples a 3x3 elevation grid and reports the steepest slope
// @Tags slope
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param radius query number false "Grid radius in meters" default(100)
// @Success 200 {object} entity.SlopeAnalysis
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 502 {object} map[string]string "Elevation service unavailable"
// @Router /slope/analyze [get]
func (controller *SlopeController) Analyze(c echo.Context) error {
	coords, ok := queryFloats(c, "lat", "lon")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("slope.invalid-coordinates")})
	}
	radius := numberutils.ToFloatWithDefault(c.QueryParam("radius"), 0)

	analysis, err := controller.useCase.Analyze(c.Request().Context(), coords[0], coords[1], radius)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": analysis})
}

// Profile godoc
// @Summary Elevation profile between two points
// @Tags slope
// @Produce json
// @Param start_lat query number true "Start latitude"
// @Param start_lon query number true "Start longitude"
// @Param end_lat query number true "End latitude"
// @Param end_lon query number true "End longitude"
// @Param samples query int false "Number of points" default(10)
// @Success 200 {object} model.SlopeProfileResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Router /slope/profile [get]
func (controller *SlopeController) Profile(c echo.Context) error {
	coords, ok := queryFloats(c, "start_lat", "start_lon", "end_lat", "end_lon")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("slope.invalid-coordinates")})
	}
	samples := numberutils.ToIntWithDefault(c.QueryParam("samples"), 10)

	profile, err := controller.useCase.Profile(c.Request().Context(),
		model.Coordinates{Lat: coords[0], Lon: coords[1]},
		model.Coordinates{Lat: coords[2], Lon: coords[3]},
		samples)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}
