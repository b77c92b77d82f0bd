package controller

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ecoscope/internal/domain/model"
)

type mockCropUseCase struct {
	mock.Mock
}

func (m *mockCropUseCase) RecommendByLocation(ctx context.Context, location string, days int) (*model.CropRecommendationResponse, error) {
	args := m.Called(ctx, location, days)
	if r := args.Get(0); r != nil {
		return r.(*model.CropRecommendationResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCropUseCase) RecommendByCoordinates(ctx context.Context, lat, lon float64, locationName string, days int) (*model.CropRecommendationResponse, error) {
	args := m.Called(ctx, lat, lon, locationName, days)
	if r := args.Get(0); r != nil {
		return r.(*model.CropRecommendationResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCropUseCase) Database() *model.CropDatabaseResponse {
	return m.Called().Get(0).(*model.CropDatabaseResponse)
}

func (m *mockCropUseCase) Locations() *model.CropLocationsResponse {
	return m.Called().Get(0).(*model.CropLocationsResponse)
}

func TestCropController_RecommendByLocation(t *testing.T) {
	useCase := new(mockCropUseCase)
	useCase.On("RecommendByLocation", mock.Anything, "Kertek", 7).
		Return(&model.CropRecommendationResponse{Status: "success", Location: "Kertek", PredictionSource: "BMKG"}, nil)
	useCase.On("RecommendByLocation", mock.Anything, "Bogor", 3).
		Return(nil, fmt.Errorf("%w: Bogor", model.ErrUnknownLocation))

	e, api := newTestAPI()
	NewCropController(api, useCase).InitCropRoutes()

	rec := do(e, http.MethodGet, "/api/crops/recommend?location=Kertek", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "BMKG", decode(t, rec)["prediction_source"])

	rec = do(e, http.MethodGet, "/api/crops/recommend?location=Bogor&days=3", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	errText := decode(t, rec)["error"].(string)
	assert.Contains(t, errText, "Lokasi 'Bogor' tidak ditemukan")
	assert.Contains(t, errText, "Wonosobo")
}

func TestCropController_RecommendByCoordinatesRejectsBadNumbers(t *testing.T) {
	useCase := new(mockCropUseCase)
	e, api := newTestAPI()
	NewCropController(api, useCase).InitCropRoutes()

	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodGet, "/api/crops/recommend/coordinates?lat=abc&lon=109.9", "", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodGet, "/api/crops/recommend/coordinates?lat=-7.3", "", "").Code)
	useCase.AssertNotCalled(t, "RecommendByCoordinates", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCropController_RecommendByCoordinatesOutOfRange(t *testing.T) {
	useCase := new(mockCropUseCase)
	useCase.On("RecommendByCoordinates", mock.Anything, 95.0, 109.9, "", 7).
		Return(nil, fmt.Errorf("%w: lat 95", model.ErrInvalidCoordinates))
	useCase.On("RecommendByCoordinates", mock.Anything, -7.36, 109.9, "Kebun", 5).
		Return(&model.CropRecommendationResponse{Status: "success", Location: "Kebun"}, nil)

	e, api := newTestAPI()
	NewCropController(api, useCase).InitCropRoutes()

	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodGet, "/api/crops/recommend/coordinates?lat=95&lon=109.9", "", "").Code)

	rec := do(e, http.MethodGet, "/api/crops/recommend/coordinates?lat=-7.36&lon=109.9&location_name=Kebun&days=5", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Kebun", decode(t, rec)["location"])
}

func TestCropController_Catalogue(t *testing.T) {
	useCase := new(mockCropUseCase)
	useCase.On("Database").Return(&model.CropDatabaseResponse{Status: "success", TotalCrops: 2, Categories: []string{"sayuran"}})
	useCase.On("Locations").Return(&model.CropLocationsResponse{Status: "success", TotalLocations: 15})

	e, api := newTestAPI()
	NewCropController(api, useCase).InitCropRoutes()

	assert.Equal(t, float64(2), decode(t, do(e, http.MethodGet, "/api/crops/database", "", ""))["total_crops"])
	assert.Equal(t, float64(15), decode(t, do(e, http.MethodGet, "/api/crops/locations", "", ""))["total_locations"])
}
