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

type mockForecastUseCase struct {
	mock.Mock
}

func (m *mockForecastUseCase) Commodity(ctx context.Context, name string, opts model.ForecastOptions) (*model.PriceForecastResponse, error) {
	args := m.Called(ctx, name, opts)
	if r := args.Get(0); r != nil {
		return r.(*model.PriceForecastResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockForecastUseCase) Batch(ctx context.Context, names []string, daysForward int) (*model.BatchForecastResponse, error) {
	args := m.Called(ctx, names, daysForward)
	if r := args.Get(0); r != nil {
		return r.(*model.BatchForecastResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockForecastUseCase) Commodities(ctx context.Context) (*model.AvailableCommoditiesResponse, error) {
	args := m.Called(ctx)
	if r := args.Get(0); r != nil {
		return r.(*model.AvailableCommoditiesResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestForecastController_Commodity(t *testing.T) {
	useCase := new(mockForecastUseCase)
	useCase.On("Commodity", mock.Anything, "cabai", model.ForecastOptions{DaysForward: 14, DaysBack: 90}).
		Return(&model.PriceForecastResponse{Success: true, Commodity: "cabai", ForecastDays: 14}, nil)

	e, api := newTestAPI()
	NewForecastController(api, useCase).InitForecastRoutes()

	rec := do(e, http.MethodGet, "/api/forecast/commodity/cabai?days_forward=14", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(14), body["forecast_days"])
}

func TestForecastController_RejectsWindowOutOfRange(t *testing.T) {
	useCase := new(mockForecastUseCase)
	e, api := newTestAPI()
	NewForecastController(api, useCase).InitForecastRoutes()

	for _, query := range []string{"days_forward=0", "days_forward=91", "days_back=29", "days_back=366", "days_forward=abc"} {
		t.Run(query, func(t *testing.T) {
			rec := do(e, http.MethodGet, "/api/forecast/commodity/cabai?"+query, "", "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "days_forward harus 1-90 dan days_back 30-365", decode(t, rec)["error"])
		})
	}
	useCase.AssertNotCalled(t, "Commodity", mock.Anything, mock.Anything, mock.Anything)
}

func TestForecastController_CommodityErrors(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: durian", model.ErrCommodityNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: durian has 3 daily prices, need 10", model.ErrInsufficientHistory), http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			useCase := new(mockForecastUseCase)
			useCase.On("Commodity", mock.Anything, "durian", mock.Anything).Return(nil, tc.err)
			e, api := newTestAPI()
			NewForecastController(api, useCase).InitForecastRoutes()

			rec := do(e, http.MethodGet, "/api/forecast/commodity/durian", "", "")

			assert.Equal(t, tc.want, rec.Code)
			assert.Equal(t, tc.err.Error(), decode(t, rec)["error"])
		})
	}
}

func TestForecastController_Batch(t *testing.T) {
	useCase := new(mockForecastUseCase)
	useCase.On("Batch", mock.Anything, []string{"Cabai", "Beras"}, 7).
		Return(&model.BatchForecastResponse{TotalRequested: 2, SuccessfulForecasts: 2}, nil)

	e, api := newTestAPI()
	NewForecastController(api, useCase).InitForecastRoutes()

	rec := do(e, http.MethodPost, "/api/forecast/batch?days_forward=7", `{"commodity_names":["Cabai","Beras"]}`, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), decode(t, rec)["successful_forecasts"])

	rec = do(e, http.MethodPost, "/api/forecast/batch", `{"commodity_names":[]}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestForecastController_AvailableCommodities(t *testing.T) {
	useCase := new(mockForecastUseCase)
	useCase.On("Commodities", mock.Anything).
		Return(&model.AvailableCommoditiesResponse{Success: true, Total: 1, Commodities: []string{"Kentang"}}, nil)

	e, api := newTestAPI()
	NewForecastController(api, useCase).InitForecastRoutes()

	rec := do(e, http.MethodGet, "/api/forecast/available-commodities", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{"Kentang"}, decode(t, rec)["commodities"])
}
