package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoscope/internal/domain/model"
)

// newTestClients serves the backend and BMKG from the same mux.
func newTestClients(t *testing.T, mux *http.ServeMux) *Clients {
	t.Helper()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return New(Config{APIURL: server.URL, BMKGURL: server.URL})
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func nestedForecast(days, slots int) string {
	cuaca := make([][]map[string]any, days)
	for d := range cuaca {
		cuaca[d] = make([]map[string]any, slots)
		for s := range cuaca[d] {
			cuaca[d][s] = map[string]any{"t": 20 + s, "datetime": "2026-03-02T00:00:00Z"}
		}
	}
	body, _ := json.Marshal(map[string]any{
		"lokasi": map[string]any{"adm4": "33.07.09.1020", "kecamatan": "Wonosobo"},
		"data":   []any{map[string]any{"cuaca": cuaca}},
	})
	return string(body)
}

func TestWeatherClient_FetchFlattensNestedSlots(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/publik/prakiraan-cuaca", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "33.07.09.1020", r.URL.Query().Get("adm4"))
		writeJSON(w, http.StatusOK, nestedForecast(3, 4))
	})
	clients := newTestClients(t, mux)

	result := clients.Weather.Fetch(context.Background(), "33.07.09.1020")

	require.True(t, result.OK)
	assert.Equal(t, 12, result.Total)
	assert.Len(t, result.Data.Slots, result.Total)
	assert.Equal(t, "Wonosobo", result.Data.Location.Kecamatan)
}

func TestWeatherClient_FailuresCollapseToMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/publik/prakiraan-cuaca", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusServiceUnavailable, `{"message":"maintenance"}`)
	})
	mux.HandleFunc("/weather/current", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":`)
	})
	clients := newTestClients(t, mux)

	result := clients.Weather.Fetch(context.Background(), "33.07.09.1020")
	assert.False(t, result.OK)
	assert.Equal(t, "maintenance", result.Message)

	current := clients.Weather.FetchCurrent(context.Background(), "")
	assert.False(t, current.OK)
	assert.NotEmpty(t, current.Message)
}

func TestWeatherClient_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()
	clients := New(Config{APIURL: server.URL, BMKGURL: server.URL})

	result := clients.Weather.FetchCurrent(context.Background(), "33.07.09.1020")

	assert.False(t, result.OK)
	assert.NotEmpty(t, result.Message)
}

func TestMarketClient(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/market/list", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "cabai", r.URL.Query().Get("commodity"))
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		assert.False(t, r.URL.Query().Has("location"))
		writeJSON(w, http.StatusOK, `{"success":true,"total":2,"data":[
			{"price_id":2,"commodity_name":"Cabai","price":12000,"date":"2024-03-02"},
			{"price_id":1,"commodity_name":"Cabai","price":10000,"date":"2024-03-01"}]}`)
	})
	mux.HandleFunc("/market/sync", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		if r.Header.Get("Authorization") != "Bearer admin-token" {
			writeJSON(w, http.StatusUnauthorized, `{"error":"Token tidak valid"}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"message":"ok","total_fetched":5,"total_saved":4}`)
	})
	clients := newTestClients(t, mux)
	ctx := context.Background()

	list := clients.Market.List(ctx, model.MarketFilter{Commodity: "cabai", Limit: 50})
	require.True(t, list.OK)
	assert.Equal(t, 2, list.Total)
	assert.Equal(t, "2024-03-02", list.Data[0].Date.String())

	synced := clients.Market.Sync(ctx, "admin-token")
	require.True(t, synced.OK)
	assert.Equal(t, 5, synced.Data.TotalFetched)

	denied := clients.Market.Sync(ctx, "")
	assert.False(t, denied.OK)
	assert.Equal(t, "Token tidak valid", denied.Message)
}

func TestAuthClient_LoginPassesSoftFailThrough(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body model.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body.Password == "admin123" {
			writeJSON(w, http.StatusOK, `{"success":true,"message":"ok","role":"admin","token":"t","user":{"user_id":1,"email":"admin@ecoscope.id","role":"admin"}}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"success":false,"message":"Password salah"}`)
	})
	clients := newTestClients(t, mux)
	ctx := context.Background()

	ok := clients.Auth.Login(ctx, model.LoginRequest{Email: "admin@ecoscope.id", Password: "admin123"})
	require.True(t, ok.OK)
	assert.True(t, ok.Data.Success)
	assert.Equal(t, int64(1), ok.Data.User.UserID)

	wrong := clients.Auth.Login(ctx, model.LoginRequest{Email: "admin@ecoscope.id", Password: "nope"})
	require.True(t, wrong.OK)
	assert.False(t, wrong.Data.Success)
	assert.Equal(t, "Password salah", wrong.Data.Message)
}

func TestCropAndSlopeClients(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/crops/recommend/coordinates", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "-7.36", r.URL.Query().Get("lat"))
		assert.Equal(t, "Kebun", r.URL.Query().Get("location_name"))
		writeJSON(w, http.StatusOK, `{"status":"success","location":"Kebun","recommendations":{
			"highly_recommended":[{"crop_id":"cabai"}],"recommended":[{"crop_id":"padi"}],"not_recommended":[]}}`)
	})
	mux.HandleFunc("/crops/recommend", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"error":"Lokasi 'Bogor' tidak ditemukan"}`)
	})
	mux.HandleFunc("/slope/analyze", func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("radius"))
		writeJSON(w, http.StatusOK, `{"success":true,"data":{"slope_percent":31.5,"risk_level":"high","samples":[{},{},{}]}}`)
	})
	clients := newTestClients(t, mux)
	ctx := context.Background()

	byCoords := clients.Crop.RecommendByCoordinates(ctx, -7.36, 109.9, "Kebun", 7)
	require.True(t, byCoords.OK)
	assert.Equal(t, 2, byCoords.Total)

	missing := clients.Crop.Recommend(ctx, "Bogor", 7)
	assert.False(t, missing.OK)
	assert.Equal(t, "Lokasi 'Bogor' tidak ditemukan", missing.Message)

	slope := clients.Slope.Analyze(ctx, -7.36, 109.9, 0)
	require.True(t, slope.OK)
	assert.Equal(t, "high", slope.Data.RiskLevel)
	assert.Equal(t, 3, slope.Total)
}

func TestUserClient_List(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tkn", r.Header.Get("Authorization"))
		assert.Equal(t, "admin", r.URL.Query().Get("role"))
		writeJSON(w, http.StatusOK, `{"content":[{"user_id":1,"name":"Admin"}],"totalElements":7,"number":0,"size":1}`)
	})
	clients := newTestClients(t, mux)

	result := clients.User.List(context.Background(), "tkn", model.UserFilter{Role: "admin"})

	require.True(t, result.OK)
	assert.Equal(t, 7, result.Total)
	assert.Equal(t, "Admin", result.Data.Content[0].Name)
	assert.Equal(t, 1, result.Data.Size)
}

func TestForecastClient_Commodity(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/forecast/commodity/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/forecast/commodity/Durian" {
			writeJSON(w, http.StatusNotFound, `{"error":"commodity not found: Durian"}`)
			return
		}
		assert.Equal(t, "/forecast/commodity/Cabai Merah", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("days_forward"))
		writeJSON(w, http.StatusOK, `{"success":true,"commodity":"Cabai Merah","current_price":31100,
			"last_actual_date":"2026-03-12","predictions":[{"date":"2026-03-13","predicted_price":31200},
			{"date":"2026-03-14","predicted_price":31300}],"statistics":{"price_trend":"naik"}}`)
	})
	clients := newTestClients(t, mux)

	result := clients.Forecast.Commodity(context.Background(), "Cabai Merah", 7)

	require.True(t, result.OK)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, "2026-03-12", result.Data.LastActualDate.String())
	assert.Equal(t, "naik", result.Data.Statistics.PriceTrend)

	missing := clients.Forecast.Commodity(context.Background(), "Durian", 0)
	assert.False(t, missing.OK)
	assert.Equal(t, "commodity not found: Durian", missing.Message)
}
