package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoscope/internal/domain/entity"
	ecohttp "ecoscope/pkg/http"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func jsonHandler(t *testing.T, wantPath string, status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, wantPath, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

const bmkgPayload = `{
  "lokasi": {"adm4": "33.07.09.1020", "desa": "Wonosobo Timur", "kecamatan": "Wonosobo", "lat": -7.36, "lon": 109.9},
  "data": [{"cuaca": [
    [{"datetime": "2026-03-02T00:00:00Z", "local_datetime": "2026-03-02 07:00:00", "t": 21, "hu": 90, "tp": 0.2, "weather": 3, "weather_desc": "Berawan"},
     {"datetime": "2026-03-02T03:00:00Z", "local_datetime": "2026-03-02 10:00:00", "t": 24, "hu": 80, "tp": 0, "weather": 1},
     {"datetime": "2026-03-02T06:00:00Z", "local_datetime": "2026-03-02 13:00:00", "t": 26, "hu": 70, "tp": 1.5, "weather": 61},
     {"datetime": "2026-03-02T09:00:00Z", "local_datetime": "2026-03-02 16:00:00", "t": 23, "hu": 85, "tp": 4, "weather": 63}],
    [{"datetime": "2026-03-03T00:00:00Z", "t": 20}, {"datetime": "2026-03-03T03:00:00Z", "t": 22},
     {"datetime": "2026-03-03T06:00:00Z", "t": 25}, {"datetime": "2026-03-03T09:00:00Z", "t": 23}],
    [{"datetime": "2026-03-04T00:00:00Z", "t": 19}, {"datetime": "2026-03-04T03:00:00Z", "t": 21},
     {"datetime": "2026-03-04T06:00:00Z", "t": 24}, {"datetime": "2026-03-04T09:00:00Z", "t": 22}]
  ]}]
}`

func TestBMKGGateway_GetForecast(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/publik/prakiraan-cuaca", r.URL.Path)
		assert.Equal(t, "33.07.09.1020", r.URL.Query().Get("adm4"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(bmkgPayload))
	})

	gateway := NewBMKGGateway(server.URL, ecohttp.ClientOptions{}, 100, 1)
	response, err := gateway.GetForecast(context.Background(), "33.07.09.1020")
	require.NoError(t, err)

	assert.Equal(t, "Wonosobo", response.Lokasi.Kecamatan)
	forecasts := response.Flatten()
	require.Len(t, forecasts, 12)
	assert.Equal(t, 21.0, forecasts[0].Temperature)
	assert.Equal(t, "Berawan", forecasts[0].Description)
	assert.Equal(t, 2026, forecasts[0].Datetime.Year())
	assert.Equal(t, 22.0, forecasts[11].Temperature)
}

func TestBMKGGateway_ErrorBody(t *testing.T) {
	server := newTestServer(t, jsonHandler(t, "/publik/prakiraan-cuaca", http.StatusTooManyRequests, `{"message":"rate limited"}`))

	gateway := NewBMKGGateway(server.URL, ecohttp.ClientOptions{}, 100, 1)
	_, err := gateway.GetForecast(context.Background(), "33.07.09.1020")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestBMKGGateway_CanceledWhileThrottled(t *testing.T) {
	server := newTestServer(t, jsonHandler(t, "/publik/prakiraan-cuaca", http.StatusOK, bmkgPayload))
	gateway := NewBMKGGateway(server.URL, ecohttp.ClientOptions{}, 0.001, 1)

	_, err := gateway.GetForecast(context.Background(), "33.07.09.1020")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = gateway.GetForecast(ctx, "33.07.09.1020")
	require.Error(t, err)
}

func TestMarketSourceGateway_BareArrayAndEnvelope(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/produk-komoditas":
			_, _ = w.Write([]byte(`[{"komoditas":"Cabai Rawit","pasar":"Pasar Induk","satuan":"kg","harga":"Rp 45.000","tanggal":"2026-03-02 08:00:00"},
				{"komoditas":"Beras","harga":12500}]`))
		case "/komoditas":
			_, _ = w.Write([]byte(`{"status":"success","data":[{"nama":"Cabai Rawit","id":1},{"nama":"Beras","id":2}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	gateway := NewMarketSourceGateway(server.URL, ecohttp.ClientOptions{})
	prices, commodities, err := gateway.FetchAll(context.Background())
	require.NoError(t, err)

	require.Len(t, prices, 2)
	assert.Equal(t, "Cabai Rawit", prices[0].Komoditas)
	assert.Equal(t, "Rp 45.000", prices[0].Harga)
	assert.Equal(t, 12500.0, prices[1].Harga)

	require.Len(t, commodities, 2)
	assert.Equal(t, "Beras", commodities[1].Name())
}

func TestMarketSourceGateway_FailureFailsBoth(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/komoditas" {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"database offline"}`))
			return
		}
		_, _ = w.Write([]byte(`[]`))
	})

	gateway := NewMarketSourceGateway(server.URL, ecohttp.ClientOptions{})
	prices, commodities, err := gateway.FetchAll(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database offline")
	assert.Nil(t, prices)
	assert.Nil(t, commodities)
}

func TestMarketSourceGateway_UnexpectedPayload(t *testing.T) {
	server := newTestServer(t, jsonHandler(t, "/komoditas", http.StatusOK, `"maintenance"`))

	gateway := NewMarketSourceGateway(server.URL, ecohttp.ClientOptions{})
	_, err := gateway.FetchCommodities(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected payload")
}

func TestWilayahGateway_List(t *testing.T) {
	server := newTestServer(t, jsonHandler(t, "/wilayah", http.StatusOK,
		`{"status":"success","data":[{"nama":"Kertek","kode":"33.07.01"},{"nama":"Garung"}]}`))

	entries, err := NewWilayahGateway(server.URL, ecohttp.ClientOptions{}).List(context.Background())
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, "Kertek", entries[0].Name())
	assert.Equal(t, "33.07.01", entries[0]["kode"])
}

func TestWilayahGateway_RejectsUnexpectedStatus(t *testing.T) {
	server := newTestServer(t, jsonHandler(t, "/wilayah", http.StatusOK, `{"status":"error"}`))

	_, err := NewWilayahGateway(server.URL, ecohttp.ClientOptions{}).List(context.Background())

	require.EqualError(t, err, "wilayah: unexpected response format")
}

func TestElevationGateway_Lookup(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/maps/api/elevation/json", r.URL.Path)
		assert.Equal(t, "k", r.URL.Query().Get("key"))
		assert.Len(t, strings.Split(r.URL.Query().Get("locations"), "|"), 2)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK","results":[{"elevation":812.4},{"elevation":830.1}]}`))
	})

	gateway := NewElevationGateway(server.URL, "k", ecohttp.ClientOptions{})
	points, err := gateway.Lookup(context.Background(), []entity.ElevationPoint{
		{Lat: -7.36, Lon: 109.9},
		{Lat: -7.361, Lon: 109.9},
	})
	require.NoError(t, err)

	require.Len(t, points, 2)
	assert.Equal(t, 812.4, points[0].Elevation)
	assert.Equal(t, -7.361, points[1].Lat)
}

func TestElevationGateway_Failures(t *testing.T) {
	server := newTestServer(t, jsonHandler(t, "/maps/api/elevation/json", http.StatusOK,
		`{"status":"REQUEST_DENIED","error_message":"The provided API key is invalid."}`))
	points := []entity.ElevationPoint{{Lat: -7.36, Lon: 109.9}}

	_, err := NewElevationGateway(server.URL, "", ecohttp.ClientOptions{}).Lookup(context.Background(), points)
	require.Error(t, err)

	_, err = NewElevationGateway(server.URL, "k", ecohttp.ClientOptions{}).Lookup(context.Background(), points)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REQUEST_DENIED")

	empty, err := NewElevationGateway(server.URL, "k", ecohttp.ClientOptions{}).Lookup(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
