package client

import (
	"time"

	ecohttp "ecoscope/pkg/http"
)

// Config points the dashboard at its backends.
type Config struct {
	APIURL  string
	BMKGURL string
	Timeout time.Duration
}

// Clients bundles one client per remote service.
type Clients struct {
	Weather  *WeatherClient
	Market   *MarketClient
	Forecast *ForecastClient
	Auth     *AuthClient
	Crop     *CropClient
	Slope    *SlopeClient
	User     *UserClient
}

func New(cfg Config) *Clients {
	opts := ecohttp.ClientOptions{
		ReadTimeout: cfg.Timeout,
		Logger:      ecohttp.ZapHTTPLogger{Name: "dashboard"},
	}
	api := ecohttp.NewHttpClient(cfg.APIURL, opts)
	bmkg := ecohttp.NewHttpClient(cfg.BMKGURL, opts)

	return &Clients{
		Weather:  NewWeatherClient(bmkg, api),
		Market:   NewMarketClient(api),
		Forecast: NewForecastClient(api),
		Auth:     NewAuthClient(api),
		Crop:     NewCropClient(api),
		Slope:    NewSlopeClient(api),
		User:     NewUserClient(api),
	}
}
