package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ecoscope/internal/dashboard/client"
	"ecoscope/internal/dashboard/router"
	"ecoscope/internal/dashboard/session"
	"ecoscope/internal/dashboard/view"
	"ecoscope/internal/domain/entity"
	"ecoscope/internal/domain/model"
	"ecoscope/pkg/log"
	"ecoscope/pkg/redis"
	"ecoscope/pkg/resource"
)

const (
	routeHome            = "/"
	routeWeather         = "/prediksi-cuaca"
	routePrice           = "/prediksi-harga"
	routeSlope           = "/analisis-lereng"
	routeUserManagement  = "/user-management"
	routePriceManagement = "/price-management"
)

type options struct {
	district  string
	storage   string
	limit     int
	commodity string
}

// app is what every command works with. close releases the storage.
type app struct {
	clients *client.Clients
	session *session.Session
	router  *router.Router
	deps    view.Deps
	close   func()
}

func newApp(ctx context.Context, opts options) (*app, error) {
	if err := redirectLogs(resource.GetString("app.dashboard.log-file")); err != nil {
		return nil, err
	}

	district, ok := entity.FindDistrict(opts.district)
	if !ok {
		return nil, fmt.Errorf("unknown kecamatan %q", opts.district)
	}

	storage, closeStorage, err := openStorage(ctx, opts.storage)
	if err != nil {
		return nil, err
	}

	clients := client.New(client.Config{
		APIURL:  resource.GetString("app.dashboard.api-url"),
		BMKGURL: resource.GetString("app.dashboard.bmkg-url"),
		Timeout: resource.GetDuration("app.dashboard.timeout"),
	})
	s := session.New(storage, clients.Auth)

	deps := view.Deps{
		Clients:      clients,
		Session:      s,
		Notifier:     view.WriterNotifier{W: os.Stderr},
		PollInterval: resource.GetDuration("app.dashboard.poll-interval"),
		District:     district,
	}

	a := &app{clients: clients, session: s, router: newRouter(deps, opts), deps: deps}
	a.close = func() {
		a.router.Close()
		closeStorage()
	}
	return a, nil
}

func newRouter(deps view.Deps, opts options) *router.Router {
	prices := model.MarketFilter{Limit: opts.limit, Commodity: opts.commodity}

	r := router.New()
	r.Register(routeHome, func() view.View { return view.NewHomeView(deps) })
	r.Register(routeWeather, func() view.View { return view.NewWeatherView(deps) })
	r.Register(routePrice, func() view.View { return view.NewPriceView(deps, prices) })
	r.Register(routeSlope, func() view.View { return view.NewSlopeView(deps, 0) })
	r.Register(routeUserManagement, func() view.View { return view.NewUserManagementView(deps, model.UserFilter{}) })
	r.Register(routePriceManagement, func() view.View { return view.NewPriceManagementView(deps, prices) })
	return r
}

// openStorage picks the session backend: memory, sqlite or redis.
func openStorage(ctx context.Context, kind string) (session.Storage, func(), error) {
	switch kind {
	case "memory":
		return session.NewMemoryStorage(), func() {}, nil
	case "sqlite":
		storage, err := session.NewSQLiteStorage(resource.GetString("app.dashboard.sqlite-path"))
		if err != nil {
			return nil, nil, err
		}
		return storage, func() { _ = storage.Close() }, nil
	case "redis":
		rc := redis.NewClient(redis.NewRedisConfig().
			WithHost(resource.GetString("app.redis.host")).
			WithPort(resource.GetInt("app.redis.port")).
			WithPassword(resource.GetString("app.redis.password")).
			WithDatabase(resource.GetInt("app.redis.database")))
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := rc.Ping(pingCtx); err != nil {
			_ = rc.Close()
			return nil, nil, fmt.Errorf("session redis: %w", err)
		}
		return session.NewRedisStorage(rc), func() { _ = rc.Close() }, nil
	default:
		return nil, nil, errors.New("storage must be one of memory, sqlite, redis")
	}
}

// redirectLogs keeps log lines out of the rendered views.
func redirectLogs(path string) error {
	if path == "" {
		log.SetOutput(zapcore.AddSync(os.Stderr))
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	log.SetOutput(zapcore.AddSync(f))
	log.Debug("dashboard started", zap.Int("pid", os.Getpid()))
	return nil
}
