package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	_ "ecoscope/configs"
	_ "ecoscope/docs"
	"ecoscope/internal/application/controller"
	"ecoscope/internal/application/middleware"
	"ecoscope/internal/application/schedule"
	"ecoscope/internal/domain/gateway/api"
	"ecoscope/internal/domain/gateway/cache"
	"ecoscope/internal/domain/gateway/db"
	"ecoscope/internal/domain/usecase/auth"
	"ecoscope/internal/domain/usecase/crop"
	"ecoscope/internal/domain/usecase/forecast"
	"ecoscope/internal/domain/usecase/health"
	"ecoscope/internal/domain/usecase/market"
	"ecoscope/internal/domain/usecase/slope"
	"ecoscope/internal/domain/usecase/user"
	"ecoscope/internal/domain/usecase/weather"
	"ecoscope/internal/infra/database/gorm"
	"ecoscope/internal/infra/database/sqlc"
	"ecoscope/internal/infra/security"
	ecohttp "ecoscope/pkg/http"
	"ecoscope/pkg/log"
	"ecoscope/pkg/msg"
	"ecoscope/pkg/redis"
	"ecoscope/pkg/resource"
)

// @title EcoScope Wonosobo API
// @version 1.0
// @description Weather, market prices, crop recommendations and slope analysis for Kabupaten Wonosobo.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	appName := resource.GetString("app.name")
	log.Info(msg.GetMessage("app.start", appName))
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Init infra
	if err := sqlc.Migrate(); err != nil {
		log.Fatal("Fail to migrate market_prices table", zap.Error(err))
	}
	redisClient := connectRedis(ctx)

	e := echo.New()
	e.HideBanner = true
	middleware.SetupCORS(e, resource.GetString("app.server.cors-origins"))
	middleware.SetupRequestLogger(e)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	apiGroup := e.Group(resource.GetString("app.server.context-path"))

	// Init gateways
	userGateway := db.NewGormUserGateway(gorm.Db)
	priceGateway := db.NewSQLCMarketPriceGateway(sqlc.Db)
	bmkgGateway := api.NewBMKGGateway(
		resource.GetString("app.bmkg.base-url"),
		clientOptions("bmkg", resource.GetDuration("app.bmkg.timeout")),
		resource.GetFloat64("app.bmkg.rate-per-second"),
		resource.GetInt("app.bmkg.burst"))
	wilayahGateway := api.NewWilayahGateway(
		resource.GetString("app.wilayah.base-url"),
		clientOptions("wilayah", resource.GetDuration("app.wilayah.timeout")))
	marketSourceGateway := api.NewMarketSourceGateway(
		resource.GetString("app.market.source-url"),
		clientOptions("disdagkopukm", resource.GetDuration("app.market.timeout")))
	elevationGateway := api.NewElevationGateway(
		resource.GetString("app.elevation.base-url"),
		resource.GetString("app.elevation.api-key"),
		clientOptions("elevation", resource.GetDuration("app.elevation.timeout")))

	// Init UseCase
	tokens := security.NewTokenIssuer(resource.GetString("app.auth.jwt-secret"), resource.GetDuration("app.auth.token-ttl"))
	hasher := security.NewBcryptHasher(bcrypt.DefaultCost)

	var forecastCache *redis.Cache
	var loginLimiter middleware.Limiter
	if redisClient != nil {
		redisClient.GetConfig().WithCacheTTL("bmkg", resource.GetDuration("app.bmkg.cache-ttl"))
		forecastCache = redis.NewCache(redisClient, redis.NewCacheOptions().WithCacheName("bmkg"))
		loginLimiter = redis.NewFixedWindowLimiter(redisClient, "login",
			resource.GetInt("app.auth.login-limit"), resource.GetDuration("app.auth.login-window"))
	}

	authUseCase := auth.NewAuthUseCase(userGateway, hasher, tokens)
	userUseCase := user.NewUserUseCase(userGateway, hasher)
	weatherUseCase := weather.NewWeatherUseCase(bmkgGateway, wilayahGateway, forecastCache)
	marketUseCase := market.NewMarketUseCase(priceGateway, marketSourceGateway)
	forecastUseCase := forecast.NewForecastUseCase(priceGateway)
	cropUseCase := crop.NewCropUseCase(weatherUseCase)
	slopeUseCase := slope.NewSlopeUseCase(elevationGateway, resource.GetFloat64("app.elevation.radius-meters"))
	healthUseCase := health.NewHealthUseCase(
		db.CombineHealthDBGateways(map[string]db.HealthDBGateway{
			"users":         db.NewGormHealthDBGateway(gorm.Db),
			"market_prices": db.NewSQLCHealthDBGateway(sqlc.Db),
		}),
		cache.NewRedisHealthGateway(redisClient))

	if err := authUseCase.SeedPrimaryAdmin(ctx,
		resource.GetString("app.auth.primary-admin.name"),
		resource.GetString("app.auth.primary-admin.email"),
		resource.GetString("app.auth.primary-admin.password")); err != nil {
		log.Error(msg.GetMessage("auth.admin-seed-failed"), zap.Error(err))
	}

	// Init Controller and Routes
	controller.NewHealthController(apiGroup, healthUseCase).InitHealthRoutes()
	controller.NewAuthController(apiGroup, authUseCase, loginLimiter).InitAuthRoutes()
	controller.NewUserController(apiGroup, userUseCase, authUseCase).InitUserRoutes()
	controller.NewWeatherController(apiGroup, weatherUseCase, resource.GetString("app.bmkg.default-adm4")).InitWeatherRoutes()
	controller.NewMarketController(apiGroup, marketUseCase, authUseCase).InitMarketRoutes()
	controller.NewForecastController(apiGroup, forecastUseCase).InitForecastRoutes()
	controller.NewCropController(apiGroup, cropUseCase).InitCropRoutes()
	controller.NewSlopeController(apiGroup, slopeUseCase).InitSlopeRoutes()

	// Init Schedule
	marketScheduler := schedule.NewMarketScheduler(marketUseCase, redisClient, schedule.MarketSchedulerConfig{
		CronExpression: resource.GetString("app.market.sync.cron"),
		LockTTL:        resource.GetDuration("app.market.sync.lock-ttl"),
		RunOnStart:     resource.GetBool("app.market.sync.run-on-start"),
	})
	if err := marketScheduler.InitMarketScheduleTasks(ctx); err != nil {
		log.Fatal("Fail to start market scheduler", zap.Error(err))
	}

	// Start Routes
	port := resource.GetString("app.server.port")
	go func() {
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server stopped", zap.Error(err))
		}
	}()
	log.Info(msg.GetMessage("app.started", appName, port))

	<-ctx.Done()
	log.Info(msg.GetMessage("app.shutdown", appName))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Fail to shut down server", zap.Error(err))
	}
	marketScheduler.Stop()
	if redisClient != nil {
		_ = redisClient.Close()
	}
	_ = sqlc.Db.Close()
}

// connectRedis returns nil when Redis is unreachable; the API then runs
// without forecast caching, login throttling or the sync lock.
func connectRedis(ctx context.Context) *redis.Client {
	client := redis.NewClient(redis.NewRedisConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")))

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx); err != nil {
		log.Warn("Redis unavailable, continuing without cache", zap.Error(err))
		_ = client.Close()
		return nil
	}
	return client
}

func clientOptions(name string, timeout time.Duration) ecohttp.ClientOptions {
	return ecohttp.ClientOptions{
		ReadTimeout:    timeout,
		CircuitBreaker: &ecohttp.BreakerOptions{Name: name},
		Logger:         ecohttp.ZapHTTPLogger{Name: name},
	}
}
