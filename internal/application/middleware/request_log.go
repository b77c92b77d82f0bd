package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"ecoscope/pkg/log"
	"ecoscope/pkg/msg"
)

// SetupRequestLogger registers the request logging middleware. Health probes
// and swagger assets are not logged.
func SetupRequestLogger(e *echo.Echo) {
	e.Use(echomw.RequestID())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRequestID: true,
		LogRemoteIP:  true,
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path
			return strings.HasSuffix(path, "/health") || strings.Contains(path, "/swagger/")
		},
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
				zap.String("remote_ip", v.RemoteIP),
			}
			if claims, ok := ClaimsFrom(c); ok {
				fields = append(fields, zap.String("user_id", claims.Subject))
			}

			switch {
			case v.Error != nil:
				log.Error(msg.GetMessage("app.req-fail"), append(fields, zap.Error(v.Error))...)
			case v.Status >= 500:
				log.Warn(msg.GetMessage("app.req-fail"), fields...)
			default:
				log.Info(msg.GetMessage("app.req-end"), fields...)
			}
			return nil
		},
	}))
}
