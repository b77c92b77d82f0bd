package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ecoscope/internal/domain/model"
	"ecoscope/pkg/log"
	"ecoscope/pkg/msg"
	"ecoscope/pkg/util/numberutils"
)

// statusOf maps domain errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, model.ErrUserNotFound),
		errors.Is(err, model.ErrPriceNotFound),
		errors.Is(err, model.ErrUnknownLocation),
		errors.Is(err, model.ErrCommodityNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrEmailTaken),
		errors.Is(err, model.ErrInvalidCoordinates):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrPrimaryAdmin),
		errors.Is(err, model.ErrAdminExists):
		return http.StatusForbidden
	case errors.Is(err, model.ErrInsufficientHistory):
		return http.StatusUnprocessableEntity
	case errors.Is(err, model.ErrUpstreamUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// domainMessages are the user-facing texts of unwrapped domain errors.
var domainMessages = map[error]string{
	model.ErrUserNotFound:      "user.not-found",
	model.ErrEmailTaken:        "user.email-taken",
	model.ErrPrimaryAdmin:      "user.primary-admin",
	model.ErrAdminExists:       "auth.admin-exists",
	model.ErrPriceNotFound:     "market.price-not-found",
	model.ErrCommodityNotFound: "market.commodity-not-found",
}

// errorJSON writes {"error": ...}. Internal errors are logged and their
// detail is not exposed.
func errorJSON(c echo.Context, err error) error {
	status := statusOf(err)
	message := err.Error()
	if key, ok := domainMessages[err]; ok {
		message = msg.GetMessage(key)
	}

	switch status {
	case http.StatusInternalServerError:
		log.Error(msg.GetMessage("app.internal-error"), zap.String("uri", c.Request().RequestURI), zap.Error(err))
		message = msg.GetMessage("app.internal-error")
	case http.StatusBadGateway:
		log.Warn(msg.GetMessage("app.upstream-unavailable"), zap.String("uri", c.Request().RequestURI), zap.Error(err))
	}
	return c.JSON(status, map[string]string{"error": message})
}

// bindAndValidate binds the request body into dto and checks its tags. When
// ok is false the 400 response has already been written.
func bindAndValidate(c echo.Context, dto any) (ok bool, err error) {
	if err := c.Bind(dto); err != nil {
		return false, c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("app.invalid-body")})
	}
	if err := model.Validate(dto); err != nil {
		return false, c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return true, nil
}

// pathID parses the :id path parameter. When ok is false the 400 response
// has already been written.
func pathID(c echo.Context) (id int64, ok bool, err error) {
	id, parseErr := numberutils.ToInt64WithError(c.Param("id"))
	if parseErr != nil || id <= 0 {
		return 0, false, c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("app.invalid-id")})
	}
	return id, true, nil
}
