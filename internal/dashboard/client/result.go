package client

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"ecoscope/internal/domain/model/external"
	ecohttp "ecoscope/pkg/http"
	"ecoscope/pkg/log"
)

// Result is what every dashboard call returns. Transport, status and decode
// failures never escape as errors; they become OK false with a message the
// view can show.
type Result[T any] struct {
	OK      bool
	Data    T
	Total   int
	Message string
}

func success[T any](data T, total int) Result[T] {
	return Result[T]{OK: true, Data: data, Total: total}
}

func failure[T any](service string, err error, errResp any) Result[T] {
	message := describe(err, errResp)
	log.Warn("dashboard call failed", zap.String("service", service), zap.String("message", message))
	return Result[T]{Message: message}
}

// describe prefers the error text the server sent over the transport error.
func describe(err error, errResp any) string {
	if body, ok := errResp.(*external.APIErrorResponse); ok {
		if text := body.Text(); text != "" {
			return text
		}
	}
	if err == nil {
		return "unexpected empty response"
	}
	return err.Error()
}

type call struct {
	method ecohttp.RequestMethod
	path   string
	query  map[string]string
	token  string
	body   any
}

// fetch performs one request and decodes the body into T.
// The second return value is the decoded error body, if the server sent one.
func fetch[T any](ctx context.Context, hc *ecohttp.Client, service string, c call) (T, any, error) {
	var zero T
	method := c.method
	if method == "" {
		method = ecohttp.GET
	}

	request := hc.Request().
		WithContext(ctx).
		WithMethod(method).
		WithPath(c.path).
		WithBearer(c.token).
		WithSuccessResp(new(T)).
		WithErrorResp(&external.APIErrorResponse{})
	if len(c.query) > 0 {
		request = request.WithQueryParams(c.query)
	}
	if c.body != nil {
		request = request.WithBody(c.body)
	}

	successResp, errResp, _, err := request.Execute()
	if err != nil {
		return zero, errResp, err
	}
	data, ok := successResp.(*T)
	if !ok || data == nil {
		return zero, nil, errors.New(service + ": unexpected empty response")
	}
	return *data, nil, nil
}
