package api

import (
	"context"
	"fmt"

	"ecoscope/internal/domain/model/external"
	"ecoscope/pkg/http"
)

type wilayahGatewayImpl struct {
	httpClient *http.Client
}

func NewWilayahGateway(baseUrl string, clientOptions http.ClientOptions) WilayahGateway {
	return &wilayahGatewayImpl{httpClient: http.NewHttpClient(baseUrl, clientOptions)}
}

func (w *wilayahGatewayImpl) List(ctx context.Context) ([]external.WilayahEntry, error) {
	successResp, errResp, _, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/wilayah").
		WithSuccessResp(&external.WilayahResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		if errResp != nil {
			if text := errResp.(*external.APIErrorResponse).Text(); text != "" {
				return nil, fmt.Errorf("wilayah: %s: %w", text, err)
			}
		}
		return nil, fmt.Errorf("wilayah: %w", err)
	}

	response := successResp.(*external.WilayahResponse)
	if response.Status != "success" || response.Data == nil {
		return nil, fmt.Errorf("wilayah: unexpected response format")
	}
	return response.Data, nil
}
