package api

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"ecoscope/internal/domain/model/external"
	"ecoscope/pkg/http"
)

type bmkgGatewayImpl struct {
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewBMKGGateway builds the BMKG gateway. BMKG throttles aggressively, so
// calls are spaced by a token bucket of rps requests per second.
func NewBMKGGateway(baseUrl string, clientOptions http.ClientOptions, rps float64, burst int) BMKGGateway {
	if rps <= 0 {
		rps = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &bmkgGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
		limiter:    rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (b *bmkgGatewayImpl) GetForecast(ctx context.Context, adm4 string) (*external.BMKGResponse, error) {
	if err := b.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}

	successResp, errResp, _, err := b.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/publik/prakiraan-cuaca").
		WithQueryParams(map[string]string{"adm4": adm4}).
		WithSuccessResp(&external.BMKGResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		return successResp.(*external.BMKGResponse), nil
	}

	if errResp != nil {
		if text := errResp.(*external.APIErrorResponse).Text(); text != "" {
			return nil, fmt.Errorf("bmkg: %s: %w", text, err)
		}
	}

	return nil, fmt.Errorf("bmkg: %w", err)
}
