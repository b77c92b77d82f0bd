package client

import (
	"context"

	"ecoscope/internal/domain/entity"
	"ecoscope/internal/domain/model"
	ecohttp "ecoscope/pkg/http"
)

type AuthClient struct {
	api *ecohttp.Client
}

func NewAuthClient(api *ecohttp.Client) *AuthClient {
	return &AuthClient{api: api}
}

// Login returns the payload as sent. A wrong password is still OK here;
// Data.Success carries the outcome.
func (a *AuthClient) Login(ctx context.Context, credentials model.LoginRequest) Result[model.LoginResponse] {
	response, errResp, err := fetch[model.LoginResponse](ctx, a.api, "auth", call{
		method: ecohttp.POST,
		path:   "/auth/login",
		body:   credentials,
	})
	if err != nil {
		return failure[model.LoginResponse]("auth", err, errResp)
	}
	return success(response, 1)
}

func (a *AuthClient) Me(ctx context.Context, token string) Result[entity.User] {
	response, errResp, err := fetch[entity.User](ctx, a.api, "auth", call{path: "/auth/me", token: token})
	if err != nil {
		return failure[entity.User]("auth", err, errResp)
	}
	return success(response, 1)
}
