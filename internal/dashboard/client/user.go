package client

import (
	"context"
	"strconv"

	"ecoscope/internal/domain/entity"
	"ecoscope/internal/domain/model"
	ecohttp "ecoscope/pkg/http"
)

type UserClient struct {
	api *ecohttp.Client
}

func NewUserClient(api *ecohttp.Client) *UserClient {
	return &UserClient{api: api}
}

// List needs an admin token. Total is the server-side count across pages.
func (u *UserClient) List(ctx context.Context, token string, filter model.UserFilter) Result[model.Page[entity.User]] {
	query := map[string]string{}
	if filter.Search != "" {
		query["search"] = filter.Search
	}
	if filter.Role != "" {
		query["role"] = filter.Role
	}
	if filter.Size > 0 {
		query["page"] = strconv.Itoa(filter.Page)
		query["size"] = strconv.Itoa(filter.Size)
	}

	page, errResp, err := fetch[model.Page[entity.User]](ctx, u.api, "users", call{path: "/users", query: query, token: token})
	if err != nil {
		return failure[model.Page[entity.User]]("users", err, errResp)
	}
	return success(page, int(page.TotalElements))
}
