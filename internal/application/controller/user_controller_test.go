package controller

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ecoscope/internal/domain/entity"
	"ecoscope/internal/domain/model"
)

type mockUserUseCase struct {
	mock.Mock
}

func (m *mockUserUseCase) List(ctx context.Context, filter model.UserFilter) (*model.Page[entity.User], error) {
	args := m.Called(ctx, filter)
	if r := args.Get(0); r != nil {
		return r.(*model.Page[entity.User]), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserUseCase) Get(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserUseCase) Create(ctx context.Context, request model.CreateUserRequest) (*entity.User, error) {
	args := m.Called(ctx, request)
	if r := args.Get(0); r != nil {
		return r.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserUseCase) Update(ctx context.Context, id int64, request model.UpdateUserRequest) (*entity.User, error) {
	args := m.Called(ctx, id, request)
	if r := args.Get(0); r != nil {
		return r.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserUseCase) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func TestUserController_AdminOnly(t *testing.T) {
	useCase := new(mockUserUseCase)
	e, api := newTestAPI()
	NewUserController(api, useCase, testAuthenticator{}).InitUserRoutes()

	assert.Equal(t, http.StatusUnauthorized, do(e, http.MethodGet, "/api/users", "", "").Code)
	assert.Equal(t, http.StatusForbidden, do(e, http.MethodGet, "/api/users", "", bearer(t, 2, entity.RoleModerator)).Code)
	useCase.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestUserController_List(t *testing.T) {
	useCase := new(mockUserUseCase)
	useCase.On("List", mock.Anything, model.UserFilter{Search: "siti", Role: "admin", Page: 0, Size: 100}).
		Return(model.NewPage([]entity.User{{UserID: 1}}, 0, 100, 1), nil)

	e, api := newTestAPI()
	NewUserController(api, useCase, testAuthenticator{}).InitUserRoutes()

	rec := do(e, http.MethodGet, "/api/users?search=siti&role=admin", "", bearer(t, 1, entity.RoleAdmin))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decode(t, rec)["totalElements"])
}

func TestUserController_CreateDuplicateEmail(t *testing.T) {
	useCase := new(mockUserUseCase)
	useCase.On("Create", mock.Anything, mock.Anything).Return(nil, model.ErrEmailTaken)

	e, api := newTestAPI()
	NewUserController(api, useCase, testAuthenticator{}).InitUserRoutes()

	rec := do(e, http.MethodPost, "/api/users", `{"name":"Siti","email":"siti@ecoscope.id","password":"rahasia"}`, bearer(t, 1, entity.RoleAdmin))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email already registered", decode(t, rec)["error"])
}

func TestUserController_CreateInvalidRole(t *testing.T) {
	useCase := new(mockUserUseCase)
	e, api := newTestAPI()
	NewUserController(api, useCase, testAuthenticator{}).InitUserRoutes()

	rec := do(e, http.MethodPost, "/api/users", `{"name":"Siti","email":"siti@ecoscope.id","password":"rahasia","role":"root"}`, bearer(t, 1, entity.RoleAdmin))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	useCase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserController_DeletePrimaryAdmin(t *testing.T) {
	useCase := new(mockUserUseCase)
	useCase.On("Delete", mock.Anything, int64(1)).Return(model.ErrPrimaryAdmin)
	useCase.On("Delete", mock.Anything, int64(3)).Return(nil)

	e, api := newTestAPI()
	NewUserController(api, useCase, testAuthenticator{}).InitUserRoutes()
	admin := bearer(t, 1, entity.RoleAdmin)

	rec := do(e, http.MethodDelete, "/api/users/1", "", admin)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Cannot delete primary admin", decode(t, rec)["error"])

	assert.Equal(t, http.StatusOK, do(e, http.MethodDelete, "/api/users/3", "", admin).Code)
	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodDelete, "/api/users/abc", "", admin).Code)
}

func TestUserController_UpdateNotFound(t *testing.T) {
	useCase := new(mockUserUseCase)
	name := "Baru"
	useCase.On("Update", mock.Anything, int64(8), model.UpdateUserRequest{Name: &name}).Return(nil, model.ErrUserNotFound)

	e, api := newTestAPI()
	NewUserController(api, useCase, testAuthenticator{}).InitUserRoutes()

	rec := do(e, http.MethodPut, "/api/users/8", `{"name":"Baru"}`, bearer(t, 1, entity.RoleAdmin))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
