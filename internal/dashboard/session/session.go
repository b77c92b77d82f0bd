package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"ecoscope/internal/dashboard/client"
	"ecoscope/internal/domain/entity"
	"ecoscope/internal/domain/model"
	"ecoscope/pkg/log"
)

const (
	KeyUser = "authUser"
	KeyRole = "authRole"
)

// ErrLoginUnavailable means the login request itself failed, as opposed
// to the backend rejecting the credentials.
var ErrLoginUnavailable = errors.New("login unavailable")

// Authenticator is the part of the auth client a session needs.
type Authenticator interface {
	Login(ctx context.Context, credentials model.LoginRequest) client.Result[model.LoginResponse]
}

// StoredUser is the authUser blob. The access token rides along so the
// session keeps its two-key layout.
type StoredUser struct {
	entity.User
	Token string `json:"token,omitempty"`
}

// Session is the signed-in state shared by the views. Stored state is
// trusted as is; expiry is only enforced by the backend.
type Session struct {
	storage Storage
	auth    Authenticator
}

func New(storage Storage, auth Authenticator) *Session {
	return &Session{storage: storage, auth: auth}
}

// Login persists the user and role when the backend accepts the
// credentials. A rejected login returns the payload and changes nothing.
func (s *Session) Login(ctx context.Context, credentials model.LoginRequest) (*model.LoginResponse, error) {
	result := s.auth.Login(ctx, credentials)
	if !result.OK {
		return nil, fmt.Errorf("%w: %s", ErrLoginUnavailable, result.Message)
	}

	response := result.Data
	if !response.Success || response.User == nil {
		return &response, nil
	}

	blob, err := json.Marshal(StoredUser{User: *response.User, Token: response.Token})
	if err != nil {
		return nil, err
	}
	role := response.Role
	if role == "" {
		role = response.User.Role
	}

	if err := s.storage.Set(KeyUser, string(blob)); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	if err := s.storage.Set(KeyRole, role); err != nil {
		_ = s.storage.Delete(KeyUser)
		return nil, fmt.Errorf("save session: %w", err)
	}

	log.Info("session started", zap.String("email", response.User.Email), zap.String("role", role))
	return &response, nil
}

// Logout removes both keys, attempting the second even if the first fails.
func (s *Session) Logout() error {
	return errors.Join(s.storage.Delete(KeyUser), s.storage.Delete(KeyRole))
}

func (s *Session) IsLoggedIn() bool {
	_, ok := s.CurrentUser()
	return ok
}

// CurrentUser returns false when nothing is stored or the blob is unreadable.
func (s *Session) CurrentUser() (*StoredUser, bool) {
	blob, found, err := s.storage.Get(KeyUser)
	if err != nil || !found {
		return nil, false
	}
	var user StoredUser
	if err := json.Unmarshal([]byte(blob), &user); err != nil {
		return nil, false
	}
	return &user, true
}

func (s *Session) Role() string {
	role, _, _ := s.storage.Get(KeyRole)
	return role
}

func (s *Session) Token() string {
	if user, ok := s.CurrentUser(); ok {
		return user.Token
	}
	return ""
}

func (s *Session) IsAdmin() bool {
	return s.IsLoggedIn() && s.Role() == entity.RoleAdmin
}
