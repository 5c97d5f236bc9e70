package api

import (
	"context"
	"net/http"

	"github.com/RivoltaAlpha/FreshCart-sub001/session"
)

// AuthService talks to the /auth endpoints. Sign-in and sign-up are
// unauthenticated; refresh authenticates with the refresh token itself.
type AuthService struct {
	client *Client
}

// NewAuthService wraps the low-level client.
func NewAuthService(client *Client) *AuthService {
	return &AuthService{client: client}
}

// SignInRequest is the credential payload for /auth/signin.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// SignUpRequest creates an account. Role is supplied by the backend when
// omitted; the closed enum is enforced on the response, not here.
type SignUpRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Role      string `json:"role,omitempty"`
}

// SessionResponse is the backend's session envelope for sign-in and sign-up.
type SessionResponse struct {
	User   session.UserIdentity `json:"user"`
	Tokens session.TokenPair    `json:"tokens"`
}

// RefreshResponse carries the replacement access token. The refresh token is
// not rotated by this endpoint.
type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// SignIn exchanges email+password for a session.
func (s *AuthService) SignIn(ctx context.Context, req SignInRequest) (*SessionResponse, error) {
	var out SessionResponse
	if err := s.client.public(ctx, http.MethodPost, "/auth/signin", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SignUp creates an account and returns its session.
func (s *AuthService) SignUp(ctx context.Context, req SignUpRequest) (*SessionResponse, error) {
	var out SessionResponse
	if err := s.client.public(ctx, http.MethodPost, "/auth/signup", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SignOut invalidates the server-side session. The endpoint declares no
// authentication; local teardown happens regardless of the outcome here.
func (s *AuthService) SignOut(ctx context.Context, userID string) error {
	return s.client.public(ctx, http.MethodGet, "/auth/signout/"+userID, nil, nil)
}

// Refresh exchanges the refresh token for a new access token. One attempt,
// no backoff: the caller signs the user out on failure.
func (s *AuthService) Refresh(ctx context.Context, userID, refreshToken string) (string, error) {
	var out RefreshResponse
	err := s.client.withBearer(ctx, http.MethodPost, "/auth/refresh/"+userID, refreshToken, nil, &out)
	if err != nil {
		return "", err
	}
	return out.AccessToken, nil
}
