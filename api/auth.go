package api

import (
	"context"
)

// User is the account returned by the auth endpoints.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// VerifyResponse is returned by GET /auth/verify.
type VerifyResponse struct {
	Valid bool `json:"valid"`
	User  User `json:"user"`
}

// AuthService covers the /auth endpoints. It does not store tokens; callers
// decide what to do with AuthResponse.Token.
type AuthService struct {
	client *Client
}

// NewAuthService returns an AuthService using client.
func NewAuthService(client *Client) *AuthService {
	return &AuthService{client: client}
}

// Login exchanges credentials for a token.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := s.client.Post(ctx, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := s.client.Post(ctx, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Verify checks the client's current token.
func (s *AuthService) Verify(ctx context.Context) (*VerifyResponse, error) {
	var resp VerifyResponse
	if err := s.client.Get(ctx, "/auth/verify", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
