package theralink

import (
	"context"
	"sync"

	"github.com/theralink/client-go/internal/api"
)

// AuthService authenticates practitioner accounts and manages the
// session token used by subsequent calls.
type AuthService struct {
	client *Client
	api    *api.Client

	mu      sync.Mutex
	session *Session
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Login exchanges credentials for a session. On success the session
// token replaces the API key as the bearer token for subsequent calls.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}

	var session Session
	_, err := s.api.Do(ctx, api.Request{
		Method: "POST",
		Path:   "/auth/login",
		Body:   loginRequest{Email: email, Password: password},
	}, &session)
	if err != nil {
		return nil, err
	}

	s.storeSession(&session)
	return &session, nil
}

// Refresh exchanges the stored refresh token for a new session.
// Returns ErrNotAuthenticated if no login has succeeded yet.
func (s *AuthService) Refresh(ctx context.Context) (*Session, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}
	return s.doRefresh(ctx)
}

// Logout invalidates the session server-side and drops the session token.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.client.checkClosed(); err != nil {
		return err
	}

	_, err := s.api.Do(ctx, api.Request{Method: "POST", Path: "/auth/logout"}, nil)

	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()

	return err
}

// Me returns the currently authenticated user.
func (s *AuthService) Me(ctx context.Context) (*User, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}

	var user User
	_, err := s.api.Do(ctx, api.Request{Method: "GET", Path: "/auth/me"}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Session returns the current session, or nil before login.
func (s *AuthService) Session() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

func (s *AuthService) storeSession(session *Session) {
	s.mu.Lock()
	s.session = session
	s.mu.Unlock()
	s.api.SetToken(session.Token)
}

// refreshToken is the pipeline's 401 recovery hook. It runs inside the
// singleflight gate, so only one refresh request is in flight no matter
// how many calls hit the expired token.
func (s *AuthService) refreshToken(ctx context.Context) (string, error) {
	session, err := s.doRefresh(ctx)
	if err != nil {
		return "", err
	}
	return session.Token, nil
}

func (s *AuthService) doRefresh(ctx context.Context) (*Session, error) {
	s.mu.Lock()
	current := s.session
	s.mu.Unlock()

	if current == nil || current.RefreshToken == "" {
		return nil, ErrNotAuthenticated
	}

	var session Session
	_, err := s.api.Do(ctx, api.Request{
		Method: "POST",
		Path:   "/auth/refresh",
		Body:   refreshRequest{RefreshToken: current.RefreshToken},
		// The refresh call itself must never recurse into refresh.
		SkipAuthRefresh: true,
	}, &session)
	if err != nil {
		return nil, err
	}

	s.storeSession(&session)
	return &session, nil
}
