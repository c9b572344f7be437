package client

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/shivam77kk/healthcare-online/internal/delivery/dto"
	"github.com/shivam77kk/healthcare-online/internal/domain/entity"
)

// Session tracks the authenticated user on the client side. It is the Go
// rendition of a browser session: the server remains the source of truth,
// the cached state only pre-fills until Bootstrap verifies it.
type Session struct {
	mu             sync.RWMutex
	user           *dto.UserResponse
	role           string
	loggedIn       bool
	authenticating bool

	client *Client
	cache  TokenCache
}

func NewSession(client *Client, cache TokenCache) *Session {
	if cache == nil {
		cache = NewMemoryTokenCache()
	}
	return &Session{client: client, cache: cache}
}

// User returns a copy of the current user, nil when logged out.
func (s *Session) User() *dto.UserResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) Role() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role
}

func (s *Session) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loggedIn
}

func (s *Session) Authenticating() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticating
}

// Bootstrap restores the session from the cache and verifies it against the
// server. Any failure along the way clears all local auth state, a stale
// session must never survive a failed verification.
func (s *Session) Bootstrap(ctx context.Context) error {
	s.mu.Lock()
	s.authenticating = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.authenticating = false
		s.mu.Unlock()
	}()

	role, ok := s.cache.Get(cacheKeyRole)
	if !ok || role == "" {
		s.clear()
		return nil
	}

	if raw, ok := s.cache.Get(cacheKeyExpiresAt); ok {
		expiresAt, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || time.Now().Unix() >= expiresAt {
			s.clear()
			return nil
		}
	}

	// Pre-fill from the cached user so callers see the last known session
	// while the server round-trip is in flight.
	if raw, ok := s.cache.Get(cacheKeyUser); ok {
		var cached dto.UserResponse
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			s.setAuthenticated(&cached, role)
		}
	}

	var user dto.UserResponse
	if err := s.client.do(ctx, http.MethodGet, mePath(role), nil, &user); err != nil {
		s.clear()
		if IsAuthError(err) {
			return nil
		}
		return err
	}

	s.setAuthenticated(&user, role)
	return nil
}

// Login authenticates against the server and stores the resulting session.
func (s *Session) Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, error) {
	var auth dto.AuthResponse
	if err := s.client.do(ctx, http.MethodPost, "/user/login", req, &auth); err != nil {
		return nil, err
	}

	s.storeAuth(&auth, req.Role)
	return auth.User, nil
}

// RegisterPatient self-registers a patient and logs them in.
func (s *Session) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.UserResponse, error) {
	var auth dto.AuthResponse
	if err := s.client.do(ctx, http.MethodPost, "/user/patient/register", req, &auth); err != nil {
		return nil, err
	}

	s.storeAuth(&auth, entity.RolePatient)
	return auth.User, nil
}

// Logout ends the server-side session. Local state is cleared even when the
// server call fails.
func (s *Session) Logout(ctx context.Context) error {
	role := s.Role()
	defer s.clear()

	if role == "" {
		return nil
	}
	return s.client.do(ctx, http.MethodGet, logoutPath(role), nil, nil)
}

// refresh rotates the session tokens using the cached refresh token.
func (s *Session) refresh(ctx context.Context) error {
	refreshToken, ok := s.cache.Get(cacheKeyRefreshToken)
	if !ok || refreshToken == "" {
		return &APIError{StatusCode: http.StatusUnauthorized, Message: "no refresh token"}
	}

	var tokens dto.TokenResponse
	req := &dto.RefreshTokenRequest{RefreshToken: refreshToken}
	if err := s.client.do(ctx, http.MethodPost, "/user/refresh-token", req, &tokens); err != nil {
		return err
	}

	s.cache.Set(cacheKeyRefreshToken, tokens.RefreshToken)
	s.cache.Set(cacheKeyExpiresAt, strconv.FormatInt(time.Now().Unix()+tokens.ExpiresIn, 10))
	return nil
}

// do runs an authenticated request. A session rejection triggers exactly one
// refresh attempt, a second rejection forces a local logout.
func (s *Session) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	err := s.client.do(ctx, method, path, body, out)
	if err == nil || !IsAuthError(err) {
		return err
	}

	if refreshErr := s.refresh(ctx); refreshErr != nil {
		s.clear()
		return err
	}

	err = s.client.do(ctx, method, path, body, out)
	if err != nil && IsAuthError(err) {
		s.clear()
	}
	return err
}

func (s *Session) storeAuth(auth *dto.AuthResponse, role string) {
	s.cache.Set(cacheKeyRole, role)
	s.cache.Set(cacheKeyRefreshToken, auth.RefreshToken)
	s.cache.Set(cacheKeyExpiresAt, strconv.FormatInt(time.Now().Unix()+auth.ExpiresIn, 10))
	if raw, err := json.Marshal(auth.User); err == nil {
		s.cache.Set(cacheKeyUser, string(raw))
	}

	s.setAuthenticated(auth.User, role)
}

func (s *Session) setAuthenticated(user *dto.UserResponse, role string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.role = role
	s.loggedIn = true
}

func (s *Session) clear() {
	s.mu.Lock()
	s.user = nil
	s.role = ""
	s.loggedIn = false
	s.mu.Unlock()

	s.cache.Delete(cacheKeyUser)
	s.cache.Delete(cacheKeyRole)
	s.cache.Delete(cacheKeyRefreshToken)
	s.cache.Delete(cacheKeyExpiresAt)
}

// sessionSegment picks the session endpoint family for a role. Admins have
// their own, everyone else rides the patient session.
func sessionSegment(role string) string {
	if role == entity.RoleAdmin {
		return "admin"
	}
	return "patient"
}

func mePath(role string) string {
	return "/user/" + sessionSegment(role) + "/me"
}

func logoutPath(role string) string {
	return "/user/" + sessionSegment(role) + "/logout"
}
