package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shivam77kk/healthcare-online/config"
	"github.com/shivam77kk/healthcare-online/internal/delivery/dto"
	"github.com/shivam77kk/healthcare-online/internal/delivery/http/middleware"
	"github.com/shivam77kk/healthcare-online/internal/domain/entity"
	"github.com/shivam77kk/healthcare-online/internal/usecase"
	"github.com/shivam77kk/healthcare-online/pkg/jwt"
	"github.com/shivam77kk/healthcare-online/pkg/response"
	"github.com/shivam77kk/healthcare-online/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthUsecase struct {
	RegisterPatientFn func(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.AuthResponse, error)
	LoginFn           func(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)

	loginCalls int
}

func (f *fakeAuthUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.AuthResponse, error) {
	if f.RegisterPatientFn != nil {
		return f.RegisterPatientFn(ctx, req)
	}
	return nil, nil
}

func (f *fakeAuthUsecase) AddNewAdmin(ctx context.Context, req *dto.AddAdminRequest) (*dto.UserResponse, error) {
	return nil, nil
}

func (f *fakeAuthUsecase) AddNewDoctor(ctx context.Context, req *dto.AddDoctorRequest, avatar *usecase.AvatarFile) (*dto.UserResponse, error) {
	return nil, nil
}

func (f *fakeAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	f.loginCalls++
	if f.LoginFn != nil {
		return f.LoginFn(ctx, req)
	}
	return nil, usecase.ErrInvalidCredentials
}

func (f *fakeAuthUsecase) Logout(ctx context.Context, userID uuid.UUID, accessTokenID string) error {
	return nil
}

func (f *fakeAuthUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	return nil, usecase.ErrInvalidToken
}

func (f *fakeAuthUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	return nil, usecase.ErrUserNotFound
}

func newAuthHandler(u usecase.AuthUsecase) *AuthHandler {
	return NewAuthHandler(u, validator.NewValidator(), config.CookieConfig{ExpireDays: 7})
}

func authResponseFor(role string) *dto.AuthResponse {
	return &dto.AuthResponse{
		User: &dto.UserResponse{
			ID:    uuid.New(),
			Email: "jane@example.com",
			Role:  role,
		},
		Token:        "access-token",
		RefreshToken: "refresh-token",
		ExpiresIn:    900,
	}
}

func postJSON(t *testing.T, handlerFunc http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handlerFunc(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestLoginSetsPatientCookie(t *testing.T) {
	fake := &fakeAuthUsecase{
		LoginFn: func(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
			return authResponseFor(entity.RolePatient), nil
		},
	}
	h := newAuthHandler(fake)

	rec := postJSON(t, h.Login, "/user/login", dto.LoginRequest{
		Email:           "jane@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
		Role:            entity.RolePatient,
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(t, rec, jwt.PatientCookie)
	require.NotNil(t, cookie)
	assert.Equal(t, "access-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Nil(t, sessionCookie(t, rec, jwt.AdminCookie))

	var body response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, "User logged in successfully", body.Message)
}

func TestLoginSetsAdminCookie(t *testing.T) {
	fake := &fakeAuthUsecase{
		LoginFn: func(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
			return authResponseFor(entity.RoleAdmin), nil
		},
	}
	h := newAuthHandler(fake)

	rec := postJSON(t, h.Login, "/user/login", dto.LoginRequest{
		Email:           "root@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
		Role:            entity.RoleAdmin,
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, sessionCookie(t, rec, jwt.AdminCookie))
	assert.Nil(t, sessionCookie(t, rec, jwt.PatientCookie))
}

func TestLoginConfirmPasswordMismatchRejectedBeforeUsecase(t *testing.T) {
	fake := &fakeAuthUsecase{}
	h := newAuthHandler(fake)

	rec := postJSON(t, h.Login, "/user/login", dto.LoginRequest{
		Email:           "jane@example.com",
		Password:        "password123",
		ConfirmPassword: "something-else",
		Role:            entity.RolePatient,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, fake.loginCalls)
}

func TestLoginUnknownRoleRejected(t *testing.T) {
	fake := &fakeAuthUsecase{}
	h := newAuthHandler(fake)

	rec := postJSON(t, h.Login, "/user/login", dto.LoginRequest{
		Email:           "jane@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
		Role:            "Superuser",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, fake.loginCalls)
}

func TestLoginInvalidCredentials(t *testing.T) {
	fake := &fakeAuthUsecase{}
	h := newAuthHandler(fake)

	rec := postJSON(t, h.Login, "/user/login", dto.LoginRequest{
		Email:           "jane@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
		Role:            entity.RolePatient,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, "Invalid email or password", body.Message)
}

func TestRegisterPatientSetsCookie(t *testing.T) {
	fake := &fakeAuthUsecase{
		RegisterPatientFn: func(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.AuthResponse, error) {
			return authResponseFor(entity.RolePatient), nil
		},
	}
	h := newAuthHandler(fake)

	rec := postJSON(t, h.RegisterPatient, "/user/patient/register", dto.RegisterPatientRequest{
		FirstName: "Jane",
		LastName:  "Moore",
		Email:     "jane@example.com",
		Phone:     "01234567890",
		NIC:       "1234567890123",
		DOB:       "1990-04-12",
		Gender:    entity.GenderFemale,
		Password:  "password123",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, sessionCookie(t, rec, jwt.PatientCookie))
}

func TestRegisterPatientValidationFailure(t *testing.T) {
	fake := &fakeAuthUsecase{}
	h := newAuthHandler(fake)

	// Phone must be exactly 11 digits, NIC 13.
	rec := postJSON(t, h.RegisterPatient, "/user/patient/register", dto.RegisterPatientRequest{
		FirstName: "Jane",
		LastName:  "Moore",
		Email:     "jane@example.com",
		Phone:     "123",
		NIC:       "456",
		DOB:       "1990-04-12",
		Gender:    entity.GenderFemale,
		Password:  "password123",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, "Validation failed", body.Message)
}

func TestLogoutClearsCookie(t *testing.T) {
	fake := &fakeAuthUsecase{}
	h := newAuthHandler(fake)

	userID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/user/patient/logout", nil)
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
	ctx = context.WithValue(ctx, middleware.TokenIDKey, "token-id")
	rec := httptest.NewRecorder()
	h.LogoutPatient(rec, req.WithContext(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
	cookie := sessionCookie(t, rec, jwt.PatientCookie)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.True(t, cookie.MaxAge < 0)
}
