package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shivam77kk/healthcare-online/config"
	"github.com/shivam77kk/healthcare-online/internal/delivery/dto"
	"github.com/shivam77kk/healthcare-online/internal/delivery/http/middleware"
	"github.com/shivam77kk/healthcare-online/internal/usecase"
	"github.com/shivam77kk/healthcare-online/pkg/jwt"
	"github.com/shivam77kk/healthcare-online/pkg/response"
	"github.com/shivam77kk/healthcare-online/pkg/validator"
)

// maxAvatarMemory bounds the in-memory part of a doctor avatar upload.
const maxAvatarMemory = 10 << 20

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
	cookieCfg   config.CookieConfig
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator, cookieCfg config.CookieConfig) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
		cookieCfg:   cookieCfg,
	}
}

// setSessionCookie sets the role-scoped HTTP-only session cookie.
func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, role, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     jwt.CookieName(role),
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(time.Duration(h.cookieCfg.ExpireDays) * 24 * time.Hour),
		HttpOnly: true,
		Secure:   h.cookieCfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires the named session cookie immediately.
func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter, cookieName string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieCfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// RegisterPatient handles public patient self-registration
func (h *AuthHandler) RegisterPatient(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	auth, err := h.authUsecase.RegisterPatient(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.BadRequest(w, "User already registered")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to register user")
		}
		return
	}

	h.setSessionCookie(w, auth.User.Role, auth.Token)
	response.Success(w, http.StatusOK, "User registered", auth)
}

// Login opens a session for the requested role
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	// Field presence and password/confirmPassword equality are rejected
	// here, before the usecase touches any repository.
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	auth, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidCredentials:
			response.BadRequest(w, "Invalid email or password")
		case usecase.ErrRoleMismatch:
			response.BadRequest(w, "User with this role not found")
		default:
			response.InternalServerError(w, "Failed to login")
		}
		return
	}

	h.setSessionCookie(w, auth.User.Role, auth.Token)
	response.Success(w, http.StatusOK, "User logged in successfully", auth)
}

// AddNewAdmin handles admin-only creation of another admin account
func (h *AuthHandler) AddNewAdmin(w http.ResponseWriter, r *http.Request) {
	var req dto.AddAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	admin, err := h.authUsecase.AddNewAdmin(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.BadRequest(w, "User with this email already exists")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create admin")
		}
		return
	}

	response.Success(w, http.StatusCreated, "New admin created successfully", admin)
}

// AddNewDoctor handles admin-only doctor onboarding. The request is
// multipart form data with an optional avatar image part.
func (h *AuthHandler) AddNewDoctor(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxAvatarMemory); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	req := dto.AddDoctorRequest{
		FirstName:  r.FormValue("first_name"),
		LastName:   r.FormValue("last_name"),
		Email:      r.FormValue("email"),
		Phone:      r.FormValue("phone"),
		NIC:        r.FormValue("nic"),
		DOB:        r.FormValue("dob"),
		Gender:     r.FormValue("gender"),
		Password:   r.FormValue("password"),
		Department: r.FormValue("department"),
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	var avatar *usecase.AvatarFile
	if file, header, err := r.FormFile("avatar"); err == nil {
		defer file.Close()
		avatar = &usecase.AvatarFile{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Reader:      file,
		}
	}

	doctor, err := h.authUsecase.AddNewDoctor(r.Context(), &req, avatar)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.BadRequest(w, "User with this email already exists")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create doctor")
		}
		return
	}

	response.Success(w, http.StatusCreated, "New doctor registered", doctor)
}

// RefreshToken rotates a refresh token into a new token pair
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	tokens, err := h.authUsecase.RefreshToken(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidToken, usecase.ErrTokenRevoked:
			response.Unauthorized(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to refresh token")
		}
		return
	}

	// Re-issue the session cookie so cookie-based clients pick up the
	// rotated access token transparently.
	h.setSessionCookie(w, tokens.Role, tokens.AccessToken)

	response.Success(w, http.StatusOK, "Token refreshed successfully", tokens)
}

// GetCurrentUser returns the authenticated user's own record
func (h *AuthHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	user, err := h.authUsecase.GetCurrentUser(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to get user info")
		}
		return
	}

	response.Success(w, http.StatusOK, "User retrieved successfully", user)
}

// LogoutAdmin expires the admin session cookie and revokes the token
func (h *AuthHandler) LogoutAdmin(w http.ResponseWriter, r *http.Request) {
	h.logout(w, r, jwt.AdminCookie, "Admin logged out successfully")
}

// LogoutPatient expires the patient session cookie and revokes the token
func (h *AuthHandler) LogoutPatient(w http.ResponseWriter, r *http.Request) {
	h.logout(w, r, jwt.PatientCookie, "Patient logged out successfully")
}

func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request, cookieName, message string) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	tokenID, ok := middleware.GetTokenIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	if err := h.authUsecase.Logout(r.Context(), userID, tokenID); err != nil {
		response.InternalServerError(w, "Failed to logout")
		return
	}

	h.clearSessionCookie(w, cookieName)
	response.Success(w, http.StatusOK, message, nil)
}
