package handler

import (
	"encoding/json"
	"net/http"

	"github.com/medilab/lab-api/internal/delivery/dto"
	"github.com/medilab/lab-api/internal/delivery/http/middleware"
	"github.com/medilab/lab-api/internal/usecase"
	"github.com/medilab/lab-api/pkg/jwt"
	"github.com/medilab/lab-api/pkg/response"
	"github.com/medilab/lab-api/pkg/validator"
)

type AuthHandler struct {
	authUsecase    usecase.AuthUsecase
	validator      *validator.CustomValidator
	sessionService *jwt.SessionService
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator, sessionService *jwt.SessionService) *AuthHandler {
	return &AuthHandler{
		authUsecase:    authUsecase,
		validator:      validator,
		sessionService: sessionService,
	}
}

// Login authenticates a doctor or secretary and opens a session. The
// signed session token is set as an HttpOnly cookie; its lifetime is
// the browser session.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, token, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidCredentials, usecase.ErrUnknownRole:
			response.Unauthorized(w, "Invalid credentials")
		default:
			response.InternalServerError(w, "Failed to login")
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.sessionService.CookieName(),
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	response.Success(w, http.StatusOK, "Login successful", user)
}

// Logout revokes the session and expires the cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	tokenID, tokenOK := middleware.GetTokenIDFromContext(r.Context())
	if !ok || !tokenOK {
		response.Unauthorized(w, "Invalid session")
		return
	}
	role, _ := middleware.GetRoleFromContext(r.Context())

	if err := h.authUsecase.Logout(r.Context(), userID, role, tokenID); err != nil {
		response.InternalServerError(w, "Failed to logout")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.sessionService.CookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	response.Success(w, http.StatusOK, "Logout successful", nil)
}

// CurrentUser returns the session user.
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Not authenticated")
		return
	}
	name, _ := middleware.GetUserNameFromContext(r.Context())
	role, _ := middleware.GetRoleFromContext(r.Context())

	user := dto.SessionUser{
		UserID: userID,
		Name:   name,
		Role:   role,
	}
	response.Success(w, http.StatusOK, "User retrieved successfully", user)
}
