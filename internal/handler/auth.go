package handler

import (
	"errors"
	"net/http"

	"readhelper/internal/domain"
	"readhelper/internal/middleware"
	"readhelper/internal/repository/postgres"
	"readhelper/internal/service"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type signupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Bio      string `json:"bio"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, session, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.fail(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		h.serverError(w, err)
		return
	}

	h.setSessionCookie(w, session)
	h.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Logged in",
		"user":    user,
	})
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, session, err := h.authService.Signup(req.Username, req.Email, req.Password, req.Bio)
	if err != nil {
		switch {
		case errors.Is(err, postgres.ErrUsernameTaken):
			h.fail(w, http.StatusConflict, "username already taken")
		case errors.Is(err, service.ErrPasswordTooShort):
			h.fail(w, http.StatusBadRequest, err.Error())
		default:
			h.serverError(w, err)
		}
		return
	}

	h.setSessionCookie(w, session)
	h.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Account created",
		"user":    user,
	})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	var token string
	if cookie, err := r.Cookie(middleware.SessionCookie); err == nil {
		token = cookie.Value
	}

	if err := h.authService.Logout(token); err != nil {
		h.serverError(w, err)
		return
	}

	h.clearSessionCookie(w)
	h.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Logged out",
	})
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, session *domain.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
