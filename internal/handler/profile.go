package handler

import (
	"errors"
	"net/http"

	"readhelper/internal/middleware"
	"readhelper/internal/service"
)

// profileRequest covers both shapes PUT /profile/ accepts: a profile
// update, or a password change when new_password is set.
type profileRequest struct {
	Email           string   `json:"email"`
	Bio             string   `json:"bio"`
	KnownKeywords   []string `json:"known_keywords"`
	CurrentPassword string   `json:"current_password"`
	NewPassword     string   `json:"new_password"`
}

type clearHistoryRequest struct {
	ClearAll bool     `json:"clear_all"`
	Keywords []string `json:"keywords"`
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	h.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    user,
	})
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if !h.decode(w, r, &req) {
		return
	}
	user := middleware.UserFrom(r.Context())

	if req.NewPassword != "" {
		h.changePassword(w, user.ID, req)
		return
	}

	if req.Email == "" {
		h.fail(w, http.StatusBadRequest, "email is required")
		return
	}

	updated, err := h.authService.UpdateProfile(user.ID, req.Email, req.Bio, req.KnownKeywords)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateKeyword) {
			h.fail(w, http.StatusConflict, err.Error())
			return
		}
		h.serverError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Profile updated",
		"user":    updated,
	})
}

func (h *Handler) changePassword(w http.ResponseWriter, userID int64, req profileRequest) {
	err := h.authService.ChangePassword(userID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWrongPassword),
			errors.Is(err, service.ErrPasswordTooShort):
			h.fail(w, http.StatusBadRequest, err.Error())
		default:
			h.serverError(w, err)
		}
		return
	}

	user, err := h.authService.LoadUser(userID)
	if err != nil {
		h.serverError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Password updated",
		"user":    user,
	})
}

func (h *Handler) clearKeywordHistory(w http.ResponseWriter, r *http.Request) {
	var req clearHistoryRequest
	if !h.decode(w, r, &req) {
		return
	}
	user := middleware.UserFrom(r.Context())

	keywords := req.Keywords
	if req.ClearAll {
		keywords = nil
	}

	if err := h.historyService.ClearHistory(user.ID, keywords); err != nil {
		h.serverError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Keyword history cleared",
	})
}
