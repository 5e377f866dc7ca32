package handler

import (
	"errors"
	"net/http"
	"strings"

	"readhelper/internal/domain"
	"readhelper/internal/middleware"
	"readhelper/internal/service"
)

type annotateRequest struct {
	Passage string `json:"passage" validate:"required"`
}

type newKeywordRequest struct {
	Passage domain.Passage `json:"keywords_with_explanations" validate:"required"`
	Word    string         `json:"requested_word" validate:"required"`
}

type addKnownWordRequest struct {
	Passage domain.Passage `json:"keywords_with_explanations" validate:"required"`
	Word    string         `json:"word" validate:"required"`
}

type savePassageRequest struct {
	Passage domain.Passage `json:"keywords_with_explanations" validate:"required"`
}

type deletePassageRequest struct {
	PassageID int64 `json:"passage_id" validate:"required"`
}

func (h *Handler) getKeywords(w http.ResponseWriter, r *http.Request) {
	var req annotateRequest
	if !h.decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Passage) == "" {
		h.fail(w, http.StatusBadRequest, "passage must not be empty")
		return
	}

	var userID int64
	if user := middleware.UserFrom(r.Context()); user != nil {
		userID = user.ID
	}

	passage, err := h.passageService.Annotate(r.Context(), userID, req.Passage)
	if err != nil {
		h.serverError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"keywords_with_explanations": passage,
	})
}

func (h *Handler) newKeyword(w http.ResponseWriter, r *http.Request) {
	var req newKeywordRequest
	if !h.decode(w, r, &req) {
		return
	}
	user := middleware.UserFrom(r.Context())

	passage, err := h.passageService.NewKeyword(r.Context(), user.ID, req.Passage, req.Word)
	if err != nil {
		if errors.Is(err, service.ErrNoExplanation) {
			h.fail(w, http.StatusNotFound, err.Error())
			return
		}
		h.serverError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"keywords_with_explanations": passage,
	})
}

func (h *Handler) addKnownWord(w http.ResponseWriter, r *http.Request) {
	var req addKnownWordRequest
	if !h.decode(w, r, &req) {
		return
	}
	user := middleware.UserFrom(r.Context())

	passage, err := h.passageService.AddKnownWord(user.ID, req.Passage, req.Word)
	if err != nil {
		h.serverError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"keywords_with_explanations": passage,
	})
}

func (h *Handler) savePassage(w http.ResponseWriter, r *http.Request) {
	var req savePassageRequest
	if !h.decode(w, r, &req) {
		return
	}
	user := middleware.UserFrom(r.Context())

	id, err := h.passageService.SavePassage(user.ID, req.Passage)
	if err != nil {
		h.serverError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"passage_id": id,
	})
}

func (h *Handler) savedPassages(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	passages, err := h.passageService.SavedPassages(user.ID)
	if err != nil {
		h.serverError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"passages": passages,
	})
}

func (h *Handler) deletePassage(w http.ResponseWriter, r *http.Request) {
	var req deletePassageRequest
	if !h.decode(w, r, &req) {
		return
	}
	user := middleware.UserFrom(r.Context())

	deleted, err := h.passageService.DeletePassage(user.ID, req.PassageID)
	if err != nil {
		h.serverError(w, err)
		return
	}
	if !deleted {
		// Already gone. Reported in the body, not as an error status,
		// so the client can treat it as non-fatal.
		h.writeJSON(w, http.StatusOK, map[string]any{
			"success": false,
			"message": "passage not found",
		})
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
	})
}
