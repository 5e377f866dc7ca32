package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"readhelper/internal/middleware"
	"readhelper/internal/service"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Handler wires the HTTP API to the services
type Handler struct {
	authService    *service.AuthService
	passageService *service.PassageService
	historyService *service.HistoryService
	validate       *validator.Validate
	logger         *zap.Logger
	sessionTTL     time.Duration
}

// NewHandler creates a new handler instance
func NewHandler(
	authService *service.AuthService,
	passageService *service.PassageService,
	historyService *service.HistoryService,
	logger *zap.Logger,
	sessionTTL time.Duration,
) *Handler {
	return &Handler{
		authService:    authService,
		passageService: passageService,
		historyService: historyService,
		validate:       validator.New(),
		logger:         logger,
		sessionTTL:     sessionTTL,
	}
}

// Routes builds the full router
func (h *Handler) Routes() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(h.logger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/health", h.health)

	router.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/login/", h.login)
		r.Post("/signup/", h.signup)
		r.Post("/logout/", h.logout)

		// Annotation works anonymously too; known-keyword filtering
		// and history only apply to logged-in users.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(h.authService, h.logger, false))
			r.Post("/get_keywords/", h.getKeywords)
		})

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(h.authService, h.logger, true))

			r.Post("/new_keyword/", h.newKeyword)
			r.Post("/add_known_word_to_passage/", h.addKnownWord)
			r.Post("/save_passage/", h.savePassage)
			r.Get("/get_all_saved_passages/", h.savedPassages)
			r.Post("/delete_saved_passage/", h.deletePassage)
			r.Get("/profile/", h.getProfile)
			r.Put("/profile/", h.updateProfile)
			r.Post("/clear_user_keyword_history/", h.clearKeywordHistory)
		})
	})

	return router
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decode reads and validates a JSON request body
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.fail(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		h.fail(w, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

func validationMessage(err error) string {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		field := errs[0]
		switch field.Tag() {
		case "required":
			return field.Field() + " is required"
		case "email":
			return "please enter a valid email address"
		case "min":
			return field.Field() + " is too short"
		}
	}
	return "invalid request"
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *Handler) fail(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]any{
		"success": false,
		"message": message,
	})
}

func (h *Handler) serverError(w http.ResponseWriter, err error) {
	h.logger.Error("Internal error", zap.Error(err))
	h.fail(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
}
