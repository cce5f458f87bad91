package admin_auth

import (
	"errors"
	"net/http"

	"github.com/minari-lab/salon-booking-service/internal/api/handlers"
	"github.com/minari-lab/salon-booking-service/internal/auth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCredentials = "неверный логин или пароль"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// StatusResponse ответ об успехе операции
type StatusResponse struct {
	Status string `json:"status"`
}

type Handler struct {
	sessions SessionManager
	logger   Logger
}

func NewHandler(sessions SessionManager, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
	}
}

// HandleLogin POST /api/v1/admin/login
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.sessions.Authenticate(req.Login, req.Password); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.logger.Warn("POST /admin/login - Invalid credentials: login=%s", req.Login)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)
			return
		}
		h.logger.Error("POST /admin/login - Authentication error: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	if err := h.sessions.SetSession(w, r); err != nil {
		h.logger.Error("POST /admin/login - Failed to set session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/login - Admin logged in: login=%s", req.Login)
	handlers.RespondJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// HandleLogout POST /api/v1/admin/logout
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.sessions.ClearSession(w)
	h.logger.Info("POST /admin/logout - Admin logged out")
	handlers.RespondJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}
