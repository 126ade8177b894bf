package auth

import (
	"errors"
	"net/http"

	"github.com/m04kA/WJL-TicketService/internal/api/handlers"
	"github.com/m04kA/WJL-TicketService/internal/domain"
	authService "github.com/m04kA/WJL-TicketService/internal/service/auth"
	"github.com/m04kA/WJL-TicketService/internal/service/auth/models"
	"github.com/m04kA/WJL-TicketService/internal/session"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgMissingCredentials = "correo y contraseña son obligatorios"
	msgInvalidCredentials = "correo o contraseña incorrectos"
	msgUserInactive       = "el usuario está desactivado"
	msgNoSession          = "se requiere iniciar sesión"
	msgStoreUnavailable   = "servicio no disponible, intente nuevamente"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Login POST /api/v1/auth/login
// Публичный endpoint
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			handlers.RespondBadRequest(w, msgMissingCredentials)

		case errors.Is(err, authService.ErrInvalidCredentials):
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		case errors.Is(err, authService.ErrUserInactive):
			handlers.RespondForbidden(w, msgUserInactive)

		case errors.Is(err, domain.ErrTransport):
			h.logger.Error("POST /auth/login - Store unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)

		default:
			h.logger.Error("POST /auth/login - Failed to log in: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - User logged in: user_id=%d", result.User.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Logout POST /api/v1/auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	if sess == nil {
		handlers.RespondUnauthorized(w, msgNoSession)
		return
	}

	h.service.Logout(r.Context(), sess.ID())
	w.WriteHeader(http.StatusNoContent)
}

// Me GET /api/v1/auth/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	if sess == nil {
		handlers.RespondUnauthorized(w, msgNoSession)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, h.service.Me(sess))
}
