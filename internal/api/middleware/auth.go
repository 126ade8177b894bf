package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/WJL-TicketService/internal/api/handlers"
	"github.com/m04kA/WJL-TicketService/internal/domain"
	"github.com/m04kA/WJL-TicketService/internal/service/auth"
	"github.com/m04kA/WJL-TicketService/internal/session"
)

const (
	msgMissingToken   = "se requiere iniciar sesión"
	msgInvalidToken   = "token inválido"
	msgSessionExpired = "la sesión expiró por inactividad"
	msgForbidden      = "no tiene permiso para esta acción"
)

// Auth проверяет Bearer токен, продлевает сессию и кладёт её в контекст запроса
func Auth(authenticator Authenticator, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			sess, err := authenticator.Authenticate(r.Context(), token)
			if err != nil {
				switch {
				case errors.Is(err, auth.ErrSessionExpired):
					handlers.RespondUnauthorized(w, msgSessionExpired)
				case errors.Is(err, auth.ErrInvalidToken):
					handlers.RespondUnauthorized(w, msgInvalidToken)
				default:
					logger.Error("%s %s - Failed to authenticate: %v", r.Method, r.URL.Path, err)
					handlers.RespondInternalError(w)
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(session.WithContext(r.Context(), sess)))
		})
	}
}

// RequirePermission пропускает запрос, только если у пользователя сессии есть право perm
func RequirePermission(perm domain.Permission) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := session.FromContext(r.Context())
			if sess == nil {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}
			if !sess.Can(perm) {
				handlers.RespondForbidden(w, msgForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// MethodPermissions право по HTTP методу: чтение для GET, удаление для DELETE, запись для остальных
func MethodPermissions() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			perm := domain.PermissionWrite
			switch r.Method {
			case http.MethodGet, http.MethodHead:
				perm = domain.PermissionRead
			case http.MethodDelete:
				perm = domain.PermissionDelete
			}
			RequirePermission(perm)(next).ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
