package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/muhammadheryan/variant-catalog/application/session"
	"github.com/muhammadheryan/variant-catalog/constant"
	utilsContext "github.com/muhammadheryan/variant-catalog/utils/context"
	"github.com/muhammadheryan/variant-catalog/utils/errors"
)

// AuthMiddleware returns a middleware that validates browsing-session tokens
// using SessionApp. Only routes that read or write session state need a token.
func AuthMiddleware(sessionApp session.SessionApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !requiresSession(r) {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			sessionID, err := sessionApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrSessionExpired))
				return
			}

			ctx := utilsContext.WithSessionID(r.Context(), sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// requiresSession defines which endpoints need a browsing session
func requiresSession(r *http.Request) bool {
	path := r.URL.Path
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") {
		return false
	}
	if path == "/v1/session" {
		return r.Method == http.MethodDelete
	}
	return strings.HasPrefix(path, "/v1/product/") &&
		(strings.HasSuffix(path, "/selection") || strings.Contains(path, "/selection/"))
}
