package middleware

import (
	"context"
	"net/http"

	"recettes-backend/constants"
	"recettes-backend/models"
	"recettes-backend/services"
	"recettes-backend/utils"
)

type contextKey string

// UserContextKey est la clé de contexte portant l'instantané de session
const UserContextKey contextKey = "user"

// SessionCookieName est le nom du cookie de session
const SessionCookieName = "recettes_session"

// Auth résout l'identité de l'appelant depuis le cookie de session : la
// signature du cookie est vérifiée, puis la session est recherchée côté
// serveur. Échec en 401 si le cookie est absent, falsifié ou expiré.
func Auth(sessions *services.SessionStore, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				utils.RespondError(w, http.StatusUnauthorized, constants.ErrNotAuthenticated)
				return
			}

			sessionID, err := utils.ValidateSessionToken(cookie.Value, secret)
			if err != nil {
				utils.RespondError(w, http.StatusUnauthorized, constants.ErrNotAuthenticated)
				return
			}

			user := sessions.Get(sessionID)
			if user == nil {
				utils.RespondError(w, http.StatusUnauthorized, constants.ErrNotAuthenticated)
				return
			}

			ctx := context.WithValue(r.Context(), UserContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserFromContext récupère l'instantané de session mis par Auth
func GetUserFromContext(ctx context.Context) *models.SessionUser {
	user, ok := ctx.Value(UserContextKey).(*models.SessionUser)
	if !ok {
		return nil
	}
	return user
}
