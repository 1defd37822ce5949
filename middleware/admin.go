package middleware

import (
	"log"
	"net/http"

	"recettes-backend/constants"
	"recettes-backend/models"
	"recettes-backend/utils"
)

// RequireAdmin vérifie que l'appelant est administrateur. Doit être chaîné
// après Auth : le rôle est lu depuis l'instantané de session.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := GetUserFromContext(r.Context())
		if user == nil {
			utils.RespondError(w, http.StatusUnauthorized, constants.ErrNotAuthenticated)
			return
		}

		if user.Role != models.RoleAdmin {
			log.Printf("⚠️  Accès admin refusé pour: %s (role=%s)", user.Email, user.Role)
			utils.RespondError(w, http.StatusForbidden, constants.ErrAdminOnly)
			return
		}

		next.ServeHTTP(w, r)
	})
}
