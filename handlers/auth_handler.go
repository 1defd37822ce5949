package handlers

import (
	"log"
	"net/http"
	"time"

	"recettes-backend/constants"
	"recettes-backend/database"
	"recettes-backend/middleware"
	"recettes-backend/services"
	"recettes-backend/utils"
)

// AuthHandler gère l'inscription, la connexion et la session courante
type AuthHandler struct {
	userRepo      *database.UserRepository
	sessions      *services.SessionStore
	sessionSecret string
}

// NewAuthHandler crée une nouvelle instance de AuthHandler
func NewAuthHandler(userRepo *database.UserRepository, sessions *services.SessionStore, sessionSecret string) *AuthHandler {
	return &AuthHandler{
		userRepo:      userRepo,
		sessions:      sessions,
		sessionSecret: sessionSecret,
	}
}

// Register gère l'inscription d'un nouvel utilisateur.
// Le rôle est toujours utilisateur à la création.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if !RequireFormContentType(w, r) {
		return
	}

	if err := r.ParseForm(); err != nil {
		utils.RespondError(w, http.StatusBadRequest, constants.ErrInvalidData)
		return
	}

	name := r.PostFormValue("name")
	prenom := r.PostFormValue("prenom")
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	user, err := h.userRepo.Register(name, prenom, email, password)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}

	log.Printf("✓ Nouvel utilisateur inscrit: %s (ID: %s)", user.Email, user.ID)
	utils.RespondMessage(w, http.StatusCreated, "Utilisateur enregistré avec succès")
}

// Login gère la connexion : vérifie les identifiants, ouvre une session
// côté serveur et pose le cookie signé.
// Email inconnu -> 404, mot de passe erroné -> 401.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !RequireFormContentType(w, r) {
		return
	}

	if err := r.ParseForm(); err != nil {
		utils.RespondError(w, http.StatusBadRequest, constants.ErrInvalidData)
		return
	}

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	if email == "" || password == "" {
		utils.RespondError(w, http.StatusBadRequest, "Email et mot de passe requis")
		return
	}

	user, err := h.userRepo.Authenticate(email, password)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}

	snapshot := user.Snapshot()
	sessionID := h.sessions.Create(snapshot)

	token, err := utils.GenerateSessionToken(sessionID, h.sessionSecret, h.sessions.TTL())
	if err != nil {
		log.Printf("❌ Erreur lors de la signature du cookie de session: %v", err)
		h.sessions.Destroy(sessionID)
		utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessions.TTL() / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	log.Printf("✓ Connexion réussie pour: %s", user.Email)
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Connexion réussie",
		"user":    snapshot,
	})
}

// Logout détruit la session côté serveur et fait expirer le cookie
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil {
		if sessionID, err := utils.ValidateSessionToken(cookie.Value, h.sessionSecret); err == nil {
			h.sessions.Destroy(sessionID)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.RespondMessage(w, http.StatusOK, "Déconnexion réussie")
}

// Me retourne l'instantané de session de l'utilisateur connecté (GET /user)
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		utils.RespondError(w, http.StatusUnauthorized, constants.ErrNotLoggedIn)
		return
	}

	utils.RespondJSON(w, http.StatusOK, user)
}
