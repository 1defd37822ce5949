package constants

// Messages d'erreur HTTP courants
const (
	ErrMethodNotAllowed  = "Méthode non autorisée"
	ErrServerError       = "Erreur serveur"
	ErrInvalidData       = "Données invalides"
	ErrInvalidJSONBody   = "JSON invalide"
	ErrNotAuthenticated  = "Utilisateur non authentifié"
	ErrNotLoggedIn       = "Utilisateur non connecté"
	ErrInvalidID         = "ID invalide"
	ErrUserNotFound      = "Utilisateur non trouvé"
	ErrWrongPassword     = "Mot de passe incorrect"
	ErrEmailTaken        = "Email déjà enregistré"
	ErrRecipeNotFound    = "Recette non trouvée"
	ErrCommentNotFound   = "Commentaire non trouvé"
	ErrRequestNotFound   = "Demande non trouvée"
	ErrOwnerOnly         = "Action réservée à l'auteur ou administrateur"
	ErrAdminOnly         = "Action réservée aux administrateurs"
	ErrContentTypeJSON   = "Content-Type doit être application/json"
	ErrContentTypeForm   = "Content-Type doit être application/x-www-form-urlencoded"
	ErrRouteNotFound     = "Route non trouvée"
)

// En-têtes HTTP
const (
	HeaderContentType     = "Content-Type"
	HeaderApplicationJSON = "application/json"
	HeaderFormURLEncoded  = "application/x-www-form-urlencoded"
)
