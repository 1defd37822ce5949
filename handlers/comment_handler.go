package handlers

import (
	"net/http"
	"strconv"

	"recettes-backend/constants"
	"recettes-backend/database"
	"recettes-backend/middleware"
	"recettes-backend/models"
	"recettes-backend/policy"
	"recettes-backend/utils"
)

// CommentHandler gère les requêtes sur les commentaires
type CommentHandler struct {
	commentRepo *database.CommentRepository
}

// NewCommentHandler crée une nouvelle instance de CommentHandler
func NewCommentHandler(commentRepo *database.CommentRepository) *CommentHandler {
	return &CommentHandler{commentRepo: commentRepo}
}

// GetComments retourne les commentaires, filtrés par recette si le
// paramètre recipeId est fourni
func (h *CommentHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	var recipeID *int
	if raw := r.URL.Query().Get("recipeId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondError(w, http.StatusBadRequest, constants.ErrInvalidID)
			return
		}
		recipeID = &id
	}

	utils.RespondJSON(w, http.StatusOK, h.commentRepo.List(recipeID))
}

// AddComment crée un commentaire. Réservé aux chefs, cuisiniers et
// administrateurs.
func (h *CommentHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		utils.RespondError(w, http.StatusUnauthorized, constants.ErrNotAuthenticated)
		return
	}

	if !policy.CanAddComment(user.Role) {
		utils.RespondError(w, http.StatusForbidden, "Seuls les administrateurs, les cuisiniers ou chefs peuvent commenter une recette")
		return
	}

	var input models.CommentInput
	if !DecodeJSONBody(w, r, &input) {
		return
	}

	comment, err := h.commentRepo.Add(user.AuthorSnapshot(), input.RecipeID, input.Message)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusCreated, comment)
}

// UpdateComment modifie le message d'un commentaire (auteur ou admin)
func (h *CommentHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		utils.RespondError(w, http.StatusUnauthorized, constants.ErrNotAuthenticated)
		return
	}

	id, ok := ParseIntVar(w, r, "id")
	if !ok {
		return
	}

	var patch models.CommentPatch
	if !DecodeJSONBody(w, r, &patch) {
		return
	}

	comment, err := h.commentRepo.Update(id, user.ID, user.Role, &patch)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, comment)
}

// DeleteComment supprime un commentaire (auteur ou admin)
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		utils.RespondError(w, http.StatusUnauthorized, constants.ErrNotAuthenticated)
		return
	}

	id, ok := ParseIntVar(w, r, "id")
	if !ok {
		return
	}

	if err := h.commentRepo.Delete(id, user.ID, user.Role); err != nil {
		utils.RespondAppError(w, err)
		return
	}

	utils.RespondMessage(w, http.StatusOK, "Commentaire supprimé avec succès")
}
