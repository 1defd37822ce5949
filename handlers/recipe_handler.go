package handlers

import (
	"log"
	"net/http"

	"recettes-backend/constants"
	"recettes-backend/database"
	"recettes-backend/middleware"
	"recettes-backend/models"
	"recettes-backend/policy"
	"recettes-backend/utils"
)

// RecipeHandler gère les requêtes sur les recettes
type RecipeHandler struct {
	recipeRepo *database.RecipeRepository
}

// NewRecipeHandler crée une nouvelle instance de RecipeHandler
func NewRecipeHandler(recipeRepo *database.RecipeRepository) *RecipeHandler {
	return &RecipeHandler{recipeRepo: recipeRepo}
}

// GetRecipes retourne les recettes dans l'ordre du fichier (limit=10 par défaut)
func (h *RecipeHandler) GetRecipes(w http.ResponseWriter, r *http.Request) {
	recipes := h.recipeRepo.List(ParseLimit(r))
	utils.RespondJSON(w, http.StatusOK, recipes)
}

// SearchRecipes recherche par sous-chaîne insensible à la casse sur name et
// nameFR ; une requête vide retourne la liste non filtrée
func (h *RecipeHandler) SearchRecipes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	recipes := h.recipeRepo.Search(query, ParseLimit(r))
	utils.RespondJSON(w, http.StatusOK, recipes)
}

// AddRecipe crée une recette. Réservé aux chefs et administrateurs.
func (h *RecipeHandler) AddRecipe(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		utils.RespondError(w, http.StatusUnauthorized, constants.ErrNotAuthenticated)
		return
	}

	if !policy.CanAddRecipe(user.Role) {
		utils.RespondError(w, http.StatusForbidden, "Seuls les administrateurs ou chefs peuvent ajouter une recette")
		return
	}

	var input models.RecipeInput
	if !DecodeJSONBody(w, r, &input) {
		return
	}

	recipe, err := h.recipeRepo.Add(user.AuthorSnapshot(), &input)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}

	log.Printf("✓ Nouvelle recette ID=%d par %s", recipe.ID, user.Email)
	utils.RespondJSON(w, http.StatusCreated, recipe)
}

// UpdateRecipe applique un patch partiel à une recette (auteur ou admin).
// Un corps {"test": true} vérifie seulement l'autorisation, sans mutation.
func (h *RecipeHandler) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		utils.RespondError(w, http.StatusUnauthorized, constants.ErrNotAuthenticated)
		return
	}

	id, ok := ParseIntVar(w, r, "id")
	if !ok {
		return
	}

	var patch models.RecipePatch
	if !DecodeJSONBody(w, r, &patch) {
		return
	}

	recipe, err := h.recipeRepo.Update(id, user.ID, user.Role, &patch)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}

	if patch.Test {
		utils.RespondMessage(w, http.StatusOK, "Test d'édition autorisé")
		return
	}

	utils.RespondJSON(w, http.StatusOK, recipe)
}

// DeleteRecipe supprime une recette (auteur ou admin)
func (h *RecipeHandler) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		utils.RespondError(w, http.StatusUnauthorized, constants.ErrNotAuthenticated)
		return
	}

	id, ok := ParseIntVar(w, r, "id")
	if !ok {
		return
	}

	if err := h.recipeRepo.Delete(id, user.ID, user.Role); err != nil {
		utils.RespondAppError(w, err)
		return
	}

	log.Printf("✓ Recette ID=%d supprimée par %s", id, user.Email)
	utils.RespondMessage(w, http.StatusOK, "Recette supprimée avec succès")
}

// Like applique une transition like/unlike stricte sur une recette
func (h *RecipeHandler) Like(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		utils.RespondError(w, http.StatusUnauthorized, constants.ErrNotAuthenticated)
		return
	}

	var req models.LikeRequest
	if !DecodeJSONBody(w, r, &req) {
		return
	}

	if req.RecipeID <= 0 {
		utils.RespondError(w, http.StatusBadRequest, "recipeId et action (like/unlike) sont requis")
		return
	}

	result, err := h.recipeRepo.ToggleLike(req.RecipeID, user.ID, req.Action)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, result)
}
