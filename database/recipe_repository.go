package database

import (
	"log"
	"strings"
	"time"

	"recettes-backend/apperrors"
	"recettes-backend/constants"
	"recettes-backend/models"
	"recettes-backend/policy"
)

// DefaultListLimit est le nombre de recettes retournées sans paramètre limit
const DefaultListLimit = 10

// RecipeRepository gère les opérations sur recipe.json
type RecipeRepository struct {
	store *Store
}

// NewRecipeRepository crée une nouvelle instance de RecipeRepository
func NewRecipeRepository(store *Store) *RecipeRepository {
	return &RecipeRepository{store: store}
}

// loadAll relit toutes les recettes et normalise les formes historiques :
// entrées sans id écartées, likes et likedBy réinitialisés si absents,
// likedBy converti en identifiants chaîne.
func (r *RecipeRepository) loadAll() []models.Recipe {
	raw := []models.Recipe{}
	r.store.Load(&raw)

	recipes := make([]models.Recipe, 0, len(raw))
	for _, recipe := range raw {
		if recipe.ID <= 0 {
			log.Printf("⚠️ Recette sans ID valide ignorée dans %s", r.store.Path())
			continue
		}
		if recipe.Likes < 0 {
			recipe.Likes = 0
		}
		if recipe.LikedBy == nil {
			recipe.LikedBy = []string{}
		}
		recipes = append(recipes, recipe)
	}
	return recipes
}

// clampLimit applique la limite par défaut
func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return limit
}

// List retourne jusqu'à limit recettes dans l'ordre du fichier
// (ordre d'insertion, aucun tri n'est défini)
func (r *RecipeRepository) List(limit int) []models.Recipe {
	recipes := r.loadAll()
	limit = clampLimit(limit)
	if len(recipes) > limit {
		recipes = recipes[:limit]
	}
	return recipes
}

// Search filtre les recettes dont name ou nameFR contient la requête
// (insensible à la casse). Une requête vide retourne la liste non filtrée,
// toujours limitée.
func (r *RecipeRepository) Search(query string, limit int) []models.Recipe {
	recipes := r.loadAll()
	query = strings.TrimSpace(query)

	if query != "" {
		lowered := strings.ToLower(query)
		filtered := make([]models.Recipe, 0, len(recipes))
		for _, recipe := range recipes {
			if strings.Contains(strings.ToLower(recipe.Name), lowered) ||
				strings.Contains(strings.ToLower(recipe.NameFR), lowered) {
				filtered = append(filtered, recipe)
			}
		}
		recipes = filtered
	}

	limit = clampLimit(limit)
	if len(recipes) > limit {
		recipes = recipes[:limit]
	}
	return recipes
}

// FindByID recherche une recette par ID. Retourne nil si absente.
func (r *RecipeRepository) FindByID(id int) *models.Recipe {
	for _, recipe := range r.loadAll() {
		if recipe.ID == id {
			rec := recipe
			return &rec
		}
	}
	return nil
}

// Add crée une recette avec l'instantané de l'auteur. L'ID est
// max(ids existants)+1 : tolérant aux trous, jamais réutilisé après une
// suppression.
func (r *RecipeRepository) Add(author models.Author, input *models.RecipeInput) (*models.Recipe, error) {
	if input.Name == "" || input.NameFR == "" ||
		len(input.Ingredients) == 0 || len(input.IngredientsFR) == 0 ||
		len(input.Steps) == 0 || len(input.StepsFR) == 0 {
		return nil, apperrors.Validation("Les champs name, nameFR, ingredients, ingredientsFR, steps et stepsFR sont requis")
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	recipes := r.loadAll()
	newID := 0
	for _, recipe := range recipes {
		if recipe.ID > newID {
			newID = recipe.ID
		}
	}
	newID++

	now := time.Now().Format(models.TimeLayout)
	recipe := models.Recipe{
		ID:            newID,
		Name:          input.Name,
		NameFR:        input.NameFR,
		Author:        author,
		Ingredients:   input.Ingredients,
		IngredientsFR: input.IngredientsFR,
		Steps:         input.Steps,
		StepsFR:       input.StepsFR,
		ImageURL:      input.ImageURL,
		CreatedAt:     now,
		UpdatedAt:     now,
		Likes:         0,
		LikedBy:       []string{},
	}

	recipes = append(recipes, recipe)
	if err := r.store.Save("Add", recipes); err != nil {
		return nil, err
	}

	return &recipe, nil
}

// Update applique un patch partiel à une recette. L'existence est vérifiée
// avant la propriété. Un patch sans champ reconnu retourne la recette
// inchangée sans écriture ; test=true vérifie seulement l'autorisation.
func (r *RecipeRepository) Update(id int, actorID, actorRole string, patch *models.RecipePatch) (*models.Recipe, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	recipes := r.loadAll()
	for i := range recipes {
		if recipes[i].ID != id {
			continue
		}

		if !policy.CanModify(actorID, actorRole, recipes[i].Author.ID) {
			return nil, apperrors.Forbidden(constants.ErrOwnerOnly)
		}

		// Sonde d'autorisation : aucune mutation
		if patch.Test {
			rec := recipes[i]
			return &rec, nil
		}

		if !patch.HasUpdates() {
			rec := recipes[i]
			return &rec, nil
		}

		if patch.Name != nil {
			recipes[i].Name = *patch.Name
		}
		if patch.NameFR != nil {
			recipes[i].NameFR = *patch.NameFR
		}
		if patch.Ingredients != nil {
			recipes[i].Ingredients = *patch.Ingredients
		}
		if patch.IngredientsFR != nil {
			recipes[i].IngredientsFR = *patch.IngredientsFR
		}
		if patch.Steps != nil {
			recipes[i].Steps = *patch.Steps
		}
		if patch.StepsFR != nil {
			recipes[i].StepsFR = *patch.StepsFR
		}
		if patch.ImageURL != nil {
			recipes[i].ImageURL = *patch.ImageURL
		}

		recipes[i].UpdatedAt = time.Now().Format(models.TimeLayout)
		if err := r.store.Save("Update", recipes); err != nil {
			return nil, err
		}

		rec := recipes[i]
		return &rec, nil
	}

	return nil, apperrors.NotFound(constants.ErrRecipeNotFound)
}

// Delete supprime une recette après vérification d'existence puis de
// propriété
func (r *RecipeRepository) Delete(id int, actorID, actorRole string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	recipes := r.loadAll()
	for i := range recipes {
		if recipes[i].ID != id {
			continue
		}

		if !policy.CanModify(actorID, actorRole, recipes[i].Author.ID) {
			return apperrors.Forbidden(constants.ErrOwnerOnly)
		}

		recipes = append(recipes[:i], recipes[i+1:]...)
		return r.store.Save("Delete", recipes)
	}

	return apperrors.NotFound(constants.ErrRecipeNotFound)
}

// ToggleLike applique une transition stricte du couple (recette, utilisateur) :
// like ne passe que de non-aimé à aimé, unlike que de aimé à non-aimé.
// Toute autre combinaison échoue au lieu de réussir silencieusement.
// Invariant maintenu : likes == len(likedBy).
func (r *RecipeRepository) ToggleLike(id int, userID, action string) (*models.LikeResponse, error) {
	if action != "like" && action != "unlike" {
		return nil, apperrors.Validation("recipeId et action (like/unlike) sont requis")
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	recipes := r.loadAll()
	for i := range recipes {
		if recipes[i].ID != id {
			continue
		}

		hasLiked := false
		for _, likedID := range recipes[i].LikedBy {
			if likedID == userID {
				hasLiked = true
				break
			}
		}

		switch {
		case action == "like" && !hasLiked:
			recipes[i].LikedBy = append(recipes[i].LikedBy, userID)
			recipes[i].Likes++
		case action == "unlike" && hasLiked:
			likedBy := make([]string, 0, len(recipes[i].LikedBy))
			for _, likedID := range recipes[i].LikedBy {
				if likedID != userID {
					likedBy = append(likedBy, likedID)
				}
			}
			recipes[i].LikedBy = likedBy
			if recipes[i].Likes > 0 {
				recipes[i].Likes--
			}
		default:
			if action == "like" {
				return nil, apperrors.InvalidState("Action invalide pour l'état actuel: utilisateur a déjà aimé")
			}
			return nil, apperrors.InvalidState("Action invalide pour l'état actuel: utilisateur n'a pas aimé")
		}

		if err := r.store.Save("ToggleLike", recipes); err != nil {
			return nil, err
		}

		return &models.LikeResponse{
			Likes:       recipes[i].Likes,
			LikedByUser: action == "like",
		}, nil
	}

	return nil, apperrors.NotFound(constants.ErrRecipeNotFound)
}
