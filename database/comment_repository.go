package database

import (
	"time"

	"recettes-backend/apperrors"
	"recettes-backend/constants"
	"recettes-backend/models"
	"recettes-backend/policy"
)

// CommentRepository gère les opérations sur comments.json.
// Il dépend du RecipeRepository pour valider l'existence de la recette
// commentée.
type CommentRepository struct {
	store      *Store
	recipeRepo *RecipeRepository
}

// NewCommentRepository crée une nouvelle instance de CommentRepository
func NewCommentRepository(store *Store, recipeRepo *RecipeRepository) *CommentRepository {
	return &CommentRepository{store: store, recipeRepo: recipeRepo}
}

// loadAll relit tous les commentaires depuis le fichier JSON
func (r *CommentRepository) loadAll() []models.Comment {
	comments := []models.Comment{}
	r.store.Load(&comments)
	return comments
}

// List retourne les commentaires, filtrés par recette si recipeID est fourni
func (r *CommentRepository) List(recipeID *int) []models.Comment {
	comments := r.loadAll()
	if recipeID == nil {
		return comments
	}

	filtered := make([]models.Comment, 0, len(comments))
	for _, comment := range comments {
		if comment.RecipeID == *recipeID {
			filtered = append(filtered, comment)
		}
	}
	return filtered
}

// Add crée un commentaire avec l'instantané de l'auteur. La recette
// référencée doit exister.
func (r *CommentRepository) Add(author models.Author, recipeID int, message string) (*models.Comment, error) {
	if message == "" || recipeID <= 0 {
		return nil, apperrors.Validation("Les champs message et recipeId sont requis")
	}

	if r.recipeRepo.FindByID(recipeID) == nil {
		return nil, apperrors.Validation(constants.ErrRecipeNotFound)
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	comments := r.loadAll()
	newID := 0
	for _, comment := range comments {
		if comment.ID > newID {
			newID = comment.ID
		}
	}
	newID++

	comment := models.Comment{
		ID:        newID,
		Message:   message,
		RecipeID:  recipeID,
		Author:    author,
		CreatedAt: time.Now().Format(models.TimeLayout),
	}

	comments = append(comments, comment)
	if err := r.store.Save("Add", comments); err != nil {
		return nil, err
	}

	return &comment, nil
}

// Update modifie le message d'un commentaire. L'existence est vérifiée
// avant la propriété ; un patch sans message retourne le commentaire
// inchangé sans écriture.
func (r *CommentRepository) Update(id int, actorID, actorRole string, patch *models.CommentPatch) (*models.Comment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	comments := r.loadAll()
	for i := range comments {
		if comments[i].ID != id {
			continue
		}

		if !policy.CanModify(actorID, actorRole, comments[i].Author.ID) {
			return nil, apperrors.Forbidden(constants.ErrOwnerOnly)
		}

		if patch.Message == nil {
			c := comments[i]
			return &c, nil
		}

		comments[i].Message = *patch.Message
		comments[i].UpdatedAt = time.Now().Format(models.TimeLayout)
		if err := r.store.Save("Update", comments); err != nil {
			return nil, err
		}

		c := comments[i]
		return &c, nil
	}

	return nil, apperrors.NotFound(constants.ErrCommentNotFound)
}

// Delete supprime un commentaire après vérification d'existence puis de
// propriété
func (r *CommentRepository) Delete(id int, actorID, actorRole string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	comments := r.loadAll()
	for i := range comments {
		if comments[i].ID != id {
			continue
		}

		if !policy.CanModify(actorID, actorRole, comments[i].Author.ID) {
			return apperrors.Forbidden(constants.ErrOwnerOnly)
		}

		comments = append(comments[:i], comments[i+1:]...)
		return r.store.Save("Delete", comments)
	}

	return apperrors.NotFound(constants.ErrCommentNotFound)
}
