package models

// Comment représente un commentaire persisté dans comments.json
type Comment struct {
	ID        int    `json:"id"`
	Message   string `json:"message"`
	RecipeID  int    `json:"recipeId"`
	Author    Author `json:"Author"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// CommentInput représente le corps JSON de création d'un commentaire
type CommentInput struct {
	Message  string `json:"message"`
	RecipeID int    `json:"recipeId"`
}

// CommentPatch représente le corps JSON de mise à jour d'un commentaire.
// Seul le message est modifiable.
type CommentPatch struct {
	Message *string `json:"message"`
}
