package models

import "encoding/json"

// TimeLayout est le format des horodatages persistés (createdAt, updatedAt).
const TimeLayout = "2006-01-02 15:04:05"

// Author est la copie par valeur de l'identité de l'auteur, embarquée dans
// une recette ou un commentaire à la création. Elle est volontairement
// immuable : un changement de rôle ultérieur ne modifie pas les recettes
// déjà publiées.
type Author struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Prenom string `json:"prenom"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// UnmarshalJSON accepte la forme historique où Author était une simple
// chaîne (le nom de l'auteur) et la normalise en structure canonique.
func (a *Author) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*a = Author{ID: "unknown", Name: name, Role: "unknown"}
		return nil
	}

	type authorAlias Author
	var tmp authorAlias
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*a = Author(tmp)
	if a.ID == "" {
		a.ID = "unknown"
	}
	return nil
}

// Ingredient représente un ingrédient d'une recette
type Ingredient struct {
	Quantity string `json:"quantity"`
	Name     string `json:"name"`
}

// Recipe représente une recette persistée dans recipe.json
type Recipe struct {
	ID            int          `json:"id"`
	Name          string       `json:"name"`
	NameFR        string       `json:"nameFR"`
	Author        Author       `json:"Author"`
	Ingredients   []Ingredient `json:"ingredients"`
	IngredientsFR []Ingredient `json:"ingredientsFR"`
	Steps         []string     `json:"steps"`
	StepsFR       []string     `json:"stepsFR"`
	ImageURL      string       `json:"imageURL,omitempty"`
	CreatedAt     string       `json:"createdAt"`
	UpdatedAt     string       `json:"updatedAt"`
	Likes         int          `json:"likes"`
	LikedBy       []string     `json:"likedBy"`
}

// RecipeInput représente le corps JSON de création d'une recette
type RecipeInput struct {
	Name          string       `json:"name"`
	NameFR        string       `json:"nameFR"`
	Ingredients   []Ingredient `json:"ingredients"`
	IngredientsFR []Ingredient `json:"ingredientsFR"`
	Steps         []string     `json:"steps"`
	StepsFR       []string     `json:"stepsFR"`
	ImageURL      string       `json:"imageURL"`
}

// RecipePatch représente le corps JSON de mise à jour partielle d'une
// recette. Les pointeurs nil distinguent "champ absent" de "champ vide".
// Test=true demande une simple vérification d'autorisation, sans écriture.
type RecipePatch struct {
	Name          *string       `json:"name"`
	NameFR        *string       `json:"nameFR"`
	Ingredients   *[]Ingredient `json:"ingredients"`
	IngredientsFR *[]Ingredient `json:"ingredientsFR"`
	Steps         *[]string     `json:"steps"`
	StepsFR       *[]string     `json:"stepsFR"`
	ImageURL      *string       `json:"imageURL"`
	Test          bool          `json:"test"`
}

// HasUpdates indique si le patch contient au moins un champ modifiable.
func (p *RecipePatch) HasUpdates() bool {
	return p.Name != nil || p.NameFR != nil || p.Ingredients != nil ||
		p.IngredientsFR != nil || p.Steps != nil || p.StepsFR != nil ||
		p.ImageURL != nil
}

// LikeRequest représente le corps JSON de POST /like
type LikeRequest struct {
	RecipeID int    `json:"recipeId"`
	Action   string `json:"action"`
}

// LikeResponse représente l'état des likes après un like/unlike réussi
type LikeResponse struct {
	Likes       int  `json:"likes"`
	LikedByUser bool `json:"likedByUser"`
}
