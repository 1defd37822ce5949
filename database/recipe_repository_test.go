package database

import (
	"path/filepath"
	"testing"
	"time"

	"recettes-backend/apperrors"
	"recettes-backend/models"
)

func newTestRecipeRepo(t *testing.T) *RecipeRepository {
	t.Helper()
	return NewRecipeRepository(NewStore(filepath.Join(t.TempDir(), "recipe.json")))
}

func testAuthor() models.Author {
	return models.Author{
		ID:     "auteur-1",
		Name:   "Dupont",
		Prenom: "Alice",
		Email:  "alice@example.com",
		Role:   models.RoleChef,
	}
}

func testRecipeInput(name string) *models.RecipeInput {
	return &models.RecipeInput{
		Name:          name,
		NameFR:        name + " FR",
		Ingredients:   []models.Ingredient{{Quantity: "200g", Name: "flour"}},
		IngredientsFR: []models.Ingredient{{Quantity: "200g", Name: "farine"}},
		Steps:         []string{"Mix everything"},
		StepsFR:       []string{"Tout mélanger"},
	}
}

func TestRecipeAdd(t *testing.T) {
	repo := newTestRecipeRepo(t)

	recipe, err := repo.Add(testAuthor(), testRecipeInput("Crêpes"))
	if err != nil {
		t.Fatalf("Add() erreur = %v", err)
	}
	if recipe.ID != 1 {
		t.Errorf("ID = %d, attendu 1", recipe.ID)
	}
	if recipe.Likes != 0 || len(recipe.LikedBy) != 0 {
		t.Errorf("likes initiaux = %d/%v, attendu 0/vide", recipe.Likes, recipe.LikedBy)
	}
	if recipe.Author.ID != "auteur-1" {
		t.Errorf("Author.ID = %v", recipe.Author.ID)
	}
	if _, err := time.Parse(models.TimeLayout, recipe.CreatedAt); err != nil {
		t.Errorf("CreatedAt au mauvais format: %v", recipe.CreatedAt)
	}
}

func TestRecipeAdd_champsRequis(t *testing.T) {
	repo := newTestRecipeRepo(t)

	input := testRecipeInput("Crêpes")
	input.StepsFR = nil

	_, err := repo.Add(testAuthor(), input)
	if !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Errorf("erreur = %v, attendu une erreur de validation", err)
	}
}

func TestRecipeAdd_idJamaisReutilise(t *testing.T) {
	repo := newTestRecipeRepo(t)
	author := testAuthor()

	if _, err := repo.Add(author, testRecipeInput("Une")); err != nil {
		t.Fatal(err)
	}
	second, err := repo.Add(author, testRecipeInput("Deux"))
	if err != nil {
		t.Fatal(err)
	}
	if second.ID != 2 {
		t.Fatalf("ID = %d, attendu 2", second.ID)
	}

	// Supprimer la première : le prochain ID reste max+1
	if err := repo.Delete(1, author.ID, author.Role); err != nil {
		t.Fatal(err)
	}
	third, err := repo.Add(author, testRecipeInput("Trois"))
	if err != nil {
		t.Fatal(err)
	}
	if third.ID != 3 {
		t.Errorf("ID = %d, attendu 3 (jamais de réutilisation après suppression)", third.ID)
	}
}

func TestRecipeUpdate(t *testing.T) {
	repo := newTestRecipeRepo(t)
	author := testAuthor()
	recipe, err := repo.Add(author, testRecipeInput("Crêpes"))
	if err != nil {
		t.Fatal(err)
	}

	t.Run("recette inconnue", func(t *testing.T) {
		_, err := repo.Update(999, author.ID, author.Role, &models.RecipePatch{})
		if !apperrors.IsKind(err, apperrors.KindNotFound) {
			t.Errorf("erreur = %v, attendu introuvable", err)
		}
	})

	t.Run("non propriétaire", func(t *testing.T) {
		_, err := repo.Update(recipe.ID, "autre-id", models.RoleChef, &models.RecipePatch{})
		if !apperrors.IsKind(err, apperrors.KindForbidden) {
			t.Errorf("erreur = %v, attendu interdit", err)
		}
	})

	t.Run("sonde test sans mutation", func(t *testing.T) {
		got, err := repo.Update(recipe.ID, author.ID, author.Role, &models.RecipePatch{Test: true})
		if err != nil {
			t.Fatalf("Update() erreur = %v", err)
		}
		if got.Name != "Crêpes" {
			t.Errorf("Name = %v, la sonde ne doit rien modifier", got.Name)
		}
	})

	t.Run("patch vide sans écriture", func(t *testing.T) {
		got, err := repo.Update(recipe.ID, author.ID, author.Role, &models.RecipePatch{})
		if err != nil {
			t.Fatalf("Update() erreur = %v", err)
		}
		if got.UpdatedAt != recipe.UpdatedAt {
			t.Error("un patch vide ne doit pas modifier updatedAt")
		}
	})

	t.Run("patch partiel", func(t *testing.T) {
		newName := "Galettes"
		got, err := repo.Update(recipe.ID, author.ID, author.Role, &models.RecipePatch{Name: &newName})
		if err != nil {
			t.Fatalf("Update() erreur = %v", err)
		}
		if got.Name != "Galettes" {
			t.Errorf("Name = %v", got.Name)
		}
		if got.NameFR != recipe.NameFR {
			t.Errorf("NameFR = %v, les champs absents du patch sont conservés", got.NameFR)
		}
	})

	t.Run("administrateur non propriétaire", func(t *testing.T) {
		newName := "Gaufres"
		if _, err := repo.Update(recipe.ID, "admin-id", models.RoleAdmin, &models.RecipePatch{Name: &newName}); err != nil {
			t.Errorf("Update() par un admin erreur = %v", err)
		}
	})
}

func TestRecipeDelete(t *testing.T) {
	repo := newTestRecipeRepo(t)
	author := testAuthor()
	recipe, err := repo.Add(author, testRecipeInput("Crêpes"))
	if err != nil {
		t.Fatal(err)
	}

	if err := repo.Delete(999, author.ID, author.Role); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Errorf("erreur = %v, attendu introuvable", err)
	}
	if err := repo.Delete(recipe.ID, "autre-id", models.RoleChef); !apperrors.IsKind(err, apperrors.KindForbidden) {
		t.Errorf("erreur = %v, attendu interdit", err)
	}
	if err := repo.Delete(recipe.ID, author.ID, author.Role); err != nil {
		t.Fatalf("Delete() erreur = %v", err)
	}
	if repo.FindByID(recipe.ID) != nil {
		t.Error("la recette devrait être supprimée")
	}
}

func TestToggleLike(t *testing.T) {
	repo := newTestRecipeRepo(t)
	author := testAuthor()
	recipe, err := repo.Add(author, testRecipeInput("Crêpes"))
	if err != nil {
		t.Fatal(err)
	}

	t.Run("premier like", func(t *testing.T) {
		resp, err := repo.ToggleLike(recipe.ID, "user-1", "like")
		if err != nil {
			t.Fatalf("ToggleLike() erreur = %v", err)
		}
		if resp.Likes != 1 || !resp.LikedByUser {
			t.Errorf("réponse = %+v, attendu 1 like aimé", resp)
		}
	})

	t.Run("like déjà posé", func(t *testing.T) {
		_, err := repo.ToggleLike(recipe.ID, "user-1", "like")
		if !apperrors.IsKind(err, apperrors.KindInvalidState) {
			t.Errorf("erreur = %v, attendu état invalide", err)
		}
	})

	t.Run("unlike sans like", func(t *testing.T) {
		_, err := repo.ToggleLike(recipe.ID, "user-2", "unlike")
		if !apperrors.IsKind(err, apperrors.KindInvalidState) {
			t.Errorf("erreur = %v, attendu état invalide", err)
		}
	})

	t.Run("unlike après like", func(t *testing.T) {
		resp, err := repo.ToggleLike(recipe.ID, "user-1", "unlike")
		if err != nil {
			t.Fatalf("ToggleLike() erreur = %v", err)
		}
		if resp.Likes != 0 || resp.LikedByUser {
			t.Errorf("réponse = %+v, attendu 0 like non aimé", resp)
		}
	})

	t.Run("invariant likes et likedBy", func(t *testing.T) {
		if _, err := repo.ToggleLike(recipe.ID, "user-1", "like"); err != nil {
			t.Fatal(err)
		}
		if _, err := repo.ToggleLike(recipe.ID, "user-2", "like"); err != nil {
			t.Fatal(err)
		}
		got := repo.FindByID(recipe.ID)
		if got.Likes != len(got.LikedBy) {
			t.Errorf("likes = %d, likedBy = %d, les deux doivent rester égaux", got.Likes, len(got.LikedBy))
		}
	})

	t.Run("action inconnue", func(t *testing.T) {
		_, err := repo.ToggleLike(recipe.ID, "user-1", "dislike")
		if !apperrors.IsKind(err, apperrors.KindValidation) {
			t.Errorf("erreur = %v, attendu une erreur de validation", err)
		}
	})

	t.Run("recette inconnue", func(t *testing.T) {
		_, err := repo.ToggleLike(999, "user-1", "like")
		if !apperrors.IsKind(err, apperrors.KindNotFound) {
			t.Errorf("erreur = %v, attendu introuvable", err)
		}
	})
}

func TestRecipeSearch(t *testing.T) {
	repo := newTestRecipeRepo(t)
	author := testAuthor()
	for _, name := range []string{"Pancakes", "Crêpes", "Chocolate cake"} {
		if _, err := repo.Add(author, testRecipeInput(name)); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name  string
		query string
		limit int
		want  int
	}{
		{"insensible à la casse", "CAKE", 0, 2},
		{"sur nameFR", "Crêpes FR", 0, 1},
		{"requête vide retourne tout", "", 0, 3},
		{"aucun résultat", "pizza", 0, 0},
		{"limite appliquée", "", 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := repo.Search(tt.query, tt.limit)
			if len(got) != tt.want {
				t.Errorf("Search(%q, %d) = %d résultats, attendu %d", tt.query, tt.limit, len(got), tt.want)
			}
		})
	}
}

func TestRecipeList_limite(t *testing.T) {
	repo := newTestRecipeRepo(t)
	author := testAuthor()
	for i := 0; i < DefaultListLimit+2; i++ {
		if _, err := repo.Add(author, testRecipeInput("Recette")); err != nil {
			t.Fatal(err)
		}
	}

	if got := len(repo.List(0)); got != DefaultListLimit {
		t.Errorf("List(0) = %d recettes, attendu la limite par défaut %d", got, DefaultListLimit)
	}
	if got := len(repo.List(3)); got != 3 {
		t.Errorf("List(3) = %d recettes, attendu 3", got)
	}
}
