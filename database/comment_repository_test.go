package database

import (
	"path/filepath"
	"testing"

	"recettes-backend/apperrors"
	"recettes-backend/models"
)

func newTestCommentRepos(t *testing.T) (*CommentRepository, *RecipeRepository) {
	t.Helper()
	dir := t.TempDir()
	recipeRepo := NewRecipeRepository(NewStore(filepath.Join(dir, "recipe.json")))
	commentRepo := NewCommentRepository(NewStore(filepath.Join(dir, "comments.json")), recipeRepo)
	return commentRepo, recipeRepo
}

func TestCommentAdd(t *testing.T) {
	commentRepo, recipeRepo := newTestCommentRepos(t)
	author := testAuthor()
	recipe, err := recipeRepo.Add(author, testRecipeInput("Crêpes"))
	if err != nil {
		t.Fatal(err)
	}

	comment, err := commentRepo.Add(author, recipe.ID, "Délicieux !")
	if err != nil {
		t.Fatalf("Add() erreur = %v", err)
	}
	if comment.ID != 1 {
		t.Errorf("ID = %d, attendu 1", comment.ID)
	}
	if comment.RecipeID != recipe.ID {
		t.Errorf("RecipeID = %d", comment.RecipeID)
	}
	if comment.Author.ID != author.ID {
		t.Errorf("Author.ID = %v", comment.Author.ID)
	}
}

func TestCommentAdd_validation(t *testing.T) {
	commentRepo, recipeRepo := newTestCommentRepos(t)
	author := testAuthor()
	recipe, err := recipeRepo.Add(author, testRecipeInput("Crêpes"))
	if err != nil {
		t.Fatal(err)
	}

	t.Run("message vide", func(t *testing.T) {
		_, err := commentRepo.Add(author, recipe.ID, "")
		if !apperrors.IsKind(err, apperrors.KindValidation) {
			t.Errorf("erreur = %v, attendu une erreur de validation", err)
		}
	})

	t.Run("recette inexistante", func(t *testing.T) {
		_, err := commentRepo.Add(author, 999, "Délicieux !")
		if !apperrors.IsKind(err, apperrors.KindValidation) {
			t.Errorf("erreur = %v, attendu une erreur de validation", err)
		}
	})
}

func TestCommentList_filtreRecette(t *testing.T) {
	commentRepo, recipeRepo := newTestCommentRepos(t)
	author := testAuthor()
	first, err := recipeRepo.Add(author, testRecipeInput("Une"))
	if err != nil {
		t.Fatal(err)
	}
	second, err := recipeRepo.Add(author, testRecipeInput("Deux"))
	if err != nil {
		t.Fatal(err)
	}

	for _, recipeID := range []int{first.ID, first.ID, second.ID} {
		if _, err := commentRepo.Add(author, recipeID, "Commentaire"); err != nil {
			t.Fatal(err)
		}
	}

	if got := len(commentRepo.List(nil)); got != 3 {
		t.Errorf("List(nil) = %d commentaires, attendu 3", got)
	}
	if got := len(commentRepo.List(&first.ID)); got != 2 {
		t.Errorf("List(recette 1) = %d commentaires, attendu 2", got)
	}
}

func TestCommentUpdate(t *testing.T) {
	commentRepo, recipeRepo := newTestCommentRepos(t)
	author := testAuthor()
	recipe, err := recipeRepo.Add(author, testRecipeInput("Crêpes"))
	if err != nil {
		t.Fatal(err)
	}
	comment, err := commentRepo.Add(author, recipe.ID, "Délicieux !")
	if err != nil {
		t.Fatal(err)
	}

	t.Run("commentaire inconnu", func(t *testing.T) {
		_, err := commentRepo.Update(999, author.ID, author.Role, &models.CommentPatch{})
		if !apperrors.IsKind(err, apperrors.KindNotFound) {
			t.Errorf("erreur = %v, attendu introuvable", err)
		}
	})

	t.Run("non propriétaire", func(t *testing.T) {
		msg := "Modifié"
		_, err := commentRepo.Update(comment.ID, "autre-id", models.RoleChef, &models.CommentPatch{Message: &msg})
		if !apperrors.IsKind(err, apperrors.KindForbidden) {
			t.Errorf("erreur = %v, attendu interdit", err)
		}
	})

	t.Run("patch vide sans écriture", func(t *testing.T) {
		got, err := commentRepo.Update(comment.ID, author.ID, author.Role, &models.CommentPatch{})
		if err != nil {
			t.Fatalf("Update() erreur = %v", err)
		}
		if got.Message != "Délicieux !" || got.UpdatedAt != "" {
			t.Errorf("commentaire = %+v, un patch vide ne doit rien modifier", got)
		}
	})

	t.Run("message modifié", func(t *testing.T) {
		msg := "Encore meilleur le lendemain"
		got, err := commentRepo.Update(comment.ID, author.ID, author.Role, &models.CommentPatch{Message: &msg})
		if err != nil {
			t.Fatalf("Update() erreur = %v", err)
		}
		if got.Message != msg {
			t.Errorf("Message = %v", got.Message)
		}
		if got.UpdatedAt == "" {
			t.Error("updatedAt devrait être renseigné après modification")
		}
	})

	t.Run("administrateur non propriétaire", func(t *testing.T) {
		msg := "Modération"
		if _, err := commentRepo.Update(comment.ID, "admin-id", models.RoleAdmin, &models.CommentPatch{Message: &msg}); err != nil {
			t.Errorf("Update() par un admin erreur = %v", err)
		}
	})
}

func TestCommentDelete(t *testing.T) {
	commentRepo, recipeRepo := newTestCommentRepos(t)
	author := testAuthor()
	recipe, err := recipeRepo.Add(author, testRecipeInput("Crêpes"))
	if err != nil {
		t.Fatal(err)
	}
	comment, err := commentRepo.Add(author, recipe.ID, "Délicieux !")
	if err != nil {
		t.Fatal(err)
	}

	if err := commentRepo.Delete(999, author.ID, author.Role); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Errorf("erreur = %v, attendu introuvable", err)
	}
	if err := commentRepo.Delete(comment.ID, "autre-id", models.RoleChef); !apperrors.IsKind(err, apperrors.KindForbidden) {
		t.Errorf("erreur = %v, attendu interdit", err)
	}
	if err := commentRepo.Delete(comment.ID, author.ID, author.Role); err != nil {
		t.Fatalf("Delete() erreur = %v", err)
	}
	if got := len(commentRepo.List(nil)); got != 0 {
		t.Errorf("List() = %d commentaires après suppression, attendu 0", got)
	}
}
