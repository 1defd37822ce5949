package database

import (
	"path/filepath"
	"testing"

	"recettes-backend/apperrors"
	"recettes-backend/models"
)

func newTestUserRepo(t *testing.T) *UserRepository {
	t.Helper()
	return NewUserRepository(NewStore(filepath.Join(t.TempDir(), "users.json")))
}

func TestRegister(t *testing.T) {
	repo := newTestUserRepo(t)

	user, err := repo.Register("Dupont", "Alice", "alice@example.com", "password123")
	if err != nil {
		t.Fatalf("Register() erreur = %v", err)
	}
	if user.ID == "" {
		t.Error("Register() devrait assigner un ID")
	}
	if user.Role != models.RoleUtilisateur {
		t.Errorf("Role = %v, attendu utilisateur", user.Role)
	}
	if user.PasswordHash == "password123" || user.PasswordHash == "" {
		t.Error("le mot de passe doit être haché")
	}
}

func TestRegister_emailDuplique(t *testing.T) {
	repo := newTestUserRepo(t)

	if _, err := repo.Register("Dupont", "Alice", "alice@example.com", "password123"); err != nil {
		t.Fatalf("première inscription: %v", err)
	}

	_, err := repo.Register("Martin", "Bob", "alice@example.com", "autrepass456")
	if err == nil {
		t.Fatal("Register() devrait échouer avec un email déjà enregistré")
	}
	if !apperrors.IsKind(err, apperrors.KindConflict) {
		t.Errorf("erreur = %v, attendu un conflit", err)
	}

	// Un seul enregistrement doit persister
	if got := len(repo.All()); got != 1 {
		t.Errorf("len(All()) = %d, attendu 1", got)
	}
}

func TestRegister_validation(t *testing.T) {
	repo := newTestUserRepo(t)

	tests := []struct {
		name     string
		userName string
		prenom   string
		email    string
		password string
	}{
		{"email invalide", "Dupont", "Alice", "pas-un-email", "password123"},
		{"mot de passe trop court", "Dupont", "Alice", "alice@example.com", "court"},
		{"nom trop court", "D", "Alice", "alice@example.com", "password123"},
		{"prénom trop court", "Dupont", "A", "alice@example.com", "password123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.Register(tt.userName, tt.prenom, tt.email, tt.password)
			if !apperrors.IsKind(err, apperrors.KindValidation) {
				t.Errorf("erreur = %v, attendu une erreur de validation", err)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	repo := newTestUserRepo(t)
	if _, err := repo.Register("Dupont", "Alice", "alice@example.com", "password123"); err != nil {
		t.Fatalf("inscription: %v", err)
	}

	t.Run("identifiants valides", func(t *testing.T) {
		user, err := repo.Authenticate("alice@example.com", "password123")
		if err != nil {
			t.Fatalf("Authenticate() erreur = %v", err)
		}
		if user.Email != "alice@example.com" {
			t.Errorf("Email = %v", user.Email)
		}
	})

	t.Run("email inconnu", func(t *testing.T) {
		_, err := repo.Authenticate("inconnu@example.com", "password123")
		if !apperrors.IsKind(err, apperrors.KindNotFound) {
			t.Errorf("erreur = %v, attendu introuvable", err)
		}
	})

	t.Run("mauvais mot de passe", func(t *testing.T) {
		_, err := repo.Authenticate("alice@example.com", "mauvais-mdp")
		if !apperrors.IsKind(err, apperrors.KindUnauthenticated) {
			t.Errorf("erreur = %v, attendu non authentifié", err)
		}
	})

	t.Run("email sensible à la casse", func(t *testing.T) {
		_, err := repo.Authenticate("Alice@Example.com", "password123")
		if !apperrors.IsKind(err, apperrors.KindNotFound) {
			t.Errorf("erreur = %v, la comparaison d'email est exacte", err)
		}
	})
}

func TestUpdateRole(t *testing.T) {
	repo := newTestUserRepo(t)
	user, err := repo.Register("Dupont", "Alice", "alice@example.com", "password123")
	if err != nil {
		t.Fatalf("inscription: %v", err)
	}

	t.Run("utilisateur existant", func(t *testing.T) {
		updated, err := repo.UpdateRole(user.ID, models.RoleChef)
		if err != nil {
			t.Fatalf("UpdateRole() erreur = %v", err)
		}
		if !updated {
			t.Error("UpdateRole() devrait retourner true")
		}
		if got := repo.FindByID(user.ID); got == nil || got.Role != models.RoleChef {
			t.Errorf("rôle persisté = %+v, attendu chef", got)
		}
	})

	t.Run("utilisateur inconnu", func(t *testing.T) {
		updated, err := repo.UpdateRole("id-inconnu", models.RoleChef)
		if err != nil {
			t.Fatalf("UpdateRole() erreur = %v", err)
		}
		if updated {
			t.Error("UpdateRole() devrait retourner false sans erreur pour un utilisateur inconnu")
		}
	})
}
