package database

import (
	"strings"

	"github.com/google/uuid"

	"recettes-backend/apperrors"
	"recettes-backend/constants"
	"recettes-backend/models"
	"recettes-backend/utils"
)

// UserRepository gère les opérations sur users.json
type UserRepository struct {
	store *Store
}

// NewUserRepository crée une nouvelle instance de UserRepository
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

// loadAll relit tous les utilisateurs depuis le fichier JSON
func (r *UserRepository) loadAll() []models.User {
	users := []models.User{}
	r.store.Load(&users)
	return users
}

// All retourne tous les utilisateurs
func (r *UserRepository) All() []models.User {
	return r.loadAll()
}

// FindByID recherche un utilisateur par ID. Retourne nil si absent.
func (r *UserRepository) FindByID(id string) *models.User {
	for _, user := range r.loadAll() {
		if user.ID == id {
			u := user
			return &u
		}
	}
	return nil
}

// Register valide les champs d'inscription, vérifie l'unicité de l'email
// (comparaison exacte, sensible à la casse) et persiste le nouvel
// utilisateur avec le rôle utilisateur.
func (r *UserRepository) Register(name, prenom, email, password string) (*models.User, error) {
	if err := utils.ValidateEmail(email); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	if err := utils.ValidatePassword(password); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	if err := utils.ValidateName("nom", name); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	if err := utils.ValidateName("prénom", prenom); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	users := r.loadAll()
	for _, user := range users {
		if user.Email == email {
			return nil, apperrors.Conflict(constants.ErrEmailTaken)
		}
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, apperrors.Storage(constants.ErrServerError, err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Prenom:       strings.TrimSpace(prenom),
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleUtilisateur,
	}

	users = append(users, user)
	if err := r.store.Save("Register", users); err != nil {
		return nil, err
	}

	return &user, nil
}

// Authenticate vérifie les identifiants. Email inconnu et mot de passe
// erroné restent des erreurs distinctes (404 et 401), comme le client
// historique l'attend.
func (r *UserRepository) Authenticate(email, password string) (*models.User, error) {
	var found *models.User
	for _, user := range r.loadAll() {
		if user.Email == email {
			u := user
			found = &u
			break
		}
	}

	if found == nil {
		return nil, apperrors.NotFound(constants.ErrUserNotFound)
	}

	if !utils.CheckPassword(found.PasswordHash, password) {
		return nil, apperrors.Unauthenticated(constants.ErrWrongPassword)
	}

	return found, nil
}

// UpdateRole change le rôle d'un utilisateur. Retourne false (sans erreur)
// si l'utilisateur n'existe pas ; une erreur n'est remontée que si la
// sauvegarde échoue.
func (r *UserRepository) UpdateRole(userID, newRole string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	users := r.loadAll()
	found := false
	for i := range users {
		if users[i].ID == userID {
			users[i].Role = newRole
			found = true
			break
		}
	}

	if !found {
		return false, nil
	}

	if err := r.store.Save("UpdateRole", users); err != nil {
		return false, err
	}

	return true, nil
}
