package database

import (
	"time"

	"recettes-backend/apperrors"
	"recettes-backend/constants"
	"recettes-backend/models"
	"recettes-backend/policy"
)

// RoleRepository gère les demandes de rôle persistées dans roles.json.
// Le document contient les demandes et la carte userId -> rôle accordé.
// L'acceptation d'une demande met aussi à jour users.json via le
// UserRepository.
type RoleRepository struct {
	store    *Store
	userRepo *UserRepository
}

// NewRoleRepository crée une nouvelle instance de RoleRepository
func NewRoleRepository(store *Store, userRepo *UserRepository) *RoleRepository {
	return &RoleRepository{store: store, userRepo: userRepo}
}

// loadDocument relit le document rôles, normalisé à sa forme canonique
func (r *RoleRepository) loadDocument() models.RolesDocument {
	doc := models.NewRolesDocument()
	r.store.Load(&doc)
	if doc.Requests == nil {
		doc.Requests = []models.RoleRequest{}
	}
	if doc.Users == nil {
		doc.Users = map[string]string{}
	}
	return doc
}

// DocumentFor retourne le document rôles vu par l'appelant : un admin voit
// toutes les demandes, un utilisateur ne voit que les siennes.
func (r *RoleRepository) DocumentFor(userID, role string) models.RolesDocument {
	doc := r.loadDocument()

	if role != models.RoleAdmin {
		own := []models.RoleRequest{}
		for _, request := range doc.Requests {
			if request.UserID == userID {
				own = append(own, request)
			}
		}
		doc.Requests = own
	}

	return doc
}

// PendingRequests retourne les demandes en attente (réservé aux admins,
// contrôle fait en amont)
func (r *RoleRepository) PendingRequests() []models.RoleRequest {
	pending := []models.RoleRequest{}
	for _, request := range r.loadDocument().Requests {
		if request.Status == models.RequestPending {
			pending = append(pending, request)
		}
	}
	return pending
}

// Submit enregistre une demande de rôle. L'appelant ne peut demander que
// pour lui-même, le rôle doit être éligible, et une seule demande pending
// par utilisateur est admise.
func (r *RoleRepository) Submit(caller models.SessionUser, userID, requestedRole string) (*models.RoleRequest, error) {
	if userID != caller.ID {
		return nil, apperrors.Forbidden("Vous ne pouvez pas faire une demande pour un autre utilisateur")
	}

	if !policy.CanRequestRole(requestedRole) {
		return nil, apperrors.Validation("Rôle demandé invalide")
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	doc := r.loadDocument()
	newID := 0
	for _, request := range doc.Requests {
		if request.UserID == userID && request.Status == models.RequestPending {
			return nil, apperrors.Conflict("Vous avez déjà une demande de rôle en attente")
		}
		if request.ID > newID {
			newID = request.ID
		}
	}
	newID++

	request := models.RoleRequest{
		ID:            newID,
		UserID:        userID,
		UserName:      caller.Name,
		UserPrenom:    caller.Prenom,
		UserEmail:     caller.Email,
		RequestedRole: requestedRole,
		Status:        models.RequestPending,
		CreatedAt:     time.Now().Format(models.TimeLayout),
	}

	doc.Requests = append(doc.Requests, request)
	if err := r.store.Save("Submit", doc); err != nil {
		return nil, err
	}

	return &request, nil
}

// Process accepte ou rejette une demande en attente. Les statuts accepted
// et rejected sont terminaux : retraiter une demande échoue en conflit.
// En cas d'acceptation, le rôle de l'utilisateur est mis à jour dans
// users.json et dans la carte users du document rôles.
func (r *RoleRepository) Process(requestID int, action string) (*models.RoleRequest, error) {
	if action != models.ActionAccept && action != models.ActionReject {
		return nil, apperrors.Validation("Action invalide")
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	doc := r.loadDocument()
	for i := range doc.Requests {
		if doc.Requests[i].ID != requestID {
			continue
		}

		if doc.Requests[i].Status != models.RequestPending {
			return nil, apperrors.Conflict("Demande déjà traitée")
		}

		if action == models.ActionAccept {
			doc.Requests[i].Status = models.RequestAccepted

			updated, err := r.userRepo.UpdateRole(doc.Requests[i].UserID, doc.Requests[i].RequestedRole)
			if err != nil {
				return nil, err
			}
			if !updated {
				return nil, apperrors.NotFound(constants.ErrUserNotFound)
			}

			doc.Users[doc.Requests[i].UserID] = doc.Requests[i].RequestedRole
		} else {
			doc.Requests[i].Status = models.RequestRejected
		}

		doc.Requests[i].ProcessedAt = time.Now().Format(models.TimeLayout)
		if err := r.store.Save("Process", doc); err != nil {
			return nil, err
		}

		request := doc.Requests[i]
		return &request, nil
	}

	return nil, apperrors.NotFound(constants.ErrRequestNotFound)
}
