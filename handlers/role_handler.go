package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"recettes-backend/constants"
	"recettes-backend/database"
	"recettes-backend/middleware"
	"recettes-backend/models"
	"recettes-backend/services"
	"recettes-backend/utils"
)

// RoleHandler gère les demandes d'élévation de rôle
type RoleHandler struct {
	roleRepo *database.RoleRepository
	sessions *services.SessionStore
}

// NewRoleHandler crée une nouvelle instance de RoleHandler
func NewRoleHandler(roleRepo *database.RoleRepository, sessions *services.SessionStore) *RoleHandler {
	return &RoleHandler{roleRepo: roleRepo, sessions: sessions}
}

// GetRoles retourne le document rôles filtré selon l'appelant : un admin
// voit toutes les demandes, un utilisateur seulement les siennes
func (h *RoleHandler) GetRoles(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		utils.RespondError(w, http.StatusUnauthorized, constants.ErrNotLoggedIn)
		return
	}

	utils.RespondJSON(w, http.StatusOK, h.roleRepo.DocumentFor(user.ID, user.Role))
}

// GetPendingRequests retourne les demandes en attente (admin uniquement,
// contrôlé par le middleware RequireAdmin)
func (h *RoleHandler) GetPendingRequests(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.roleRepo.PendingRequests())
}

// RequestRole soumet une demande de rôle pour l'utilisateur connecté
func (h *RoleHandler) RequestRole(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		utils.RespondError(w, http.StatusUnauthorized, constants.ErrNotLoggedIn)
		return
	}

	var input models.RoleRequestInput
	if !DecodeJSONBody(w, r, &input) {
		return
	}

	if input.UserID == "" || input.RequestedRole == "" {
		utils.RespondError(w, http.StatusBadRequest, "Missing userId or requestedRole")
		return
	}

	if _, err := h.roleRepo.Submit(*user, input.UserID, input.RequestedRole); err != nil {
		utils.RespondAppError(w, err)
		return
	}

	log.Printf("✓ Demande de rôle %s soumise par %s", input.RequestedRole, user.Email)
	utils.RespondMessage(w, http.StatusOK, "Role request submitted successfully")
}

// ProcessRequest accepte ou rejette une demande (admin uniquement).
// Les identifiants du corps doivent correspondre à ceux de l'URL.
func (h *RoleHandler) ProcessRequest(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID, err := strconv.Atoi(vars["id"])
	if err != nil || requestID <= 0 {
		utils.RespondError(w, http.StatusBadRequest, constants.ErrInvalidID)
		return
	}
	action := vars["action"]

	var input models.ProcessRequestInput
	if !DecodeJSONBody(w, r, &input) {
		return
	}

	if input.RequestID == 0 || input.Action == "" {
		utils.RespondError(w, http.StatusBadRequest, "Missing requestId or action in request body")
		return
	}

	if input.RequestID != requestID || input.Action != action {
		utils.RespondError(w, http.StatusBadRequest, "Mismatched requestId or action between URL and body")
		return
	}

	request, err := h.roleRepo.Process(requestID, action)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}

	// Répercuter le nouveau rôle sur la session active de l'utilisateur
	if request.Status == models.RequestAccepted {
		h.sessions.UpdateRole(request.UserID, request.RequestedRole)
	}

	log.Printf("✓ Demande de rôle ID=%d traitée (%s)", requestID, action)
	utils.RespondMessage(w, http.StatusOK, "Request processed successfully")
}
