package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"recettes-backend/constants"
	"recettes-backend/utils"
)

// ParseIntVar extrait et valide un entier depuis les vars de l'URL.
// Retourne false et écrit l'erreur 400 si la valeur est invalide.
func ParseIntVar(w http.ResponseWriter, r *http.Request, key string) (int, bool) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars[key])
	if err != nil || id <= 0 {
		utils.RespondError(w, http.StatusBadRequest, constants.ErrInvalidID)
		return 0, false
	}
	return id, true
}

// DecodeJSONBody vérifie le Content-Type puis décode le corps JSON dans dst.
// Retourne false et écrit l'erreur 400 si le corps est invalide.
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	contentType := r.Header.Get(constants.HeaderContentType)
	if !strings.HasPrefix(contentType, constants.HeaderApplicationJSON) {
		utils.RespondError(w, http.StatusBadRequest, constants.ErrContentTypeJSON)
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.RespondError(w, http.StatusBadRequest, constants.ErrInvalidJSONBody)
		return false
	}
	return true
}

// RequireFormContentType vérifie que la requête est un formulaire
// application/x-www-form-urlencoded, comme le front historique l'envoie.
func RequireFormContentType(w http.ResponseWriter, r *http.Request) bool {
	contentType := r.Header.Get(constants.HeaderContentType)
	if !strings.HasPrefix(contentType, constants.HeaderFormURLEncoded) {
		utils.RespondError(w, http.StatusBadRequest, constants.ErrContentTypeForm)
		return false
	}
	return true
}

// ParseLimit extrait le paramètre limit de la query (0 si absent, la limite
// par défaut est appliquée par le repository)
func ParseLimit(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return limit
}
