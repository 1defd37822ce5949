package utils

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"recettes-backend/apperrors"
	"recettes-backend/models"
)

// RespondJSON envoie une réponse JSON
func RespondJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json")
	}

	if statusCode > 0 {
		w.WriteHeader(statusCode)
	} else {
		w.WriteHeader(http.StatusOK)
	}

	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("⚠️ Erreur lors de l'encodage JSON de la réponse: %v", err)
		}
	}
}

// RespondError envoie une réponse d'erreur JSON de la forme {"error": ...}
func RespondError(w http.ResponseWriter, statusCode int, message string) {
	RespondJSON(w, statusCode, models.ErrorResponse{Error: message})
}

// RespondMessage envoie une réponse de succès de la forme {"message": ...}
func RespondMessage(w http.ResponseWriter, statusCode int, message string) {
	RespondJSON(w, statusCode, models.MessageResponse{Message: message})
}

// RespondAppError traduit une erreur métier typée en réponse HTTP.
// Les erreurs de stockage sont journalisées avec leur cause mais le client
// ne reçoit qu'un message générique.
func RespondAppError(w http.ResponseWriter, err error) {
	status := apperrors.HTTPStatus(err)

	var appErr *apperrors.Error
	if errors.As(err, &appErr) && appErr.Kind == apperrors.KindStorage {
		log.Printf("❌ Erreur de stockage: %s (cause: %v)", appErr.Message, appErr.Err)
		RespondError(w, status, appErr.Message)
		return
	}

	if status == http.StatusInternalServerError {
		log.Printf("❌ Erreur interne: %v", err)
	}

	RespondError(w, status, err.Error())
}
