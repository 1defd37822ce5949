package handlers

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"recettes-backend/utils"
)

var startTime = time.Now()

// HealthHandler gère l'endpoint de santé
type HealthHandler struct {
	environment string
	dataDir     string
}

// NewHealthHandler crée un nouveau HealthHandler
func NewHealthHandler(environment, dataDir string) *HealthHandler {
	return &HealthHandler{environment: environment, dataDir: dataDir}
}

// Health retourne l'état de santé du serveur avec quelques métriques
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	storageStatus := "ok"
	if info, err := os.Stat(h.dataDir); err != nil || !info.IsDir() {
		storageStatus = "error"
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"status":         "ok",
		"message":        "Le serveur fonctionne correctement",
		"env":            h.environment,
		"storage":        "fichiers JSON",
		"storage_status": storageStatus,
		"uptime":         time.Since(startTime).String(),
		"go_version":     runtime.Version(),
	})
}
