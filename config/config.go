package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config contient toutes les configurations de l'application
type Config struct {
	Port            string
	Host            string
	DataDir         string
	SessionSecret   string
	SessionTTLHours int
	Environment     string
	CORSOrigins     []string
	SlackWebhookURL string
}

// Load charge la configuration depuis les variables d'environnement
func Load() (*Config, error) {
	// Charger le fichier .env s'il existe
	_ = godotenv.Load()

	config := &Config{
		Port:            getEnv("PORT", "8090"),
		Host:            getEnv("HOST", "0.0.0.0"), // 0.0.0.0 pour serveur cloud
		DataDir:         getEnv("DATA_DIR", "./data"),
		SessionSecret:   getEnv("SESSION_SECRET", ""),
		Environment:     getEnv("ENVIRONMENT", "development"),
		SlackWebhookURL: getEnv("SLACK_WEBHOOK_URL", ""),
	}

	// Durée de vie des sessions (24h par défaut, comme le cookie historique)
	ttl := getEnv("SESSION_TTL_HOURS", "24")
	ttlHours, err := strconv.Atoi(ttl)
	if err != nil || ttlHours <= 0 {
		return nil, fmt.Errorf("SESSION_TTL_HOURS invalide: %q", ttl)
	}
	config.SessionTTLHours = ttlHours

	// Parser les origines CORS
	origins := getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	originsList := strings.Split(origins, ",")
	config.CORSOrigins = make([]string, 0, len(originsList))
	for _, origin := range originsList {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			config.CORSOrigins = append(config.CORSOrigins, trimmed)
		}
	}

	// Valider les configurations critiques
	if config.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET est requis")
	}

	return config, nil
}

// getEnv récupère une variable d'environnement avec une valeur par défaut
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
