package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	// Sauvegarder et restaurer les variables d'environnement
	origSecret := os.Getenv("SESSION_SECRET")
	origPort := os.Getenv("PORT")
	defer func() {
		if origSecret != "" {
			os.Setenv("SESSION_SECRET", origSecret)
		} else {
			os.Unsetenv("SESSION_SECRET")
		}
		if origPort != "" {
			os.Setenv("PORT", origPort)
		} else {
			os.Unsetenv("PORT")
		}
	}()

	t.Run("erreur sans SESSION_SECRET", func(t *testing.T) {
		os.Unsetenv("SESSION_SECRET")
		_, err := Load()
		if err == nil {
			t.Error("Load() devrait échouer sans SESSION_SECRET")
		}
	})

	t.Run("succès avec SESSION_SECRET", func(t *testing.T) {
		os.Setenv("SESSION_SECRET", "test-secret")
		os.Unsetenv("PORT")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() erreur = %v", err)
		}
		if cfg.SessionSecret != "test-secret" {
			t.Errorf("SessionSecret = %v, attendu test-secret", cfg.SessionSecret)
		}
		if cfg.Port != "8090" {
			t.Errorf("Port = %v, attendu 8090 (défaut)", cfg.Port)
		}
		if cfg.SessionTTLHours != 24 {
			t.Errorf("SessionTTLHours = %v, attendu 24 (défaut)", cfg.SessionTTLHours)
		}
		if cfg.DataDir != "./data" {
			t.Errorf("DataDir = %v, attendu ./data (défaut)", cfg.DataDir)
		}
	})

	t.Run("TTL invalide", func(t *testing.T) {
		os.Setenv("SESSION_SECRET", "test-secret")
		os.Setenv("SESSION_TTL_HOURS", "zéro")
		defer os.Unsetenv("SESSION_TTL_HOURS")
		if _, err := Load(); err == nil {
			t.Error("Load() devrait échouer avec un TTL non numérique")
		}
	})

	t.Run("origines CORS multiples", func(t *testing.T) {
		os.Setenv("SESSION_SECRET", "test-secret")
		os.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://app.example.com ,")
		defer os.Unsetenv("CORS_ALLOWED_ORIGINS")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() erreur = %v", err)
		}
		if len(cfg.CORSOrigins) != 2 {
			t.Fatalf("len(CORSOrigins) = %d, attendu 2", len(cfg.CORSOrigins))
		}
		if cfg.CORSOrigins[1] != "https://app.example.com" {
			t.Errorf("CORSOrigins[1] = %v, les espaces devraient être retirés", cfg.CORSOrigins[1])
		}
	})
}
