// Commande create-admin : amorce un compte administrateur dans users.json.
// Sans admin, aucune demande de rôle ne peut être traitée sur un
// déploiement neuf.
//
// Usage:
//
//	go run ./cmd/create-admin -email admin@example.com -password secret123 -name Dupont -prenom Marie
package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/google/uuid"

	"recettes-backend/database"
	"recettes-backend/models"
	"recettes-backend/utils"
)

func main() {
	dataDir := flag.String("data", "./data", "répertoire des documents JSON")
	email := flag.String("email", "", "email de l'administrateur")
	password := flag.String("password", "", "mot de passe (8 caractères minimum)")
	name := flag.String("name", "Admin", "nom")
	prenom := flag.String("prenom", "Admin", "prénom")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("❌ -email et -password sont requis")
	}
	if err := utils.ValidateEmail(*email); err != nil {
		log.Fatalf("❌ %v", err)
	}
	if err := utils.ValidatePassword(*password); err != nil {
		log.Fatalf("❌ %v", err)
	}

	store := database.NewStore(filepath.Join(*dataDir, "users.json"))

	users := []models.User{}
	store.Load(&users)

	for _, user := range users {
		if user.Email == *email {
			log.Fatalf("❌ L'email %s est déjà enregistré", *email)
		}
	}

	hash, err := utils.HashPassword(*password)
	if err != nil {
		log.Fatalf("❌ Erreur lors du hachage du mot de passe: %v", err)
	}

	admin := models.User{
		ID:           uuid.NewString(),
		Name:         *name,
		Prenom:       *prenom,
		Email:        *email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}

	users = append(users, admin)
	if err := store.Save("create-admin", users); err != nil {
		log.Fatalf("❌ Erreur lors de la sauvegarde: %v", err)
	}

	log.Printf("✓ Administrateur créé: %s (ID: %s)", admin.Email, admin.ID)
}
