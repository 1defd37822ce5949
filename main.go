package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"recettes-backend/config"
	"recettes-backend/constants"
	"recettes-backend/database"
	"recettes-backend/handlers"
	"recettes-backend/middleware"
	"recettes-backend/services"
	"recettes-backend/utils"
)

func main() {
	// Charger la configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Erreur lors du chargement de la configuration: %v", err)
	}

	// Préparer le répertoire des documents JSON
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		log.Fatalf("❌ Impossible de créer le répertoire de données %s: %v", cfg.DataDir, err)
	}

	// Service de notifications Slack pour les erreurs critiques
	slackService := services.NewSlackService(cfg.SlackWebhookURL)

	// Store de sessions côté serveur
	sessionTTL := time.Duration(cfg.SessionTTLHours) * time.Hour
	sessions := services.NewSessionStore(sessionTTL)

	// Un store JSON par document, chacun possédé par un seul repository
	userRepo := database.NewUserRepository(database.NewStore(filepath.Join(cfg.DataDir, "users.json")))
	recipeRepo := database.NewRecipeRepository(database.NewStore(filepath.Join(cfg.DataDir, "recipe.json")))
	commentRepo := database.NewCommentRepository(database.NewStore(filepath.Join(cfg.DataDir, "comments.json")), recipeRepo)
	roleRepo := database.NewRoleRepository(database.NewStore(filepath.Join(cfg.DataDir, "roles.json")), userRepo)

	// Créer les handlers
	authHandler := handlers.NewAuthHandler(userRepo, sessions, cfg.SessionSecret)
	recipeHandler := handlers.NewRecipeHandler(recipeRepo)
	commentHandler := handlers.NewCommentHandler(commentRepo)
	roleHandler := handlers.NewRoleHandler(roleRepo, sessions)
	healthHandler := handlers.NewHealthHandler(cfg.Environment, cfg.DataDir)

	// Créer le routeur
	router := mux.NewRouter()

	// Middlewares globaux
	router.Use(middleware.Logging(slackService))
	router.Use(middleware.CORS(cfg.CORSOrigins))

	// 404 JSON pour les routes inconnues
	router.NotFoundHandler = middleware.CORS(cfg.CORSOrigins)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.RespondError(w, http.StatusNotFound, constants.ErrRouteNotFound)
	}))

	// Middleware d'authentification par session
	auth := middleware.Auth(sessions, cfg.SessionSecret)

	// Routes publiques
	router.HandleFunc("/register", authHandler.Register).Methods("POST", "OPTIONS")
	router.HandleFunc("/login", authHandler.Login).Methods("POST", "OPTIONS")
	router.HandleFunc("/health", healthHandler.Health).Methods("GET", "OPTIONS")

	// Session courante
	router.Handle("/logout", auth(http.HandlerFunc(authHandler.Logout))).Methods("POST", "OPTIONS")
	router.Handle("/user", auth(http.HandlerFunc(authHandler.Me))).Methods("GET", "OPTIONS")

	// Recettes
	router.HandleFunc("/recipes", recipeHandler.GetRecipes).Methods("GET", "OPTIONS")
	router.HandleFunc("/recipes/search", recipeHandler.SearchRecipes).Methods("GET", "OPTIONS")
	router.Handle("/recipes", auth(http.HandlerFunc(recipeHandler.AddRecipe))).Methods("POST", "OPTIONS")
	router.Handle("/recipes/{id}", auth(http.HandlerFunc(recipeHandler.UpdateRecipe))).Methods("PUT", "OPTIONS")
	router.Handle("/recipes/{id}", auth(http.HandlerFunc(recipeHandler.DeleteRecipe))).Methods("DELETE", "OPTIONS")
	router.Handle("/like", auth(http.HandlerFunc(recipeHandler.Like))).Methods("POST", "OPTIONS")

	// Commentaires
	router.HandleFunc("/comments", commentHandler.GetComments).Methods("GET", "OPTIONS")
	router.Handle("/comments", auth(http.HandlerFunc(commentHandler.AddComment))).Methods("POST", "OPTIONS")
	router.Handle("/comments/{id}", auth(http.HandlerFunc(commentHandler.UpdateComment))).Methods("PUT", "OPTIONS")
	router.Handle("/comments/{id}", auth(http.HandlerFunc(commentHandler.DeleteComment))).Methods("DELETE", "OPTIONS")

	// Rôles
	router.Handle("/roles", auth(http.HandlerFunc(roleHandler.GetRoles))).Methods("GET", "OPTIONS")
	router.Handle("/roles/requests/pending", auth(middleware.RequireAdmin(http.HandlerFunc(roleHandler.GetPendingRequests)))).Methods("GET", "OPTIONS")
	router.Handle("/roles/request", auth(http.HandlerFunc(roleHandler.RequestRole))).Methods("POST", "OPTIONS")
	router.Handle("/roles/requests/{id}/{action}", auth(middleware.RequireAdmin(http.HandlerFunc(roleHandler.ProcessRequest)))).Methods("PUT", "OPTIONS")

	// Démarrer le serveur
	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Serveur démarré sur http://%s", addr)
		log.Printf("📁 Données JSON dans %s", cfg.DataDir)
		log.Printf("🌍 Environnement: %s", cfg.Environment)
		if slackService.Enabled() {
			log.Println("🔔 Notifications Slack activées pour les erreurs serveur")
		}
		log.Println("")
		log.Println("📍 Routes disponibles:")
		log.Println("   POST   /register                    - Inscription")
		log.Println("   POST   /login                       - Connexion (pose le cookie de session)")
		log.Println("   POST   /logout                      - Déconnexion")
		log.Println("   GET    /user                        - Session courante")
		log.Println("   GET    /health                      - État du serveur")
		log.Println("   GET    /recipes?limit=N             - Liste des recettes")
		log.Println("   GET    /recipes/search?q=&limit=    - Recherche de recettes")
		log.Println("   POST   /recipes                     - Ajouter une recette (chef/admin)")
		log.Println("   PUT    /recipes/{id}                - Modifier une recette (auteur/admin)")
		log.Println("   DELETE /recipes/{id}                - Supprimer une recette (auteur/admin)")
		log.Println("   POST   /like                        - Like/unlike une recette")
		log.Println("   GET    /comments?recipeId=          - Liste des commentaires")
		log.Println("   POST   /comments                    - Commenter (chef/cuisinier/admin)")
		log.Println("   PUT    /comments/{id}               - Modifier un commentaire (auteur/admin)")
		log.Println("   DELETE /comments/{id}               - Supprimer un commentaire (auteur/admin)")
		log.Println("   GET    /roles                       - Demandes de rôle visibles")
		log.Println("   GET    /roles/requests/pending      - Demandes en attente (admin)")
		log.Println("   POST   /roles/request               - Demander un rôle")
		log.Println("   PUT    /roles/requests/{id}/{action} - Traiter une demande (admin)")
		log.Println("")
		log.Println("✨ Le serveur est prêt à recevoir des requêtes!")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Erreur du serveur: %v", err)
		}
	}()

	// Attendre le signal d'arrêt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("\n🛑 Arrêt du serveur...")
	if err := server.Close(); err != nil {
		log.Printf("❌ Erreur lors de l'arrêt du serveur: %v", err)
	}
	log.Println("✓ Serveur arrêté proprement")
}
