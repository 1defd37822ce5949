package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"recettes-backend/models"
)

// SessionStore conserve les sessions côté serveur, indexées par un
// identifiant opaque. Le cookie ne transporte que cet identifiant, signé ;
// l'instantané d'identité ne quitte jamais le processus. Les sessions ne
// sont pas persistées : un redémarrage déconnecte tout le monde.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry
	ttl      time.Duration
}

type sessionEntry struct {
	user      models.SessionUser
	expiresAt time.Time
}

// NewSessionStore crée un store de sessions avec la durée de vie donnée
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*sessionEntry),
		ttl:      ttl,
	}
}

// TTL retourne la durée de vie des sessions
func (s *SessionStore) TTL() time.Duration {
	return s.ttl
}

// Create ouvre une session pour l'utilisateur et retourne son identifiant
func (s *SessionStore) Create(user models.SessionUser) string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &sessionEntry{
		user:      user,
		expiresAt: time.Now().Add(s.ttl),
	}

	return id
}

// Get retourne l'instantané de session, ou nil si la session est absente ou
// expirée. Les sessions expirées sont purgées à la lecture.
func (s *SessionStore) Get(id string) *models.SessionUser {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.sessions, id)
		return nil
	}

	user := entry.user
	return &user
}

// Destroy détruit une session. Sans effet si elle n'existe pas.
func (s *SessionStore) Destroy(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// UpdateRole met à jour le rôle en cache dans toutes les sessions actives
// de l'utilisateur. Sans effet s'il n'a aucune session.
func (s *SessionStore) UpdateRole(userID, newRole string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range s.sessions {
		if entry.user.ID == userID {
			entry.user.Role = newRole
		}
	}
}
