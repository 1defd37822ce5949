// Package database contient le store JSON et les repositories d'entités.
// Chaque document JSON (users, recipe, comments, roles) appartient à un seul
// repository ; toute mutation relit le document entier, le modifie en
// mémoire puis le réécrit intégralement.
package database

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"syscall"

	"recettes-backend/apperrors"
)

// Store gère la lecture et l'écriture d'un document JSON nommé.
//
// Le verrou consultatif exclusif (flock) n'est tenu que pendant l'écriture
// finale, pas pendant la lecture ni la mutation en mémoire : deux processus
// concurrents peuvent donc se livrer à un lost-update. Au sein d'un même
// processus, le mutex sérialise les cycles lecture-modification-écriture
// des repositories. Un déploiement multi-instances reste exposé à la course.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore crée un store pour le document au chemin donné
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path retourne le chemin du document géré
func (s *Store) Path() string {
	return s.path
}

// Load décode le document dans out. Un fichier absent, illisible ou
// corrompu laisse out à sa valeur vide canonique : Load ne remonte jamais
// d'erreur à l'appelant, il journalise l'anomalie.
func (s *Store) Load(out interface{}) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ Lecture impossible de %s: %v", s.path, err)
		}
		return
	}

	if err := json.Unmarshal(data, out); err != nil {
		log.Printf("⚠️ JSON invalide dans %s: %v", s.path, err)
	}
}

// Save sérialise le document en JSON indenté et le réécrit intégralement
// sous verrou consultatif exclusif. Retourne une erreur de stockage si le
// verrou ne peut être pris ou si l'écriture est incomplète.
func (s *Store) Save(operation string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return apperrors.Storage(
			fmt.Sprintf("Impossible de sérialiser %s", s.path),
			fmt.Errorf("%s: %w", operation, err),
		)
	}
	data = append(data, '\n')

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return apperrors.Storage(
			fmt.Sprintf("Impossible d'ouvrir %s en écriture", s.path),
			fmt.Errorf("%s: %w", operation, err),
		)
	}
	defer f.Close()

	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		return apperrors.Storage(
			fmt.Sprintf("Impossible d'obtenir le verrou sur %s", s.path),
			fmt.Errorf("%s: %w", operation, err),
		)
	}
	defer syscall.Flock(int(f.Fd()), syscall.LOCK_UN)

	n, err := f.Write(data)
	if err != nil || n < len(data) {
		if err == nil {
			err = fmt.Errorf("écriture incomplète: %d/%d octets", n, len(data))
		}
		return apperrors.Storage(
			fmt.Sprintf("Impossible d'écrire dans %s", s.path),
			fmt.Errorf("%s: %w", operation, err),
		)
	}

	return nil
}
