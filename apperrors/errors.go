// Package apperrors définit la taxonomie d'erreurs métier et sa traduction
// en statuts HTTP. Les repositories retournent des erreurs typées ; seule la
// couche handler les convertit en réponse HTTP.
package apperrors

import (
	"errors"
	"net/http"
)

// Kind classe une erreur métier
type Kind int

const (
	// KindValidation : entrée malformée ou manquante (400)
	KindValidation Kind = iota
	// KindUnauthenticated : aucune session valide (401)
	KindUnauthenticated
	// KindForbidden : rôle ou propriété insuffisants (403)
	KindForbidden
	// KindNotFound : ressource inexistante (404)
	KindNotFound
	// KindConflict : email dupliqué, demande déjà en attente ou déjà traitée (409)
	KindConflict
	// KindInvalidState : transition like/unlike contradictoire (400)
	KindInvalidState
	// KindStorage : échec de verrouillage ou d'écriture du fichier JSON (500)
	KindStorage
)

// Error est une erreur métier typée
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implémente l'interface error
func (e *Error) Error() string {
	return e.Message
}

// Unwrap expose l'erreur sous-jacente
func (e *Error) Unwrap() error {
	return e.Err
}

// Validation crée une erreur de validation (400)
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Unauthenticated crée une erreur d'authentification (401)
func Unauthenticated(message string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: message}
}

// Forbidden crée une erreur d'autorisation (403)
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// NotFound crée une erreur de ressource inexistante (404)
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Conflict crée une erreur de conflit d'état (409)
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// InvalidState crée une erreur de transition d'état invalide (400)
func InvalidState(message string) *Error {
	return &Error{Kind: KindInvalidState, Message: message}
}

// Storage crée une erreur de persistance (500) en conservant la cause
func Storage(message string, err error) *Error {
	return &Error{Kind: KindStorage, Message: message, Err: err}
}

// HTTPStatus traduit une erreur en statut HTTP. Les erreurs non typées sont
// traitées comme des erreurs serveur.
func HTTPStatus(err error) int {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindValidation, KindInvalidState:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// IsKind indique si err est une erreur métier du type donné
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
