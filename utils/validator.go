package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Longueurs minimales imposées à l'inscription
const (
	MinPasswordLength = 8
	MinNameLength     = 2
)

// ValidationError représente une erreur de validation d'un champ
type ValidationError struct {
	Field   string
	Message string
}

// Error implémente l'interface error
func (v ValidationError) Error() string {
	return v.Message
}

// ValidateEmail valide la forme d'un email
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ValidationError{Field: "email", Message: "l'email est requis"}
	}
	if !emailRegex.MatchString(email) {
		return ValidationError{Field: "email", Message: "format d'email invalide"}
	}
	return nil
}

// ValidatePassword valide un mot de passe
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return ValidationError{
			Field:   "password",
			Message: fmt.Sprintf("Le mot de passe doit comporter au moins %d caractères.", MinPasswordLength),
		}
	}
	return nil
}

// ValidateName valide un nom ou un prénom
func ValidateName(field, value string) error {
	if len(strings.TrimSpace(value)) < MinNameLength {
		return ValidationError{
			Field:   field,
			Message: fmt.Sprintf("Le champ %s doit comporter au moins %d caractères.", field, MinNameLength),
		}
	}
	return nil
}
