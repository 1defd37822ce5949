package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hache un mot de passe avec bcrypt. Le mot de passe en clair
// n'est jamais persisté ni journalisé.
func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// CheckPassword vérifie qu'un mot de passe correspond à son hash bcrypt
func CheckPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
