package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims représente les revendications portées par le cookie de
// session. Le cookie ne transporte que l'identifiant de session signé ;
// l'identité elle-même reste côté serveur dans le SessionStore.
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// GenerateSessionToken signe un identifiant de session pour le cookie
func GenerateSessionToken(sessionID, secret string, ttl time.Duration) (string, error) {
	claims := &SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("erreur lors de la signature du token: %w", err)
	}

	return tokenString, nil
}

// ValidateSessionToken vérifie la signature du cookie et retourne
// l'identifiant de session qu'il transporte
func ValidateSessionToken(tokenString, secret string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("méthode de signature invalide: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		return "", fmt.Errorf("erreur lors du parsing du token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return "", fmt.Errorf("token invalide")
	}

	return claims.SessionID, nil
}
