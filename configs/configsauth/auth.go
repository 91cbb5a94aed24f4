package configsauth

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken est retourné quand le jeton est absent, expiré ou altéré.
var ErrInvalidToken = errors.New("jeton invalide ou expiré")

const defaultTokenTTLHours = 24

// Secret retourne la clé de signature HS256 des jetons d'administration.
func Secret() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	// Valeur de développement uniquement: JWT_SECRET doit être défini en production.
	return []byte("atlas-dev-secret")
}

// TokenTTL retourne la durée de validité des jetons (JWT_TTL_HOURS, 24h par défaut).
func TokenTTL() time.Duration {
	if v := os.Getenv("JWT_TTL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Hour
		}
	}
	return defaultTokenTTLHours * time.Hour
}

// GenerateToken signe un jeton HS256 portant l'identifiant de l'administrateur.
func GenerateToken(adminID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": adminID,
		"exp": time.Now().Add(TokenTTL()).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(Secret())
}

// VerifyToken valide un jeton et retourne l'identifiant d'administrateur qu'il porte.
func VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return Secret(), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}
