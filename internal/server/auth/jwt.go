// Package auth issues and verifies the signed session token carried in the
// session cookie, checks passwords and keeps the caller's identity in the
// request context.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/labmaint/internal/server/models"
)

var ErrorInvalidToken = errors.New("invalid token")

// Claims holds the standard claims plus the session identity.
type Claims struct {
	jwt.RegisteredClaims
	UserID  int64  `json:"user_id"`
	Usuario string `json:"usuario"`
	Rol     string `json:"rol"`
}

func GenerateToken(id Identity, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID:  id.UserID,
		Usuario: id.Usuario,
		Rol:     id.Rol,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies signature and expiry and returns the identity. A token
// without a role yields the read-only role.
func ParseToken(tokenString string, secretKey []byte) (*Identity, error) {
	claims, err := parseClaims(tokenString, secretKey)
	if err != nil {
		return nil, err
	}

	id := &Identity{UserID: claims.UserID, Usuario: claims.Usuario, Rol: claims.Rol}
	if id.Rol == "" {
		id.Rol = models.RolSoloVista
	}
	return id, nil
}

// TokenExpiry returns the expiry of a valid token.
func TokenExpiry(tokenString string, secretKey []byte) (time.Time, error) {
	claims, err := parseClaims(tokenString, secretKey)
	if err != nil {
		return time.Time{}, err
	}
	return claims.ExpiresAt.Time, nil
}

func parseClaims(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	if !token.Valid || claims.UserID == 0 {
		return nil, ErrorInvalidToken
	}
	return claims, nil
}
