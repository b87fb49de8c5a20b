package sessions

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"inkwell/internal/common"
	"inkwell/internal/server/models"
)

// Claims carries the authenticated identity inside a signed session token.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string
	Username string
	Role     models.Role
}

func generateToken(ident Identity, secretKey []byte, validityDuration time.Duration, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:   ident.UserID,
		Username: ident.Username,
		Role:     ident.Role,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func parseToken(tokenString string, secretKey []byte, now time.Time) (Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithTimeFunc(func() time.Time { return now }))
	if err != nil {
		return Identity{}, common.ErrInvalidToken
	}

	if !token.Valid {
		return Identity{}, common.ErrInvalidToken
	}

	return Identity{UserID: claims.UserID, Username: claims.Username, Role: claims.Role}, nil
}
