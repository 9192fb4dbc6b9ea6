package shopify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidSessionToken = errors.New("invalid session token")
)

// SessionClaims is the subset of the embedded-app session token this
// backend consumes. The OAuth handshake that issues these tokens is an
// external collaborator; here we only verify and read the tenant identity.
type SessionClaims struct {
	Dest string `json:"dest"` // https://{shop}
	jwt.RegisteredClaims
}

// VerifySessionToken checks the HS256 signature against the app secret,
// the audience against the app client id, and returns the shop domain
// from the dest claim. Expiry is validated by the jwt library.
func VerifySessionToken(tokenStr, apiKey, apiSecret string) (string, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(apiSecret), nil
	}, jwt.WithAudience(apiKey))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSessionToken, err)
	}
	if !token.Valid {
		return "", ErrInvalidSessionToken
	}

	shop := strings.TrimPrefix(claims.Dest, "https://")
	shop = strings.TrimSuffix(shop, "/")
	if shop == "" {
		return "", fmt.Errorf("%w: missing dest claim", ErrInvalidSessionToken)
	}

	return shop, nil
}
