package devserver

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// SessionCookie is the cookie name carrying the session token.
const SessionCookie = "eventbook_session"

// IssueSessionToken signs an HS256 token identifying the user.
func IssueSessionToken(secret, userID string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("token: signing session token: %w", err)
	}
	return signed, nil
}

// ParseSessionToken verifies the signature and expiry and returns the
// user id.
func ParseSessionToken(secret, tokenString string) (string, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("token: unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", fmt.Errorf("token: parsing session token: %w", err)
	}
	if !parsed.Valid {
		return "", fmt.Errorf("token: invalid session token")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("token: unexpected claims type")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", fmt.Errorf("token: missing subject")
	}
	return sub, nil
}
