package security

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SupervisorClaims is the session minted after a successful PIN check.
// The PIN itself never goes into the token.
type SupervisorClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// CreateSupervisorToken signs an HS256 session token gating the presence
// report and the unauthorized-attempt log.
func CreateSupervisorToken(secret []byte, expiresInSeconds int64) (string, error) {
	claims := SupervisorClaims{
		Role: "supervisor",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "factorygate",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expiresInSeconds) * time.Second)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseSupervisorToken validates a session token and returns its claims.
func ParseSupervisorToken(tokenStr string, secret []byte) (*SupervisorClaims, error) {
	var claims SupervisorClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return &claims, nil
}
