package utils

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotJWT is returned when a bearer token cannot be decoded as a JWT.
var ErrNotJWT = errors.New("token is not a JWT")

// SubjectFromJWT returns the "sub" claim of tokenString without verifying
// the signature. The client never holds the signing key, so the result is
// for display only and must not be trusted for authorization.
func SubjectFromJWT(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", errors.Join(ErrNotJWT, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", errors.New("empty subject error")
	}
	return sub, nil
}
