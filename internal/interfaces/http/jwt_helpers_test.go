package http_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/Inventario-visibility/pkg/jwt"
)

func expiredToken(t *testing.T) string {
	t.Helper()
	past := time.Now().Add(-time.Hour)
	claims := pkgjwt.Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   testUserID,
			IssuedAt:  gojwt.NewNumericDate(past.Add(-time.Hour)),
			ExpiresAt: gojwt.NewNumericDate(past),
		},
		UserID: testUserID,
		Role:   "admin",
	}
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return tok
}
