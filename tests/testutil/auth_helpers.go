package testutil

import (
	"strings"

	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/gehnabazaar/gehnabazaar-api/middleware"
	"github.com/gin-gonic/gin"
)

// MockValidatedClaims creates a mock ValidatedClaims for testing
func MockValidatedClaims(subject, issuer, role string, scopes []string) *validator.ValidatedClaims {
	return &validator.ValidatedClaims{
		RegisteredClaims: validator.RegisteredClaims{
			Issuer:  issuer,
			Subject: subject,
		},
		CustomClaims: &middleware.CustomClaims{
			Scope: strings.Join(scopes, " "),
			Role:  role,
		},
	}
}

// SetMockAuthContext sets up a mock authenticated context the same way the
// real JWT middleware does
func SetMockAuthContext(c *gin.Context, auth0ID, role string) {
	claims := MockValidatedClaims(auth0ID, "https://test.auth0.com/", role, nil)
	c.Set("user_id", auth0ID)
	c.Set("access_token", "test-token")
	c.Set("validated_claims", claims)
}

// MockAuthMiddleware returns a gin middleware that authenticates every
// request as the given Auth0 identity
func MockAuthMiddleware(auth0ID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		SetMockAuthContext(c, auth0ID, role)
		c.Next()
	}
}
