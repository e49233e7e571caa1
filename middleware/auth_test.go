package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	return c, w
}

func TestGetUserID(t *testing.T) {
	c, _ := testContext()

	// Missing user_id
	_, err := GetUserID(c)
	assert.Error(t, err)
	var authErr *AuthError
	assert.ErrorAs(t, err, &authErr)
	assert.Equal(t, "MISSING_USER_ID", authErr.Code)

	// Wrong type
	c.Set("user_id", 42)
	_, err = GetUserID(c)
	assert.Error(t, err)

	// Present
	c.Set("user_id", "auth0|abc123")
	id, err := GetUserID(c)
	assert.NoError(t, err)
	assert.Equal(t, "auth0|abc123", id)
}

func TestGetAccessToken(t *testing.T) {
	c, _ := testContext()

	_, err := GetAccessToken(c)
	assert.Error(t, err)

	c.Set("access_token", "token-xyz")
	token, err := GetAccessToken(c)
	assert.NoError(t, err)
	assert.Equal(t, "token-xyz", token)
}

func TestGetClaims(t *testing.T) {
	c, _ := testContext()

	_, err := GetClaims(c)
	assert.Error(t, err)

	claims := &validator.ValidatedClaims{
		CustomClaims: &CustomClaims{Role: "vendor"},
	}
	c.Set("validated_claims", claims)

	got, err := GetClaims(c)
	assert.NoError(t, err)
	assert.Equal(t, claims, got)
}

func TestGetRole(t *testing.T) {
	c, _ := testContext()

	// No claims at all
	assert.Equal(t, "", GetRole(c))

	c.Set("validated_claims", &validator.ValidatedClaims{
		CustomClaims: &CustomClaims{Role: "admin"},
	})
	assert.Equal(t, "admin", GetRole(c))
}

func TestHasScope(t *testing.T) {
	tests := []struct {
		name     string
		scope    string
		expected string
		has      bool
	}{
		{"single scope match", "read:repairs", "read:repairs", true},
		{"one of many", "read:repairs write:repairs", "write:repairs", true},
		{"missing scope", "read:repairs", "write:repairs", false},
		{"empty scope", "", "read:repairs", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := CustomClaims{Scope: tt.scope}
			assert.Equal(t, tt.has, claims.HasScope(tt.expected))
		})
	}
}

func TestRequireScope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setupRouter := func(scope string) *gin.Engine {
		router := gin.New()
		router.GET("/protected",
			func(c *gin.Context) {
				c.Set("validated_claims", &validator.ValidatedClaims{
					CustomClaims: &CustomClaims{Scope: scope},
				})
			},
			RequireScope("admin:stores"),
			func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"success": true})
			},
		)
		return router
	}

	// With the required scope
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	setupRouter("admin:stores read:stores").ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Without it
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/protected", nil)
	setupRouter("read:stores").ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCORSMiddlewareAllowsLocalhost(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORSMiddleware())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req, _ := http.NewRequest("GET", "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddlewareRejectsUnknownOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORSMiddleware())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req, _ := http.NewRequest("GET", "/ping", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
