package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fishmarket-be/internal/auth"
	"fishmarket-be/internal/principal"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func whoami(c *gin.Context) {
	p, ok := principal.FromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusOK, gin.H{"principal": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"principal": p.ID, "kind": string(p.Kind)})
}

func TestAuthenticate(t *testing.T) {
	router := gin.New()
	router.Use(Authenticate(testSecret))
	router.GET("/whoami", whoami)

	t.Run("ValidBearerToken", func(t *testing.T) {
		token, err := auth.GenerateJWT(principal.Principal{
			ID:    "farmer1",
			Kind:  principal.KindFarmer,
			Email: "a@b.com",
		}, testSecret)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "farmer1")
		assert.Contains(t, rr.Body.String(), "farmer")
	})

	t.Run("CookieToken", func(t *testing.T) {
		token, err := auth.GenerateJWT(principal.Principal{
			ID:   "c1",
			Kind: principal.KindCustomer,
		}, testSecret)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "c1")
	})

	t.Run("NoTokenPassesThroughAnonymous", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/whoami", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "null")
	})

	t.Run("ForgedTokenPassesThroughAnonymous", func(t *testing.T) {
		token, err := auth.GenerateJWT(principal.Principal{ID: "x", Kind: principal.KindFarmer}, "wrong-secret")
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "null")
	})
}

func TestRequirePrincipal(t *testing.T) {
	router := gin.New()
	router.Use(Authenticate(testSecret))
	router.Use(RequirePrincipal())
	router.GET("/secure", whoami)

	req := httptest.NewRequest("GET", "/secure", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRateLimit_StrictBlocksAfterBurst(t *testing.T) {
	router := gin.New()
	router.Use(RateLimit(true))
	router.GET("/login", func(c *gin.Context) { c.Status(http.StatusOK) })

	var lastCode int
	for i := 0; i < burstStrict+1; i++ {
		req := httptest.NewRequest("GET", "/login", nil)
		req.RemoteAddr = "203.0.113.9:1234"
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		lastCode = rr.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, lastCode)
}
