package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJWTCfg = JWTConfig{
	SigningKey: []byte("test-signing-key-1234567890123456"),
	Issuer:     "plantops",
	ExpiresIn:  time.Hour,
}

func TestGenerateAndValidateToken(t *testing.T) {
	token, expiresAt, err := GenerateToken(testJWTCfg, "u-1", "dana@plantops.local")
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := ValidateToken(testJWTCfg.SigningKey, token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "dana@plantops.local", claims.Email)
	assert.Equal(t, "plantops", claims.Issuer)
	assert.Equal(t, "u-1", claims.Subject)
}

func TestValidateToken_RejectsWrongKey(t *testing.T) {
	token, _, err := GenerateToken(testJWTCfg, "u-1", "dana@plantops.local")
	require.NoError(t, err)

	_, err = ValidateToken([]byte("other-key-9876543210987654321098"), token)
	require.Error(t, err)
}

func TestValidateToken_RejectsExpired(t *testing.T) {
	expiredCfg := testJWTCfg
	expiredCfg.ExpiresIn = -time.Minute

	token, _, err := GenerateToken(expiredCfg, "u-1", "dana@plantops.local")
	require.NoError(t, err)

	_, err = ValidateToken(testJWTCfg.SigningKey, token)
	require.Error(t, err)
}

func TestValidateToken_RejectsGarbage(t *testing.T) {
	_, err := ValidateToken(testJWTCfg.SigningKey, "not-a-jwt")
	require.Error(t, err)
}

func TestTokenVerifier_Verify(t *testing.T) {
	token, _, err := GenerateToken(testJWTCfg, "u-1", "dana@plantops.local")
	require.NoError(t, err)

	verifier := TokenVerifier{SigningKey: testJWTCfg.SigningKey}

	identity, err := verifier.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", identity.ID)
	assert.Equal(t, "dana@plantops.local", identity.Email)

	_, err = verifier.Verify(context.Background(), "bogus")
	require.Error(t, err)
}

func TestJWTAuth(t *testing.T) {
	router := gin.New()
	router.Use(JWTAuth(testJWTCfg.SigningKey))
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c.Request.Context())})
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed scheme", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic abc")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token populates context", func(t *testing.T) {
		token, _, err := GenerateToken(testJWTCfg, "u-1", "dana@plantops.local")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":"u-1"`)
	})
}
