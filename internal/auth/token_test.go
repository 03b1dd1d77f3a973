package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAccessToken(t *testing.T) {
	t.Run("Cookie Preferred", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie_token"})
		req.Header.Set("Authorization", "Bearer header_token")

		token := ExtractAccessToken(req)
		assert.Equal(t, "cookie_token", token)
	})

	t.Run("Header Fallback", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer header_token")

		token := ExtractAccessToken(req)
		assert.Equal(t, "header_token", token)
	})

	t.Run("Empty Cookie Falls Back to Header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: ""})
		req.Header.Set("Authorization", "Bearer header_token")

		token := ExtractAccessToken(req)
		assert.Equal(t, "header_token", token)
	})

	t.Run("No Token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		token := ExtractAccessToken(req)
		assert.Empty(t, token)
	})

	t.Run("Malformed Header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic user:pass")

		token := ExtractAccessToken(req)
		assert.Empty(t, token)
	})
}

func TestIssuer_GenerateAndParse(t *testing.T) {
	issuer := NewIssuer("testsecret", time.Hour)

	tokenStr, err := issuer.Generate(7, "a@b.com", "ADMIN")
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	t.Run("Success", func(t *testing.T) {
		claims, err := issuer.Parse(tokenStr)
		require.NoError(t, err)
		assert.Equal(t, uint(7), claims.UserID)
		assert.Equal(t, "a@b.com", claims.Email)
		assert.Equal(t, "ADMIN", claims.Role)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		_, err := NewIssuer("other", time.Hour).Parse(tokenStr)
		assert.Error(t, err)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := issuer.Parse("not-a-token")
		assert.Error(t, err)
	})

	t.Run("Expired", func(t *testing.T) {
		past := NewIssuer("testsecret", time.Minute)
		past.now = func() time.Time { return time.Now().Add(-time.Hour) }

		expired, err := past.Generate(7, "a@b.com", "USER")
		require.NoError(t, err)

		_, err = issuer.Parse(expired)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("Unexpected signing method", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 7})
		unsigned, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = issuer.Parse(unsigned)
		assert.Error(t, err)
	})
}

func TestIssuer_MissingSecret(t *testing.T) {
	issuer := NewIssuer("", 0)

	_, err := issuer.Generate(1, "a@b.com", "USER")
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = issuer.Parse("x")
	assert.ErrorIs(t, err, ErrMissingSecret)
}
