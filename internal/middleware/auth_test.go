package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terminal-terrace/mp-article/pkg/authsdk"
	"terminal-terrace/mp-article/pkg/response"
)

const testSecret = "middleware-test-secret"

func signToken(t *testing.T, secret string, ttl time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, authsdk.Claims{
		UserID:   7,
		Username: "reader",
		Role:     "user",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTAuth(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetInt("user_id")})
	})
	return r
}

func TestJWTAuth(t *testing.T) {
	r := setupRouter()

	tests := []struct {
		name    string
		prepare func(req *http.Request)
		status  int
	}{
		{"no token", func(req *http.Request) {}, http.StatusUnauthorized},
		{"bearer header", func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, time.Hour))
		}, http.StatusOK},
		{"cookie", func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: "access_token", Value: signToken(t, testSecret, time.Hour)})
		}, http.StatusOK},
		{"malformed header", func(req *http.Request) {
			req.Header.Set("Authorization", "Token abc")
		}, http.StatusUnauthorized},
		{"expired", func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, -time.Hour))
		}, http.StatusUnauthorized},
		{"wrong secret", func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+signToken(t, "other", time.Hour))
		}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			tt.prepare(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusUnauthorized {
				var body response.Response
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, response.Unauthorized, body.Code)
				assert.False(t, body.Success)
			} else {
				assert.JSONEq(t, `{"user_id":7}`, w.Body.String())
			}
		})
	}
}

func TestJWTAuthEmptySecret(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.DELETE("/articles/:id", JWTAuth(""), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodDelete, "/articles/a1", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "", time.Hour))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, response.Unauthorized, body.Code)
}
