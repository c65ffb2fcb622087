package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dadadu-backend/pkg/jwt"
)

func authTestRouter(manager *jwt.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(manager), func(c *gin.Context) {
		id, ok := GetUserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no user id in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": id.String()})
	})
	return r
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	manager := jwt.NewManager("test-secret")
	userID := uuid.New()
	token, err := manager.GenerateToken(userID.String(), "user@example.com", time.Hour)
	require.NoError(t, err)

	r := authTestRouter(manager)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	manager := jwt.NewManager("test-secret")
	otherManager := jwt.NewManager("other-secret")

	expired, err := manager.GenerateToken(uuid.New().String(), "", -time.Minute)
	require.NoError(t, err)
	wrongKey, err := otherManager.GenerateToken(uuid.New().String(), "", time.Hour)
	require.NoError(t, err)
	nonUUIDSubject, err := manager.GenerateToken("user-42", "", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc123"},
		{"malformed token", "Bearer not.a.token"},
		{"expired token", "Bearer " + expired},
		{"wrong signing key", "Bearer " + wrongKey},
		{"subject is not a uuid", "Bearer " + nonUUIDSubject},
	}

	r := authTestRouter(manager)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"error": "Unauthorized"}`, w.Body.String())
		})
	}
}
