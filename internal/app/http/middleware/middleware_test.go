package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"canvas-app/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeMiddlewareStripsMarkup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SanitizeAndCleanInputMiddleware())
	r.POST("/echo", func(c *gin.Context) {
		var body map[string]any
		require.NoError(t, c.ShouldBindJSON(&body))
		c.JSON(http.StatusOK, body)
	})

	req := httptest.NewRequest(http.MethodPost, "/echo",
		strings.NewReader(`{"name":"<script>alert(1)</script>Jo","age":30}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "Jo", out["name"])
	assert.Equal(t, float64(30), out["age"])
}

func TestSanitizeMiddlewareRejectsMalformedJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SanitizeAndCleanInputMiddleware())
	r.POST("/echo", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{broken`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthMiddlewareExtractsClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.JWT_SECRET = "test-secret"

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "6b2d5c6a-7f9e-4c1b-9a3d-0f1e2d3c4b5a",
		"email":   "jo@example.com",
		"role":    "user",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(config.JWT_SECRET))
	require.NoError(t, err)

	r := gin.New()
	r.Use(AuthMiddleware())
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString("user_id"),
			"role":    c.GetString("role"),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var out map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "6b2d5c6a-7f9e-4c1b-9a3d-0f1e2d3c4b5a", out["user_id"])
	assert.Equal(t, "user", out["role"])
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.JWT_SECRET = "test-secret"

	r := gin.New()
	r.Use(AuthMiddleware())
	r.GET("/whoami", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/admin", func(c *gin.Context) { c.Set("role", "user"); c.Next() }, RequireRole("admin"),
		func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}
