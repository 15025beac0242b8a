package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/dheerendra45/news-analyzer/domain"
	"github.com/dheerendra45/news-analyzer/internal/mocks"
)

func adminClaims() *domain.TokenClaims {
	return &domain.TokenClaims{
		UserID: "64a1f0d2e5b3c6a7d8e9f001",
		Email:  "ops@replaceable.ai",
		Role:   domain.RoleAdmin,
	}
}

func userClaims() *domain.TokenClaims {
	c := adminClaims()
	c.Email = "reader@example.com"
	c.Role = domain.RoleUser
	return c
}

func newTestRouter(tokenSvc *mocks.MockTokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := NewAuthMW(tokenSvc)

	r := gin.New()
	r.GET("/protected", mw.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(CtxUserID)})
	})
	r.GET("/admin", mw.RequireAuth(), mw.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/public", mw.OptionalAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"admin": IsAdmin(c)})
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		verify         func(token string) (*domain.TokenClaims, error)
		expectedStatus int
	}{
		{
			name:           "valid token",
			authHeader:     "Bearer good-token",
			verify:         func(token string) (*domain.TokenClaims, error) { return userClaims(), nil },
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing header",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong scheme",
			authHeader:     "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired token",
			authHeader:     "Bearer stale-token",
			verify:         func(token string) (*domain.TokenClaims, error) { return nil, domain.ErrTokenExpired },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "tampered token",
			authHeader:     "Bearer bad-token",
			verify:         func(token string) (*domain.TokenClaims, error) { return nil, domain.ErrTokenInvalid },
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mocks.NewMockTokenService()
			tokenSvc.VerifyFunc = tt.verify
			w := doRequest(newTestRouter(tokenSvc), tt.authHeader, "/protected")

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusUnauthorized {
				// Every rejection must look identical to the caller.
				assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
				assert.JSONEq(t, `{"error":"Could not validate credentials"}`, w.Body.String())
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	t.Run("admin token passes", func(t *testing.T) {
		tokenSvc := mocks.NewMockTokenService()
		tokenSvc.VerifyFunc = func(token string) (*domain.TokenClaims, error) { return adminClaims(), nil }

		w := doRequest(newTestRouter(tokenSvc), "Bearer admin-token", "/admin")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("user token is forbidden", func(t *testing.T) {
		tokenSvc := mocks.NewMockTokenService()
		tokenSvc.VerifyFunc = func(token string) (*domain.TokenClaims, error) { return userClaims(), nil }

		w := doRequest(newTestRouter(tokenSvc), "Bearer user-token", "/admin")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"error":"Admin access required"}`, w.Body.String())
	})

	t.Run("anonymous is unauthorized before the admin check", func(t *testing.T) {
		w := doRequest(newTestRouter(mocks.NewMockTokenService()), "", "/admin")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestOptionalAuth(t *testing.T) {
	t.Run("anonymous passes without claims", func(t *testing.T) {
		w := doRequest(newTestRouter(mocks.NewMockTokenService()), "", "/public")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"admin":false}`, w.Body.String())
	})

	t.Run("invalid token is ignored, not rejected", func(t *testing.T) {
		tokenSvc := mocks.NewMockTokenService()
		tokenSvc.VerifyFunc = func(token string) (*domain.TokenClaims, error) { return nil, domain.ErrTokenInvalid }

		w := doRequest(newTestRouter(tokenSvc), "Bearer junk", "/public")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"admin":false}`, w.Body.String())
	})

	t.Run("admin token is surfaced", func(t *testing.T) {
		tokenSvc := mocks.NewMockTokenService()
		tokenSvc.VerifyFunc = func(token string) (*domain.TokenClaims, error) { return adminClaims(), nil }

		w := doRequest(newTestRouter(tokenSvc), "Bearer admin-token", "/public")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"admin":true}`, w.Body.String())
	})
}
