package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"homepro/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/me", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString("user_id"),
			"role":    c.GetString("user_role"),
		})
	})
	router.GET("/admin", AuthMiddleware(), AdminMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func doGet(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	userID := uuid.New().String()
	token, err := utils.GenerateToken(userID, "user@example.com", "customer")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	w := doGet(protectedRouter(), "/me", "Bearer "+token)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	w := doGet(protectedRouter(), "/me", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareBadHeaderFormat(t *testing.T) {
	for _, header := range []string{"Bearer", "Bearer ", "Basic abc123", "token-with-no-scheme"} {
		w := doGet(protectedRouter(), "/me", header)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, w.Code)
		}
	}
}

func TestAuthMiddlewareBadToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	w := doGet(protectedRouter(), "/me", "Bearer not-a-real-token")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareTokenWithoutUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	claims := utils.Claims{
		Email: "ghost@example.com",
		Role:  "customer",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	w := doGet(protectedRouter(), "/me", "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAdminMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	customer, err := utils.GenerateToken(uuid.New().String(), "user@example.com", "customer")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	admin, err := utils.GenerateToken(uuid.New().String(), "admin@example.com", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	router := protectedRouter()

	if w := doGet(router, "/admin", "Bearer "+customer); w.Code != http.StatusForbidden {
		t.Errorf("customer on admin route: status = %d, want 403", w.Code)
	}
	if w := doGet(router, "/admin", "Bearer "+admin); w.Code != http.StatusOK {
		t.Errorf("admin on admin route: status = %d, want 200", w.Code)
	}
}
