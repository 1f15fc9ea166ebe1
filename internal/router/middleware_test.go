package router

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/littlelemon-next/internal/authz"
	"github.com/littlelemon-next/internal/config"
	"github.com/littlelemon-next/internal/constants"
	"github.com/littlelemon-next/internal/models"
	"github.com/littlelemon-next/internal/repository"
	"github.com/littlelemon-next/internal/throttle"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const testSecret = "router-middleware-test-secret"

func newMiddlewareTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Group{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func signTestToken(t *testing.T, userID uint) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token failed: %v", err)
	}
	return signed
}

func newAuthTestRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware(testSecret, repository.NewUserRepository(db)))
	r.GET("/me", func(c *gin.Context) {
		user := GetCurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"username": user.Username, "role": string(user.Role)})
	})
	return r
}

func TestAuthMiddlewareMissingCredentials(t *testing.T) {
	db := newMiddlewareTestDB(t)
	r := newAuthTestRouter(t, db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status want 401 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Authentication credentials were not provided.") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	db := newMiddlewareTestDB(t)
	r := newAuthTestRouter(t, db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status want 401 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid token.") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestAuthMiddlewareLoadsUserAndRole(t *testing.T) {
	db := newMiddlewareTestDB(t)
	group := models.Group{Name: constants.GroupManager}
	if err := db.Create(&group).Error; err != nil {
		t.Fatalf("create group failed: %v", err)
	}
	user := models.User{Username: "mario", Email: "mario@littlelemon.dev", Groups: []models.Group{group}}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	r := newAuthTestRouter(t, db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, user.ID))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"role":"manager"`) {
		t.Fatalf("expected manager role, got %s", w.Body.String())
	}
}

func TestAuthMiddlewareUnknownUser(t *testing.T) {
	db := newMiddlewareTestDB(t)
	r := newAuthTestRouter(t, db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, 404))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status want 401 got %d", w.Code)
	}
}

func setCurrentUser(user *authz.CurrentUser) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(currentUserKey, user)
		c.Next()
	}
}

func TestThrottleMiddlewareLimitsByRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := throttle.NewLimiter(throttle.NewMemoryHistoryStore())
	cfg := config.ThrottleConfig{
		Enabled: true,
		Rates:   map[string]string{constants.ThrottleGroupDefault: "1/min"},
	}

	r := gin.New()
	r.Use(setCurrentUser(&authz.CurrentUser{ID: 1, Username: "adrian", Role: authz.RoleCustomer}))
	r.Use(ThrottleMiddleware(limiter, cfg))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("first request want 200 got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request want 429 got %d", w.Code)
	}
	// 窗口 60s 内第二次请求，剩余秒数向下取整为 59
	if !strings.Contains(w.Body.String(), "Request limit exceeded. Try again in 59 seconds.") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestThrottleMiddlewareSkipsAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := throttle.NewLimiter(throttle.NewMemoryHistoryStore())
	cfg := config.ThrottleConfig{
		Enabled: true,
		Rates:   map[string]string{constants.ThrottleGroupDefault: "1/min"},
	}

	r := gin.New()
	r.Use(ThrottleMiddleware(limiter, cfg))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("anonymous request %d want 200 got %d", i, w.Code)
		}
	}
}

func TestEnforceMiddlewareWithoutUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(EnforceMiddleware(nil))
	r.GET("/orders", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status want 401 got %d", w.Code)
	}
}
