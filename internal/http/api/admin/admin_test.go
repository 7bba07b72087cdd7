package admin

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/rakibul-dev/teastall/internal/auth"
	"github.com/rakibul-dev/teastall/internal/models"
	"github.com/rakibul-dev/teastall/internal/ratelimit"
	"github.com/rakibul-dev/teastall/internal/security"
)

func setupAdminAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:adminapi_%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, errOpen := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if errOpen != nil {
		t.Fatalf("open db: %v", errOpen)
	}
	errMigrate := db.AutoMigrate(
		&models.Admin{},
		&models.AdminSession{},
		&models.MenuItem{},
		&models.Order{},
		&models.Review{},
		&models.ContactMessage{},
	)
	if errMigrate != nil {
		t.Fatalf("migrate db: %v", errMigrate)
	}

	hash, errHash := security.HashPassword("secret")
	if errHash != nil {
		t.Fatalf("hash password: %v", errHash)
	}
	if errCreate := db.Create(&models.Admin{Username: "admin", PasswordHash: hash}).Error; errCreate != nil {
		t.Fatalf("create admin: %v", errCreate)
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterAdminRoutes(router, db, auth.NewService(db), ratelimit.New(), t.TempDir())
	return router, db
}

func doJSON(router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	responseRecorder := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(responseRecorder, req)
	return responseRecorder
}

func loginAs(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()
	responseRecorder := doJSON(router, http.MethodPost, "/api/admin/login",
		fmt.Sprintf(`{"username":%q,"password":%q}`, username, password), "")
	if responseRecorder.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", responseRecorder.Code, responseRecorder.Body.String())
	}
	var payload struct {
		Token string `json:"token"`
	}
	if errDecode := json.Unmarshal(responseRecorder.Body.Bytes(), &payload); errDecode != nil {
		t.Fatalf("decode login body: %v", errDecode)
	}
	return payload.Token
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	router, _ := setupAdminAPI(t)

	unauthenticated := doJSON(router, http.MethodGet, "/api/orders", "", "")
	if unauthenticated.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", unauthenticated.Code)
	}

	token := loginAs(t, router, "admin", "secret")
	authed := doJSON(router, http.MethodGet, "/api/orders", "", token)
	if authed.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d: %s", authed.Code, authed.Body.String())
	}
}

func TestLogoutInvalidatesToken(t *testing.T) {
	router, _ := setupAdminAPI(t)
	token := loginAs(t, router, "admin", "secret")

	logout := doJSON(router, http.MethodPost, "/api/admin/logout", "", token)
	if logout.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", logout.Code)
	}

	afterLogout := doJSON(router, http.MethodGet, "/api/messages", "", token)
	if afterLogout.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", afterLogout.Code)
	}
}

func TestLoginAttemptsAreThrottled(t *testing.T) {
	router, _ := setupAdminAPI(t)

	for i := 0; i < 5; i++ {
		responseRecorder := doJSON(router, http.MethodPost, "/api/admin/login",
			`{"username":"admin","password":"wrongpass"}`, "")
		if responseRecorder.Code != http.StatusUnauthorized {
			t.Fatalf("attempt %d: expected 401, got %d", i+1, responseRecorder.Code)
		}
	}

	// The 6th attempt in the window is denied even with valid credentials.
	throttled := doJSON(router, http.MethodPost, "/api/admin/login",
		`{"username":"admin","password":"secret"}`, "")
	if throttled.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", throttled.Code)
	}
}

func TestHealthzIsPublic(t *testing.T) {
	router, _ := setupAdminAPI(t)

	responseRecorder := doJSON(router, http.MethodGet, "/healthz", "", "")
	if responseRecorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", responseRecorder.Code)
	}
}
