package handlers

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/rakibul-dev/teastall/internal/models"
	"github.com/rakibul-dev/teastall/internal/security"
)

func setupAdminTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:admin_%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
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
	return db
}

func seedAdmin(t *testing.T, db *gorm.DB, username, password string) models.Admin {
	t.Helper()
	hash, errHash := security.HashPassword(password)
	if errHash != nil {
		t.Fatalf("hash password: %v", errHash)
	}
	admin := models.Admin{Username: username, PasswordHash: hash}
	if errCreate := db.Create(&admin).Error; errCreate != nil {
		t.Fatalf("create admin: %v", errCreate)
	}
	return admin
}

func newAdminRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func performJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	responseRecorder := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(responseRecorder, req)
	return responseRecorder
}

func requireStatus(t *testing.T, responseRecorder *httptest.ResponseRecorder, want int) {
	t.Helper()
	if responseRecorder.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, responseRecorder.Code, responseRecorder.Body.String())
	}
}
