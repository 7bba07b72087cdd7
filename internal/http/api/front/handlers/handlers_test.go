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
)

func setupFrontTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:front_%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, errOpen := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if errOpen != nil {
		t.Fatalf("open db: %v", errOpen)
	}
	errMigrate := db.AutoMigrate(
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

func performJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	responseRecorder := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(responseRecorder, req)
	return responseRecorder
}

func newFrontRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func requireStatus(t *testing.T, responseRecorder *httptest.ResponseRecorder, want int) {
	t.Helper()
	if responseRecorder.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, responseRecorder.Code, responseRecorder.Body.String())
	}
}
