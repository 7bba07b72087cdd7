package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/rakibul-dev/teastall/internal/models"
)

func TestListAllIncludesUnapprovedReviews(t *testing.T) {
	db := setupAdminTestDB(t)
	seed := []models.Review{
		{Name: "Karim", Role: "Customer", Text: "Best cha in town", Rating: 5, Approved: true},
		{Name: "Anika", Role: "Customer", Text: "Decent singara", Rating: 3, Approved: false},
	}
	for i := range seed {
		if errCreate := db.Create(&seed[i]).Error; errCreate != nil {
			t.Fatalf("seed review: %v", errCreate)
		}
	}

	router := newAdminRouter()
	handler := NewReviewHandler(db)
	router.GET("/api/reviews/all", handler.ListAll)

	responseRecorder := performJSON(t, router, http.MethodGet, "/api/reviews/all", "")
	requireStatus(t, responseRecorder, http.StatusOK)

	var got []models.Review
	if errDecode := json.Unmarshal(responseRecorder.Body.Bytes(), &got); errDecode != nil {
		t.Fatalf("decode body: %v", errDecode)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(got))
	}
}

func TestDeleteReview(t *testing.T) {
	db := setupAdminTestDB(t)
	review := models.Review{Name: "Karim", Role: "Customer", Text: "ok", Rating: 4, Approved: true}
	if errCreate := db.Create(&review).Error; errCreate != nil {
		t.Fatalf("seed review: %v", errCreate)
	}

	router := newAdminRouter()
	handler := NewReviewHandler(db)
	router.DELETE("/api/reviews/:id", handler.Delete)

	responseRecorder := performJSON(t, router, http.MethodDelete, "/api/reviews/1", "")
	requireStatus(t, responseRecorder, http.StatusOK)

	var count int64
	if errCount := db.Model(&models.Review{}).Count(&count).Error; errCount != nil {
		t.Fatalf("count reviews: %v", errCount)
	}
	if count != 0 {
		t.Fatalf("expected 0 reviews after delete, got %d", count)
	}

	invalid := performJSON(t, router, http.MethodDelete, "/api/reviews/abc", "")
	requireStatus(t, invalid, http.StatusBadRequest)
}
