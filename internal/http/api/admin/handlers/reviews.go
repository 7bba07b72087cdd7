package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rakibul-dev/teastall/internal/models"
)

// ReviewHandler handles admin operations on reviews.
type ReviewHandler struct {
	db *gorm.DB
}

// NewReviewHandler wires a review admin handler with its database dependency.
func NewReviewHandler(db *gorm.DB) *ReviewHandler {
	return &ReviewHandler{db: db}
}

// ListAll returns every review, approved or not, newest first.
func (h *ReviewHandler) ListAll(c *gin.Context) {
	var reviews []models.Review
	errFind := h.db.WithContext(c.Request.Context()).
		Order("created_at DESC").
		Find(&reviews).Error
	if errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// Delete removes a review.
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, errID := parseID(c.Param("id"))
	if errID != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	if errDelete := h.db.WithContext(c.Request.Context()).Delete(&models.Review{}, id).Error; errDelete != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
