package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rakibul-dev/teastall/internal/models"
	"github.com/rakibul-dev/teastall/internal/util"
)

// ReviewHandler serves approved reviews and accepts new submissions.
type ReviewHandler struct {
	db *gorm.DB
}

// NewReviewHandler wires a review handler with its database dependency.
func NewReviewHandler(db *gorm.DB) *ReviewHandler {
	return &ReviewHandler{db: db}
}

// List returns approved reviews, newest first.
func (h *ReviewHandler) List(c *gin.Context) {
	var reviews []models.Review
	errFind := h.db.WithContext(c.Request.Context()).
		Where("approved = ?", true).
		Order("created_at DESC").
		Find(&reviews).Error
	if errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// createReviewRequest defines the request body for submitting a review.
type createReviewRequest struct {
	Name   string `json:"name"`
	Rating *int   `json:"rating"`
	Text   string `json:"text"`
	Role   string `json:"role"`
}

// Create validates and stores a customer review.
func (h *ReviewHandler) Create(c *gin.Context) {
	var body createReviewRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	name := util.Truncate(body.Name, 100)
	text := util.Truncate(body.Text, 500)
	if name == "" || text == "" || body.Rating == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, rating, and review text are required"})
		return
	}
	if *body.Rating < 1 || *body.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
		return
	}

	role := util.Truncate(body.Role, 50)
	if role == "" {
		role = "Customer"
	}

	review := models.Review{
		Name:     name,
		Rating:   *body.Rating,
		Text:     text,
		Role:     role,
		Avatar:   fmt.Sprintf("https://picsum.photos/seed/%d/100/100", time.Now().UnixMilli()),
		Approved: true,
	}
	if errCreate := h.db.WithContext(c.Request.Context()).Create(&review).Error; errCreate != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit review"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": review.ID})
}
