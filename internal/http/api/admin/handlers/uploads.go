package handlers

import (
	"encoding/base64"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// allowedImageExtensions whitelists upload file types.
var allowedImageExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"gif":  {},
	"webp": {},
}

// maxUploadBytes caps the decoded upload size.
const maxUploadBytes = 5 << 20 // 5 MB

// UploadHandler stores base64-encoded menu images on disk.
type UploadHandler struct {
	dir string // Destination directory for uploaded images.
}

// NewUploadHandler wires an upload handler for the given directory.
func NewUploadHandler(dir string) *UploadHandler {
	return &UploadHandler{dir: dir}
}

// uploadRequest defines the request body for an image upload. Image is raw
// base64 or a data URL.
type uploadRequest struct {
	Image    string `json:"image"`
	Filename string `json:"filename"`
}

// Create decodes and stores an uploaded image under a generated name, and
// returns the URL it will be served from.
func (h *UploadHandler) Create(c *gin.Context) {
	var body uploadRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if body.Image == "" || body.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image data and filename required"})
		return
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(body.Filename), "."))
	if _, ok := allowedImageExtensions[ext]; !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type. Allowed: jpg, jpeg, png, gif, webp"})
		return
	}

	encoded := body.Image
	if strings.HasPrefix(encoded, "data:") {
		_, after, found := strings.Cut(encoded, ",")
		if !found {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image data"})
			return
		}
		encoded = after
	}
	data, errDecode := base64.StdEncoding.DecodeString(encoded)
	if errDecode != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image data"})
		return
	}
	if len(data) == 0 || len(data) > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image data"})
		return
	}

	if errMkdir := os.MkdirAll(h.dir, 0755); errMkdir != nil {
		log.WithError(errMkdir).Error("create upload dir failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	name := uuid.NewString() + "." + ext
	if errWrite := os.WriteFile(filepath.Join(h.dir, name), data, 0644); errWrite != nil {
		log.WithError(errWrite).Error("write upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "url": "/images/" + name})
}
