package handlers

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestUploadStoresDecodedImage(t *testing.T) {
	dir := t.TempDir()
	h := NewUploadHandler(filepath.Join(dir, "images"))

	router := newAdminRouter()
	router.POST("/api/upload", h.Create)

	payload := base64.StdEncoding.EncodeToString([]byte("not-really-a-png"))
	responseRecorder := performJSON(t, router, http.MethodPost, "/api/upload",
		fmt.Sprintf(`{"image":"data:image/png;base64,%s","filename":"tea.png"}`, payload))
	requireStatus(t, responseRecorder, http.StatusOK)

	var body struct {
		URL string `json:"url"`
	}
	if errDecode := json.Unmarshal(responseRecorder.Body.Bytes(), &body); errDecode != nil {
		t.Fatalf("decode body: %v", errDecode)
	}
	if !strings.HasPrefix(body.URL, "/images/") || !strings.HasSuffix(body.URL, ".png") {
		t.Fatalf("unexpected url %q", body.URL)
	}

	stored := filepath.Join(dir, "images", strings.TrimPrefix(body.URL, "/images/"))
	data, errRead := os.ReadFile(stored)
	if errRead != nil {
		t.Fatalf("read stored file: %v", errRead)
	}
	if string(data) != "not-really-a-png" {
		t.Fatalf("stored bytes mismatch: %q", data)
	}
}

func TestUploadValidation(t *testing.T) {
	h := NewUploadHandler(t.TempDir())
	router := newAdminRouter()
	router.POST("/api/upload", h.Create)

	cases := []struct {
		name string
		body string
	}{
		{"missing filename", `{"image":"aGVsbG8="}`},
		{"missing image", `{"filename":"tea.png"}`},
		{"bad extension", `{"image":"aGVsbG8=","filename":"evil.exe"}`},
		{"no extension", `{"image":"aGVsbG8=","filename":"tea"}`},
		{"not base64", `{"image":"***","filename":"tea.png"}`},
	}
	for _, tc := range cases {
		responseRecorder := performJSON(t, router, http.MethodPost, "/api/upload", tc.body)
		if responseRecorder.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", tc.name, responseRecorder.Code)
		}
	}
}
