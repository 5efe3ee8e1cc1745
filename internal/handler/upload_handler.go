package handler

import (
	"fmt"
	"image"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	_ "golang.org/x/image/webp"
)

// UploadFile stores a multipart image under a collision-free name and
// returns the public path the caller should save on the owning record.
func (a *API) UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		// Older admin builds posted the field as "image".
		file, err = c.FormFile("image")
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded", "success": false})
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only image uploads are allowed", "success": false})
		return
	}

	if err := os.MkdirAll(a.uploadDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create upload directory", "success": false})
		return
	}

	ext := filepath.Ext(file.Filename)
	newFilename := fmt.Sprintf("%s-%s%s", time.Now().Format("20060102"), uuid.New().String(), ext)
	filePath := filepath.Join(a.uploadDir, newFilename)

	if err := c.SaveUploadedFile(file, filePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "success": false})
		return
	}

	width, height := probeImageSize(filePath)
	fileURL := strings.TrimRight(a.uploadURL, "/") + "/" + newFilename

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"filePath":     fileURL,
		"url":          fileURL,
		"filename":     newFilename,
		"originalName": file.Filename,
		"size":         file.Size,
		"width":        width,
		"height":       height,
	})
}

// probeImageSize reports the pixel dimensions of a stored image, or zeros
// when the format is not decodable (webp is handled via x/image).
func probeImageSize(path string) (int, int) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0
	}
	return cfg.Width, cfg.Height
}
