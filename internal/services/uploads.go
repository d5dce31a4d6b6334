package services

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// SaveUpload streams a multipart file to disk under a uuid storage key and
// returns its public URL. The original extension is kept so signage players
// can tell the media type from the URL alone.
func SaveUpload(basePath, filename string, body io.Reader) (string, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return "", err
	}
	key := uuid.NewString()
	if ext := sanitizeExt(filepath.Ext(filename)); ext != "" {
		key += ext
	}
	targetPath := filepath.Join(basePath, key)

	file, err := os.Create(targetPath)
	if err != nil {
		return "", err
	}
	size, err := io.Copy(file, body)
	_ = file.Close()
	if err != nil {
		_ = os.Remove(targetPath)
		return "", err
	}
	if size == 0 {
		_ = os.Remove(targetPath)
		return "", ErrBadRequest("Uploaded file is empty")
	}
	return BuildUploadURL(key), nil
}

func BuildUploadURL(key string) string {
	return "/uploads/" + key
}

func sanitizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if len(ext) < 2 || len(ext) > 8 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
