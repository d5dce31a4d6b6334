package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveUpload(t *testing.T) {
	dir := t.TempDir()

	url, err := SaveUpload(dir, "poster.PNG", strings.NewReader("fake image bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	key := strings.TrimPrefix(url, "/uploads/")
	content, err := os.ReadFile(filepath.Join(dir, key))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(content))
}

func TestSaveUpload_EmptyFile(t *testing.T) {
	dir := t.TempDir()

	_, err := SaveUpload(dir, "empty.mp4", strings.NewReader(""))
	require.Error(t, err)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "empty upload should leave nothing behind")
}

func TestSaveUpload_StrangeExtensionDropped(t *testing.T) {
	dir := t.TempDir()

	url, err := SaveUpload(dir, "weird.‮‭png!", strings.NewReader("data"))
	require.NoError(t, err)

	key := strings.TrimPrefix(url, "/uploads/")
	assert.NotContains(t, key, ".")
}

func TestSanitizeExt(t *testing.T) {
	tcases := []struct {
		ext  string
		want string
	}{
		{".png", ".png"},
		{".MP4", ".mp4"},
		{".jpeg", ".jpeg"},
		{"", ""},
		{".", ""},
		{".a-b", ""},
		{".waytoolongext", ""},
	}
	for _, tc := range tcases {
		assert.Equal(t, tc.want, sanitizeExt(tc.ext), "ext=%q", tc.ext)
	}
}
