package services

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageService(t *testing.T) {
	s := NewStorageService(t.TempDir())
	require.NoError(t, s.EnsureUploadDir())

	t.Run("saves supported documents under a unique name", func(t *testing.T) {
		filename, filePath, err := s.SaveDocument("resume.pdf", []byte("%PDF-1.4"))
		require.NoError(t, err)
		assert.NotEqual(t, "resume.pdf", filename)
		assert.FileExists(t, filePath)

		data, err := os.ReadFile(filePath)
		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF-1.4"), data)

		require.NoError(t, s.DeleteFile(filename))
		assert.NoFileExists(t, filePath)
	})

	t.Run("rejects unsupported extensions", func(t *testing.T) {
		_, _, err := s.SaveDocument("resume.exe", []byte("nope"))
		assert.Error(t, err)
	})
}
