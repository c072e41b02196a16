package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/E-man85/portfolio-api/internal/config"
)

func resumeConfig(path string) *config.Config {
	return &config.Config{
		Resume: config.Resume{
			Path:      path,
			FileName:  "Emanuel_Gomes_CV.pdf",
			PublicURL: "https://example.com/cv.pdf",
		},
	}
}

func TestFileResumeRepository_Get(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cv.pdf")
	content := []byte("%PDF-1.7 conteúdo de teste")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	repo := NewResumeRepository(resumeConfig(path))

	resume, err := repo.Get()
	require.NoError(t, err)

	assert.True(t, resume.Available)
	assert.Equal(t, "Emanuel_Gomes_CV.pdf", resume.FileName)
	assert.Equal(t, int64(len(content)), resume.SizeBytes)
	assert.Equal(t, content, resume.Content)
}

func TestFileResumeRepository_Get_MissingFile(t *testing.T) {
	repo := NewResumeRepository(resumeConfig(filepath.Join(t.TempDir(), "missing.pdf")))

	resume, err := repo.Get()
	require.NoError(t, err)

	assert.False(t, resume.Available)
	assert.Empty(t, resume.Content)
	assert.Equal(t, "https://example.com/cv.pdf", resume.PublicURL)
}
