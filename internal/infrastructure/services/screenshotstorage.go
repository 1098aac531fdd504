package services

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"relnotes/internal/shared/constants"
	"relnotes/internal/shared/logger"
)

// Maximum accepted screenshot size (5MB)
const maxScreenshotSize = 5 << 20

// ScreenshotStorage persists note screenshots on the local filesystem
// under <mediaDir>/screenshot/<noteID>/<filename>.
type ScreenshotStorage struct {
	mediaDir string
	logger   logger.Interface
}

// NewScreenshotStorage creates a new screenshot storage service
func NewScreenshotStorage(mediaDir string, log logger.Interface) *ScreenshotStorage {
	return &ScreenshotStorage{
		mediaDir: mediaDir,
		logger:   log,
	}
}

// Save validates and writes the screenshot, returning the path relative
// to the media directory along with the decoded pixel dimensions.
func (s *ScreenshotStorage) Save(noteID uint, filename string, data []byte) (path string, width, height int, err error) {
	if len(data) == 0 {
		return "", 0, 0, fmt.Errorf("screenshot is empty")
	}
	if len(data) > maxScreenshotSize {
		return "", 0, 0, fmt.Errorf("screenshot exceeds maximum size of %d bytes", maxScreenshotSize)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", 0, 0, fmt.Errorf("file is not a recognized image: %w", err)
	}

	filename = sanitizeFilename(filename)
	if filename == "" {
		return "", 0, 0, fmt.Errorf("invalid filename")
	}

	relPath := filepath.Join(constants.ScreenshotDirName, strconv.FormatUint(uint64(noteID), 10), filename)
	absPath := filepath.Join(s.mediaDir, relPath)

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return "", 0, 0, fmt.Errorf("failed to create screenshot directory: %w", err)
	}

	if err := os.WriteFile(absPath, data, 0o644); err != nil {
		return "", 0, 0, fmt.Errorf("failed to write screenshot: %w", err)
	}

	s.logger.Infow("screenshot stored",
		"note_id", noteID, "path", relPath, "width", cfg.Width, "height", cfg.Height)
	return filepath.ToSlash(relPath), cfg.Width, cfg.Height, nil
}

// Remove deletes a previously stored screenshot. A missing file is not
// an error.
func (s *ScreenshotStorage) Remove(relPath string) error {
	if relPath == "" {
		return nil
	}

	absPath := filepath.Join(s.mediaDir, filepath.FromSlash(relPath))
	if err := os.Remove(absPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove screenshot: %w", err)
	}
	return nil
}

// sanitizeFilename strips any path components and rejects hidden files.
func sanitizeFilename(name string) string {
	name = filepath.Base(filepath.ToSlash(name))
	if name == "." || name == ".." || strings.HasPrefix(name, ".") {
		return ""
	}
	return name
}
