package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/dheerendra45/news-analyzer/domain"
)

// UploadService stores admin-uploaded images and PDFs under the configured
// upload directory and returns the public URL path they are served from.
type UploadService struct {
	dir         string
	maxFileSize int64
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// NewUploadService creates an upload service and ensures the target
// directories exist.
func NewUploadService(dir string, maxFileSize int64) (*UploadService, error) {
	for _, sub := range []string{"images", "pdfs"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create upload directory: %w", err)
		}
	}
	return &UploadService{dir: dir, maxFileSize: maxFileSize}, nil
}

// SaveImage validates and stores an uploaded image, returning its URL path.
func (s *UploadService) SaveImage(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !imageExtensions[ext] {
		return "", domain.ErrUnsupportedFileType
	}
	return s.save(file, "images", ext)
}

// SavePDF validates and stores an uploaded PDF, returning its URL path.
func (s *UploadService) SavePDF(file *multipart.FileHeader) (string, error) {
	if strings.ToLower(filepath.Ext(file.Filename)) != ".pdf" {
		return "", domain.ErrUnsupportedFileType
	}
	return s.save(file, "pdfs", ".pdf")
}

func (s *UploadService) save(file *multipart.FileHeader, sub, ext string) (string, error) {
	if file.Size > s.maxFileSize {
		return "", domain.ErrFileTooLarge
	}

	name, err := randomFilename(ext)
	if err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, sub, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return "/uploads/" + sub + "/" + name, nil
}

func randomFilename(ext string) (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes) + ext, nil
}
