package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/staffhive/erp-backend-go/internal/pkg/storage"
)

type FileService interface {
	// Employee document uploads
	UploadDocument(ctx context.Context, employeeID int64, file io.Reader, filename string) (string, error)

	// Leave attachment uploads
	UploadLeaveAttachment(ctx context.Context, employeeID int64, file io.Reader, filename string) (string, error)

	// Candidate resume uploads
	UploadResume(ctx context.Context, candidateID int64, file io.Reader, filename string) (string, error)

	// Generic operations
	DeleteFile(ctx context.Context, path string) error
	GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{storage: storage}
}

var documentExts = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

func contentTypeFor(filename string) (string, string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	ct, ok := documentExts[ext]
	if !ok {
		return "", "", fmt.Errorf("invalid file type %q: only pdf, doc, docx, jpg, jpeg, png allowed", ext)
	}
	return ext, ct, nil
}

func (s *fileServiceImpl) upload(ctx context.Context, dir string, ownerID int64, file io.Reader, filename string) (string, error) {
	ext, contentType, err := contentTypeFor(filename)
	if err != nil {
		return "", err
	}

	newFilename := fmt.Sprintf("%d-%s%s", ownerID, uuid.New().String(), ext)
	path := filepath.Join(dir, fmt.Sprintf("%d", ownerID), newFilename)

	uploadedPath, err := s.storage.Upload(ctx, file, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	return uploadedPath, nil
}

func (s *fileServiceImpl) UploadDocument(ctx context.Context, employeeID int64, file io.Reader, filename string) (string, error) {
	return s.upload(ctx, "documents", employeeID, file, filename)
}

func (s *fileServiceImpl) UploadLeaveAttachment(ctx context.Context, employeeID int64, file io.Reader, filename string) (string, error) {
	return s.upload(ctx, "leave-attachments", employeeID, file, filename)
}

func (s *fileServiceImpl) UploadResume(ctx context.Context, candidateID int64, file io.Reader, filename string) (string, error) {
	return s.upload(ctx, "resumes", candidateID, file, filename)
}

func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

func (s *fileServiceImpl) GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return s.storage.GetURL(ctx, path, expiry)
}
