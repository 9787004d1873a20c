// Package media implements uploading and listing of images and videos.
package media

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/op/go-logging"

	"github.com/mediabox/service/internal/storage"
)

// UploadInput is a single file received from a client.
type UploadInput struct {
	File        io.Reader
	Filename    string
	Size        int64
	ContentType string
	Folder      string
}

// UploadResult describes a stored upload.
type UploadResult struct {
	Filename         string `json:"filename"          example:"0b6f3c3e-5d0e-4d8c-9d57-2f5a3c1f4e2b.jpg"`
	StoragePath      string `json:"storage_path"      example:"images/0b6f3c3e-5d0e-4d8c-9d57-2f5a3c1f4e2b.jpg"`
	OriginalFilename string `json:"original_filename" example:"holiday.jpg"`
	Size             int64  `json:"size"              example:"204800"`
	ContentType      string `json:"content_type"      example:"image/jpeg"`
	URL              string `json:"url"`
}

// FileInfo describes a stored object in the file listing.
type FileInfo struct {
	Name        string     `json:"name"         example:"images/0b6f3c3e-5d0e-4d8c-9d57-2f5a3c1f4e2b.jpg"`
	Size        int64      `json:"size"         example:"204800"`
	ContentType string     `json:"content_type" example:"image/jpeg"`
	Created     *time.Time `json:"created"`
	Updated     *time.Time `json:"updated"`
}

// Options tunes upload limits.
type Options struct {
	MaxFileSize  int64
	SignedURLTTL time.Duration
}

// Service contains the upload and listing logic.
type Service struct {
	store storage.Storage
	opts  Options
	log   *logging.Logger
}

// NewService creates a new media Service.
func NewService(store storage.Storage, opts Options, log *logging.Logger) *Service {
	return &Service{store: store, opts: opts, log: log}
}

// MaxFileSize returns the configured upload ceiling in bytes.
func (s *Service) MaxFileSize() int64 {
	return s.opts.MaxFileSize
}

// Upload validates in, stores it under a fresh unique name and returns a
// signed URL for it. Validation failures are *ValidationError.
func (s *Service) Upload(ctx context.Context, in UploadInput) (*UploadResult, error) {
	if in.File == nil {
		return nil, errNoFile
	}
	if in.Filename == "" {
		return nil, errNoFileSelected
	}
	if !AllowedFile(in.Filename) {
		return nil, errFileType
	}
	if err := CheckSize(in.Size, s.opts.MaxFileSize); err != nil {
		return nil, err
	}
	folder, err := NormaliseFolder(in.Folder)
	if err != nil {
		return nil, err
	}

	ext := Extension(in.Filename)
	name := UniqueName(ext)
	key := StoragePath(folder, name)
	contentType := contentTypeFor(in.ContentType, ext)

	original := SanitizeFilename(in.Filename)

	if err := s.store.Upload(ctx, key, in.File, in.Size, contentType); err != nil {
		return nil, fmt.Errorf("upload %s: %w", key, err)
	}

	url, err := s.store.SignedURL(ctx, key, s.opts.SignedURLTTL)
	if err != nil {
		return nil, fmt.Errorf("sign %s: %w", key, err)
	}

	s.log.Infof("stored %s as %s (%d bytes)", original, key, in.Size)

	return &UploadResult{
		Filename:         name,
		StoragePath:      key,
		OriginalFilename: original,
		Size:             in.Size,
		ContentType:      contentType,
		URL:              url,
	}, nil
}

// List returns every stored file.
func (s *Service) List(ctx context.Context) ([]FileInfo, error) {
	objects, err := s.store.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}

	files := make([]FileInfo, 0, len(objects))
	for _, obj := range objects {
		files = append(files, FileInfo{
			Name:        obj.Key,
			Size:        obj.Size,
			ContentType: contentTypeFor(obj.ContentType, Extension(obj.Key)),
			Created:     timeOrNil(obj.Created),
			Updated:     timeOrNil(obj.Updated),
		})
	}
	return files, nil
}

func timeOrNil(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	t = t.UTC()
	return &t
}
