package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

// Content types of the exported documents.
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var ErrInvalidName = errors.New("storage: document name must be a plain file name")

// DocumentSink delivers an exported document under its fixed file name.
type DocumentSink interface {
	// Save stores data as name and returns where the user can fetch it:
	// a file path for local sinks, a time-limited URL for object storage.
	Save(ctx context.Context, name, contentType string, data []byte) (string, error)
}

// dirSink writes documents into a local directory.
type dirSink struct {
	dir string
}

// NewDirSink creates a sink writing into dir, created on first use.
func NewDirSink(dir string) DocumentSink {
	return &dirSink{dir: dir}
}

func (s *dirSink) Save(_ context.Context, name, _ string, data []byte) (string, error) {
	if name == "" || filepath.Base(name) != name {
		return "", ErrInvalidName
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	path := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(s.dir, "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("replace %s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	log.Printf("INFO: Saved %s (%d bytes)", abs, len(data))
	return abs, nil
}
