package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ruteri/wallet-provisioning-backend/interfaces"
)

// FileStore implements a contract store on the local file system. Objects are
// plain files under a base directory, named by the caller.
type FileStore struct {
	baseDir     string
	log         *slog.Logger
	locationURI string
}

// NewFileStore creates a file-backed contract store rooted at baseDir,
// creating the directory if it does not exist.
func NewFileStore(baseDir string, log *slog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}

	return &FileStore{
		baseDir:     baseDir,
		log:         log,
		locationURI: fmt.Sprintf("file://%s", baseDir),
	}, nil
}

// objectPath resolves a name inside the base directory, rejecting names that
// would escape it.
func (s *FileStore) objectPath(name string) (string, error) {
	cleaned := filepath.Clean(name)
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("invalid object name %q", name)
	}
	return filepath.Join(s.baseDir, cleaned), nil
}

// Fetch reads the named object. Returns ErrObjectNotFound if the file does
// not exist.
func (s *FileStore) Fetch(ctx context.Context, name string) ([]byte, error) {
	path, err := s.objectPath(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, interfaces.ErrObjectNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to read object file: %w", err)
	}

	s.log.Debug("Fetched object from file store",
		slog.String("path", path),
		slog.Int("size", len(data)))
	return data, nil
}

// Store writes the named object, creating parent directories as needed.
func (s *FileStore) Store(ctx context.Context, name string, data []byte) (string, error) {
	path, err := s.objectPath(name)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create object directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write object file: %w", err)
	}

	s.log.Debug("Stored object in file store",
		slog.String("path", path),
		slog.Int("size", len(data)))
	return name, nil
}

// Available checks that the base directory exists.
func (s *FileStore) Available(ctx context.Context) bool {
	_, err := os.Stat(s.baseDir)
	if err != nil {
		s.log.Debug("File store unavailable", "err", err)
		return false
	}
	return true
}

// Name returns a unique identifier for this store.
func (s *FileStore) Name() string {
	return fmt.Sprintf("file-%s", filepath.Base(s.baseDir))
}

// LocationURI returns the URI that identifies this store.
func (s *FileStore) LocationURI() string {
	return s.locationURI
}
