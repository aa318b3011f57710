package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// LogoStore persists optimized organization logos and returns the URL they are served from
type LogoStore interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
}

// LocalLogoStore keeps logos on disk; the router serves the directory under /logos/
type LocalLogoStore struct {
	dir string
}

// NewLocalLogoStore creates the cache directory if needed
func NewLocalLogoStore(dir string) (*LocalLogoStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logo directory: %w", err)
	}
	return &LocalLogoStore{dir: dir}, nil
}

// Ensure LocalLogoStore implements LogoStore
var _ LogoStore = (*LocalLogoStore)(nil)

// Dir returns the directory logos are written to
func (s *LocalLogoStore) Dir() string {
	return s.dir
}

// Save writes data as dir/name, replacing any previous logo with the same name
func (s *LocalLogoStore) Save(ctx context.Context, name string, data []byte) (string, error) {
	name = filepath.Base(name)
	if name == "." || name == "/" || strings.HasPrefix(name, "..") {
		return "", fmt.Errorf("invalid logo name %q", name)
	}

	filePath := filepath.Join(s.dir, name)
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		log.Printf("❌ Failed to save logo %s: %v", filePath, err)
		return "", fmt.Errorf("failed to save logo: %w", err)
	}

	log.Printf("✓ Saved logo to %s (%d bytes)", filePath, len(data))
	return "/logos/" + name, nil
}
