package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FSStore keeps objects as flat files under one root directory. Locations
// are "fs://<name>" with the name generated at store time.
type FSStore struct {
	root   string
	logger *slog.Logger
}

func NewFSStore(root string, logger *slog.Logger) (*FSStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	return &FSStore{root: root, logger: logger}, nil
}

func (s *FSStore) Store(_ context.Context, data []byte) (string, error) {
	name := uuid.New().String()
	path := filepath.Join(s.root, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("store object: %w", err)
	}
	s.logger.Debug("object stored", "name", name, "bytes", len(data))
	return "fs://" + name, nil
}

func (s *FSStore) Fetch(_ context.Context, location string) ([]byte, error) {
	name, err := s.objectName(location)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(filepath.Join(s.root, name))
}

func (s *FSStore) Delete(_ context.Context, location string) error {
	name, err := s.objectName(location)
	if err != nil {
		return err
	}
	return os.Remove(filepath.Join(s.root, name))
}

// objectName validates the location to keep path traversal out of the root.
func (s *FSStore) objectName(location string) (string, error) {
	name, ok := strings.CutPrefix(location, "fs://")
	if !ok || name == "" || strings.ContainsAny(name, "/\\") {
		return "", fmt.Errorf("invalid fs location %q", location)
	}
	return name, nil
}
