package db

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidName is returned for document names pointing outside of the root
var ErrInvalidName = errors.New("invalid document name")

// FileStorage keeps documents as files under root directory, e.g. an Obsidian vault
type FileStorage struct {
	root string
}

func (s *FileStorage) path(name string) (string, error) {
	path := filepath.Join(s.root, name)
	rel, err := filepath.Rel(s.root, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return path, nil
}

// Read returns file contents
func (s *FileStorage) Read(name string) (string, error) {
	path, err := s.path(name)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("read document: %w", err)
	}
	return string(data), nil
}

// Write truncates existing file and writes text
func (s *FileStorage) Write(name string, text string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("open document: %w", err)
	}
	return writeAndClose(f, text)
}

// Create creates file together with missing parent directories
func (s *FileStorage) Create(name string, text string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create document directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("create document: %w", err)
	}
	return writeAndClose(f, text)
}

func writeAndClose(f *os.File, text string) error {
	if _, err := f.WriteString(text); err != nil {
		f.Close()
		return fmt.Errorf("write document: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close document: %w", err)
	}
	return nil
}

// NewFileStorage creates storage rooted at existing directory
func NewFileStorage(root string) (*FileStorage, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %s is not a directory", abs)
	}
	return &FileStorage{root: abs}, nil
}
