package db

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when document does not exist
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when creating a document that exists
	ErrAlreadyExists = errors.New("already exists")
)

// Storage defines operations on named text documents
type Storage interface {
	// Read returns document text
	Read(name string) (string, error)
	// Write overwrites existing document
	Write(name string, text string) error
	// Create creates new document with initial text
	Create(name string, text string) error
}

// Append adds block to the end of document, creating it when missing.
// It is a plain read-then-write, concurrent appends to one document may lose updates
func Append(s Storage, name string, block string) error {
	text, err := s.Read(name)
	if errors.Is(err, ErrNotFound) {
		return s.Create(name, block)
	}
	if err != nil {
		return err
	}
	return s.Write(name, joinDocument(text, block))
}

// joinDocument separates block from existing text with an empty line
func joinDocument(text string, block string) string {
	if text == "" {
		return block
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text + "\n" + block
}
