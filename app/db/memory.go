package db

import "sync"

// InMemoryStorage keeps documents in a map
type InMemoryStorage struct {
	documents map[string]string
	mx        sync.RWMutex
}

func (d *InMemoryStorage) Read(name string) (string, error) {
	d.mx.RLock()
	defer d.mx.RUnlock()
	text, ok := d.documents[name]
	if !ok {
		return "", ErrNotFound
	}
	return text, nil
}

func (d *InMemoryStorage) Write(name string, text string) error {
	d.mx.Lock()
	defer d.mx.Unlock()
	if _, ok := d.documents[name]; !ok {
		return ErrNotFound
	}
	d.documents[name] = text
	return nil
}

func (d *InMemoryStorage) Create(name string, text string) error {
	d.mx.Lock()
	defer d.mx.Unlock()
	if _, ok := d.documents[name]; ok {
		return ErrAlreadyExists
	}
	d.documents[name] = text
	return nil
}

func NewInMemoryStorage() *InMemoryStorage {
	return &InMemoryStorage{documents: make(map[string]string)}
}
