package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

const corruptSuffix = ".corrupt"

// FileStore keeps every key in one JSON object on disk.
type FileStore struct {
	mu   sync.Mutex
	path string
	kv   map[string]string
}

// NewFileStore loads path, starting empty if the file doesn't exist. A file
// that cannot be parsed is moved aside to path+".corrupt" and the store
// starts empty.
func NewFileStore(path string) (*FileStore, error) {
	kv := make(map[string]string)
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read store: %w", err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &kv); err != nil {
			log.Printf("[WARN] parse store %s, starting empty: %v", path, err)
			kv = make(map[string]string)
			if err := os.Rename(path, path+corruptSuffix); err != nil {
				log.Printf("[WARN] move corrupt store aside: %v", err)
			}
		}
	}
	return &FileStore{path: path, kv: kv}, nil
}

func (f *FileStore) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.kv[key]
	return v, ok, nil
}

func (f *FileStore) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.kv[key] = value
	return f.flush()
}

func (f *FileStore) Delete(keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, k := range keys {
		delete(f.kv, k)
	}
	return f.flush()
}

func (f *FileStore) Close() error { return nil }

// flush writes through a temp file so a crash never leaves a torn save.
func (f *FileStore) flush() error {
	data, err := json.MarshalIndent(f.kv, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create store dir: %w", err)
		}
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	return os.Rename(tmp, f.path)
}
