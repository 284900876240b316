// Package media stores one image file per owning database row, keyed by a
// relative path under a root directory. The store is not transactional; the
// callers in internal/store sequence its calls around their transactions.
package media

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidFormat reports content that did not sniff as an image.
var ErrInvalidFormat = errors.New("invalid image format")

type Store struct {
	root string
}

// NewStore returns a filesystem-backed image store rooted at path, creating
// the directory if needed.
func NewStore(root string) (*Store, error) {
	if root == "" {
		root = "./images"
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &Store{root: root}, nil
}

// sanitizeKey forbids traversal and absolute paths so keys stay under root.
func sanitizeKey(key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", errors.New("empty key")
	}
	if strings.Contains(key, "..") || strings.HasPrefix(key, "/") {
		return "", errors.New("invalid key")
	}
	clean := filepath.ToSlash(filepath.Clean(key))
	if strings.HasPrefix(clean, "..") {
		return "", errors.New("invalid key")
	}
	return clean, nil
}

func (s *Store) pathFor(key string) (string, error) {
	k, err := sanitizeKey(key)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.root, k), nil
}

// Put writes the image under key, replacing any previous content. The bytes
// must sniff as an image or Put fails with ErrInvalidFormat before touching
// the filesystem.
func (s *Store) Put(key string, data []byte) error {
	if !isImage(data) {
		return ErrInvalidFormat
	}
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	// write to a temp file first so a replaced image is never half-written
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Rename moves the image from oldKey to newKey.
func (s *Store) Rename(oldKey, newKey string) error {
	from, err := s.pathFor(oldKey)
	if err != nil {
		return err
	}
	to, err := s.pathFor(newKey)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(to), 0o755); err != nil {
		return err
	}
	return os.Rename(from, to)
}

// Delete removes the image under key. A missing key is not an error.
func (s *Store) Delete(key string) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Exists reports whether an image is stored under key.
func (s *Store) Exists(key string) (bool, error) {
	path, err := s.pathFor(key)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// List returns every stored key with the given prefix, sorted by WalkDir's
// lexical order.
func (s *Store) List(prefix string) ([]string, error) {
	var keys []string
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".tmp-") {
			return nil
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if prefix == "" || strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

func isImage(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	return strings.HasPrefix(http.DetectContentType(data), "image/")
}
