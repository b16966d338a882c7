// Package storage stores uploaded image files on the local filesystem
// and maps them to their public URL paths.
package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
)

// PublicPrefix is the URL prefix under which stored files are served.
const PublicPrefix = "/uploads"

// FileStore writes uploaded files into a directory, keyed by their
// original filename.
type FileStore struct {
	dir string
}

// NewFileStore returns a FileStore rooted at dir. The directory is
// created on first save.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Dir returns the filesystem directory backing the store.
func (s *FileStore) Dir() string {
	return s.dir
}

// Save writes the reader's content under the given filename and returns
// the public URL path of the stored file. Any path components in the
// client-sent name are stripped.
func (s *FileStore) Save(name string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name = filepath.Base(name)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return path.Join(PublicPrefix, name), nil
}

// Remove deletes the stored file behind a public URL path.
func (s *FileStore) Remove(publicURL string) error {
	return os.Remove(filepath.Join(s.dir, path.Base(publicURL)))
}
