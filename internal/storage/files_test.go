package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveAndRemove(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	s := NewFileStore(dir)

	url, err := s.Save("pier.jpg", strings.NewReader("imagebytes"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if url != "/uploads/pier.jpg" {
		t.Errorf("url = %q; want /uploads/pier.jpg", url)
	}

	data, err := os.ReadFile(filepath.Join(dir, "pier.jpg"))
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if string(data) != "imagebytes" {
		t.Errorf("stored content = %q; want %q", data, "imagebytes")
	}

	if err := s.Remove(url); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "pier.jpg")); !os.IsNotExist(err) {
		t.Error("file still exists after Remove")
	}
}

func TestSave_StripsPathComponents(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	s := NewFileStore(dir)

	url, err := s.Save("../../etc/passwd", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if url != "/uploads/passwd" {
		t.Errorf("url = %q; want /uploads/passwd", url)
	}
	if _, err := os.Stat(filepath.Join(dir, "passwd")); err != nil {
		t.Errorf("file not stored inside the upload dir: %v", err)
	}
}

func TestRemove_MissingFile(t *testing.T) {
	s := NewFileStore(t.TempDir())
	if err := s.Remove("/uploads/ghost.jpg"); err == nil {
		t.Error("expected error removing a missing file")
	}
}
