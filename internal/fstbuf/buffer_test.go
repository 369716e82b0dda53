package fstbuf

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestFromBytes(t *testing.T) {
	b, err := FromBytes([]byte("hello"))
	if err != nil {
		t.Fatal(err)
	}
	if b.Len() != 5 {
		t.Errorf("Len() = %d, want 5", b.Len())
	}
	if !bytes.Equal(b.Bytes(), []byte("hello")) {
		t.Errorf("Bytes() = %q", b.Bytes())
	}
	if err := b.Close(); err != nil {
		t.Errorf("Close() on non-mmap buffer: %v", err)
	}
}

func TestFromBytesRejectsNil(t *testing.T) {
	if _, err := FromBytes(nil); err == nil {
		t.Fatal("expected error for nil slice")
	}
}

func TestOpenFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")
	want := []byte("the quick brown fox jumps over the lazy dog")
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	if !bytes.Equal(b.Bytes(), want) {
		t.Errorf("Bytes() = %q, want %q", b.Bytes(), want)
	}
	if b.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", b.Len(), len(want))
	}
}

func TestOpenFileEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.bin")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
}

func TestOpenFileMissing(t *testing.T) {
	if _, err := OpenFile("/nonexistent/path/does/not/exist"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
