package logging

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSizeLimitedWriterRotates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck-server.log")
	writer, err := newSizeLimitedWriter(path, 1)
	if err != nil {
		t.Fatalf("create writer: %v", err)
	}
	defer writer.Close()

	chunk := make([]byte, 512*1024)
	for i := 0; i < 3; i++ {
		if _, err := writer.Write(chunk); err != nil {
			t.Fatalf("write chunk %d: %v", i, err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat log: %v", err)
	}
	if info.Size() != 512*1024 {
		t.Fatalf("expected fresh log of one chunk, got %d", info.Size())
	}
	backup, err := os.Stat(path + ".1")
	if err != nil {
		t.Fatalf("stat backup: %v", err)
	}
	if backup.Size() != 1024*1024 {
		t.Fatalf("expected 1MB backup, got %d", backup.Size())
	}
}

func TestSizeLimitedWriterReopensAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck-server.log")
	writer, err := newSizeLimitedWriter(path, 1)
	if err != nil {
		t.Fatalf("create writer: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := writer.Write([]byte("after close\n")); err != nil {
		t.Fatalf("write after close: %v", err)
	}
	_ = writer.Close()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if string(b) != "after close\n" {
		t.Fatalf("unexpected log contents %q", string(b))
	}
}
