package images

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"
)

// A 1x1 opaque PNG.
const tinyPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg=="

func TestLoader_DataURI(t *testing.T) {
	l := NewLoader()
	img, err := l.Load("data:image/png;base64," + tinyPNG)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 1 || bounds.Dy() != 1 {
		t.Errorf("expected 1x1 image, got %v", bounds)
	}
}

func TestLoader_MalformedDataURI(t *testing.T) {
	l := NewLoader()
	if _, err := l.Load("data:image/png;base64"); err == nil {
		t.Error("expected error for data URI without a comma")
	}
	if _, err := l.Load("data:image/png;base64,notbase64!!!"); err == nil {
		t.Error("expected error for invalid base64 payload")
	}
}

func TestLoader_File(t *testing.T) {
	raw, err := base64.StdEncoding.DecodeString(tinyPNG)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "tiny.png")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	l := NewLoader()
	img, err := l.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.Bounds().Dx() != 1 {
		t.Errorf("expected 1x1 image, got %v", img.Bounds())
	}
}

func TestLoader_MissingFile(t *testing.T) {
	l := NewLoader()
	if _, err := l.Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestLoader_NetworkDisabled(t *testing.T) {
	l := NewLoader()
	if _, err := l.Load("https://example.com/a.png"); err == nil {
		t.Error("expected error when network loading is disabled")
	}
}

func TestLoader_Caches(t *testing.T) {
	raw, err := base64.StdEncoding.DecodeString(tinyPNG)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "tiny.png")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	l := NewLoader()
	first, err := l.Load(path)
	if err != nil {
		t.Fatal(err)
	}

	// Remove the backing file; the cached decode must still serve.
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	second, err := l.Load(path)
	if err != nil {
		t.Fatalf("expected cache hit after file removal, got %v", err)
	}
	if first != second {
		t.Error("expected the same cached image instance")
	}
}

func TestDecodeDataURI_RawPayload(t *testing.T) {
	// A non-base64 payload is decoded as raw bytes; bogus bytes fail.
	if _, err := decodeDataURI("data:image/png,notanimage"); err == nil {
		t.Error("expected decode failure for bogus raw payload")
	}
}
