package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteTempFile(t *testing.T) {
	t.Parallel()

	path, cleanup, err := WriteTempFile("<html></html>", "html")
	if err != nil {
		t.Fatalf("WriteTempFile() error = %v", err)
	}
	defer cleanup()

	if !strings.HasSuffix(path, ".html") {
		t.Errorf("path = %q, want .html suffix", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading temp file: %v", err)
	}
	if string(content) != "<html></html>" {
		t.Errorf("content = %q", content)
	}

	cleanup()
	if FileExists(path) {
		t.Error("cleanup did not remove the file")
	}
}

func TestWriteTempFileInvalidExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ext  string
		want error
	}{
		{"empty", "", ErrExtensionEmpty},
		{"slash", "a/b", ErrExtensionPathTraversal},
		{"backslash", `a\b`, ErrExtensionPathTraversal},
		{"null byte", "a\x00b", ErrExtensionPathTraversal},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := WriteTempFile("x", tt.ext)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(file) {
		t.Error("existing file reported missing")
	}
	if FileExists(filepath.Join(dir, "missing.txt")) {
		t.Error("missing file reported existing")
	}
	if FileExists(dir) {
		t.Error("directory reported as file")
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"styles/custom.css", true},
		{`C:\styles\custom.css`, true},
		{"screen", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsFilePath(tt.input); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsCSS(t *testing.T) {
	t.Parallel()

	if !IsCSS("body { margin: 0; }") {
		t.Error("CSS content not detected")
	}
	if IsCSS("screen") {
		t.Error("bare name detected as CSS")
	}
}
