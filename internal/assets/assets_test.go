package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedLoaderStyles(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	for _, name := range []string{DefaultStyleName, PrintStyleName} {
		css, err := loader.LoadStyle(name)
		if err != nil {
			t.Fatalf("LoadStyle(%q) error = %v", name, err)
		}
		if !strings.Contains(css, "{") {
			t.Errorf("style %q does not look like CSS", name)
		}
	}
}

func TestEmbeddedLoaderScreenStyleHasChartClasses(t *testing.T) {
	t.Parallel()

	css, err := NewEmbeddedLoader().LoadStyle(DefaultStyleName)
	if err != nil {
		t.Fatalf("LoadStyle() error = %v", err)
	}
	for _, want := range []string{".chart-container", ".chart-error"} {
		if !strings.Contains(css, want) {
			t.Errorf("screen style missing %q", want)
		}
	}
}

func TestEmbeddedLoaderStyleNotFound(t *testing.T) {
	t.Parallel()

	_, err := NewEmbeddedLoader().LoadStyle("nonexistent")
	if !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("error = %v, want ErrStyleNotFound", err)
	}
}

func TestEmbeddedLoaderTemplateSet(t *testing.T) {
	t.Parallel()

	ts, err := NewEmbeddedLoader().LoadTemplateSet(DefaultTemplateSetName)
	if err != nil {
		t.Fatalf("LoadTemplateSet() error = %v", err)
	}

	if ts.Name != DefaultTemplateSetName {
		t.Errorf("name = %q", ts.Name)
	}
	if !strings.Contains(ts.Document, "{{.Content}}") {
		t.Error("document template missing content slot")
	}
	if !strings.Contains(ts.Print, "{{.Content}}") {
		t.Error("print template missing content slot")
	}
	if !strings.Contains(ts.Document, "{{.ChartRuntimeURL}}") {
		t.Error("document template missing chart runtime slot")
	}
}

func TestEmbeddedLoaderTemplateSetNotFound(t *testing.T) {
	t.Parallel()

	_, err := NewEmbeddedLoader().LoadTemplateSet("nonexistent")
	if !errors.Is(err, ErrTemplateSetNotFound) {
		t.Errorf("error = %v, want ErrTemplateSetNotFound", err)
	}
}

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple name", "screen", false},
		{"with dash", "print-dark", false},
		{"empty", "", true},
		{"dot traversal", "..", true},
		{"slash", "a/b", true},
		{"backslash", `a\b`, true},
		{"extension", "screen.css", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateAssetName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAssetName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidAssetName) {
				t.Errorf("error = %v, want ErrInvalidAssetName", err)
			}
		})
	}
}

func TestFilesystemLoader(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeAsset(t, dir, "styles/custom.css", "body { color: teal; }")
	writeAsset(t, dir, "templates/branded/document.html", "<html>{{.Content}}</html>")
	writeAsset(t, dir, "templates/branded/print.html", "<html>print {{.Content}}</html>")

	loader, err := NewFilesystemLoader(dir)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}

	css, err := loader.LoadStyle("custom")
	if err != nil {
		t.Fatalf("LoadStyle() error = %v", err)
	}
	if css != "body { color: teal; }" {
		t.Errorf("css = %q", css)
	}

	ts, err := loader.LoadTemplateSet("branded")
	if err != nil {
		t.Fatalf("LoadTemplateSet() error = %v", err)
	}
	if !strings.Contains(ts.Print, "print") {
		t.Errorf("print template = %q", ts.Print)
	}
}

func TestFilesystemLoaderErrors(t *testing.T) {
	t.Parallel()

	t.Run("invalid base path", func(t *testing.T) {
		t.Parallel()
		if _, err := NewFilesystemLoader(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("style not found", func(t *testing.T) {
		t.Parallel()
		loader, err := NewFilesystemLoader(t.TempDir())
		if err != nil {
			t.Fatal(err)
		}
		if _, err := loader.LoadStyle("missing"); !errors.Is(err, ErrStyleNotFound) {
			t.Errorf("error = %v, want ErrStyleNotFound", err)
		}
	})

	t.Run("incomplete template set", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeAsset(t, dir, "templates/partial/document.html", "<html></html>")

		loader, err := NewFilesystemLoader(dir)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := loader.LoadTemplateSet("partial"); !errors.Is(err, ErrIncompleteTemplateSet) {
			t.Errorf("error = %v, want ErrIncompleteTemplateSet", err)
		}
	})
}

func TestAssetResolverFallback(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeAsset(t, dir, "styles/custom.css", "/* custom */")

	resolver, err := NewAssetResolver(dir)
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}
	if !resolver.HasCustomLoader() {
		t.Fatal("custom loader not configured")
	}

	// Custom asset wins.
	css, err := resolver.LoadStyle("custom")
	if err != nil {
		t.Fatalf("LoadStyle(custom) error = %v", err)
	}
	if css != "/* custom */" {
		t.Errorf("css = %q", css)
	}

	// Missing in custom: falls back to embedded.
	if _, err := resolver.LoadStyle(DefaultStyleName); err != nil {
		t.Errorf("fallback LoadStyle(%q) error = %v", DefaultStyleName, err)
	}
	if _, err := resolver.LoadTemplateSet(DefaultTemplateSetName); err != nil {
		t.Errorf("fallback LoadTemplateSet error = %v", err)
	}

	// Missing everywhere: not found.
	if _, err := resolver.LoadStyle("nowhere"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("error = %v, want ErrStyleNotFound", err)
	}
}

func TestAssetResolverEmbeddedOnly(t *testing.T) {
	t.Parallel()

	resolver, err := NewAssetResolver("")
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}
	if resolver.HasCustomLoader() {
		t.Error("unexpected custom loader")
	}
	if _, err := resolver.LoadStyle(PrintStyleName); err != nil {
		t.Errorf("LoadStyle() error = %v", err)
	}
}

// writeAsset creates a file under dir, making parent directories.
func writeAsset(t *testing.T, dir, rel, content string) {
	t.Helper()
	full := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
