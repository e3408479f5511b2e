package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemLoader loads assets from a directory on disk.
// Asset names are validated and resolved paths are verified to stay
// inside the base path, including across symlinks.
type FilesystemLoader struct {
	basePath string // absolute, symlink-resolved
}

// NewFilesystemLoader creates a FilesystemLoader rooted at basePath.
// Returns ErrInvalidBasePath if the path is not a readable directory.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	info, err := os.Stat(resolved)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %q is not a directory", ErrInvalidBasePath, basePath)
	}

	return &FilesystemLoader{basePath: resolved}, nil
}

// LoadStyle loads {basePath}/styles/{name}.css.
func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := f.readFile(filepath.Join("styles", name+".css"))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
		}
		return "", err
	}
	return content, nil
}

// LoadTemplateSet loads {basePath}/templates/{name}/{document,print}.html.
func (f *FilesystemLoader) LoadTemplateSet(name string) (*TemplateSet, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	dir := filepath.Join(f.basePath, "templates", name)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %q", ErrTemplateSetNotFound, name)
	}

	document, err := f.readFile(filepath.Join("templates", name, "document.html"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q missing document.html", ErrIncompleteTemplateSet, name)
	}

	print, err := f.readFile(filepath.Join("templates", name, "print.html"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q missing print.html", ErrIncompleteTemplateSet, name)
	}

	return &TemplateSet{
		Name:     name,
		Document: document,
		Print:    print,
	}, nil
}

// readFile reads a file relative to the base path after verifying the
// resolved location stays inside it.
func (f *FilesystemLoader) readFile(rel string) (string, error) {
	full := filepath.Join(f.basePath, rel)

	resolved, err := filepath.EvalSymlinks(full)
	if err != nil {
		return "", err
	}

	if !strings.HasPrefix(resolved, f.basePath+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrPathTraversal, rel)
	}

	content, err := os.ReadFile(resolved) // #nosec G304 -- path verified above
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// Compile-time interface check.
var _ AssetLoader = (*FilesystemLoader)(nil)
