package assets

import (
	"embed"
	"fmt"
)

//go:embed styles/*
var styles embed.FS

//go:embed templates/*
var templates embed.FS

// EmbeddedLoader loads assets from the embedded filesystem.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle loads a CSS style from embedded assets by name.
// The name should not include the .css extension.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := styles.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}

	return string(content), nil
}

// LoadTemplateSet loads the document and print templates from embedded
// assets by name. The name identifies a directory under templates/.
func (e *EmbeddedLoader) LoadTemplateSet(name string) (*TemplateSet, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	dir := "templates/" + name
	if _, err := templates.ReadDir(dir); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrTemplateSetNotFound, name)
	}

	document, err := templates.ReadFile(dir + "/document.html")
	if err != nil {
		return nil, fmt.Errorf("%w: %q missing document.html", ErrIncompleteTemplateSet, name)
	}

	print, err := templates.ReadFile(dir + "/print.html")
	if err != nil {
		return nil, fmt.Errorf("%w: %q missing print.html", ErrIncompleteTemplateSet, name)
	}

	return &TemplateSet{
		Name:     name,
		Document: string(document),
		Print:    string(print),
	}, nil
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
