package assets

// Built-in asset names.
const (
	// DefaultStyleName is the built-in screen stylesheet.
	DefaultStyleName = "screen"

	// PrintStyleName is the built-in print stylesheet for PDF output.
	PrintStyleName = "print"

	// DefaultTemplateSetName is the built-in template set.
	DefaultTemplateSetName = "report"
)

// TemplateSet holds the HTML templates for one report layout.
type TemplateSet struct {
	Name     string // Identifier (name or directory path)
	Document string // Screen document shell (HTML artifact)
	Print    string // Print document shell (PDF artifact)
}

// AssetLoader defines the contract for loading CSS styles and HTML
// templates. Implementations may load from embedded assets, a custom
// directory, or elsewhere.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)

	// LoadTemplateSet loads the document and print templates by name.
	// Returns ErrTemplateSetNotFound if the template set doesn't exist.
	// Returns ErrIncompleteTemplateSet if a required template is missing.
	LoadTemplateSet(name string) (*TemplateSet, error)
}
