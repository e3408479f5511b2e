// Package config loads and validates the reportgen YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/acao/cuyahoga-county-fiscal-flows/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxTitleLength    = 200  // Report title and subtitle
	MaxTextLength     = 500  // Description and free-form text
	MaxURLLength      = 2048 // Browser limit
	MaxEmailLength    = 254  // RFC 5321
	MaxDateLength     = 30   // "2025-12-31" or "December 31, 2025"
	MaxLabelLength    = 100  // Link label
	MaxStyleLength    = 100  // Style name or short path
	MaxPageSizeLength = 10   // "letter", "a4", "legal"
)

// DefaultChartRuntimeURL is the Chart.js build loaded by the document
// template when no override is configured.
const DefaultChartRuntimeURL = "https://cdn.jsdelivr.net/npm/chart.js@4.4.0/dist/chart.umd.js"

// Config holds all configuration for report generation.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Report ReportConfig `yaml:"report"`
	Style  StyleConfig  `yaml:"style"`
	Charts ChartsConfig `yaml:"charts"`
	Page   PageConfig   `yaml:"page"`
	TOC    TOCConfig    `yaml:"toc"`
	Footer FooterConfig `yaml:"footer"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// ReportConfig holds document metadata rendered into the templates.
type ReportConfig struct {
	Title         string       `yaml:"title"`         // Header and title page heading
	Subtitle      string       `yaml:"subtitle"`      // Optional
	Description   string       `yaml:"description"`   // Title page blurb
	Date          string       `yaml:"date"`          // Literal; empty = today (YYYY-MM-DD)
	SourceURL     string       `yaml:"sourceURL"`     // Repository or project link
	ContactEmail  string       `yaml:"contactEmail"`  // Footer contact link
	DashboardHref string       `yaml:"dashboardHref"` // Interactive dashboard page
	PDFHref       string       `yaml:"pdfHref"`       // Download link in nav/footer
	NavLinks      []LinkConfig `yaml:"navLinks"`      // Extra navigation links
}

// LinkConfig is a labeled hyperlink.
type LinkConfig struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// StyleConfig defines stylesheet selection.
type StyleConfig struct {
	Screen   string `yaml:"screen"`   // Style for the HTML artifact (empty = built-in)
	Print    string `yaml:"print"`    // Style for the PDF artifact (empty = built-in)
	BasePath string `yaml:"basePath"` // Custom asset directory (empty = embedded only)
}

// ChartsConfig defines chart widget options.
type ChartsConfig struct {
	RuntimeURL string `yaml:"runtimeURL"` // Chart.js script URL (empty = default CDN build)
	NoCapture  bool   `yaml:"noCapture"`  // Skip canvas rasterization in the PDF path
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "letter", "a4", "legal" (default: "a4")
	Orientation string  `yaml:"orientation"` // "portrait", "landscape" (default: "portrait")
	Margin      float64 `yaml:"margin"`      // inches (default: 1.0)
}

// TOCConfig defines table of contents options.
type TOCConfig struct {
	Disabled bool `yaml:"disabled"`
	MinDepth int  `yaml:"minDepth"` // 1-6, default 2
	MaxDepth int  `yaml:"maxDepth"` // 1-6, default 4
}

// FooterConfig defines the printed page header/footer.
type FooterConfig struct {
	Disabled       bool   `yaml:"disabled"`
	ShowPageNumber bool   `yaml:"showPageNumber"`
	HeaderText     string `yaml:"headerText"` // Top-center running title (empty = report title)
}

// Validate checks field lengths and enum values.
// Called automatically by LoadConfig, available for manual construction.
func (c *Config) Validate() error {
	checks := []struct {
		field string
		value string
		max   int
	}{
		{"report.title", c.Report.Title, MaxTitleLength},
		{"report.subtitle", c.Report.Subtitle, MaxTitleLength},
		{"report.description", c.Report.Description, MaxTextLength},
		{"report.date", c.Report.Date, MaxDateLength},
		{"report.sourceURL", c.Report.SourceURL, MaxURLLength},
		{"report.contactEmail", c.Report.ContactEmail, MaxEmailLength},
		{"report.dashboardHref", c.Report.DashboardHref, MaxURLLength},
		{"report.pdfHref", c.Report.PDFHref, MaxURLLength},
		{"style.screen", c.Style.Screen, MaxStyleLength},
		{"style.print", c.Style.Print, MaxStyleLength},
		{"charts.runtimeURL", c.Charts.RuntimeURL, MaxURLLength},
		{"page.size", c.Page.Size, MaxPageSizeLength},
		{"footer.headerText", c.Footer.HeaderText, MaxTextLength},
	}
	for _, ch := range checks {
		if err := validateFieldLength(ch.field, ch.value, ch.max); err != nil {
			return err
		}
	}

	for i, link := range c.Report.NavLinks {
		if err := validateFieldLength(fmt.Sprintf("report.navLinks[%d].label", i), link.Label, MaxLabelLength); err != nil {
			return err
		}
		if err := validateFieldLength(fmt.Sprintf("report.navLinks[%d].url", i), link.URL, MaxURLLength); err != nil {
			return err
		}
	}

	if c.TOC.MinDepth != 0 && (c.TOC.MinDepth < 1 || c.TOC.MinDepth > 6) {
		return fmt.Errorf("toc.minDepth: must be between 1 and 6, got %d", c.TOC.MinDepth)
	}
	if c.TOC.MaxDepth != 0 && (c.TOC.MaxDepth < 1 || c.TOC.MaxDepth > 6) {
		return fmt.Errorf("toc.maxDepth: must be between 1 and 6, got %d", c.TOC.MaxDepth)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{
		Footer: FooterConfig{ShowPageNumber: true},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise it's treated as a config name and searched in standard
// locations. Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/reportgen/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "reportgen", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
