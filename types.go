package report

import (
	"fmt"
	"strings"
	"time"
)

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 1.0
)

// TOC depth defaults. The minimum of 2 skips the H1 document title.
const (
	DefaultTOCMinDepth = 2
	DefaultTOCMaxDepth = 4
)

// Orphan/widow defaults for printed output.
const (
	DefaultOrphans = 2
	DefaultWidows  = 2
)

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string  // "letter", "a4", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides
}

// DefaultPageSettings returns page settings matching the report's
// print layout: A4 portrait with one inch margins.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeA4,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
// Does not mutate - uses case-insensitive comparison.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if !isValidPageSize(p.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// isValidPageSize checks if size is a known page size (case-insensitive).
func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case PageSizeLetter, PageSizeA4, PageSizeLegal:
		return true
	}
	return false
}

// isValidOrientation checks if orientation is valid (case-insensitive).
func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// Link represents a labeled hyperlink in the navigation bar or footer.
type Link struct {
	Label string
	URL   string
}

// Meta carries report metadata rendered into the document shells.
type Meta struct {
	Title         string // Header and title page heading
	Subtitle      string // Optional
	Description   string // Title page blurb (PDF only)
	Date          string // Literal date string; empty = today (YYYY-MM-DD)
	SourceURL     string // Repository or project link (PDF title page)
	ContactEmail  string // Footer contact link
	DashboardHref string // Link to the interactive dashboard page
	PDFHref       string // Link to the downloadable PDF
	NavLinks      []Link // Extra navigation links
}

// TOC configures table of contents generation.
type TOC struct {
	MinDepth int // Minimum heading level (default: 2, skips H1)
	MaxDepth int // Maximum heading level (default: 4)
}

// Validate checks that TOC settings are valid.
// Returns nil if t is nil (nil means no TOC).
func (t *TOC) Validate() error {
	if t == nil {
		return nil
	}
	if t.MinDepth != 0 && (t.MinDepth < 1 || t.MinDepth > 6) {
		return fmt.Errorf("%w: minDepth %d (must be 1-6)", ErrInvalidTOCDepth, t.MinDepth)
	}
	if t.MaxDepth != 0 && (t.MaxDepth < 1 || t.MaxDepth > 6) {
		return fmt.Errorf("%w: maxDepth %d (must be 1-6)", ErrInvalidTOCDepth, t.MaxDepth)
	}
	if t.MinDepth != 0 && t.MaxDepth != 0 && t.MinDepth > t.MaxDepth {
		return fmt.Errorf("%w: minDepth %d greater than maxDepth %d", ErrInvalidTOCDepth, t.MinDepth, t.MaxDepth)
	}
	return nil
}

// PageBreaks configures page break behavior in printed output.
type PageBreaks struct {
	BeforeH1 bool // Page break before every H1 section
	BeforeH2 bool // Page break before every H2 section
	Orphans  int  // Min lines at page bottom (default 2)
	Widows   int  // Min lines at page top (default 2)
}

// Validate checks that page break settings are valid.
// Returns nil if pb is nil (nil means defaults).
func (pb *PageBreaks) Validate() error {
	if pb == nil {
		return nil
	}
	if pb.Orphans != 0 && (pb.Orphans < 1 || pb.Orphans > 5) {
		return fmt.Errorf("%w: %d (must be 1-5)", ErrInvalidOrphans, pb.Orphans)
	}
	if pb.Widows != 0 && (pb.Widows < 1 || pb.Widows > 5) {
		return fmt.Errorf("%w: %d (must be 1-5)", ErrInvalidWidows, pb.Widows)
	}
	return nil
}

// Footer configures the printed page header and footer.
type Footer struct {
	ShowPageNumber bool   // "Page N/M" bottom-center
	HeaderText     string // Top-center running title (empty = report title)
}

// Input contains conversion parameters.
type Input struct {
	Markdown   string       // Markdown content (required)
	Meta       *Meta        // Report metadata (optional, nil = bare defaults)
	CSS        string       // Custom CSS appended to the selected style (optional)
	Page       *PageSettings // Page settings (optional, nil = defaults)
	TOC        *TOC         // TOC config (optional, nil = no TOC)
	PageBreaks *PageBreaks  // Print page breaks (optional, nil = defaults)
	Footer     *Footer      // Printed header/footer (optional, nil = none)
	HTMLOnly   bool         // Skip PDF generation (for debugging)
}

// Result contains conversion output.
type Result struct {
	HTML []byte // Styled document for the web
	PDF  []byte // Rendered PDF; nil when Input.HTMLOnly is set
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout         time.Duration
	screenStyle     string // name, path, or CSS content
	printStyle      string // name, path, or CSS content
	assetPath       string
	chartRuntimeURL string
	noChartCapture  bool

	resolvedScreenCSS string
	resolvedPrintCSS  string
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 60 * time.Second

// WithTimeout sets the PDF generation timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("report: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithScreenStyle selects the stylesheet for the HTML artifact.
// Accepts a built-in style name, a file path, or raw CSS content.
func WithScreenStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.screenStyle = style
	}
}

// WithPrintStyle selects the stylesheet for the PDF artifact.
// Accepts a built-in style name, a file path, or raw CSS content.
func WithPrintStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.printStyle = style
	}
}

// WithAssetPath overrides the asset directory. Custom assets take
// precedence, with fallback to the embedded defaults.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithAssetLoader installs a custom asset loader (filesystem, S3, ...).
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *Converter) {
		c.publicAssetLoader = loader
	}
}

// WithChartRuntime overrides the Chart.js script URL loaded by the
// document templates.
func WithChartRuntime(url string) Option {
	return func(c *Converter) {
		c.cfg.chartRuntimeURL = url
	}
}

// WithoutChartCapture disables canvas rasterization in the PDF path.
// Charts then print as whatever the browser renders at load time.
func WithoutChartCapture() Option {
	return func(c *Converter) {
		c.cfg.noChartCapture = true
	}
}

// WithWarnLogger routes non-fatal warnings (for example a failed chart
// capture) to fn. The default logger writes to stderr.
func WithWarnLogger(fn func(format string, args ...any)) Option {
	return func(c *Converter) {
		if fn != nil {
			c.warnf = fn
		}
	}
}
