package report

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"strings"
	"time"

	"github.com/acao/cuyahoga-county-fiscal-flows/internal/assets"
	"github.com/acao/cuyahoga-county-fiscal-flows/internal/chart"
	"github.com/acao/cuyahoga-county-fiscal-flows/internal/config"
	"github.com/acao/cuyahoga-county-fiscal-flows/internal/fileutil"
	"github.com/acao/cuyahoga-county-fiscal-flows/internal/pipeline"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
	_ pipeline.DocumentInjector     = (*pipeline.DocumentInjection)(nil)
	_ chart.Extension               = (*chart.ChartJS)(nil)
	_ pdfConverter                  = (*rodConverter)(nil)
	_ pdfRenderer                   = (*rodRenderer)(nil)
)

// Converter orchestrates the markdown-to-report conversion pipeline.
// Create with NewConverter(), use Convert() for conversion, and Close()
// when done.
type Converter struct {
	cfg               converterConfig
	assetLoader       assets.AssetLoader
	publicAssetLoader AssetLoader
	preprocessor      pipeline.MarkdownPreprocessor
	htmlConverter     pipeline.HTMLConverter
	cssInjector       pipeline.CSSInjector
	docInjector       pipeline.DocumentInjector
	chartExt          chart.Extension
	pdfConverter      pdfConverter
	warnf             func(format string, args ...any)
}

// publicToInternalAdapter wraps the public AssetLoader to the internal
// assets.AssetLoader.
type publicToInternalAdapter struct {
	pub AssetLoader
}

func (a *publicToInternalAdapter) LoadStyle(name string) (string, error) {
	return a.pub.LoadStyle(name)
}

func (a *publicToInternalAdapter) LoadTemplateSet(name string) (*assets.TemplateSet, error) {
	ts, err := a.pub.LoadTemplateSet(name)
	if err != nil {
		return nil, err
	}
	return &assets.TemplateSet{
		Name:     ts.Name,
		Document: ts.Document,
		Print:    ts.Print,
	}, nil
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithAssetLoader,
// WithChartRuntime). Returns error if asset loading or template parsing
// fails.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			timeout:         defaultTimeout,
			chartRuntimeURL: config.DefaultChartRuntimeURL,
		},
		assetLoader:   assets.NewEmbeddedLoader(),
		preprocessor:  &pipeline.CommonMarkPreprocessor{},
		htmlConverter: pipeline.NewGoldmarkConverter(),
		cssInjector:   &pipeline.CSSInjection{},
		chartExt:      chart.NewChartJS(),
		warnf: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	// Handle WithAssetPath: resolve to internal loader
	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assetLoader = resolver
	}

	// Handle WithAssetLoader (public interface): wrap to internal interface
	if c.publicAssetLoader != nil {
		c.assetLoader = &publicToInternalAdapter{pub: c.publicAssetLoader}
	}

	// Resolve style inputs (name, path, or CSS content) to CSS content
	if err := c.resolveStyles(); err != nil {
		return nil, err
	}

	// Parse document templates (if not injected by tests)
	if c.docInjector == nil {
		templateSet, err := c.assetLoader.LoadTemplateSet(assets.DefaultTemplateSetName)
		if err != nil {
			return nil, fmt.Errorf("loading default template set: %w", err)
		}
		c.docInjector, err = pipeline.NewDocumentInjection(templateSet.Document, templateSet.Print)
		if err != nil {
			return nil, fmt.Errorf("initializing document templates: %w", err)
		}
	}

	// Create PDF converter if not injected (e.g., by tests)
	if c.pdfConverter == nil {
		c.pdfConverter = newRodConverter(c.cfg.timeout, c.warnf)
	}

	return c, nil
}

// Convert runs the full pipeline and returns the result containing HTML and PDF.
// The context is used for cancellation and timeout.
// If input.HTMLOnly is true, PDF generation is skipped (for debugging).
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := c.validateInput(input); err != nil {
		return nil, err
	}

	// Preprocess markdown
	mdContent := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Pre-pass: pull chart blocks out before the generic conversion so
	// their YAML bodies never reach the markdown parser. The store pairs
	// each emitted placeholder with its decoded configuration.
	store := chart.NewStore()
	lines := c.chartExt.Extract(strings.Split(mdContent, "\n"), store)
	mdContent = strings.Join(lines, "\n")

	// Convert to HTML
	fragment, err := c.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	// Post-pass: swap placeholders for Chart.js widgets
	fragment = c.chartExt.Render(fragment, store)

	// Table of contents from the converted fragment
	var tocHTML string
	if input.TOC != nil {
		tocHTML = pipeline.GenerateTOC(fragment, tocMinDepth(input.TOC), tocMaxDepth(input.TOC))
	}

	meta := input.Meta
	if meta == nil {
		meta = &Meta{}
	}

	// Screen document shell
	docHTML, err := c.docInjector.RenderDocument(ctx, c.buildDocumentData(meta, tocHTML, fragment, len(store) > 0))
	if err != nil {
		return nil, fmt.Errorf("rendering document: %w", err)
	}

	// Build screen CSS (converter style + user CSS; user CSS can override)
	screenCSS := c.cfg.resolvedScreenCSS
	if input.CSS != "" {
		screenCSS += "\n" + input.CSS
	}
	docHTML = c.cssInjector.InjectCSS(ctx, docHTML, screenCSS)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	res := &Result{
		HTML: []byte(docHTML),
	}

	// Skip PDF generation if HTMLOnly mode
	if input.HTMLOnly {
		return res, nil
	}

	// Print document shell for the PDF path
	printHTML, err := c.docInjector.RenderPrint(ctx, c.buildPrintData(meta, tocHTML, fragment, len(store) > 0))
	if err != nil {
		return nil, fmt.Errorf("rendering print document: %w", err)
	}

	// Print CSS: page break rules first, then the print style, then user
	// CSS so callers can override anything.
	printCSS := buildPageBreaksCSS(input.PageBreaks) + c.cfg.resolvedPrintCSS
	if input.CSS != "" {
		printCSS += "\n" + input.CSS
	}
	printHTML = c.cssInjector.InjectCSS(ctx, printHTML, printCSS)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	pdfOpts := &pdfOptions{
		Page:          input.Page,
		Footer:        input.Footer,
		HeaderTitle:   headerTitle(input.Footer, meta),
		CaptureCharts: !c.cfg.noChartCapture && len(store) > 0,
	}

	pdfBytes, err := c.pdfConverter.ToPDF(ctx, printHTML, pdfOpts)
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}

	res.PDF = pdfBytes
	return res, nil
}

// Close releases resources (headless Chrome browser).
func (c *Converter) Close() error {
	if c.pdfConverter != nil {
		return c.pdfConverter.Close()
	}
	return nil
}

// buildDocumentData assembles the screen template data. The Chart.js
// runtime is only referenced when the document actually has charts.
func (c *Converter) buildDocumentData(meta *Meta, tocHTML, fragment string, hasCharts bool) *pipeline.DocumentData {
	runtimeURL := ""
	if hasCharts {
		runtimeURL = c.cfg.chartRuntimeURL
	}

	return &pipeline.DocumentData{
		Title:           meta.Title,
		Subtitle:        meta.Subtitle,
		ChartRuntimeURL: runtimeURL,
		NavLinks:        toPipelineLinks(meta.NavLinks),
		FooterLinks:     buildFooterLinks(meta, fragment),
		Year:            time.Now().Year(),
		TOC:             template.HTML(tocHTML),  // #nosec G203 -- generated from escaped heading text
		Content:         template.HTML(fragment), // #nosec G203 -- pipeline output
	}
}

// buildPrintData assembles the print template data.
func (c *Converter) buildPrintData(meta *Meta, tocHTML, fragment string, hasCharts bool) *pipeline.PrintData {
	runtimeURL := ""
	if hasCharts {
		runtimeURL = c.cfg.chartRuntimeURL
	}

	return &pipeline.PrintData{
		Title:           meta.Title,
		Subtitle:        meta.Subtitle,
		Description:     meta.Description,
		Date:            ResolveDate(meta.Date, time.Now()),
		SourceURL:       meta.SourceURL,
		ChartRuntimeURL: runtimeURL,
		TOC:             template.HTML(tocHTML),  // #nosec G203 -- generated from escaped heading text
		Content:         template.HTML(fragment), // #nosec G203 -- pipeline output
	}
}

// buildFooterLinks derives the footer link row from report metadata and
// the sections found in the converted fragment. Links whose target is
// unknown are omitted rather than rendered dead.
func buildFooterLinks(meta *Meta, fragment string) []pipeline.Link {
	var links []pipeline.Link

	if meta.DashboardHref != "" {
		links = append(links, pipeline.Link{Label: "Interactive Dashboard", URL: meta.DashboardHref})
	}
	if meta.PDFHref != "" {
		links = append(links, pipeline.Link{Label: "Download PDF", URL: meta.PDFHref})
	}

	anchors := pipeline.ExtractSectionAnchors(fragment)
	if id, ok := anchors[pipeline.SectionMethodology]; ok {
		links = append(links, pipeline.Link{Label: "Methodology", URL: "#" + id})
	}
	if id, ok := anchors[pipeline.SectionConclusion]; ok {
		links = append(links, pipeline.Link{Label: "Conclusion", URL: "#" + id})
	}

	if meta.ContactEmail != "" {
		links = append(links, pipeline.Link{Label: "Contact", URL: "mailto:" + meta.ContactEmail})
	}

	return links
}

// headerTitle picks the running header text for printed pages.
func headerTitle(f *Footer, meta *Meta) string {
	if f == nil {
		return ""
	}
	if f.HeaderText != "" {
		return f.HeaderText
	}
	return meta.Title
}

func toPipelineLinks(links []Link) []pipeline.Link {
	if len(links) == 0 {
		return nil
	}
	out := make([]pipeline.Link, len(links))
	for i, l := range links {
		out[i] = pipeline.Link{Label: l.Label, URL: l.URL}
	}
	return out
}

func tocMinDepth(t *TOC) int {
	if t.MinDepth != 0 {
		return t.MinDepth
	}
	return DefaultTOCMinDepth
}

func tocMaxDepth(t *TOC) int {
	if t.MaxDepth != 0 {
		return t.MaxDepth
	}
	return DefaultTOCMaxDepth
}

// resolveStyles resolves both style inputs (name, path, or CSS content)
// to CSS content. Called during NewConverter after options are applied
// and the asset loader is configured.
func (c *Converter) resolveStyles() error {
	screen, err := c.resolveStyle(c.cfg.screenStyle, assets.DefaultStyleName)
	if err != nil {
		return err
	}
	c.cfg.resolvedScreenCSS = screen

	printCSS, err := c.resolveStyle(c.cfg.printStyle, assets.PrintStyleName)
	if err != nil {
		return err
	}
	c.cfg.resolvedPrintCSS = printCSS
	return nil
}

func (c *Converter) resolveStyle(input, fallbackName string) (string, error) {
	if input == "" {
		input = fallbackName
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("loading style file %q: %w", input, err)
		}
		return string(content), nil
	}

	// CSS content? (contains {)
	if fileutil.IsCSS(input) {
		return input, nil
	}

	// Style name -> use asset loader
	css, err := c.assetLoader.LoadStyle(input)
	if err != nil {
		return "", fmt.Errorf("loading style %q: %w", input, err)
	}
	return css, nil
}

// validateInput checks that required fields are present and valid.
//
// This is a TRUST BOUNDARY for direct library users who build Input manually.
// CLI users have their input validated earlier by Config.Validate() at config
// load time. Both paths converge here.
func (c *Converter) validateInput(input Input) error {
	if input.Markdown == "" {
		return ErrEmptyMarkdown
	}
	if err := input.Page.Validate(); err != nil {
		return err
	}
	if err := input.TOC.Validate(); err != nil {
		return err
	}
	if err := input.PageBreaks.Validate(); err != nil {
		return err
	}
	return nil
}
