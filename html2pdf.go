package report

import (
	"context"
	"fmt"
	"html"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/acao/cuyahoga-county-fiscal-flows/internal/fileutil"
)

// pdfConverter abstracts HTML to PDF conversion to allow different backends.
type pdfConverter interface {
	ToPDF(ctx context.Context, htmlContent string, opts *pdfOptions) ([]byte, error)
	Close() error
}

// pdfRenderer abstracts PDF rendering from an HTML file to enable testing
// without a browser.
type pdfRenderer interface {
	RenderFromFile(ctx context.Context, filePath string, opts *pdfOptions) ([]byte, error)
}

// pdfOptions holds options for PDF generation.
type pdfOptions struct {
	Page          *PageSettings
	Footer        *Footer
	HeaderTitle   string
	CaptureCharts bool
}

// pageDimensions maps page size names to width and height in inches
// (portrait orientation).
var pageDimensions = map[string]struct{ width, height float64 }{
	PageSizeLetter: {8.5, 11},
	PageSizeA4:     {8.27, 11.69},
	PageSizeLegal:  {8.5, 14},
}

// chromeHeaderFontFamily styles Chrome's native header and footer, which
// render outside the document CSS.
const chromeHeaderFontFamily = "Georgia, 'Times New Roman', serif"

// chartCaptureTimeout bounds how long the renderer waits for Chart.js to
// finish drawing before rasterizing canvases.
const chartCaptureTimeout = 10 * time.Second

// chartCaptureJS waits for Chart.js to initialize every chart canvas,
// then replaces each canvas with a static image so the print engine
// captures the drawn chart instead of a blank canvas. Returns the number
// of canvases still uncaptured at the deadline.
const chartCaptureJS = `async (timeoutMs) => {
	const canvases = Array.from(document.querySelectorAll('.chart-container canvas'));
	if (canvases.length === 0) {
		return 0;
	}
	const deadline = Date.now() + timeoutMs;
	while (Date.now() < deadline) {
		if (typeof Chart !== 'undefined' && canvases.every(c => c.chart)) {
			break;
		}
		await new Promise(resolve => setTimeout(resolve, 100));
	}
	let missed = 0;
	for (const canvas of canvases) {
		if (!canvas.chart) {
			missed++;
			continue;
		}
		const img = document.createElement('img');
		img.src = canvas.toDataURL('image/png');
		img.style.width = '100%';
		canvas.parentNode.replaceChild(img, canvas);
	}
	return missed;
}`

// rodRenderer implements pdfRenderer using go-rod.
// Rod automatically downloads Chromium on first run if not found.
type rodRenderer struct {
	browser *rod.Browser
	timeout time.Duration
	warnf   func(format string, args ...any)
}

// newRodRenderer creates a rodRenderer with the given timeout.
func newRodRenderer(timeout time.Duration, warnf func(format string, args ...any)) *rodRenderer {
	return &rodRenderer{timeout: timeout, warnf: warnf}
}

// ensureBrowser lazily connects to the browser.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}
	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Close releases browser resources.
func (r *rodRenderer) Close() error {
	if r.browser != nil {
		err := r.browser.Close()
		r.browser = nil
		return err
	}
	return nil
}

// RenderFromFile opens a local HTML file in headless Chrome and renders it to PDF.
// Returns explicit errors instead of panicking when browser operations fail.
func (r *rodRenderer) RenderFromFile(ctx context.Context, filePath string, opts *pdfOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + filePath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	// Wait for page to load with timeout from context or default
	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Rasterize chart canvases before printing. Best effort: a chart that
	// never initializes prints blank, which beats failing the whole run.
	if opts != nil && opts.CaptureCharts {
		r.captureCharts(page, timeout)
	}

	pdfOpts := buildPDFOptions(opts)

	reader, err := page.PDF(pdfOpts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	return pdfBuf, nil
}

// captureCharts runs the in-page capture script and reports partial or
// failed captures through the warn logger.
func (r *rodRenderer) captureCharts(page *rod.Page, timeout time.Duration) {
	captureTimeout := chartCaptureTimeout
	if timeout < captureTimeout {
		captureTimeout = timeout
	}

	res, err := page.Timeout(captureTimeout + time.Second).Eval(chartCaptureJS, captureTimeout.Milliseconds())
	if err != nil {
		r.warn("chart capture failed: %v", err)
		return
	}
	if missed := res.Value.Int(); missed > 0 {
		r.warn("%d chart(s) did not render before the capture deadline", missed)
	}
}

func (r *rodRenderer) warn(format string, args ...any) {
	if r.warnf != nil {
		r.warnf(format, args...)
	}
}

// buildPDFOptions constructs proto.PagePrintToPDF from page settings and
// the optional header and footer.
func buildPDFOptions(opts *pdfOptions) *proto.PagePrintToPDF {
	page := DefaultPageSettings()
	var footer *Footer
	headerTitle := ""
	if opts != nil {
		if opts.Page != nil {
			page = opts.Page
		}
		footer = opts.Footer
		headerTitle = opts.HeaderTitle
	}

	dims, ok := pageDimensions[strings.ToLower(page.Size)]
	if !ok {
		dims = pageDimensions[PageSizeA4]
	}
	width, height := dims.width, dims.height
	if strings.ToLower(page.Orientation) == OrientationLandscape {
		width, height = height, width
	}

	margin := page.Margin
	if margin == 0 {
		margin = DefaultMargin
	}

	pdfOpts := &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(width),
		PaperHeight:     floatPtr(height),
		MarginTop:       floatPtr(margin),
		MarginBottom:    floatPtr(margin),
		MarginLeft:      floatPtr(margin),
		MarginRight:     floatPtr(margin),
		PrintBackground: true,
	}

	if footer != nil {
		pdfOpts.DisplayHeaderFooter = true
		pdfOpts.HeaderTemplate = buildHeaderTemplate(headerTitle)
		pdfOpts.FooterTemplate = buildFooterTemplate(footer)
	}

	return pdfOpts
}

// buildHeaderTemplate generates the running title for Chrome's native
// page header.
func buildHeaderTemplate(title string) string {
	if title == "" {
		return "<span></span>"
	}
	return fmt.Sprintf(`<div style="font-size: 9px; font-family: %s; color: #7f8c8d; width: 100%%; text-align: center;">%s</div>`, chromeHeaderFontFamily, html.EscapeString(title))
}

// buildFooterTemplate generates the page number line for Chrome's native
// page footer.
func buildFooterTemplate(f *Footer) string {
	if f == nil || !f.ShowPageNumber {
		return "<span></span>"
	}
	return fmt.Sprintf(`<div style="font-size: 9px; font-family: %s; color: #7f8c8d; width: 100%%; text-align: center;">Page <span class="pageNumber"></span>/<span class="totalPages"></span></div>`, chromeHeaderFontFamily)
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}

// rodConverter converts HTML to PDF using headless Chrome via go-rod.
type rodConverter struct {
	renderer *rodRenderer
}

// newRodConverter creates a rodConverter with production renderer.
func newRodConverter(timeout time.Duration, warnf func(format string, args ...any)) *rodConverter {
	return &rodConverter{
		renderer: newRodRenderer(timeout, warnf),
	}
}

// ToPDF converts HTML content to PDF bytes using headless Chrome.
// The HTML is written to a temporary file so relative asset URLs and the
// Chart.js runtime resolve the same way they do in a regular browser.
func (c *rodConverter) ToPDF(ctx context.Context, htmlContent string, opts *pdfOptions) ([]byte, error) {
	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return c.renderer.RenderFromFile(ctx, tmpPath, opts)
}

// Close releases browser resources.
func (c *rodConverter) Close() error {
	if c.renderer != nil {
		return c.renderer.Close()
	}
	return nil
}
