package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"html/template"
	"regexp"
	"strconv"
	"strings"
)

// ErrDocumentRender indicates document template rendering failed.
var ErrDocumentRender = errors.New("document template rendering failed")

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
// CSS content is sanitized to prevent injection attacks.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" {
		return htmlContent
	}

	if ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	// Try inserting before </head>
	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	// Try inserting after <body>
	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		// Find the closing > of <body...>
		closeIdx := strings.Index(htmlContent[idx:], ">")
		if closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	// Fallback: prepend
	return styleBlock + htmlContent
}

// sanitizeCSS escapes sequences that could close a <style> block early.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// Link is a labeled hyperlink for the navigation bar and footer.
type Link struct {
	Label string
	URL   string
}

// DocumentData feeds the screen document template.
type DocumentData struct {
	Title           string
	Subtitle        string
	ChartRuntimeURL string
	NavLinks        []Link
	FooterLinks     []Link
	Year            int
	TOC             template.HTML
	Content         template.HTML
}

// PrintData feeds the print document template used for PDF output.
type PrintData struct {
	Title           string
	Subtitle        string
	Description     string
	Date            string
	SourceURL       string
	ChartRuntimeURL string
	TOC             template.HTML
	Content         template.HTML
}

// DocumentInjector renders a converted fragment into a full document.
type DocumentInjector interface {
	RenderDocument(ctx context.Context, data *DocumentData) (string, error)
	RenderPrint(ctx context.Context, data *PrintData) (string, error)
}

// DocumentInjection wraps HTML fragments in the report templates.
type DocumentInjection struct {
	document *template.Template
	print    *template.Template
}

// NewDocumentInjection parses the screen and print templates.
// Returns error if either template cannot be parsed.
func NewDocumentInjection(documentTmpl, printTmpl string) (*DocumentInjection, error) {
	doc, err := template.New("document").Parse(documentTmpl)
	if err != nil {
		return nil, fmt.Errorf("parsing document template: %w", err)
	}
	prt, err := template.New("print").Parse(printTmpl)
	if err != nil {
		return nil, fmt.Errorf("parsing print template: %w", err)
	}
	return &DocumentInjection{document: doc, print: prt}, nil
}

// RenderDocument renders the screen document for the HTML artifact.
func (d *DocumentInjection) RenderDocument(ctx context.Context, data *DocumentData) (string, error) {
	return d.render(ctx, d.document, data)
}

// RenderPrint renders the print document for the PDF artifact.
func (d *DocumentInjection) RenderPrint(ctx context.Context, data *PrintData) (string, error) {
	return d.render(ctx, d.print, data)
}

func (d *DocumentInjection) render(ctx context.Context, tmpl *template.Template, data any) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentRender, err)
	}
	return buf.String(), nil
}

// headingInfo represents an extracted heading from HTML.
type headingInfo struct {
	Level int    // 1-6
	ID    string // anchor ID
	Text  string // heading text content
}

// headingPattern matches h1-h6 tags with id attribute.
// Captures: 1=level, 2=id, 3=inner HTML (may contain inline tags)
var headingPattern = regexp.MustCompile(`(?is)<h([1-6])[^>]*\bid="([^"]*)"[^>]*>(.*?)</h[1-6]>`)

// htmlTagPattern matches HTML tags for stripping from heading text.
var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// stripHTMLTags removes HTML tags from a string, decodes HTML entities,
// and trims whitespace. Decoding entities avoids double-encoding when
// the text is later escaped for the TOC markup.
func stripHTMLTags(s string) string {
	s = htmlTagPattern.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	return strings.TrimSpace(s)
}

// extractHeadings parses HTML and returns headings between minDepth and
// maxDepth. Headings without IDs are skipped.
func extractHeadings(htmlContent string, minDepth, maxDepth int) []headingInfo {
	matches := headingPattern.FindAllStringSubmatch(htmlContent, -1)
	if len(matches) == 0 {
		return nil
	}

	var headings []headingInfo
	for _, m := range matches {
		level, _ := strconv.Atoi(m[1])
		if level < minDepth || level > maxDepth {
			continue
		}
		headings = append(headings, headingInfo{
			Level: level,
			ID:    m[2],
			Text:  stripHTMLTags(m[3]),
		})
	}
	return headings
}

// GenerateTOC builds the table of contents markup for the given HTML
// fragment. Entries carry a toc-hN class matching their heading level
// so the stylesheets can indent them. Returns "" when no heading in
// the depth range carries an id.
func GenerateTOC(htmlContent string, minDepth, maxDepth int) string {
	headings := extractHeadings(htmlContent, minDepth, maxDepth)
	if len(headings) == 0 {
		return ""
	}

	var buf strings.Builder
	buf.WriteString(`<ul class="toc">`)
	for _, h := range headings {
		buf.WriteString(`<li class="toc-h`)
		buf.WriteString(strconv.Itoa(h.Level))
		buf.WriteString(`"><a href="#`)
		buf.WriteString(html.EscapeString(h.ID))
		buf.WriteString(`">`)
		buf.WriteString(html.EscapeString(h.Text))
		buf.WriteString(`</a></li>`)
	}
	buf.WriteString(`</ul>`)
	return buf.String()
}
