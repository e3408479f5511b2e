package pipeline

import (
	"regexp"
	"strings"
)

// Well-known section keys resolved by ExtractSectionAnchors. Dashboard
// pages link to these sections of the generated report.
const (
	SectionMethodology = "methodology"
	SectionConclusion  = "conclusion"
	SectionDataSources = "data-sources"
	SectionSolutions   = "solutions"
	SectionAppendixA   = "appendix-a"
	SectionAppendixB   = "appendix-b"
)

// footerLinksPattern matches the footer link block of a dashboard page.
var footerLinksPattern = regexp.MustCompile(`(?s)<div class="footer-links">.*?</div>`)

// ExtractSectionAnchors scans rendered report HTML for headings that
// correspond to well-known sections and returns a map from section key
// to heading anchor. Matching is by title keywords, so section renames
// that keep the keyword continue to resolve.
func ExtractSectionAnchors(htmlContent string) map[string]string {
	anchors := make(map[string]string)

	for _, h := range extractHeadings(htmlContent, 1, 6) {
		title := strings.ToLower(h.Text)
		switch {
		case strings.Contains(title, "appendix a"):
			setAnchor(anchors, SectionAppendixA, h.ID)
		case strings.Contains(title, "appendix b"):
			setAnchor(anchors, SectionAppendixB, h.ID)
		case strings.Contains(title, "methodology"):
			setAnchor(anchors, SectionMethodology, h.ID)
		case strings.Contains(title, "conclusion"):
			setAnchor(anchors, SectionConclusion, h.ID)
		case strings.Contains(title, "data sources"):
			setAnchor(anchors, SectionDataSources, h.ID)
		case strings.Contains(title, "policy") && strings.Contains(title, "recommendation"):
			setAnchor(anchors, SectionSolutions, h.ID)
		}
	}

	return anchors
}

// setAnchor records the first heading matching a section key; later
// matches (e.g. a "Conclusion" subsection inside an appendix) lose.
func setAnchor(anchors map[string]string, key, id string) {
	if _, ok := anchors[key]; !ok {
		anchors[key] = id
	}
}

// FooterLink pairs a label with a target URL in the rewritten footer.
type FooterLink struct {
	Label string
	URL   string
}

// RewriteFooterLinks replaces the first <div class="footer-links">
// block of pageHTML with a block built from links. If the page has no
// footer-links block, the input is returned unchanged.
func RewriteFooterLinks(pageHTML string, links []FooterLink) string {
	if len(links) == 0 {
		return pageHTML
	}

	var buf strings.Builder
	buf.WriteString(`<div class="footer-links">`)
	for _, l := range links {
		buf.WriteString("\n                <a href=\"")
		buf.WriteString(l.URL)
		buf.WriteString(`">`)
		buf.WriteString(l.Label)
		buf.WriteString(`</a>`)
	}
	buf.WriteString("\n            </div>")

	replaced := false
	return footerLinksPattern.ReplaceAllStringFunc(pageHTML, func(match string) string {
		if replaced {
			return match
		}
		replaced = true
		return buf.String()
	})
}

// SectionHref builds a report link for a section key, falling back to
// the bare report href when the anchor was not found.
func SectionHref(reportHref string, anchors map[string]string, key string) string {
	if id, ok := anchors[key]; ok {
		return reportHref + "#" + id
	}
	return reportHref
}
