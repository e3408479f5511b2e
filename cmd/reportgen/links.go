package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/acao/cuyahoga-county-fiscal-flows/internal/pipeline"
)

// ErrNoPages indicates the links command received no pages to rewrite.
var ErrNoPages = errors.New("no pages specified")

// runLinks rewrites the footer link block of dashboard pages so they
// point at the matching sections of a generated report. The first
// positional argument is the report HTML; the rest are pages to update
// in place.
func runLinks(args []string) error {
	flags, positional, err := parseLinksFlags(args)
	if err != nil {
		return err
	}

	if len(positional) < 1 {
		return fmt.Errorf("%w: usage: reportgen links <report.html> <page.html>...", ErrNoInput)
	}
	reportPath := positional[0]
	pages := positional[1:]
	if len(pages) == 0 {
		return ErrNoPages
	}

	reportHTML, err := os.ReadFile(reportPath) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("reading report: %w", err)
	}

	anchors := pipeline.ExtractSectionAnchors(string(reportHTML))
	links := buildSectionLinks(flags.report, flags.pdf, anchors)

	var updated, skipped int
	for _, page := range pages {
		content, err := os.ReadFile(page) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("reading page %s: %w", page, err)
		}

		rewritten := pipeline.RewriteFooterLinks(string(content), links)
		if rewritten == string(content) {
			skipped++
			if !flags.common.quiet {
				fmt.Fprintf(os.Stdout, "Skipped %s (no footer links)\n", page)
			}
			continue
		}

		// #nosec G306 -- dashboard pages are meant to be readable
		if err := os.WriteFile(page, []byte(rewritten), filePermissions); err != nil {
			return fmt.Errorf("writing page %s: %w", page, err)
		}
		updated++
		if !flags.common.quiet {
			fmt.Fprintf(os.Stdout, "Updated %s\n", page)
		}
	}

	if !flags.common.quiet && len(pages) > 1 {
		fmt.Fprintf(os.Stdout, "\n%d updated, %d skipped\n", updated, skipped)
	}
	return nil
}

// buildSectionLinks assembles the footer link row for dashboard pages.
// Section links fall back to the bare report href when the report has no
// matching heading.
func buildSectionLinks(reportHref, pdfHref string, anchors map[string]string) []pipeline.FooterLink {
	links := []pipeline.FooterLink{
		{Label: "Full Report", URL: reportHref},
		{Label: "Methodology", URL: pipeline.SectionHref(reportHref, anchors, pipeline.SectionMethodology)},
		{Label: "Data Sources", URL: pipeline.SectionHref(reportHref, anchors, pipeline.SectionDataSources)},
		{Label: "Policy Recommendations", URL: pipeline.SectionHref(reportHref, anchors, pipeline.SectionSolutions)},
		{Label: "Conclusion", URL: pipeline.SectionHref(reportHref, anchors, pipeline.SectionConclusion)},
	}
	if pdfHref != "" {
		links = append(links, pipeline.FooterLink{Label: "Download PDF", URL: pdfHref})
	}
	return links
}
