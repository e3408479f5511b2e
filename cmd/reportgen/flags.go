package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// reportFlags holds report metadata flags.
type reportFlags struct {
	title         string
	subtitle      string
	description   string
	date          string
	sourceURL     string
	contactEmail  string
	dashboardHref string
	pdfHref       string
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// tocFlags holds table of contents flags.
type tocFlags struct {
	minDepth int
	maxDepth int
	disabled bool
}

// pageBreakFlags holds page break flags.
type pageBreakFlags struct {
	breakBefore string
	orphans     int
	widows      int
}

// chartFlags holds chart widget flags.
type chartFlags struct {
	runtimeURL string
	noCapture  bool
}

// assetFlags holds asset-related flags (styles, custom asset path).
type assetFlags struct {
	screenStyle string // Name, path, or CSS for the HTML artifact
	printStyle  string // Name, path, or CSS for the PDF artifact
	assetPath   string // Override asset directory
}

// footerFlags holds printed header/footer flags.
type footerFlags struct {
	headerText string
	pageNumber bool
	disabled   bool
}

// outputFlags holds output mode flags for debugging.
type outputFlags struct {
	htmlOnly bool // Skip PDF generation
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common     commonFlags
	output     string
	workers    int
	timeout    string
	report     reportFlags
	page       pageFlags
	toc        tocFlags
	pageBreaks pageBreakFlags
	charts     chartFlags
	assets     assetFlags
	footer     footerFlags
	outputMode outputFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addReportFlags adds report metadata flags to a FlagSet.
func addReportFlags(fs *flag.FlagSet, f *reportFlags) {
	fs.StringVar(&f.title, "title", "", "report title")
	fs.StringVar(&f.subtitle, "subtitle", "", "report subtitle")
	fs.StringVar(&f.description, "description", "", "title page description (PDF)")
	fs.StringVar(&f.date, "date", "", "report date (\"auto\" = today)")
	fs.StringVar(&f.sourceURL, "source-url", "", "repository or project link")
	fs.StringVar(&f.contactEmail, "contact-email", "", "footer contact email")
	fs.StringVar(&f.dashboardHref, "dashboard-href", "", "interactive dashboard link")
	fs.StringVar(&f.pdfHref, "pdf-href", "", "downloadable PDF link")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")
}

// addTOCFlags adds TOC flags to a FlagSet.
func addTOCFlags(fs *flag.FlagSet, f *tocFlags) {
	fs.IntVar(&f.minDepth, "toc-min-depth", 0, "min heading depth for TOC (1-6, default: 2)")
	fs.IntVar(&f.maxDepth, "toc-max-depth", 0, "max heading depth for TOC (1-6, default: 4)")
	fs.BoolVar(&f.disabled, "no-toc", false, "disable table of contents")
}

// addPageBreakFlags adds page break flags to a FlagSet.
func addPageBreakFlags(fs *flag.FlagSet, f *pageBreakFlags) {
	fs.StringVar(&f.breakBefore, "break-before", "", "page breaks before headings: h1,h2")
	fs.IntVar(&f.orphans, "orphans", 0, "min lines at page bottom (1-5)")
	fs.IntVar(&f.widows, "widows", 0, "min lines at page top (1-5)")
}

// addChartFlags adds chart widget flags to a FlagSet.
func addChartFlags(fs *flag.FlagSet, f *chartFlags) {
	fs.StringVar(&f.runtimeURL, "chart-runtime", "", "Chart.js script URL")
	fs.BoolVar(&f.noCapture, "no-chart-capture", false, "skip chart rasterization in PDFs")
}

// addAssetFlags adds asset-related flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.screenStyle, "style", "", "screen CSS style name or file path")
	fs.StringVar(&f.printStyle, "print-style", "", "print CSS style name or file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// addFooterFlags adds printed header/footer flags to a FlagSet.
func addFooterFlags(fs *flag.FlagSet, f *footerFlags) {
	fs.StringVar(&f.headerText, "header-text", "", "running header text (default: report title)")
	fs.BoolVar(&f.pageNumber, "footer-page-number", false, "show page numbers in PDF footer")
	fs.BoolVar(&f.disabled, "no-footer", false, "disable printed header and footer")
}

// addOutputFlags adds output mode flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.BoolVar(&f.htmlOnly, "html-only", false, "output HTML only, skip PDF")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addReportFlags(fs, &f.report)
	addPageFlags(fs, &f.page)
	addTOCFlags(fs, &f.toc)
	addPageBreakFlags(fs, &f.pageBreaks)
	addChartFlags(fs, &f.charts)
	addAssetFlags(fs, &f.assets)
	addFooterFlags(fs, &f.footer)
	addOutputFlags(fs, &f.outputMode)

	fs.Usage = func() { printConvertUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// linksFlags holds flags for the links command.
type linksFlags struct {
	common commonFlags
	report string // Report page href the rewritten links point into
	pdf    string // PDF href
}

// parseLinksFlags parses links command flags and returns positional args.
func parseLinksFlags(args []string) (*linksFlags, []string, error) {
	fs := flag.NewFlagSet("links", flag.ContinueOnError)
	f := &linksFlags{}

	fs.StringVar(&f.report, "report-href", "report.html", "report page link target")
	fs.StringVar(&f.pdf, "pdf-href", "", "PDF link target")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printLinksUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
