// Package report converts markdown research reports to styled HTML pages
// and print-ready PDFs, rendering embedded chart blocks as Chart.js
// widgets.
//
// # Quick Start
//
// Create a converter, convert markdown, and close when done:
//
//	conv, err := report.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, report.Input{
//	    Markdown: "# Fiscal Flows\n\nAnnual summary.",
//	    Meta:     &report.Meta{Title: "Fiscal Flows"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("report.html", result.HTML, 0644)
//	os.WriteFile("report.pdf", result.PDF, 0644)
//
// Use Input.HTMLOnly to skip PDF generation.
//
// # Chart Blocks
//
// Fenced blocks with the chart language tag hold YAML chart definitions:
//
//	```chart
//	type: bar
//	title: Revenue by Municipality
//	data:
//	  labels: [Cleveland, Parma, Lakewood]
//	  datasets:
//	    - label: Revenue ($M)
//	      data: [1200, 180, 95]
//	```
//
// Each block becomes an interactive Chart.js canvas in the HTML artifact.
// In the PDF, charts are rendered in headless Chrome and captured as
// static images.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Markdown preprocessing (line normalization)
//  2. Chart block extraction (YAML decode, placeholder substitution)
//  3. Markdown to HTML conversion via Goldmark (GFM, syntax highlighting)
//  4. Chart widget rendering into the converted fragment
//  5. Document assembly (TOC, navigation, footer links, CSS injection)
//  6. PDF rendering via headless Chrome (go-rod)
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := report.NewConverter(
//	    report.WithTimeout(2 * time.Minute),
//	    report.WithScreenStyle("screen"),
//	    report.WithChartRuntime("https://example.org/chart.umd.js"),
//	    report.WithAssetPath("/path/to/custom/assets"),
//	)
//
// Per-conversion options are passed via Input:
//
//	result, err := conv.Convert(ctx, report.Input{
//	    Markdown:   content,
//	    Meta:       &report.Meta{Title: "Annual Report", Date: "auto"},
//	    CSS:        "body { font-size: 14px; }",
//	    Page:       &report.PageSettings{Size: "letter", Orientation: "portrait", Margin: 1},
//	    TOC:        &report.TOC{MinDepth: 2, MaxDepth: 4},
//	    PageBreaks: &report.PageBreaks{BeforeH1: true},
//	    Footer:     &report.Footer{ShowPageNumber: true},
//	})
//
// # Parallel Processing
//
// For batch conversion, use ConverterPool to manage multiple browser instances:
//
//	pool := report.NewConverterPool(4)
//	defer pool.Close()
//
//	conv, err := pool.Acquire()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer pool.Release(conv)
//	result, err := conv.Convert(ctx, input)
//
// # Custom Assets
//
// Override built-in styles and templates using AssetLoader:
//
//	loader, err := report.NewAssetLoader("/path/to/assets")
//	conv, err := report.NewConverter(report.WithAssetLoader(loader))
//
// Asset directory structure:
//
//	assets/
//	├── styles/
//	│   └── custom.css
//	└── templates/
//	    └── custom/
//	        ├── document.html
//	        └── print.html
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set CI=true to disable the Chrome
// sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package report
