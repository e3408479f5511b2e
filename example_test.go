package report_test

import (
	"context"
	"fmt"
	"strings"

	report "github.com/acao/cuyahoga-county-fiscal-flows"
)

// Example demonstrates basic markdown to HTML conversion.
// For PDF output, unset HTMLOnly (requires Chrome).
func Example() {
	conv, err := report.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer conv.Close()

	result, err := conv.Convert(context.Background(), report.Input{
		Markdown: "# County Fiscal Flows\n\nAn analysis of municipal revenue.",
		HTMLOnly: true, // Skip PDF generation for this example
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if strings.Contains(string(result.HTML), "<h1") {
		fmt.Println("HTML generated successfully")
	}
	// Output: HTML generated successfully
}

// Example_withChart demonstrates embedding a Chart.js widget via a
// fenced chart block.
func Example_withChart() {
	conv, err := report.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer conv.Close()

	markdown := "# Revenue\n\n" +
		"```chart\n" +
		"type: bar\n" +
		"title: Revenue by Year\n" +
		"data:\n" +
		"  labels: [2024, 2025]\n" +
		"  datasets:\n" +
		"    - label: Revenue\n" +
		"      data: [100, 120]\n" +
		"```\n"

	result, err := conv.Convert(context.Background(), report.Input{
		Markdown: markdown,
		HTMLOnly: true,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if strings.Contains(string(result.HTML), "new Chart") {
		fmt.Println("chart widget emitted")
	}
	// Output: chart widget emitted
}

// Example_withMetadata demonstrates report metadata and a table of
// contents.
func Example_withMetadata() {
	conv, err := report.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer conv.Close()

	result, err := conv.Convert(context.Background(), report.Input{
		Markdown: "# Report\n\n## Methodology\n\nDetails.",
		Meta: &report.Meta{
			Title:        "County Fiscal Flows",
			Subtitle:     "Annual Report",
			Date:         "auto",
			ContactEmail: "data@example.org",
		},
		TOC:      &report.TOC{},
		HTMLOnly: true,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if strings.Contains(string(result.HTML), `class="toc"`) {
		fmt.Println("TOC generated")
	}
	// Output: TOC generated
}

// Example_pool demonstrates parallel conversion with a converter pool.
func Example_pool() {
	pool := report.NewConverterPool(2)
	defer pool.Close()

	conv, err := pool.Acquire()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := conv.Convert(context.Background(), report.Input{
		Markdown: "# Pooled\n\nContent.",
		HTMLOnly: true,
	})
	pool.Release(conv)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("converted", len(result.HTML) > 0)
	// Output: converted true
}
