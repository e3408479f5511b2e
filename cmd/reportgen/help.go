package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: reportgen <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert markdown reports to HTML and PDF")
	fmt.Fprintln(w, "  links      Point dashboard footer links at report sections")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'reportgen help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: reportgen convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown reports to HTML and PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <d>         PDF generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "      --html-only           Output HTML only, skip PDF")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Report:")
	fmt.Fprintln(w, "      --title <s>           Report title")
	fmt.Fprintln(w, "      --subtitle <s>        Report subtitle")
	fmt.Fprintln(w, "      --description <s>     Title page description (PDF)")
	fmt.Fprintln(w, "      --date <s>            Date: \"auto\", \"auto:iso\", or literal")
	fmt.Fprintln(w, "      --source-url <s>      Repository or project link")
	fmt.Fprintln(w, "      --contact-email <s>   Footer contact email")
	fmt.Fprintln(w, "      --dashboard-href <s>  Interactive dashboard link")
	fmt.Fprintln(w, "      --pdf-href <s>        Downloadable PDF link")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Charts:")
	fmt.Fprintln(w, "      --chart-runtime <url> Chart.js script URL")
	fmt.Fprintln(w, "      --no-chart-capture    Skip chart rasterization in PDFs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: letter, a4, legal")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>          Margin in inches (0.25-3.0)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Table of Contents:")
	fmt.Fprintln(w, "      --toc-min-depth <n>   Min heading depth (1-6, default: 2)")
	fmt.Fprintln(w, "      --toc-max-depth <n>   Max heading depth (1-6, default: 4)")
	fmt.Fprintln(w, "      --no-toc              Disable table of contents")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page Breaks:")
	fmt.Fprintln(w, "      --break-before <s>    Break before headings: h1,h2")
	fmt.Fprintln(w, "      --orphans <n>         Min lines at page bottom (1-5)")
	fmt.Fprintln(w, "      --widows <n>          Min lines at page top (1-5)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Header/Footer:")
	fmt.Fprintln(w, "      --header-text <s>     Running header text (default: report title)")
	fmt.Fprintln(w, "      --footer-page-number  Show page numbers in PDF footer")
	fmt.Fprintln(w, "      --no-footer           Disable printed header and footer")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <s>           Screen CSS style name or file path")
	fmt.Fprintln(w, "      --print-style <s>     Print CSS style name or file path")
	fmt.Fprintln(w, "      --asset-path <path>   Custom asset directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// printLinksUsage prints usage for the links command.
func printLinksUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: reportgen links <report.html> <page.html>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rewrite the footer link block of dashboard pages so they point")
	fmt.Fprintln(w, "at the matching sections of a generated report. Pages are")
	fmt.Fprintln(w, "updated in place.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --report-href <s>     Report page link target (default: report.html)")
	fmt.Fprintln(w, "      --pdf-href <s>        PDF link target (omitted when empty)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
}

// runHelp prints help for a specific command.
func runHelp(args []string, stdout, stderr io.Writer) {
	if len(args) == 0 {
		printUsage(stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(stdout)
	case "links":
		printLinksUsage(stdout)
	case "version":
		fmt.Fprintln(stdout, "Usage: reportgen version")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Show version information.")
	case "help":
		fmt.Fprintln(stdout, "Usage: reportgen help [command]")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Show help for a command.")
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", args[0])
		printUsage(stderr)
	}
}
