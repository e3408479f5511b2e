package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	report "github.com/acao/cuyahoga-county-fiscal-flows"
	"github.com/acao/cuyahoga-county-fiscal-flows/internal/config"
	"github.com/acao/cuyahoga-county-fiscal-flows/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrReadMarkdown       = errors.New("failed to read markdown file")
	ErrWriteOutput        = errors.New("failed to write output file")
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrInvalidTimeout     = errors.New("invalid timeout")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath string
	HTMLPath  string
	PDFPath   string
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath string
	HTMLPath  string
	PDFPath   string
	Err       error
	Duration  time.Duration
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, args []string) error {
	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		return err
	}

	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	// Load configuration
	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return fmt.Errorf("loading config: %w\n%s", err, hints.ForConfigNotFound(nil))
			}
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	opts, err := buildConverterOptions(flags, cfg)
	if err != nil {
		return err
	}

	// Resolve input and output paths
	inputPath, err := resolveInputPath(positional, cfg)
	if err != nil {
		return err
	}
	outputDir := resolveOutputDir(flags.output, cfg)

	files, err := discoverFiles(inputPath, outputDir, flags.outputMode.htmlOnly)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no markdown files found in %s", inputPath)
	}

	input := buildInputTemplate(flags, cfg)

	poolSize := report.ResolvePoolSize(flags.workers)
	if flags.common.verbose {
		fmt.Fprintf(os.Stderr, "Pool size: %d\n", poolSize)
	}
	pool := report.NewConverterPool(poolSize, opts...)
	defer pool.Close()

	results := convertBatch(ctx, pool, files, input)

	failed := printResults(results, flags.common.quiet, flags.common.verbose)
	if failed > 0 {
		return fmt.Errorf("%d conversion(s) failed", failed)
	}
	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	// Report metadata
	if flags.report.title != "" {
		cfg.Report.Title = flags.report.title
	}
	if flags.report.subtitle != "" {
		cfg.Report.Subtitle = flags.report.subtitle
	}
	if flags.report.description != "" {
		cfg.Report.Description = flags.report.description
	}
	if flags.report.date != "" {
		cfg.Report.Date = flags.report.date
	}
	if flags.report.sourceURL != "" {
		cfg.Report.SourceURL = flags.report.sourceURL
	}
	if flags.report.contactEmail != "" {
		cfg.Report.ContactEmail = flags.report.contactEmail
	}
	if flags.report.dashboardHref != "" {
		cfg.Report.DashboardHref = flags.report.dashboardHref
	}
	if flags.report.pdfHref != "" {
		cfg.Report.PDFHref = flags.report.pdfHref
	}

	// Page settings
	if flags.page.size != "" {
		cfg.Page.Size = flags.page.size
	}
	if flags.page.orientation != "" {
		cfg.Page.Orientation = flags.page.orientation
	}
	if flags.page.margin > 0 {
		cfg.Page.Margin = flags.page.margin
	}

	// TOC
	if flags.toc.minDepth > 0 {
		cfg.TOC.MinDepth = flags.toc.minDepth
	}
	if flags.toc.maxDepth > 0 {
		cfg.TOC.MaxDepth = flags.toc.maxDepth
	}
	if flags.toc.disabled {
		cfg.TOC.Disabled = true
	}

	// Charts
	if flags.charts.runtimeURL != "" {
		cfg.Charts.RuntimeURL = flags.charts.runtimeURL
	}
	if flags.charts.noCapture {
		cfg.Charts.NoCapture = true
	}

	// Styles
	if flags.assets.screenStyle != "" {
		cfg.Style.Screen = flags.assets.screenStyle
	}
	if flags.assets.printStyle != "" {
		cfg.Style.Print = flags.assets.printStyle
	}
	if flags.assets.assetPath != "" {
		cfg.Style.BasePath = flags.assets.assetPath
	}

	// Footer
	if flags.footer.headerText != "" {
		cfg.Footer.HeaderText = flags.footer.headerText
	}
	if flags.footer.pageNumber {
		cfg.Footer.ShowPageNumber = true
	}
	if flags.footer.disabled {
		cfg.Footer.Disabled = true
	}
}

// buildConverterOptions translates CLI and config state to library options.
func buildConverterOptions(flags *convertFlags, cfg *config.Config) ([]report.Option, error) {
	var opts []report.Option

	if flags.timeout != "" {
		d, err := time.ParseDuration(flags.timeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: %q\n%s", ErrInvalidTimeout, flags.timeout, hints.ForTimeout())
		}
		opts = append(opts, report.WithTimeout(d))
	}
	if cfg.Style.Screen != "" {
		opts = append(opts, report.WithScreenStyle(cfg.Style.Screen))
	}
	if cfg.Style.Print != "" {
		opts = append(opts, report.WithPrintStyle(cfg.Style.Print))
	}
	if cfg.Style.BasePath != "" {
		opts = append(opts, report.WithAssetPath(cfg.Style.BasePath))
	}
	if cfg.Charts.RuntimeURL != "" {
		opts = append(opts, report.WithChartRuntime(cfg.Charts.RuntimeURL))
	}
	if cfg.Charts.NoCapture {
		opts = append(opts, report.WithoutChartCapture())
	}

	return opts, nil
}

// buildInputTemplate assembles the per-file conversion input from config.
// Markdown is filled in per file by convertFile.
func buildInputTemplate(flags *convertFlags, cfg *config.Config) report.Input {
	input := report.Input{
		HTMLOnly: flags.outputMode.htmlOnly,
		Meta: &report.Meta{
			Title:         cfg.Report.Title,
			Subtitle:      cfg.Report.Subtitle,
			Description:   cfg.Report.Description,
			Date:          cfg.Report.Date,
			SourceURL:     cfg.Report.SourceURL,
			ContactEmail:  cfg.Report.ContactEmail,
			DashboardHref: cfg.Report.DashboardHref,
			PDFHref:       cfg.Report.PDFHref,
			NavLinks:      toNavLinks(cfg.Report.NavLinks),
		},
	}

	if cfg.Page.Size != "" || cfg.Page.Orientation != "" || cfg.Page.Margin > 0 {
		ps := report.DefaultPageSettings()
		if cfg.Page.Size != "" {
			ps.Size = cfg.Page.Size
		}
		if cfg.Page.Orientation != "" {
			ps.Orientation = cfg.Page.Orientation
		}
		if cfg.Page.Margin > 0 {
			ps.Margin = cfg.Page.Margin
		}
		input.Page = ps
	}

	if !cfg.TOC.Disabled {
		input.TOC = &report.TOC{
			MinDepth: cfg.TOC.MinDepth,
			MaxDepth: cfg.TOC.MaxDepth,
		}
	}

	h1, h2 := parseBreakBefore(flags.pageBreaks.breakBefore)
	input.PageBreaks = &report.PageBreaks{
		BeforeH1: h1,
		BeforeH2: h2,
		Orphans:  flags.pageBreaks.orphans,
		Widows:   flags.pageBreaks.widows,
	}

	if !cfg.Footer.Disabled {
		input.Footer = &report.Footer{
			ShowPageNumber: cfg.Footer.ShowPageNumber,
			HeaderText:     cfg.Footer.HeaderText,
		}
	}

	return input
}

// toNavLinks converts config links to library links.
func toNavLinks(links []config.LinkConfig) []report.Link {
	if len(links) == 0 {
		return nil
	}
	out := make([]report.Link, len(links))
	for i, l := range links {
		out[i] = report.Link{Label: l.Label, URL: l.URL}
	}
	return out
}

// parseBreakBefore parses "--break-before=h1,h2" into individual bools.
func parseBreakBefore(value string) (h1, h2 bool) {
	for _, p := range strings.Split(strings.ToLower(value), ",") {
		switch strings.TrimSpace(p) {
		case "h1":
			h1 = true
		case "h2":
			h2 = true
		}
	}
	return h1, h2
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// discoverFiles finds all markdown files to convert.
func discoverFiles(inputPath, outputDir string, htmlOnly bool) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateMarkdownExtension(inputPath); err != nil {
			return nil, err
		}
		return []FileToConvert{outputPathsFor(inputPath, outputDir, "", htmlOnly)}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if ext != ".md" && ext != ".markdown" {
			return nil
		}
		files = append(files, outputPathsFor(path, outputDir, inputPath, htmlOnly))
		return nil
	})

	return files, err
}

// outputPathsFor determines the HTML and PDF output paths for a markdown file.
func outputPathsFor(inputPath, outputDir, baseInputDir string, htmlOnly bool) FileToConvert {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)

	dir := filepath.Dir(inputPath)
	if outputDir != "" {
		dir = outputDir
		if baseInputDir != "" {
			if rel, err := filepath.Rel(baseInputDir, inputPath); err == nil {
				dir = filepath.Join(outputDir, filepath.Dir(rel))
			}
		}
	}

	f := FileToConvert{
		InputPath: inputPath,
		HTMLPath:  filepath.Join(dir, base+".html"),
	}
	if !htmlOnly {
		f.PDFPath = filepath.Join(dir, base+".pdf")
	}
	return f
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	ext := filepath.Ext(path)
	if ext != ".md" && ext != ".markdown" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > report.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, report.MaxPoolSize)
	}
	return nil
}

// convertBatch processes files concurrently using the converter pool.
func convertBatch(ctx context.Context, pool *report.ConverterPool, files []FileToConvert, input report.Input) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := pool.Size()
	if concurrency > len(files) {
		concurrency = len(files)
	}

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			conv, err := pool.Acquire()
			if err != nil {
				for idx := range jobs {
					results[idx] = ConversionResult{InputPath: files[idx].InputPath, Err: err}
				}
				return
			}
			defer pool.Release(conv)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], input)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, conv *report.Converter, f FileToConvert, input report.Input) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath: f.InputPath,
		HTMLPath:  f.HTMLPath,
		PDFPath:   f.PDFPath,
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		result.Duration = time.Since(start)
		return result
	}
	input.Markdown = string(content)

	if err := os.MkdirAll(filepath.Dir(f.HTMLPath), dirPermissions); err != nil {
		result.Err = fmt.Errorf("creating output directory: %w\n%s", err, hints.ForOutputDirectory())
		result.Duration = time.Since(start)
		return result
	}

	res, err := conv.Convert(ctx, input)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	// #nosec G306 -- generated artifacts are meant to be readable
	if err := os.WriteFile(f.HTMLPath, res.HTML, filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		result.Duration = time.Since(start)
		return result
	}

	if f.PDFPath != "" && res.PDF != nil {
		// #nosec G306 -- generated artifacts are meant to be readable
		if err := os.WriteFile(f.PDFPath, res.PDF, filePermissions); err != nil {
			result.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
			result.Duration = time.Since(start)
			return result
		}
	}

	result.Duration = time.Since(start)
	return result
}

// printResults outputs conversion results and returns the failure count.
func printResults(results []ConversionResult, quiet, verbose bool) int {
	var succeeded, failed int

	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		succeeded++
		if quiet {
			continue
		}

		target := r.HTMLPath
		if r.PDFPath != "" {
			target += ", " + r.PDFPath
		}
		if verbose {
			fmt.Fprintf(os.Stdout, "%s -> %s (%v)\n", r.InputPath, target, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(os.Stdout, "Created %s\n", target)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(os.Stdout, "\n%d succeeded, %d failed\n", succeeded, failed)
	}

	return failed
}
