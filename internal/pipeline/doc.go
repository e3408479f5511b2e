// Package pipeline implements the markdown-to-HTML conversion stages.
//
// The stages, in order:
//   - Markdown preprocessing (line ending normalization, blank line
//     compression) ahead of chart block extraction
//   - Markdown to HTML fragment conversion via Goldmark
//   - Table of contents generation from the converted fragment
//   - Document and print template rendering around the fragment
//   - CSS injection into the assembled documents
//   - Section anchor extraction and dashboard footer-link rewriting
//
// Chart block substitution lives in the chart package; PDF rendering is
// handled by the root report package using headless Chrome (go-rod).
package pipeline
