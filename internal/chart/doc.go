// Package chart turns fenced ```chart blocks into Chart.js widgets.
//
// The package works as a preprocessor/postprocessor pair around the
// generic markdown conversion step:
//
//  1. Extract scans raw markdown lines, decodes the YAML body of every
//     chart fence, stores the decoded configuration in a per-run Store,
//     and leaves an inert placeholder div in the line stream.
//  2. Render runs over the converted HTML and replaces each placeholder
//     with a canvas element plus the initialization script for it.
//
// The Store is owned by the caller: create one per document conversion,
// pass it to both passes, and discard it afterwards. Extraction is the
// only writer; rendering only reads.
package chart
