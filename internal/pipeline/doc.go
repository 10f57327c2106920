// Package pipeline implements the Markdown-to-document conversion pipeline.
//
// This package handles everything between raw Markdown text and the
// document writer:
//   - Markdown preprocessing (line ending normalization)
//   - Line classification (headings, rules, list items, paragraphs, tables)
//   - Table accumulation and parsing
//   - Inline markup stripping (bold, italic, code, links)
//   - Status marker detection for colored paragraphs
//   - Markdown to HTML preview via Goldmark, with relative links anchored
//     to the source directory
//
// The scanner never touches the output format. It emits blocks to a Sink,
// and the root md2docx package adapts that Sink onto the DOCX writer in
// internal/docx. This keeps the classifier testable without a document.
package pipeline
