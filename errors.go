package md2docx

import "errors"

// Sentinel errors for library operations.
var (
	ErrReadMarkdown   = errors.New("failed to read markdown file")
	ErrWriteDocument  = errors.New("failed to write document")
	ErrDocumentBuild  = errors.New("document generation failed")
	ErrHTMLConversion = errors.New("HTML conversion failed")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	// Asset loading errors.
	ErrStyleNotFound     = errors.New("style not found")
	ErrInvalidStyleSheet = errors.New("invalid style sheet")
	ErrInvalidAssetPath  = errors.New("invalid asset path")
)
