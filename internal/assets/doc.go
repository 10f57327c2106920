// Package assets provides the Word style sheets used for DOCX generation.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in styles)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in style sheets (default, classic)
// embedded at compile time.
//
// FilesystemLoader allows users to provide custom style sheets from a
// directory, with path traversal protection and symlink resolution.
//
// AssetResolver is the primary loader used by the converter. It tries the
// custom FilesystemLoader first, falling back to EmbeddedLoader if the asset
// is not found. This enables overriding one style while keeping the others.
//
// # Directory Structure
//
//	{basePath}/
//	└── styles/
//	    └── {name}.xml           # word/styles.xml body (e.g., classic.xml)
//
// A style sheet must define the style IDs the document writer references;
// ValidateStyleSheet reports the ones that are missing.
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
