package assets

// AssetLoader defines the contract for loading Word style sheets.
// Implementations may load from embedded assets, filesystem, S3, database, etc.
type AssetLoader interface {
	// LoadStyle loads a style sheet by name (without .xml extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)
}

// DefaultStyleName is the name of the built-in style sheet.
const DefaultStyleName = "default"

// styleExt is the file extension of style sheet assets.
const styleExt = ".xml"
