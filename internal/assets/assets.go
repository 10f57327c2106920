package assets

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// EmbeddedStyles lists the built-in style names in lexical order.
func EmbeddedStyles() []string {
	return defaultLoader.Styles()
}
