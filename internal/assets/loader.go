package assets

// Names of the built-in assets.
const (
	DefaultTemplateName = "default"
	DefaultStyleName    = "default"
)

// Asset kinds, which are also the subdirectory names under an asset path.
const (
	kindStyles    = "styles"
	kindTemplates = "templates"
)

// AssetLoader defines the contract for loading page templates and stylesheets.
type AssetLoader interface {
	// LoadStyle loads a stylesheet by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)

	// LoadTemplate loads a page template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)
}
