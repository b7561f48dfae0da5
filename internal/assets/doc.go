// Package assets provides the page templates and stylesheets used to build a site.
// Assets can be loaded from embedded files or a custom directory.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in assets)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// AssetResolver is the loader used by the converter. It tries the custom
// FilesystemLoader first and falls back to EmbeddedLoader when the asset is
// not found, so a site can override one template and keep the other defaults.
//
// # Directory Structure
//
//	{assetPath}/
//	├── styles/
//	│   └── {name}.css      # Stylesheet inlined into every page
//	└── templates/
//	    └── {name}.html     # Page template with {{ Title }} and {{ Content }}
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within the asset
// directory.
package assets
