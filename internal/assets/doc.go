// Package assets provides CSS styles and HTML templates for report
// generation.
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-ins)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// Built-in assets cover the screen style, the print style, and the
// report template set (document shell plus print shell). Users can
// override any of them by pointing the resolver at a directory:
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css
//	└── templates/
//	    └── {name}/
//	        ├── document.html
//	        └── print.html
//
// Asset names are validated to prevent path traversal.
package assets
