package iconkit

import "github.com/esimov/iconkit/svgop"

// OptimizeOptions selects the rewrites of the optimizer stage.
type OptimizeOptions = svgop.OptimizeOptions

// PaletteOptions configures the palette stage.
type PaletteOptions = svgop.PaletteOptions

// Provider is the set of capabilities the pipeline delegates to. Each method
// covers one operation; the pipeline never depends on how they are done.
type Provider interface {
	// ParseDirectory scans dir for icon files and returns them as a
	// collection. Any unreadable or malformed file fails the whole import.
	ParseDirectory(dir string, opts ImportOptions) (*Collection, error)
	// Optimize returns a smaller, visually identical version of the markup.
	Optimize(markup string, opts OptimizeOptions) (string, error)
	// ValidateTags strips editor and metadata content and rejects
	// disallowed elements.
	ValidateTags(markup string) (string, error)
	// RecolorPalette rewrites the colors of the markup.
	RecolorPalette(markup string, opts PaletteOptions) (string, error)
	// WriteCollectionJSON persists the collection at path.
	WriteCollectionJSON(c *Collection, path string, opts ExportOptions) error
}
