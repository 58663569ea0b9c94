package iconkit

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/esimov/iconkit/svgop"
	"github.com/esimov/iconkit/utils"
)

// Toolkit is the Provider backed by the svgop package and the local file system.
type Toolkit struct {
	// Perm is the file mode of the exported artifact. Zero means 0644.
	Perm os.FileMode
}

var _ Provider = (*Toolkit)(nil)

// NewToolkit returns a Toolkit with default settings.
func NewToolkit() *Toolkit {
	return &Toolkit{Perm: 0o644}
}

// ParseDirectory imports every .svg file found under dir, recursively and in
// lexical path order.
func (t *Toolkit) ParseDirectory(dir string, opts ImportOptions) (*Collection, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, &ImportError{Path: dir, Err: err}
	}
	if !info.IsDir() {
		return nil, &ImportError{Path: dir, Err: errors.New("not a directory")}
	}

	done := make(chan struct{})
	defer close(done)
	paths, errc := walkDir(done, dir, []string{IconExt})

	c := NewCollection()
	for path := range paths {
		icon, err := t.readIcon(dir, path, opts)
		if err == nil {
			err = c.Add(icon)
		}
		if err != nil {
			return nil, &ImportError{Path: path, Err: err}
		}
		Logger().Debug("icon imported", "icon", icon.Key(), "path", path)
	}
	if err := <-errc; err != nil {
		return nil, &ImportError{Path: dir, Err: err}
	}
	return c, nil
}

func (t *Toolkit) readIcon(dir, path string, opts ImportOptions) (Icon, error) {
	ctype, err := utils.DetectContentType(path)
	if err != nil {
		return Icon{}, err
	}
	if !strings.HasPrefix(ctype, "text/") {
		return Icon{}, fmt.Errorf("not a text file (%s)", ctype)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Icon{}, err
	}
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return Icon{}, err
	}
	return NewIcon(IconKey(rel, opts.KeepCase), string(data))
}

// Optimize implements Provider.
func (t *Toolkit) Optimize(markup string, opts OptimizeOptions) (string, error) {
	return svgop.Optimize(markup, opts)
}

// ValidateTags implements Provider.
func (t *Toolkit) ValidateTags(markup string) (string, error) {
	return svgop.ValidateTags(markup)
}

// RecolorPalette implements Provider.
func (t *Toolkit) RecolorPalette(markup string, opts PaletteOptions) (string, error) {
	return svgop.Recolor(markup, opts)
}

// WriteCollectionJSON encodes the collection and atomically replaces the
// file at path.
func (t *Toolkit) WriteCollectionJSON(c *Collection, path string, opts ExportOptions) error {
	data, err := EncodeCollection(c, opts)
	if err != nil {
		return &ExportError{Path: path, Err: err}
	}
	perm := t.Perm
	if perm == 0 {
		perm = 0o644
	}
	if err := writeFileAtomic(path, data, perm); err != nil {
		return &ExportError{Path: path, Err: err}
	}
	return nil
}
