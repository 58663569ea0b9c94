package iconkit

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// ExportOptions configures the collection artifact.
type ExportOptions struct {
	// Optimize writes compact JSON instead of indented JSON.
	Optimize bool
}

// Export writes the collection to path through the provider. Any failure is
// returned as an *ExportError and leaves no partial artifact behind.
func Export(p Provider, c *Collection, path string, opts ExportOptions) error {
	if err := p.WriteCollectionJSON(c, path, opts); err != nil {
		var ee *ExportError
		if errors.As(err, &ee) {
			return err
		}
		return &ExportError{Path: path, Err: err}
	}
	return nil
}

// entry is the exported form of an icon.
type entry struct {
	SVG    string  `json:"svg"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// EncodeCollection renders the collection as a JSON object with one member
// per icon, in collection order. The output only depends on the content of
// the collection.
func EncodeCollection(c *Collection, opts ExportOptions) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range c.Keys() {
		icon, _ := c.Get(key)
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := marshal(entry{SVG: icon.Markup, Width: icon.Width, Height: icon.Height})
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')

	if opts.Optimize {
		return buf.Bytes(), nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// marshal encodes v without escaping markup characters.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

// writeFileAtomic writes data to a temporary file next to path and renames
// it over path once it is synced. On failure the temporary file is removed
// and any existing file at path is untouched.
func writeFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), perm); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
