package iconkit

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// svgDoc returns a minimal icon document with the given viewBox and body.
func svgDoc(viewBox, body string) string {
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s">%s</svg>`, viewBox, body)
}

func mustIcon(t *testing.T, key, markup string) Icon {
	t.Helper()
	icon, err := NewIcon(key, markup)
	require.NoError(t, err)
	return icon
}

func collectionOf(t *testing.T, icons ...Icon) *Collection {
	t.Helper()
	c := NewCollection()
	for _, icon := range icons {
		require.NoError(t, c.Add(icon))
	}
	return c
}

// stubProvider is a Provider whose capabilities default to identity
// functions. It is safe for concurrent use.
type stubProvider struct {
	mu sync.Mutex

	collection *Collection
	importErr  error
	optimize   func(string) (string, error)
	validate   func(string) (string, error)
	recolor    func(string, PaletteOptions) (string, error)
	writeErr   error

	calls   map[string]int
	written map[string]*Collection
}

var _ Provider = (*stubProvider)(nil)

func (s *stubProvider) record(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calls == nil {
		s.calls = make(map[string]int)
	}
	s.calls[name]++
}

func (s *stubProvider) count(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[name]
}

func (s *stubProvider) ParseDirectory(dir string, opts ImportOptions) (*Collection, error) {
	s.record("parse")
	if s.importErr != nil {
		return nil, s.importErr
	}
	if s.collection == nil {
		return nil, errors.New("no collection")
	}
	return s.collection, nil
}

func (s *stubProvider) Optimize(markup string, opts OptimizeOptions) (string, error) {
	s.record("optimize")
	if s.optimize != nil {
		return s.optimize(markup)
	}
	return markup, nil
}

func (s *stubProvider) ValidateTags(markup string) (string, error) {
	s.record("validate")
	if s.validate != nil {
		return s.validate(markup)
	}
	return markup, nil
}

func (s *stubProvider) RecolorPalette(markup string, opts PaletteOptions) (string, error) {
	s.record("recolor")
	if s.recolor != nil {
		return s.recolor(markup, opts)
	}
	return markup, nil
}

func (s *stubProvider) WriteCollectionJSON(c *Collection, path string, opts ExportOptions) error {
	s.record("write")
	if s.writeErr != nil {
		return s.writeErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.written == nil {
		s.written = make(map[string]*Collection)
	}
	s.written[path] = c
	return nil
}
