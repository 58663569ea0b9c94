package svgop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nestedIcon = `<?xml version="1.0" encoding="UTF-8"?>
<!-- Generator: hand written -->
<svg xmlns="http://www.w3.org/2000/svg" xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape" width="24" height="24" viewBox="0 0 24 24" version="1.1" inkscape:version="1.0">
  <title>nested</title>
  <metadata>whatever</metadata>
  <g>
    <g transform="translate(2 3)">
      <path d="M 1.00001 2 L 3,4 z" fill="#FF0000"/>
      <circle cx="5" cy="5" r="2" fill="#ffffff"/>
    </g>
  </g>
</svg>`

func TestOptimize_CollapsesAndFolds(t *testing.T) {
	out, err := Optimize(nestedIcon, DefaultOptimizeOptions())
	require.NoError(t, err)

	assert.NotContains(t, out, "<?xml")
	assert.NotContains(t, out, "<!--")
	assert.NotContains(t, out, "<title>")
	assert.NotContains(t, out, "<metadata>")
	assert.NotContains(t, out, "inkscape")
	assert.NotContains(t, out, "version")
	assert.NotContains(t, out, "<g")
	assert.Contains(t, out, `<path d="M3 5L5 7z" fill="red"/>`)
	assert.Contains(t, out, `<circle cx="5" cy="5" r="2" fill="#fff" transform="translate(2 3)"/>`)
}

func TestOptimize_Idempotent(t *testing.T) {
	opts := DefaultOptimizeOptions()
	opts.ConvertShapeToPath = true
	opts.MergePaths = true

	for _, markup := range []string{
		nestedIcon,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><g fill="blue"><g transform="translate(1 1)"><rect x="0" y="0" width="2" height="2"/></g></g><path d="m10 10h1v1h-1z"/><path d="m20 20h1v1h-1z"/></svg>`,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><g transform="rotate(45)" clip-path="url(#c)"><path d="M0 0h4"/></g></svg>`,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><g transform="translate(1 1)"><g stroke="#000"><g transform="translate(2 0)"><path d="M0 0h4"/><path d="M8 8h4"/></g><circle cx="3" cy="3" r="1"/></g></g></svg>`,
	} {
		once, err := Optimize(markup, opts)
		require.NoError(t, err)
		twice, err := Optimize(once, opts)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	}
}

func TestOptimize_PushesTransformThroughPaintedGroup(t *testing.T) {
	markup := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><g transform="translate(1 1)"><g fill="red"><path d="M0 0h4v4H0z"/><path d="M10 10h4v4h-4z"/></g></g></svg>`

	once, err := Optimize(markup, DefaultOptimizeOptions())
	require.NoError(t, err)
	assert.Equal(t, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><g fill="red"><path d="M1 1h4v4H1z"/><path d="M11 11h4v4h-4z"/></g></svg>`, once)

	twice, err := Optimize(once, DefaultOptimizeOptions())
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestOptimize_FlattensReoriginGroup(t *testing.T) {
	markup := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="2 2 24 24"><g fill="red"><path d="M2 2h4v4H2z"/><path d="M12 12h4v4h-4z"/></g></svg>`

	moved, err := Reorigin(markup, Box{Left: 2, Top: 2, Width: 24, Height: 24})
	require.NoError(t, err)
	out, err := Optimize(moved, DefaultOptimizeOptions())
	require.NoError(t, err)

	assert.NotContains(t, out, "transform")
	assert.Contains(t, out, `<g fill="red"><path d="M0 0h4v4H0z"/><path d="M10 10h4v4h-4z"/></g>`)
	assert.Equal(t, 1, countTag(out, "<g"))
}

func TestOptimize_ShapeToPath(t *testing.T) {
	markup := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><rect fill="red" x="1" y="2" width="3" height="4"/><rect x="1" y="1" width="4" height="4" rx="1"/><line x1="0" y1="0" x2="5" y2="5"/><polygon points="0,0 4,0 4,4"/></svg>`

	opts := DefaultOptimizeOptions()
	out, err := Optimize(markup, opts)
	require.NoError(t, err)
	assert.Contains(t, out, "<rect")
	assert.NotContains(t, out, "<path")

	opts.ConvertShapeToPath = true
	out, err = Optimize(markup, opts)
	require.NoError(t, err)
	assert.Contains(t, out, `<path fill="red" d="M1 2H4V6H1z"/>`)
	assert.Contains(t, out, `rx="1"`, "rounded rects stay rects")
	assert.Contains(t, out, `<path d="M0 0L5 5"/>`)
	assert.Contains(t, out, `<path d="M0 0L4 0 4 4z"/>`)
}

func TestOptimize_MergePaths(t *testing.T) {
	markup := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path d="M0 0h2v2H0z"/><path d="m10 10h2v2h-2z"/><path d="M11 11h5v5h-5z"/></svg>`

	opts := DefaultOptimizeOptions()
	out, err := Optimize(markup, opts)
	require.NoError(t, err)
	assert.Equal(t, 3, countTag(out, "<path"))

	opts.MergePaths = true
	out, err = Optimize(markup, opts)
	require.NoError(t, err)
	assert.Contains(t, out, `<path d="M0 0h2v2H0zM10 10h2v2h-2z"/>`)
	// The third path overlaps the merged one and stays separate.
	assert.Equal(t, 2, countTag(out, "<path"))
}

func TestOptimize_KeepsURLPaintedTransforms(t *testing.T) {
	markup := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><g transform="translate(1 1)"><path d="M0 0h4" fill="url(#g)"/></g></svg>`

	out, err := Optimize(markup, DefaultOptimizeOptions())
	require.NoError(t, err)
	assert.Contains(t, out, `transform="translate(1 1)"`)
	assert.Contains(t, out, `d="M0 0h4"`)
}

func TestOptimize_JoinsNestedTranslations(t *testing.T) {
	markup := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><g transform="translate(-3 -5)"><circle cx="5" cy="5" r="2" transform="translate(1 1)"/></g></svg>`

	out, err := Optimize(markup, DefaultOptimizeOptions())
	require.NoError(t, err)
	assert.Contains(t, out, `transform="translate(-2 -4)"`)
}

func TestOptimize_InvalidPathData(t *testing.T) {
	_, err := Optimize(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 1 1"><path d="X1 2"/></svg>`, DefaultOptimizeOptions())
	assert.Error(t, err)
}

func TestOptimize_PrecisionDisabled(t *testing.T) {
	opts := DefaultOptimizeOptions()
	opts.Precision = -1

	out, err := Optimize(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 1 1"><path d="M0.123456 0"/></svg>`, opts)
	require.NoError(t, err)
	assert.Contains(t, out, `d="M0.123456 0"`)
}

func countTag(markup, tag string) int {
	n := 0
	for i := 0; i+len(tag) <= len(markup); i++ {
		if markup[i:i+len(tag)] == tag {
			n++
		}
	}
	return n
}
