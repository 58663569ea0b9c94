package svgop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecolor_SetAll(t *testing.T) {
	markup := wrap(`<path fill="#f00" stroke="blue" d="M0 0"/>` +
		`<path fill="none" d="M1 1"/>` +
		`<path style="fill:red;stroke-width:2" d="M2 2"/>` +
		`<linearGradient id="g"><stop stop-color="#000"/></linearGradient>` +
		`<rect fill="url(#g)" width="1" height="1"/>`)

	out, err := Recolor(markup, PaletteOptions{SetAll: "currentColor"})
	require.NoError(t, err)
	assert.Contains(t, out, `<path fill="currentColor" stroke="currentColor" d="M0 0"/>`)
	assert.Contains(t, out, `<path fill="none" d="M1 1"/>`)
	assert.Contains(t, out, `style="fill:currentColor;stroke-width:2"`)
	assert.Contains(t, out, `<stop stop-color="currentColor"/>`)
	assert.Contains(t, out, `<rect fill="url(#g)" width="1" height="1"/>`)
}

func TestRecolor_FillMissing(t *testing.T) {
	markup := wrap(`<g fill="red"><path d="M0 0"/></g>` +
		`<path d="M1 1"/>` +
		`<path style="fill:blue" d="M2 2"/>` +
		`<defs><path id="p" d="M3 3"/></defs>` +
		`<clipPath id="c"><rect width="1" height="1"/></clipPath>`)

	out, err := Recolor(markup, PaletteOptions{FillMissing: "#000"})
	require.NoError(t, err)
	assert.Contains(t, out, `<g fill="red"><path d="M0 0"/></g>`)
	assert.Contains(t, out, `<path d="M1 1" fill="#000"/>`)
	assert.Contains(t, out, `<path style="fill:blue" d="M2 2"/>`)
	assert.Contains(t, out, `<path id="p" d="M3 3"/>`)
	assert.Contains(t, out, `<rect width="1" height="1"/>`)
}

func TestRecolor_SetAllThenFillMissing(t *testing.T) {
	out, err := Recolor(wrap(`<path fill="red" d="M0 0"/><circle r="1"/>`),
		PaletteOptions{SetAll: "currentColor", FillMissing: "currentColor"})
	require.NoError(t, err)
	assert.Equal(t, wrap(`<path fill="currentColor" d="M0 0"/><circle r="1" fill="currentColor"/>`), out)
}

func TestPaletteOptions_Empty(t *testing.T) {
	assert.True(t, PaletteOptions{}.Empty())
	assert.False(t, PaletteOptions{SetAll: "currentColor"}.Empty())
	assert.False(t, PaletteOptions{FillMissing: "#000"}.Empty())
}
