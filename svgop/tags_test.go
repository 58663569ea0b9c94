package svgop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wrap(body string) string {
	return `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 24 24">` + body + `</svg>`
}

func TestValidateTags_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		markup  string
		wantErr string
	}{
		{"script", wrap(`<script>alert(1)</script>`), "forbidden tag <script>"},
		{"nested raster", wrap(`<g><image href="#a"/></g>`), "forbidden tag <image>"},
		{"text", wrap(`<text>hi</text>`), "forbidden tag <text>"},
		{"unknown", wrap(`<blink/>`), "unsupported tag <blink>"},
		{"foreign namespace", `<svg xmlns="http://www.w3.org/2000/svg" xmlns:foo="urn:foo" viewBox="0 0 1 1"><foo:bar/></svg>`, "unsupported tag <foo:bar>"},
		{"external href", wrap(`<use href="http://example.com/sprite.svg#a"/>`), "external reference"},
		{"external xlink", wrap(`<use xlink:href="sprite.svg#a"/>`), "external reference"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateTags(tt.markup)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateTags_Strips(t *testing.T) {
	markup := `<svg xmlns="http://www.w3.org/2000/svg" xmlns:sodipodi="http://sodipodi.sourceforge.net/DTD/sodipodi-0.dtd" viewBox="0 0 24 24" onload="boot()">` +
		`<title>icon</title><sodipodi:namedview/><desc>d</desc>` +
		`<path d="M0 0h1" onclick="x()" sodipodi:nodetypes="cc"/></svg>`

	out, err := ValidateTags(markup)
	require.NoError(t, err)
	assert.Equal(t, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path d="M0 0h1"/></svg>`, out)
}

func TestValidateTags_AllowsLocalReferences(t *testing.T) {
	markup := wrap(`<defs><linearGradient id="g"><stop offset="0" stop-color="red"/></linearGradient><path id="p" d="M0 0h4"/></defs>` +
		`<use xlink:href="#p"/><use href="#p" fill="url(#g)"/>`)

	out, err := ValidateTags(markup)
	require.NoError(t, err)
	assert.Equal(t, markup, out)
}
