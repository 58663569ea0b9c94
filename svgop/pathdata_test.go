package svgop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath_ParseAndFormat(t *testing.T) {
	cases := map[string]string{
		"M10,20 L30 40":         "M10 20L30 40",
		"M0 0 10 10 20 20":      "M0 0L10 10 20 20",
		"M-1-2l.5.5":            "M-1-2l0.5 0.5",
		"m1 1 2 2z":             "m1 1l2 2z",
		"a5 5 0 011 1":          "a5 5 0 0 1 1 1",
		"M1e1 2E-1 H 3 V 4 Z":   "M10 0.2H3V4Z",
		"  M 1 2 C 1 2 3 4 5 6": "M1 2C1 2 3 4 5 6",
	}
	for in, want := range cases {
		p, err := ParsePath(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, p.String(), in)

		// The canonical form is a fixed point.
		again, err := ParsePath(p.String())
		require.NoError(t, err)
		assert.Equal(t, p.String(), again.String())
	}
}

func TestPath_ParseErrors(t *testing.T) {
	for _, in := range []string{"10 20", "M10", "Mz", "M0 0z 1", "a1 1 0 2 0 1 1"} {
		_, err := ParsePath(in)
		assert.Error(t, err, in)
	}
}

func TestPath_Empty(t *testing.T) {
	p, err := ParsePath("   ")
	require.NoError(t, err)
	assert.Len(t, p, 0)
}

func TestPath_Translate(t *testing.T) {
	p, err := ParsePath("m1 1l2 2M5 5H6V7C0 0 1 1 2 2A1 1 0 0 1 3 3")
	require.NoError(t, err)

	got := p.Translate(1, 2).String()
	assert.Equal(t, "m2 3l2 2M6 7H7V9C1 2 2 3 3 4A1 1 0 0 1 4 5", got)
	assert.Equal(t, "m1 1l2 2M5 5H6V7C0 0 1 1 2 2A1 1 0 0 1 3 3", p.String(), "translate must not modify the receiver")
}

func TestPath_Round(t *testing.T) {
	p, err := ParsePath("M1.23456 2.0001L-0.0004 3")
	require.NoError(t, err)
	assert.Equal(t, "M1.23 2L0 3", p.Round(2).String())
	assert.Equal(t, "M1.23456 2.0001L-0.0004 3", p.Round(-1).String())
}

func TestPath_Bounds(t *testing.T) {
	p, err := ParsePath("M0 0L10 5l-20 0z")
	require.NoError(t, err)

	minX, minY, maxX, maxY, ok := p.Bounds()
	assert.True(t, ok)
	assert.Equal(t, []float64{-10, 0, 10, 5}, []float64{minX, minY, maxX, maxY})

	_, _, _, _, ok = Path{}.Bounds()
	assert.False(t, ok)
}

func TestPath_Absolute(t *testing.T) {
	p, err := ParsePath("m3 3h1")
	require.NoError(t, err)
	assert.Equal(t, "M3 3h1", p.Absolute().String())
}
