package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUtils_FormatTime(t *testing.T) {
	assert.Equal(t, "1.50s", FormatTime(1500*time.Millisecond))
	assert.Equal(t, "1m 30.00s", FormatTime(90*time.Second))
	assert.Equal(t, "3h 2m 5.00s", FormatTime(3*time.Hour+2*time.Minute+5*time.Second))
	assert.Equal(t, "1d 2h 0m 0.00s", FormatTime(26*time.Hour))
}

func TestUtils_Decorator(t *testing.T) {
	assert.Equal(t, "plain", Decorator(false).Text("plain", ErrorMessage))
	assert.Equal(t, ErrorColor+"red"+DefaultColor, Decorator(true).Text("red", ErrorMessage))
}

func TestUtils_MinMaxAbs(t *testing.T) {
	assert.Equal(t, 1, Min(1, 2))
	assert.Equal(t, 1, Min(2, 1))
	assert.Equal(t, 2, Max(1, 2))
	assert.Equal(t, "b", Max("a", "b"))
	assert.Equal(t, 3.5, Abs(-3.5))
	assert.Equal(t, 4, Abs(4))
}

func TestUtils_ShouldDetectValidFileType(t *testing.T) {
	dir := t.TempDir()

	svg := filepath.Join(dir, "icon.svg")
	require.NoError(t, os.WriteFile(svg, []byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`), 0o644))
	ctype, err := DetectContentType(svg)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ctype, "text/"), ctype)

	png := filepath.Join(dir, "fake.svg")
	require.NoError(t, os.WriteFile(png, []byte("\x89PNG\x0D\x0A\x1A\x0A\x00\x00\x00\x0DIHDR"), 0o644))
	ctype, err = DetectContentType(png)
	require.NoError(t, err)
	assert.Equal(t, "image/png", ctype)

	_, err = DetectContentType(filepath.Join(dir, "missing.svg"))
	assert.Error(t, err)
}

func TestUtils_SpinnerStop(t *testing.T) {
	var buf bytes.Buffer
	sp := NewSpinner(&buf, "building", time.Millisecond, false)
	sp.Start()
	sp.SetMessage("sanitizing")
	time.Sleep(30 * time.Millisecond)
	sp.Stop()
	sp.Stop()

	n := buf.Len()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, n, buf.Len())
	assert.Contains(t, buf.String(), "sanitizing")
}
