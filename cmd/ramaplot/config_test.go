package main

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	v, err := loadConfig(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, "All", v.GetString(cfgKeyType))
	require.Equal(t, "Blues", v.GetString(cfgKeyPalette))
	require.Equal(t, 96, v.GetInt(cfgKeyDPI))
	require.InDelta(t, 10, v.GetFloat64(cfgKeyFigure), 1e-12)
	require.InDelta(t, 0.3, v.GetFloat64(cfgKeySigma), 1e-12)
	require.Equal(t, 20, v.GetInt(cfgKeySize))
	require.InDelta(t, 90, v.GetFloat64(cfgKeyPercentile), 1e-12)
	require.InDelta(t, 4, v.GetFloat64(cfgKeyLevel), 1e-12)
	require.InDelta(t, 0.8, v.GetFloat64(cfgKeyAlpha), 1e-12)
	require.Equal(t, "grey", v.GetString(cfgKeyColor))
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := `plot_type: Proline
dpi: 200
smoothing:
  size: 10
contour:
  color: black
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ramaplot.yaml"), []byte(content), 0644))
	v, err := loadConfig(dir)
	require.NoError(t, err)
	require.Equal(t, "Proline", v.GetString(cfgKeyType))
	require.Equal(t, 200, v.GetInt(cfgKeyDPI))
	require.Equal(t, 10, v.GetInt(cfgKeySize))
	require.Equal(t, "black", v.GetString(cfgKeyColor))
	//keys the file does not touch keep their defaults
	require.InDelta(t, 0.3, v.GetFloat64(cfgKeySigma), 1e-12)
	require.InDelta(t, 4, v.GetFloat64(cfgKeyLevel), 1e-12)
}

func TestLoadConfigBadFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ramaplot.yaml"), []byte("plot_type: [unclosed"), 0644))
	_, err := loadConfig(dir)
	require.Error(t, err)
}

func TestParseColor(t *testing.T) {
	c, err := parseColor("black")
	require.NoError(t, err)
	require.Equal(t, color.NRGBA{A: 255}, c)
	c, err = parseColor("#FF0080")
	require.NoError(t, err)
	require.Equal(t, color.NRGBA{R: 0xff, G: 0, B: 0x80, A: 255}, c)
	_, err = parseColor("chartreuse-ish")
	require.Error(t, err)
}
