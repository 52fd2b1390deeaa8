package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/spf13/viper"

	"gonum.org/v1/plot/vg"

	rama "github.com/lorenzo-rovigatti/Ramachandran-Plotter"
	"github.com/lorenzo-rovigatti/Ramachandran-Plotter/ramaplot"
)

const (
	configFileName = "ramaplot"
	configFileType = "yaml"

	cfgKeyType       = "plot_type"
	cfgKeyReference  = "reference"
	cfgKeyPalette    = "palette"
	cfgKeyDPI        = "dpi"
	cfgKeyFigure     = "figure_size"
	cfgKeySigma      = "smoothing.sigma"
	cfgKeySize       = "smoothing.size"
	cfgKeyPercentile = "smoothing.percentile"
	cfgKeyLevel      = "contour.level"
	cfgKeyAlpha      = "contour.alpha"
	cfgKeyColor      = "contour.color"
)

// loadConfig reads ramaplot.yaml from dir, or from the working directory
// when dir is empty. A missing file is fine, the defaults cover every
// key; a file that exists but does not parse is not.
func loadConfig(dir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyType, string(rama.FilterAll))
	v.SetDefault(cfgKeyPalette, ramaplot.DefaultScheme().Name())
	export := ramaplot.DefaultExport()
	v.SetDefault(cfgKeyDPI, export.DPI)
	v.SetDefault(cfgKeyFigure, float64(export.Width/vg.Inch))
	smooth := ramaplot.DefaultSmooth()
	v.SetDefault(cfgKeySigma, smooth.Sigma)
	v.SetDefault(cfgKeySize, smooth.Size)
	v.SetDefault(cfgKeyPercentile, smooth.Percentile)
	contour := ramaplot.DefaultContour()
	v.SetDefault(cfgKeyLevel, contour.Level)
	v.SetDefault(cfgKeyAlpha, contour.Alpha)
	v.SetDefault(cfgKeyColor, "grey")
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	if dir == "" {
		dir = "."
	}
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

var namedColors = map[string]color.Color{
	"black": color.NRGBA{R: 0, G: 0, B: 0, A: 255},
	"grey":  color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255},
	"gray":  color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255},
	"white": color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	"red":   color.NRGBA{R: 0xd6, G: 0x27, B: 0x28, A: 255},
	"green": color.NRGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 255},
	"blue":  color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 255},
}

// parseColor understands a handful of named colors plus #rrggbb hex.
func parseColor(s string) (color.Color, error) {
	low := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[low]; ok {
		return c, nil
	}
	if strings.HasPrefix(low, "#") && len(low) == 7 {
		var r, g, b uint8
		if _, err := fmt.Sscanf(low, "#%02x%02x%02x", &r, &g, &b); err == nil {
			return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
		}
	}
	return nil, fmt.Errorf("unknown color %q", s)
}
