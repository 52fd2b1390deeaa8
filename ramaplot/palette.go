/*
 * palette.go, part of Ramachandran-Plotter
 *
 * Copyright 2025 The Ramachandran-Plotter developers
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

package ramaplot

import (
	"fmt"
	"image/color"
	"strings"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/palette/moreland"

	rama "github.com/lorenzo-rovigatti/Ramachandran-Plotter"
)

const (
	brewerColors     = 9 //the most the sequential ColorBrewer sets carry
	continuousColors = 255
)

// A Scheme is a named color palette together with an explicit reversed
// variant, so no stage ever needs to encode direction in the palette
// name. It satisfies the Palette interface of the gonum plotters.
type Scheme struct {
	name string
	pal  palette.Palette
}

// Name returns the name the scheme was registered under.
func (s Scheme) Name() string { return s.name }

// Colors exposes the underlying swatches, light to dark for the
// sequential schemes.
func (s Scheme) Colors() []color.Color { return s.pal.Colors() }

// Reversed returns the scheme running in the opposite direction. The
// smoothing stage renders intensity through the reversed scheme, which
// restores the scheme's own orientation after the grayscale round trip
// inverted it.
func (s Scheme) Reversed() Scheme {
	src := s.pal.Colors()
	rev := make([]color.Color, len(src))
	for i, c := range src {
		rev[len(rev)-1-i] = c
	}
	return Scheme{name: s.name + "-reversed", pal: swatches(rev)}
}

// swatches is a fixed color list satisfying palette.Palette.
type swatches []color.Color

func (p swatches) Colors() []color.Color { return p }

// the sequential ColorBrewer sets we expose, keyed by lowercase name
var brewerNames = map[string]string{
	"blues":   "Blues",
	"greens":  "Greens",
	"greys":   "Greys",
	"oranges": "Oranges",
	"purples": "Purples",
	"reds":    "Reds",
	"bugn":    "BuGn",
	"bupu":    "BuPu",
	"gnbu":    "GnBu",
	"orrd":    "OrRd",
	"pubu":    "PuBu",
	"ylgnbu":  "YlGnBu",
	"ylorrd":  "YlOrRd",
}

// Named returns the scheme registered under name, case-insensitively.
// The sequential ColorBrewer sets cover the usual density palettes; the
// moreland maps and the plain heat ramp are there as continuous
// alternatives.
func Named(name string) (Scheme, error) {
	low := strings.ToLower(strings.TrimSpace(name))
	if bn, ok := brewerNames[low]; ok {
		p, err := brewer.GetPalette(brewer.TypeSequential, bn, brewerColors)
		if err != nil {
			return Scheme{}, rama.NewInputError(err.Error(), "Named")
		}
		return Scheme{name: bn, pal: p}, nil
	}
	switch low {
	case "heat":
		return Scheme{name: "heat", pal: palette.Heat(continuousColors, 1)}, nil
	case "kindlmann":
		return Scheme{name: "kindlmann", pal: moreland.Kindlmann().Palette(continuousColors)}, nil
	case "extended-kindlmann":
		return Scheme{name: "extended-kindlmann", pal: moreland.ExtendedKindlmann().Palette(continuousColors)}, nil
	case "black-body":
		return Scheme{name: "black-body", pal: moreland.BlackBody().Palette(continuousColors)}, nil
	case "smooth-blue-red":
		return Scheme{name: "smooth-blue-red", pal: moreland.SmoothBlueRed().Palette(continuousColors)}, nil
	}
	return Scheme{}, rama.NewInputError(fmt.Sprintf("unknown color scheme %q", name), "Named")
}

// DefaultScheme is the background palette when nothing else is asked
// for.
func DefaultScheme() Scheme {
	s, err := Named("Blues")
	if err != nil {
		panic("ramaplot: the default scheme must exist: " + err.Error())
	}
	return s
}
