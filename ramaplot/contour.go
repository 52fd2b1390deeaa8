/*
 * contour.go, part of Ramachandran-Plotter
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
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	rama "github.com/lorenzo-rovigatti/Ramachandran-Plotter"
	"github.com/lorenzo-rovigatti/Ramachandran-Plotter/density"
)

// A ContourSpec describes one iso-count band: the cell count at which
// the line runs, its color and its opacity.
type ContourSpec struct {
	Level float64
	Color color.Color
	Alpha float64
}

// DefaultContour sits inside the count range a single-chain structure
// typically produces on the 90x90 grid.
func DefaultContour() ContourSpec {
	return ContourSpec{Level: 4, Color: color.Gray{Y: 0x55}, Alpha: 0.8}
}

// AddContour bins the user's table 90x90 over the angle domain and draws
// the iso-count line at spec.Level onto p. A level above the largest
// cell count draws nothing and is not an error; repeated calls stack
// further bands on whatever is already there. An empty or nil table is
// an InputError, there is nothing to contour.
func AddContour(p *plot.Plot, T rama.Table, spec ContourSpec) error {
	if T == nil {
		return rama.NewInputError(rama.ErrNilTable, "AddContour")
	}
	if len(T) == 0 {
		return rama.NewInputError(rama.ErrEmptyTable, "AddContour")
	}
	fld := density.New(contourBins, angleMin, angleMax)
	for _, rec := range T {
		fld.Add(rec.Phi, rec.Psi)
	}
	line := withAlpha(spec.Color, spec.Alpha)
	c := plotter.NewContour(fld, []float64{spec.Level}, swatches{line})
	c.LineStyles = []draw.LineStyle{{Color: line, Width: vg.Points(1)}}
	p.Add(c)
	return nil
}

// withAlpha scales the color's opacity without touching its hue.
func withAlpha(c color.Color, alpha float64) color.Color {
	if alpha >= 1 {
		return c
	}
	if alpha < 0 {
		alpha = 0
	}
	r, g, b, _ := c.RGBA()
	return color.NRGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(alpha*255 + 0.5),
	}
}
