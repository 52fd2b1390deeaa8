/*
 * background.go, part of Ramachandran-Plotter
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
	"image"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	rama "github.com/lorenzo-rovigatti/Ramachandran-Plotter"
	"github.com/lorenzo-rovigatti/Ramachandran-Plotter/density"
)

// The whole pipeline draws on a fixed square canvas; only the DPI
// changes pixel dimensions. The density raster is deliberately coarse,
// the smoother consumes it and re-renders at the final resolution.
const (
	canvasInches = 10
	angleMin     = -180
	angleMax     = 180

	densityBins = 140
	contourBins = 90

	rawDPI    = 80
	smoothDPI = 96

	powerExponent = 0.1
)

// Background bins the reference table, filtered by f, into a 140x140
// density over the full angle domain and renders it as a bare heat map,
// no axes, no padding. The returned raster is the raw unsmoothed
// working image. A filter matching no records yields a uniform
// single-color raster and no error; only a nil table fails.
func Background(T rama.Table, f rama.CategoryFilter, scheme Scheme) (image.Image, error) {
	if T == nil {
		return nil, rama.NewInputError(rama.ErrNilTable, "Background")
	}
	fld := density.New(densityBins, angleMin, angleMax)
	for _, rec := range T.Filter(f) {
		fld.Add(rec.Phi, rec.Psi)
	}
	h := plotter.NewHeatMap(density.Power(fld, powerExponent), scheme)
	if fld.Max() == 0 {
		h.Max = 1 //pin the range so an all-zero field maps to the palette floor
	}
	p := plot.New()
	p.HideAxes()
	p.Add(h)
	return renderImage(p, rawDPI), nil
}

// renderImage draws p onto a raster canvas of the fixed physical size
// and hands back its pixels. The canvas never leaves this function.
func renderImage(p *plot.Plot, dpi int) image.Image {
	c := vgimg.NewWith(
		vgimg.UseWH(canvasInches*vg.Inch, canvasInches*vg.Inch),
		vgimg.UseDPI(dpi),
	)
	p.Draw(draw.New(c))
	return c.Image()
}
