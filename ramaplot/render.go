/*
 * render.go, part of Ramachandran-Plotter
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

	rama "github.com/lorenzo-rovigatti/Ramachandran-Plotter"
)

// Options collects everything one pipeline run needs beyond the two
// tables and the output path.
type Options struct {
	PlotType   rama.CategoryFilter
	Scheme     Scheme
	Smooth     SmoothOptions
	Contours   []ContourSpec
	Export     ExportOptions
	Scatter    bool   //also mark the user's angle pairs, one glyph per residue
	Background string //write the smoothed background on its own here; empty skips it
}

// DefaultOptions returns the standard pipeline configuration: all
// residue categories, the Blues scheme, one grey contour band.
func DefaultOptions() Options {
	return Options{
		PlotType: rama.FilterAll,
		Scheme:   DefaultScheme(),
		Smooth:   DefaultSmooth(),
		Contours: []ContourSpec{DefaultContour()},
		Export:   DefaultExport(),
	}
}

// Render runs the whole pipeline and writes the finished figure to out:
// reference density, smoothing, the contour bands from the user's table,
// axis formatting, PNG export. The caller hands in the user table
// already filtered to the population it wants drawn; an empty user table
// is taken as a degenerate but valid selection and simply leaves the
// background bare. The stages share nothing but the background raster
// and the plot they populate.
func Render(reference, user rama.Table, out string, o Options) error {
	raw, err := Background(reference, o.PlotType, o.Scheme)
	if err != nil {
		return errDecorate(err, "Render")
	}
	bg, err := Smooth(raw, o.Scheme, o.Smooth)
	if err != nil {
		return errDecorate(err, "Render")
	}
	if o.Background != "" {
		if err := SaveImage(bg, o.Background); err != nil {
			return errDecorate(err, "Render")
		}
	}
	p := plot.New()
	p.Add(plotter.NewImage(bg, angleMin, angleMin, angleMax, angleMax))
	if len(user) > 0 {
		for _, spec := range o.Contours {
			if err := AddContour(p, user, spec); err != nil {
				return errDecorate(err, "Render")
			}
		}
		if o.Scatter {
			if err := addScatter(p, user); err != nil {
				return errDecorate(err, "Render")
			}
		}
	}
	if err := FormatAxes(p); err != nil {
		return errDecorate(err, "Render")
	}
	if err := Export(p, out, o.Export); err != nil {
		return errDecorate(err, "Render")
	}
	return nil
}

// addScatter marks the user's own angle pairs on the figure.
func addScatter(p *plot.Plot, T rama.Table) error {
	pts := make(plotter.XYs, len(T))
	for i, rec := range T {
		pts[i].X = rec.Phi
		pts[i].Y = rec.Psi
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.GlyphStyle.Radius = vg.Points(1.5)
	s.GlyphStyle.Color = color.NRGBA{R: 20, G: 20, B: 20, A: 255}
	p.Add(s)
	return nil
}
