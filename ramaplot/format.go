/*
 * format.go, part of Ramachandran-Plotter
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
	"image/color"
	"image/png"
	"os"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	rama "github.com/lorenzo-rovigatti/Ramachandran-Plotter"
)

// the dashed grid and the zero lines share this
var gridGrey = color.NRGBA{R: 128, G: 128, B: 128, A: 102} //grey at 0.4 opacity

// FormatAxes pins p to the fixed angle frame regardless of what its data
// suggested, labels both axes, and draws the dashed 60 degree grid plus
// solid reference lines through the origin. Everything added here lands
// above the plotters already on p, so contours go in first.
func FormatAxes(p *plot.Plot) error {
	p.X.Min, p.X.Max = angleMin, angleMax
	p.Y.Min, p.Y.Max = angleMin, angleMax
	p.X.Label.Text = "φ (°)"
	p.Y.Label.Text = "ψ (°)"
	p.X.LineStyle.Width = vg.Points(2)
	p.Y.LineStyle.Width = vg.Points(2)
	p.X.Tick.Marker = plot.ConstantTicks(degreeTicks(60))
	p.Y.Tick.Marker = plot.ConstantTicks(degreeTicks(60))
	grid := plotter.NewGrid()
	grid.Vertical = draw.LineStyle{
		Color:  gridGrey,
		Width:  vg.Points(1),
		Dashes: []vg.Length{vg.Points(4), vg.Points(4)},
	}
	grid.Horizontal = grid.Vertical
	p.Add(grid)
	hline, err := plotter.NewLine(plotter.XYs{{X: angleMin, Y: 0}, {X: angleMax, Y: 0}})
	if err != nil {
		return errDecorate(err, "FormatAxes")
	}
	vline, err := plotter.NewLine(plotter.XYs{{X: 0, Y: angleMin}, {X: 0, Y: angleMax}})
	if err != nil {
		return errDecorate(err, "FormatAxes")
	}
	hline.LineStyle = draw.LineStyle{Color: gridGrey, Width: vg.Points(1)}
	vline.LineStyle = hline.LineStyle
	p.Add(hline, vline)
	return nil
}

// degreeTicks builds labelled ticks every step degrees across the whole
// angle frame.
func degreeTicks(step int) []plot.Tick {
	var ticks []plot.Tick
	for d := angleMin; d <= angleMax; d += step {
		ticks = append(ticks, plot.Tick{Value: float64(d), Label: strconv.Itoa(d)})
	}
	return ticks
}

// ExportOptions control the final raster. At the default canvas size the
// DPI alone decides the pixel dimensions; Width and Height exist for
// callers that want a different physical size.
type ExportOptions struct {
	DPI    int
	Width  vg.Length
	Height vg.Length
}

// DefaultExport returns the standard 10x10 inch canvas at screen
// resolution.
func DefaultExport() ExportOptions {
	return ExportOptions{DPI: smoothDPI, Width: canvasInches * vg.Inch, Height: canvasInches * vg.Inch}
}

// Export flushes the composed plot to a PNG file at path. The canvas and
// the file handle live only for this call and are released on every way
// out.
func Export(p *plot.Plot, path string, o ExportOptions) error {
	d := DefaultExport()
	if o.DPI <= 0 {
		o.DPI = d.DPI
	}
	if o.Width <= 0 || o.Height <= 0 {
		o.Width, o.Height = d.Width, d.Height
	}
	c := vgimg.NewWith(vgimg.UseWH(o.Width, o.Height), vgimg.UseDPI(o.DPI))
	p.Draw(draw.New(c))
	f, err := os.Create(path)
	if err != nil {
		return rama.NewIOError(err.Error(), path, "Export")
	}
	defer f.Close()
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(f); err != nil {
		return rama.NewIOError(err.Error(), path, "Export")
	}
	return nil
}

// SaveImage dumps a bare raster, such as the smoothed background
// variant, to a PNG file without drawing anything around it.
func SaveImage(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return rama.NewIOError(err.Error(), path, "SaveImage")
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return rama.NewIOError(err.Error(), path, "SaveImage")
	}
	return nil
}

// errDecorate annotates errors that support it with the caller's name,
// and passes everything else through.
func errDecorate(err error, caller string) error {
	err2, ok := err.(rama.Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}
