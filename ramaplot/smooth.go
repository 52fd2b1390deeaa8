/*
 * smooth.go, part of Ramachandran-Plotter
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

	"github.com/disintegration/gift"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	rama "github.com/lorenzo-rovigatti/Ramachandran-Plotter"
)

// SmoothOptions are the knobs of the raster smoothing stage. They are
// tunable defaults, not fixed constants: a larger Size gives smoother,
// fatter density regions at more cost per pixel.
type SmoothOptions struct {
	Sigma      float64 //Gaussian blur sigma, in pixels
	Size       int     //percentile filter neighborhood edge, in pixels
	Percentile float64 //rank within the neighborhood, 0 to 100
}

// DefaultSmooth returns the empirically tuned smoothing parameters.
func DefaultSmooth() SmoothOptions {
	return SmoothOptions{Sigma: 0.3, Size: 20, Percentile: 90}
}

// Smooth turns the raw density raster into the final plot background: it
// converts to grayscale, blurs the hard bin edges and runs a percentile
// filter that thickens contiguous dense regions, then maps the result
// through the reversed scheme and re-renders it at the final background
// resolution. The blur must run before the percentile filter; the other
// order leaves the filter chewing on raw bin steps and the output comes
// out blocky.
func Smooth(img image.Image, scheme Scheme, o SmoothOptions) (image.Image, error) {
	if img == nil {
		return nil, rama.NewIOError("nil density raster", "", "Smooth")
	}
	if b := img.Bounds(); b.Dx() < 1 || b.Dy() < 1 {
		return nil, rama.NewIOError("empty density raster", "", "Smooth")
	}
	if o.Sigma < 0 || o.Size < 1 || o.Percentile < 0 || o.Percentile > 100 {
		return nil, rama.NewInputError("ill-formed smoothing parameters", "Smooth")
	}
	g := gift.New(
		gift.Grayscale(),
		gift.GaussianBlur(float32(o.Sigma)),
	)
	gray := image.NewGray(g.Bounds(img.Bounds()))
	g.Draw(gray, img)
	filtered := percentileFilter(gray, o.Size, o.Percentile)
	colored := palettize(filtered, scheme.Reversed())
	p := plot.New()
	p.HideAxes()
	p.Add(plotter.NewImage(colored, 0, 0, 1, 1))
	return renderImage(p, smoothDPI), nil
}

// percentileFilter replaces every pixel with the value at the given
// percentile rank among its size x size neighborhood, reflecting at the
// edges. The window keeps a 256-bucket histogram updated column by
// column as it slides, so a row costs O(width*size), not
// O(width*size*size).
func percentileFilter(src *image.Gray, size int, percentile float64) *image.Gray {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))
	lo := -size / 2
	hi := size - size/2 //window spans [x+lo, x+hi)
	rank := int(percentile/100*float64(size*size-1) + 0.5)
	var hist [256]int
	for y := 0; y < h; y++ {
		hist = [256]int{}
		for dy := lo; dy < hi; dy++ {
			sy := reflect(y+dy, h)
			for dx := lo; dx < hi; dx++ {
				sx := reflect(dx, w)
				hist[src.GrayAt(b.Min.X+sx, b.Min.Y+sy).Y]++
			}
		}
		dst.SetGray(0, y, color.Gray{Y: rankValue(&hist, rank)})
		for x := 1; x < w; x++ {
			for dy := lo; dy < hi; dy++ {
				sy := reflect(y+dy, h)
				out := reflect(x-1+lo, w)
				in := reflect(x+hi-1, w)
				hist[src.GrayAt(b.Min.X+out, b.Min.Y+sy).Y]--
				hist[src.GrayAt(b.Min.X+in, b.Min.Y+sy).Y]++
			}
			dst.SetGray(x, y, color.Gray{Y: rankValue(&hist, rank)})
		}
	}
	return dst
}

// reflect folds an out-of-range index back into [0,n) by mirroring at
// the borders.
func reflect(i, n int) int {
	for i < 0 || i >= n {
		if i < 0 {
			i = -i - 1
		}
		if i >= n {
			i = 2*n - i - 1
		}
	}
	return i
}

// rankValue returns the intensity sitting at the given 0-based rank of
// the window population held in hist.
func rankValue(hist *[256]int, rank int) uint8 {
	seen := 0
	for v, n := range hist {
		seen += n
		if seen > rank {
			return uint8(v)
		}
	}
	return 255
}

// palettize maps 8-bit intensity onto the scheme's swatches, low values
// to the first color.
func palettize(src *image.Gray, scheme Scheme) *image.RGBA {
	cols := scheme.Colors()
	n := len(cols)
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := src.GrayAt(x, y).Y
			idx := int(float64(v)/255*float64(n-1) + 0.5)
			dst.Set(x-b.Min.X, y-b.Min.Y, cols[idx])
		}
	}
	return dst
}
