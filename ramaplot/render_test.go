package ramaplot

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	rama "github.com/lorenzo-rovigatti/Ramachandran-Plotter"
)

func decodePNG(Te *testing.T, path string) (int, int) {
	f, err := os.Open(path)
	if err != nil {
		Te.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		Te.Fatal(err)
	}
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestRenderPipeline(Te *testing.T) {
	if testing.Short() {
		Te.Skip("the full pipeline smooths a whole raster")
	}
	dir := Te.TempDir()
	ref := syntheticTable(1200, 11)
	user := append(clusteredTable(30, -60, -45, 5), clusteredTable(30, -120, 130, 6)...)
	out := filepath.Join(dir, "plot.png")
	o := DefaultOptions()
	o.Export.DPI = 40
	o.Scatter = true
	o.Background = filepath.Join(dir, "background.png")
	if err := Render(ref, user, out, o); err != nil {
		Te.Fatal(err)
	}
	w, h := decodePNG(Te, out)
	if w != canvasInches*40 || h != canvasInches*40 {
		Te.Errorf("final figure is %dx%d, want %dx%d", w, h, canvasInches*40, canvasInches*40)
	}
	//the background variant comes out at the smoothing resolution
	bw, bh := decodePNG(Te, o.Background)
	if bw != canvasInches*smoothDPI || bh != canvasInches*smoothDPI {
		Te.Errorf("background variant is %dx%d, want %dx%d", bw, bh, canvasInches*smoothDPI, canvasInches*smoothDPI)
	}
	fmt.Println("rendered", out, "and", o.Background)
}

func TestRenderBlankSelection(Te *testing.T) {
	if testing.Short() {
		Te.Skip("the full pipeline smooths a whole raster")
	}
	dir := Te.TempDir()
	//a reference with no glycines and an empty user selection: both
	//degenerate, neither an error
	ref := clusteredTable(200, -63, -42, 9)
	out := filepath.Join(dir, "blank.png")
	o := DefaultOptions()
	o.PlotType = rama.CategoryFilter(rama.Glycine)
	o.Export.DPI = 40
	if err := Render(ref, rama.Table{}, out, o); err != nil {
		Te.Fatalf("a blank selection must render, got %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		Te.Fatal(err)
	}
}

func TestRenderNilReference(Te *testing.T) {
	out := filepath.Join(Te.TempDir(), "never.png")
	err := Render(nil, rama.Table{}, out, DefaultOptions())
	if err == nil {
		Te.Fatal("a nil reference table did not fail")
	}
	if _, ok := err.(*rama.InputError); !ok {
		Te.Errorf("a nil reference produced a %T, want *InputError", err)
	}
	if _, err := os.Stat(out); err == nil {
		Te.Error("a failed render still wrote the output file")
	}
}
