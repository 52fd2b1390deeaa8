package ramaplot

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	rama "github.com/lorenzo-rovigatti/Ramachandran-Plotter"
)

func TestPercentileFilter(Te *testing.T) {
	//a lone bright pixel in a dark field
	src := image.NewGray(image.Rect(0, 0, 5, 5))
	src.SetGray(2, 2, color.Gray{Y: 255})
	max := percentileFilter(src, 3, 100)
	bright := 0
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if max.GrayAt(x, y).Y == 255 {
				bright++
			}
		}
	}
	if bright != 9 {
		Te.Errorf("rank 100 spread the bright pixel to %d pixels, want the 3x3 block", bright)
	}
	min := percentileFilter(src, 3, 0)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if min.GrayAt(x, y).Y != 0 {
				Te.Fatalf("rank 0 left a bright pixel at %d,%d", x, y)
			}
		}
	}
	med := percentileFilter(src, 3, 50)
	if med.GrayAt(2, 2).Y != 0 {
		Te.Errorf("the median did not suppress a lone bright pixel: %d", med.GrayAt(2, 2).Y)
	}
	fmt.Println("percentile filter: max spread", bright, "pixels, median suppressed the outlier")
}

func TestReflect(Te *testing.T) {
	cases := [][3]int{
		{0, 5, 0},
		{4, 5, 4},
		{-1, 5, 0},
		{-2, 5, 1},
		{5, 5, 4},
		{6, 5, 3},
		{-7, 5, 3}, //folds more than once for windows wider than the image
	}
	for _, cas := range cases {
		if got := reflect(cas[0], cas[1]); got != cas[2] {
			Te.Errorf("reflect(%d,%d) = %d, want %d", cas[0], cas[1], got, cas[2])
		}
	}
}

func TestSmoothValidation(Te *testing.T) {
	_, err := Smooth(nil, DefaultScheme(), DefaultSmooth())
	if err == nil {
		Te.Fatal("a nil raster did not fail")
	}
	if _, ok := err.(*rama.IOError); !ok {
		Te.Errorf("a nil raster produced a %T, want *IOError", err)
	}
	empty := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if _, err = Smooth(empty, DefaultScheme(), DefaultSmooth()); err == nil {
		Te.Fatal("an empty raster did not fail")
	}
	small := image.NewRGBA(image.Rect(0, 0, 8, 8))
	bad := DefaultSmooth()
	bad.Size = 0
	if _, err = Smooth(small, DefaultScheme(), bad); err == nil {
		Te.Fatal("a zero filter size did not fail")
	}
	bad = DefaultSmooth()
	bad.Percentile = 140
	if _, err = Smooth(small, DefaultScheme(), bad); err == nil {
		Te.Fatal("an impossible percentile did not fail")
	}
}

func TestSmoothNearFixedPoint(Te *testing.T) {
	if testing.Short() {
		Te.Skip("smoothing a full raster twice takes a while")
	}
	T := syntheticTable(1500, 7)
	raw, err := Background(T, rama.FilterAll, DefaultScheme())
	if err != nil {
		Te.Fatal(err)
	}
	once, err := Smooth(raw, DefaultScheme(), DefaultSmooth())
	if err != nil {
		Te.Fatal(err)
	}
	twice, err := Smooth(once, DefaultScheme(), DefaultSmooth())
	if err != nil {
		Te.Fatal(err)
	}
	ob, tb := once.Bounds(), twice.Bounds()
	if ob != tb {
		Te.Fatalf("re-smoothing changed the raster size: %v vs %v", ob, tb)
	}
	mad := meanAbsDiff(once, twice)
	if mad > 20 {
		Te.Errorf("re-smoothing moved the image by %.2f intensity units on average", mad)
	}
	fmt.Printf("smoothing is near its fixed point: mean absolute drift %.3f\n", mad)
}
