package density

import (
	"fmt"
	"math"
	"testing"
)

func TestFieldBinning(Te *testing.T) {
	F := New(4, -180, 180) //90 degree bins
	F.Add(-180, -180)      //lower corner
	F.Add(179.9, 179.9)
	F.Add(180, 180) //the upper edge belongs to the last bin
	F.Add(0, 0)
	F.Add(200, 0)  //out of domain, dropped
	F.Add(0, -200) //same
	if F.N() != 4 {
		Te.Errorf("binned %d pairs, want 4", F.N())
	}
	if F.Count(0, 0) != 1 {
		Te.Errorf("lower corner cell holds %v, want 1", F.Count(0, 0))
	}
	if F.Count(3, 3) != 2 {
		Te.Errorf("upper corner cell holds %v, want 2", F.Count(3, 3))
	}
	if F.Count(2, 2) != 1 {
		Te.Errorf("origin cell holds %v, want 1", F.Count(2, 2))
	}
	if F.Max() != 2 {
		Te.Errorf("largest cell %v, want 2", F.Max())
	}
	c, r := F.Dims()
	if c != 4 || r != 4 {
		Te.Errorf("Dims = %d,%d, want 4,4", c, r)
	}
	if F.X(0) != -135 || F.Y(3) != 135 {
		Te.Errorf("bin centers off: X(0)=%v Y(3)=%v", F.X(0), F.Y(3))
	}
	fmt.Println(F.String())
}

func TestFieldPanics(Te *testing.T) {
	defer func() {
		if recover() == nil {
			Te.Error("an ill-formed field did not panic")
		}
	}()
	New(1, -180, 180)
}

func TestFieldDomainPanics(Te *testing.T) {
	defer func() {
		if recover() == nil {
			Te.Error("an inverted domain did not panic")
		}
	}()
	New(10, 180, -180)
}

func TestViews(Te *testing.T) {
	F := New(4, -180, 180)
	F.Add(0, 0)
	F.Add(0, 0)
	F.Add(0, 0)
	p := Power(F, 0.1)
	want := math.Pow(3, 0.1)
	if math.Abs(p.Z(2, 2)-want) > 1e-12 {
		Te.Errorf("power view cell = %v, want %v", p.Z(2, 2), want)
	}
	if p.Z(0, 0) != 0 {
		Te.Errorf("power view of an empty cell = %v, want 0", p.Z(0, 0))
	}
	if math.Abs(p.Max()-want) > 1e-12 {
		Te.Errorf("power view max = %v, want %v", p.Max(), want)
	}
	l := Log(F)
	if math.Abs(l.Z(2, 2)-math.Log1p(3)) > 1e-12 {
		Te.Errorf("log view cell = %v, want %v", l.Z(2, 2), math.Log1p(3))
	}
	//views share the field's geometry
	if c, r := p.Dims(); c != 4 || r != 4 {
		Te.Errorf("view Dims = %d,%d, want 4,4", c, r)
	}
	if p.X(0) != F.X(0) || p.Y(3) != F.Y(3) {
		Te.Error("view does not share the field's bin centers")
	}
	empty := New(4, -180, 180)
	if Power(empty, 0.1).Max() != 0 {
		Te.Errorf("power view of an empty field has max %v, want 0", Power(empty, 0.1).Max())
	}
}
