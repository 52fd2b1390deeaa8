package density

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// A Field is a square two-dimensional histogram of (phi, psi) pairs over
// a fixed domain, the same span on both axes. It satisfies the GridXYZ
// interface of the gonum plotters with columns following phi and rows
// following psi, so a heat map of it comes out already in x/y
// orientation.
type Field struct {
	counts  [][]float64
	bins    int
	min     float64
	max     float64
	width   float64
	centers []float64
	n       int
}

// New returns an empty bins x bins field covering [min,max] on both
// axes. It panics if the domain is ill-formed or there are fewer than 2
// bins, as a field like that cannot mean anything.
func New(bins int, min, max float64) *Field {
	if bins < 2 || min >= max {
		panic(fmt.Sprintf("density: ill-formed field: %d bins over [%v,%v]", bins, min, max))
	}
	F := &Field{bins: bins, min: min, max: max}
	F.width = (max - min) / float64(bins)
	F.counts = make([][]float64, bins)
	for i := range F.counts {
		F.counts[i] = make([]float64, bins)
	}
	F.centers = floats.Span(make([]float64, bins), min+F.width/2, max-F.width/2)
	return F
}

// Add bins one (phi, psi) pair. Values outside the domain are dropped
// silently; the domain is fixed and there is no wraparound.
func (F *Field) Add(phi, psi float64) {
	i := F.index(phi)
	j := F.index(psi)
	if i < 0 || j < 0 {
		return
	}
	F.counts[i][j]++
	F.n++
}

// index maps a value to its bin, or -1 when it falls outside the domain.
// The upper edge belongs to the last bin.
func (F *Field) index(v float64) int {
	if v < F.min || v > F.max {
		return -1
	}
	i := int((v - F.min) / F.width)
	if i == F.bins {
		i--
	}
	return i
}

// N returns the number of pairs binned so far.
func (F *Field) N() int { return F.n }

// Count returns the raw count at phi bin i, psi bin j.
func (F *Field) Count(i, j int) float64 { return F.counts[i][j] }

// Max returns the largest cell count, 0 for an empty field.
func (F *Field) Max() float64 {
	m := 0.0
	for _, row := range F.counts {
		m = math.Max(m, floats.Max(row))
	}
	return m
}

func (F *Field) String() string {
	return fmt.Sprintf("%dx%d field over [%v,%v], %d pairs binned, largest cell %v",
		F.bins, F.bins, F.min, F.max, F.n, F.Max())
}

// Dims, Z, X and Y implement the grid the gonum plotters consume.
func (F *Field) Dims() (c, r int)   { return F.bins, F.bins }
func (F *Field) Z(c, r int) float64 { return F.counts[c][r] }
func (F *Field) X(c int) float64    { return F.centers[c] }
func (F *Field) Y(r int) float64    { return F.centers[r] }

// A View wraps a Field with a per-cell display transform, leaving the
// counts themselves untouched. It satisfies the same grid interface as
// Field.
type View struct {
	F *Field
	f func(float64) float64
}

// Power returns a view of F with cell values raised to exp. A linear
// color ramp over the view reproduces a power-law color normalization of
// the raw counts, which is what keeps sparse high cells from washing out
// everything else.
func Power(F *Field, exp float64) *View {
	return &View{F: F, f: func(v float64) float64 { return math.Pow(v, exp) }}
}

// Log returns a view of F with cells mapped to log(1+v).
func Log(F *Field) *View {
	return &View{F: F, f: math.Log1p}
}

func (V *View) Dims() (c, r int)   { return V.F.Dims() }
func (V *View) Z(c, r int) float64 { return V.f(V.F.Z(c, r)) }
func (V *View) X(c int) float64    { return V.F.X(c) }
func (V *View) Y(r int) float64    { return V.F.Y(r) }

// Max returns the transformed maximum. Both transforms are monotone, so
// this is the largest value the view exposes.
func (V *View) Max() float64 { return V.f(V.F.Max()) }
