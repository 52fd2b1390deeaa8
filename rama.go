package rama

import (
	"fmt"
	"strings"
)

// An AnglePair is one phi/psi measurement and the residue category it was
// measured on. Angles are in degrees, in [-180,180].
type AnglePair struct {
	Type string
	Phi  float64
	Psi  float64
}

// A Table is an ordered collection of angle pairs, either loaded from a
// reference set or computed from a structure. Downstream statistics do
// not depend on the order.
type Table []AnglePair

// The residue categories produced by Angles and understood by
// CategoryFilter.
const (
	General      = "General"
	Glycine      = "Glycine"
	TransProline = "Trans-proline"
	CisProline   = "Cis-proline"
	PreProline   = "Pre-proline"
)

// A CategoryFilter selects the records feeding a density. FilterAll
// passes everything and FilterProline covers both proline categories;
// any other value selects records whose Type matches it exactly.
type CategoryFilter string

const (
	FilterAll     CategoryFilter = "All"
	FilterProline CategoryFilter = "Proline"
)

// Matches reports whether a record of the given category passes the
// filter.
func (f CategoryFilter) Matches(typ string) bool {
	switch f {
	case FilterAll:
		return true
	case FilterProline:
		return typ == TransProline || typ == CisProline
	default:
		return string(f) == typ
	}
}

// Filter returns the records of T passing f. A filter that matches
// nothing returns an empty table, not an error: an empty selection is a
// valid, if blank, density.
func (T Table) Filter(f CategoryFilter) Table {
	if f == FilterAll {
		return T
	}
	ret := make(Table, 0, len(T))
	for _, val := range T {
		if f.Matches(val.Type) {
			ret = append(ret, val)
		}
	}
	return ret
}

// ParsePlotType checks a plot-type string from the configuration surface
// against the known categories. Matching is case-insensitive; the
// returned filter carries the canonical spelling.
func ParsePlotType(s string) (CategoryFilter, error) {
	known := []string{
		string(FilterAll),
		string(FilterProline),
		General,
		Glycine,
		TransProline,
		CisProline,
		PreProline,
	}
	for _, val := range known {
		if strings.EqualFold(strings.TrimSpace(s), val) {
			return CategoryFilter(val), nil
		}
	}
	return "", &InputError{message: fmt.Sprintf("%s: %q", ErrUnknownType, s), deco: []string{"ParsePlotType"}}
}
