package rama

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// A BackboneSet indexes the five backbone atoms defining the phi and psi
// dihedrals of one residue, plus the previous residue's CA so the omega
// dihedral of the preceding peptide bond is available. MolID and Molname
// identify the central residue; next is the residue name of the Npost
// owner.
type BackboneSet struct {
	CAprev  int
	Cprev   int
	N       int
	CA      int
	C       int
	Npost   int
	MolID   int
	Molname string
	next    string
}

// Dihedral calculates the dihedral between the points a, b, c and d,
// where the first plane is defined by abc and the second by bcd. The
// result is in radians, in (-pi,pi].
func Dihedral(a, b, c, d r3.Vec) float64 {
	bma := r3.Sub(b, a)
	cmb := r3.Sub(c, b)
	dmc := r3.Sub(d, c)
	first := r3.Dot(r3.Scale(r3.Norm(cmb), bma), r3.Cross(cmb, dmc))
	second := r3.Dot(r3.Cross(bma, cmb), r3.Cross(cmb, dmc))
	return math.Atan2(first, second)
}

// BackboneList walks the atoms of M in order and collects one
// BackboneSet per residue that has the full Cprev/N/CA/C/Npost stretch
// around it, so the first and last residue of each chain never produce a
// set. Chains not listed in chains are skipped; an empty chains string
// takes everything. Atoms must come grouped by chain and in ascending
// residue order, which is how PDB files are written.
func BackboneList(M *Molecule, chains string) ([]BackboneSet, error) {
	if M == nil {
		return nil, &InputError{message: ErrNilMolecule, deco: []string{"BackboneList"}}
	}
	list := make([]BackboneSet, 0, 0)
	C := -1
	N := -1
	CA := -1
	Cprev := -1
	CAprev := -1
	Npost := -1
	lastCA := -1
	chainprev := "not a valid chain"
	for num := 0; num < M.Len(); num++ {
		at := M.Atom(num)
		if !(chains == "" || at.Chain == " " || strings.Contains(chains, at.Chain)) {
			continue
		}
		if at.Chain != chainprev {
			chainprev = at.Chain
			C = -1
			N = -1
			CA = -1
			Cprev = -1
			CAprev = -1
			Npost = -1
			lastCA = -1
		}
		if at.Name == "CA" {
			lastCA = num
		}
		if at.Name == "C" && Cprev == -1 {
			Cprev = num
			CAprev = lastCA
		}
		if at.Name == "N" && Cprev != -1 && N == -1 && at.MolID > M.Atom(Cprev).MolID {
			N = num
		}
		if at.Name == "C" && Cprev != -1 && at.MolID > M.Atom(Cprev).MolID {
			C = num
		}
		if at.Name == "CA" && Cprev != -1 && at.MolID > M.Atom(Cprev).MolID {
			CA = num
		}
		if at.Name == "N" && CA != -1 && at.MolID > M.Atom(CA).MolID {
			Npost = num
		}
		//when we have them all, we save
		if Cprev != -1 && CA != -1 && N != -1 && C != -1 && Npost != -1 {
			//check that the residue ids are what they are supposed to be
			r1 := M.Atom(Cprev).MolID
			r2 := M.Atom(N).MolID
			r2a := M.Atom(CA).MolID
			r2b := M.Atom(C).MolID
			rpost := M.Atom(Npost).MolID
			if r1 != r2-1 || r2 != r2a || r2a != r2b || r2b != rpost-1 {
				return nil, &InputError{message: fmt.Sprintf("%s around residue %d", ErrBackbone, r2), deco: []string{"BackboneList"}}
			}
			if CAprev == -1 || M.Atom(CAprev).MolID != r1 {
				return nil, &InputError{message: fmt.Sprintf("%s: no CA for residue %d", ErrBackbone, r1), deco: []string{"BackboneList"}}
			}
			temp := BackboneSet{CAprev, Cprev, N, CA, C, Npost, r2, M.Atom(CA).Molname, M.Atom(Npost).Molname}
			list = append(list, temp)
			N = Npost
			CAprev = CA
			Cprev = C
			CA = -1
			C = -1
			Npost = -1
		}
	}
	return list, nil
}

// Angles computes the phi and psi dihedrals for every backbone set and
// returns them as a classified table. Angles come out in degrees.
func Angles(M *Molecule, sets []BackboneSet) (Table, error) {
	if M == nil || sets == nil {
		return nil, &InputError{message: ErrNilMolecule, deco: []string{"Angles"}}
	}
	const toDeg = 180 / math.Pi
	T := make(Table, 0, len(sets))
	for _, j := range sets {
		if j.Npost >= M.Len() {
			return nil, &InputError{message: "backbone index out of range", deco: []string{"Angles"}}
		}
		phi := Dihedral(M.Coord(j.Cprev), M.Coord(j.N), M.Coord(j.CA), M.Coord(j.C)) * toDeg
		psi := Dihedral(M.Coord(j.N), M.Coord(j.CA), M.Coord(j.C), M.Coord(j.Npost)) * toDeg
		omega := Dihedral(M.Coord(j.CAprev), M.Coord(j.Cprev), M.Coord(j.N), M.Coord(j.CA)) * toDeg
		T = append(T, AnglePair{Type: classify(j, omega), Phi: phi, Psi: psi})
	}
	return T, nil
}

// classify maps a residue to the category vocabulary of CategoryFilter.
// Proline splits on the omega dihedral of the peptide bond preceding it,
// under 90 degrees in absolute value means cis. Pre-proline covers
// non-glycine, non-proline residues sitting right before a proline.
func classify(set BackboneSet, omega float64) string {
	switch {
	case set.Molname == "PRO" && math.Abs(omega) < 90:
		return CisProline
	case set.Molname == "PRO":
		return TransProline
	case set.Molname == "GLY":
		return Glycine
	case set.next == "PRO":
		return PreProline
	default:
		return General
	}
}
