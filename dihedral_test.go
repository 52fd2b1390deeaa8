package rama

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestDihedral(Te *testing.T) {
	a := r3.Vec{X: 0, Y: 1, Z: 0}
	b := r3.Vec{X: 0, Y: 0, Z: 0}
	c := r3.Vec{X: 1, Y: 0, Z: 0}
	//same side of the bc axis: cis, 0 degrees
	cis := Dihedral(a, b, c, r3.Vec{X: 1, Y: 1, Z: 0})
	if math.Abs(cis) > 1e-12 {
		Te.Errorf("cis arrangement gave %v rad, want 0", cis)
	}
	//opposite sides: trans, 180 degrees
	trans := Dihedral(a, b, c, r3.Vec{X: 1, Y: -1, Z: 0})
	if math.Abs(math.Abs(trans)-math.Pi) > 1e-12 {
		Te.Errorf("trans arrangement gave %v rad, want pi", trans)
	}
	//perpendicular planes
	perp := Dihedral(a, b, c, r3.Vec{X: 1, Y: 0, Z: 1})
	if math.Abs(perp-math.Pi/2) > 1e-12 {
		Te.Errorf("perpendicular arrangement gave %v rad, want pi/2", perp)
	}
	fmt.Println("dihedrals: cis", cis, "trans", trans, "perp", perp)
}

func TestClassify(Te *testing.T) {
	cases := []struct {
		set   BackboneSet
		omega float64
		want  string
	}{
		{BackboneSet{Molname: "PRO"}, 10, CisProline},
		{BackboneSet{Molname: "PRO"}, -89.9, CisProline},
		{BackboneSet{Molname: "PRO"}, -170, TransProline},
		{BackboneSet{Molname: "PRO"}, 180, TransProline},
		{BackboneSet{Molname: "GLY"}, 180, Glycine},
		{BackboneSet{Molname: "GLY", next: "PRO"}, 180, Glycine},
		{BackboneSet{Molname: "ALA", next: "PRO"}, 180, PreProline},
		{BackboneSet{Molname: "ALA", next: "GLY"}, 180, General},
	}
	for _, cas := range cases {
		got := classify(cas.set, cas.omega)
		if got != cas.want {
			Te.Errorf("%s (next %s, omega %v) classified %s, want %s",
				cas.set.Molname, cas.set.next, cas.omega, got, cas.want)
		}
	}
}

func pdbLine(serial int, name, res, chain string, id int, x, y, z float64) string {
	return fmt.Sprintf("ATOM  %5d %-4s %3s %1s%4d    %8.3f%8.3f%8.3f  1.00  0.00",
		serial, " "+name, res, chain, id, x, y, z)
}

// writeTestPDB builds a 5-residue chain with the backbone laid out as a
// planar zigzag, so every dihedral is exactly 180 degrees.
func writeTestPDB(Te *testing.T) string {
	seq := []string{"ALA", "ALA", "PRO", "GLY", "ALA"}
	var b strings.Builder
	b.WriteString("HEADER    SYNTHETIC CHAIN\n")
	serial := 0
	for i, res := range seq {
		for _, name := range []string{"N", "CA", "C"} {
			x := float64(serial)
			y := float64(serial % 2)
			b.WriteString(pdbLine(serial+1, name, res, "A", i+1, x, y, 0) + "\n")
			serial++
		}
	}
	b.WriteString("TER\nEND\n")
	path := filepath.Join(Te.TempDir(), "chain.pdb")
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		Te.Fatal(err)
	}
	return path
}

func TestBackboneAngles(Te *testing.T) {
	path := writeTestPDB(Te)
	mol, err := PDBRead(path)
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 15 {
		Te.Fatalf("read %d atoms, want 15", mol.Len())
	}
	sets, err := BackboneList(mol, "A")
	if err != nil {
		Te.Fatal(err)
	}
	//first and last residue have no full stretch around them
	if len(sets) != 3 {
		Te.Fatalf("got %d backbone sets, want 3", len(sets))
	}
	T, err := Angles(mol, sets)
	if err != nil {
		Te.Fatal(err)
	}
	want := []string{PreProline, TransProline, Glycine}
	for i, val := range T {
		if val.Type != want[i] {
			Te.Errorf("residue %d classified %s, want %s", sets[i].MolID, val.Type, want[i])
		}
		if math.Abs(math.Abs(val.Phi)-180) > 1e-9 || math.Abs(math.Abs(val.Psi)-180) > 1e-9 {
			Te.Errorf("residue %d: zigzag backbone gave phi %v psi %v, want 180",
				sets[i].MolID, val.Phi, val.Psi)
		}
	}
	other, err := BackboneList(mol, "B")
	if err != nil {
		Te.Fatal(err)
	}
	if len(other) != 0 {
		Te.Errorf("chain B does not exist but produced %d sets", len(other))
	}
	fmt.Println("extracted", len(T), "angle pairs:", T)
}

func TestBackboneNilMolecule(Te *testing.T) {
	_, err := BackboneList(nil, "")
	if err == nil {
		Te.Fatal("a nil molecule did not fail")
	}
	if _, ok := err.(*InputError); !ok {
		Te.Errorf("a nil molecule produced a %T, want *InputError", err)
	}
	_, err = Angles(nil, nil)
	if err == nil {
		Te.Fatal("Angles with nil data did not fail")
	}
}
