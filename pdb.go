/*
 * pdb.go, part of Ramachandran-Plotter
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

package rama

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// An Atom holds the fields of a PDB ATOM record the backbone scanner
// cares about. Coordinates live in the owning Molecule, not here.
type Atom struct {
	Name    string //PDB atom name, e.g. "CA"
	Molname string //3-letter residue name
	Chain   string
	MolID   int //the residue number within its chain
}

// A Molecule is a read-only protein structure: per-atom metadata plus one
// coordinate per atom, first model only.
type Molecule struct {
	atoms  []*Atom
	coords []r3.Vec
}

// Atom returns the metadata for the atom with the given index.
func (M *Molecule) Atom(i int) *Atom { return M.atoms[i] }

// Coord returns the coordinates for the atom with the given index.
func (M *Molecule) Coord(i int) r3.Vec { return M.coords[i] }

// Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int { return len(M.atoms) }

// readPDBLine parses one ATOM record with the fixed PDB columns.
func readPDBLine(line string, contline int) (*Atom, r3.Vec, error) {
	var v r3.Vec
	if len(line) < 54 {
		return nil, v, fmt.Errorf("truncated ATOM record at line %d", contline)
	}
	atom := new(Atom)
	atom.Name = strings.TrimSpace(line[12:16])
	atom.Molname = strings.TrimSpace(line[17:20])
	atom.Chain = string(line[21])
	errs := make([]error, 4)
	atom.MolID, errs[0] = strconv.Atoi(strings.TrimSpace(line[22:26]))
	v.X, errs[1] = strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64)
	v.Y, errs[2] = strconv.ParseFloat(strings.TrimSpace(line[38:46]), 64)
	v.Z, errs[3] = strconv.ParseFloat(strings.TrimSpace(line[46:54]), 64)
	for _, e := range errs {
		if e != nil {
			return nil, v, fmt.Errorf("%s at line %d", e.Error(), contline)
		}
	}
	return atom, v, nil
}

// PDBRead reads the ATOM records of the first model of a PDB file.
// Alternate locations other than "A" are skipped so every atom appears
// once; HETATM records and waters never make it into the molecule.
func PDBRead(name string) (*Molecule, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, &IOError{message: err.Error(), path: name, deco: []string{"PDBRead"}}
	}
	defer f.Close()
	M := new(Molecule)
	scanner := bufio.NewScanner(f)
	contline := 0
	for scanner.Scan() {
		line := scanner.Text()
		contline++
		if strings.HasPrefix(line, "ENDMDL") {
			break //only the first model feeds the plot
		}
		if !strings.HasPrefix(line, "ATOM") {
			continue
		}
		if len(line) > 16 && line[16] != ' ' && line[16] != 'A' {
			continue
		}
		atom, v, err := readPDBLine(line, contline)
		if err != nil {
			return nil, &InputError{message: err.Error(), source: name, deco: []string{"PDBRead"}}
		}
		M.atoms = append(M.atoms, atom)
		M.coords = append(M.coords, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, &IOError{message: err.Error(), path: name, deco: []string{"PDBRead"}}
	}
	return M, nil
}
