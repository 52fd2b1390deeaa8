/*
 * doc.go, part of Ramachandran-Plotter
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

/*
Package rama holds the data model for Ramachandran plots: phi/psi angle
pairs classified by residue category, tables of them read from CSV files
or computed from PDB structures, and the category filters that pick which
subset feeds a density.

Two tables drive the drawing pipeline in the ramaplot subpackage. A large
reference table, typically derived from the Top8000 set, becomes the
smoothed background density showing where backbone conformations are
allowed. The user's own table, extracted from a structure with PDBRead,
BackboneList and Angles, is drawn on top of that background as contour
lines or individual points.

Residues are classified as General, Glycine, Pre-proline, Trans-proline
or Cis-proline; prolines split on the omega dihedral of the peptide bond
preceding them. CategoryFilter selects one of these populations, or all
of them, for plotting.
*/
package rama
