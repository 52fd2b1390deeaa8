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
Package ramaplot draws Ramachandran plots. The reference angle table
becomes a smoothed density raster showing the allowed conformational
regions, iso-count contour lines from the user's own angles go on top of
it, and a fixed axis frame spanning -180 to 180 degrees on both axes
wraps everything up for PNG export.

The stages are independent: Background bins and rasterizes the reference
density, Smooth turns the raw raster into the final background, AddContour
and FormatAxes populate a plot, and Export writes it out. Render chains
them all for the common case.
*/
package ramaplot
