/*
 * table.go, part of Ramachandran-Plotter
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
	"compress/flate"
	"compress/gzip"
	"compress/lzw"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
)

const lzwLitwidth int = 8

// ReadTable loads an angle-pair table from a CSV file carrying at least
// the type, phi and psi fields, in any order; extra fields are ignored.
// The decompressor is picked from the file name: .zst, .zstd, .gz, .flate
// and .lzw are understood, anything else reads plain.
func ReadTable(name string) (Table, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, &IOError{message: err.Error(), path: name, deco: []string{"ReadTable"}}
	}
	defer f.Close()
	r, err := decompressor(name, f)
	if err != nil {
		return nil, &IOError{message: err.Error(), path: name, deco: []string{"ReadTable"}}
	}
	defer r.Close()
	T, err := readCSV(r, name)
	if err != nil {
		return nil, errDecorate(err, "ReadTable")
	}
	return T, nil
}

// WriteTable saves a table as CSV under the same suffix rules ReadTable
// uses to pick the compressor.
func WriteTable(T Table, name string) error {
	if T == nil {
		return &InputError{message: ErrNilTable, deco: []string{"WriteTable"}}
	}
	f, err := os.Create(name)
	if err != nil {
		return &IOError{message: err.Error(), path: name, deco: []string{"WriteTable"}}
	}
	defer f.Close()
	w, err := compressor(name, f)
	if err != nil {
		return &IOError{message: err.Error(), path: name, deco: []string{"WriteTable"}}
	}
	if err := writeCSV(w, T, name); err != nil {
		return errDecorate(err, "WriteTable")
	}
	return nil
}

// writeCSV streams the records through the compressor and closes it on
// every path; the zstd encoder keeps worker goroutines alive until it
// is closed.
func writeCSV(w io.WriteCloser, T Table, name string) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"type", "phi", "psi"})
	for _, val := range T {
		cw.Write([]string{
			val.Type,
			strconv.FormatFloat(val.Phi, 'f', 4, 64),
			strconv.FormatFloat(val.Psi, 'f', 4, 64),
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		w.Close()
		return &IOError{message: err.Error(), path: name, deco: []string{"writeCSV"}}
	}
	if err := w.Close(); err != nil {
		return &IOError{message: err.Error(), path: name, deco: []string{"writeCSV"}}
	}
	return nil
}

// decompressor wraps f in the reader matching the file suffix.
func decompressor(name string, f io.Reader) (io.ReadCloser, error) {
	low := strings.ToLower(name)
	switch {
	case strings.HasSuffix(low, ".zst"), strings.HasSuffix(low, ".zstd"):
		r, err := zstd.NewReader(f)
		if err != nil {
			return nil, err
		}
		return &zstdql{r.Close, r}, nil
	case strings.HasSuffix(low, ".gz"):
		return gzip.NewReader(f)
	case strings.HasSuffix(low, ".flate"):
		return flate.NewReader(f), nil
	case strings.HasSuffix(low, ".lzw"):
		return lzw.NewReader(f, lzw.MSB, lzwLitwidth), nil
	default:
		return io.NopCloser(f), nil
	}
}

// compressor wraps f in the writer matching the file suffix.
func compressor(name string, f io.Writer) (io.WriteCloser, error) {
	low := strings.ToLower(name)
	switch {
	case strings.HasSuffix(low, ".zst"), strings.HasSuffix(low, ".zstd"):
		return zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case strings.HasSuffix(low, ".gz"):
		return gzip.NewWriterLevel(f, gzip.BestCompression)
	case strings.HasSuffix(low, ".flate"):
		return flate.NewWriter(f, flate.BestCompression)
	case strings.HasSuffix(low, ".lzw"):
		return lzw.NewWriter(f, lzw.MSB, lzwLitwidth), nil
	default:
		return nopWCloser{f}, nil
	}
}

// zstd.Decoder.Close returns nothing, so it needs a shim to satisfy
// io.ReadCloser.
type zstdql struct {
	closeql func()
	*zstd.Decoder
}

func (s *zstdql) Close() error {
	s.closeql()
	return nil
}

type nopWCloser struct {
	io.Writer
}

func (nopWCloser) Close() error { return nil }

// readCSV parses the table proper. The first record is the header; the
// type, phi and psi fields are located by name, case-insensitively.
func readCSV(r io.Reader, name string) (Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		return nil, &InputError{message: ErrMissingFields, source: name, deco: []string{"readCSV"}}
	}
	ti, pi, si := -1, -1, -1
	for i, val := range header {
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "type":
			ti = i
		case "phi":
			pi = i
		case "psi":
			si = i
		}
	}
	if ti < 0 || pi < 0 || si < 0 {
		return nil, &InputError{message: ErrMissingFields, source: name, deco: []string{"readCSV"}}
	}
	T := make(Table, 0, 100)
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &InputError{message: err.Error(), source: name, deco: []string{"readCSV"}}
		}
		phi, err1 := strconv.ParseFloat(strings.TrimSpace(rec[pi]), 64)
		psi, err2 := strconv.ParseFloat(strings.TrimSpace(rec[si]), 64)
		if err1 != nil || err2 != nil {
			return nil, &InputError{message: fmt.Sprintf("%s at line %d", ErrBadRecord, line), source: name, deco: []string{"readCSV"}}
		}
		T = append(T, AnglePair{Type: strings.TrimSpace(rec[ti]), Phi: phi, Psi: psi})
	}
	return T, nil
}
