/*
 * errors.go, part of Ramachandran-Plotter
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

import "fmt"

// Error is implemented by every error value the rama packages produce.
// Decorate lets a caller stack its name on the error as it travels up,
// so the final message carries the whole call path.
type Error interface {
	Error() string
	Decorate(string) []string
}

// InputError reports data the pipeline cannot work with: a table missing
// the required fields, a malformed record, an unrecognized plot type or
// an empty table handed to a stage that needs at least one record.
type InputError struct {
	message string
	source  string //file or structure the bad data came from, if any
	deco    []string
}

// NewInputError builds an InputError from a message and the names of the
// callers that saw it first.
func NewInputError(message string, deco ...string) *InputError {
	return &InputError{message: message, deco: deco}
}

func (err *InputError) Error() string {
	if err.source == "" {
		return fmt.Sprintf("rama input error: %s", err.message)
	}
	return fmt.Sprintf("rama input error in %s: %s", err.source, err.message)
}

// Decorate adds new information to the error and returns the decoration
// stack.
func (err *InputError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// IOError reports files the pipeline cannot read or write: structures,
// angle tables or rasters.
type IOError struct {
	message string
	path    string
	deco    []string
}

// NewIOError builds an IOError for the file at path.
func NewIOError(message, path string, deco ...string) *IOError {
	return &IOError{message: message, path: path, deco: deco}
}

func (err *IOError) Error() string {
	if err.path == "" {
		return fmt.Sprintf("rama file error: %s", err.message)
	}
	return fmt.Sprintf("rama file error: %s, file %s", err.message, err.path)
}

// Decorate adds new information to the error and returns the decoration
// stack.
func (err *IOError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// errDecorate annotates an error with the caller's name when the error
// supports it, and passes it through untouched when it does not.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}

// Messages shared by the errors of this package.
const (
	ErrNilTable      = "nil angle table"
	ErrEmptyTable    = "angle table contains no records"
	ErrMissingFields = "table lacks one of the type/phi/psi fields"
	ErrBadRecord     = "malformed angle record"
	ErrUnknownType   = "unrecognized plot type"
	ErrNilMolecule   = "nil molecule"
	ErrBackbone      = "incoherent backbone"
)
