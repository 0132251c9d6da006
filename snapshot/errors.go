/*
 * errors.go, part of miguitas.
 *
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package snapshot

import (
	"errors"
	"fmt"

	chem "github.com/AmaiDonatsu/miguitas"
)

//Error is returned when a snapshot can't be written or read. Errors from the
//engine itself are passed through untouched.
type Error struct {
	message  string
	filename string //the file that has problems, or empty string if none.
	deco     []string
	cause    error
}

func (err *Error) Error() string {
	var s string
	if err.filename != "" {
		s = fmt.Sprintf("snapshot %s: %s", err.filename, err.message)
	} else {
		s = "snapshot: " + err.message
	}
	if err.cause != nil {
		s += ": " + err.cause.Error()
	}
	return s
}

//Decorate adds new information to the error.
func (E *Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the file associated to the error, if any.
func (err *Error) FileName() string { return err.filename }

func (err *Error) Unwrap() error { return err.cause }

const (
	UnableToOpen       = "unable to open file"
	WriteFailed        = "unable to write snapshot"
	WrongFormat        = "not a valid snapshot"
	UnsupportedVersion = "unsupported snapshot version"
)

func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var e chem.Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}

//withFile sets the file name on snapshot errors that lack it.
func withFile(err error, name string) error {
	var e *Error
	if errors.As(err, &e) && e.filename == "" {
		e.filename = name
	}
	return err
}
