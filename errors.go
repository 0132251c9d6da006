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

package chem

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies the errors returned by this package. A Kind is itself an
// error, so the Err* values below can be used as errors.Is targets.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindDuplicateName
	KindAlreadyBound
	KindCapacityExceeded
	KindInvalidOperand
)

//Sentinels for errors.Is. CrossOwnership and Conflict are reported
//as AlreadyBound, DuplicateMember as DuplicateName and NotInMolecule as InvalidOperand.
var (
	ErrNotFound         error = KindNotFound
	ErrDuplicateName    error = KindDuplicateName
	ErrAlreadyBound     error = KindAlreadyBound
	ErrCapacityExceeded error = KindCapacityExceeded
	ErrInvalidOperand   error = KindInvalidOperand
)

func (K Kind) String() string {
	switch K {
	case KindNotFound:
		return "NotFound"
	case KindDuplicateName:
		return "DuplicateName"
	case KindAlreadyBound:
		return "AlreadyBound"
	case KindCapacityExceeded:
		return "CapacityExceeded"
	case KindInvalidOperand:
		return "InvalidOperand"
	}
	return fmt.Sprintf("Kind(%d)", int(K))
}

func (K Kind) Error() string {
	return "miguitas: " + strings.ToLower(K.String())
}

//CError is the concrete error of the package. It fulfills the Error
//interface, so callers up the stack can add their name to it with Decorate.
type CError struct {
	msg  string
	kind Kind
	deco []string
}

func newError(kind Kind, caller, format string, args ...interface{}) *CError {
	return &CError{msg: fmt.Sprintf(format, args...), kind: kind, deco: []string{caller}}
}

func (err *CError) Error() string { return err.msg }

//Kind returns the class of the error.
func (err *CError) Kind() Kind { return err.kind }

//Decorate adds the caller to the error trail and returns the trail.
//An empty string, or the caller already at the end of the trail, just returns it.
func (err *CError) Decorate(dec string) []string {
	if dec != "" && (len(err.deco) == 0 || err.deco[len(err.deco)-1] != dec) {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Is makes errors.Is(err, ErrCapacityExceeded) and friends work.
func (err *CError) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == err.kind
}

//errDecorate adds caller to the trail of err if err is a decorable error
//and returns it unchanged otherwise.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var e Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}

// KindOf reports the Kind carried by err, if any.
func KindOf(err error) (Kind, bool) {
	var e *CError
	if errors.As(err, &e) {
		return e.kind, true
	}
	var k Kind
	if errors.As(err, &k) {
		return k, true
	}
	return 0, false
}
