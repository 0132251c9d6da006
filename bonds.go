/*
 * bonds.go, part of miguitas.
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
	"fmt"
	"strings"
)

//BondType is the kind of covalent bond. Its integer value is the bond order.
type BondType int

const (
	Single BondType = iota + 1
	Double
	Triple
)

//Order is the number of shared electron pairs, and the number of slots
//the bond takes from each of its atoms.
func (T BondType) Order() int { return int(T) }

//Valid returns true for Single, Double and Triple.
func (T BondType) Valid() bool { return T >= Single && T <= Triple }

func (T BondType) String() string {
	switch T {
	case Single:
		return "SINGLE"
	case Double:
		return "DOUBLE"
	case Triple:
		return "TRIPLE"
	}
	return fmt.Sprintf("BondType(%d)", int(T))
}

func (T BondType) notation() string {
	switch T {
	case Double:
		return "="
	case Triple:
		return "≡"
	}
	return "-"
}

//ParseBondType reads "SINGLE", "DOUBLE" or "TRIPLE", in any case.
//Anything else is an InvalidOperand error.
func ParseBondType(s string) (BondType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SINGLE":
		return Single, nil
	case "DOUBLE":
		return Double, nil
	case "TRIPLE":
		return Triple, nil
	}
	return 0, newError(KindInvalidOperand, "ParseBondType", "unknown bond type %q, use SINGLE, DOUBLE or TRIPLE", s)
}

//Bond joins two different atoms. Bonds are not directional and do not change once created.
type Bond struct {
	index int //position in the bond list of the molecule
	at1   *Atom
	at2   *Atom
	kind  BondType
}

//NewBond returns a bond of type t between a and b. The atoms must be
//non-nil and different.
func NewBond(a, b *Atom, t BondType) (*Bond, error) {
	if a == nil || b == nil {
		return nil, newError(KindInvalidOperand, "NewBond", "can't bond a nil atom")
	}
	if a.ID() == b.ID() {
		return nil, newError(KindInvalidOperand, "NewBond", "atom %s can't be bonded to itself", a.ID())
	}
	if !t.Valid() {
		return nil, newError(KindInvalidOperand, "NewBond", "invalid bond type %d", int(t))
	}
	return &Bond{at1: a, at2: b, kind: t}, nil
}

//Index returns the creation order of the bond within its molecule.
func (B *Bond) Index() int { return B.index }

func (B *Bond) At1() *Atom { return B.at1 }

func (B *Bond) At2() *Atom { return B.at2 }

func (B *Bond) Type() BondType { return B.kind }

func (B *Bond) Order() int { return B.kind.Order() }

//Involves returns true if at is one of the two atoms of the bond.
func (B *Bond) Involves(at *Atom) bool {
	if at == nil {
		return false
	}
	return at.ID() == B.at1.ID() || at.ID() == B.at2.ID()
}

//Partner returns the atom at the other end of the bond from origin.
//It returns an InvalidOperand error if origin is not in the bond.
func (B *Bond) Partner(origin *Atom) (*Atom, error) {
	switch {
	case origin == nil:
	case origin.ID() == B.at1.ID():
		return B.at2, nil
	case origin.ID() == B.at2.ID():
		return B.at1, nil
	}
	return nil, newError(KindInvalidOperand, "Partner", "atom %v is not part of the bond %s", origin, B.Label())
}

//String uses element symbols, as in C-H, C=O or N≡N.
func (B *Bond) String() string {
	return B.at1.Symbol() + B.kind.notation() + B.at2.Symbol()
}

//Label is like String but with atom ids, as in C_1=O_1.
func (B *Bond) Label() string {
	return B.at1.ID() + B.kind.notation() + B.at2.ID()
}
