/*
 * node.go, part of miguitas.
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

//MoleculeNode is the ledger of one atom inside one molecule: the bonds that
//touch the atom and the slots it has left.
//
//Molecule.Connect is the way to add bonds. Calling AddBond directly charges
//the node without recording the bond in the molecule.
type MoleculeNode struct {
	atom      *Atom
	bonds     []*Bond
	remaining int
}

func newMoleculeNode(at *Atom) *MoleculeNode {
	return &MoleculeNode{atom: at, remaining: at.AvailableSlots()}
}

func (N *MoleculeNode) Atom() *Atom { return N.atom }

//Remaining returns the bonding slots still free on the atom.
func (N *MoleculeNode) Remaining() int { return N.remaining }

//Bonds returns a copy of the bonds touching the atom, in creation order.
func (N *MoleculeNode) Bonds() []*Bond {
	ret := make([]*Bond, len(N.bonds))
	copy(ret, N.bonds)
	return ret
}

//CanBond returns true if the node has room for a bond of the given order.
func (N *MoleculeNode) CanBond(order int) bool {
	return N.remaining >= order
}

//AddBond records b on the node and takes its order from the remaining slots.
//If the node has not enough room, it returns a CapacityExceeded error and
//the node is left untouched.
func (N *MoleculeNode) AddBond(b *Bond) error {
	if b == nil || !b.Involves(N.atom) {
		return newError(KindInvalidOperand, "AddBond", "bond does not involve atom %s", N.atom.ID())
	}
	if !N.CanBond(b.Order()) {
		return newError(KindCapacityExceeded, "AddBond", "%s (%s) has %d slot(s) left, a %s bond needs %d", N.atom.ID(), N.atom.Symbol(), N.remaining, b.Type(), b.Order())
	}
	N.charge(b)
	return nil
}

//charge commits b without checks. Callers must have called CanBond.
func (N *MoleculeNode) charge(b *Bond) {
	N.bonds = append(N.bonds, b)
	N.remaining -= b.Order()
}

//Satisfied returns true once the atom has completed its duet or octet.
func (N *MoleculeNode) Satisfied() bool {
	return N.remaining == 0
}

//BondedAtoms returns the partners of the atom, one per bond.
func (N *MoleculeNode) BondedAtoms() []*Atom {
	ret := make([]*Atom, 0, len(N.bonds))
	for _, b := range N.bonds {
		p, err := b.Partner(N.atom)
		if err != nil {
			//every bond in the node involves the atom, AddBond checks it.
			panic(err.Error())
		}
		ret = append(ret, p)
	}
	return ret
}
