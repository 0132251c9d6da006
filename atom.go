/*
 * atom.go, part of miguitas.
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
	"sync"
)

//Binding is the membership state of an atom.
type Binding int

const (
	Free Binding = iota
	Bound
)

func (B Binding) String() string {
	if B == Bound {
		return "BOUND"
	}
	return "FREE"
}

//Atom is one atom instance. Its identity and electronic data are fixed at
//construction; only the binding state changes afterwards.
type Atom struct {
	id     string
	symbol string
	name   string
	z      int
	config Configuration

	mu       sync.RWMutex
	state    Binding
	molecule string
}

//NewAtom builds a free atom and computes its electron configuration.
//The name defaults to the symbol if empty.
func NewAtom(id, symbol, name string, z int) (*Atom, error) {
	if id == "" {
		return nil, newError(KindInvalidOperand, "NewAtom", "atom id is empty")
	}
	if z < 1 {
		return nil, newError(KindInvalidOperand, "NewAtom", "atomic number must be positive, got %d", z)
	}
	conf, err := Configure(z)
	if err != nil {
		return nil, errDecorate(err, "NewAtom")
	}
	if name == "" {
		name = symbol
	}
	return &Atom{id: id, symbol: symbol, name: name, z: z, config: conf}, nil
}

func (A *Atom) ID() string { return A.id }

func (A *Atom) Symbol() string { return A.symbol }

func (A *Atom) Name() string { return A.name }

func (A *Atom) AtomicNumber() int { return A.z }

//Configuration returns the electron configuration computed at construction.
func (A *Atom) Configuration() Configuration { return A.config }

//ValenceElectrons returns the electrons in the outermost shell.
func (A *Atom) ValenceElectrons() int { return A.config.Valence }

//AvailableSlots returns the bonding capacity of the atom. It never changes;
//what a molecule has consumed is tracked by the atom's MoleculeNode.
func (A *Atom) AvailableSlots() int { return A.config.Slots }

//State returns the binding state of the atom.
func (A *Atom) State() Binding {
	A.mu.RLock()
	defer A.mu.RUnlock()
	return A.state
}

//Free returns true if the atom belongs to no molecule.
func (A *Atom) Free() bool { return A.State() == Free }

//Bound returns true if the atom belongs to a molecule.
func (A *Atom) Bound() bool { return A.State() == Bound }

//Molecule returns the name of the molecule the atom is bound to,
//or an empty string.
func (A *Atom) Molecule() string {
	A.mu.RLock()
	defer A.mu.RUnlock()
	return A.molecule
}

//BindTo marks the atom as part of the molecule molname. It fails with
//an AlreadyBound error if the atom is already bound.
func (A *Atom) BindTo(molname string) error {
	A.mu.Lock()
	defer A.mu.Unlock()
	if A.state == Bound {
		return newError(KindAlreadyBound, "BindTo", "atom %s (%s) is already bound to %q, it cannot belong to two molecules", A.id, A.symbol, A.molecule)
	}
	A.state = Bound
	A.molecule = molname
	return nil
}

//Release returns the atom to the free state. It does not touch any
//molecule: a molecule that holds a node for this atom keeps it.
//Registry.ReleaseAtom is the operation that keeps both sides consistent.
func (A *Atom) Release() {
	A.mu.Lock()
	A.state = Free
	A.molecule = ""
	A.mu.Unlock()
}

func (A *Atom) String() string {
	A.mu.RLock()
	defer A.mu.RUnlock()
	if A.state == Bound {
		return fmt.Sprintf("Atom(%s, %s, BOUND(%s))", A.id, A.symbol, A.molecule)
	}
	return fmt.Sprintf("Atom(%s, %s, FREE)", A.id, A.symbol)
}
