/*
 * molecule.go, part of miguitas.
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
	"sort"
	"strconv"
	"strings"
	"sync"
)

//MoleculeOption configures a Molecule on creation.
type MoleculeOption func(*Molecule)

//WithFormula sets an explicit formula, which Formula will return instead of
//generating one.
func WithFormula(formula string) MoleculeOption {
	return func(M *Molecule) { M.formula = formula }
}

//Molecule is a graph of atoms joined by bonds. Nodes are keyed by atom id.
//A molecule only grows: atoms and bonds are added, never removed, except for
//the release of a bondless atom through the registry.
type Molecule struct {
	mu      sync.RWMutex
	name    string
	formula string
	nodes   map[string]*MoleculeNode
	order   []string //atom ids in insertion order
	bonds   []*Bond
}

//NewMolecule returns an empty molecule.
func NewMolecule(name string, opts ...MoleculeOption) *Molecule {
	M := &Molecule{
		name:  name,
		nodes: make(map[string]*MoleculeNode),
	}
	for _, opt := range opts {
		opt(M)
	}
	return M
}

func (M *Molecule) Name() string { return M.name }

//AddAtom creates the node for at. It fails with a DuplicateName error if
//the atom is already in the molecule, and with an AlreadyBound error if the
//atom is bound to another molecule. AddAtom does not change the state of the
//atom: binding it is the job of the caller (normally the Registry).
func (M *Molecule) AddAtom(at *Atom) (*MoleculeNode, error) {
	if at == nil {
		return nil, newError(KindInvalidOperand, "AddAtom", "can't add a nil atom to %s", M.name)
	}
	M.mu.Lock()
	defer M.mu.Unlock()
	if _, ok := M.nodes[at.ID()]; ok {
		return nil, newError(KindDuplicateName, "AddAtom", "atom %s is already in molecule %s", at.ID(), M.name)
	}
	if at.Bound() && at.Molecule() != M.name {
		return nil, newError(KindAlreadyBound, "AddAtom", "atom %s belongs to molecule %q, not to %q", at.ID(), at.Molecule(), M.name)
	}
	node := newMoleculeNode(at)
	M.nodes[at.ID()] = node
	M.order = append(M.order, at.ID())
	return node, nil
}

//removeAtom drops the node of a bondless atom.
func (M *Molecule) removeAtom(id string) error {
	M.mu.Lock()
	defer M.mu.Unlock()
	node, ok := M.nodes[id]
	if !ok {
		return newError(KindInvalidOperand, "removeAtom", "atom %s is not in molecule %s", id, M.name)
	}
	if len(node.bonds) > 0 {
		return newError(KindInvalidOperand, "removeAtom", "atom %s still holds %d bond(s) in molecule %s", id, len(node.bonds), M.name)
	}
	delete(M.nodes, id)
	for i, v := range M.order {
		if v == id {
			M.order = append(M.order[:i], M.order[i+1:]...)
			break
		}
	}
	return nil
}

//Connect joins a and b with a bond of type t. See ConnectByID.
func (M *Molecule) Connect(a, b *Atom, t BondType) (*Bond, error) {
	if a == nil || b == nil {
		return nil, newError(KindInvalidOperand, "Connect", "can't connect a nil atom in %s", M.name)
	}
	bond, err := M.ConnectByID(a.ID(), b.ID(), t)
	return bond, errDecorate(err, "Connect")
}

//ConnectByID joins the atoms with ids idA and idB with a bond of type t.
//Both atoms must be in the molecule (InvalidOperand otherwise). The bond
//order is checked against both nodes before either is charged, so a
//CapacityExceeded error leaves the molecule exactly as it was.
func (M *Molecule) ConnectByID(idA, idB string, t BondType) (*Bond, error) {
	M.mu.Lock()
	defer M.mu.Unlock()
	bond, err := M.connect(idA, idB, t)
	return bond, errDecorate(err, "ConnectByID")
}

func (M *Molecule) connect(idA, idB string, t BondType) (*Bond, error) {
	n1, ok := M.nodes[idA]
	if !ok {
		return nil, newError(KindInvalidOperand, "connect", "atom %s is not in molecule %s", idA, M.name)
	}
	n2, ok := M.nodes[idB]
	if !ok {
		return nil, newError(KindInvalidOperand, "connect", "atom %s is not in molecule %s", idB, M.name)
	}
	bond, err := NewBond(n1.atom, n2.atom, t)
	if err != nil {
		return nil, errDecorate(err, "connect")
	}
	//Reserve: both ends must accept the bond before anything changes.
	for _, n := range [2]*MoleculeNode{n1, n2} {
		if !n.CanBond(bond.Order()) {
			return nil, newError(KindCapacityExceeded, "connect", "%s (%s) has %d slot(s) left, a %s bond needs %d", n.atom.ID(), n.atom.Symbol(), n.remaining, t, bond.Order())
		}
	}
	//Commit.
	bond.index = len(M.bonds)
	n1.charge(bond)
	n2.charge(bond)
	M.bonds = append(M.bonds, bond)
	return bond, nil
}

//Valid returns true if the molecule has atoms and all of them have
//completed their duet or octet.
func (M *Molecule) Valid() bool {
	M.mu.RLock()
	defer M.mu.RUnlock()
	if len(M.nodes) == 0 {
		return false
	}
	for _, n := range M.nodes {
		if !n.Satisfied() {
			return false
		}
	}
	return true
}

//Unsatisfied returns, in insertion order, the atoms with slots left.
func (M *Molecule) Unsatisfied() []*Atom {
	M.mu.RLock()
	defer M.mu.RUnlock()
	ret := make([]*Atom, 0)
	for _, id := range M.order {
		if n := M.nodes[id]; !n.Satisfied() {
			ret = append(ret, n.atom)
		}
	}
	return ret
}

//Formula returns the explicit formula given on creation, or the empirical
//formula in Hill order: carbon, then hydrogen, then the rest alphabetically,
//each count written only if larger than 1.
func (M *Molecule) Formula() string {
	M.mu.RLock()
	defer M.mu.RUnlock()
	if M.formula != "" {
		return M.formula
	}
	return M.hill()
}

func (M *Molecule) hill() string {
	counts := make(map[string]int)
	for _, n := range M.nodes {
		counts[n.atom.Symbol()]++
	}
	var b strings.Builder
	write := func(symbol string) {
		c := counts[symbol]
		b.WriteString(symbol)
		if c > 1 {
			b.WriteString(strconv.Itoa(c))
		}
		delete(counts, symbol)
	}
	for _, s := range []string{"C", "H"} {
		if counts[s] > 0 {
			write(s)
		}
	}
	rest := make([]string, 0, len(counts))
	for s := range counts {
		rest = append(rest, s)
	}
	sort.Strings(rest)
	for _, s := range rest {
		write(s)
	}
	return b.String()
}

//MolecularMass returns the sum of the atomic masses of the atoms. The
//second value is false if some element has no tabulated mass.
func (M *Molecule) MolecularMass() (float64, bool) {
	M.mu.RLock()
	defer M.mu.RUnlock()
	var mass float64
	for _, n := range M.nodes {
		m, ok := Mass(n.atom.Symbol())
		if !ok {
			return 0, false
		}
		mass += m
	}
	return mass, true
}

//saturation appends to dst the fraction of slots used by each atom that has slots.
func (M *Molecule) saturation(dst []float64) []float64 {
	M.mu.RLock()
	defer M.mu.RUnlock()
	for _, id := range M.order {
		n := M.nodes[id]
		slots := n.atom.AvailableSlots()
		if slots == 0 {
			continue
		}
		dst = append(dst, float64(slots-n.remaining)/float64(slots))
	}
	return dst
}

//Node returns the node of the atom with the given id.
func (M *Molecule) Node(id string) (*MoleculeNode, bool) {
	M.mu.RLock()
	defer M.mu.RUnlock()
	n, ok := M.nodes[id]
	return n, ok
}

//Contains returns true if the atom with the given id is in the molecule.
func (M *Molecule) Contains(id string) bool {
	_, ok := M.Node(id)
	return ok
}

//Nodes returns the nodes in insertion order.
func (M *Molecule) Nodes() []*MoleculeNode {
	M.mu.RLock()
	defer M.mu.RUnlock()
	ret := make([]*MoleculeNode, 0, len(M.order))
	for _, id := range M.order {
		ret = append(ret, M.nodes[id])
	}
	return ret
}

//AtomIDs returns the ids of the atoms in insertion order.
func (M *Molecule) AtomIDs() []string {
	M.mu.RLock()
	defer M.mu.RUnlock()
	ret := make([]string, len(M.order))
	copy(ret, M.order)
	return ret
}

//Bonds returns the bonds in creation order.
func (M *Molecule) Bonds() []*Bond {
	M.mu.RLock()
	defer M.mu.RUnlock()
	ret := make([]*Bond, len(M.bonds))
	copy(ret, M.bonds)
	return ret
}

//Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	M.mu.RLock()
	defer M.mu.RUnlock()
	return len(M.nodes)
}

//BondCount returns the number of bonds in the molecule.
func (M *Molecule) BondCount() int {
	M.mu.RLock()
	defer M.mu.RUnlock()
	return len(M.bonds)
}

func (M *Molecule) String() string {
	status := "incomplete"
	if M.Valid() {
		status = "valid"
	}
	return "Molecule(" + M.name + ", " + M.Formula() + ", " + status + ")"
}
