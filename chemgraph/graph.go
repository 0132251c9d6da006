/*
 * graph.go, part of miguitas.
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

package chemgraph

import (
	"sort"

	chem "github.com/AmaiDonatsu/miguitas"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

//Bonded is what a Topology is built from. *chem.Molecule implements it.
type Bonded interface {
	Nodes() []*chem.MoleculeNode
	Bonds() []*chem.Bond
}

//Atom is a chem.Atom seen as a Gonum graph node. Its ID is the insertion
//index of the atom in the molecule.
type Atom struct {
	*chem.Atom
	index int64
}

func (A *Atom) ID() int64 {
	return A.index
}

//AtID returns the registry id of the atom, like "C_1".
func (A *Atom) AtID() string {
	return A.Atom.ID()
}

//Bond is a chem.Bond seen as a weighted, undirected Gonum edge.
type Bond struct {
	*chem.Bond
	At1, At2   *Atom
	Weightfunc func(*Bond) float64
}

//Weight is the bond order, unless a Weightfunc is given.
func (B *Bond) Weight() float64 {
	if B.Weightfunc == nil {
		return float64(B.Order())
	}
	return B.Weightfunc(B)
}

func (B *Bond) From() graph.Node {
	return B.At1
}

func (B *Bond) To() graph.Node {
	return B.At2
}

//ReversedEdge returns a new Bond with the ends swapped. The receiver is not modified.
func (B *Bond) ReversedEdge() graph.Edge {
	return &Bond{Bond: B.Bond, At1: B.At2, At2: B.At1, Weightfunc: B.Weightfunc}
}

//Topology is the connectivity of a molecule, as a Gonum weighted undirected
//graph. It is a snapshot: bonds formed after it was built are not in it.
type Topology struct {
	*simple.WeightedUndirectedGraph
	atoms []*Atom
	byID  map[string]*Atom
	bonds int
}

//NewTopology builds the graph of mol. If weightfunc is nil, edges weigh the
//bond order. Two bonds between the same pair of atoms are a single edge,
//holding the last of them.
func NewTopology(mol Bonded, weightfunc func(*Bond) float64) *Topology {
	nodes := mol.Nodes()
	T := &Topology{
		WeightedUndirectedGraph: simple.NewWeightedUndirectedGraph(0, 0),
		atoms:                   make([]*Atom, 0, len(nodes)),
		byID:                    make(map[string]*Atom, len(nodes)),
	}
	for i, n := range nodes {
		at := &Atom{Atom: n.Atom(), index: int64(i)}
		T.atoms = append(T.atoms, at)
		T.byID[at.AtID()] = at
		T.AddNode(at)
	}
	for _, b := range mol.Bonds() {
		a1, ok1 := T.byID[b.At1().ID()]
		a2, ok2 := T.byID[b.At2().ID()]
		if !ok1 || !ok2 {
			continue
		}
		T.SetWeightedEdge(&Bond{Bond: b, At1: a1, At2: a2, Weightfunc: weightfunc})
		T.bonds++
	}
	return T
}

//Atom returns the node of the atom with the given registry id.
func (T *Topology) Atom(id string) (*Atom, bool) {
	at, ok := T.byID[id]
	return at, ok
}

//Atoms returns the nodes in insertion order.
func (T *Topology) Atoms() []*Atom {
	ret := make([]*Atom, len(T.atoms))
	copy(ret, T.atoms)
	return ret
}

//BondCount is the number of bonds the graph was built from, counting every
//bond between a repeated pair of atoms.
func (T *Topology) BondCount() int {
	return T.bonds
}

//Fragments returns the registry ids of each connected piece of the molecule.
//Fragments are sorted by their first atom and the ids inside each fragment
//are in insertion order.
func (T *Topology) Fragments() [][]string {
	comps := topo.ConnectedComponents(T)
	idx := make([][]int64, 0, len(comps))
	for _, c := range comps {
		ids := make([]int64, 0, len(c))
		for _, n := range c {
			ids = append(ids, n.ID())
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		idx = append(idx, ids)
	}
	sort.Slice(idx, func(i, j int) bool { return idx[i][0] < idx[j][0] })
	ret := make([][]string, 0, len(idx))
	for _, ids := range idx {
		frag := make([]string, 0, len(ids))
		for _, id := range ids {
			frag = append(frag, T.atoms[id].AtID())
		}
		ret = append(ret, frag)
	}
	return ret
}

//Connected returns true if the molecule is a single piece. An empty molecule
//is not connected.
func (T *Topology) Connected() bool {
	return len(T.atoms) > 0 && len(T.Fragments()) == 1
}

//Rings returns the number of independent cycles in the molecule, E-V+C, where
//multiple bonds between the same two atoms count as one edge.
func (T *Topology) Rings() int {
	if len(T.atoms) == 0 {
		return 0
	}
	e := T.Edges().Len()
	return e - len(T.atoms) + len(topo.ConnectedComponents(T))
}

//Path returns the registry ids on the lightest path between the atoms from
//and to, and the weight of that path. It returns false if the atoms are not
//in the graph or are not connected.
func (T *Topology) Path(from, to string) ([]string, float64, bool) {
	a, ok := T.byID[from]
	if !ok {
		return nil, 0, false
	}
	b, ok := T.byID[to]
	if !ok {
		return nil, 0, false
	}
	shortest := path.DijkstraFrom(a, T)
	nodes, w := shortest.To(b.ID())
	if len(nodes) == 0 {
		return nil, 0, false
	}
	ret := make([]string, 0, len(nodes))
	for _, n := range nodes {
		ret = append(ret, T.atoms[n.ID()].AtID())
	}
	return ret, w, true
}
