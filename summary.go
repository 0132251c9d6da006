/*
 * summary.go, part of miguitas.
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

//AtomSummary is the plain-data view of an atom handed to presentation layers.
type AtomSummary struct {
	ID               string `json:"id"`
	Symbol           string `json:"symbol"`
	Name             string `json:"name"`
	AtomicNumber     int    `json:"atomic_number"`
	Configuration    string `json:"configuration"`
	ValenceElectrons int    `json:"valence_electrons"`
	AvailableSlots   int    `json:"available_slots"`
	State            string `json:"state"`
	Molecule         string `json:"molecule,omitempty"`
}

//BondSummary describes one bond of a molecule.
type BondSummary struct {
	Index    int    `json:"index"`
	A        string `json:"a"`
	B        string `json:"b"`
	Type     string `json:"type"`
	Order    int    `json:"order"`
	Notation string `json:"notation"`
}

//NodeSummary describes one atom inside a molecule.
type NodeSummary struct {
	AtomID    string   `json:"atom_id"`
	Symbol    string   `json:"symbol"`
	Remaining int      `json:"remaining_slots"`
	Satisfied bool     `json:"satisfied"`
	Bonds     []string `json:"bonds"`
}

//MoleculeSummary is the plain-data view of a molecule.
type MoleculeSummary struct {
	Name        string        `json:"name"`
	Formula     string        `json:"formula"`
	Valid       bool          `json:"valid"`
	AtomCount   int           `json:"atom_count"`
	BondCount   int           `json:"bond_count"`
	Nodes       []NodeSummary `json:"nodes"`
	Bonds       []BondSummary `json:"bonds"`
	Unsatisfied []string      `json:"unsatisfied,omitempty"`
}

//Summary returns the current data of the atom.
func (A *Atom) Summary() AtomSummary {
	A.mu.RLock()
	defer A.mu.RUnlock()
	return AtomSummary{
		ID:               A.id,
		Symbol:           A.symbol,
		Name:             A.name,
		AtomicNumber:     A.z,
		Configuration:    A.config.String(),
		ValenceElectrons: A.config.Valence,
		AvailableSlots:   A.config.Slots,
		State:            A.state.String(),
		Molecule:         A.molecule,
	}
}

func (B *Bond) summary() BondSummary {
	return BondSummary{
		Index:    B.index,
		A:        B.at1.ID(),
		B:        B.at2.ID(),
		Type:     B.kind.String(),
		Order:    B.Order(),
		Notation: B.String(),
	}
}

//Summary returns the current structure of the molecule.
func (M *Molecule) Summary() MoleculeSummary {
	valid := M.Valid()
	formula := M.Formula()
	M.mu.RLock()
	defer M.mu.RUnlock()
	s := MoleculeSummary{
		Name:      M.name,
		Formula:   formula,
		Valid:     valid,
		AtomCount: len(M.nodes),
		BondCount: len(M.bonds),
		Nodes:     make([]NodeSummary, 0, len(M.order)),
		Bonds:     make([]BondSummary, 0, len(M.bonds)),
	}
	for _, id := range M.order {
		n := M.nodes[id]
		ns := NodeSummary{
			AtomID:    id,
			Symbol:    n.atom.Symbol(),
			Remaining: n.remaining,
			Satisfied: n.Satisfied(),
			Bonds:     make([]string, 0, len(n.bonds)),
		}
		for _, b := range n.bonds {
			ns.Bonds = append(ns.Bonds, b.Label())
		}
		if !ns.Satisfied {
			s.Unsatisfied = append(s.Unsatisfied, id)
		}
		s.Nodes = append(s.Nodes, ns)
	}
	for _, b := range M.bonds {
		s.Bonds = append(s.Bonds, b.summary())
	}
	return s
}
