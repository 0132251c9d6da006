/*
 * session.go, part of miguitas.
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
	"strconv"
	"strings"

	"go.uber.org/zap"
)

//Session is the plain-data image of a registry, used to save and restore it.
type Session struct {
	Atoms     []AtomRecord     `json:"atoms"`
	Molecules []MoleculeRecord `json:"molecules"`
	Counters  map[string]int   `json:"counters"`
}

//AtomRecord is an atom in a Session.
type AtomRecord struct {
	ID           string `json:"id"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	AtomicNumber int    `json:"atomic_number"`
	Molecule     string `json:"molecule,omitempty"`
}

//MoleculeRecord is a molecule in a Session. Atoms and Bonds are in
//insertion and creation order.
type MoleculeRecord struct {
	Name    string       `json:"name"`
	Formula string       `json:"formula,omitempty"` //only an explicit formula
	Atoms   []string     `json:"atoms"`
	Bonds   []BondRecord `json:"bonds"`
}

//BondRecord is a bond in a Session.
type BondRecord struct {
	A    string `json:"a"`
	B    string `json:"b"`
	Type string `json:"type"`
}

//Export returns the current contents of the registry.
func (R *Registry) Export() Session {
	R.mu.RLock()
	defer R.mu.RUnlock()
	s := Session{
		Atoms:     make([]AtomRecord, 0, len(R.atomOrder)),
		Molecules: make([]MoleculeRecord, 0, len(R.molOrder)),
		Counters:  make(map[string]int, len(R.counters)),
	}
	for k, v := range R.counters {
		s.Counters[k] = v
	}
	for _, id := range R.atomOrder {
		at := R.atoms[id]
		s.Atoms = append(s.Atoms, AtomRecord{
			ID:           id,
			Symbol:       at.Symbol(),
			Name:         at.Name(),
			AtomicNumber: at.AtomicNumber(),
			Molecule:     at.Molecule(),
		})
	}
	for _, name := range R.molOrder {
		mol := R.mols[name]
		mol.mu.RLock()
		rec := MoleculeRecord{
			Name:    name,
			Formula: mol.formula,
			Atoms:   append([]string(nil), mol.order...),
			Bonds:   make([]BondRecord, 0, len(mol.bonds)),
		}
		for _, b := range mol.bonds {
			rec.Bonds = append(rec.Bonds, BondRecord{A: b.at1.ID(), B: b.at2.ID(), Type: b.kind.String()})
		}
		mol.mu.RUnlock()
		s.Molecules = append(s.Molecules, rec)
	}
	return s
}

//Load replaces the contents of the registry with s. The session is replayed
//through the normal operations on a scratch registry, so a session that breaks
//any rule (an overfilled atom, an atom in two molecules...) is rejected with
//the corresponding error and the registry is left as it was.
func (R *Registry) Load(s Session) error {
	scratch, err := replay(s)
	if err != nil {
		return R.reject("Load", err)
	}
	R.mu.Lock()
	defer R.mu.Unlock()
	R.atoms, R.atomOrder = scratch.atoms, scratch.atomOrder
	R.mols, R.molOrder = scratch.mols, scratch.molOrder
	R.counters, R.owners = scratch.counters, scratch.owners
	R.log.Info("session loaded", zap.Int("atoms", len(R.atoms)), zap.Int("molecules", len(R.mols)))
	R.changed()
	return nil
}

func replay(s Session) (*Registry, error) {
	const op = "replay"
	R := NewRegistry()
	for _, rec := range s.Atoms {
		if _, ok := R.atoms[rec.ID]; ok {
			return nil, newError(KindDuplicateName, op, "atom id %s appears twice", rec.ID)
		}
		if rec.AtomicNumber > MaxAtomicNumber {
			return nil, newError(KindInvalidOperand, op, "atom %s: atomic number %d is outside the supported range 1-%d", rec.ID, rec.AtomicNumber, MaxAtomicNumber)
		}
		at, err := NewAtom(rec.ID, rec.Symbol, rec.Name, rec.AtomicNumber)
		if err != nil {
			return nil, errDecorate(err, op)
		}
		n, ok := idCounter(rec.ID, rec.Symbol)
		if !ok {
			return nil, newError(KindInvalidOperand, op, "atom id %s does not have the form %s_<n>", rec.ID, rec.Symbol)
		}
		R.insertAtom(at)
		if n > R.counters[rec.Symbol] {
			R.counters[rec.Symbol] = n
		}
	}
	for sym, n := range s.Counters {
		if n > R.counters[sym] {
			R.counters[sym] = n
		}
	}
	for _, mrec := range s.Molecules {
		var opts []MoleculeOption
		if mrec.Formula != "" {
			opts = append(opts, WithFormula(mrec.Formula))
		}
		if _, err := R.CreateMolecule(mrec.Name, opts...); err != nil {
			return nil, errDecorate(err, op)
		}
		for _, id := range mrec.Atoms {
			if err := R.AddAtomToMolecule(mrec.Name, id); err != nil {
				return nil, errDecorate(err, op)
			}
		}
		for _, b := range mrec.Bonds {
			t, err := ParseBondType(b.Type)
			if err != nil {
				return nil, errDecorate(err, op)
			}
			if _, err := R.Connect(mrec.Name, b.A, b.B, t); err != nil {
				return nil, errDecorate(err, op)
			}
		}
	}
	for _, rec := range s.Atoms {
		if got := R.atoms[rec.ID].Molecule(); got != rec.Molecule {
			return nil, newError(KindInvalidOperand, op, "atom %s is recorded in %q but the molecules place it in %q", rec.ID, rec.Molecule, got)
		}
	}
	return R, nil
}

//idCounter extracts n from an id of the form "{symbol}_{n}".
func idCounter(id, symbol string) (int, bool) {
	rest, ok := strings.CutPrefix(id, symbol+"_")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
