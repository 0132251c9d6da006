/*
 * registry.go, part of miguitas.
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
	"sync"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
)

//StateFilter selects atoms by binding state in Registry.Atoms.
type StateFilter int

const (
	AllAtoms StateFilter = iota
	FreeAtoms
	BoundAtoms
)

//ParseStateFilter reads "FREE" or "BOUND" in any case. An empty string means all atoms.
func ParseStateFilter(s string) (StateFilter, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return AllAtoms, nil
	case "FREE":
		return FreeAtoms, nil
	case "BOUND":
		return BoundAtoms, nil
	}
	return AllAtoms, newError(KindInvalidOperand, "ParseStateFilter", "unknown state filter %q, use FREE or BOUND", s)
}

func (F StateFilter) match(at *Atom) bool {
	switch F {
	case FreeAtoms:
		return at.Free()
	case BoundAtoms:
		return at.Bound()
	}
	return true
}

//Stats are the aggregate counts of a registry.
type Stats struct {
	TotalAtoms     int     `json:"total_atoms"`
	FreeAtoms      int     `json:"free_atoms"`
	BoundAtoms     int     `json:"bound_atoms"`
	Molecules      int     `json:"molecules"`
	ValidMolecules int     `json:"valid_molecules"`
	MeanSaturation float64 `json:"mean_saturation"` //mean fraction of slots used, over bound atoms that have slots
}

//RegistryOption configures a Registry.
type RegistryOption func(*Registry)

//WithLogger makes the registry log its transitions to l.
func WithLogger(l *zap.Logger) RegistryOption {
	return func(R *Registry) {
		if l != nil {
			R.log = l
		}
	}
}

//WithObserver makes the registry report its events to o.
func WithObserver(o Observer) RegistryOption {
	return func(R *Registry) {
		if o != nil {
			R.obs = o
		}
	}
}

//Registry holds every atom and molecule of a session. It issues atom ids and
//is the only place where atoms move between molecules, so that an atom is
//bound to a molecule if and only if that molecule has a node for it.
//A Registry is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	atoms     map[string]*Atom
	atomOrder []string
	mols      map[string]*Molecule
	molOrder  []string
	counters  map[string]int
	owners    map[string]string //atom id -> name of the molecule holding its node

	log *zap.Logger
	obs Observer
}

//NewRegistry returns an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	R := &Registry{log: zap.NewNop(), obs: nopObserver{}}
	R.reset()
	for _, opt := range opts {
		opt(R)
	}
	return R
}

func (R *Registry) reset() {
	R.atoms = make(map[string]*Atom)
	R.atomOrder = nil
	R.mols = make(map[string]*Molecule)
	R.molOrder = nil
	R.counters = make(map[string]int)
	R.owners = make(map[string]string)
}

//reject logs and reports a failed operation. It returns err decorated with op.
func (R *Registry) reject(op string, err error) error {
	kind, _ := KindOf(err)
	R.log.Warn("operation rejected", zap.String("op", op), zap.Stringer("kind", kind), zap.Error(err))
	R.obs.Rejected(op, kind)
	return errDecorate(err, op)
}

func (R *Registry) changed() {
	R.obs.StateChanged(R.stats())
}

//CreateAtom creates a free atom and returns its id, "{symbol}_{n}" with n
//counting from 1 for each symbol. If no name is given, the element name is
//used when the symbol is known, the symbol otherwise.
func (R *Registry) CreateAtom(symbol string, z int, name ...string) (string, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return "", R.reject("CreateAtom", newError(KindInvalidOperand, "CreateAtom", "atom symbol is empty"))
	}
	if z < 1 || z > MaxAtomicNumber {
		return "", R.reject("CreateAtom", newError(KindInvalidOperand, "CreateAtom", "atomic number %d is outside the supported range 1-%d", z, MaxAtomicNumber))
	}
	atname := ""
	if len(name) > 0 {
		atname = strings.TrimSpace(name[0])
	}
	if atname == "" {
		atname, _ = ElementName(symbol)
	}
	R.mu.Lock()
	defer R.mu.Unlock()
	n := R.counters[symbol]
	var id string
	for {
		n++
		id = fmt.Sprintf("%s_%d", symbol, n)
		if _, taken := R.atoms[id]; !taken {
			break
		}
	}
	at, err := NewAtom(id, symbol, atname, z)
	if err != nil {
		return "", R.reject("CreateAtom", err)
	}
	R.counters[symbol] = n
	R.insertAtom(at)
	R.log.Debug("atom created",
		zap.String("id", id),
		zap.Int("z", z),
		zap.String("configuration", at.Configuration().String()),
		zap.Int("slots", at.AvailableSlots()))
	R.obs.AtomCreated(symbol)
	R.changed()
	return id, nil
}

func (R *Registry) insertAtom(at *Atom) {
	R.atoms[at.ID()] = at
	R.atomOrder = append(R.atomOrder, at.ID())
}

//Atom returns the atom with the given id.
func (R *Registry) Atom(id string) (*Atom, bool) {
	R.mu.RLock()
	defer R.mu.RUnlock()
	at, ok := R.atoms[id]
	return at, ok
}

//Atoms returns the atoms that pass filter, in creation order.
func (R *Registry) Atoms(filter StateFilter) []*Atom {
	R.mu.RLock()
	defer R.mu.RUnlock()
	ret := make([]*Atom, 0, len(R.atomOrder))
	for _, id := range R.atomOrder {
		if at := R.atoms[id]; filter.match(at) {
			ret = append(ret, at)
		}
	}
	return ret
}

//CreateMolecule creates an empty molecule. Names are unique: reusing one
//gives a DuplicateName error.
func (R *Registry) CreateMolecule(name string, opts ...MoleculeOption) (*Molecule, error) {
	if strings.TrimSpace(name) == "" {
		return nil, R.reject("CreateMolecule", newError(KindInvalidOperand, "CreateMolecule", "molecule name is empty"))
	}
	R.mu.Lock()
	defer R.mu.Unlock()
	if _, ok := R.mols[name]; ok {
		return nil, R.reject("CreateMolecule", newError(KindDuplicateName, "CreateMolecule", "a molecule named %q already exists", name))
	}
	mol := NewMolecule(name, opts...)
	R.mols[name] = mol
	R.molOrder = append(R.molOrder, name)
	R.log.Debug("molecule created", zap.String("molecule", name))
	R.changed()
	return mol, nil
}

//Molecule returns the molecule with the given name.
func (R *Registry) Molecule(name string) (*Molecule, bool) {
	R.mu.RLock()
	defer R.mu.RUnlock()
	mol, ok := R.mols[name]
	return mol, ok
}

//Molecules returns all the molecules in creation order.
func (R *Registry) Molecules() []*Molecule {
	R.mu.RLock()
	defer R.mu.RUnlock()
	ret := make([]*Molecule, 0, len(R.molOrder))
	for _, name := range R.molOrder {
		ret = append(ret, R.mols[name])
	}
	return ret
}

//AddAtomToMolecule puts a free atom into a molecule and marks it as bound,
//as a single step. It fails with NotFound if the atom or the molecule do
//not exist, and with AlreadyBound if the atom belongs to a molecule, or
//still has a node in one after being released outside the registry.
func (R *Registry) AddAtomToMolecule(molname, atomID string) error {
	R.mu.Lock()
	defer R.mu.Unlock()
	return R.addAtomToMolecule(molname, atomID)
}

func (R *Registry) addAtomToMolecule(molname, atomID string) error {
	const op = "AddAtomToMolecule"
	mol, ok := R.mols[molname]
	if !ok {
		return R.reject(op, newError(KindNotFound, op, "molecule %q does not exist", molname))
	}
	at, ok := R.atoms[atomID]
	if !ok {
		return R.reject(op, newError(KindNotFound, op, "atom %q does not exist", atomID))
	}
	if at.Bound() {
		return R.reject(op, newError(KindAlreadyBound, op, "atom %s is already bound to %q, an atom can only be in one molecule", atomID, at.Molecule()))
	}
	if owner, ok := R.owners[atomID]; ok {
		return R.reject(op, newError(KindAlreadyBound, op, "atom %s still has a node in %q, release it through the registry first", atomID, owner))
	}
	if _, err := mol.AddAtom(at); err != nil {
		return R.reject(op, err)
	}
	if err := at.BindTo(molname); err != nil {
		//Someone bound the atom behind our back. Undo the node.
		if rerr := mol.removeAtom(atomID); rerr != nil {
			R.log.Error("rollback failed", zap.String("atom", atomID), zap.String("molecule", molname), zap.Error(rerr))
		}
		return R.reject(op, err)
	}
	R.owners[atomID] = molname
	R.log.Debug("atom bound", zap.String("atom", atomID), zap.String("molecule", molname))
	R.changed()
	return nil
}

//Connect bonds two atoms of the named molecule. See Molecule.ConnectByID.
func (R *Registry) Connect(molname, idA, idB string, t BondType) (*Bond, error) {
	R.mu.Lock()
	defer R.mu.Unlock()
	return R.connect(molname, idA, idB, t)
}

func (R *Registry) connect(molname, idA, idB string, t BondType) (*Bond, error) {
	const op = "Connect"
	mol, ok := R.mols[molname]
	if !ok {
		return nil, R.reject(op, newError(KindNotFound, op, "molecule %q does not exist", molname))
	}
	bond, err := mol.ConnectByID(idA, idB, t)
	if err != nil {
		return nil, R.reject(op, err)
	}
	R.log.Debug("bond formed", zap.String("molecule", molname), zap.String("bond", bond.Label()))
	R.obs.BondFormed(t)
	R.changed()
	return bond, nil
}

//ReleaseAtom frees an atom and removes its node from the molecule that holds it.
//Only atoms without bonds can leave a molecule: releasing one that still has
//bonds is an InvalidOperand error, since molecules do not lose bonds. Releasing
//a free atom does nothing.
func (R *Registry) ReleaseAtom(id string) error {
	const op = "ReleaseAtom"
	R.mu.Lock()
	defer R.mu.Unlock()
	at, ok := R.atoms[id]
	if !ok {
		return R.reject(op, newError(KindNotFound, op, "atom %q does not exist", id))
	}
	owner, ok := R.owners[id]
	if !ok {
		at.Release()
		R.changed()
		return nil
	}
	mol := R.mols[owner]
	if err := mol.removeAtom(id); err != nil {
		return R.reject(op, err)
	}
	delete(R.owners, id)
	at.Release()
	R.log.Debug("atom released", zap.String("atom", id), zap.String("molecule", owner))
	R.changed()
	return nil
}

//Clear drops every atom, molecule and id counter.
func (R *Registry) Clear() {
	R.mu.Lock()
	defer R.mu.Unlock()
	R.reset()
	R.log.Info("registry cleared")
	R.changed()
}

//Stats returns the counts of the registry.
func (R *Registry) Stats() Stats {
	R.mu.RLock()
	defer R.mu.RUnlock()
	return R.stats()
}

func (R *Registry) stats() Stats {
	s := Stats{TotalAtoms: len(R.atoms), Molecules: len(R.mols)}
	for _, at := range R.atoms {
		if at.Bound() {
			s.BoundAtoms++
		} else {
			s.FreeAtoms++
		}
	}
	saturation := make([]float64, 0, s.BoundAtoms)
	for _, mol := range R.mols {
		if mol.Valid() {
			s.ValidMolecules++
		}
		saturation = mol.saturation(saturation)
	}
	if len(saturation) > 0 {
		s.MeanSaturation = stat.Mean(saturation, nil)
	}
	return s
}
