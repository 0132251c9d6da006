/*
 * session_test.go, part of miguitas.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waterRegistry(t *testing.T) *Registry {
	t.Helper()
	R := NewRegistry()
	o := mustCreate(t, R, "O", 8)
	h1 := mustCreate(t, R, "H", 1)
	h2 := mustCreate(t, R, "H", 1)
	mustCreate(t, R, "N", 7)
	_, err := R.CreateMolecule("water", WithFormula("H2O"))
	require.NoError(t, err)
	for _, id := range []string{o, h1, h2} {
		require.NoError(t, R.AddAtomToMolecule("water", id))
	}
	_, err = R.Connect("water", o, h1, Single)
	require.NoError(t, err)
	_, err = R.Connect("water", o, h2, Single)
	require.NoError(t, err)
	_, err = R.CreateMolecule("empty")
	require.NoError(t, err)
	return R
}

func TestExportLoad(t *testing.T) {
	src := waterRegistry(t)
	s := src.Export()
	require.Len(t, s.Atoms, 4)
	require.Len(t, s.Molecules, 2)
	assert.Equal(t, MoleculeRecord{
		Name:    "water",
		Formula: "H2O",
		Atoms:   []string{"O_1", "H_1", "H_2"},
		Bonds:   []BondRecord{{"O_1", "H_1", "SINGLE"}, {"O_1", "H_2", "SINGLE"}},
	}, s.Molecules[0])
	assert.Equal(t, "water", s.Atoms[0].Molecule)
	assert.Empty(t, s.Atoms[3].Molecule)

	dst := NewRegistry()
	mustCreate(t, dst, "Xe", 54)
	require.NoError(t, dst.Load(s))
	assert.Equal(t, src.Stats(), dst.Stats())
	_, ok := dst.Atom("Xe_1")
	assert.False(t, ok, "Load replaces the previous contents")

	mol, ok := dst.Molecule("water")
	require.True(t, ok)
	assert.True(t, mol.Valid())
	assert.Equal(t, src.Export(), dst.Export())

	assert.Equal(t, "H_3", mustCreate(t, dst, "H", 1), "counters survive the round trip")
}

func TestLoadRejectsBrokenSessions(t *testing.T) {
	cases := map[string]struct {
		edit func(*Session)
		want error
	}{
		"overfilled atom": {
			edit: func(s *Session) {
				s.Molecules[0].Bonds[1].Type = "TRIPLE"
			},
			want: ErrCapacityExceeded,
		},
		"atom in two molecules": {
			edit: func(s *Session) {
				s.Molecules[1].Atoms = []string{"O_1"}
			},
			want: ErrAlreadyBound,
		},
		"unknown atom": {
			edit: func(s *Session) {
				s.Molecules[0].Atoms = append(s.Molecules[0].Atoms, "C_7")
			},
			want: ErrNotFound,
		},
		"repeated id": {
			edit: func(s *Session) {
				s.Atoms = append(s.Atoms, s.Atoms[0])
			},
			want: ErrDuplicateName,
		},
		"bad bond type": {
			edit: func(s *Session) {
				s.Molecules[0].Bonds[0].Type = "AROMATIC"
			},
			want: ErrInvalidOperand,
		},
		"state disagrees": {
			edit: func(s *Session) {
				s.Atoms[3].Molecule = "water"
			},
			want: ErrInvalidOperand,
		},
		"id of another element": {
			edit: func(s *Session) {
				s.Atoms[3].ID = "C_1"
			},
			want: ErrInvalidOperand,
		},
		"id without counter": {
			edit: func(s *Session) {
				s.Atoms[3].ID = "N_first"
			},
			want: ErrInvalidOperand,
		},
		"superheavy": {
			edit: func(s *Session) {
				s.Atoms[3].AtomicNumber = 200
			},
			want: ErrInvalidOperand,
		},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			dst := waterRegistry(t)
			before := dst.Export()
			s := waterRegistry(t).Export()
			c.edit(&s)
			err := dst.Load(s)
			require.Error(t, err)
			assert.True(t, errors.Is(err, c.want), "got %v", err)
			assert.Equal(t, before, dst.Export(), "a failed load must leave the registry untouched")
		})
	}
}

func TestCreateAtomSkipsTakenIDs(t *testing.T) {
	R := NewRegistry()
	require.Equal(t, "C_1", mustCreate(t, R, "C", 6))
	require.Equal(t, "C_2", mustCreate(t, R, "C", 6))
	R.counters["C"] = 0
	assert.Equal(t, "C_3", mustCreate(t, R, "C", 6))
	assert.Len(t, R.Atoms(AllAtoms), 3)
	assert.Equal(t, 3, R.Stats().TotalAtoms)
	at, ok := R.Atom("C_1")
	require.True(t, ok)
	assert.Equal(t, "C", at.Symbol())
}

func TestIDCounter(t *testing.T) {
	n, ok := idCounter("Cl_12", "Cl")
	assert.True(t, ok)
	assert.Equal(t, 12, n)
	_, ok = idCounter("C_x", "C")
	assert.False(t, ok)
	_, ok = idCounter("Cl_1", "C")
	assert.False(t, ok)
	_, ok = idCounter("C_0", "C")
	assert.False(t, ok)
}
