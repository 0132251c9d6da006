/*
 * snapshot_test.go, part of miguitas.
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

package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	chem "github.com/AmaiDonatsu/miguitas"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ammonia(t *testing.T) *chem.Registry {
	t.Helper()
	reg := chem.NewRegistry()
	n, err := reg.CreateAtom("N", 7)
	require.NoError(t, err)
	_, err = reg.CreateMolecule("ammonia")
	require.NoError(t, err)
	require.NoError(t, reg.AddAtomToMolecule("ammonia", n))
	for i := 0; i < 3; i++ {
		h, err := reg.CreateAtom("H", 1)
		require.NoError(t, err)
		require.NoError(t, reg.AddAtomToMolecule("ammonia", h))
		_, err = reg.Connect("ammonia", n, h, chem.Single)
		require.NoError(t, err)
	}
	_, err = reg.CreateAtom("Cl", 17)
	require.NoError(t, err)
	return reg
}

func TestRoundTrip(t *testing.T) {
	src := ammonia(t)
	var buf bytes.Buffer
	h, err := Write(&buf, src)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, h.ID)
	assert.Equal(t, Version, h.Version)

	dst := chem.NewRegistry()
	got, err := Load(&buf, dst)
	require.NoError(t, err)
	assert.Equal(t, h.ID, got.ID)
	assert.True(t, h.Created.Equal(got.Created))
	assert.Equal(t, src.Export(), dst.Export())

	mol, ok := dst.Molecule("ammonia")
	require.True(t, ok)
	assert.True(t, mol.Valid())
	assert.Equal(t, "H3N", mol.Formula())
}

func TestFiles(t *testing.T) {
	name := filepath.Join(t.TempDir(), "session.mgs")
	src := ammonia(t)
	h1, err := SaveFile(name, src)
	require.NoError(t, err)
	dst := chem.NewRegistry()
	h2, err := LoadFile(name, dst)
	require.NoError(t, err)
	assert.Equal(t, h1.ID, h2.ID)
	assert.Equal(t, src.Stats(), dst.Stats())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.mgs"), dst)
	var serr *Error
	require.True(t, errors.As(err, &serr))
	assert.Contains(t, serr.FileName(), "missing.mgs")
}

func mustJSON(t *testing.T, v interface{}) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

//rewrite compresses f as a snapshot would.
func rewrite(t *testing.T, f File) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = zw.Write(mustJSON(t, f))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return &buf
}

func TestTamperedSnapshot(t *testing.T) {
	var buf bytes.Buffer
	_, err := Write(&buf, ammonia(t))
	require.NoError(t, err)
	f, err := Read(&buf)
	require.NoError(t, err)

	f.Session.Molecules[0].Bonds[0].Type = "DOUBLE"
	dst := ammonia(t)
	before := dst.Export()
	_, err = Load(rewrite(t, f), dst)
	require.Error(t, err)
	assert.True(t, errors.Is(err, chem.ErrCapacityExceeded))
	assert.Equal(t, before, dst.Export())

	var ce chem.Error
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "Load", ce.Decorate("")[len(ce.Decorate(""))-1])
}

func TestBadInput(t *testing.T) {
	reg := chem.NewRegistry()
	_, err := Load(strings.NewReader("this is not zstd"), reg)
	require.Error(t, err)
	var serr *Error
	require.True(t, errors.As(err, &serr))
	assert.Contains(t, err.Error(), WrongFormat)

	f := File{Header: Header{ID: uuid.New(), Version: Version + 1}}
	_, err = Read(rewrite(t, f))
	require.Error(t, err)
	assert.Contains(t, err.Error(), UnsupportedVersion)
}
