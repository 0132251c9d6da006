/*
 * metrics_test.go, part of miguitas.
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

package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	chem "github.com/AmaiDonatsu/miguitas"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorObservesRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	C, err := NewCollector(reg)
	require.NoError(t, err)

	R := chem.NewRegistry(chem.WithObserver(C))
	h1, err := R.CreateAtom("H", 1)
	require.NoError(t, err)
	h2, err := R.CreateAtom("H", 1)
	require.NoError(t, err)
	_, err = R.CreateAtom("Ne", 10)
	require.NoError(t, err)
	_, err = R.CreateMolecule("h2")
	require.NoError(t, err)
	require.NoError(t, R.AddAtomToMolecule("h2", h1))
	require.NoError(t, R.AddAtomToMolecule("h2", h2))
	_, err = R.Connect("h2", h1, h2, chem.Double)
	require.Error(t, err)
	_, err = R.Connect("h2", h1, h2, chem.Single)
	require.NoError(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(C.AtomsCreated.WithLabelValues("H")))
	assert.Equal(t, 1.0, testutil.ToFloat64(C.AtomsCreated.WithLabelValues("Ne")))
	assert.Equal(t, 1.0, testutil.ToFloat64(C.BondsFormed.WithLabelValues("SINGLE")))
	assert.Equal(t, 1.0, testutil.ToFloat64(C.Rejections.WithLabelValues("Connect", "CapacityExceeded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(C.Atoms.WithLabelValues("free")))
	assert.Equal(t, 2.0, testutil.ToFloat64(C.Atoms.WithLabelValues("bound")))
	assert.Equal(t, 1.0, testutil.ToFloat64(C.Molecules))
	assert.Equal(t, 1.0, testutil.ToFloat64(C.ValidMolecules))
	assert.Equal(t, 1.0, testutil.ToFloat64(C.Saturation))
}

func TestRegisterTwice(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := NewCollector(reg)
	require.NoError(t, err)
	b, err := NewCollector(reg)
	require.NoError(t, err)
	a.AtomCreated("C")
	assert.Equal(t, 1.0, testutil.ToFloat64(b.AtomsCreated.WithLabelValues("C")))
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	C, err := NewCollector(reg)
	require.NoError(t, err)
	C.BondFormed(chem.Triple)

	rec := httptest.NewRecorder()
	C.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `miguitas_bonds_formed_total{type="TRIPLE"} 1`), body)
}
