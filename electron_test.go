/*
 * electron_test.go, part of miguitas.
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

func TestConfigureSlots(t *testing.T) {
	cases := []struct {
		z       int
		slots   int
		valence int
		conf    string
	}{
		{1, 1, 1, "1s^1"},
		{2, 0, 2, "1s^2"},
		{6, 4, 4, "1s^2 2s^2 2p^2"},
		{7, 3, 5, "1s^2 2s^2 2p^3"},
		{8, 2, 6, "1s^2 2s^2 2p^4"},
		{10, 0, 8, "1s^2 2s^2 2p^6"},
		{16, 2, 6, "1s^2 2s^2 2p^6 3s^2 3p^4"},
		{17, 1, 7, "1s^2 2s^2 2p^6 3s^2 3p^5"},
	}
	for _, c := range cases {
		conf, err := Configure(c.z)
		require.NoError(t, err, "Z=%d", c.z)
		assert.Equal(t, c.slots, conf.Slots, "slots for Z=%d", c.z)
		assert.Equal(t, c.valence, conf.Valence, "valence for Z=%d", c.z)
		assert.Equal(t, c.conf, conf.String(), "configuration for Z=%d", c.z)
	}
}

//Iron fills 4s before 3d, so its valence shell is the fourth one.
func TestConfigureMadelungOrder(t *testing.T) {
	conf, err := Configure(26)
	require.NoError(t, err)
	assert.Equal(t, "1s^2 2s^2 2p^6 3s^2 3p^6 4s^2 3d^6", conf.String())
	assert.Equal(t, 4, conf.Shell)
	assert.Equal(t, 2, conf.Valence)
	assert.Equal(t, 6, conf.Slots)
	assert.Equal(t, 8, conf.Target())
}

func TestConfigureDegenerate(t *testing.T) {
	for _, z := range []int{0, -3} {
		conf, err := Configure(z)
		require.NoError(t, err)
		assert.Empty(t, conf.Orbitals)
		assert.Equal(t, "", conf.String())
		assert.Zero(t, conf.Valence)
		assert.Zero(t, conf.Slots)
	}
}

func TestConfigureUpperLimit(t *testing.T) {
	conf, err := Configure(MaxAtomicNumber)
	require.NoError(t, err)
	total := 0
	for _, o := range conf.Orbitals {
		assert.LessOrEqual(t, o.Electrons, o.Capacity())
		total += o.Electrons
	}
	assert.Equal(t, MaxAtomicNumber, total)
	assert.Equal(t, 0, conf.Slots, "oganesson closes its shell")

	_, err = Configure(MaxAtomicNumber + 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidOperand))
}

func TestConfigureIsPure(t *testing.T) {
	for z := 1; z <= MaxAtomicNumber; z++ {
		a, err := Configure(z)
		require.NoError(t, err)
		b, err := Configure(z)
		require.NoError(t, err)
		assert.Equal(t, a, b, "Z=%d", z)
	}
}

func TestFillOrder(t *testing.T) {
	names := make([]string, 0, 8)
	for _, o := range fillOrder[:8] {
		names = append(names, o.Name())
	}
	assert.Equal(t, []string{"1s", "2s", "2p", "3s", "3p", "4s", "3d", "4p"}, names)
	for _, o := range fillOrder {
		assert.Less(t, o.L, o.N)
	}
}
