/*
 * electron.go, part of miguitas.
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
	"sort"
	"strings"
)

//MaxAtomicNumber is the largest atomic number Configure accepts.
//The shells enumerated below could hold 156 electrons, but nothing past
//oganesson exists, so larger inputs are rejected instead of being filled
//into orbitals that no known element uses.
const MaxAtomicNumber = 118

const maxShell = 7

var sublevels = [...]string{"s", "p", "d", "f"}

//Orbital is one sublevel of a shell, with the electrons placed on it.
type Orbital struct {
	N         int `json:"n"`
	L         int `json:"l"`
	Electrons int `json:"electrons"`
}

//Name returns the usual name of the orbital, like "2p".
func (O Orbital) Name() string {
	return fmt.Sprintf("%d%s", O.N, sublevels[O.L])
}

//Capacity is the maximum number of electrons the orbital holds, 2(2l+1).
func (O Orbital) Capacity() int {
	return 2 * (2*O.L + 1)
}

//Energy is the Madelung key n+l.
func (O Orbital) Energy() int {
	return O.N + O.L
}

//Configuration is the ground-state filling of a neutral atom.
type Configuration struct {
	Z        int       `json:"z"`
	Orbitals []Orbital `json:"orbitals"`
	Shell    int       `json:"shell"`   //highest principal shell reached
	Valence  int       `json:"valence"` //electrons in Shell
	Slots    int       `json:"slots"`   //bonding slots left to complete the duet/octet
}

//String renders the configuration as "1s^2 2s^2 2p^2".
func (C Configuration) String() string {
	parts := make([]string, 0, len(C.Orbitals))
	for _, o := range C.Orbitals {
		parts = append(parts, fmt.Sprintf("%s^%d", o.Name(), o.Electrons))
	}
	return strings.Join(parts, " ")
}

//Target returns the number of electrons the valence shell needs to
//be complete: 2 for the first shell, 8 for every other one.
func (C Configuration) Target() int {
	if C.Shell == 1 {
		return 2
	}
	return 8
}

//fillOrder holds every orbital with l < n, for n=1..7, sorted by n+l and then by n.
var fillOrder = aufbau()

func aufbau() []Orbital {
	orbs := make([]Orbital, 0, 22)
	for n := 1; n <= maxShell; n++ {
		for l := 0; l < len(sublevels) && l < n; l++ {
			orbs = append(orbs, Orbital{N: n, L: l})
		}
	}
	sort.SliceStable(orbs, func(i, j int) bool {
		ei, ej := orbs[i].Energy(), orbs[j].Energy()
		if ei != ej {
			return ei < ej
		}
		return orbs[i].N < orbs[j].N
	})
	return orbs
}

//Configure fills the orbitals of a neutral atom with atomic number z following
//the Madelung rule, and derives the valence electrons and the available bonding
//slots (duet rule if only the first shell is used, octet rule otherwise).
//A z of 0 or less gives an empty configuration with no slots, and no error.
//A z above MaxAtomicNumber gives an InvalidOperand error.
func Configure(z int) (Configuration, error) {
	conf := Configuration{Z: z}
	if z <= 0 {
		return conf, nil
	}
	if z > MaxAtomicNumber {
		return conf, newError(KindInvalidOperand, "Configure", "atomic number %d is outside the supported range 1-%d", z, MaxAtomicNumber)
	}
	shells := make(map[int]int, maxShell)
	remaining := z
	for _, o := range fillOrder {
		if remaining <= 0 {
			break
		}
		take := min(remaining, o.Capacity())
		o.Electrons = take
		conf.Orbitals = append(conf.Orbitals, o)
		shells[o.N] += take
		if o.N > conf.Shell {
			conf.Shell = o.N
		}
		remaining -= take
	}
	conf.Valence = shells[conf.Shell]
	conf.Slots = max(0, conf.Target()-conf.Valence)
	return conf, nil
}
