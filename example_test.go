/*
 * example_test.go, part of miguitas.
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

package chem_test

import (
	"fmt"

	chem "github.com/AmaiDonatsu/miguitas"
)

func ExampleConfigure() {
	for _, z := range []int{1, 6, 8, 17} {
		conf, _ := chem.Configure(z)
		fmt.Printf("%-2d %-26s valence=%d slots=%d\n", z, conf, conf.Valence, conf.Slots)
	}
	// Output:
	// 1  1s^1                       valence=1 slots=1
	// 6  1s^2 2s^2 2p^2             valence=4 slots=4
	// 8  1s^2 2s^2 2p^4             valence=6 slots=2
	// 17 1s^2 2s^2 2p^6 3s^2 3p^5   valence=7 slots=1
}

func ExampleRegistry() {
	reg := chem.NewRegistry()
	c, _ := reg.CreateAtom("C", 6)
	mol, _ := reg.CreateMolecule("methane")
	_ = reg.AddAtomToMolecule("methane", c)
	for i := 0; i < 4; i++ {
		h, _ := reg.CreateAtom("H", 1)
		_ = reg.AddAtomToMolecule("methane", h)
		_, _ = reg.Connect("methane", c, h, chem.Single)
	}
	fmt.Println(mol)
	_, err := reg.Connect("methane", "C_1", "H_1", chem.Single)
	fmt.Println(err)
	// Output:
	// Molecule(methane, CH4, valid)
	// C_1 (C) has 0 slot(s) left, a SINGLE bond needs 1
}
