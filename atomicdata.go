/*
 * atomicdata.go, part of miguitas.
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

//element is a row of the small periodic table below.
type element struct {
	Name string
	Z    int
}

//A map for naming elements and checking their atomic numbers.
//Note that just the first four periods, plus the usual heavy halogens, are present.
var symbolElement = map[string]element{
	"H":  {"Hydrogen", 1},
	"He": {"Helium", 2},
	"Li": {"Lithium", 3},
	"Be": {"Beryllium", 4},
	"B":  {"Boron", 5},
	"C":  {"Carbon", 6},
	"N":  {"Nitrogen", 7},
	"O":  {"Oxygen", 8},
	"F":  {"Fluorine", 9},
	"Ne": {"Neon", 10},
	"Na": {"Sodium", 11},
	"Mg": {"Magnesium", 12},
	"Al": {"Aluminium", 13},
	"Si": {"Silicon", 14},
	"P":  {"Phosphorus", 15},
	"S":  {"Sulfur", 16},
	"Cl": {"Chlorine", 17},
	"Ar": {"Argon", 18},
	"K":  {"Potassium", 19},
	"Ca": {"Calcium", 20},
	"Sc": {"Scandium", 21},
	"Ti": {"Titanium", 22},
	"V":  {"Vanadium", 23},
	"Cr": {"Chromium", 24},
	"Mn": {"Manganese", 25},
	"Fe": {"Iron", 26},
	"Co": {"Cobalt", 27},
	"Ni": {"Nickel", 28},
	"Cu": {"Copper", 29},
	"Zn": {"Zinc", 30},
	"Ga": {"Gallium", 31},
	"Ge": {"Germanium", 32},
	"As": {"Arsenic", 33},
	"Se": {"Selenium", 34},
	"Br": {"Bromine", 35},
	"Kr": {"Krypton", 36},
	"I":  {"Iodine", 53},
	"Xe": {"Xenon", 54},
}

//A map for assigning mass to elements.
//Note that just common "bio-elements" are present
var symbolMass = map[string]float64{
	"H":  1.0,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"Se": 78.96,
	"K":  39.1,
	"Ca": 40.08,
	"Mg": 24.30,
	"Cl": 35.45,
	"Na": 22.99,
	"Cu": 63.55,
	"Zn": 65.38,
	"Co": 58.93,
	"Fe": 55.84,
	"Mn": 54.94,
	"Cr": 51.996,
	"Si": 28.08,
	"Be": 9.012,
	"F":  18.998,
	"Br": 79.904,
	"I":  126.90,
}

//ElementName returns the name of the element with the given symbol,
//and false if the symbol is not in the table.
func ElementName(symbol string) (string, bool) {
	e, ok := symbolElement[symbol]
	return e.Name, ok
}

//ElementZ returns the atomic number of the element with the given symbol,
//and false if the symbol is not in the table.
func ElementZ(symbol string) (int, bool) {
	e, ok := symbolElement[symbol]
	return e.Z, ok
}

//Mass returns the atomic mass for symbol, and false if it is unknown.
func Mass(symbol string) (float64, bool) {
	m, ok := symbolMass[symbol]
	return m, ok
}
