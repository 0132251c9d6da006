/*
 * doc.go, part of miguitas.
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

/*Package chem is the valence engine of miguitas. It provides atoms whose bonding
capacity comes from their electron configuration, molecules built by joining
those atoms with single, double and triple bonds, and a registry that owns every
atom of a session and makes sure no atom is in two molecules at once.


	**Capabilities**


    Electron configurations by the Madelung (n+l) rule, with the valence shell
	and the number of bonding slots left to complete the duet (first shell)
	or the octet (every other shell).

    Molecules as graphs of MoleculeNodes. Every bond is checked against both
	of its atoms before either is charged, so a rejected bond leaves nothing
	behind.

    Empirical formulas in Hill order, validity (every atom satisfied) and the
	list of atoms that still have slots.

    A Registry that issues ids like "C_1", binds atoms to molecules, releases
	them, keeps counts, and can be exported to and loaded from a Session.


Errors returned by the package are *CError values. They carry a Kind, which can
be checked with errors.Is against ErrNotFound, ErrDuplicateName, ErrAlreadyBound,
ErrCapacityExceeded and ErrInvalidOperand, and a trail of the functions they went
through (see Decorate).

The companion packages chemgraph (connectivity, through Gonum graphs), chemplot
(periodic trends of the bonding slots) and snapshot (compressed session files)
build on this one.*/
package chem
