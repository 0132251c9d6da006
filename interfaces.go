/*
 * interfaces.go, part of miguitas.
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

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Adds the caller to the trail and returns it. Passing an empty string just returns the trail.
}

// Observer is notified by a Registry of what happens in it. Calls are made
// while the registry is locked, so implementations must be fast and must
// not call back into the registry.
type Observer interface {
	AtomCreated(symbol string)
	BondFormed(t BondType)
	Rejected(op string, kind Kind)
	//StateChanged receives the counts after every successful mutation.
	StateChanged(s Stats)
}

type nopObserver struct{}

func (nopObserver) AtomCreated(string) {}
func (nopObserver) BondFormed(BondType) {}
func (nopObserver) Rejected(string, Kind) {}
func (nopObserver) StateChanged(Stats) {}
