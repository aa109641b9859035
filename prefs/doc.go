// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

// Package prefs facilitates the storage of preferential values in the
// gophernes system. It is intended to be used by other packages to store
// and retrieve their preferences.
//
// Preference values are stored in a Disk instance. The Add() function
// associates a key with a preference value, which must be one of the types in
// this package:
//
//	var speed prefs.Float
//	dsk, err := prefs.NewDisk(pth)
//	err = dsk.Add("play.speed", &speed)
//
// The values on disk have the form "key :: value", one per line. The first
// line of the file is a warning that the file should not be edited by hand.
// Saving a Disk does not remove values for keys that the Disk does not know
// about, so more than one Disk can share a file.
//
// Values can also be set from the command line with a string of the form
// "key::value; key::value". See PushCommandLineStack(). Command line values
// take precedence over values on disk.
package prefs
