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

// Package paths contains functions to prepare paths for gophernes resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory.
//
// The default config directory is the .gophernes directory in the current
// working directory. Release builds, built with the "release" tag, use the
// gophernes directory in the user's config directory instead.
//
// The StatePath() and BatteryPath() functions derive file names from the
// cartridge file name.
package paths
