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

//go:build !release

package paths

import (
	"path/filepath"
)

// the base path for all resources in development builds.
const gophernesConfigDir = ".gophernes"

// the non-release version of getBasePath looks for and if necessary creates
// the gophernesConfigDir (and child directories) in the current working
// directory.
func getBasePath(subPth string) (string, error) {
	return makeDir(filepath.Join(gophernesConfigDir, subPth))
}
