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

package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with OS/build specific paths.
//
// The subPth argument should not include the leading config directory. The
// file argument can be the empty string. Any directories in the path that do
// not exist are created.
func ResourcePath(subPth string, file string) (string, error) {
	basePath, err := getBasePath(subPth)
	if err != nil {
		return "", err
	}
	return filepath.Join(basePath, file), nil
}

func makeDir(pth string) (string, error) {
	if _, err := os.Stat(pth); err == nil {
		return pth, nil
	}
	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", err
	}
	return pth, nil
}

// replace the extension of a filename
func replaceExt(filename string, ext string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + ext
}

// StatePath returns the default save state file for a cartridge file. The
// extension of the cartridge file is replaced by ".data".
func StatePath(cartFilename string) string {
	return replaceExt(cartFilename, ".data")
}

// BatteryPath returns the battery file for a cartridge file. The extension
// of the cartridge file is replaced by ".sav".
func BatteryPath(cartFilename string) string {
	return replaceExt(cartFilename, ".sav")
}

// UniqueFilename creates a filename that (assuming a functioning clock) should
// not collide with any existing file. Note that the function does not test for
// this.
//
// Format of returned string is:
//
//	prepend_cartname_YYYYMMDD_HHMMSS
//
// If there is no cartridge name the returned string will be of the format:
//
//	prepend_YYYYMMDD_HHMMSS
func UniqueFilename(prepend string, shortCartName string) string {
	n := time.Now()
	timestamp := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d", n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())

	c := strings.TrimSpace(shortCartName)
	if len(c) > 0 {
		return fmt.Sprintf("%s_%s_%s", prepend, c, timestamp)
	}
	return fmt.Sprintf("%s_%s", prepend, timestamp)
}
