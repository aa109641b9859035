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

package gui

import (
	"fmt"
	"math"
	"sync/atomic"
)

// TitleFPS implements the driver.FPSDisplay interface. It stores the
// measured frame rate so that the UI thread can show it in a window title.
type TitleFPS struct {
	fps atomic.Uint32
}

// SetFPS implements the driver.FPSDisplay interface.
func (f *TitleFPS) SetFPS(fps float32) {
	f.fps.Store(math.Float32bits(fps))
}

// FPS returns the most recent measured frame rate.
func (f *TitleFPS) FPS() float32 {
	return math.Float32frombits(f.fps.Load())
}

// Title decorates the base title with the measured frame rate. The base title
// is returned unchanged if no frame rate has been measured.
func (f *TitleFPS) Title(base string) string {
	fps := f.FPS()
	if fps <= 0 {
		return base
	}
	return fmt.Sprintf("%s (%.1f fps)", base, fps)
}
