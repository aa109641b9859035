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

package driver

import (
	"github.com/jetsetilly/gophernes/curated"
)

// Error patterns for fatal errors returned by Run().
const (
	Disconnected = "driver: %v"
	FatalInput   = "driver: input: %v"
	Cancelled    = "driver: cancelled: %v"
	FatalAudio   = "driver: audio device: %v"
)

// IsFatal returns true if the error is one of the fatal driver errors.
func IsFatal(err error) bool {
	return curated.Has(err, Disconnected) ||
		curated.Has(err, FatalInput) ||
		curated.Has(err, Cancelled) ||
		curated.Has(err, FatalAudio)
}
