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

package main

import (
	"strings"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/driver"
	"github.com/jetsetilly/gophernes/gui/otoaudio"
	"github.com/jetsetilly/gophernes/gui/sdlaudio"
	"github.com/jetsetilly/gophernes/logger"
)

// openAudio opens the named audio output. The returned function closes the
// output and is never nil. A nil AudioQueue means that audio is discarded.
func openAudio(name string, sampleRate int) (driver.AudioQueue, func(), error) {
	switch strings.ToUpper(name) {
	case "SDL":
		aud, err := sdlaudio.NewAudio(sampleRate)
		if err != nil {
			return nil, func() {}, err
		}
		return aud, aud.Close, nil

	case "OTO":
		aud, err := otoaudio.NewAudio(sampleRate)
		if err != nil {
			return nil, func() {}, err
		}
		return aud, aud.Close, nil

	case "NONE":
		logger.Log(logger.Info, "gophernes", "audio disabled")
		return nil, func() {}, nil
	}

	return nil, func() {}, curated.Errorf("unknown audio output (%s)", name)
}
