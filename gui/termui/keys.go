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

package termui

import (
	"strings"

	"github.com/jetsetilly/gophernes/userinput"
)

// control characters
const (
	ctrlC  = 0x03
	ctrlD  = 0x04
	escape = 0x1b
)

// the final byte of the cursor key sequences
var cursorKeys = map[byte]string{
	'A': "Up",
	'B': "Down",
	'C': "Right",
	'D': "Left",
}

// Parse a chunk of terminal input into key press events. Keys are named as
// they are by SDL so the same key bindings apply to both front-ends. Ctrl-C
// and Ctrl-D are quit events.
func Parse(b []byte) []userinput.Event {
	var evs []userinput.Event

	press := func(key string) {
		evs = append(evs, userinput.EventKeyboard{Key: key, Down: true})
	}

	for i := 0; i < len(b); i++ {
		switch c := b[i]; {
		case c == ctrlC || c == ctrlD:
			evs = append(evs, userinput.EventQuit{})

		case c == escape:
			// cursor keys are sent as ESC [ x or ESC O x
			if i+2 < len(b) && (b[i+1] == '[' || b[i+1] == 'O') {
				if key, ok := cursorKeys[b[i+2]]; ok {
					press(key)
				}
				i += 2
				continue
			}
			press("Escape")

		case c == '\r' || c == '\n':
			press("Return")

		case c == ' ':
			press("Space")

		case c > ' ' && c < 0x7f:
			press(strings.ToUpper(string(c)))
		}
	}

	return evs
}
