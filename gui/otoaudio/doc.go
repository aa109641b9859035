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

// Package otoaudio plays the audio stream of the emulator with the oto
// library. It is an alternative to the sdlaudio package for systems where the
// SDL audio device is not wanted.
//
// Samples are queued in a ring buffer that is read by the oto player. When
// the ring is empty the player is given silence.
package otoaudio
