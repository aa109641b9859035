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

// Package wavwriter records the audio stream of the emulator to a WAV file.
// Samples are written to disk as they are recorded and the WAV header is
// completed when the writer is closed.
//
// The WavWriter type implements the backpressure.Recorder interface so that
// it receives every batch of samples sent to the audio device.
package wavwriter
