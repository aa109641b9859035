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

package wavwriter

import (
	"os"
	"sync"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/logger"
)

// the bit depth of the WAV file
const bitDepth = 16

// WavWriter implements the backpressure.Recorder interface.
type WavWriter struct {
	crit     sync.Mutex
	filename string
	f        *os.File
	enc      *wav.Encoder
	buf      *audio.IntBuffer
	count    int
}

// New is the preferred method of initialisation for the WavWriter type. The
// file is created immediately.
func New(filename string, sampleRate int) (*WavWriter, error) {
	if sampleRate <= 0 {
		return nil, curated.Errorf("wavwriter: %v", "sample rate must be positive")
	}

	f, err := os.Create(filename)
	if err != nil {
		return nil, curated.Errorf("wavwriter: %v", err)
	}

	aw := &WavWriter{
		filename: filename,
		f:        f,
		enc:      wav.NewEncoder(f, sampleRate, bitDepth, 1, 1),
		buf: &audio.IntBuffer{
			Format: &audio.Format{
				NumChannels: 1,
				SampleRate:  sampleRate,
			},
			SourceBitDepth: bitDepth,
		},
	}

	logger.Logf(logger.Info, "wavwriter", "writing audio to %s", filename)

	return aw, nil
}

// Record implements the backpressure.Recorder interface.
func (aw *WavWriter) Record(samples []float32) error {
	aw.crit.Lock()
	defer aw.crit.Unlock()

	if aw.enc == nil {
		return curated.Errorf("wavwriter: %v", "writer is closed")
	}

	aw.buf.Data = aw.buf.Data[:0]
	for _, s := range samples {
		aw.buf.Data = append(aw.buf.Data, toPCM(s))
	}

	if err := aw.enc.Write(aw.buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	aw.count += len(samples)

	return nil
}

// Count returns the number of samples recorded.
func (aw *WavWriter) Count() int {
	aw.crit.Lock()
	defer aw.crit.Unlock()
	return aw.count
}

// Close completes the WAV file. Calling Close more than once has no effect.
func (aw *WavWriter) Close() (rerr error) {
	aw.crit.Lock()
	defer aw.crit.Unlock()

	if aw.enc == nil {
		return nil
	}

	defer func() {
		err := aw.f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	err := aw.enc.Close()
	aw.enc = nil
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	logger.Logf(logger.Info, "wavwriter", "%d samples written to %s", aw.count, aw.filename)

	return nil
}

// convert float sample in the range -1.0 to 1.0 to a 16 bit value. values
// outside the range are clipped
func toPCM(s float32) int {
	if s > 1.0 {
		s = 1.0
	} else if s < -1.0 {
		s = -1.0
	}
	return int(s * 32767)
}
