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

package sdlaudio

import (
	"encoding/binary"
	"math"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// the number of bytes in a single sample frame. samples are 32 bit floats and
// there is one channel
const frameSize = 4

// the size of the device buffer in sample frames. the queue sits on top of
// this buffer so the value is not critical
const bufferLength = 1024

// Audio outputs sound using an SDL queued audio device. It implements the
// driver.AudioQueue interface.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// conversion buffer. reused on every call to Queue()
	data []byte
}

// NewAudio is the preferred method of initialisation for the Audio Type. The
// SDL audio subsystem is initialised if it has not been already.
func NewAudio(sampleRate int) (*Audio, error) {
	aud := &Audio{}

	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	spec := &sdl.AudioSpec{
		Freq:     int32(sampleRate),
		Format:   sdl.AUDIO_F32SYS,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	var err error

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &aud.spec, 0)
	if err != nil {
		sdl.QuitSubSystem(sdl.INIT_AUDIO)
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	if aud.spec.Format != sdl.AUDIO_F32SYS || aud.spec.Channels != 1 {
		sdl.CloseAudioDevice(aud.id)
		sdl.QuitSubSystem(sdl.INIT_AUDIO)
		return nil, curated.Errorf("sdlaudio: %v", "audio device does not support mono float samples")
	}

	logger.Logf(logger.Info, "sdlaudio", "frequency: %d samples/sec", aud.spec.Freq)
	logger.Logf(logger.Info, "sdlaudio", "buffer size: %d samples", aud.spec.Samples)

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// Size implements the driver.AudioQueue interface. The number of sample frames
// waiting to be played.
func (aud *Audio) Size() int {
	return int(sdl.GetQueuedAudioSize(aud.id)) / frameSize
}

// Queue implements the driver.AudioQueue interface.
func (aud *Audio) Queue(samples []float32) error {
	if len(samples) == 0 {
		return nil
	}

	n := len(samples) * frameSize
	if cap(aud.data) < n {
		aud.data = make([]byte, n)
	}
	aud.data = aud.data[:n]

	for i, s := range samples {
		binary.NativeEndian.PutUint32(aud.data[i*frameSize:], math.Float32bits(s))
	}

	if err := sdl.QueueAudio(aud.id, aud.data); err != nil {
		return curated.Errorf("sdlaudio: %v", err)
	}

	return nil
}

// Close the audio device. Any queued audio is discarded.
func (aud *Audio) Close() {
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)
	sdl.QuitSubSystem(sdl.INIT_AUDIO)
}
