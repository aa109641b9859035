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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/gophernes/test"
	"github.com/jetsetilly/gophernes/wavwriter"
	yw "github.com/youpy/go-wav"
)

func TestRecord(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.wav")

	aw, err := wavwriter.New(fn, 44100)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, aw.Record([]float32{0.0, 0.5, -0.5}))
	test.ExpectSuccess(t, aw.Record([]float32{1.0, -1.0, 2.0, -2.0}))
	test.ExpectEquality(t, aw.Count(), 7)

	test.DemandSuccess(t, aw.Close())

	// closing twice is allowed but recording after closing is not
	test.ExpectSuccess(t, aw.Close())
	test.ExpectFailure(t, aw.Record([]float32{0.0}))

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, int(dec.SampleRate), 44100)
	test.ExpectEquality(t, int(dec.BitDepth), 16)
	test.ExpectEquality(t, int(dec.NumChans), 1)

	test.DemandEquality(t, len(buf.Data), 7)
	expected := []int{0, 16383, -16383, 32767, -32767, 32767, -32767}
	for i, v := range expected {
		test.ExpectEquality(t, buf.Data[i], v, i)
	}
}

func TestFormat(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.wav")

	aw, err := wavwriter.New(fn, 22050)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, aw.Record(make([]float32, 100)))
	test.DemandSuccess(t, aw.Close())

	// the file can be read by other WAV readers
	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	format, err := yw.NewReader(f).Format()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, int(format.SampleRate), 22050)
	test.ExpectEquality(t, int(format.NumChannels), 1)
	test.ExpectEquality(t, int(format.BitsPerSample), 16)
}

func TestBadParameters(t *testing.T) {
	_, err := wavwriter.New(filepath.Join(t.TempDir(), "test.wav"), 0)
	test.ExpectFailure(t, err)

	_, err = wavwriter.New(filepath.Join(t.TempDir(), "missing", "test.wav"), 44100)
	test.ExpectFailure(t, err)
}
