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

package cartridge_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/hardware/cartridge"
	"github.com/jetsetilly/gophernes/test"
)

func ines(prg int, chr int, flags6 uint8, flags7 uint8) []byte {
	d := []byte{'N', 'E', 'S', 0x1a, uint8(prg), uint8(chr), flags6, flags7, 0, 0, 0, 0, 0, 0, 0, 0}
	if flags6&0x04 == 0x04 {
		d = append(d, make([]byte, cartridge.TrainerSize)...)
	}
	p := make([]byte, prg*cartridge.PRGUnit)
	if len(p) > 0 {
		p[0] = 0xaa
	}
	d = append(d, p...)
	c := make([]byte, chr*cartridge.CHRUnit)
	if len(c) > 0 {
		c[0] = 0x55
	}
	return append(d, c...)
}

func load(t *testing.T, filename string, data []byte) (*cartridge.Cartridge, error) {
	t.Helper()
	cl := cartridgeloader.NewLoader(filename)
	cl.Data = data
	return cartridge.NewCartridge(cl)
}

func TestHeader(t *testing.T) {
	cart, err := load(t, "test.nes", ines(2, 1, 0x13, 0x00))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(cart.PRG), 32768)
	test.ExpectEquality(t, len(cart.CHR), 8192)
	test.ExpectEquality(t, cart.Mapper, 1)
	test.ExpectEquality(t, cart.Mirroring, cartridge.Vertical)
	test.ExpectSuccess(t, cart.Battery)
	test.ExpectFailure(t, cart.CHRRAM)
	test.ExpectEquality(t, cart.PRG[0], 0xaa)
	test.ExpectEquality(t, cart.CHR[0], 0x55)
}

func TestMapperHighNibble(t *testing.T) {
	cart, err := load(t, "test.nes", ines(1, 1, 0x40, 0x10))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.Mapper, 0x14)
	test.ExpectEquality(t, cart.Mirroring, cartridge.Horizontal)
	test.ExpectFailure(t, cart.Battery)
}

func TestTrainer(t *testing.T) {
	cart, err := load(t, "test.nes", ines(1, 1, 0x04, 0x00))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.PRG[0], 0xaa)
	test.ExpectEquality(t, cart.CHR[0], 0x55)
}

func TestCHRRAM(t *testing.T) {
	cart, err := load(t, "test.nes", ines(1, 0, 0x08, 0x00))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, cart.CHRRAM)
	test.ExpectEquality(t, len(cart.CHR), 8192)
	test.ExpectEquality(t, cart.Mirroring, cartridge.FourScreen)
}

func TestInvalid(t *testing.T) {
	_, err := load(t, "test.nes", []byte("NES"))
	test.ExpectFailure(t, err)

	_, err = load(t, "test.nes", []byte("ABC\x1a\x01\x01\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00"))
	test.ExpectFailure(t, err)

	// no PRG
	_, err = load(t, "test.nes", ines(0, 1, 0x00, 0x00))
	test.ExpectFailure(t, err)

	// truncated
	d := ines(1, 1, 0x00, 0x00)
	_, err = load(t, "test.nes", d[:len(d)-1])
	test.ExpectFailure(t, err)
}

func TestBattery(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "game.nes")
	cart, err := load(t, fn, ines(1, 1, 0x02, 0x00))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.BatteryPath(), filepath.Join(filepath.Dir(fn), "game.sav"))

	// no battery file yet
	test.ExpectFailure(t, cart.LoadRAM())

	cart.SRAM[100] = 0xfe
	test.DemandSuccess(t, cart.SaveRAM())

	info, err := os.Stat(cart.BatteryPath())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, info.Size(), int64(cartridge.SRAMSize))

	cart.SRAM[100] = 0
	test.DemandSuccess(t, cart.LoadRAM())
	test.ExpectEquality(t, cart.SRAM[100], 0xfe)
}

func TestNoBattery(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "game.nes")
	cart, err := load(t, fn, ines(1, 1, 0x00, 0x00))
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, cart.SaveRAM())
	test.ExpectFailure(t, cart.LoadRAM())
}
