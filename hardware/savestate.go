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

package hardware

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/cartridge"
	"github.com/jetsetilly/gophernes/video"
)

// state is the part of the machine that is saved in a save state.
type state struct {
	Dot         int
	Frame       int
	CursorX     int
	CursorY     int
	Phase       float64
	Controllers [NumControllers]uint8
	PaletteRAM  [video.PaletteSize]uint8
}

func (s *state) reset() {
	s.Dot = 0
	s.Frame = 0
	s.CursorX = (video.Width - cursorSize) / 2
	s.CursorY = (video.Height - cursorSize) / 2
	s.Phase = 0
	s.Controllers = [NumControllers]uint8{}
}

// snapshotVersion is incremented whenever the snapshot type changes.
const snapshotVersion = 1

// snapshot is the content of a save state file.
type snapshot struct {
	Version int
	Hash    string
	State   state
	SRAM    [cartridge.SRAMSize]byte

	// only included if the cartridge has CHR RAM
	CHR []byte
}

// Save implements the driver.Machine interface. The battery backed RAM of
// the cartridge is written to the battery file.
func (nes *NES) Save() error {
	if err := nes.cart.SaveRAM(); err != nil {
		return curated.Errorf("nes: %v", err)
	}
	return nil
}

// LoadSave implements the driver.Machine interface. The cursor position is
// restored from the battery backed RAM.
func (nes *NES) LoadSave() error {
	if err := nes.cart.LoadRAM(); err != nil {
		return curated.Errorf("nes: %v", err)
	}
	nes.state.CursorX = int(nes.cart.SRAM[0]) % video.Width
	nes.state.CursorY = int(nes.cart.SRAM[1]) % video.Height
	return nil
}

// SaveState implements the driver.Machine interface.
func (nes *NES) SaveState(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf("nes: save state: %v", err)
	}

	s := snapshot{
		Version: snapshotVersion,
		Hash:    nes.cart.Hash,
		State:   nes.state,
		SRAM:    nes.cart.SRAM,
	}
	if nes.cart.CHRRAM {
		s.CHR = nes.cart.CHR
	}

	if err := gob.NewEncoder(f).Encode(&s); err != nil {
		f.Close()
		return curated.Errorf("nes: save state: %v", err)
	}

	if err := f.Close(); err != nil {
		return curated.Errorf("nes: save state: %v", err)
	}

	return nil
}

// LoadState implements the driver.Machine interface. The save state must
// have been made with the same cartridge.
func (nes *NES) LoadState(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return curated.Errorf("nes: load state: %v", err)
	}
	defer f.Close()

	var s snapshot
	if err := gob.NewDecoder(f).Decode(&s); err != nil {
		return curated.Errorf("nes: load state: %v", err)
	}

	if s.Version != snapshotVersion {
		return curated.Errorf("nes: load state: %v", fmt.Sprintf("unsupported version (%d)", s.Version))
	}

	if s.Hash != nes.cart.Hash {
		return curated.Errorf("nes: load state: %v", "state is for a different cartridge")
	}

	nes.state = s.State
	nes.cart.SRAM = s.SRAM
	if nes.cart.CHRRAM && len(s.CHR) == len(nes.cart.CHR) {
		copy(nes.cart.CHR, s.CHR)
	}

	nes.frameReady = false
	nes.samples = nil
	nes.patternsDirty = true

	return nil
}
