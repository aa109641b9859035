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

// Package cartridge reads cartridge files in the iNES format and manages the
// battery backed RAM of the cartridge.
//
// The iNES header is sixteen bytes long:
//
//	0-3   "NES" followed by 0x1a
//	4     size of PRG ROM in 16KB units
//	5     size of CHR ROM in 8KB units (0 means the board has CHR RAM)
//	6     mirroring, battery, trainer, four-screen and low nibble of mapper
//	7     high nibble of mapper and NES 2.0 identifier
//	8-15  unused by this package
//
// A 512 byte trainer, if present, sits between the header and the PRG ROM.
package cartridge

import (
	"bytes"
	"fmt"
	"os"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/paths"
)

// Sizes of the various parts of a cartridge file.
const (
	HeaderSize  = 16
	TrainerSize = 512
	PRGUnit     = 16384
	CHRUnit     = 8192
	SRAMSize    = 8192
)

var magic = []byte{'N', 'E', 'S', 0x1a}

// Mirroring of the nametables.
type Mirroring int

// List of valid Mirroring values.
const (
	Horizontal Mirroring = iota
	Vertical
	FourScreen
)

func (m Mirroring) String() string {
	switch m {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case FourScreen:
		return "four-screen"
	}
	return "unknown"
}

// Cartridge is a loaded iNES file.
type Cartridge struct {
	Filename string
	Hash     string

	Mapper    uint8
	Mirroring Mirroring
	Battery   bool
	NES2      bool

	PRG []byte
	CHR []byte

	// CHR is RAM rather than ROM
	CHRRAM bool

	// battery backed RAM. only saved if Battery is true
	SRAM [SRAMSize]byte
}

// NewCartridge loads and parses the data specified by the Loader.
func NewCartridge(cl cartridgeloader.Loader) (*Cartridge, error) {
	if err := cl.Load(); err != nil {
		return nil, curated.Errorf("cartridge: %v", err)
	}

	cart, err := parse(cl.Data)
	if err != nil {
		return nil, curated.Errorf("cartridge: %v", err)
	}

	cart.Filename = cl.Filename
	cart.Hash = cl.Hash

	logger.Logf(logger.Info, "cartridge", "%s: mapper %d, %dKB PRG, %dKB CHR, %s mirroring",
		cl.ShortName(), cart.Mapper, len(cart.PRG)/1024, len(cart.CHR)/1024, cart.Mirroring)
	if cart.Battery {
		logger.Log(logger.Info, "cartridge", "battery backed RAM present")
	}
	if cart.NES2 {
		logger.Log(logger.Debug, "cartridge", "NES 2.0 header treated as iNES")
	}

	return cart, nil
}

func parse(data []byte) (*Cartridge, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("file too short (%d bytes)", len(data))
	}

	if !bytes.Equal(data[:4], magic) {
		return nil, fmt.Errorf("not an iNES file")
	}

	prgSize := int(data[4]) * PRGUnit
	chrSize := int(data[5]) * CHRUnit
	flags6 := data[6]
	flags7 := data[7]

	if prgSize == 0 {
		return nil, fmt.Errorf("no PRG ROM")
	}

	cart := &Cartridge{
		Mapper:  (flags7 & 0xf0) | (flags6 >> 4),
		Battery: flags6&0x02 == 0x02,
		NES2:    flags7&0x0c == 0x08,
	}

	switch {
	case flags6&0x08 == 0x08:
		cart.Mirroring = FourScreen
	case flags6&0x01 == 0x01:
		cart.Mirroring = Vertical
	default:
		cart.Mirroring = Horizontal
	}

	offset := HeaderSize
	if flags6&0x04 == 0x04 {
		offset += TrainerSize
	}

	if len(data) < offset+prgSize+chrSize {
		return nil, fmt.Errorf("file too short for PRG (%d) and CHR (%d)", prgSize, chrSize)
	}

	cart.PRG = make([]byte, prgSize)
	copy(cart.PRG, data[offset:])
	offset += prgSize

	if chrSize == 0 {
		cart.CHRRAM = true
		cart.CHR = make([]byte, CHRUnit)
	} else {
		cart.CHR = make([]byte, chrSize)
		copy(cart.CHR, data[offset:])
	}

	return cart, nil
}

// BatteryPath returns the file used to store the battery backed RAM. It is
// the cartridge filename with the extension replaced by ".sav".
func (cart *Cartridge) BatteryPath() string {
	return paths.BatteryPath(cart.Filename)
}

// SaveRAM writes the battery backed RAM to the battery file.
func (cart *Cartridge) SaveRAM() error {
	if !cart.Battery {
		return curated.Errorf("cartridge: %v", "no battery")
	}
	if err := os.WriteFile(cart.BatteryPath(), cart.SRAM[:], 0o644); err != nil {
		return curated.Errorf("cartridge: %v", err)
	}
	return nil
}

// LoadRAM reads the battery backed RAM from the battery file.
func (cart *Cartridge) LoadRAM() error {
	if !cart.Battery {
		return curated.Errorf("cartridge: %v", "no battery")
	}
	data, err := os.ReadFile(cart.BatteryPath())
	if err != nil {
		return curated.Errorf("cartridge: %v", err)
	}
	if len(data) != SRAMSize {
		return curated.Errorf("cartridge: %v", fmt.Sprintf("battery file is wrong size (%d bytes)", len(data)))
	}
	copy(cart.SRAM[:], data)
	return nil
}
