package nes

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"

	"nes-core/mapper"
)

// ErrMalformedCartridge is returned for images that are not iNES files or
// end before the sizes announced in their header.
var ErrMalformedCartridge = errors.New("malformed cartridge")

const (
	headerMagic  = "NES\x1A"
	trainerSize  = 512
	prgChunkSize = 16384
	chrChunkSize = 8192
)

type Header struct {
	Name         [4]byte
	PrgRomChunks uint8
	ChrRomChunks uint8
	Mapper1      uint8
	Mapper2      uint8
	PrgRamSize   uint8
	TvSystem1    uint8
	TvSystem2    uint8
	Unused       [5]byte
}

// MapperID combines the low nibble from flags 6 and the high nibble from
// flags 7.
func (h Header) MapperID() uint8 {
	return (h.Mapper2 & 0xF0) | (h.Mapper1 >> 4)
}

func (h Header) Mirror() mapper.Mirror {
	// four-screen boards (bit 3) carry their own VRAM; treat them as vertical
	if h.Mapper1&0x01 != 0 || h.Mapper1&0x08 != 0 {
		return mapper.Vertical
	}
	return mapper.Horizontal
}

func (h Header) HasTrainer() bool {
	return h.Mapper1&0x04 != 0
}

func (h Header) HasBattery() bool {
	return h.Mapper1&0x02 != 0
}

// Cartridge is a parsed iNES image. Its memory is handed to the mapper once
// loaded and never reallocated.
type Cartridge struct {
	Header    Header
	MapperID  uint8
	PrgMemory []uint8
	ChrMemory []uint8
	ChrRAM    bool
	Mirror    mapper.Mirror
	Battery   bool
}

func LoadCartridgeFile(filename string) (*Cartridge, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "open cartridge")
	}
	defer file.Close()

	cart, err := LoadCartridge(file)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", filename)
	}
	return cart, nil
}

func LoadCartridge(r io.Reader) (*Cartridge, error) {
	header := Header{}
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, errors.Wrap(ErrMalformedCartridge, "short header")
	}
	if !bytes.Equal(header.Name[:], []byte(headerMagic)) {
		return nil, errors.Wrapf(ErrMalformedCartridge, "bad magic % X", header.Name[:])
	}
	if header.PrgRomChunks == 0 {
		return nil, errors.Wrap(ErrMalformedCartridge, "no PRG-ROM")
	}

	if header.HasTrainer() {
		if _, err := io.CopyN(io.Discard, r, trainerSize); err != nil {
			return nil, errors.Wrap(ErrMalformedCartridge, "truncated trainer")
		}
	}

	cart := &Cartridge{
		Header:   header,
		MapperID: header.MapperID(),
		Mirror:   header.Mirror(),
		Battery:  header.HasBattery(),
	}

	cart.PrgMemory = make([]uint8, int(header.PrgRomChunks)*prgChunkSize)
	if _, err := io.ReadFull(r, cart.PrgMemory); err != nil {
		return nil, errors.Wrap(ErrMalformedCartridge, "truncated PRG-ROM")
	}

	if header.ChrRomChunks == 0 {
		cart.ChrMemory = make([]uint8, chrChunkSize)
		cart.ChrRAM = true
	} else {
		cart.ChrMemory = make([]uint8, int(header.ChrRomChunks)*chrChunkSize)
		if _, err := io.ReadFull(r, cart.ChrMemory); err != nil {
			return nil, errors.Wrap(ErrMalformedCartridge, "truncated CHR-ROM")
		}
	}
	return cart, nil
}

// NewMapper builds the mapper the header asks for.
func (c *Cartridge) NewMapper() (mapper.Mapper, error) {
	return mapper.New(c.MapperID, mapper.Image{
		PRG:    c.PrgMemory,
		CHR:    c.ChrMemory,
		ChrRAM: c.ChrRAM,
		Mirror: c.Mirror,
	})
}
