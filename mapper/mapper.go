package mapper

import "github.com/pkg/errors"

// ErrUnsupportedMapper is returned by New for mapper numbers without an
// implementation.
var ErrUnsupportedMapper = errors.New("unsupported mapper")

// Mirror is the nametable arrangement wired on the cartridge board.
type Mirror uint8

const (
	Horizontal = Mirror(0)
	Vertical   = Mirror(1)
	// SingleLower and SingleUpper map every nametable onto one 1 KB page.
	SingleLower = Mirror(2)
	SingleUpper = Mirror(3)
)

func (m Mirror) String() string {
	switch m {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case SingleLower:
		return "single-lower"
	case SingleUpper:
		return "single-upper"
	}
	return "unknown"
}

// NametableIndex folds a PPU address in 0x2000-0x3EFF into an offset of the
// 2 KB nametable RAM according to the mirroring mode.
func (m Mirror) NametableIndex(addr uint16) uint16 {
	index := (addr - 0x2000) % 0x1000
	switch m {
	case Vertical:
		index %= 0x0800
	case Horizontal:
		if index >= 0x0800 {
			index = (index-0x0800)%0x0400 + 0x0400
		} else {
			index %= 0x0400
		}
	case SingleLower:
		index %= 0x0400
	case SingleUpper:
		index = index%0x0400 + 0x0400
	}
	return index
}

// Mapper translates addresses into cartridge memory. Addresses below 0x2000
// are pattern (CHR) space, everything from 0x4020 up is CPU cartridge space.
type Mapper interface {
	ReadByte(addr uint16) uint8
	WriteByte(addr uint16, data uint8)
	Mirror() Mirror
	Reset()
}

// Image is the parsed cartridge content a mapper is built from. The slices
// are owned by the mapper once handed over.
type Image struct {
	PRG    []uint8
	CHR    []uint8
	ChrRAM bool
	Mirror Mirror
}

// New builds the mapper identified by id.
func New(id uint8, img Image) (Mapper, error) {
	switch id {
	case 0:
		m, err := NewMapper0000(img)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
	return nil, errors.Wrapf(ErrUnsupportedMapper, "mapper %d", id)
}
