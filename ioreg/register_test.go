package ioreg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPUStatusRegister(t *testing.T) {
	r := Register{
		fields: map[string]Field{
			"pulse1":   {0, 1},
			"pulse2":   {1, 1},
			"triangle": {2, 1},
			"noise":    {3, 1},
			"dmc":      {4, 1},
		},
	}

	assert.Equal(t, uint8(0), r.Reg)
	r.SetField("dmc", 1)
	assert.Equal(t, map[string]uint8{
		"pulse1":   0,
		"pulse2":   0,
		"triangle": 0,
		"noise":    0,
		"dmc":      1,
	}, r.Fields())
	assert.Equal(t, uint8(0b00010000), r.Reg)

	r.SetField("pulse2", 1)
	r.SetField("noise", 1)
	assert.Equal(t, map[string]uint8{
		"pulse1":   0,
		"pulse2":   1,
		"triangle": 0,
		"noise":    1,
		"dmc":      1,
	}, r.Fields())
	assert.Equal(t, uint8(0b00011010), r.Reg)

	r.SetField("dmc", 0)
	assert.Equal(t, uint8(0b00001010), r.Reg)
}

func TestMultiBitFields(t *testing.T) {
	r := CreateRegister(map[string]Field{
		"low":    {0, 3},
		"middle": {3, 4},
		"top":    {7, 1},
	})

	r.SetField("middle", 15)
	assert.Equal(t, uint8(0b01111000), r.Reg)
	assert.Equal(t, uint8(15), r.GetField("middle"))

	r.SetField("low", 5)
	assert.Equal(t, uint8(0b01111101), r.Reg)

	// values wider than the field are truncated
	r.SetField("middle", 0x12)
	assert.Equal(t, uint8(2), r.GetField("middle"))
	assert.Equal(t, uint8(0b00010101), r.Reg)

	r.SetField("unknown", 1)
	assert.Equal(t, uint8(0b00010101), r.Reg)

	r.SetReg(0xFF)
	assert.Equal(t, map[string]uint8{
		"low":    7,
		"middle": 15,
		"top":    1,
	}, r.Fields())
	assert.Equal(t, []string{"low", "middle", "top"}, r.Names())
}

func TestGetFieldPanicsOnUnknownName(t *testing.T) {
	r := CreateRegister(map[string]Field{"mode": {7, 1}})
	assert.Panics(t, func() { r.GetField("irq") })
}
