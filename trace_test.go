package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceLine(t *testing.T) {
	rig := newCPUTestRig()
	rig.load(0xC000, 0x4C, 0xF5, 0xC5) // JMP $C5F5
	rig.cpu.SetStatus(0x24)

	assert.Equal(t,
		"C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD CYC:7",
		TraceLine(rig.cpu, rig.mem))
}

func TestFirstTraceMismatch(t *testing.T) {
	want := []string{
		"C000  4C F5 C5  JMP $C5F5  A:00 X:00 Y:00 P:24 SP:FD CYC:7",
		"C5F5  A2 00     LDX #$00   A:00 X:00 Y:00 P:24 SP:FD CYC:10",
		"C5F7  86 00     STX $00    A:00 X:00 Y:00 P:26 SP:FD CYC:12",
	}

	assert.Nil(t, FirstTraceMismatch(want, want))

	got := append([]string(nil), want...)
	got[1] = "C5F5  A2 00     LDX #$00   A:00 X:00 Y:00 P:26 SP:FD CYC:10"
	mismatch := FirstTraceMismatch(got, want)
	require.NotNil(t, mismatch)
	assert.Equal(t, 2, mismatch.Line)
	assert.Equal(t, got[1], mismatch.Got)
	assert.Equal(t, want[1], mismatch.Want)
	assert.Contains(t, mismatch.Diff, "SP:FD CYC:10")
	assert.NotEqual(t, mismatch.Got, mismatch.Diff)
	assert.Contains(t, mismatch.String(), "line 2 differs")

	mismatch = FirstTraceMismatch(want[:2], want)
	require.NotNil(t, mismatch)
	assert.Equal(t, 3, mismatch.Line)
	assert.Empty(t, mismatch.Got)

	mismatch = FirstTraceMismatch(want, want[:1])
	require.NotNil(t, mismatch)
	assert.Equal(t, 2, mismatch.Line)
	assert.Empty(t, mismatch.Want)
}
