package nes

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// TraceLine renders the CPU state before it executes the instruction at PC:
//
//	C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD CYC:7
func TraceLine(cpu *CPU, mem Memory) string {
	pc := cpu.PC()
	text, length := DisassembleAt(mem, pc)

	raw := make([]string, length)
	for i := range raw {
		raw[i] = fmt.Sprintf("%02X", mem.ReadByte(pc+uint16(i)))
	}

	return fmt.Sprintf("%04X  %-8s  %-32sA:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d",
		pc, strings.Join(raw, " "), text,
		cpu.A(), cpu.X(), cpu.Y(), cpu.Status(), cpu.SP(), cpu.Cycles())
}

// TraceMismatch describes the first line where a trace departs from its
// reference.
type TraceMismatch struct {
	Line int // 1-based
	Got  string
	Want string
	Diff string // ANSI coloured
}

func (m *TraceMismatch) String() string {
	s := fmt.Sprintf("line %d differs\n got: %s\nwant: %s", m.Line, m.Got, m.Want)
	if m.Diff != "" {
		s += "\ndiff: " + m.Diff
	}
	return s
}

// FirstTraceMismatch compares two traces line by line and returns nil when
// got matches want for every line both have and neither runs longer.
func FirstTraceMismatch(got, want []string) *TraceMismatch {
	n := len(got)
	if len(want) > n {
		n = len(want)
	}
	dmp := diffmatchpatch.New()
	for i := 0; i < n; i++ {
		var g, w string
		if i < len(got) {
			g = got[i]
		}
		if i < len(want) {
			w = want[i]
		}
		if g == w {
			continue
		}
		diffs := dmp.DiffMain(w, g, false)
		return &TraceMismatch{
			Line: i + 1,
			Got:  g,
			Want: w,
			Diff: dmp.DiffPrettyText(dmp.DiffCleanupSemantic(diffs)),
		}
	}
	return nil
}
