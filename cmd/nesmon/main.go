// Command nesmon runs a cartridge under a register, disassembly and RAM
// monitor.
//
//	Space  run / pause
//	C      step one instruction
//	R      reset
//	I      raise IRQ
//	N      raise NMI
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	nes "nes-core"
	"nes-core/ioreg"
)

const (
	screenWidth  = 900
	screenHeight = 700

	// NTSC CPU clock divided by the frame rate.
	cyclesPerFrame = 29781
)

var (
	romFlag   = flag.String("rom", "", "iNES image to load")
	scaleFlag = flag.Float64("scale", 1, "window scale factor")
)

var (
	WHITE = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	CYAN  = color.RGBA{G: 0xFF, B: 0xFF, A: 0xFF}
	GREEN = color.RGBA{G: 0xFF, A: 0xFF}
	RED   = color.RGBA{R: 0xFF, A: 0xFF}
)

type Monitor struct {
	console      *nes.Console
	mapAsm       map[uint16]nes.DisassembledInstruction
	defaultFont  font.Face
	emulationRun bool
	lastErr      error
}

func (m *Monitor) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.emulationRun = !m.emulationRun
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		m.lastErr = m.console.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		m.console.CPU().SetIRQ()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		m.console.CPU().SetNMI()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) && !m.emulationRun {
		_, m.lastErr = m.console.Step()
	}
	if m.emulationRun {
		if _, err := m.console.RunCycles(cyclesPerFrame); err != nil {
			m.lastErr = err
			m.emulationRun = false
		}
	}
	return nil
}

func (m *Monitor) getDefaultFont() font.Face {
	if m.defaultFont != nil {
		return m.defaultFont
	}
	tt, err := opentype.Parse(fonts.MPlus1pRegular_ttf)
	if err != nil {
		log.Fatal(err)
	}
	const dpi = 72 * 2
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    8,
		DPI:     dpi,
		Hinting: font.HintingNone,
	})
	if err != nil {
		log.Fatal(err)
	}
	m.defaultFont = face
	return m.defaultFont
}

func (m *Monitor) DrawString(screen *ebiten.Image, x int, y int, str string, clr color.Color) {
	text.Draw(screen, str, m.getDefaultFont(), x, y, clr)
}

// DrawCode prints nLines of listing centred on the PC.
func (m *Monitor) DrawCode(screen *ebiten.Image, x int, y int, nLines int) {
	pc := m.console.CPU().PC()
	itA, ok := m.mapAsm[pc]
	if !ok {
		m.DrawString(screen, x, y, fmt.Sprintf("$%04X: not in listing", pc), RED)
		return
	}
	lineSize := 24
	lineY := y + (nLines>>1)*lineSize

	m.DrawString(screen, x, lineY, itA.Text, CYAN)
	for lineY < y+nLines*lineSize {
		lineY += lineSize
		itA, ok = m.mapAsm[itA.Next]
		if !ok {
			break
		}
		m.DrawString(screen, x, lineY, itA.Text, WHITE)
	}

	itA = m.mapAsm[pc]
	lineY = y + (nLines>>1)*lineSize
	for lineY > y {
		lineY -= lineSize
		itA, ok = m.mapAsm[itA.Previous]
		if !ok {
			break
		}
		m.DrawString(screen, x, lineY, itA.Text, WHITE)
	}
}

func (m *Monitor) DrawRam(screen *ebiten.Image, x int, y int, addr uint16, nRows int, nColumns int) {
	bus := m.console.Bus()
	for row := 0; row < nRows; row++ {
		line := fmt.Sprintf("$%04X:", addr)
		for col := 0; col < nColumns; col++ {
			line += fmt.Sprintf(" %02X", bus.ReadByte(addr))
			addr++
		}
		ebitenutil.DebugPrintAt(screen, line, x, y)
		y += 16
	}
}

func (m *Monitor) DrawCpu(screen *ebiten.Image, x int, y int) {
	cpu := m.console.CPU()

	m.DrawString(screen, x, y, "STATUS: ", WHITE)
	titleOffset := 70
	statusOffset := 10
	flags := []struct {
		name string
		flag nes.CPUFlag
	}{
		{"N", nes.N}, {"V", nes.V}, {"U", nes.U}, {"B", nes.B},
		{"D", nes.D}, {"I", nes.I}, {"Z", nes.Z}, {"C", nes.C},
	}
	for i, f := range flags {
		statusColor := RED
		if cpu.Status()&uint8(f.flag) != 0 {
			statusColor = GREEN
		}
		m.DrawString(screen, x+titleOffset+statusOffset*i, y, f.name, statusColor)
	}

	lineSize := 24
	m.DrawString(screen, x, y+lineSize, fmt.Sprintf("PC: $%04X", cpu.PC()), WHITE)
	m.DrawString(screen, x, y+lineSize*2, fmt.Sprintf("A: $%02X [%d]", cpu.A(), cpu.A()), WHITE)
	m.DrawString(screen, x, y+lineSize*3, fmt.Sprintf("X: $%02X [%d]", cpu.X(), cpu.X()), WHITE)
	m.DrawString(screen, x, y+lineSize*4, fmt.Sprintf("Y: $%02X [%d]", cpu.Y(), cpu.Y()), WHITE)
	m.DrawString(screen, x, y+lineSize*5, fmt.Sprintf("Stack P: $%04X", 0x0100|uint16(cpu.SP())), WHITE)
	m.DrawString(screen, x, y+lineSize*6, fmt.Sprintf("Cycles: %d", cpu.Cycles()), WHITE)

	pending := ""
	if cpu.NMIPending() {
		pending += " NMI"
	}
	if cpu.IRQPending() {
		pending += " IRQ"
	}
	m.DrawString(screen, x, y+lineSize*7, "Pending:"+pending, WHITE)
}

// DrawRegisters lists the named fields of the APU status and frame counter
// registers.
func (m *Monitor) DrawRegisters(screen *ebiten.Image, x int, y int) {
	io := m.console.Bus().IO()
	regs := []struct {
		title string
		reg   *ioreg.Register
	}{
		{"$4015", io.Status()},
		{"$4017", io.FrameCounterRegister()},
	}
	for _, r := range regs {
		line := fmt.Sprintf("%s: $%02X", r.title, r.reg.Reg)
		fields := r.reg.Fields()
		for _, name := range r.reg.Names() {
			line += fmt.Sprintf(" %s=%d", name, fields[name])
		}
		ebitenutil.DebugPrintAt(screen, line, x, y)
		y += 16
	}
}

func (m *Monitor) Draw(screen *ebiten.Image) {
	m.DrawRam(screen, 2, 2, 0x0000, 16, 16)
	m.DrawRam(screen, 2, 282, 0x0100, 16, 16)
	m.DrawCpu(screen, screenWidth-300, 24)
	m.DrawCode(screen, screenWidth-300, 230, 16)
	m.DrawRegisters(screen, 2, 562)

	status := "paused (space: run, C: step, R: reset, I: IRQ, N: NMI)"
	if m.emulationRun {
		status = "running"
	}
	ebitenutil.DebugPrintAt(screen, status, 2, screenHeight-40)
	if m.lastErr != nil {
		m.DrawString(screen, 2, screenHeight-50, m.lastErr.Error(), RED)
	}
}

func (m *Monitor) Layout(outsideWidth int, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	log.SetFlags(0)
	flag.Parse()
	if *romFlag == "" {
		flag.Usage()
		os.Exit(2)
	}

	cart, err := nes.LoadCartridgeFile(*romFlag)
	if err != nil {
		log.Fatal(err)
	}
	console := nes.NewConsole(nes.WithLogger(log.New(os.Stderr, "nes: ", 0)))
	if err := console.LoadCartridge(cart); err != nil {
		log.Fatal(err)
	}

	scale := *scaleFlag
	ebiten.SetWindowSize(int(screenWidth*scale), int(screenHeight*scale))
	ebiten.SetWindowTitle("nesmon - " + *romFlag)
	if err := ebiten.RunGame(&Monitor{
		console: console,
		mapAsm:  nes.Disassemble(console.Bus(), 0x8000, 0xFFFF),
	}); err != nil {
		log.Fatal(err)
	}
}
