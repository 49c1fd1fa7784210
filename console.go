package nes

import (
	"fmt"
	"io"
	"log"

	"github.com/pkg/errors"
)

var (
	// ErrNoCartridge is returned when the console is driven before a
	// cartridge was loaded.
	ErrNoCartridge = errors.New("no cartridge loaded")
	// ErrStopped is returned by Step after Stop or after a fault.
	ErrStopped = errors.New("console stopped")
)

type Option func(*Console)

// WithLogger routes console events to logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *Console) {
		c.logger = logger
	}
}

// WithTrace writes one TraceLine per executed instruction to w.
func WithTrace(w io.Writer) Option {
	return func(c *Console) {
		c.trace = w
	}
}

// Console wires a CPU to its bus and a cartridge and drives it one step at a
// time. It is not safe for concurrent use; interrupt lines must be raised
// between steps.
type Console struct {
	cpu       *CPU
	bus       *Bus
	cartridge *Cartridge

	logger  *log.Logger
	trace   io.Writer
	stopped bool
	// faulted holds the bus fault that stopped the console. Only loading a
	// cartridge clears it.
	faulted *AddressFault
}

func NewConsole(opts ...Option) *Console {
	bus := NewBus()
	c := &Console{
		bus:    bus,
		cpu:    NewCPU(bus),
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Console) CPU() *CPU {
	return c.cpu
}

func (c *Console) Bus() *Bus {
	return c.bus
}

func (c *Console) Cartridge() *Cartridge {
	return c.cartridge
}

// LoadCartridge resolves the cartridge mapper, plugs it into the bus and
// powers the CPU up. An unsupported mapper leaves the console untouched.
func (c *Console) LoadCartridge(cart *Cartridge) error {
	m, err := cart.NewMapper()
	if err != nil {
		return err
	}
	c.cartridge = cart
	c.bus.InsertMapper(m)
	c.stopped = false
	c.faulted = nil

	chr := "ROM"
	if cart.ChrRAM {
		chr = "RAM"
	}
	c.logger.Printf("cartridge: mapper %d, PRG %d KB, CHR %d KB (%s), mirroring %s",
		cart.MapperID, len(cart.PrgMemory)/1024, len(cart.ChrMemory)/1024, chr, m.Mirror())

	return c.PowerUp()
}

// PowerUp puts the CPU in its power-on state and reloads PC from the RESET
// vector. A bus fault while reading the vector is returned as an
// *AddressFault and stops the console.
func (c *Console) PowerUp() (err error) {
	if c.cartridge == nil {
		return ErrNoCartridge
	}
	if c.faulted != nil {
		return errors.Wrapf(ErrStopped, "after %v", c.faulted)
	}
	defer c.guard(&err)

	c.bus.IO().Reset()
	c.cpu.PowerUp()
	c.logger.Printf("power up: PC=$%04X", c.cpu.PC())
	return nil
}

// Reset presses the reset button. RAM survives it. Reset restarts a console
// halted by Stop, but not one halted by a bus fault: that takes a new
// LoadCartridge.
func (c *Console) Reset() (err error) {
	if c.cartridge == nil || c.bus.Mapper() == nil {
		return ErrNoCartridge
	}
	if c.faulted != nil {
		return errors.Wrapf(ErrStopped, "after %v", c.faulted)
	}
	defer c.guard(&err)

	c.bus.Mapper().Reset()
	c.cpu.Reset()
	c.stopped = false
	c.logger.Printf("reset: PC=$%04X SP=$%02X", c.cpu.PC(), c.cpu.SP())
	return nil
}

// guard turns an *AddressFault raised by the bus into err and stops the
// console. Any other panic is re-raised.
func (c *Console) guard(err *error) {
	r := recover()
	if r == nil {
		return
	}
	fault, ok := r.(*AddressFault)
	if !ok {
		panic(r)
	}
	c.stopped = true
	c.faulted = fault
	c.logger.Printf("fault: %v", fault)
	*err = fault
}

// Stop makes every following Step fail with ErrStopped.
func (c *Console) Stop() {
	c.stopped = true
}

// Step executes one instruction or interrupt entry. A bus fault stops the
// console and is returned as an *AddressFault.
func (c *Console) Step() (cycles int, err error) {
	if c.cartridge == nil {
		return 0, ErrNoCartridge
	}
	if c.stopped {
		return 0, ErrStopped
	}

	defer c.guard(&err)

	nmi, irq := c.cpu.NMIPending(), c.cpu.IRQPending() && !c.cpu.Flag(I)
	switch {
	case nmi:
		c.logger.Printf("nmi: PC=$%04X", c.cpu.PC())
	case irq:
		c.logger.Printf("irq: PC=$%04X", c.cpu.PC())
	case c.trace != nil:
		if _, werr := fmt.Fprintln(c.trace, TraceLine(c.cpu, c.bus)); werr != nil {
			return 0, errors.Wrap(werr, "write trace")
		}
	}

	return c.cpu.Step(), nil
}

// Run executes n steps, stopping at the first error.
func (c *Console) Run(n int) error {
	for i := 0; i < n; i++ {
		if _, err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}

// RunCycles steps until at least budget cycles have elapsed and returns the
// number actually spent.
func (c *Console) RunCycles(budget uint64) (uint64, error) {
	var spent uint64
	for spent < budget {
		n, err := c.Step()
		spent += uint64(n)
		if err != nil {
			return spent, err
		}
	}
	return spent, nil
}
