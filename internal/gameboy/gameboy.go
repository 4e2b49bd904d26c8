// Package gameboy wires the emulated hardware together and drives
// it: cartridge, bus, CPU, timer, serial port, DMA engine and the
// clock that keeps them in lockstep.
package gameboy

import (
	"hash"
	"io"
	"sync/atomic"

	"github.com/cespare/xxhash"

	"github.com/dmgb/dmgb/internal/bus"
	"github.com/dmgb/dmgb/internal/cartridge"
	"github.com/dmgb/dmgb/internal/cpu"
	"github.com/dmgb/dmgb/internal/interrupts"
	"github.com/dmgb/dmgb/internal/scheduler"
	"github.com/dmgb/dmgb/internal/serial"
	"github.com/dmgb/dmgb/internal/timer"
	"github.com/dmgb/dmgb/pkg/log"
)

// GameBoy is a complete emulated unit.
type GameBoy struct {
	CPU       *cpu.CPU
	Bus       *bus.Bus
	IRQ       *interrupts.Service
	Scheduler *scheduler.Scheduler
	Timer     *timer.Controller
	Serial    *serial.Controller
	Cartridge cartridge.Cartridge

	logger log.Logger

	debug      bool
	debugLimit uint64
	trace      hash.Hash64

	paused  atomic.Bool
	stopped atomic.Bool
}

// Opt configures a GameBoy on construction.
type Opt func(gb *GameBoy)

// Debug enables instruction tracing: every executed instruction is
// folded into a digest reported when the run stops.
func Debug() Opt {
	return func(gb *GameBoy) {
		gb.debug = true
	}
}

// DebugLimit stops the run loop after n instructions. It implies
// Debug.
func DebugLimit(n uint64) Opt {
	return func(gb *GameBoy) {
		gb.debug = true
		gb.debugLimit = n
	}
}

// WithLogger replaces the default logger.
func WithLogger(l log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.logger = l
	}
}

// SerialWriter directs bytes sent over the serial port to w. Test
// ROMs report their results this way.
func SerialWriter(w io.Writer) Opt {
	return func(gb *GameBoy) {
		gb.Serial.AttachSink(w)
	}
}

// New builds a GameBoy around the given ROM image.
func New(rom []byte, opts ...Opt) (*GameBoy, error) {
	cart, err := cartridge.New(rom)
	if err != nil {
		return nil, err
	}

	irq := interrupts.NewService()
	sched := scheduler.New()
	t := timer.NewController(irq)
	ser := serial.NewController(irq)
	b := bus.New(cart, irq, sched, t, ser)
	sched.Attach(t, ser, b.DMA())

	gb := &GameBoy{
		CPU:       cpu.New(b, irq, sched),
		Bus:       b,
		IRQ:       irq,
		Scheduler: sched,
		Timer:     t,
		Serial:    ser,
		Cartridge: cart,
		logger:    log.New(),
	}
	for _, opt := range opts {
		opt(gb)
	}

	if gb.debug {
		gb.trace = xxhash.New()
		gb.CPU.TraceFunc = gb.traceInstruction
	}

	gb.logger.Infof("loaded cartridge: %s", cart.Header())

	return gb, nil
}

// traceInstruction folds one executed instruction and the resulting
// register file into the trace digest.
func (g *GameBoy) traceInstruction(instr cpu.Instruction) {
	c := g.CPU
	writeTraceLine(g.trace, instr.String(), c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L, c.SP, c.PC)
}

// TraceDigest returns the digest of the instruction trace so far.
// It reports false when tracing is disabled.
func (g *GameBoy) TraceDigest() (uint64, bool) {
	if g.trace == nil {
		return 0, false
	}
	return g.trace.Sum64(), true
}
