package gameboy

import (
	"fmt"
	"io"
	"time"
)

// Run drives the CPU until Stop is called, the instruction limit is
// reached, or an unknown opcode is fetched. Pause and Stop are
// honored only at step boundaries; a step, once begun, always
// completes.
func (g *GameBoy) Run() error {
	defer g.reportTrace()

	var steps uint64
	for !g.stopped.Load() {
		if g.paused.Load() {
			time.Sleep(time.Millisecond)
			continue
		}

		if err := g.CPU.Step(); err != nil {
			g.logger.Errorf("%v", err)
			return err
		}

		steps++
		if g.debugLimit > 0 && steps >= g.debugLimit {
			g.logger.Infof("stopping after %d steps", steps)
			break
		}
	}

	return nil
}

// Pause suspends the run loop before its next step.
func (g *GameBoy) Pause() {
	g.paused.Store(true)
}

// Resume lets a paused run loop continue.
func (g *GameBoy) Resume() {
	g.paused.Store(false)
}

// Stop makes the run loop return before its next step. It may be
// called from any goroutine.
func (g *GameBoy) Stop() {
	g.stopped.Store(true)
}

func (g *GameBoy) reportTrace() {
	if digest, ok := g.TraceDigest(); ok {
		g.logger.Infof("trace digest: %016x", digest)
	}
}

// writeTraceLine renders one instruction and the register file that
// resulted from it, in a fixed layout so digests are comparable
// across runs.
func writeTraceLine(w io.Writer, mnemonic string, a, f, b, c, d, e, h, l uint8, sp, pc uint16) {
	fmt.Fprintf(w, "%-16s A:%02X F:%02X B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X PC:%04X\n",
		mnemonic, a, f, b, c, d, e, h, l, sp, pc)
}
