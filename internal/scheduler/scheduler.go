// Package scheduler provides the cycle broadcaster that keeps the
// emulated hardware in lockstep with the CPU. Every unit of CPU work
// is reported here as a number of elapsed clock ticks (4 ticks per
// machine cycle); attached peripherals are advanced by exactly those
// ticks, in the order they are reported. The CPU has no knowledge of
// what consumes the signal.
package scheduler

// Peripheral is a hardware component driven by the CPU clock, such
// as the timer, the serial port or the DMA engine. Tick advances the
// peripheral by the given number of clock ticks; it is called for
// every group of ticks the CPU consumes, and peripherals must not
// advance on their own.
type Peripheral interface {
	Tick(ticks uint8)
}

// Scheduler owns the monotonic tick counter and the list of attached
// peripherals. It is not safe for concurrent use; the CPU step that
// drives it is single-threaded by design.
type Scheduler struct {
	cycles      uint64
	peripherals []Peripheral
}

// New returns a Scheduler with no peripherals attached.
func New() *Scheduler {
	return &Scheduler{}
}

// Attach subscribes the given peripherals to the tick signal. They
// are advanced in attachment order.
func (s *Scheduler) Attach(peripherals ...Peripheral) {
	s.peripherals = append(s.peripherals, peripherals...)
}

// Tick advances the clock by the given number of ticks and forwards
// the elapsed time to every attached peripheral.
func (s *Scheduler) Tick(ticks uint8) {
	s.cycles += uint64(ticks)
	for _, p := range s.peripherals {
		p.Tick(ticks)
	}
}

// Cycle returns the number of ticks elapsed since reset. It never
// decreases.
func (s *Scheduler) Cycle() uint64 {
	return s.cycles
}
