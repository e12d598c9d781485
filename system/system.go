package system

import (
	"io"
	"log"

	"altair/console"
	"altair/fault"
	"altair/pacer"
)

// Engine - the execution engine as the driver loop sees it.
type Engine interface {
	Step()
	Cycles() uint64
	ResetCycles()
	Reset()
	Load(offset int, data []byte) error
}

// System definition.
type System struct {
	engine  Engine
	pacer   *pacer.Pacer
	console console.Console
	log     *log.Logger
}

// New wires the driver loop. The engine's i/o callbacks must already be
// attached to the card.
func New(e Engine, p *pacer.Pacer, c console.Console, logger *log.Logger) *System {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &System{
		engine:  e,
		pacer:   p,
		console: c,
		log:     logger,
	}
}

// Run system. There is no way to stop a running Altair short of
// killing the process: Run only returns with the fault that halted it.
func (sys *System) Run() (err error) {
	defer func() {
		t := recover()
		switch t := t.(type) {
		case *fault.Fault:
			sys.log.Printf("halted: %v", t)
			err = t
		case nil:
			// ignore
		default:
			panic(t)
		}
	}()

	sys.pacer.Start()
	for {
		if stepErr := sys.step(); stepErr != nil {
			sys.log.Printf("halted: %v", stepErr)
			return stepErr
		}
	}
}

// single cpu step, then let the pacer catch up with real time
func (sys *System) step() error {
	sys.engine.Step()
	if err := sys.pacer.MaybePace(sys.engine); err != nil {
		return fault.Wrap(fault.Environment, err, "clock pacing")
	}
	return nil
}
