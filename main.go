package main

import (
	"fmt"
	"log"
	"os"

	"altair/card"
	"altair/config"
	"altair/console"
	"altair/cpu"
	"altair/logger"
	"altair/memory"
	"altair/pacer"
	"altair/system"
	"altair/teletype"
)

func main() {
	o, err := config.Load(os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, config.Usage)
		os.Exit(1)
	}

	lg, err := logger.New(o.LogPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	lg.Printf("starting: %v", o)

	switch o.Frontend {
	case config.Panel:
		err = runPanel(o, lg)
	case config.Serial:
		err = runSerial(o, lg)
	default:
		err = runTTY(o, lg)
	}
	if err != nil {
		lg.Printf("exit: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// assemble plugs the serial card talking to term into a fresh Altair.
func assemble(o *config.Options, term teletype.Terminal, c console.Console, lg *log.Logger) (*system.System, *pacer.Pacer) {
	engine := cpu.New(memory.New())
	sio := card.New(o.Variant, o.Ports, term, lg)
	engine.Attach(sio.In, sio.Out)

	p := pacer.New(o.Rate, o.Budget, pacer.SystemClock{}, lg)
	return system.New(engine, p, c, lg), p
}

// runTTY : the controlling terminal is the teletype, status goes to stderr.
// The terminal is left in raw mode on exit.
func runTTY(o *config.Options, lg *log.Logger) error {
	tty := teletype.NewTTY(os.Stdin, os.Stdout)
	mode, err := tty.EnterRawMode()
	if err != nil {
		return err
	}
	lg.Printf("terminal in raw mode, lflag %#x", mode.Raw.Lflag)

	c := console.NewSimple(os.Stderr)
	sys, _ := assemble(o, tty, c, lg)
	_ = c.WriteConsole(o.String())
	return sys.Boot(o.Images)
}

// runSerial : a terminal hooked to a host serial port is the teletype.
func runSerial(o *config.Options, lg *log.Logger) error {
	line, err := teletype.OpenLine(o.Serial.Device, o.Serial.Baud)
	if err != nil {
		return err
	}
	defer line.Close()

	c := console.NewSimple(os.Stderr)
	sys, _ := assemble(o, line, c, lg)
	_ = c.WriteConsole(fmt.Sprintf("%v\nteletype on %s at %d baud", o, o.Serial.Device, o.Serial.Baud))
	return sys.Boot(o.Images)
}
