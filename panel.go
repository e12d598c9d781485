package main

import (
	"fmt"
	"log"
	"time"

	"altair/config"
	"altair/console"
	"altair/fault"
	"altair/pacer"
	"altair/teletype"

	"github.com/jroimartin/gocui"
)

// runPanel : full screen front end. Ctrl-C leaves the emulator, a fault
// ends the main loop with that fault.
func runPanel(o *config.Options, lg *log.Logger) error {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return fault.Wrap(fault.Environment, err, "couldn't create gui")
	}
	defer g.Close()

	g.SetManagerFunc(layout)

	if err := g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit); err != nil {
		return err
	}

	// start emulation once the views exist
	g.Update(func(g *gocui.Gui) error {
		return startAltair(g, o, lg)
	})

	if err := g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

func startAltair(g *gocui.Gui, o *config.Options, lg *log.Logger) error {
	statusView, err := g.View("status")
	if err != nil {
		return err
	}
	statusView.Clear()

	terminalView, err := g.View("terminal")
	if err != nil {
		return err
	}
	terminalView.Clear()

	if _, err := g.SetCurrentView("terminal"); err != nil {
		return err
	}
	g.Cursor = true

	c := console.NewGui(g, statusView)
	sys, p := assemble(o, teletype.NewPanel(g, terminalView), c, lg)
	_ = c.WriteConsole(o.String())

	go func() {
		err := sys.Boot(o.Images)
		g.Update(func(*gocui.Gui) error {
			return err
		})
	}()
	updateClock(g, p)
	return nil
}

// update clock rate display once a second
// has to be run in go routine -> gocui allows updating the view only through Update
func updateClock(g *gocui.Gui, p *pacer.Pacer) {
	ticker := time.NewTicker(time.Second)

	go func() {
		prev, then := p.Stats(), time.Now()
		for now := range ticker.C {
			s := p.Stats()
			rate := s.RateSince(prev, now.Sub(then))
			prev, then = s, now

			g.Update(func(g *gocui.Gui) error {
				v, err := g.View("clock")
				if err != nil {
					return err
				}
				v.Clear()
				fmt.Fprintf(v, " %.3f MHz / %.3f MHz  pauses %d  overruns %d  slept %v",
					rate/1e6, float64(p.Rate())/1e6, s.Pauses, s.Overruns, s.Slept.Round(time.Millisecond))
				return nil
			})
		}
	}()
}

// gocui layout
func layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	// up -> teletype
	if v, err := g.SetView("terminal", 0, 0, maxX-1, maxY-12); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Teletype"
		v.Wrap = true
		v.Autoscroll = true
	}

	// middle -> clock rate
	if v, err := g.SetView("clock", 0, maxY-11, maxX-1, maxY-9); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Clock"
	}
	// down -> status
	if v, err := g.SetView("status", 0, maxY-8, maxX-1, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
		v.Autoscroll = true
	}
	return nil
}

func quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}
