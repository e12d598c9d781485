package system

import (
	"fmt"
	"os"

	"altair/config"
	"altair/fault"
)

/*
	Loading memory images: every -l file is copied into memory at its
	offset, in command line order, before the first instruction runs.
	Later images overwrite earlier ones where they overlap.
*/

// LoadImages copies the images into the engine's memory.
func (sys *System) LoadImages(images []config.Image) error {
	for _, img := range images {
		data, err := os.ReadFile(img.Path)
		if err != nil {
			return fault.Wrap(fault.Config, err, "load image")
		}
		if err := sys.engine.Load(img.Offset, data); err != nil {
			return fault.Wrap(fault.Config, err, fmt.Sprintf("load %s", img.Path))
		}
		sys.log.Printf("loaded %s: %d bytes at %#04x", img.Path, len(data), img.Offset)
	}
	return nil
}

// Boot resets the processor, loads the images and starts execution.
func (sys *System) Boot(images []config.Image) error {
	sys.engine.Reset()
	if err := sys.LoadImages(images); err != nil {
		return err
	}
	if sys.console != nil {
		_ = sys.console.WriteConsole(fmt.Sprintf("Starting 8080 at %d Hz.\n", sys.pacer.Rate()))
	}
	return sys.Run()
}
