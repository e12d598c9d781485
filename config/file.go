package config

import (
	"strings"

	"altair/card"
	"altair/fault"

	"github.com/BurntSushi/toml"
)

// file mirrors the settings file layout
type file struct {
	Card struct {
		Variant string `toml:"variant"`
		Data    int    `toml:"data"`
		Control int    `toml:"control"`
	} `toml:"card"`
	Clock struct {
		Rate   uint64 `toml:"rate"`
		Budget uint64 `toml:"budget"`
	} `toml:"clock"`
	Terminal struct {
		Frontend string `toml:"frontend"`
	} `toml:"terminal"`
	Serial struct {
		Device string `toml:"device"`
		Baud   int    `toml:"baud"`
	} `toml:"serial"`
	Log struct {
		Path string `toml:"path"`
	} `toml:"log"`
}

// LoadFile applies the settings in the TOML file at path. Keys missing
// from the file keep their current value.
func (o *Options) LoadFile(path string) error {
	var f file
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return fault.Configf("parse error in %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fault.Configf("unknown settings in %s: %s", path, strings.Join(keys, ", "))
	}

	if md.IsDefined("card", "variant") {
		v, err := card.ParseVariant(f.Card.Variant)
		if err != nil {
			return fault.Configf("%s: %w", path, err)
		}
		o.Variant = v
	}
	if md.IsDefined("card", "data") {
		port, err := checkDevice(f.Card.Data)
		if err != nil {
			return fault.Configf("%s: card.data: %w", path, err)
		}
		o.Ports.Data = port
	}
	if md.IsDefined("card", "control") {
		port, err := checkDevice(f.Card.Control)
		if err != nil {
			return fault.Configf("%s: card.control: %w", path, err)
		}
		o.Ports.Control = port
	}
	if md.IsDefined("clock", "rate") {
		o.Rate = f.Clock.Rate
	}
	if md.IsDefined("clock", "budget") {
		o.Budget = f.Clock.Budget
	}
	if md.IsDefined("terminal", "frontend") {
		o.Frontend = Frontend(f.Terminal.Frontend)
	}
	if md.IsDefined("serial", "device") {
		o.Serial.Device = f.Serial.Device
	}
	if md.IsDefined("serial", "baud") {
		o.Serial.Baud = f.Serial.Baud
	}
	if md.IsDefined("log", "path") {
		o.LogPath = f.Log.Path
	}
	return nil
}
