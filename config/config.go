// Package config collects the emulator settings: command line options
// and the optional TOML settings file named by $ALTAIR_CONFIG.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"altair/card"
	"altair/fault"
	"altair/pacer"
)

// EnvFile names the environment variable holding the settings file path.
const EnvFile = "ALTAIR_CONFIG"

// Usage summarises the command line.
const Usage = `usage: altair [-2] [-i data-device] [-c control-device] [-l file hex-offset]...
  -l file offset  load file into memory at hex offset (repeatable)
  -i device       data device number (default 1)
  -c device       control device number (default 0)
  -2              emulate an 88-2SIO instead of an 88-SIO`

// Frontend selects where the teletype lives.
type Frontend string

const (
	// TTY : the controlling terminal in raw mode
	TTY Frontend = "tty"

	// Panel : full-screen gocui panel with terminal and status views
	Panel Frontend = "panel"

	// Serial : a host serial port
	Serial Frontend = "serial"
)

// DefaultBaud of the serial front end
const DefaultBaud = 9600

// Image - binary file to copy into memory before the processor starts.
type Image struct {
	Path   string
	Offset int
}

// SerialLine - host port for the serial front end
type SerialLine struct {
	Device string
	Baud   int
}

// Options - everything the emulator is started with. Built once, then
// only read.
type Options struct {
	Variant  card.Variant
	Ports    card.Ports
	Images   []Image
	Rate     uint64
	Budget   uint64
	Frontend Frontend
	Serial   SerialLine
	LogPath  string
}

// Default returns the settings of a stock Altair running BASIC.
func Default() *Options {
	return &Options{
		Variant:  card.SIO,
		Ports:    card.DefaultPorts,
		Rate:     pacer.DefaultRate,
		Budget:   pacer.DefaultBudget,
		Frontend: TTY,
		Serial:   SerialLine{Baud: DefaultBaud},
	}
}

// Load applies the settings file (if getenv names one) and then args,
// the command line without the program name.
func Load(args []string, getenv func(string) string) (*Options, error) {
	o := Default()
	if path := getenv(EnvFile); path != "" {
		if err := o.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if err := o.Parse(args); err != nil {
		return nil, err
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// Parse applies command line options, getopt style: flags may be
// clustered (-2i3), option values attached (-i3) or separate (-i 3),
// and -l takes the element after its value as the load offset.
// Arguments that aren't options are ignored, "--" ends option parsing.
func (o *Options) Parse(args []string) error {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return nil
		}
		if len(arg) < 2 || arg[0] != '-' {
			continue
		}

	flags:
		for j := 1; j < len(arg); j++ {
			opt := arg[j]
			switch opt {
			case '2':
				o.Variant = card.SIO2
				continue
			case 'l', 'i', 'c':
			default:
				return fault.Configf("invalid option -- '%c'", opt)
			}

			// option with a value: rest of this element or the next one
			var value string
			if j+1 < len(arg) {
				value = arg[j+1:]
			} else {
				i++
				if i >= len(args) {
					return fault.Configf("option requires an argument -- '%c'", opt)
				}
				value = args[i]
			}

			switch opt {
			case 'l':
				i++
				if i >= len(args) {
					return fault.Configf("no offset specified for file %s", value)
				}
				offset, err := parseOffset(args[i])
				if err != nil {
					return fault.Configf("bad offset for file %s: %w", value, err)
				}
				o.Images = append(o.Images, Image{Path: value, Offset: offset})
			case 'i':
				port, err := parseDevice(value)
				if err != nil {
					return fault.Configf("-i: %w", err)
				}
				o.Ports.Data = port
			case 'c':
				port, err := parseDevice(value)
				if err != nil {
					return fault.Configf("-c: %w", err)
				}
				o.Ports.Control = port
			}
			break flags
		}
	}
	return nil
}

func parseOffset(s string) (int, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%q is not a hex number", s)
	}
	return int(n), nil
}

func parseDevice(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a device number", s)
	}
	return checkDevice(n)
}

// checkDevice : a card can only be jumpered to one of the 256 i/o ports
func checkDevice(n int) (int, error) {
	if n < 0 || n > 0xFF {
		return 0, fmt.Errorf("device %d out of range 0-255", n)
	}
	return n, nil
}

func (o *Options) validate() error {
	if o.Rate == 0 || o.Budget == 0 {
		return fault.Configf("clock rate and budget must be positive")
	}
	switch o.Frontend {
	case TTY, Panel:
	case Serial:
		if o.Serial.Device == "" {
			return fault.Configf("serial front end needs [serial] device")
		}
		if o.Serial.Baud <= 0 {
			return fault.Configf("bad baud rate %d", o.Serial.Baud)
		}
	default:
		return fault.Configf("unknown front end %q, want tty, panel or serial", o.Frontend)
	}
	return nil
}

// String - one line summary for the status console
func (o *Options) String() string {
	return fmt.Sprintf("%v data=%d control=%d clock=%d Hz budget=%d frontend=%s",
		o.Variant, o.Ports.Data, o.Ports.Control, o.Rate, o.Budget, o.Frontend)
}
