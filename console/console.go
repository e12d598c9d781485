package console

/*
Status console of the emulator.

Startup banner, configuration summary and fatal diagnostics end up here,
never on the emulated terminal. Depending on the front end the console is
the standard error stream or the "status" view of the panel.
*/

// Console displays emulator status messages
type Console interface {
	WriteConsole(msg string) error
}

// lines splits msg into lines, dropping the empty ones
func lines(msg string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(msg); i++ {
		if i == len(msg) || msg[i] == '\n' {
			if i > start {
				out = append(out, msg[start:i])
			}
			start = i + 1
		}
	}
	return out
}
