// Package input turns held-key durations into naming screen inputs.
// It knows nothing about the keyboard itself; the caller reports how many
// frames each bound key has been held.
package input

import "github.com/spacehole-rogue/nameinput/internal/nameinput"

// Auto-repeat timing in frames (at 60 TPS).
const (
	RepeatDelay    = 24
	RepeatInterval = 6
)

// Mode is when a held key fires.
type Mode uint8

const (
	OnTrigger Mode = iota // only on the frame the key goes down
	OnRepeat              // on the first frame, then auto-repeats
)

// Modes is how each command fires. Cursor moves and delete repeat.
var Modes = map[nameinput.Command]Mode{
	nameinput.CmdUp:      OnRepeat,
	nameinput.CmdDown:    OnRepeat,
	nameinput.CmdLeft:    OnRepeat,
	nameinput.CmdRight:   OnRepeat,
	nameinput.CmdBack:    OnRepeat,
	nameinput.CmdConfirm: OnTrigger,
	nameinput.CmdJump:    OnTrigger,
	nameinput.CmdCancel:  OnTrigger,
}

// Triggered reports whether a key held for held frames went down this frame.
func Triggered(held int) bool { return held == 1 }

// Repeated reports whether a key held for held frames fires this frame:
// once on press, then every RepeatInterval frames after RepeatDelay.
func Repeated(held int) bool {
	if held == 1 {
		return true
	}
	return held >= RepeatDelay && (held-RepeatDelay)%RepeatInterval == 0
}

// Resolve converts how long the keys bound to cmd have been held into an
// input for this frame. ok is false when nothing fires.
func Resolve(cmd nameinput.Command, held int) (in nameinput.Input, ok bool) {
	if held <= 0 {
		return nameinput.Input{}, false
	}
	fire := Triggered(held)
	if Modes[cmd] == OnRepeat {
		fire = Repeated(held)
	}
	if !fire {
		return nameinput.Input{}, false
	}
	return nameinput.Input{Command: cmd, Trigger: Triggered(held)}, true
}
