package nameinput

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Command is a discrete input the naming screen reacts to.
type Command uint8

const (
	CmdUp Command = iota
	CmdDown
	CmdLeft
	CmdRight
	CmdConfirm // append the selected character, or finish on OK
	CmdBack    // delete the last character
	CmdJump    // move the cursor to OK
	CmdCancel  // leave without saving
)

var commandNames = [...]string{"up", "down", "left", "right", "confirm", "back", "jump", "cancel"}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return fmt.Sprintf("command(%d)", c)
}

// Input is one command occurrence. Trigger is set on the frame the key
// went down and cleared on auto-repeat; only triggered moves may wrap.
type Input struct {
	Command Command
	Trigger bool
}

// Result is the outcome of the naming screen.
type Result uint8

const (
	Pending Result = iota
	Confirmed
	Cancelled
)

func (r Result) String() string {
	switch r {
	case Confirmed:
		return "confirmed"
	case Cancelled:
		return "cancelled"
	default:
		return "pending"
	}
}

// Deps are the services the naming screen consumes.
type Deps struct {
	Measure TextMeasurer
	Store   NameStore
	Cues    CuePlayer
	Log     zerolog.Logger
}

// Scene is the naming screen: a preview and a picker created and
// discarded together.
type Scene struct {
	actorID int
	store   NameStore
	cues    CuePlayer
	log     zerolog.Logger

	edit   *Preview
	picker *Picker
	result Result
}

// NewScene opens the naming screen for actorID, starting from the actor's
// current name.
func NewScene(cfg Config, deps Deps, actorID, maxChars int) (*Scene, error) {
	name, err := deps.Store.Name(actorID)
	if err != nil {
		return nil, fmt.Errorf("read name of actor %d: %w", actorID, err)
	}
	edit := NewPreview(cfg, deps.Measure, name, maxChars)
	s := &Scene{
		actorID: actorID,
		store:   deps.Store,
		cues:    deps.Cues,
		log:     deps.Log.With().Int("actor", actorID).Logger(),
		edit:    edit,
		picker:  NewPicker(cfg, edit, deps.Cues),
	}
	s.log.Debug().Str("name", edit.Name()).Int("max_chars", maxChars).Msg("name input opened")
	return s, nil
}

// Preview returns the edit window.
func (s *Scene) Preview() *Preview { return s.edit }

// Picker returns the character grid window.
func (s *Scene) Picker() *Picker { return s.picker }

// Result returns Pending until the screen has been confirmed or cancelled.
func (s *Scene) Result() Result { return s.result }

// Name returns the name as currently edited.
func (s *Scene) Name() string { return s.edit.Name() }

// Handle applies one input. Inputs after the screen has closed are
// ignored. The only error is a failed write of the final name.
func (s *Scene) Handle(in Input) error {
	if s.result != Pending {
		return nil
	}
	switch in.Command {
	case CmdUp:
		s.picker.Move(DirUp, in.Trigger)
	case CmdDown:
		s.picker.Move(DirDown, in.Trigger)
	case CmdLeft:
		s.picker.Move(DirLeft, in.Trigger)
	case CmdRight:
		s.picker.Move(DirRight, in.Trigger)
	case CmdJump:
		s.picker.JumpToConfirm()
	case CmdBack:
		if s.edit.Back() {
			s.cues.Play(CueCancel)
		}
	case CmdConfirm:
		return s.confirm()
	case CmdCancel:
		s.cues.Play(CueCancel)
		s.result = Cancelled
		s.log.Debug().Msg("name input cancelled")
	}
	return nil
}

func (s *Scene) confirm() error {
	if ch := s.picker.Character(); ch != "" {
		if s.edit.Add(ch) {
			s.cues.Play(CueOK)
		} else {
			s.cues.Play(CueBuzzer)
		}
		return nil
	}
	if !s.picker.IsConfirm() {
		return nil
	}

	if s.edit.Name() == "" {
		if s.edit.RestoreDefault() {
			s.cues.Play(CueOK)
		} else {
			s.cues.Play(CueBuzzer)
		}
		return nil
	}

	s.cues.Play(CueOK)
	name := s.edit.Name()
	if err := s.store.SetName(s.actorID, name); err != nil {
		s.log.Error().Err(err).Str("name", name).Msg("save name")
		return fmt.Errorf("save name of actor %d: %w", s.actorID, err)
	}
	s.result = Confirmed
	s.log.Info().Str("name", name).Msg("name confirmed")
	return nil
}

// Draw renders the preview, then the picker.
func (s *Scene) Draw(h Host) {
	s.edit.Draw(h)
	s.picker.Draw(h)
}
