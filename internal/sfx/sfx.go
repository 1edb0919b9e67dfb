// Package sfx plays the naming screen's sound cues through ebiten/audio.
package sfx

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog"
	"github.com/spacehole-rogue/nameinput/internal/nameinput"
	"github.com/spacehole-rogue/nameinput/internal/sfx/tone"
)

// cueTones are the beeps for each cue.
var cueTones = map[nameinput.Cue]tone.Spec{
	nameinput.CueCursor: {Freq: 1320, Duration: 35 * time.Millisecond, Volume: 0.25},
	nameinput.CueOK:     {Freq: 880, Duration: 90 * time.Millisecond, Volume: 0.3},
	nameinput.CueBuzzer: {Freq: 110, Duration: 180 * time.Millisecond, Volume: 0.35},
	nameinput.CueCancel: {Freq: 440, Duration: 70 * time.Millisecond, Volume: 0.3},
}

// Player keeps one audio player per cue and rewinds it on every Play.
type Player struct {
	players map[nameinput.Cue]*audio.Player
	log     zerolog.Logger
}

// NewPlayer creates the process-wide audio context. Call it once.
func NewPlayer(log zerolog.Logger) *Player {
	ctx := audio.NewContext(tone.SampleRate)
	p := &Player{
		players: make(map[nameinput.Cue]*audio.Player, len(cueTones)),
		log:     log,
	}
	for cue, spec := range cueTones {
		p.players[cue] = ctx.NewPlayerFromBytes(tone.Square(spec))
	}
	return p
}

// Play restarts the clip for c.
func (p *Player) Play(c nameinput.Cue) {
	pl, ok := p.players[c]
	if !ok {
		return
	}
	if err := pl.Rewind(); err != nil {
		p.log.Warn().Err(err).Stringer("cue", c).Msg("rewind cue")
		return
	}
	pl.Play()
}

// Mute is a CuePlayer that plays nothing.
type Mute struct{}

func (Mute) Play(nameinput.Cue) {}
