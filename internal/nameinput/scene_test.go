package nameinput

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScene(t *testing.T, name string, maxChars int) (*Scene, *memStore, *cueRecorder) {
	t.Helper()
	store := &memStore{names: map[int]string{1: name}}
	cues := &cueRecorder{}
	s, err := NewScene(DefaultConfig(), Deps{
		Measure: monoMeasure(14),
		Store:   store,
		Cues:    cues,
		Log:     zerolog.Nop(),
	}, 1, maxChars)
	require.NoError(t, err)
	return s, store, cues
}

func press(t *testing.T, s *Scene, cmds ...Command) {
	t.Helper()
	for _, c := range cmds {
		require.NoError(t, s.Handle(Input{Command: c, Trigger: true}))
	}
}

func TestNewSceneUnknownActor(t *testing.T) {
	store := &memStore{names: map[int]string{}}
	_, err := NewScene(DefaultConfig(), Deps{Measure: monoMeasure(14), Store: store, Cues: &cueRecorder{}, Log: zerolog.Nop()}, 7, 8)
	require.Error(t, err)
	assert.ErrorIs(t, err, errNoActor)
}

func TestSceneTruncatesInitialName(t *testing.T) {
	s, _, _ := newTestScene(t, "MAXIMILIAN", 6)
	assert.Equal(t, "MAXIMI", s.Name())
	assert.Equal(t, 6, s.Preview().State().Index)
}

func TestSceneEnterNameAndConfirm(t *testing.T) {
	s, store, cues := newTestScene(t, "", 8)

	// A, then down to N, then right to O
	press(t, s, CmdConfirm, CmdDown, CmdConfirm, CmdRight, CmdConfirm)
	assert.Equal(t, "ANO", s.Name())
	assert.Equal(t, []Cue{CueOK, CueCursor, CueOK, CueCursor, CueOK}, cues.played)

	cues.reset()
	press(t, s, CmdJump, CmdConfirm)
	assert.Equal(t, Confirmed, s.Result())
	assert.Equal(t, "ANO", store.names[1])
	assert.Equal(t, []Cue{CueCursor, CueOK}, cues.played)

	cues.reset()
	press(t, s, CmdBack, CmdCancel)
	assert.Equal(t, Confirmed, s.Result(), "closed screens ignore input")
	assert.Equal(t, "ANO", s.Name())
	assert.Empty(t, cues.played)
}

func TestSceneFullNameBuzzes(t *testing.T) {
	s, _, cues := newTestScene(t, "AB", 2)
	press(t, s, CmdConfirm)
	assert.Equal(t, "AB", s.Name())
	assert.Equal(t, []Cue{CueBuzzer}, cues.played)
}

func TestSceneBlankCellDoesNothing(t *testing.T) {
	s, _, cues := newTestScene(t, "", 8)
	press(t, s, CmdDown, CmdDown)
	require.Equal(t, 26, s.Picker().Selection().Index())
	cues.reset()

	press(t, s, CmdConfirm)
	assert.Empty(t, s.Name())
	assert.Empty(t, cues.played)
	assert.Equal(t, Pending, s.Result())
}

func TestSceneBack(t *testing.T) {
	s, _, cues := newTestScene(t, "AB", 8)
	press(t, s, CmdBack, CmdBack, CmdBack)
	assert.Empty(t, s.Name())
	assert.Equal(t, []Cue{CueCancel, CueCancel}, cues.played)
}

func TestSceneConfirmEmptyRestoresDefault(t *testing.T) {
	s, store, cues := newTestScene(t, "ERIC", 8)
	press(t, s, CmdBack, CmdBack, CmdBack, CmdBack)
	cues.reset()

	press(t, s, CmdJump, CmdConfirm)
	assert.Equal(t, "ERIC", s.Name())
	assert.Equal(t, Pending, s.Result())
	assert.Equal(t, 0, store.writes)
	assert.Equal(t, []Cue{CueCursor, CueOK}, cues.played)
}

func TestSceneConfirmEmptyWithoutDefaultBuzzes(t *testing.T) {
	s, store, cues := newTestScene(t, "", 8)
	press(t, s, CmdJump)
	cues.reset()

	press(t, s, CmdConfirm)
	assert.Equal(t, Pending, s.Result())
	assert.Equal(t, 0, store.writes)
	assert.Equal(t, []Cue{CueBuzzer}, cues.played)
}

func TestSceneCancelKeepsStoredName(t *testing.T) {
	s, store, cues := newTestScene(t, "ERIC", 8)
	press(t, s, CmdBack, CmdCancel)
	assert.Equal(t, Cancelled, s.Result())
	assert.Equal(t, "ERIC", store.names[1])
	assert.Equal(t, CueCancel, cues.played[len(cues.played)-1])
}

func TestSceneSaveFailureStaysOpen(t *testing.T) {
	s, store, _ := newTestScene(t, "ERIC", 8)
	store.writeErr = errors.New("disk full")
	press(t, s, CmdJump)

	err := s.Handle(Input{Command: CmdConfirm, Trigger: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.writeErr)
	assert.Equal(t, Pending, s.Result())
}

func TestSceneRepeatDoesNotWrap(t *testing.T) {
	s, _, cues := newTestScene(t, "", 8)
	require.NoError(t, s.Handle(Input{Command: CmdUp}))
	assert.Equal(t, 0, s.Picker().Selection().Index())
	assert.Empty(t, cues.played)

	require.NoError(t, s.Handle(Input{Command: CmdUp, Trigger: true}))
	assert.Equal(t, 26, s.Picker().Selection().Index())
}

func TestSceneDrawsPreviewThenPicker(t *testing.T) {
	s, _, _ := newTestScene(t, "", 8)
	h := &recordingHost{monoMeasure: 14}
	s.Draw(h)
	require.Len(t, h.windows, 2)
	assert.Equal(t, s.Preview().Frame(), h.windows[0])
	assert.Equal(t, s.Picker().Frame(), h.windows[1])
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "jump", CmdJump.String())
	assert.Equal(t, "command(42)", Command(42).String())
	assert.Equal(t, "buzzer", CueBuzzer.String())
	assert.Equal(t, "cancelled", Cancelled.String())
}
