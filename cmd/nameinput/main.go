package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/spacehole-rogue/nameinput/assets"
	"github.com/spacehole-rogue/nameinput/internal/layoutcfg"
	"github.com/spacehole-rogue/nameinput/internal/nameinput"
	"github.com/spacehole-rogue/nameinput/internal/party"
	"github.com/spacehole-rogue/nameinput/internal/render"
	"github.com/spacehole-rogue/nameinput/internal/sfx"
	"github.com/spf13/cobra"
)

const (
	title      = "Name Input"
	glyphScale = 1.5 // 16px atlas cells fill a 24px line
	zoom       = 2   // window pixels per screen pixel
)

type options struct {
	configPath string
	rosterPath string
	actorID    int
	maxChars   int
	mute       bool
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "nameinput",
		Short:         "Enter a party member's name on an arced letter grid",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "layout .ini overriding the built-in one")
	f.StringVar(&opts.rosterPath, "roster", "", "party roster JSON (default: built-in party)")
	f.IntVar(&opts.actorID, "actor", 1, "ID of the actor to rename")
	f.IntVar(&opts.maxChars, "max-chars", 16, "maximum name length")
	f.BoolVar(&opts.mute, "mute", false, "disable sound effects")
	f.StringVar(&opts.logLevel, "log-level", "info", "zerolog level")
	return cmd
}

func newLogger(level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level: %w", err)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger(), nil
}

func loadLayout(path string) (nameinput.Config, error) {
	defaults, err := assets.Files.ReadFile(assets.LayoutFile)
	if err != nil {
		return nameinput.Config{}, fmt.Errorf("load default layout: %w", err)
	}
	if path == "" {
		return layoutcfg.Load(defaults)
	}
	return layoutcfg.Load(defaults, path)
}

func loadRoster(path string) (*party.Roster, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = assets.Files.ReadFile(assets.RosterFile)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}
	return party.LoadRoster(data)
}

func run(opts options) error {
	log, err := newLogger(opts.logLevel)
	if err != nil {
		return err
	}

	cfg, err := loadLayout(opts.configPath)
	if err != nil {
		return err
	}
	if cfg.Overflows() {
		log.Warn().Int("window_width", cfg.WindowWidth).Int("cell_width", cfg.CellWidth).
			Msg("window narrower than the character grid; cells will overlap the frame")
	}

	roster, err := loadRoster(opts.rosterPath)
	if err != nil {
		return err
	}

	var cues nameinput.CuePlayer = sfx.Mute{}
	if !opts.mute {
		cues = sfx.NewPlayer(log)
	}

	canvas := render.NewCanvas(render.NewFontAtlas(), glyphScale)
	scene, err := nameinput.NewScene(cfg, nameinput.Deps{
		Measure: canvas,
		Store:   roster,
		Cues:    cues,
		Log:     log,
	}, opts.actorID, opts.maxChars)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.ScreenWidth*zoom, cfg.ScreenHeight*zoom)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game := NewGame(cfg, scene, canvas)
	if err := ebiten.RunGame(game); err != nil {
		return err
	}

	name, err := roster.Name(opts.actorID)
	if err != nil {
		return err
	}
	log.Info().Int("actor", opts.actorID).Str("name", name).Stringer("result", scene.Result()).Msg("done")
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "nameinput:", err)
		os.Exit(1)
	}
}
