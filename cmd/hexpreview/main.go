// SPDX-License-Identifier: MIT

// Command hexpreview animates a hex pattern's zappy stroke in the terminal.
//
//	hexpreview -pattern qaqwede -dir EAST -preset storm
//
// Keys: +/- change hops, ESC or q quits. Resizing refits the pattern.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/hexrender/hexpattern"
	"github.com/katalvlaran/hexrender/patternrender"
	rs "github.com/katalvlaran/hexrender/rendersettings"
)

const (
	frameInterval = 33 * time.Millisecond
	statusRows    = 1
)

type preview struct {
	screen   tcell.Screen
	renderer *patternrender.Renderer
	pattern  hexpattern.Pattern
	base     rs.Settings // preset, before fitting to the screen
	fitted   rs.Settings // base fitted to the current screen; replaced, never mutated
	seed     float64
	tick     float64
}

func main() {
	var (
		sig         = flag.String("pattern", "qaqwede", "angle signature (letters wedsaq)")
		dirName     = flag.String("dir", "EAST", "start direction, e.g. NORTH_EAST")
		presetName  = flag.String("preset", rs.DefaultID, "preset name")
		presetsPath = flag.String("presets", "", "optional YAML presets file")
		seed        = flag.Float64("seed", 1, "zappy seed")
		logPath     = flag.String("log", "", "optional log file")
	)
	flag.Parse()

	logger := log.New(io.Discard, "", 0)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = log.New(f, "hexpreview ", log.LstdFlags)
	}

	base, pattern, err := setup(*sig, *dirName, *presetName, *presetsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hexpreview: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	p := &preview{
		screen:   screen,
		renderer: patternrender.New(patternrender.WithLogger(logger), patternrender.WithCacheCapacity(64)),
		pattern:  pattern,
		base:     base,
		seed:     *seed,
	}
	p.refit()
	logger.Printf("preview %v with preset %q (id %s)", pattern, *presetName, base.ID())
	p.run(logger)
}

// setup resolves the pattern and preset from the command line.
func setup(sig, dirName, presetName, presetsPath string) (rs.Settings, hexpattern.Pattern, error) {
	dir, err := hexpattern.ParseHexDir(dirName)
	if err != nil {
		return rs.Settings{}, hexpattern.Pattern{}, err
	}
	pattern, err := hexpattern.FromAngles(sig, dir)
	if err != nil {
		return rs.Settings{}, hexpattern.Pattern{}, err
	}

	reg := rs.NewRegistry()
	builtinPresets(reg)
	if presetsPath != "" {
		f, err := os.Open(presetsPath)
		if err != nil {
			return rs.Settings{}, hexpattern.Pattern{}, err
		}
		defer f.Close()
		if err = loadPresets(f, rs.Default(), reg); err != nil {
			return rs.Settings{}, hexpattern.Pattern{}, err
		}
	}
	base, err := reg.Lookup(presetName)
	if err != nil {
		return rs.Settings{}, hexpattern.Pattern{}, fmt.Errorf("%w (known: %v)", err, reg.Names())
	}

	return base, pattern, nil
}

// refit derives the screen-fitted settings; called on start, resize and tuning.
func (p *preview) refit() {
	w, h := p.screen.Size()
	p.fitted = p.base.WithSizings(
		rs.FitTo(rs.FitBoth),
		rs.SpaceWidth(float64(w)),
		rs.SpaceHeight(float64(h-statusRows)*cellAspect),
		rs.HPadding(1),
		rs.VPadding(cellAspect),
	)
}

func (p *preview) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case '+':
				p.base = p.base.WithZappySettings(rs.Hops(p.base.Hops() + 1))
				p.refit()
			case '-':
				p.base = p.base.WithZappySettings(rs.Hops(max(p.base.Hops()-1, 0)))
				p.refit()
			}
		}
	case *tcell.EventResize:
		p.screen.Sync()
		p.refit()
	}

	return true
}

func (p *preview) run(logger *log.Logger) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- p.screen.PollEvent()
		}
	}()

	ctx := context.Background()
	for {
		select {
		case ev := <-eventChan:
			if !p.handle(ev) {
				return
			}

		case <-ticker.C:
			p.tick++
			f, err := p.renderer.Frame(ctx, p.fitted, &p.pattern, p.seed, p.tick)
			if err != nil {
				logger.Printf("frame: %v", err)
				continue
			}
			p.screen.Clear()
			drawFrame(p.screen, f)
			st := p.renderer.Stats()
			drawText(p.screen, 0, 0, fmt.Sprintf("%v  hops=%d  scale=%.2f  cache hits=%d misses=%d",
				p.pattern, p.fitted.Hops(), f.Geometry.Layout.Scale, st.Hits, st.Misses))
			p.screen.Show()
		}
	}
}
