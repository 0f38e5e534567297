// SPDX-License-Identifier: MIT

package main

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/hexrender/geom"
	"github.com/katalvlaran/hexrender/patternrender"
)

// cellAspect is how many vertical layout units one terminal row covers
// (cells are roughly twice as tall as wide).
const cellAspect = 2.0

var (
	styleLine  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(120, 200, 255))
	styleDot   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStart = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleText  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// toCell maps a layout point to a terminal cell.
func toCell(p geom.Vec2) (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y / cellAspect))
}

// drawFrame paints one frame; the screen must already be cleared.
func drawFrame(screen tcell.Screen, f patternrender.Frame) {
	for i := 1; i < len(f.Zappy); i++ {
		drawLine(screen, f.Zappy[i-1], f.Zappy[i])
	}
	for _, d := range f.Dots {
		x, y := toCell(d)
		screen.SetContent(x, y, '·', nil, styleDot)
	}
	if len(f.Zappy) > 0 {
		x, y := toCell(f.Start)
		screen.SetContent(x, y, '●', nil, styleStart)
	}
}

// drawLine is a DDA walk between two layout points.
func drawLine(screen tcell.Screen, a, b geom.Vec2) {
	x0, y0 := toCell(a)
	x1, y1 := toCell(b)
	steps := max(abs(x1-x0), abs(y1-y0))
	if steps == 0 {
		screen.SetContent(x0, y0, '█', nil, styleLine)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Round(float64(x0) + t*float64(x1-x0)))
		y := int(math.Round(float64(y0) + t*float64(y1-y0)))
		screen.SetContent(x, y, '█', nil, styleLine)
	}
}

func drawText(screen tcell.Screen, x, y int, text string) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, styleText)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
