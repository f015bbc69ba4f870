package window

import (
	"image/color"

	"github.com/vovakirdan/rad-runner/internal/core"
)

// background is the playfield color; Clear fills the screen with it.
var background = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// palette maps core colors to screen colors. ColorDefault is the text color.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {A: 0xff},
	core.ColorRed:           {R: 0xff, A: 0xff},
	core.ColorGreen:         {G: 0x80, A: 0xff},
	core.ColorYellow:        {R: 0xff, G: 0xd7, A: 0xff},
	core.ColorBlue:          {B: 0xff, A: 0xff},
	core.ColorMagenta:       {R: 0xff, B: 0xff, A: 0xff},
	core.ColorCyan:          {G: 0xbf, B: 0xbf, A: 0xff},
	core.ColorWhite:         {R: 0xee, G: 0xee, B: 0xee, A: 0xff},
	core.ColorBrightRed:     {R: 0xff, G: 0x55, B: 0x55, A: 0xff},
	core.ColorBrightGreen:   {G: 0xd7, A: 0xff},
	core.ColorBrightYellow:  {R: 0xff, G: 0xff, B: 0x55, A: 0xff},
	core.ColorBrightBlue:    {R: 0x55, G: 0x55, B: 0xff, A: 0xff},
	core.ColorBrightMagenta: {R: 0xff, G: 0x55, B: 0xff, A: 0xff},
	core.ColorBrightCyan:    {R: 0x55, G: 0xff, B: 0xff, A: 0xff},
	core.ColorBrightWhite:   {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	core.ColorOrange:        {R: 0xff, G: 0xa5, A: 0xff},
	core.ColorGray:          {R: 0x8a, G: 0x8a, B: 0x8a, A: 0xff},
}

// rgba returns the screen color for c, falling back to the text color.
func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}
