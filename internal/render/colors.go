package render

import (
	"emoji-city/internal/entity"

	"github.com/gdamore/tcell/v2"
)

// Emoji are rendered by the terminal with their own colors; kind colors are
// used for text (pool rows, legends) and the sprite background tint.
var kindColors = [...]tcell.Color{
	entity.Building: tcell.NewRGBColor(120, 170, 255),
	entity.Vehicle:  tcell.NewRGBColor(255, 200, 50),
	entity.Citizen:  tcell.NewRGBColor(140, 230, 140),
}

// KindColor returns the text color for kind k.
func KindColor(k entity.Kind) tcell.Color {
	if int(k) < len(kindColors) {
		return kindColors[k]
	}
	return tcell.ColorWhite
}

var (
	groundStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen).Background(tcell.ColorBlack)
	frameStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	titleStyle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(180, 100, 255)).Bold(true)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	msgStyle    = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	buttonStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.NewRGBColor(180, 100, 255))
	moneyStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)
