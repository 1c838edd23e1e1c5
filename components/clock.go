package components

import (
	"github.com/yohamta/donburi"
)

// ClockData tracks gameplay time. It only advances while unpaused, so timers
// shown on the HUD freeze with the game.
type ClockData struct {
	Seconds float64
	Ticks   int64
}

var Clock = donburi.NewComponentType[ClockData]()
