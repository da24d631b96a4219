package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BannerData drives the "GOAL" banner shown after a score
type BannerData struct {
	Tween  *gween.Tween // scale over time, nil when idle
	Scale  float32      // current scale
	Hold   int          // frames left at full size once the tween finishes
	Scorer int
	Active bool
}

var Banner = donburi.NewComponentType[BannerData]()
