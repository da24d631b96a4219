package systems

import (
	"github.com/automoto/soccer-stars/components"
	cfg "github.com/automoto/soccer-stars/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// StartBanner (re)starts the goal banner for scorer.
func StartBanner(w donburi.World, scorer int) {
	matchEntry := getMatch(w)
	if matchEntry == nil {
		return
	}
	banner := components.Banner.Get(matchEntry)
	banner.Tween = gween.New(0, cfg.UI.BannerScale, cfg.UI.BannerSeconds, ease.OutBack)
	banner.Scale = 0
	banner.Hold = cfg.UI.BannerHold
	banner.Scorer = scorer
	banner.Active = true
}

// UpdateEffects advances the goal banner by one tick.
func UpdateEffects(w donburi.World) {
	matchEntry := getMatch(w)
	if matchEntry == nil {
		return
	}
	banner := components.Banner.Get(matchEntry)
	if !banner.Active {
		return
	}

	if banner.Tween != nil {
		scale, finished := banner.Tween.Update(float32(cfg.C.TickInterval.Seconds()))
		banner.Scale = scale
		if finished {
			banner.Tween = nil
		}
		return
	}

	banner.Hold--
	if banner.Hold <= 0 {
		banner.Active = false
		banner.Scale = 0
	}
}
