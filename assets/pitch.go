package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	cfg "github.com/automoto/soccer-stars/config"
	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

var (
	//go:embed all:pitch
	assetFS embed.FS
)

// DefaultPitchPath is the embedded pitch layout.
const DefaultPitchPath = "pitch/pitch.tmx"

// Pitch is the static layout of a match: field size, spawns and goal mouths.
// Positions are disk centers.
type Pitch struct {
	Width        float64
	Height       float64
	HeaderHeight float64
	PlayerSpawns [2]math.Vec2
	BallSpawn    math.Vec2
	Goals        []GoalSpawn
	Name         string
}

// GoalSpawn is a goal sensor rectangle read from the map.
type GoalSpawn struct {
	X, Y, Width, Height float64
	Side                cfg.SideID
	Scorer              int // player index credited when the ball enters
}

// FieldCenter returns the middle of the playable area below the header.
func (p *Pitch) FieldCenter() math.Vec2 {
	return math.Vec2{
		X: p.Width / 2,
		Y: p.HeaderHeight + (p.Height-p.HeaderHeight)/2,
	}
}

// FS is the embedded asset tree.
func FS() fs.FS {
	return assetFS
}

// MustLoadPitch loads the embedded pitch and panics if it is malformed.
func MustLoadPitch() *Pitch {
	p, err := LoadPitch(assetFS, DefaultPitchPath)
	if err != nil {
		panic(err)
	}
	return p
}

// LoadPitch parses a Tiled map holding PlayerSpawn, BallSpawn and Goals object groups.
func LoadPitch(fsys fs.FS, path string) (*Pitch, error) {
	pitchMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load pitch %s: %w", path, err)
	}

	var headerHeight int
	if pitchMap.Properties != nil {
		headerHeight = pitchMap.Properties.GetInt("headerHeight")
	}
	if headerHeight <= 0 {
		return nil, fmt.Errorf("pitch %s: %w", path, ErrMissingHeaderHeight)
	}

	p := &Pitch{
		Width:        float64(pitchMap.Width * pitchMap.TileWidth),
		Height:       float64(pitchMap.Height * pitchMap.TileHeight),
		HeaderHeight: float64(headerHeight),
		Name:         path,
	}

	var seenPlayers [2]bool
	seenBall := false

	for _, og := range pitchMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			for _, o := range og.Objects {
				idx := o.Properties.GetInt("playerIndex")
				if idx < 0 || idx > 1 {
					return nil, fmt.Errorf("pitch %s: player spawn %q has index %d", path, o.Name, idx)
				}
				p.PlayerSpawns[idx] = math.Vec2{X: o.X, Y: o.Y}
				seenPlayers[idx] = true
			}
		case "BallSpawn":
			for _, o := range og.Objects {
				p.BallSpawn = math.Vec2{X: o.X, Y: o.Y}
				seenBall = true
			}
		case "Goals":
			for _, o := range og.Objects {
				scorer := o.Properties.GetInt("scorer")
				if scorer < 0 || scorer > 1 {
					return nil, fmt.Errorf("pitch %s: goal %q has scorer %d: %w", path, o.Name, scorer, ErrBadScorer)
				}
				side := cfg.SideLeft
				if o.Properties.GetString("side") == "right" {
					side = cfg.SideRight
				}
				p.Goals = append(p.Goals, GoalSpawn{
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
					Side:   side,
					Scorer: scorer,
				})
			}
		}
	}

	switch {
	case !seenPlayers[0] || !seenPlayers[1]:
		return nil, fmt.Errorf("pitch %s: %w", path, ErrMissingPlayerSpawn)
	case !seenBall:
		return nil, fmt.Errorf("pitch %s: %w", path, ErrMissingBallSpawn)
	case len(p.Goals) == 0:
		return nil, fmt.Errorf("pitch %s: %w", path, ErrMissingGoals)
	}

	return p, nil
}

var (
	ErrMissingHeaderHeight = errors.New("map property headerHeight must be a positive int")
	ErrBadScorer           = errors.New("goal scorer must be 0 or 1")
	ErrMissingPlayerSpawn  = errors.New("both player spawns are required")
	ErrMissingBallSpawn    = errors.New("ball spawn is required")
	ErrMissingGoals        = errors.New("at least one goal is required")
)
