package assets

import (
	"errors"
	"testing"
	"testing/fstest"

	cfg "github.com/automoto/soccer-stars/config"
)

func TestMustLoadPitchMatchesConfig(t *testing.T) {
	p := MustLoadPitch()

	if p.Width != float64(cfg.C.Width) || p.Height != float64(cfg.C.Height) {
		t.Fatalf("pitch size %vx%v, config %dx%d", p.Width, p.Height, cfg.C.Width, cfg.C.Height)
	}
	if p.HeaderHeight != float64(cfg.C.HeaderHeight) {
		t.Fatalf("header height %v, config %d", p.HeaderHeight, cfg.C.HeaderHeight)
	}

	center := p.FieldCenter()
	if center.X != 500 || center.Y != 340 {
		t.Errorf("field center = %+v, want (500, 340)", center)
	}
	if p.BallSpawn != center {
		t.Errorf("ball spawn %+v is not the field center %+v", p.BallSpawn, center)
	}
	if p.PlayerSpawns[0].X != 120 || p.PlayerSpawns[0].Y != 340 {
		t.Errorf("player 1 spawn = %+v", p.PlayerSpawns[0])
	}
	if p.PlayerSpawns[1].X != 880 || p.PlayerSpawns[1].Y != 340 {
		t.Errorf("player 2 spawn = %+v", p.PlayerSpawns[1])
	}
}

func TestMustLoadPitchGoals(t *testing.T) {
	p := MustLoadPitch()
	if len(p.Goals) != 2 {
		t.Fatalf("got %d goals, want 2", len(p.Goals))
	}

	tests := []struct {
		name   string
		side   cfg.SideID
		x      float64
		scorer int
	}{
		{"Left goal scores for player 2", cfg.SideLeft, 0, 1},
		{"Right goal scores for player 1", cfg.SideRight, 980, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var found *GoalSpawn
			for i := range p.Goals {
				if p.Goals[i].Side == tt.side {
					found = &p.Goals[i]
				}
			}
			if found == nil {
				t.Fatalf("no %s goal", tt.side)
			}
			if found.X != tt.x || found.Y != 280 || found.Width != 20 || found.Height != 120 {
				t.Errorf("goal rect = %+v", *found)
			}
			if found.Scorer != tt.scorer {
				t.Errorf("scorer = %d, want %d", found.Scorer, tt.scorer)
			}
		})
	}
}

func TestLoadPitchRejectsMalformedMaps(t *testing.T) {
	const mapOpen = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="20" tileheight="20" infinite="0">
`
	const header = mapOpen + ` <properties>
  <property name="headerHeight" type="int" value="20"/>
 </properties>
`
	const players = ` <objectgroup id="1" name="PlayerSpawn">
  <object id="1" x="20" y="100"><properties><property name="playerIndex" type="int" value="0"/></properties><point/></object>
  <object id="2" x="180" y="100"><properties><property name="playerIndex" type="int" value="1"/></properties><point/></object>
 </objectgroup>
`
	const ball = ` <objectgroup id="2" name="BallSpawn">
  <object id="3" x="100" y="100"><point/></object>
 </objectgroup>
`
	const badScorer = ` <objectgroup id="3" name="Goals">
  <object id="4" name="LeftGoal" x="0" y="80" width="20" height="40"><properties><property name="side" value="left"/><property name="scorer" type="int" value="2"/></properties></object>
 </objectgroup>
`

	tests := []struct {
		name string
		body string
		want error
	}{
		{"No properties", mapOpen + players + ball, ErrMissingHeaderHeight},
		{"No players", header + ball, ErrMissingPlayerSpawn},
		{"No ball", header + players, ErrMissingBallSpawn},
		{"No goals", header + players + ball, ErrMissingGoals},
		{"Scorer out of range", header + players + ball + badScorer, ErrBadScorer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{
				"bad.tmx": &fstest.MapFile{Data: []byte(tt.body + "</map>\n")},
			}
			p, err := LoadPitch(fsys, "bad.tmx")
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if p != nil {
				t.Errorf("pitch = %+v, want nil", p)
			}
		})
	}
}
