// Command simulate plays scripted shots against the headless match and logs
// where every shot leaves the bodies and the score.
package main

import (
	"flag"
	"log"
	"math"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/soccer-stars/assets"
	cfg "github.com/automoto/soccer-stars/config"
	"github.com/automoto/soccer-stars/game"
)

func main() {
	shots := flag.Int("shots", 10, "Number of shots to play")
	power := flag.Float64("power", 1.0, "Pull-back as a fraction of the maximum drag (0-1)")
	angle := flag.Float64("angle", 0, "Shot direction in degrees for player 1, mirrored for player 2")
	maxTicks := flag.Int("max-ticks", 5000, "Tick limit per shot")
	realtime := flag.Bool("realtime", false, "Pace steps at the game's tick interval")
	spin := flag.Bool("spin", false, "Shoot with spin mode on")
	flag.Parse()

	pitch, err := assets.LoadPitch(assets.FS(), assets.DefaultPitchPath)
	if err != nil {
		log.Fatalf("Failed to load pitch: %v", err)
	}

	if *realtime {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			log.Println("Interrupted")
			os.Exit(1)
		}()
	}

	match := game.NewMatch(pitch)
	if *spin {
		match.ToggleSpin()
	}

	log.Printf("Simulating %d shots on %s (power %.2f, angle %.0f°)", *shots, pitch.Name, *power, *angle)

	for i := 0; i < *shots; i++ {
		s := match.Snapshot()
		shooter := s.Players[s.ActivePlayer]

		dir := *angle * math.Pi / 180
		if s.ActivePlayer == 1 {
			dir = math.Pi - dir
		}
		pull := *power * cfg.Shot.MaxDragLength
		rx := shooter.Center.X - math.Cos(dir)*pull
		ry := shooter.Center.Y - math.Sin(dir)*pull

		match.Press(shooter.Center.X, shooter.Center.Y)
		match.Drag(rx, ry)
		match.Release(rx, ry)

		ticks := runShot(match, *maxTicks, *realtime)

		s = match.Snapshot()
		log.Printf("shot %d by %s: %d ticks, ball at (%.1f, %.1f), score %d - %d, next %s",
			i+1, cfg.UI.TeamNames[shooter.Index], ticks, s.Ball.Center.X, s.Ball.Center.Y,
			s.Scores[0], s.Scores[1], cfg.UI.TeamNames[s.ActivePlayer])
	}

	s := match.Snapshot()
	leader := "nobody"
	if i := match.Leader(); i >= 0 {
		leader = cfg.UI.TeamNames[i]
	}
	log.Printf("Final score %d - %d after %d ticks, %s leads", s.Scores[0], s.Scores[1], match.Ticks(), leader)
}

// runShot steps until the shot is over and returns the ticks it took.
func runShot(match *game.Match, maxTicks int, realtime bool) int {
	if !realtime {
		return match.RunUntilRest(maxTicks)
	}

	start := match.Ticks()
	loop := game.NewLoop(match, cfg.C.TickInterval, func(m *game.Match) bool {
		return !m.Snapshot().AllStatic && m.Ticks()-start < maxTicks
	})

	loop.Run()
	return match.Ticks() - start
}
