package config

import (
	"image/color"
	"time"
)

// Config holds general game configuration
type Config struct {
	Width        int
	Height       int
	HeaderHeight int           // Scoreboard strip above the pitch
	TickInterval time.Duration // Logical step driven by the game loop
	TPS          int
}

// FieldHeight is the playable height below the header.
func (c *Config) FieldHeight() int {
	return c.Height - c.HeaderHeight
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Friction      float64 // Velocity multiplier applied every tick (< 1)
	StaticEpsilon float64 // Speed below which a body snaps to rest

	// Body-vs-body restitution
	PlayerRestitution float64 // player vs player
	BallRestitution   float64 // player vs ball
}

// BodyConfig contains per-body-kind values shared by players and the ball
type BodyConfig struct {
	Diameter        float64
	Mass            float64
	WallRestitution float64 // 1.0 = lossless reflection
}

// Radius is half the diameter.
func (b BodyConfig) Radius() float64 {
	return b.Diameter / 2
}

// ShotConfig contains drag-to-shoot tuning
type ShotConfig struct {
	MaxDragLength float64 // Pull-back vector is clamped to this length
	Power         float64 // Velocity per pixel of pull-back
}

// SpinConfig contains ball curl configuration
type SpinConfig struct {
	Strength float64 // Radians per tick at a full half-turn drag angle
	Decay    float64 // Spin multiplier applied every tick
	MinSpin  float64 // Spin below this is dropped
}

// UIConfig contains presentation values
type UIConfig struct {
	FieldColor      color.RGBA
	HeaderColor     color.RGBA
	LineColor       color.RGBA
	Player1Color    color.RGBA
	Player2Color    color.RGBA
	BallColor       color.RGBA
	GoalColor       color.RGBA
	AimColor        color.RGBA
	MeterBackground color.RGBA

	CenterCircleDiameter float64
	PenaltyAreaWidth     float64
	PenaltyAreaHeight    float64

	MeterWidth  float64
	MeterHeight float64
	MeterOffset float64 // Distance above the disk
	ArrowSize   float64

	BannerSeconds float32 // Goal banner animation length
	BannerScale   float32 // Peak banner scale
	BannerHold    int     // Frames the banner stays at full size

	TeamNames [2]string
}

// MessageConfig contains the toast shown for mode changes
type MessageConfig struct {
	DisplayDuration int        // Frames to display a message
	BoxPadding      float64    // Padding inside message box
	BoxColor        color.RGBA // Semi-transparent background color
	TextColor       color.RGBA
	TopMargin       float64 // Distance below the header
}

// PauseConfig contains pause overlay configuration
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Title        string
	Hint         string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	DrawObjects bool // Outline resolv objects
	StartSpin   bool // Start with spin mode on
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player BodyConfig
var Ball BodyConfig
var Shot ShotConfig
var Spin SpinConfig
var UI UIConfig
var Message MessageConfig
var Pause PauseConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	DarkGreen    = color.RGBA{R: 34, G: 139, B: 34, A: 255}
	DarkGrey     = color.RGBA{R: 48, G: 48, B: 48, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 100}
)

func init() {
	C = &Config{
		Width:        1000,
		Height:       600,
		HeaderHeight: 80,
		TickInterval: 16 * time.Millisecond,
		TPS:          60,
	}

	Physics = PhysicsConfig{
		Friction:          0.98,
		StaticEpsilon:     0.1,
		PlayerRestitution: 0.8,
		BallRestitution:   0.9,
	}

	Player = BodyConfig{
		Diameter:        40,
		Mass:            2,
		WallRestitution: 0.7,
	}

	Ball = BodyConfig{
		Diameter:        20,
		Mass:            1,
		WallRestitution: 1.0,
	}

	Shot = ShotConfig{
		MaxDragLength: 100,
		Power:         0.2,
	}

	Spin = SpinConfig{
		Strength: 0.05,
		Decay:    0.95,
		MinSpin:  0.001,
	}

	UI = UIConfig{
		FieldColor:      DarkGreen,
		HeaderColor:     DarkGrey,
		LineColor:       White,
		Player1Color:    Red,
		Player2Color:    Blue,
		BallColor:       White,
		GoalColor:       Yellow,
		AimColor:        Red,
		MeterBackground: BlackOverlay,

		CenterCircleDiameter: 120,
		PenaltyAreaWidth:     150,
		PenaltyAreaHeight:    300,

		MeterWidth:  50,
		MeterHeight: 5,
		MeterOffset: 15,
		ArrowSize:   10,

		BannerSeconds: 1.2,
		BannerScale:   3,
		BannerHold:    45,

		TeamNames: [2]string{"Team 1", "Team 2"},
	}

	Message = MessageConfig{
		DisplayDuration: 90, // 1.5 seconds at 60fps
		BoxPadding:      8.0,
		BoxColor:        color.RGBA{R: 0, G: 0, B: 0, A: 200},
		TextColor:       White,
		TopMargin:       10.0,
	}

	Pause = PauseConfig{
		OverlayColor: color.RGBA{R: 0, G: 0, B: 0, A: 150},
		TextColor:    White,
		Title:        "PAUSED",
		Hint:         "P / Esc: Resume   S: Spin   F1: Debug",
	}
}
