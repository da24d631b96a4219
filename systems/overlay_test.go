package systems

import (
	"testing"

	cfg "github.com/automoto/soccer-stars/config"
)

func TestTogglePause(t *testing.T) {
	p := newTestPitch()

	if IsPaused(p.w) {
		t.Fatal("new match should not start paused")
	}
	if !TogglePause(p.w) || !IsPaused(p.w) {
		t.Fatal("first toggle should pause")
	}
	if TogglePause(p.w) || IsPaused(p.w) {
		t.Fatal("second toggle should resume")
	}
}

func TestTogglePauseDropsDrag(t *testing.T) {
	p := newTestPitch()
	Press(p.w, testSpawns[0])
	if !p.drag().Active {
		t.Fatal("press on the active player should start a drag")
	}

	TogglePause(p.w)

	if d := p.drag(); d.Active || d.Selected != nil {
		t.Errorf("drag survived pause: %+v", *d)
	}
}

func TestMessageExpires(t *testing.T) {
	p := newTestPitch()
	ShowMessage(p.w, "Spin: ON")

	for i := 0; i < cfg.Message.DisplayDuration-1; i++ {
		UpdateMessage(p.w)
	}
	if got := GetOrCreateMessageState(p.w).Text; got != "Spin: ON" {
		t.Fatalf("message gone early: %q", got)
	}

	UpdateMessage(p.w)
	if got := GetOrCreateMessageState(p.w).Text; got != "" {
		t.Errorf("message = %q after its duration, want empty", got)
	}
}

func TestShowMessageRestartsTimer(t *testing.T) {
	p := newTestPitch()
	ShowMessage(p.w, "first")
	UpdateMessage(p.w)
	UpdateMessage(p.w)

	ShowMessage(p.w, "second")

	state := GetOrCreateMessageState(p.w)
	if state.Text != "second" || state.DisplayTimer != cfg.Message.DisplayDuration {
		t.Errorf("state = %+v", state)
	}
}
