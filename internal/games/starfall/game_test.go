package starfall

import (
	"testing"

	"github.com/avolkov/starfall/internal/core"
	"github.com/avolkov/starfall/internal/registry"
)

func testRuntimeConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

// scriptedFrame produces a repeatable input pattern: staggered lane fire plus
// periodic ability activations.
func scriptedFrame(tick int) core.InputFrame {
	in := core.NewInputFrame()
	if tick%7 == 0 {
		in.Set(core.LaneAction(tick / 7 % core.LaneCount))
	}
	if tick%97 == 0 {
		in.Set(core.ActionPowerClear)
	}
	if tick%131 == 0 {
		in.Set(core.ActionPowerHeal)
	}
	if tick%151 == 0 {
		in.Set(core.ActionPowerReset)
	}
	return in
}

func TestGameDeterminism(t *testing.T) {
	a := New()
	b := New()
	a.Reset(testRuntimeConfig(12345))
	b.Reset(testRuntimeConfig(12345))

	for tick := 0; tick < 1200; tick++ {
		a.Step(scriptedFrame(tick))
		b.Step(scriptedFrame(tick))

		if tick%100 == 0 {
			sa, sb := a.Snapshot(), b.Snapshot()
			if sa.Hash() != sb.Hash() {
				t.Fatalf("Diverged at tick %d: %d != %d", tick, sa.Hash(), sb.Hash())
			}
		}
	}

	sa, sb := a.Snapshot(), b.Snapshot()
	if sa.Hash() != sb.Hash() {
		t.Errorf("Final snapshots differ: %d != %d", sa.Hash(), sb.Hash())
	}
}

func TestGameSeedsDiverge(t *testing.T) {
	a := New()
	b := New()
	a.Reset(testRuntimeConfig(1))
	b.Reset(testRuntimeConfig(2))

	for tick := 0; tick < 600; tick++ {
		a.Step(core.NewInputFrame())
		b.Step(core.NewInputFrame())
	}

	sa, sb := a.Snapshot(), b.Snapshot()
	if sa.Hash() == sb.Hash() {
		t.Error("Different seeds should produce different asteroid streams")
	}
}

func TestGameResetAction(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(7))

	for tick := 0; tick < 300; tick++ {
		g.Step(scriptedFrame(tick))
	}
	g.World().health = 3

	in := core.NewInputFrame()
	in.Set(core.ActionReset)
	res := g.Step(in)

	if res.State.Score != 0 {
		t.Errorf("Score after reset = %d, expected 0", res.State.Score)
	}
	if res.State.Health != g.World().Config().Gameplay.MaxHealth {
		t.Errorf("Health after reset = %d, expected max", res.State.Health)
	}
	if res.State.Depleted || res.State.Paused {
		t.Error("Reset should clear depletion and pause")
	}

	snap := g.Snapshot()
	if snap.Tick != 0 || snap.AsteroidCount != 0 || snap.LaserCount != 0 {
		t.Errorf("Reset should rewind the run: %+v", snap)
	}

	// Reset with the same seed replays the same run
	fresh := New()
	fresh.Reset(testRuntimeConfig(7))
	for tick := 0; tick < 300; tick++ {
		g.Step(scriptedFrame(tick))
		fresh.Step(scriptedFrame(tick))
	}
	ga, fa := g.Snapshot(), fresh.Snapshot()
	if ga.Hash() != fa.Hash() {
		t.Error("A reset game should replay identically to a fresh game with the same seed")
	}
}

func TestGamePauseFreezesSimulation(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(3))

	for tick := 0; tick < 60; tick++ {
		g.Step(core.NewInputFrame())
	}

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	res := g.Step(pause)
	if !res.State.Paused {
		t.Fatal("Pause action should set the paused flag")
	}

	frozen := g.Snapshot()
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}
	after := g.Snapshot()
	if frozen.Hash() != after.Hash() {
		t.Error("World must not advance while paused")
	}

	res = g.Step(pause) // toggle off
	if res.State.Paused {
		t.Fatal("Second pause action should unpause")
	}
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}
	resumed := g.Snapshot()
	if resumed.Hash() == frozen.Hash() {
		t.Error("World should advance again after unpausing")
	}
}

func TestGameDepletionIsNotTerminal(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(5))
	w := g.World()
	w.health = 1
	w.asteroids = append(w.asteroids, Asteroid{
		Lane: 0, X: w.cfg.Field.LaneCenter(0), Y: w.cfg.Field.Height + 100, Radius: 15, Speed: 100,
	})

	res := g.Step(core.NewInputFrame())
	if !res.State.Depleted || res.State.Health != 0 {
		t.Fatalf("Expected depletion, got %+v", res.State)
	}

	// Inputs keep working at zero health
	fire := core.NewInputFrame()
	fire.Set(core.LaneAction(4))
	g.Step(fire)
	if len(w.Lasers()) != 1 {
		t.Error("Firing should still work after depletion")
	}
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists("starfall") {
		t.Fatal("starfall should self-register")
	}
	g, err := registry.Create("starfall")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "starfall" || g.Title() != "Starfall" {
		t.Errorf("Unexpected identity: %s / %s", g.ID(), g.Title())
	}
}

func TestGameDefaultsTickRate(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

	if g.dt != 1.0/60.0 {
		t.Errorf("dt = %v, expected 1/60 fallback", g.dt)
	}
}

func TestGameRenderFitsScreen(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(11))
	for tick := 0; tick < 400; tick++ {
		g.Step(scriptedFrame(tick))
	}

	s := core.NewScreen(80, 24)
	g.Render(s) // must not panic or write out of bounds

	if s.Width() != 80 || s.Height() != 24 {
		t.Error("Render must not resize the screen")
	}
}
