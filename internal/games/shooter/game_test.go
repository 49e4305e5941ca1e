package shooter

import (
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/woodriveer/duduInSpace-sub000/internal/core"
	"github.com/woodriveer/duduInSpace-sub000/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

// newTestGame starts a game that only sees the embedded default configs.
func newTestGame(t *testing.T, g *Game, prefs core.Prefs) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	g.logger = testLogger()
	if prefs != nil {
		g.SetPrefs(prefs)
	}
	g.Reset(testRuntime(42))
	if g.Err() != nil {
		t.Fatalf("Reset() failed: %v", g.Err())
	}
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// killPlayer puts an enemy on a one-health ship and steps once.
func killPlayer(t *testing.T, g *Game) core.StepResult {
	t.Helper()
	w := g.World()
	w.player.Health = 1
	w.enemies = append(w.enemies, testEnemy(w.newID(), w.player.X, w.player.Y, 5))
	res := g.Step(core.NewInputFrame())
	if g.state != StateGameOver {
		t.Fatalf("state = %s, expected gameover", g.state)
	}
	return res
}

func TestGameRegistered(t *testing.T) {
	tests := []struct {
		id    string
		title string
	}{
		{"shooter", "Dudu in Space"},
		{"shooter_endless", "Dudu in Space (Endless)"},
	}

	for _, tt := range tests {
		g, err := registry.Create(tt.id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", tt.id, err)
		}
		if g.ID() != tt.id {
			t.Errorf("ID() = %q, expected %q", g.ID(), tt.id)
		}
		if g.Title() != tt.title {
			t.Errorf("Title() = %q, expected %q", g.Title(), tt.title)
		}
		if _, ok := g.(registry.PrefsUser); !ok {
			t.Errorf("%s should accept prefs", tt.id)
		}
		if _, ok := g.(registry.RunReporter); !ok {
			t.Errorf("%s should report runs", tt.id)
		}
	}
}

func TestGameStepFiresAndPauses(t *testing.T) {
	g := newTestGame(t, New(), nil)

	res := g.Step(input(core.ActionFire))
	if res.State.GameOver || res.State.Paused {
		t.Fatalf("unexpected state %+v", res.State)
	}
	if len(g.World().Projectiles()) != 1 {
		t.Errorf("projectiles = %d, expected 1", len(g.World().Projectiles()))
	}

	g.Step(input(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	tick := g.World().Tick()
	for range 10 {
		g.Step(input(core.ActionFire))
	}
	if g.World().Tick() != tick {
		t.Error("world advanced while paused")
	}

	g.Step(input(core.ActionPause))
	if g.State().Paused {
		t.Error("expected resume")
	}
}

func TestGameMovesPlayer(t *testing.T) {
	g := newTestGame(t, New(), nil)
	x := g.World().Player().X

	for range 10 {
		g.Step(input(core.ActionLeft))
	}
	if g.World().Player().X >= x {
		t.Errorf("player x = %v, expected left of %v", g.World().Player().X, x)
	}
}

func TestGamePersistsCoinsOnce(t *testing.T) {
	prefs := core.NewMemoryPrefs()
	g := newTestGame(t, New(), prefs)

	killEnemies(g.World(), 3)
	res := killPlayer(t, g)
	if !res.State.GameOver {
		t.Error("StepResult should report game over")
	}
	if !slices.Contains(res.Events, "GAME OVER") {
		t.Errorf("events = %v, expected GAME OVER", res.Events)
	}
	if got := prefs.Int(PrefCoins, 0); got != 3 {
		t.Fatalf("coins = %d, expected 3", got)
	}

	// Retrying the level keeps run coins without depositing them again
	g.Step(input(core.ActionConfirm))
	if g.state != StatePlaying {
		t.Fatalf("state = %s after retry, expected playing", g.state)
	}
	if g.State().Score != 0 {
		t.Errorf("score = %d after retry, expected 0", g.State().Score)
	}
	killEnemies(g.World(), 1)
	killPlayer(t, g)
	if got := prefs.Int(PrefCoins, 0); got != 4 {
		t.Errorf("coins = %d after second death, expected 4", got)
	}

	// A full restart is a new run
	g.Step(input(core.ActionRestart))
	if g.state != StatePlaying || g.World().Stats().Coins != 0 {
		t.Errorf("restart should begin a fresh run, state %s", g.state)
	}
	killPlayer(t, g)
	if got := prefs.Int(PrefCoins, 0); got != 4 {
		t.Errorf("coins = %d after empty run, expected 4", got)
	}
}

func TestGameEndlessIgnoresConfirm(t *testing.T) {
	g := newTestGame(t, NewEndless(), nil)
	killPlayer(t, g)

	g.Step(input(core.ActionConfirm))
	if g.state != StateGameOver {
		t.Errorf("state = %s, endless mode has no level retry", g.state)
	}
}

func TestGameMarksCompletedLevels(t *testing.T) {
	prefs := core.NewMemoryPrefs()
	g := newTestGame(t, New(), prefs)
	w := g.World()

	killEnemies(w, w.Progression().Threshold())
	killBoss(t, w)
	killPlayer(t, g)

	if !LevelCompleted(prefs, 1) {
		t.Error("level 1 should be marked completed")
	}
	if got := prefs.Int(PrefBestLevel, 0); got != 1 {
		t.Errorf("best level = %d, expected 1", got)
	}

	sum := g.RunSummary()
	if sum.LevelReached != 1 || sum.Kills != w.Progression().Threshold() || sum.Won {
		t.Errorf("RunSummary() = %+v", sum)
	}
}

func TestGameUsesPurchasedUpgrades(t *testing.T) {
	prefs := core.NewMemoryPrefs()
	_ = prefs.SetInt(UpgradeDamage.PrefKey(), 2)
	g := newTestGame(t, New(), prefs)

	if got := g.World().Player().Stats.Damage; got != 3 {
		t.Errorf("damage = %d, expected 3 with two damage upgrades", got)
	}
}

func TestGameScreenTooSmall(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	g := New()
	g.logger = testLogger()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60})

	g.Step(input(core.ActionFire))
	if g.World().Tick() != 0 {
		t.Error("world should not advance on a small screen")
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Errorf("expected a too-small notice, got:\n%s", screen.String())
	}
}

func TestGameConfigError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	t.Cleanup(func() { SetConfigPath("") })

	if _, err := Load(); err == nil {
		t.Fatal("Load() with a missing config should fail")
	}

	g := New()
	g.logger = testLogger()
	g.Reset(testRuntime(1))

	if g.Err() == nil || g.World() != nil {
		t.Fatal("Reset() should record the error and leave no world")
	}
	if !g.State().GameOver {
		t.Error("a failed game should report game over")
	}
	res := g.Step(input(core.ActionFire))
	if !res.State.GameOver {
		t.Error("Step() on a failed game should report game over")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Configuration error") {
		t.Errorf("expected an error screen, got:\n%s", screen.String())
	}
}

func TestGameStartLevel(t *testing.T) {
	SetStartLevel(2)
	t.Cleanup(func() { SetStartLevel(0) })

	g := newTestGame(t, New(), nil)
	if g.World().Level().Number != 2 {
		t.Errorf("level = %d, expected 2", g.World().Level().Number)
	}

	SetStartLevel(99)
	if _, err := Load(); err == nil {
		t.Error("Load() with an unknown start level should fail")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, New(), nil)
	for range 5 {
		g.Step(input(core.ActionFire))
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Score:", "HP:", "Lv 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
	if !strings.ContainsRune(out, PlayerChar) {
		t.Error("render missing the player ship")
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() uint64 {
		g := newTestGame(t, New(), nil)
		for i := range 900 {
			var actions []core.Action
			if i%2 == 0 {
				actions = append(actions, core.ActionFire)
			}
			if i%200 < 60 {
				actions = append(actions, core.ActionRight)
			}
			g.Step(input(actions...))
		}
		snap := g.World().Snapshot()
		return snap.Hash()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("hash %d != %d for the same seed", a, b)
	}
}

func TestGameStartAtOverridesPackageLevel(t *testing.T) {
	g := New()
	g.StartAt(2)
	newTestGame(t, g, nil)

	if g.World().Level().Number != 2 {
		t.Errorf("level = %d, expected 2", g.World().Level().Number)
	}
}
