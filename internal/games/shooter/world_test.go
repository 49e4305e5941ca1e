package shooter

import (
	"math"
	"slices"
	"testing"
)

// scriptedIntent is a deterministic input pattern for long runs.
func scriptedIntent(frame int) Intent {
	return Intent{
		MoveLeft:  frame%120 < 40,
		MoveRight: frame%120 >= 80,
		Shoot:     frame%3 == 0,
	}
}

func TestWorldDeterminism(t *testing.T) {
	a := newTestWorld(t, ModeCampaign, 42)
	b := newTestWorld(t, ModeCampaign, 42)

	for i := range 1200 {
		a.Update(testDT, scriptedIntent(i))
		b.Update(testDT, scriptedIntent(i))

		sa, sb := a.Snapshot(), b.Snapshot()
		if sa.Hash() != sb.Hash() {
			t.Fatalf("frame %d: hash %d != %d", i, sa.Hash(), sb.Hash())
		}
	}
}

func TestWorldSeedsDiverge(t *testing.T) {
	a := newTestWorld(t, ModeEndless, 1)
	b := newTestWorld(t, ModeEndless, 2)

	for i := range 300 {
		a.Update(testDT, scriptedIntent(i))
		b.Update(testDT, scriptedIntent(i))
	}

	sa, sb := a.Snapshot(), b.Snapshot()
	if sa.Hash() == sb.Hash() {
		t.Error("different seeds produced identical runs")
	}
}

func TestWorldContactDamagePerEnemy(t *testing.T) {
	w := newTestWorld(t, ModeCampaign, 1)
	pl := w.Player()
	w.enemies = append(w.enemies, testEnemy(w.newID(), pl.X-4, pl.Y, 5), testEnemy(w.newID(), pl.X+4, pl.Y, 5))

	w.Update(testDT, Intent{})
	if pl.Health != pl.MaxHealth-2 {
		t.Errorf("health = %d after one frame, expected %d", pl.Health, pl.MaxHealth-2)
	}

	w.Update(testDT, Intent{})
	if pl.Health != pl.MaxHealth-4 {
		t.Errorf("health = %d after two frames, expected %d", pl.Health, pl.MaxHealth-4)
	}
}

func TestWorldFiringCooldown(t *testing.T) {
	w := newTestWorld(t, ModeCampaign, 1)
	shoot := Intent{Shoot: true}

	w.Update(testDT, shoot)
	if len(w.Projectiles()) != 1 {
		t.Fatalf("projectiles = %d after first shot, expected 1", len(w.Projectiles()))
	}
	if w.projPool.ActiveCount() != 1 {
		t.Errorf("pool active = %d, expected 1", w.projPool.ActiveCount())
	}

	w.Update(testDT, shoot)
	if len(w.Projectiles()) != 1 {
		t.Errorf("projectiles = %d during cooldown, expected 1", len(w.Projectiles()))
	}

	interval := w.Player().Stats.FireInterval
	for range int(math.Ceil(interval/testDT)) + 1 {
		w.Update(testDT, Intent{})
	}
	w.Update(testDT, shoot)
	if len(w.Projectiles()) != 2 {
		t.Errorf("projectiles = %d after cooldown, expected 2", len(w.Projectiles()))
	}
}

func TestWorldProjectilesReturnToPool(t *testing.T) {
	w := newTestWorld(t, ModeCampaign, 1)
	w.Update(testDT, Intent{Shoot: true})

	// A shot crosses the playfield in well under two seconds
	for range 120 {
		w.Update(testDT, Intent{})
	}
	if len(w.Projectiles()) != 0 {
		t.Errorf("projectiles = %d, expected 0 after leaving the screen", len(w.Projectiles()))
	}
	if w.projPool.ActiveCount() != 0 {
		t.Errorf("pool active = %d, expected 0", w.projPool.ActiveCount())
	}
	if w.projPool.FreeCount() != 1 {
		t.Errorf("pool free = %d, expected 1", w.projPool.FreeCount())
	}
}

// killEnemies reports n kills through the collision resolver.
func killEnemies(w *World, n int) {
	r := resolver{w}
	for range n {
		e := testEnemy(w.newID(), 100, 400, 1)
		w.enemies = append(w.enemies, e)
		r.ProjectileHitEnemy(testShot(w.newID(), e.X, e.Y, 1, 0), e)
	}
}

func killBoss(t *testing.T, w *World) {
	t.Helper()
	b := w.Boss()
	if b == nil {
		t.Fatal("expected a live boss")
	}
	resolver{w}.ProjectileHitBoss(testShot(w.newID(), b.X, b.Y, 10000, 0), b)
}

// waitForLevel steps the world until the level number changes or the run ends.
func waitForLevel(t *testing.T, w *World) {
	t.Helper()
	start := w.Level().Number
	for range int(levelClearDelay/testDT) + 10 {
		w.Update(testDT, Intent{})
		if w.Level().Number != start || w.Won() || w.GameOver() {
			return
		}
	}
	t.Fatalf("level %d never advanced", start)
}

func TestWorldKillsSummonBoss(t *testing.T) {
	w := newTestWorld(t, ModeCampaign, 1)

	killEnemies(w, 2)
	if w.Boss() != nil {
		t.Fatal("boss summoned before threshold")
	}
	killEnemies(w, 1)

	if w.Boss() == nil || w.Progression().Phase() != PhaseBossFight {
		t.Fatalf("expected boss fight after 3 kills, phase %s", w.Progression().Phase())
	}
	st := w.Stats()
	if st.Kills != 3 || st.Score != 30 || st.Coins != 3 {
		t.Errorf("stats = %+v, expected 3 kills, 30 score, 3 coins", st)
	}
	if !slices.Contains(w.Events(), "BOSS INCOMING") {
		t.Errorf("events = %v, expected BOSS INCOMING", w.Events())
	}

	// The spawner stays quiet during the boss fight
	for range 300 {
		w.Update(testDT, Intent{})
	}
	if len(w.Enemies()) != 0 {
		t.Errorf("enemies = %d during boss fight, expected 0", len(w.Enemies()))
	}
}

func TestWorldCampaignVictory(t *testing.T) {
	w := newTestWorld(t, ModeCampaign, 1)
	w.player.MaxHealth, w.player.Health = 1<<20, 1<<20

	killEnemies(w, 3)
	killBoss(t, w)

	if w.Boss() != nil || !w.Progression().IsLevelCompleting() {
		t.Fatalf("expected level completing after boss kill, phase %s", w.Progression().Phase())
	}
	if got := w.CompletedLevels(); !slices.Equal(got, []int{1}) {
		t.Errorf("CompletedLevels() = %v, expected [1]", got)
	}
	scoreAfterBoss := w.Stats().Score
	if scoreAfterBoss != 30+w.cfg.Boss.Points {
		t.Errorf("score = %d, expected %d", scoreAfterBoss, 30+w.cfg.Boss.Points)
	}

	waitForLevel(t, w)
	if w.Level().Number != 2 {
		t.Fatalf("level = %d, expected 2", w.Level().Number)
	}
	if w.Progression().Kills() != 0 || w.Progression().Threshold() != 4 {
		t.Errorf("level 2 progression kills=%d threshold=%d, expected 0 and 4",
			w.Progression().Kills(), w.Progression().Threshold())
	}

	killEnemies(w, 4)
	if b := w.Boss(); b == nil || b.MaxHealth != BossHealthForLevel(w.cfg.Boss, 2) {
		t.Fatalf("expected level 2 boss with %d health", BossHealthForLevel(w.cfg.Boss, 2))
	}
	killBoss(t, w)
	waitForLevel(t, w)

	if !w.Won() {
		t.Fatal("expected victory after the last level")
	}
	if !slices.Contains(w.Events(), "VICTORY") {
		t.Errorf("events = %v, expected VICTORY", w.Events())
	}

	tick := w.Tick()
	w.Update(testDT, Intent{})
	if w.Tick() != tick {
		t.Error("world kept ticking after victory")
	}
}

func TestWorldEndlessNeverWins(t *testing.T) {
	w := newTestWorld(t, ModeEndless, 1)
	w.player.MaxHealth, w.player.Health = 1<<20, 1<<20

	for lvl := 1; lvl <= 3; lvl++ {
		if w.Level().Number != lvl {
			t.Fatalf("level = %d, expected %d", w.Level().Number, lvl)
		}
		w.enemies = nil
		killEnemies(w, w.Progression().Threshold())
		killBoss(t, w)
		waitForLevel(t, w)
	}
	if w.Won() {
		t.Error("endless mode should never be won")
	}
}

func TestWorldRepairIsIdempotent(t *testing.T) {
	w := newTestWorld(t, ModeCampaign, 1)
	w.player.Health = 50
	pu := &PowerUp{ID: w.newID(), Kind: PowerRepair, Active: true, Visible: true}

	r := resolver{w}
	r.PowerUpCollected(pu)
	r.PowerUpCollected(pu)

	expected := 50 + w.cfg.PowerUps.RepairAmount
	if w.player.Health != expected {
		t.Errorf("health = %d, expected %d", w.player.Health, expected)
	}
}

func TestWorldTimedPowerUps(t *testing.T) {
	w := newTestWorld(t, ModeCampaign, 1)
	r := resolver{w}

	r.PowerUpCollected(&PowerUp{Kind: PowerPierce, Active: true})
	w.Update(testDT, Intent{Shoot: true})
	if len(w.Projectiles()) != 1 || w.Projectiles()[0].Pierce != w.cfg.PowerUps.PierceExtra {
		t.Errorf("shot pierce should be %d while the power-up lasts", w.cfg.PowerUps.PierceExtra)
	}

	r.PowerUpCollected(&PowerUp{Kind: PowerRapidFire, Active: true})
	base := w.player.Stats.FireInterval
	if got := w.Effects().FireInterval(base, w.cfg.PowerUps); got >= base {
		t.Errorf("rapid fire interval = %v, expected below %v", got, base)
	}

	w.effects.RapidLeft = testDT / 2
	w.Update(testDT, Intent{})
	if w.Effects().RapidLeft != 0 {
		t.Errorf("RapidLeft = %v, expected 0 after expiry", w.Effects().RapidLeft)
	}
}

func TestWorldZBot(t *testing.T) {
	w := newTestWorld(t, ModeCampaign, 1)
	resolver{w}.PowerUpCollected(&PowerUp{Kind: PowerZBot, Active: true})

	if !w.Turret().Active() {
		t.Fatal("turret should be active after collecting ZBot")
	}

	w.Update(testDT, Intent{})
	if len(w.TurretShots()) != 1 {
		t.Fatalf("turret shots = %d, expected 1", len(w.TurretShots()))
	}
	if got := w.TurretShots()[0].Owner; got != OwnerTurret {
		t.Errorf("shot owner = %v, expected turret", got)
	}
	if w.turretPool.ActiveCount() != 1 {
		t.Errorf("turret pool active = %d, expected 1", w.turretPool.ActiveCount())
	}
	if len(w.Projectiles()) != 0 {
		t.Error("turret shots must not use the player projectile list")
	}

	w.turret.TTL = testDT / 2
	w.Update(testDT, Intent{})
	if w.Turret().Active() {
		t.Error("turret should expire")
	}
}

func TestWorldGameOver(t *testing.T) {
	w := newTestWorld(t, ModeCampaign, 1)
	w.player.Health = 1
	w.enemies = append(w.enemies, testEnemy(w.newID(), w.player.X, w.player.Y, 5))

	w.Update(testDT, Intent{})

	if !w.GameOver() {
		t.Fatal("expected game over")
	}
	if !slices.Contains(w.Events(), "GAME OVER") {
		t.Errorf("events = %v, expected GAME OVER", w.Events())
	}

	tick := w.Tick()
	w.Update(testDT, Intent{Shoot: true})
	if w.Tick() != tick || len(w.Projectiles()) != 0 {
		t.Error("world should be frozen after game over")
	}
}

func TestWorldRestartLevel(t *testing.T) {
	w := newTestWorld(t, ModeCampaign, 1)
	killEnemies(w, 2)
	w.player.Health = 1
	w.enemies = append(w.enemies, testEnemy(w.newID(), w.player.X, w.player.Y, 5))
	w.Update(testDT, Intent{Shoot: true})
	if !w.GameOver() {
		t.Fatal("expected game over")
	}

	w.RestartLevel()

	if w.GameOver() {
		t.Error("restart should clear game over")
	}
	if w.Stats().Score != 0 {
		t.Errorf("score = %d, expected the level start score 0", w.Stats().Score)
	}
	if w.Player().Health != w.Player().MaxHealth || w.Player().Dead {
		t.Error("restart should give a fresh ship")
	}
	if len(w.Enemies()) != 0 || len(w.Projectiles()) != 0 {
		t.Error("restart should clear the field")
	}
	if w.projPool.ActiveCount() != 0 {
		t.Errorf("pool active = %d after restart, expected 0", w.projPool.ActiveCount())
	}
	if w.Progression().Kills() != 0 || w.Level().Number != 1 {
		t.Errorf("expected level 1 with no kills, got level %d kills %d", w.Level().Number, w.Progression().Kills())
	}
}

func TestWorldInvalidExplosionRemoved(t *testing.T) {
	w := newTestWorld(t, ModeCampaign, 1)
	w.burst(100, 300)
	w.burst(200, 300)
	w.explosions[0].Particles[0].DX = math.NaN()

	w.Update(testDT, Intent{})

	if len(w.Explosions()) != 1 {
		t.Errorf("explosions = %d, expected only the valid one", len(w.Explosions()))
	}
	if w.explPool.ActiveCount() != 1 {
		t.Errorf("explosion pool active = %d, expected 1", w.explPool.ActiveCount())
	}
}

func TestWorldLevelUpRaisesHealth(t *testing.T) {
	w := newTestWorld(t, ModeCampaign, 1)
	maxHealth := w.player.MaxHealth

	w.gainXP(120)

	if w.Stats().Level != 2 {
		t.Errorf("run level = %d, expected 2", w.Stats().Level)
	}
	if w.player.MaxHealth != maxHealth+w.cfg.Player.LevelUpBonus {
		t.Errorf("max health = %d, expected %d", w.player.MaxHealth, maxHealth+w.cfg.Player.LevelUpBonus)
	}
}

func TestWorldStartLevel(t *testing.T) {
	cfgWorld := newTestWorld(t, ModeCampaign, 1)
	w, err := NewWorld(WorldOptions{
		Config:     cfgWorld.cfg,
		Levels:     cfgWorld.levels,
		StartLevel: 2,
		Stats:      cfgWorld.playerStats,
		Logger:     testLogger(),
	})
	if err != nil {
		t.Fatalf("NewWorld() failed: %v", err)
	}
	if w.Level().Number != 2 {
		t.Errorf("level = %d, expected 2", w.Level().Number)
	}

	if _, err := NewWorld(WorldOptions{Config: cfgWorld.cfg, Levels: cfgWorld.levels, StartLevel: 9}); err == nil {
		t.Error("NewWorld() with an unknown start level should fail")
	}
}
