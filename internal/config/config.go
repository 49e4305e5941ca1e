// Package config provides YAML-based game configuration loading and
// difficulty presets for the shooter.
package config

// ShooterConfig contains all tunables for the space shooter.
// Distances are world units (y-up), durations are seconds.
type ShooterConfig struct {
	World      ShooterWorld            `yaml:"world"`
	Player     ShooterPlayer           `yaml:"player"`
	Enemies    map[string]ShooterEnemy `yaml:"enemies"`
	Spawn      ShooterSpawn            `yaml:"spawn"`
	Boss       ShooterBoss             `yaml:"boss"`
	PowerUps   ShooterPowerUps         `yaml:"powerups"`
	Effects    ShooterEffects          `yaml:"effects"`
	Upgrades   map[string]UpgradeSpec  `yaml:"upgrades"`
	Difficulty DifficultyConfig        `yaml:"difficulty"`
}

// ShooterWorld defines the playfield size.
type ShooterWorld struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	ContactDamage int     `yaml:"contact_damage"` // Damage per overlapping entity per frame
}

// ShooterPlayer defines the player ship before upgrades.
type ShooterPlayer struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Y            float64 `yaml:"y"` // Center line of the ship
	Speed        float64 `yaml:"speed"`
	MaxHealth    int     `yaml:"max_health"`
	FireInterval float64 `yaml:"fire_interval"`
	Damage       int     `yaml:"damage"`
	BulletWidth  float64 `yaml:"bullet_width"`
	BulletHeight float64 `yaml:"bullet_height"`
	BulletSpeed  float64 `yaml:"bullet_speed"`
	LevelUpBonus int     `yaml:"level_up_bonus"` // Max health gained per run level
}

// ShooterEnemy defines base stats for one enemy type.
type ShooterEnemy struct {
	Speed  float64 `yaml:"speed"`
	Health int     `yaml:"health"`
	Sizes  []int   `yaml:"sizes"`
	Points int     `yaml:"points"`
	XP     int     `yaml:"xp"`
	Coins  int     `yaml:"coins"`
}

// ShooterSpawn defines flat-mode spawning.
type ShooterSpawn struct {
	Interval float64        `yaml:"interval"`
	Weights  map[string]int `yaml:"weights"`
}

// ShooterBoss defines the boss and its hazards.
type ShooterBoss struct {
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	TopMargin         float64 `yaml:"top_margin"`
	Speed             float64 `yaml:"speed"`
	MoveInterval      float64 `yaml:"move_interval"`
	AttackInterval    float64 `yaml:"attack_interval"`
	BobSpeed          float64 `yaml:"bob_speed"`
	BaseHealth        int     `yaml:"base_health"`
	HealthPerLevel    int     `yaml:"health_per_level"`
	HazardSize        float64 `yaml:"hazard_size"`
	HazardSpeed       float64 `yaml:"hazard_speed"`
	ExplosionDamage   int     `yaml:"explosion_damage"`
	Points            int     `yaml:"points"`
	XP                int     `yaml:"xp"`
	Coins             int     `yaml:"coins"`
	ThresholdBase     int     `yaml:"threshold_base"`      // Kills needed on level 1
	ThresholdPerLevel int     `yaml:"threshold_per_level"` // Extra kills per level
}

// ShooterPowerUps defines drop rates and power-up effects.
type ShooterPowerUps struct {
	DropChance      float64        `yaml:"drop_chance"`
	Lifetime        float64        `yaml:"lifetime"`
	FallSpeed       float64        `yaml:"fall_speed"`
	Size            float64        `yaml:"size"`
	Weights         map[string]int `yaml:"weights"`
	RepairAmount    int            `yaml:"repair_amount"`
	RapidDuration   float64        `yaml:"rapid_duration"`
	RapidFactor     float64        `yaml:"rapid_factor"`
	PierceDuration  float64        `yaml:"pierce_duration"`
	PierceExtra     int            `yaml:"pierce_extra"`
	TurretDuration  float64        `yaml:"turret_duration"`
	TurretInterval  float64        `yaml:"turret_interval"`
	TurretDamage    int            `yaml:"turret_damage"`
	TurretOffsetX   float64        `yaml:"turret_offset_x"`
	TurretBulletCap int            `yaml:"turret_bullet_cap"` // Free-list size of the turret bullet pool
}

// ShooterEffects defines cosmetic effect parameters.
type ShooterEffects struct {
	ExplosionParticles int     `yaml:"explosion_particles"`
	ParticleLifetime   float64 `yaml:"particle_lifetime"`
	ParticleSpeed      float64 `yaml:"particle_speed"`
	ParticleSize       float64 `yaml:"particle_size"`
	DamageNumberTTL    float64 `yaml:"damage_number_ttl"`
	DamageNumberRise   float64 `yaml:"damage_number_rise"`
	PoolSize           int     `yaml:"pool_size"` // Free-list size for projectile and explosion pools
}

// UpgradeSpec defines the price and effect of one upgrade track.
type UpgradeSpec struct {
	BaseCost int     `yaml:"base_cost"`
	MaxLevel int     `yaml:"max_level"`
	PerLevel float64 `yaml:"per_level"` // Fractional bonus per level (damage: flat bonus)
}

// LevelsConfig is the ordered list of campaign levels.
type LevelsConfig struct {
	Levels []LevelSpec `yaml:"levels"`
}

// LevelSpec describes one campaign level as written in YAML.
type LevelSpec struct {
	Number        int        `yaml:"number"`
	Name          string     `yaml:"name"`
	EnemyTypes    []string   `yaml:"enemy_types"`
	SpawnInterval float64    `yaml:"spawn_interval"`
	BossThreshold int        `yaml:"boss_threshold"`
	BossPattern   string     `yaml:"boss_pattern"`
	Waves         []WaveSpec `yaml:"waves"`
}

// WaveSpec describes one wave as written in YAML.
type WaveSpec struct {
	Enemy        string  `yaml:"enemy"`
	Count        int     `yaml:"count"`
	Interval     float64 `yaml:"interval"`
	Choreography string  `yaml:"choreography"` // from_top, from_left, from_right
	Delay        float64 `yaml:"delay"`
}
