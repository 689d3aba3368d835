package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
	"github.com/spireclimb/spire/game"
	"github.com/spireclimb/spire/serror"
)

// Config holds the session constants. It is loaded once before the first tick
// and never mutated afterwards.
type Config struct {
	// BlockSize is the side length of every block cube in world units.
	BlockSize float32 `toml:"block_size"`
	// PlayerRadius is the radius of the player collision sphere.
	PlayerRadius float32 `toml:"player_radius"`

	// Gravity is subtracted from vertical velocity every tick.
	Gravity float32 `toml:"gravity"`
	// JumpForce is the vertical velocity set when a jump is performed.
	JumpForce float32 `toml:"jump_force"`
	// MoveSpeed scales the per-tick input force.
	MoveSpeed float32 `toml:"move_speed"`
	// Friction multiplies the horizontal velocity components every tick.
	Friction float32 `toml:"friction"`
	// MaxSpeed caps horizontal speed; the horizontal velocity is rescaled
	// uniformly when it is exceeded.
	MaxSpeed float32 `toml:"max_speed"`

	// CollisionRange is the broad-phase cutoff: blocks whose center differs
	// from the player position by more than this along any axis are skipped.
	CollisionRange float32 `toml:"collision_range"`
	// CoyoteFrames is how many resolver calls after losing ground contact a
	// jump is still accepted.
	CoyoteFrames int `toml:"coyote_frames"`

	// TowerHeight is the number of spiral steps the generator runs.
	TowerHeight int `toml:"tower_height"`
	// Seed seeds the generator's random source. Zero means the caller picks.
	Seed int64 `toml:"seed"`
}

// Default returns the configuration the game ships with.
func Default() Config {
	return Config{
		BlockSize:      1.0,
		PlayerRadius:   0.4,
		Gravity:        0.018,
		JumpForce:      0.32,
		MoveSpeed:      0.03,
		Friction:       0.85,
		MaxSpeed:       0.3,
		CollisionRange: 2.0,
		CoyoteFrames:   6,
		TowerHeight:    100,
		Seed:           0,
	}
}

// Validate checks the precondition set of the core. A violation here is fatal
// at startup; nothing in the tick path revalidates.
func (c Config) Validate() error {
	if c.BlockSize <= 0 {
		return serror.New("config: block_size must be positive, got %v", c.BlockSize)
	}
	if c.PlayerRadius <= 0 {
		return serror.New("config: player_radius must be positive, got %v", c.PlayerRadius)
	}
	if c.PlayerRadius >= c.BlockSize {
		return serror.New("config: player_radius %v must be smaller than block_size %v", c.PlayerRadius, c.BlockSize)
	}
	if c.Gravity <= 0 {
		return serror.New("config: gravity must be positive, got %v", c.Gravity)
	}
	if c.Friction <= 0 || c.Friction > 1 {
		return serror.New("config: friction must be in (0, 1], got %v", c.Friction)
	}
	if c.MaxSpeed <= 0 {
		return serror.New("config: max_speed must be positive, got %v", c.MaxSpeed)
	}
	if c.CollisionRange < c.BlockSize {
		return serror.New("config: collision_range %v must cover at least one block", c.CollisionRange)
	}
	if c.CoyoteFrames < 0 {
		return serror.New("config: coyote_frames must not be negative, got %d", c.CoyoteFrames)
	}
	if c.TowerHeight <= 0 {
		return serror.New("config: tower_height must be positive, got %d", c.TowerHeight)
	}
	if game.TimeStep <= 0 {
		return serror.New("config: time step must be positive")
	}
	return nil
}

// Read reads the configuration from the given TOML file, or creates the file
// with defaults if it does not yet exist.
func Read(path string) (Config, error) {
	c := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		data, err := toml.Marshal(c)
		if err != nil {
			return c, fmt.Errorf("encode default config: %v", err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return c, fmt.Errorf("create default config: %v", err)
		}
		return c, c.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %v", err)
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("decode config: %v", err)
	}
	return c, c.Validate()
}
