package game

const (
	// TimeStep is the duration of one logical tick in seconds. The scheduler
	// converts wall-clock deltas into whole ticks of this size.
	TimeStep = 1.0 / 60.0
	// MaxFrameDelta caps the wall-clock delta accepted from a single frame so
	// a stall never queues an unbounded amount of catch-up ticks.
	MaxFrameDelta = 0.1

	// SolverIterations is how many times the collision resolver runs per tick,
	// letting the push-out from one contact be re-resolved against the rest.
	SolverIterations = 4

	// ContactEpsilon is the lower bound on squared contact distance. A sphere
	// center sitting exactly on a block surface point has no usable normal, so
	// such contacts are skipped rather than divided by zero.
	ContactEpsilon = float32(1e-5)
	// GroundNormalY is the minimum upward normal component for a contact to
	// count as ground.
	GroundNormalY = float32(0.7)

	// FallingSeamNormalYMax and FallingSeamNormalHzMin describe the landing
	// signature of a seam catch: moving down with an almost sideways normal.
	FallingSeamNormalYMax  = float32(0.35)
	FallingSeamNormalHzMin = float32(0.5)

	// FallResetDepth is how many block units below the base platform the
	// player may fall before the session resets them, in block units.
	FallResetDepth = float32(10)
)

const (
	StatusNone      = ""
	StatusRespawned = "RESPAWNED!"
	StatusVictory   = "VICTORY REACHED!"
)
