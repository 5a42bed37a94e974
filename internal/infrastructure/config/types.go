package config

// CoreConfig is the root config for core.json
type CoreConfig struct {
	Display    DisplayConfig    `json:"display"`
	Door       DoorConfig       `json:"door"`
	Projectile ProjectileConfig `json:"projectile"`
	Attack     AttackConfig     `json:"attack"`
	Movement   MovementConfig   `json:"movement"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// FrameDuration returns the simulation step in milliseconds
func (d DisplayConfig) FrameDuration() float64 {
	if d.Framerate <= 0 {
		return 1000.0 / 60.0
	}
	return 1000.0 / float64(d.Framerate)
}

type DoorConfig struct {
	OpenSpeed float64 `json:"openSpeed"` // Pixels per OpenDoor step
}

type ProjectileConfig struct {
	Sprite   string  `json:"sprite"`
	MaxSpeed float64 `json:"maxSpeed"` // Pixels per step
	// FireInterval is the time between turret shots (milliseconds)
	FireInterval float64 `json:"fireInterval"`
}

type AttackConfig struct {
	Sprite        string  `json:"sprite"`
	FrameWidth    int     `json:"frameWidth"`
	FrameHeight   int     `json:"frameHeight"`
	Frames        int     `json:"frames"`
	FrameDuration float64 `json:"frameDuration"` // Milliseconds
}

// MovementConfig drives the body mover. Values are per step.
type MovementConfig struct {
	Gravity      float64 `json:"gravity"`
	MaxFallSpeed float64 `json:"maxFallSpeed"`
	RunSpeed     float64 `json:"runSpeed"`
	Acceleration float64 `json:"acceleration"`
	Deceleration float64 `json:"deceleration"` // Ground friction before the tile multiplier
	JumpForce    float64 `json:"jumpForce"`
}
