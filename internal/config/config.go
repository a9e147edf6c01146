// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Simulation SimulationConfig `yaml:"simulation"`
	Camera     CameraConfig     `yaml:"camera"`
	Scene      SceneConfig      `yaml:"scene"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	FPSLimit   int    `yaml:"fps_limit"`
	ShowFPS    bool   `yaml:"show_fps"`
	Background string `yaml:"background"` // hex, e.g. "#000000"
}

// SimulationConfig holds orbit simulation settings.
type SimulationConfig struct {
	TimeScale   float32 `yaml:"time_scale"` // multiplier on wall-clock dt
	TrailLength int     `yaml:"trail_length"`
	ShowTrails  bool    `yaml:"show_trails"`
	StarCount   int     `yaml:"star_count"` // backdrop stars
	StarSeed    int64   `yaml:"star_seed"`
}

// CameraConfig holds camera behavior settings.
type CameraConfig struct {
	Mode        string  `yaml:"mode"` // orbit, freefly, birdseye
	Distance    float32 `yaml:"distance"`
	MinDistance float32 `yaml:"min_distance"`
	MaxDistance float32 `yaml:"max_distance"`
	MoveSpeed   float32 `yaml:"move_speed"`
	Sensitivity float32 `yaml:"sensitivity"` // radians per pixel of drag
	ZoomStep    float32 `yaml:"zoom_step"`   // multiplicative, per wheel notch
	FOV         float32 `yaml:"fov"`         // vertical field of view, degrees
}

// SceneConfig holds the body table driving the simulation.
type SceneConfig struct {
	Bodies []BodyConfig `yaml:"bodies"`
}

// BodyConfig describes a single celestial body. Orbital motion is
// circular: the body circles its parent at orbit_radius, completing one
// revolution every orbit_period seconds. A period of zero or less means
// the body does not move.
type BodyConfig struct {
	Name           string      `yaml:"name"`
	Class          string      `yaml:"class"` // star, rocky, gas_giant, ice, moon
	Colors         []string    `yaml:"colors"`
	Radius         float32     `yaml:"radius"`
	OrbitRadius    float32     `yaml:"orbit_radius"`
	OrbitPeriod    float32     `yaml:"orbit_period"`    // seconds
	RotationPeriod float32     `yaml:"rotation_period"` // seconds, <= 0 means no spin
	Seed           int64       `yaml:"seed"`
	Detail         float32     `yaml:"detail,omitempty"` // noise coordinate scale, <= 0 means 1
	Parent         string      `yaml:"parent"`           // empty means orbits the scene origin
	Ring           *RingConfig `yaml:"ring,omitempty"`
}

// RingConfig describes an annular ring attached to a body. Scale is the
// ring's outer extent relative to the body's radius; tilt is applied
// around the X axis in radians.
type RingConfig struct {
	Scale  float32 `yaml:"scale"`
	Tilt   float32 `yaml:"tilt"`
	Bright string  `yaml:"bright"`
	Dark   string  `yaml:"dark"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values, including the
// built-in solar system body table.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
			ShowFPS:    false,
			Background: "#000000",
		},
		Simulation: SimulationConfig{
			TimeScale:   1.0,
			TrailLength: 200,
			ShowTrails:  true,
			StarCount:   400,
			StarSeed:    1337,
		},
		Camera: CameraConfig{
			Mode:        "orbit",
			Distance:    45,
			MinDistance: 8,
			MaxDistance: 160,
			MoveSpeed:   20,
			Sensitivity: 0.005,
			ZoomStep:    1.1,
			FOV:         45,
		},
		Scene: SceneConfig{
			Bodies: defaultBodies(),
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// defaultBodies returns the built-in solar system: the Sun, eleven
// orbiting bodies out to Sedna, two moons, and rings for Saturn and
// Uranus.
func defaultBodies() []BodyConfig {
	return []BodyConfig{
		{
			Name:   "Sun",
			Class:  "star",
			Colors: []string{"#ffdd33", "#ff8800", "#cc3300"},
			Radius: 5.0,
			Seed:   1,
		},
		{
			Name:        "Mercury",
			Class:       "rocky",
			Colors:      []string{"#5a5149", "#8c8377", "#b5aa99"},
			Radius:      0.7,
			OrbitRadius: 8, OrbitPeriod: 31, RotationPeriod: 18,
			Seed: 2,
		},
		{
			Name:        "Venus",
			Class:       "rocky",
			Colors:      []string{"#a5772a", "#d9a85c", "#f0e0b0"},
			Radius:      0.9,
			OrbitRadius: 10, OrbitPeriod: 42, RotationPeriod: 30,
			Seed: 3,
		},
		{
			Name:        "Earth",
			Class:       "rocky",
			Colors:      []string{"#123c8c", "#1e6e3c", "#8c7a50", "#f0f0f0"},
			Radius:      1.2,
			OrbitRadius: 12, OrbitPeriod: 63, RotationPeriod: 10,
			Seed: 4,
		},
		{
			Name:        "Moon",
			Class:       "moon",
			Colors:      []string{"#3c3c40", "#8a8a90", "#d0d0d4"},
			Radius:      0.5,
			OrbitRadius: 2.5, OrbitPeriod: 16, RotationPeriod: 16,
			Seed:   5,
			Detail: 2.0, // small body, crater detail reads better finer
			Parent: "Earth",
		},
		{
			Name:        "Mars",
			Class:       "rocky",
			Colors:      []string{"#6e2a14", "#b5502a", "#e08050"},
			Radius:      0.8,
			OrbitRadius: 14, OrbitPeriod: 79, RotationPeriod: 11,
			Seed: 6,
		},
		{
			Name:        "Phobos",
			Class:       "moon",
			Colors:      []string{"#2e2a26", "#6e6660", "#a09890"},
			Radius:      0.33,
			OrbitRadius: 1.5, OrbitPeriod: 9, RotationPeriod: 9,
			Seed:   7,
			Parent: "Mars",
		},
		{
			Name:        "Jupiter",
			Class:       "gas_giant",
			Colors:      []string{"#8c5a32", "#c8965a", "#e6cfa0", "#b03a2a"},
			Radius:      3.0,
			OrbitRadius: 18, OrbitPeriod: 126, RotationPeriod: 6,
			Seed: 8, Detail: 1.6,
		},
		{
			Name:        "Saturn",
			Class:       "gas_giant",
			Colors:      []string{"#9c7a46", "#d2b478", "#f0e2be"},
			Radius:      2.5,
			OrbitRadius: 22, OrbitPeriod: 157, RotationPeriod: 7,
			Seed:        9,
			Ring:        &RingConfig{Scale: 2.0, Tilt: 0.35, Bright: "#e6d2a0", Dark: "#786040"},
		},
		{
			Name:        "Uranus",
			Class:       "ice",
			Colors:      []string{"#2a788c", "#64c8d2", "#c0eef0"},
			Radius:      1.8,
			OrbitRadius: 26, OrbitPeriod: 209, RotationPeriod: 12,
			Seed:        10,
			Ring:        &RingConfig{Scale: 2.4, Tilt: 1.48, Bright: "#a0c8cc", Dark: "#3c5a5e"},
		},
		{
			Name:        "Neptune",
			Class:       "ice",
			Colors:      []string{"#1a2a8c", "#3c5ad2", "#96b4f0"},
			Radius:      1.6,
			OrbitRadius: 30, OrbitPeriod: 314, RotationPeriod: 13,
			Seed: 11,
		},
		{
			Name:        "Pluto",
			Class:       "ice",
			Colors:      []string{"#55462e", "#a08a64", "#e0d2b4"},
			Radius:      1.0,
			OrbitRadius: 34, OrbitPeriod: 419, RotationPeriod: 40,
			Seed: 12,
		},
		{
			Name:        "Eris",
			Class:       "ice",
			Colors:      []string{"#4c4c55", "#9696a5", "#e0e0ea"},
			Radius:      1.2,
			OrbitRadius: 38, OrbitPeriod: 524, RotationPeriod: 35,
			Seed: 13,
		},
		{
			Name:        "Sedna",
			Class:       "ice",
			Colors:      []string{"#6e1a1a", "#b45032", "#f0a078"},
			Radius:      1.3,
			OrbitRadius: 42, OrbitPeriod: 628, RotationPeriod: 28,
			Seed: 14,
		},
	}
}
