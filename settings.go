package worldgen

// Settings contains all the settings controlling a world generation, in the
// shape the worldgen command reads from and writes to YAML files.
type Settings struct {
	// Seed is the user seed string; it is hashed down to the generator
	// seed.
	Seed string `yaml:"seed"`

	// Count is the number of seed points, hence the approximate number of
	// regions.
	Count int `yaml:"count"`

	// LloydIterations is the number of relaxation rounds applied to the
	// seed points. More rounds give more uniform region sizes.
	LloydIterations int `yaml:"lloydIterations"`

	// Width and Height are the domain dimensions.
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// NewSettings returns a new Settings struct filled with default values.
func NewSettings() Settings {
	return Settings{
		Seed:            "worldgen",
		Count:           1024,
		LloydIterations: 2,
		Width:           1024,
		Height:          1024,
	}
}
