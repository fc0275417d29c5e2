package config

import (
	_ "embed"
)

//go:embed defaults/flap.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches defaults/flap.yaml and
// is used as the base that YAML files are decoded over.
func Default() Config {
	return Config{
		Physics: Physics{
			Gravity: 0.6,
			Lift:    -8,
		},
		Player: Player{
			Width:         37,
			Height:        27,
			XOffset:       20,
			IdleAmplitude: 10,
			IdlePeriod:    10,
		},
		Obstacles: Obstacles{
			Width:         70,
			Gap:           150,
			SpawnInterval: 90,
			ScrollSpeed:   3,
			TopMargin:     20,
			BottomMargin:  60,
		},
		Backdrop: Backdrop{
			BackgroundSpeed: 0.5,
			FloorSpeed:      0.6,
			FloorHeight:     32,
		},
		Input: Input{
			SwipeThreshold: 50,
			DoubleTapMS:    300,
		},
		Render: Render{
			CellWidth:  8,
			CellHeight: 16,
		},
		Characters: []Character{
			{ID: "sunny", Name: "Sunny", Sprite: "bird_sunny", Unlocked: true},
			{ID: "berry", Name: "Berry", Sprite: "bird_berry", Unlocked: true},
			{ID: "ghost", Name: "Ghost", Sprite: "bird_ghost", Unlocked: false},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
