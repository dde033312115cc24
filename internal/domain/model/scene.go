package model

import "image"

// SceneLayer is a decoded hero image placed for a single frame.
type SceneLayer struct {
	Image     image.Image
	Layer     ParallaxLayer
	Transform Transform
}

// Scene is a still of the hero composition: parallax layers over a particle
// field, in CSS pixels of a Width x Height viewport.
type Scene struct {
	Width     int
	Height    int
	Layers    []SceneLayer
	Particles []Particle
}
