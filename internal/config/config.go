package config

import "time"

const (
	WindowWidth  = 1024
	WindowHeight = 768

	// Particle field
	DefaultParticleCount = 15000
	MaxParticleCount     = 200000
	CurveScale           = 150.0
	CurveNoise           = 0.05

	// Per-particle transition rates: speed = TransitionRateBase + delay*TransitionRateSpan
	TransitionRateBase = 0.03
	TransitionRateSpan = 0.02

	// Control signal smoothing
	SpreadRate   = 0.08
	ScaleRate    = 0.08
	RotationRate = 0.05

	// Gesture mapping
	DefaultSensitivity = 5.0
	RestSpread         = 1.0
	RestScale          = 1.0
	RestRotation       = 0.0

	// Palm size calibration: normalized = clamp((palm-PalmMin)/PalmRange, 0, 1)
	PalmMin   = 0.08
	PalmRange = 0.35

	// Visualization parameters
	IdleSpinSpeed   = 0.002
	ColorShiftSpeed = 0.01
	AudioRingSize   = 8192
)

const DefaultSwitchInterval = 8 * time.Second
