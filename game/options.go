package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/phanxgames/orbitshot"
)

// ErrInvalidOptions is wrapped by every error Options.Validate returns.
var ErrInvalidOptions = errors.New("invalid options")

// IntRange is an inclusive integer range.
type IntRange struct {
	Min, Max int
}

// DurationRange is an inclusive range of durations with millisecond steps.
type DurationRange struct {
	Min, Max time.Duration
}

// Options holds the game rules and layout.
type Options struct {
	ScreenWidth  float64
	ScreenHeight float64
	Background   orbitshot.Color

	// Track
	PathWidth   float64
	PathHeight  float64
	CurveRadius float64
	PathStroke  float64
	PathColor   orbitshot.Color

	// Turret
	TurretPeriod  time.Duration // one revolution at speed multiplier 1
	Friction      float64       // applied to the multiplier on every revolution
	Thrust        float64       // applied to the multiplier on every shot
	MaxMultiplier float64
	TurretScale   float64
	TurretDepth   int

	// Targets
	Targets         int
	TargetWidth     IntRange
	TargetDuration  DurationRange
	TargetAlpha     float64
	TargetThickness float64
	RespawnDelay    time.Duration

	// Fireline
	FirelineDuration time.Duration
	FirelineWidth    float64
	FirelineHeight   float64

	// Seed drives target layout. 0 seeds from the clock.
	Seed uint64
	// AssetDir holds target.png, turret.png and fireline.png. Empty uses
	// generated images.
	AssetDir string
}

// DefaultOptions returns the standard portrait layout.
func DefaultOptions() Options {
	return Options{
		ScreenWidth:  750,
		ScreenHeight: 1334,
		Background:   orbitshot.RGB(0x222222),

		PathWidth:   500,
		PathHeight:  800,
		CurveRadius: 50,
		PathStroke:  4,
		PathColor:   orbitshot.RGB(0xffff00),

		TurretPeriod:  5 * time.Second,
		Friction:      0.9,
		Thrust:        2,
		MaxMultiplier: 11,
		TurretScale:   2,
		TurretDepth:   1,

		Targets:         5,
		TargetWidth:     IntRange{Min: 100, Max: 200},
		TargetDuration:  DurationRange{Min: 6 * time.Second, Max: 10 * time.Second},
		TargetAlpha:     0.8,
		TargetThickness: 40,
		RespawnDelay:    3 * time.Second,

		FirelineDuration: 50 * time.Millisecond,
		FirelineWidth:    700,
		FirelineHeight:   8,
	}
}

// HitLength is the length of the shot segment: half the screen height.
func (o Options) HitLength() float64 {
	return o.ScreenHeight / 2
}

// Center returns the screen centre, where the turret sits.
func (o Options) Center() orbitshot.Vec2 {
	return orbitshot.Vec2{X: o.ScreenWidth / 2, Y: o.ScreenHeight / 2}
}

// Validate reports the first rule that o breaks.
func (o Options) Validate() error {
	switch {
	case o.ScreenWidth <= 0 || o.ScreenHeight <= 0:
		return invalid("screen size %vx%v must be positive", o.ScreenWidth, o.ScreenHeight)
	case o.PathWidth <= 0 || o.PathHeight <= 0:
		return invalid("path size %vx%v must be positive", o.PathWidth, o.PathHeight)
	case o.PathWidth > o.ScreenWidth || o.PathHeight > o.ScreenHeight:
		return invalid("path %vx%v does not fit on screen %vx%v", o.PathWidth, o.PathHeight, o.ScreenWidth, o.ScreenHeight)
	case o.CurveRadius < 0 || 2*o.CurveRadius > min(o.PathWidth, o.PathHeight):
		return invalid("curve radius %v does not fit the path", o.CurveRadius)
	case o.PathStroke <= 0:
		return invalid("path stroke %v must be positive", o.PathStroke)
	case o.TurretPeriod <= 0:
		return invalid("turret period %v must be positive", o.TurretPeriod)
	case o.Friction <= 0 || o.Friction > 1:
		return invalid("friction %v must be in (0, 1]", o.Friction)
	case o.Thrust < 1:
		return invalid("thrust %v must be at least 1", o.Thrust)
	case o.MaxMultiplier < 1:
		return invalid("max multiplier %v must be at least 1", o.MaxMultiplier)
	case o.TurretScale <= 0:
		return invalid("turret scale %v must be positive", o.TurretScale)
	case o.Targets < 0:
		return invalid("target count %d must not be negative", o.Targets)
	case o.TargetWidth.Min <= 0 || o.TargetWidth.Min > o.TargetWidth.Max:
		return invalid("target width range [%d, %d] is empty or non-positive", o.TargetWidth.Min, o.TargetWidth.Max)
	case o.TargetDuration.Min <= 0 || o.TargetDuration.Min > o.TargetDuration.Max:
		return invalid("target duration range [%v, %v] is empty or non-positive", o.TargetDuration.Min, o.TargetDuration.Max)
	case o.TargetAlpha < 0 || o.TargetAlpha > 1:
		return invalid("target alpha %v must be in [0, 1]", o.TargetAlpha)
	case o.TargetThickness <= 0:
		return invalid("target thickness %v must be positive", o.TargetThickness)
	case o.RespawnDelay < 0:
		return invalid("respawn delay %v must not be negative", o.RespawnDelay)
	case o.FirelineDuration <= 0:
		return invalid("fireline duration %v must be positive", o.FirelineDuration)
	case o.FirelineWidth <= 0 || o.FirelineHeight <= 0:
		return invalid("fireline size %vx%v must be positive", o.FirelineWidth, o.FirelineHeight)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidOptions, fmt.Sprintf(format, args...))
}
