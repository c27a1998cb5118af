package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Fire light parameters. The point light sits just above the embers
// and its intensity breathes with the flicker.
var (
	FireLightPos   = mgl32.Vec3{0, 0.8, 0}
	FireLightColor = mgl32.Vec3{1.0, 0.62, 0.25}
	AmbientColor   = mgl32.Vec3{0.06, 0.07, 0.10}
	MoonLightColor = mgl32.Vec3{0.18, 0.22, 0.32}
)

// MoonDirection is the normalized direction from the scene towards the
// moon, used as the cool directional fill.
func MoonDirection() mgl32.Vec3 {
	return mgl32.Vec3{0.5, 10.2, -6}.Normalize()
}

// FireFlicker returns the fire intensity multiplier at time t, a blend
// of three incommensurate sines that stays within roughly 0.8 to 1.2.
func FireFlicker(t float32) float32 {
	f1 := 0.5 + 0.5*math32.Sin(t*6.2+1.3)
	f2 := 0.5 + 0.5*math32.Sin(t*3.9+2.1)
	f3 := 0.5 + 0.5*math32.Sin(t*9.1+0.5)
	return 0.80 + 0.40*(0.55*f1+0.30*f2+0.15*f3)
}

// FireJitter returns a small positional wander for the fire light so
// shadows and highlights don't sit perfectly still.
func FireJitter(t float32) mgl32.Vec3 {
	return mgl32.Vec3{
		0.05 * math32.Sin(t*7.7),
		0.04 * math32.Sin(t*5.3+0.8),
		0.05 * math32.Cos(t*6.4+1.7),
	}
}
