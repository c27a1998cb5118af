package scene

import (
	"math/rand"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Selectable object IDs, in candidate order.
const (
	PickCampfire = iota
	PickBackpack
	PickLogPile
	PickTent
	PickLantern
)

// PickNames maps selectable IDs to display names.
var PickNames = []string{"campfire", "backpack", "log pile", "tent", "lantern"}

// Campfire geometry constants.
const (
	logRadius     = 0.26
	logLength     = 3.2
	logTiltDeg    = 18
	logRingR      = logLength * 0.6
	teepeeLogs    = 8
	emberBase     = 0.11
	flameCount    = 12
	innerStones   = 12
	midStones     = 16
	midStoneR     = 2.0
	guardBoulders = 18
	guardRingR    = 3.1
)

// layoutSeed keeps the pseudo-random jitter in the placements stable
// across runs, so the scene and its pick bounds never reshuffle.
const layoutSeed = 1927

// BuildObjects constructs every primitive of the campsite. The result
// is ordered back-to-front within each blend class by the renderer,
// not here.
func BuildObjects() []Object {
	rng := rand.New(rand.NewSource(layoutSeed))

	var objs []Object
	objs = append(objs, buildGround()...)
	objs = append(objs, buildCampfire(rng)...)
	objs = append(objs, buildTent()...)
	objs = append(objs, buildBackpack()...)
	objs = append(objs, buildLogPile()...)
	objs = append(objs, buildLantern()...)
	objs = append(objs, buildPineTree()...)
	objs = append(objs, buildMoon()...)
	return objs
}

func buildGround() []Object {
	return []Object{
		{
			Name:      "ground",
			Kind:      KindPlane,
			Position:  mgl32.Vec3{0, 0, -2},
			Scale:     mgl32.Vec3{20, 1, 10},
			Color:     mgl32.Vec4{0.36, 0.40, 0.30, 1},
			Texture:   "ground",
			PickGroup: unpickable,
		},
		{
			Name:      "backdrop",
			Kind:      KindBox,
			Position:  mgl32.Vec3{0, 8, -12.2},
			Scale:     mgl32.Vec3{40, 16, 0.2},
			Color:     mgl32.Vec4{0.05, 0.07, 0.14, 1},
			PickGroup: unpickable,
		},
	}
}

func buildCampfire(rng *rand.Rand) []Object {
	var objs []Object

	// Teepee logs leaning towards the fire center.
	for i := 0; i < teepeeLogs; i++ {
		angle := float32(i) / teepeeLogs * 360
		rad := mgl32.DegToRad(angle)
		objs = append(objs, Object{
			Name:     "fire log",
			Kind:     KindCylinder,
			Position: mgl32.Vec3{logRingR * 0.5 * math32.Cos(rad), 0, logRingR * 0.5 * math32.Sin(rad)},
			// Yaw faces the center, then pitch leans the log away from
			// vertical so the tips meet in a teepee.
			Rotation:  mgl32.Vec3{logTiltDeg, -angle + 90, 0},
			Scale:     mgl32.Vec3{logRadius, logLength, logRadius},
			Color:     mgl32.Vec4{0.32, 0.20, 0.11, 1},
			Texture:   "bark",
			PickGroup: PickCampfire,
		})
	}

	// Inner stone ring right at the fire's edge.
	for i := 0; i < innerStones; i++ {
		rad := float32(i) / innerStones * 2 * math32.Pi
		r := float32(1.25) + rng.Float32()*0.1
		s := 0.22 + rng.Float32()*0.08
		objs = append(objs, Object{
			Name:      "stone",
			Kind:      KindSphere,
			Position:  mgl32.Vec3{r * math32.Cos(rad), s * 0.5, r * math32.Sin(rad)},
			Scale:     mgl32.Vec3{s, s * 0.7, s},
			Color:     mgl32.Vec4{0.45, 0.44, 0.42, 1},
			Texture:   "stone",
			PickGroup: PickCampfire,
		})
	}

	// Mid ring of larger stones.
	for i := 0; i < midStones; i++ {
		rad := (float32(i) + 0.5) / midStones * 2 * math32.Pi
		r := midStoneR + rng.Float32()*0.15
		s := 0.3 + rng.Float32()*0.1
		objs = append(objs, Object{
			Name:      "stone",
			Kind:      KindSphere,
			Position:  mgl32.Vec3{r * math32.Cos(rad), s * 0.5, r * math32.Sin(rad)},
			Scale:     mgl32.Vec3{s, s * 0.65, s},
			Color:     mgl32.Vec4{0.40, 0.39, 0.37, 1},
			Texture:   "stone",
			PickGroup: PickCampfire,
		})
	}

	// Guard boulders, each a clump of overlapping spheres.
	for i := 0; i < guardBoulders; i++ {
		rad := float32(i) / guardBoulders * 2 * math32.Pi
		cx := guardRingR * math32.Cos(rad)
		cz := guardRingR * math32.Sin(rad)
		base := 0.34 + rng.Float32()*0.12
		for j := 0; j < 4; j++ {
			s := base * (0.75 + rng.Float32()*0.4)
			objs = append(objs, Object{
				Name: "boulder",
				Kind: KindSphere,
				Position: mgl32.Vec3{
					cx + (rng.Float32()-0.5)*base,
					s * 0.45,
					cz + (rng.Float32()-0.5)*base,
				},
				Scale:     mgl32.Vec3{s, s * 0.6, s},
				Color:     mgl32.Vec4{0.36, 0.35, 0.34, 1},
				Texture:   "stone",
				PickGroup: unpickable,
			})
		}
	}

	// Glowing embers: a hot core pile and a cooler rim.
	for i := 0; i < 18; i++ {
		s := emberBase * (0.6 + rng.Float32()*0.8)
		objs = append(objs, Object{
			Name:      "ember",
			Kind:      KindSphere,
			Position:  mgl32.Vec3{(rng.Float32() - 0.5) * 0.9, s * 0.4, (rng.Float32() - 0.5) * 0.9},
			Scale:     mgl32.Vec3{s, s * 0.5, s},
			Color:     mgl32.Vec4{1.0, 0.55, 0.12, 1},
			Emissive:  true,
			PickGroup: PickCampfire,
		})
	}
	for i := 0; i < 22; i++ {
		rad := rng.Float32() * 2 * math32.Pi
		r := 0.5 + rng.Float32()*0.5
		s := emberBase * (0.5 + rng.Float32()*0.5)
		objs = append(objs, Object{
			Name:      "ember",
			Kind:      KindSphere,
			Position:  mgl32.Vec3{r * math32.Cos(rad), s * 0.4, r * math32.Sin(rad)},
			Scale:     mgl32.Vec3{s, s * 0.5, s},
			Color:     mgl32.Vec4{0.85, 0.30, 0.08, 1},
			Emissive:  true,
			PickGroup: PickCampfire,
		})
	}

	// Radial flame cones with desynchronized wobble.
	for i := 0; i < flameCount; i++ {
		rad := float32(i) / flameCount * 2 * math32.Pi
		r := 0.15 + rng.Float32()*0.5
		h := 1.4 + rng.Float32()*1.2
		w := 0.18 + rng.Float32()*0.2
		objs = append(objs, Object{
			Name:      "flame",
			Kind:      KindCone,
			Position:  mgl32.Vec3{r * math32.Cos(rad), 0.1, r * math32.Sin(rad)},
			Rotation:  mgl32.Vec3{(rng.Float32() - 0.5) * 16, 0, (rng.Float32() - 0.5) * 16},
			Scale:     mgl32.Vec3{w, h, w},
			Color:     mgl32.Vec4{1.0, 0.35, 0.05, 0.9},
			Emissive:  true,
			Flame:     true,
			FlameSeed: float32(i) * 1.618,
			Additive:  true,
			PickGroup: PickCampfire,
		})
	}

	return objs
}

func buildTent() []Object {
	center := mgl32.Vec3{-7, 0, -6}
	objs := []Object{
		{
			Name:      "tent canvas",
			Kind:      KindCone,
			Position:  center,
			Rotation:  mgl32.Vec3{0, 300, 0},
			Scale:     mgl32.Vec3{3.9, 8.5, 6.5},
			Color:     mgl32.Vec4{0.72, 0.55, 0.32, 1},
			Texture:   "canvas",
			PickGroup: PickTent,
		},
		{
			Name:      "tent pole",
			Kind:      KindCylinder,
			Position:  center,
			Scale:     mgl32.Vec3{0.12, 9, 0.12},
			Color:     mgl32.Vec4{0.35, 0.25, 0.15, 1},
			Texture:   "bark",
			PickGroup: PickTent,
		},
	}

	// Stakes and guy lines around the canvas edge.
	stakeAngles := []float32{20, 95, 160, 230, 310}
	for _, deg := range stakeAngles {
		rad := mgl32.DegToRad(deg)
		sx := center[0] + 5.2*math32.Cos(rad)
		sz := center[2] + 5.2*math32.Sin(rad)
		objs = append(objs,
			Object{
				Name:      "tent stake",
				Kind:      KindCylinder,
				Position:  mgl32.Vec3{sx, 0, sz},
				Rotation:  mgl32.Vec3{18, -deg, 0},
				Scale:     mgl32.Vec3{0.06, 0.5, 0.06},
				Color:     mgl32.Vec4{0.3, 0.3, 0.32, 1},
				PickGroup: unpickable,
			},
			Object{
				Name:      "guy line",
				Kind:      KindCylinder,
				Position:  mgl32.Vec3{sx, 0.4, sz},
				Rotation:  mgl32.Vec3{-55, -deg + 90, 0},
				Scale:     mgl32.Vec3{0.02, 5.5, 0.02},
				Color:     mgl32.Vec4{0.85, 0.82, 0.70, 1},
				PickGroup: unpickable,
			},
		)
	}
	return objs
}

func buildBackpack() []Object {
	base := mgl32.Vec3{-5.5, 0, 1}
	yaw := float32(225)
	body := mgl32.Vec3{1.6, 2.5, 0.8}

	return []Object{
		{
			Name:      "backpack body",
			Kind:      KindBox,
			Position:  mgl32.Vec3{base[0], body[1] / 2, base[2]},
			Rotation:  mgl32.Vec3{0, yaw, 0},
			Scale:     body,
			Color:     mgl32.Vec4{0.16, 0.32, 0.22, 1},
			Texture:   "canvas",
			PickGroup: PickBackpack,
		},
		{
			Name:      "backpack top flap",
			Kind:      KindBox,
			Position:  mgl32.Vec3{base[0], body[1] + 0.18, base[2]},
			Rotation:  mgl32.Vec3{0, yaw, 0},
			Scale:     mgl32.Vec3{1.7, 0.4, 0.9},
			Color:     mgl32.Vec4{0.13, 0.27, 0.18, 1},
			Texture:   "canvas",
			PickGroup: PickBackpack,
		},
		{
			Name:      "backpack front flap",
			Kind:      KindBox,
			Position:  base.Add(rotY(mgl32.Vec3{0, 1.1, 0.45}, yaw)),
			Rotation:  mgl32.Vec3{0, yaw, 0},
			Scale:     mgl32.Vec3{1.2, 1.4, 0.1},
			Color:     mgl32.Vec4{0.13, 0.27, 0.18, 1},
			PickGroup: PickBackpack,
		},
		{
			Name:      "buckle",
			Kind:      KindBox,
			Position:  base.Add(rotY(mgl32.Vec3{0, 1.0, 0.52}, yaw)),
			Rotation:  mgl32.Vec3{0, yaw, 0},
			Scale:     mgl32.Vec3{0.18, 0.14, 0.06},
			Color:     mgl32.Vec4{0.85, 0.68, 0.2, 1},
			PickGroup: PickBackpack,
		},
		{
			Name:      "side pocket",
			Kind:      KindBox,
			Position:  base.Add(rotY(mgl32.Vec3{0.85, 0.9, 0}, yaw)),
			Rotation:  mgl32.Vec3{0, yaw, 0},
			Scale:     mgl32.Vec3{0.25, 1.0, 0.6},
			Color:     mgl32.Vec4{0.14, 0.29, 0.20, 1},
			PickGroup: PickBackpack,
		},
		{
			Name:      "strap",
			Kind:      KindBox,
			Position:  base.Add(rotY(mgl32.Vec3{-0.4, 1.2, -0.45}, yaw)),
			Rotation:  mgl32.Vec3{8, yaw, 0},
			Scale:     mgl32.Vec3{0.25, 2.2, 0.08},
			Color:     mgl32.Vec4{0.10, 0.20, 0.14, 1},
			PickGroup: PickBackpack,
		},
		{
			Name:      "strap",
			Kind:      KindBox,
			Position:  base.Add(rotY(mgl32.Vec3{0.4, 1.2, -0.45}, yaw)),
			Rotation:  mgl32.Vec3{8, yaw, 0},
			Scale:     mgl32.Vec3{0.25, 2.2, 0.08},
			Color:     mgl32.Vec4{0.10, 0.20, 0.14, 1},
			PickGroup: PickBackpack,
		},
	}
}

func buildLogPile() []Object {
	return []Object{
		{
			Name:      "stacked log",
			Kind:      KindCylinder,
			Position:  mgl32.Vec3{2.6, 0.26, 1.6},
			Rotation:  mgl32.Vec3{0, 25, 90},
			Scale:     mgl32.Vec3{0.26, 2.4, 0.26},
			Color:     mgl32.Vec4{0.34, 0.22, 0.12, 1},
			Texture:   "bark",
			PickGroup: PickLogPile,
		},
		{
			Name:      "stacked log",
			Kind:      KindCylinder,
			Position:  mgl32.Vec3{2.8, 0.26, 2.1},
			Rotation:  mgl32.Vec3{0, 15, 90},
			Scale:     mgl32.Vec3{0.24, 2.2, 0.24},
			Color:     mgl32.Vec4{0.30, 0.19, 0.10, 1},
			Texture:   "bark",
			PickGroup: PickLogPile,
		},
		{
			Name:      "stacked log",
			Kind:      KindCylinder,
			Position:  mgl32.Vec3{2.7, 0.70, 1.85},
			Rotation:  mgl32.Vec3{0, 20, 90},
			Scale:     mgl32.Vec3{0.24, 2.0, 0.24},
			Color:     mgl32.Vec4{0.36, 0.24, 0.13, 1},
			Texture:   "bark",
			PickGroup: PickLogPile,
		},
	}
}

func buildLantern() []Object {
	base := mgl32.Vec3{-0.5, 0, -3.6}
	return []Object{
		{
			Name:      "lantern base",
			Kind:      KindCylinder,
			Position:  base,
			Scale:     mgl32.Vec3{0.22, 0.08, 0.22},
			Color:     mgl32.Vec4{0.2, 0.2, 0.22, 1},
			PickGroup: PickLantern,
		},
		{
			Name:      "lantern glass",
			Kind:      KindBox,
			Position:  mgl32.Vec3{base[0], 0.32, base[2]},
			Scale:     mgl32.Vec3{0.3, 0.45, 0.3},
			Color:     mgl32.Vec4{1.0, 0.85, 0.45, 0.9},
			Emissive:  true,
			PickGroup: PickLantern,
		},
		{
			Name:      "lantern cap",
			Kind:      KindCone,
			Position:  mgl32.Vec3{base[0], 0.56, base[2]},
			Scale:     mgl32.Vec3{0.24, 0.18, 0.24},
			Color:     mgl32.Vec4{0.2, 0.2, 0.22, 1},
			PickGroup: PickLantern,
		},
	}
}

func buildPineTree() []Object {
	base := mgl32.Vec3{6, 0, -6}
	const foliageRadius = 3.5

	objs := []Object{
		{
			Name:      "pine trunk",
			Kind:      KindCylinder,
			Position:  base,
			Scale:     mgl32.Vec3{0.6, 4, 0.6},
			Color:     mgl32.Vec4{0.30, 0.20, 0.12, 1},
			Texture:   "bark",
			PickGroup: unpickable,
		},
	}

	// Stacked foliage cones shrinking with height, each with a small
	// sphere cap softening the transition.
	layerY := []float32{1.5, 3.0, 4.5, 6.0}
	for i, y := range layerY {
		shrink := 1 - float32(i)*0.22
		r := foliageRadius * shrink
		h := 2.6 * shrink
		objs = append(objs,
			Object{
				Name:      "pine foliage",
				Kind:      KindCone,
				Position:  mgl32.Vec3{base[0], y, base[2]},
				Scale:     mgl32.Vec3{r, h, r},
				Color:     mgl32.Vec4{0.08, 0.25, 0.12, 1},
				PickGroup: unpickable,
			},
			Object{
				Name:      "pine cap",
				Kind:      KindSphere,
				Position:  mgl32.Vec3{base[0], y + h, base[2]},
				Scale:     mgl32.Vec3{r * 0.25, r * 0.18, r * 0.25},
				Color:     mgl32.Vec4{0.09, 0.27, 0.13, 1},
				PickGroup: unpickable,
			},
		)
	}
	return objs
}

func buildMoon() []Object {
	return []Object{
		{
			Name:      "moon",
			Kind:      KindSphere,
			Position:  mgl32.Vec3{0.5, 10.2, -6},
			Scale:     mgl32.Vec3{0.75, 0.75, 0.75},
			Color:     mgl32.Vec4{0.92, 0.95, 1.0, 1},
			Texture:   "moon",
			Emissive:  true,
			Additive:  true,
			PickGroup: unpickable,
		},
	}
}

func rotY(v mgl32.Vec3, deg float32) mgl32.Vec3 {
	rad := mgl32.DegToRad(deg)
	c, s := math32.Cos(rad), math32.Sin(rad)
	return mgl32.Vec3{v[0]*c + v[2]*s, v[1], -v[0]*s + v[2]*c}
}
