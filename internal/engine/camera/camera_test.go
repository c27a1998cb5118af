package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDefaultLooksIntoScene(t *testing.T) {
	c := New()

	// Yaw -90 with a slight downward pitch: mostly -Z, a little -Y.
	if c.Front.Z() >= 0 {
		t.Errorf("default front Z = %f, want negative (into the scene)", c.Front.Z())
	}
	if c.Front.Y() >= 0 {
		t.Errorf("default front Y = %f, want negative (looking down)", c.Front.Y())
	}
	if d := c.Front.Len(); d < 0.999 || d > 1.001 {
		t.Errorf("front vector length = %f, want 1", d)
	}
}

func TestPitchClamp(t *testing.T) {
	c := New()
	c.ProcessMouse(0, 10000)
	if c.Pitch != 89 {
		t.Errorf("pitch = %f, want clamped to 89", c.Pitch)
	}
	c.ProcessMouse(0, -100000)
	if c.Pitch != -89 {
		t.Errorf("pitch = %f, want clamped to -89", c.Pitch)
	}
}

func TestMoveForward(t *testing.T) {
	c := New()
	c.Pitch = 0
	c.updateFront()
	start := c.Position

	c.Move(1, 0, 0, 0.5)

	want := start.Add(c.Front.Mul(c.MovementSpeed * 0.5))
	if c.Position.Sub(want).Len() > 1e-5 {
		t.Errorf("position = %v, want %v", c.Position, want)
	}
}

func TestAdjustSpeedClamps(t *testing.T) {
	c := New()
	c.AdjustSpeed(-1000)
	if c.MovementSpeed != 1 {
		t.Errorf("speed = %f, want clamped to 1", c.MovementSpeed)
	}
	c.AdjustSpeed(1000)
	if c.MovementSpeed != 100 {
		t.Errorf("speed = %f, want clamped to 100", c.MovementSpeed)
	}
}

func TestProjectionToggle(t *testing.T) {
	c := New()
	if c.IsOrthographic() {
		t.Error("camera should start in perspective mode")
	}
	c.SetOrthographic()
	if !c.IsOrthographic() {
		t.Error("SetOrthographic did not switch mode")
	}

	ortho := c.ProjectionMatrix(16.0 / 9.0)
	if ortho[15] != 1 {
		t.Errorf("ortho matrix [15] = %f, want 1", ortho[15])
	}

	c.SetPerspective()
	persp := c.ProjectionMatrix(16.0 / 9.0)
	if persp[15] != 0 {
		t.Errorf("perspective matrix [15] = %f, want 0", persp[15])
	}
	if persp[11] != -1 {
		t.Errorf("perspective matrix [11] = %f, want -1", persp[11])
	}
}

func TestInvViewProjectionRoundTrip(t *testing.T) {
	c := New()
	vp := c.ProjectionMatrix(1).Mul4(c.ViewMatrix())
	inv := c.InvViewProjection(1)

	// vp * inv should be close to identity.
	id := vp.Mul4(inv)
	want := mgl32.Ident4()
	for i := 0; i < 16; i++ {
		diff := id[i] - want[i]
		if diff < -1e-4 || diff > 1e-4 {
			t.Fatalf("vp*inv element %d = %f, want %f", i, id[i], want[i])
		}
	}
}
