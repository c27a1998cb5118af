package mesh

import (
	"testing"

	"github.com/chewxy/math32"
)

func checkBounds(t *testing.T, d Data) {
	t.Helper()
	for i := 0; i < d.VertexCount(); i++ {
		px := d.Vertices[i*Stride]
		py := d.Vertices[i*Stride+1]
		pz := d.Vertices[i*Stride+2]

		const eps = 1e-5
		if px < d.Min.X()-eps || px > d.Max.X()+eps ||
			py < d.Min.Y()-eps || py > d.Max.Y()+eps ||
			pz < d.Min.Z()-eps || pz > d.Max.Z()+eps {
			t.Fatalf("vertex %d (%f,%f,%f) outside declared bounds %v-%v", i, px, py, pz, d.Min, d.Max)
		}
	}
}

func checkNormals(t *testing.T, d Data) {
	t.Helper()
	for i := 0; i < d.VertexCount(); i++ {
		nx := d.Vertices[i*Stride+3]
		ny := d.Vertices[i*Stride+4]
		nz := d.Vertices[i*Stride+5]

		l := math32.Sqrt(nx*nx + ny*ny + nz*nz)
		if math32.Abs(l-1) > 1e-4 {
			t.Fatalf("vertex %d normal length %f, want 1", i, l)
		}
	}
}

func checkIndices(t *testing.T, d Data) {
	t.Helper()
	if len(d.Indices)%3 != 0 {
		t.Fatalf("index count %d not a multiple of 3", len(d.Indices))
	}
	n := uint32(d.VertexCount())
	for _, idx := range d.Indices {
		if idx >= n {
			t.Fatalf("index %d out of range (have %d vertices)", idx, n)
		}
	}
}

func TestPlane(t *testing.T) {
	d := Plane()
	if d.VertexCount() != 4 {
		t.Errorf("plane vertex count = %d, want 4", d.VertexCount())
	}
	if len(d.Indices) != 6 {
		t.Errorf("plane index count = %d, want 6", len(d.Indices))
	}
	checkBounds(t, d)
	checkNormals(t, d)
	checkIndices(t, d)
}

func TestBox(t *testing.T) {
	d := Box()
	if d.VertexCount() != 24 {
		t.Errorf("box vertex count = %d, want 24", d.VertexCount())
	}
	if len(d.Indices) != 36 {
		t.Errorf("box index count = %d, want 36", len(d.Indices))
	}
	checkBounds(t, d)
	checkNormals(t, d)
	checkIndices(t, d)
}

func TestCylinder(t *testing.T) {
	d := Cylinder(36)
	checkBounds(t, d)
	checkNormals(t, d)
	checkIndices(t, d)

	// 36 side quads, 36 top fan triangles, 36 bottom fan triangles.
	want := 36*2*3 + 36*3 + 36*3
	if len(d.Indices) != want {
		t.Errorf("cylinder index count = %d, want %d", len(d.Indices), want)
	}
}

func TestCylinderClampsSegments(t *testing.T) {
	d := Cylinder(1)
	if d.VertexCount() == 0 {
		t.Fatal("degenerate segment count produced no geometry")
	}
	checkIndices(t, d)
}

func TestCone(t *testing.T) {
	d := Cone(36)
	checkBounds(t, d)
	checkNormals(t, d)
	checkIndices(t, d)

	// Apex at (0,1,0) must be present.
	found := false
	for i := 0; i < d.VertexCount(); i++ {
		if d.Vertices[i*Stride] == 0 && d.Vertices[i*Stride+1] == 1 && d.Vertices[i*Stride+2] == 0 {
			found = true
			break
		}
	}
	if !found {
		t.Error("cone has no apex vertex at (0,1,0)")
	}
}

func TestSphere(t *testing.T) {
	d := Sphere(18, 36)
	checkBounds(t, d)
	checkNormals(t, d)
	checkIndices(t, d)

	// All vertices must lie on the unit sphere.
	for i := 0; i < d.VertexCount(); i++ {
		px := d.Vertices[i*Stride]
		py := d.Vertices[i*Stride+1]
		pz := d.Vertices[i*Stride+2]
		r := math32.Sqrt(px*px + py*py + pz*pz)
		if math32.Abs(r-1) > 1e-4 {
			t.Fatalf("sphere vertex %d radius %f, want 1", i, r)
		}
	}
}
