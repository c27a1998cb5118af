package mesh

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is shape data uploaded to the GPU.
type Mesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	// Local-space bounds of the unit shape, used to derive world AABBs.
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Upload creates VAO/VBO/EBO for the shape data.
// Must be called with a current GL context.
func Upload(d Data) *Mesh {
	m := &Mesh{
		indexCount: int32(len(d.Indices)),
		Min:        d.Min,
		Max:        d.Max,
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(d.Vertices)*4, unsafe.Pointer(&d.Vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(d.Indices)*4, unsafe.Pointer(&d.Indices[0]), gl.STATIC_DRAW)

	stride := int32(Stride * 4)

	// Position (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)

	// Normal (location = 1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	// UV (location = 2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(6*4)))
	gl.EnableVertexAttribArray(2)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return m
}

// Draw renders the mesh with the currently bound program.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Destroy releases GPU resources.
func (m *Mesh) Destroy() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
}

// Library holds one uploaded instance of each primitive; a shape is
// uploaded once no matter how many times it is drawn.
type Library struct {
	Plane    *Mesh
	Box      *Mesh
	Cylinder *Mesh
	Cone     *Mesh
	Sphere   *Mesh
}

// NewLibrary uploads all primitives. Must be called with a current GL
// context.
func NewLibrary() *Library {
	return &Library{
		Plane:    Upload(Plane()),
		Box:      Upload(Box()),
		Cylinder: Upload(Cylinder(36)),
		Cone:     Upload(Cone(36)),
		Sphere:   Upload(Sphere(18, 36)),
	}
}

// Destroy releases all primitive meshes.
func (l *Library) Destroy() {
	for _, m := range []*Mesh{l.Plane, l.Box, l.Cylinder, l.Cone, l.Sphere} {
		if m != nil {
			m.Destroy()
		}
	}
}
