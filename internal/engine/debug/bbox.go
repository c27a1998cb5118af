// Package debug provides selection feedback and capture utilities.
package debug

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/hollowpine/campsite/internal/engine/picking"
	"github.com/hollowpine/campsite/internal/engine/shader"
)

// WireframeVertexCount is the number of line vertices in a box outline
// (12 edges, 2 endpoints each).
const WireframeVertexCount = 24

// DefaultPadding expands the selection outline slightly so it doesn't
// z-fight with the object's own faces.
const DefaultPadding = 0.05

// WireframeVertices returns line-list vertices outlining an AABB,
// three floats per vertex.
func WireframeVertices(box picking.AABB) []float32 {
	minX, minY, minZ := box.Min.X(), box.Min.Y(), box.Min.Z()
	maxX, maxY, maxZ := box.Max.X(), box.Max.Y(), box.Max.Z()

	return []float32{
		// Bottom face
		minX, minY, minZ, maxX, minY, minZ,
		maxX, minY, minZ, maxX, minY, maxZ,
		maxX, minY, maxZ, minX, minY, maxZ,
		minX, minY, maxZ, minX, minY, minZ,
		// Top face
		minX, maxY, minZ, maxX, maxY, minZ,
		maxX, maxY, minZ, maxX, maxY, maxZ,
		maxX, maxY, maxZ, minX, maxY, maxZ,
		minX, maxY, maxZ, minX, maxY, minZ,
		// Vertical edges
		minX, minY, minZ, minX, maxY, minZ,
		maxX, minY, minZ, maxX, maxY, minZ,
		maxX, minY, maxZ, maxX, maxY, maxZ,
		minX, minY, maxZ, minX, maxY, maxZ,
	}
}

// Pad returns the box grown by pad on every side.
func Pad(box picking.AABB, pad float32) picking.AABB {
	grow := mgl32.Vec3{pad, pad, pad}
	return picking.AABB{
		Min: box.Min.Sub(grow),
		Max: box.Max.Add(grow),
	}
}

const selectionVertexShader = `
#version 410 core
layout (location = 0) in vec3 aPos;
uniform mat4 uViewProj;
void main() {
	gl_Position = uViewProj * vec4(aPos, 1.0);
}
`

const selectionFragmentShader = `
#version 410 core
uniform vec4 uColor;
out vec4 FragColor;
void main() {
	FragColor = uColor;
}
`

// SelectionBox draws a wireframe outline around the picked object.
type SelectionBox struct {
	program *shader.Program
	vao     uint32
	vbo     uint32
	Color   mgl32.Vec4
}

// NewSelectionBox compiles the outline shader and allocates a dynamic
// vertex buffer. Must be called with a current GL context.
func NewSelectionBox() (*SelectionBox, error) {
	program, err := shader.Compile(selectionVertexShader, selectionFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("selection shader: %w", err)
	}

	sb := &SelectionBox{
		program: program,
		Color:   mgl32.Vec4{1.0, 0.85, 0.2, 1.0}, // ember yellow
	}

	gl.GenVertexArrays(1, &sb.vao)
	gl.BindVertexArray(sb.vao)

	gl.GenBuffers(1, &sb.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, sb.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, WireframeVertexCount*3*4, nil, gl.DYNAMIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return sb, nil
}

// Draw renders the outline for box with the given view-projection.
func (sb *SelectionBox) Draw(box picking.AABB, viewProj mgl32.Mat4) {
	verts := WireframeVertices(Pad(box, DefaultPadding))

	gl.BindBuffer(gl.ARRAY_BUFFER, sb.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, unsafe.Pointer(&verts[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	sb.program.Use()
	sb.program.SetMat4("uViewProj", viewProj)
	sb.program.SetVec4("uColor", sb.Color)

	gl.LineWidth(1.5)
	gl.BindVertexArray(sb.vao)
	gl.DrawArrays(gl.LINES, 0, WireframeVertexCount)
	gl.BindVertexArray(0)
}

// Destroy releases GL resources.
func (sb *SelectionBox) Destroy() {
	if sb.vao != 0 {
		gl.DeleteVertexArrays(1, &sb.vao)
	}
	if sb.vbo != 0 {
		gl.DeleteBuffers(1, &sb.vbo)
	}
	if sb.program != nil {
		sb.program.Destroy()
	}
}
