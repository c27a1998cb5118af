package scene

import (
	"fmt"
	"sort"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/hollowpine/campsite/internal/engine/camera"
	"github.com/hollowpine/campsite/internal/engine/debug"
	"github.com/hollowpine/campsite/internal/engine/mesh"
	"github.com/hollowpine/campsite/internal/engine/picking"
	"github.com/hollowpine/campsite/internal/engine/shader"
	"github.com/hollowpine/campsite/internal/engine/texture"
	"github.com/hollowpine/campsite/internal/scene/shaders"
)

// Scene owns the campsite geometry, its textures and shader, and the
// selection state driven by picking.
type Scene struct {
	lib      *mesh.Library
	textures *texture.Manager
	program  *shader.Program

	objects  []Object
	registry *Registry

	selection  *debug.SelectionBox
	selected   int
	showBounds bool
}

// New uploads meshes, loads textures, compiles the scene shader and
// places every object. texturesDir may hold ground.jpg, bark.jpg,
// stone.jpg, canvas.jpg and moon.jpg; missing files fall back to
// generated checkerboards.
func New(texturesDir string, showBounds bool) (*Scene, error) {
	program, err := shader.Compile(shaders.SceneVertexShader, shaders.SceneFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("compiling scene shader: %w", err)
	}

	selection, err := debug.NewSelectionBox()
	if err != nil {
		program.Destroy()
		return nil, fmt.Errorf("creating selection box: %w", err)
	}

	textures := texture.NewManager(texturesDir)
	for _, tag := range []string{"ground", "bark", "stone", "canvas", "moon"} {
		textures.Load(tag, tag+".jpg")
	}

	objects := BuildObjects()
	s := &Scene{
		lib:        mesh.NewLibrary(),
		textures:   textures,
		program:    program,
		objects:    objects,
		registry:   NewRegistry(objects),
		selection:  selection,
		selected:   picking.NoObject,
		showBounds: showBounds,
	}
	return s, nil
}

// Registry returns the pick bounds provider for the scene.
func (s *Scene) Registry() *Registry {
	return s.registry
}

// Selected returns the currently selected pick group, or
// picking.NoObject.
func (s *Scene) Selected() int {
	return s.selected
}

// PickAt casts a ray through the given screen pixel and updates the
// selection. Returns the picked group ID, picking.NoObject on miss.
func (s *Scene) PickAt(screenX, screenY, viewportW, viewportH float32, cam *camera.FlyCamera) int {
	aspect := viewportW / viewportH
	ray := picking.ScreenRay(screenX, screenY, viewportW, viewportH, cam.InvViewProjection(aspect))
	s.selected = picking.Pick(ray, s.registry)
	return s.selected
}

// ClearSelection drops the current selection.
func (s *Scene) ClearSelection() {
	s.selected = picking.NoObject
}

// Draw renders the scene. Opaque objects go first, then additive ones
// (flames, moon) sorted far-to-near with depth writes off.
func (s *Scene) Draw(cam *camera.FlyCamera, aspect, t float32) {
	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix(aspect)

	s.program.Use()
	s.program.SetMat4("uView", view)
	s.program.SetMat4("uProjection", proj)
	s.program.SetInt("uTexture", 0)
	s.program.SetFloat("uFlameTime", t)
	s.program.SetVec3("uAmbient", AmbientColor)
	s.program.SetVec3("uMoonDir", MoonDirection())
	s.program.SetVec3("uMoonColor", MoonLightColor)
	s.program.SetVec3("uFirePos", FireLightPos.Add(FireJitter(t)))
	s.program.SetVec3("uFireColor", FireLightColor)
	s.program.SetFloat("uFireIntensity", FireFlicker(t)*3.0)
	s.program.SetVec3("uViewPos", cam.Position)

	var additive []int
	for i := range s.objects {
		if s.objects[i].Additive {
			additive = append(additive, i)
			continue
		}
		s.drawObject(&s.objects[i])
	}

	camPos := cam.Position
	sort.Slice(additive, func(a, b int) bool {
		da := s.objects[additive[a]].Position.Sub(camPos).LenSqr()
		db := s.objects[additive[b]].Position.Sub(camPos).LenSqr()
		return da > db
	})

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	gl.DepthMask(false)
	for _, i := range additive {
		s.drawObject(&s.objects[i])
	}
	gl.DepthMask(true)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.BLEND)

	s.drawSelection(proj.Mul4(view))
}

func (s *Scene) drawObject(o *Object) {
	s.program.SetMat4("uModel", o.ModelMatrix())
	s.program.SetVec4("uColor", o.Color)
	s.program.SetBool("uEmissive", o.Emissive)
	s.program.SetBool("uFlame", o.Flame)
	if o.Flame {
		s.program.SetFloat("uFlameSeed", o.FlameSeed)
		s.program.SetFloat("uFlameAmp", 0.12)
	}

	if o.Texture != "" {
		s.program.SetBool("uUseTexture", true)
		s.textures.Bind(o.Texture, 0)
	} else {
		s.program.SetBool("uUseTexture", false)
	}

	s.meshFor(o.Kind).Draw()
}

func (s *Scene) meshFor(k Kind) *mesh.Mesh {
	switch k {
	case KindPlane:
		return s.lib.Plane
	case KindBox:
		return s.lib.Box
	case KindCylinder:
		return s.lib.Cylinder
	case KindCone:
		return s.lib.Cone
	default:
		return s.lib.Sphere
	}
}

func (s *Scene) drawSelection(viewProj mgl32.Mat4) {
	if s.selected == picking.NoObject && !s.showBounds {
		return
	}

	if s.showBounds {
		for _, c := range s.registry.Candidates() {
			s.selection.Draw(debug.Pad(c.Bounds, debug.DefaultPadding), viewProj)
		}
		return
	}

	if bounds, ok := s.registry.Bounds(s.selected); ok {
		s.selection.Draw(debug.Pad(bounds, debug.DefaultPadding), viewProj)
	}
}

// Destroy releases all GPU resources held by the scene.
func (s *Scene) Destroy() {
	s.lib.Destroy()
	s.textures.Destroy()
	s.program.Destroy()
	s.selection.Destroy()
}
