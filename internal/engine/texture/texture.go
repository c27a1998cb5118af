// Package texture loads image files into OpenGL textures, with
// procedural fallbacks so the viewer runs without any assets on disk.
package texture

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
	xdraw "golang.org/x/image/draw"

	"github.com/hollowpine/campsite/internal/logger"
)

// Manager maps texture tags to GL texture handles.
type Manager struct {
	dir      string
	textures map[string]uint32
}

// NewManager creates a texture manager rooted at dir.
func NewManager(dir string) *Manager {
	return &Manager{
		dir:      dir,
		textures: make(map[string]uint32),
	}
}

// Load reads the given file, decodes it and uploads it under tag. When
// the file is missing or undecodable a procedural fallback is uploaded
// instead so draw calls never bind texture 0.
func (m *Manager) Load(tag, filename string) {
	path := filepath.Join(m.dir, filename)

	img, err := decodeFile(path)
	if err != nil {
		logger.Warn("texture missing, using fallback",
			zap.String("tag", tag),
			zap.String("path", path),
			zap.Error(err),
		)
		img = FallbackImage(tag, 64)
	}

	rgba := ToRGBA(img)
	rgba = ScaleToPow2(rgba)

	m.textures[tag] = upload(rgba)
}

// Get returns the GL handle for a tag, or the fallback texture if the
// tag was never loaded.
func (m *Manager) Get(tag string) uint32 {
	if id, ok := m.textures[tag]; ok {
		return id
	}
	// Lazily create a visible "missing" texture for unknown tags.
	id := upload(ToRGBA(FallbackImage(tag, 64)))
	m.textures[tag] = id
	return id
}

// Bind binds the tag's texture to the given texture unit.
func (m *Manager) Bind(tag string, unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, m.Get(tag))
}

// Destroy releases all GL textures.
func (m *Manager) Destroy() {
	for _, id := range m.textures {
		gl.DeleteTextures(1, &id)
	}
	m.textures = make(map[string]uint32)
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// upload pushes an RGBA image to the GPU with mipmaps and trilinear
// filtering.
func upload(rgba *image.RGBA) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	b := rgba.Bounds()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&rgba.Pix[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id
}

// ToRGBA converts any decoded image into RGBA pixel layout.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(rgba, rgba.Bounds(), img, b.Min, xdraw.Src)
	return rgba
}

// ScaleToPow2 rescales an image to the nearest power-of-two dimensions
// (at most 2048) so mipmapping behaves on older GL drivers. Images that
// are already power-of-two pass through untouched.
func ScaleToPow2(rgba *image.RGBA) *image.RGBA {
	b := rgba.Bounds()
	w, h := b.Dx(), b.Dy()
	pw, ph := nearestPow2(w), nearestPow2(h)
	if pw == w && ph == h {
		return rgba
	}

	dst := image.NewRGBA(image.Rect(0, 0, pw, ph))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), rgba, b, xdraw.Src, nil)
	return dst
}

// nearestPow2 returns the nearest power of two in [1, 2048].
func nearestPow2(n int) int {
	if n < 1 {
		return 1
	}
	p := 1
	for p < n && p < 2048 {
		p <<= 1
	}
	if p == n || p == 2048 {
		return p
	}
	// Pick the closer of p and p/2.
	if p-n < n-p/2 {
		return p
	}
	return p / 2
}

// FallbackImage builds a checkerboard tinted by a hash of the tag, so
// each missing texture is distinguishable at a glance.
func FallbackImage(tag string, size int) *image.RGBA {
	var hash uint32 = 2166136261
	for _, c := range []byte(tag) {
		hash ^= uint32(c)
		hash *= 16777619
	}
	base := color.RGBA{
		R: uint8(96 + hash%128),
		G: uint8(96 + (hash>>8)%128),
		B: uint8(96 + (hash>>16)%128),
		A: 255,
	}
	dark := color.RGBA{R: base.R / 2, G: base.G / 2, B: base.B / 2, A: 255}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cell := size / 8
	if cell < 1 {
		cell = 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.SetRGBA(x, y, base)
			} else {
				img.SetRGBA(x, y, dark)
			}
		}
	}
	return img
}
