// Package app wires the window, input, camera, scene and audio into
// the main loop.
package app

import (
	"fmt"
	"time"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/hollowpine/campsite/internal/config"
	"github.com/hollowpine/campsite/internal/engine/audio"
	"github.com/hollowpine/campsite/internal/engine/camera"
	"github.com/hollowpine/campsite/internal/engine/debug"
	"github.com/hollowpine/campsite/internal/engine/input"
	"github.com/hollowpine/campsite/internal/engine/picking"
	"github.com/hollowpine/campsite/internal/engine/window"
	"github.com/hollowpine/campsite/internal/logger"
	"github.com/hollowpine/campsite/internal/scene"
)

// App is the running application.
type App struct {
	cfg     *config.Config
	running bool

	window      *window.Window
	input       *input.Input
	cam         *camera.FlyCamera
	scene       *scene.Scene
	audio       *audio.Manager
	screenshots *debug.ScreenshotCapture

	mouseCaptured bool
	elapsed       float32
}

// New creates the window and GL context, then builds the scene.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Bool("fullscreen", cfg.Graphics.Fullscreen),
	)

	a := &App{cfg: cfg}

	var err error
	a.window, err = window.New(window.Config{
		Title:      "Campsite",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	// Scene needs the GL context the window just created.
	a.scene, err = scene.New(cfg.Scene.TexturesDir, cfg.Scene.ShowPickBounds)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("building scene: %w", err)
	}

	a.cam = camera.New()
	a.cam.FOVDegrees = cfg.Graphics.FOVDegrees

	a.input = input.New()
	a.screenshots = debug.NewScreenshotCapture(cfg.Scene.ScreenshotDir, "campsite")

	a.audio = audio.New()
	if cfg.Audio.CrackleEnabled {
		if err := a.audio.Init(); err != nil {
			logger.Warn("audio unavailable", zap.Error(err))
		} else {
			a.audio.SetCrackleVolume(cfg.Audio.CrackleVolume)
			a.audio.SetMuted(cfg.Audio.Muted)
			if err := a.audio.PlayCrackle(); err != nil {
				logger.Warn("crackle playback failed", zap.Error(err))
			}
		}
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)

	logger.Info("initialized")
	return a, nil
}

// Run drives the input-update-render loop until quit.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	for a.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now
		a.elapsed += dt

		if a.input.Update() {
			a.running = false
			break
		}
		for _, event := range a.input.Events() {
			a.handleEvent(event)
		}
		a.moveCamera(dt)

		a.render()
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
	return nil
}

func (a *App) handleEvent(event input.Event) {
	switch event.Type {
	case input.EventWindowResize:
		gl.Viewport(0, 0, int32(event.Width), int32(event.Height))
	case input.EventKeyDown:
		a.handleKey(event.Key)
	case input.EventMouseDown:
		if event.Button == sdl.BUTTON_LEFT && !a.mouseCaptured {
			a.pickAt(event.MouseX, event.MouseY)
		}
		if event.Button == sdl.BUTTON_RIGHT {
			a.setMouseCaptured(true)
		}
	case input.EventMouseUp:
		if event.Button == sdl.BUTTON_RIGHT {
			a.setMouseCaptured(false)
		}
	case input.EventMouseMove:
		if a.mouseCaptured {
			a.cam.ProcessMouse(float32(event.RelX), float32(-event.RelY))
		}
	case input.EventMouseWheel:
		a.cam.AdjustSpeed(event.Wheel * 2)
	}
}

func (a *App) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		a.running = false
	case sdl.SCANCODE_P:
		a.cam.SetPerspective()
		logger.Info("projection", zap.String("mode", "perspective"))
	case sdl.SCANCODE_O:
		a.cam.SetOrthographic()
		logger.Info("projection", zap.String("mode", "orthographic"))
	case sdl.SCANCODE_M:
		a.audio.SetMuted(!a.audio.IsMuted())
		logger.Info("audio", zap.Bool("muted", a.audio.IsMuted()))
	case sdl.SCANCODE_BACKSPACE:
		a.scene.ClearSelection()
	case sdl.SCANCODE_F12:
		a.captureScreenshot()
	}
}

func (a *App) moveCamera(dt float32) {
	forward := a.input.Axis(sdl.SCANCODE_S, sdl.SCANCODE_W)
	right := a.input.Axis(sdl.SCANCODE_A, sdl.SCANCODE_D)
	up := a.input.Axis(sdl.SCANCODE_Q, sdl.SCANCODE_E)
	if forward != 0 || right != 0 || up != 0 {
		a.cam.Move(forward, right, up, dt)
	}
}

func (a *App) pickAt(x, y int) {
	w, h := a.window.Size()
	id := a.scene.PickAt(float32(x), float32(y), float32(w), float32(h), a.cam)
	if id == picking.NoObject {
		logger.Info("pick", zap.String("object", "none"))
		return
	}
	logger.Info("pick",
		zap.Int("id", id),
		zap.String("object", scene.Name(id)),
	)
}

func (a *App) setMouseCaptured(captured bool) {
	a.mouseCaptured = captured
	a.window.CaptureMouse(captured)
}

func (a *App) render() {
	gl.ClearColor(0.02, 0.03, 0.08, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	w, h := a.window.Size()
	aspect := float32(w) / float32(h)
	a.scene.Draw(a.cam, aspect, a.elapsed)
}

func (a *App) captureScreenshot() {
	w, h := a.window.Size()
	pixels := make([]byte, w*h*4)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))

	path, err := a.screenshots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close releases the scene, audio and window.
func (a *App) Close() {
	logger.Info("shutting down")
	if a.audio != nil {
		a.audio.Close()
	}
	if a.scene != nil {
		a.scene.Destroy()
	}
	if a.window != nil {
		a.window.Close()
	}
}
