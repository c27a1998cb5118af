package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/nfnt/resize"
)

// ThumbnailWidth is the pixel width of the small preview written next
// to each screenshot.
const ThumbnailWidth = 320

// ScreenshotCapture writes framebuffer captures to disk.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
}

// NewScreenshotCapture creates a capture handler writing into outputDir.
func NewScreenshotCapture(outputDir, prefix string) *ScreenshotCapture {
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
	}
}

// CaptureFromPixels writes a PNG plus a resized thumbnail from raw RGBA
// framebuffer data. The rows are flipped vertically since OpenGL reads
// pixels bottom-up. Returns the full-size image path.
func (sc *ScreenshotCapture) CaptureFromPixels(pixels []byte, width, height int) (string, error) {
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		srcY := height - 1 - y
		copy(img.Pix[y*img.Stride:y*img.Stride+rowSize], pixels[srcY*rowSize:srcY*rowSize+rowSize])
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	base := fmt.Sprintf("%s_%s", sc.prefix, timestamp)

	fullPath := filepath.Join(sc.outputDir, base+".png")
	if err := writePNG(fullPath, img); err != nil {
		return "", err
	}

	thumb := resize.Resize(ThumbnailWidth, 0, img, resize.Lanczos3)
	thumbPath := filepath.Join(sc.outputDir, base+"_thumb.png")
	if err := writePNG(thumbPath, thumb); err != nil {
		return "", err
	}

	return fullPath, nil
}

func writePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}
