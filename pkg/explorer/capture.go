package explorer

import (
	"fmt"
	"image"
	"log"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sudorandom/population-explorer/pkg/choropleth"
)

// captureFileName names a saved frame, e.g. population-20250102-150405-frame.png.
func captureFileName(suffix string, timestamp time.Time) string {
	return fmt.Sprintf("population-%s-%s.png", timestamp.Format("20060102-150405"), suffix)
}

func (e *Engine) captureFrame(img *ebiten.Image, suffix string, timestamp time.Time) {
	if e.FrameCaptureDir == "" {
		log.Printf("[explorer] Frame capture requested but no capture directory is set")
		return
	}
	path := filepath.Join(e.FrameCaptureDir, captureFileName(suffix, timestamp))

	// Copy the pixels now; the screen image is reused on the next frame.
	rgba := image.NewRGBA(img.Bounds())
	img.ReadPixels(rgba.Pix)

	go func() {
		if err := choropleth.WritePNG(path, rgba); err != nil {
			log.Printf("[explorer] Error saving capture: %v", err)
			return
		}
		log.Printf("[explorer] Captured frame: %s", path)
	}()
}
