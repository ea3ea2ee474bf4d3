package game

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/ncruces/zenity"
	"golang.org/x/image/draw"

	"github.com/iburimskiy/oled-ripple/internal/oled"
)

// upscale enlarges img by an integer factor without smoothing so every OLED
// pixel stays a crisp square.
func upscale(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := oled.EncodePNG(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// saveScreenshotDialog asks where to store the current frame. Cancelling the
// dialog is not an error.
func saveScreenshotDialog(img image.Image, factor int) (string, error) {
	path, err := zenity.SelectFileSave(
		zenity.Title("Save OLED screenshot"),
		zenity.Filename("ripple.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return path, writePNG(path, upscale(img, factor))
}

// openClickDialog asks for a click sample.
func openClickDialog() (string, error) {
	path, err := zenity.SelectFile(
		zenity.Title("Open click sound"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return path, nil
}
