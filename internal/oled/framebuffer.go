// Package oled holds a 1-bit framebuffer shaped like the keyboard's OLED.
package oled

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// Framebuffer is a packed width x height grid of on/off pixels. It
// implements ripple.Surface and remembers whether it changed since the last
// flush.
type Framebuffer struct {
	width  int
	height int
	bits   []uint64
	dirty  bool
}

// New allocates a blank framebuffer.
func New(width, height int) *Framebuffer {
	n := (width*height + 63) / 64
	return &Framebuffer{width: width, height: height, bits: make([]uint64, n), dirty: true}
}

func (f *Framebuffer) Width() int  { return f.width }
func (f *Framebuffer) Height() int { return f.height }

// Plot sets one pixel. Out-of-range coordinates are ignored.
func (f *Framebuffer) Plot(x, y uint8, on bool) {
	if int(x) >= f.width || int(y) >= f.height {
		return
	}
	f.dirty = true
	i := int(y)*f.width + int(x)
	if on {
		f.bits[i/64] |= 1 << (i % 64)
	} else {
		f.bits[i/64] &^= 1 << (i % 64)
	}
}

// Clear turns every pixel off.
func (f *Framebuffer) Clear() {
	f.dirty = true
	clear(f.bits)
}

// At reports whether the pixel at (x, y) is lit.
func (f *Framebuffer) At(x, y int) bool {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return false
	}
	i := y*f.width + x
	return f.bits[i/64]&(1<<(i%64)) != 0
}

// Lit counts the lit pixels.
func (f *Framebuffer) Lit() int {
	n := 0
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			if f.At(x, y) {
				n++
			}
		}
	}
	return n
}

// Flush reports whether anything was plotted or cleared since the previous
// Flush and resets the flag.
func (f *Framebuffer) Flush() bool {
	d := f.dirty
	f.dirty = false
	return d
}

// WriteRGBA fills dst (4 bytes per pixel, row-major) with on/off colours.
// dst must hold at least width*height*4 bytes.
func (f *Framebuffer) WriteRGBA(dst []byte, on, off color.RGBA) {
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			c := off
			if f.At(x, y) {
				c = on
			}
			i := (y*f.width + x) * 4
			dst[i+0] = c.R
			dst[i+1] = c.G
			dst[i+2] = c.B
			dst[i+3] = c.A
		}
	}
}

// Image renders the framebuffer as an RGBA image.
func (f *Framebuffer) Image(on, off color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	f.WriteRGBA(img.Pix, on, off)
	return img
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
