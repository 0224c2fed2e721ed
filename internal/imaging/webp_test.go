package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/chai2010/webp"
)

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestToWebP_ScalesDownKeepingAspect(t *testing.T) {
	out, err := ToWebP(bytes.NewReader(pngOf(t, 400, 200)), 100, DefaultQuality)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	img, err := webp.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode webp: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 50 {
		t.Fatalf("expected 100x50, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestToWebP_KeepsSmallImages(t *testing.T) {
	out, err := ToWebP(bytes.NewReader(pngOf(t, 30, 60)), 100, DefaultQuality)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	img, _ := webp.Decode(bytes.NewReader(out))
	if b := img.Bounds(); b.Dx() != 30 || b.Dy() != 60 {
		t.Fatalf("expected 30x60, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestToWebP_RejectsNonImages(t *testing.T) {
	_, err := ToWebP(strings.NewReader("definitely not an image"), 100, DefaultQuality)
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}
