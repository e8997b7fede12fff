package blogfront

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 0x82, G: 0x57, B: 0xe6, A: 0xff})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestProcessCoverScalesWideImages(t *testing.T) {
	img, data, err := processCover(bytes.NewReader(pngBytes(t, 1600, 400)), "My Cover.PNG")
	if err != nil {
		t.Fatalf("processCover failed: %v", err)
	}
	if img.Filename != "my-cover.jpg" {
		t.Errorf("Filename = %q", img.Filename)
	}
	if img.Width != maxCoverWidth || img.Height != 200 {
		t.Errorf("size = %dx%d, want %dx200", img.Width, img.Height, maxCoverWidth)
	}
	if img.Size != len(data) {
		t.Errorf("Size = %d, len(data) = %d", img.Size, len(data))
	}
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a JPEG: %v", err)
	}
	if cfg.Width != maxCoverWidth {
		t.Errorf("encoded width = %d", cfg.Width)
	}
}

func TestProcessCoverKeepsSmallImages(t *testing.T) {
	img, _, err := processCover(bytes.NewReader(pngBytes(t, 300, 100)), "---.png")
	if err != nil {
		t.Fatalf("processCover failed: %v", err)
	}
	if img.Width != 300 || img.Height != 100 {
		t.Errorf("size = %dx%d, want 300x100", img.Width, img.Height)
	}
	if img.Filename != "cover.jpg" {
		t.Errorf("Filename = %q, want cover.jpg", img.Filename)
	}
}

func TestProcessCoverRejectsNonImages(t *testing.T) {
	_, _, err := processCover(strings.NewReader("<html><body>nope</body></html>"), "x.png")
	if err == nil || !strings.Contains(err.Error(), "unsupported image type") {
		t.Errorf("err = %v, want unsupported image type", err)
	}
}
