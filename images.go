package blogfront

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"
)

const (
	maxCoverWidth = 800
	jpegQuality   = 80
	maxUploadSize = 10 << 20
	uploadsSubdir = "uploads"
)

// coverTypes are the upload formats with a registered decoder.
var coverTypes = []string{"image/jpeg", "image/png", "image/gif"}

// processCover decodes an upload, scales it down to maxCoverWidth and
// re-encodes it as JPEG. The returned Image has no unique filename yet.
func processCover(src io.Reader, originalName string) (Image, []byte, error) {
	raw, err := io.ReadAll(src)
	if err != nil {
		return Image{}, nil, fmt.Errorf("read image: %w", err)
	}
	if mime := mimetype.Detect(raw); !mimetype.EqualsAny(mime.String(), coverTypes...) {
		return Image{}, nil, fmt.Errorf("unsupported image type %s", mime.String())
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return Image{}, nil, fmt.Errorf("decode image: %w", err)
	}

	img = scaleToWidth(img, maxCoverWidth)
	var out bytes.Buffer
	if err := jpeg.Encode(&out, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return Image{}, nil, fmt.Errorf("encode jpeg: %w", err)
	}

	name := Slugify(strings.TrimSuffix(originalName, filepath.Ext(originalName)))
	if name == "" {
		name = "cover"
	}
	b := img.Bounds()
	return Image{
		Filename:     name + ".jpg",
		OriginalName: originalName,
		Width:        b.Dx(),
		Height:       b.Dy(),
		Size:         out.Len(),
		UploadedAt:   time.Now().UTC().Format(time.RFC3339),
	}, out.Bytes(), nil
}

// scaleToWidth keeps the aspect ratio and never upscales.
func scaleToWidth(img image.Image, width int) image.Image {
	b := img.Bounds()
	if b.Dx() <= width {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, b.Dy()*width/b.Dx()))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

func (a *App) uploadsDir() string {
	return filepath.Join(a.staticDir, uploadsSubdir)
}

// freeFilename returns name, or name with a "-N" suffix, such that neither
// the uploads directory nor the store has it.
func (a *App) freeFilename(name string) (string, error) {
	stem, ext := strings.TrimSuffix(name, filepath.Ext(name)), filepath.Ext(name)
	for n := 1; ; n++ {
		candidate := name
		if n > 1 {
			candidate = stem + "-" + strconv.Itoa(n) + ext
		}
		taken, err := a.Store.ImageExists(candidate)
		if err != nil {
			return "", err
		}
		if _, err := os.Stat(filepath.Join(a.uploadsDir(), candidate)); !errors.Is(err, fs.ErrNotExist) {
			taken = true
		}
		if !taken {
			return candidate, nil
		}
	}
}

func (a *App) handleImageUpload(c echo.Context) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return c.String(http.StatusBadRequest, "No image file provided")
	}
	if fh.Size > maxUploadSize {
		return c.String(http.StatusBadRequest, "File too large (max 10MB)")
	}
	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	img, data, err := processCover(io.LimitReader(f, maxUploadSize), fh.Filename)
	if err != nil {
		return c.String(http.StatusBadRequest, "Invalid image: "+err.Error())
	}
	if img.Filename, err = a.freeFilename(img.Filename); err != nil {
		return err
	}
	if err := os.MkdirAll(a.uploadsDir(), 0o755); err != nil {
		return fmt.Errorf("create uploads dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(a.uploadsDir(), img.Filename), data, 0o644); err != nil {
		return fmt.Errorf("write image: %w", err)
	}
	if err := a.Store.SaveImage(img); err != nil {
		return err
	}
	c.Logger().Infof("uploaded cover %s (%dx%d)", img.Filename, img.Width, img.Height)
	return a.handleImageList(c)
}

func (a *App) handleImageDelete(c echo.Context) error {
	name := filepath.Base(c.Param("filename"))
	if name == "." || name == "/" || name == ".." {
		return c.String(http.StatusBadRequest, "Filename required")
	}
	err := os.Remove(filepath.Join(a.uploadsDir(), name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err := a.Store.DeleteImage(name); err != nil {
		return err
	}
	return a.handleImageList(c)
}

func (a *App) handleImageList(c echo.Context) error {
	images, err := a.Store.ListImages()
	if err != nil {
		return err
	}
	return Render(c, a.Views.AdminImages(images, CsrfToken(c)))
}
