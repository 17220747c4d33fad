// Package placeholder renders the gradient images used when a group or profile
// is created without its own pictures.
package placeholder

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"strings"
	"unicode"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"mutualaid_backend/internals/helpers/storage"
)

type Size struct {
	Width, Height int
}

var (
	Thumbnail = Size{Width: 170, Height: 170}
	Cover     = Size{Width: 820, Height: 312}
	Avatar    = Thumbnail
)

const textScale = 2

// RandomColor returns an opaque random color.
func RandomColor() color.NRGBA {
	return color.NRGBA{R: uint8(rand.Intn(256)), G: uint8(rand.Intn(256)), B: uint8(rand.Intn(256)), A: 0xff}
}

// Render draws a vertical gradient from start (top) to end (middle and below)
// with text centered in white, encoded as PNG.
func Render(text string, size Size, start, end color.NRGBA) ([]byte, error) {
	if size.Width <= 0 || size.Height <= 0 {
		return nil, fmt.Errorf("invalid placeholder size %dx%d", size.Width, size.Height)
	}

	canvas := imaging.New(size.Width, size.Height, end)
	half := size.Height / 2
	for y := 0; y < half; y++ {
		c := lerp(start, end, float64(y)/float64(half))
		for x := 0; x < size.Width; x++ {
			canvas.SetNRGBA(x, y, c)
		}
	}

	if label := renderText(text); label != nil {
		scale := textScale
		for scale > 1 && label.Bounds().Dx()*scale > size.Width-8 {
			scale--
		}
		b := label.Bounds()
		scaled := imaging.Resize(label, b.Dx()*scale, b.Dy()*scale, imaging.NearestNeighbor)
		canvas = imaging.OverlayCenter(canvas, scaled, 1.0)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, canvas, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode placeholder: %w", err)
	}
	return buf.Bytes(), nil
}

func renderText(text string) *image.NRGBA {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	height := face.Metrics().Height.Ceil()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(0, face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
	return img
}

func lerp(a, b color.NRGBA, t float64) color.NRGBA {
	mix := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 0xff}
}

// Initials returns up to two upper-case initials, e.g. "Nguyen Van" -> "NV".
func Initials(first, last string) string {
	var out []rune
	for _, s := range []string{first, last} {
		for _, r := range strings.TrimSpace(s) {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				out = append(out, unicode.ToUpper(r))
				break
			}
		}
	}
	return string(out)
}

// Generator renders placeholders and stores them below Folder.
type Generator struct {
	Store  storage.Storage
	Folder string
}

func NewGenerator(store storage.Storage, folder string) *Generator {
	return &Generator{Store: store, Folder: folder}
}

// Generate stores a freshly rendered placeholder and returns its URL.
func (g *Generator) Generate(ctx context.Context, text string, size Size) (string, error) {
	if g == nil || g.Store == nil {
		return "", fmt.Errorf("placeholder generator has no storage")
	}
	data, err := Render(text, size, RandomColor(), RandomColor())
	if err != nil {
		return "", err
	}
	key := storage.GenerateUniqueFilename(g.Folder, fmt.Sprintf("%dx%d.png", size.Width, size.Height))
	return g.Store.Put(ctx, key, "image/png", data)
}

// Discard removes a placeholder returned by Generate that ended up unused.
func (g *Generator) Discard(ctx context.Context, u string) error {
	if g == nil || g.Store == nil || u == "" {
		return nil
	}
	return g.Store.Delete(ctx, u)
}
