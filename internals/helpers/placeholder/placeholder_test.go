package placeholder

import (
	"bytes"
	"context"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"mutualaid_backend/internals/helpers/storage"
)

func TestRender(t *testing.T) {
	start := color.NRGBA{R: 255, A: 255}
	end := color.NRGBA{B: 255, A: 255}

	for _, size := range []Size{Thumbnail, Cover} {
		data, err := Render("Group", size, start, end)
		if err != nil {
			t.Fatalf("Render %v: %v", size, err)
		}
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		b := img.Bounds()
		if b.Dx() != size.Width || b.Dy() != size.Height {
			t.Fatalf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), size.Width, size.Height)
		}

		top := color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA)
		bottom := color.NRGBAModel.Convert(img.At(0, size.Height-1)).(color.NRGBA)
		if top != start {
			t.Errorf("top pixel = %v, want %v", top, start)
		}
		if bottom != end {
			t.Errorf("bottom pixel = %v, want %v", bottom, end)
		}
	}

	if _, err := Render("x", Size{}, start, end); err == nil {
		t.Fatal("zero size accepted")
	}
}

func TestInitials(t *testing.T) {
	cases := []struct{ first, last, want string }{
		{"nguyen", "van", "NV"},
		{"  (anh)", "", "A"},
		{"", "", ""},
		{"Đức", "ánh", "ĐÁ"},
	}
	for _, tc := range cases {
		if got := Initials(tc.first, tc.last); got != tc.want {
			t.Errorf("Initials(%q, %q) = %q, want %q", tc.first, tc.last, got, tc.want)
		}
	}
}

func TestGeneratorStoresAndDiscards(t *testing.T) {
	store, err := storage.NewLocalStorage(t.TempDir(), storage.LocalURLPrefix)
	if err != nil {
		t.Fatalf("storage: %v", err)
	}
	gen := NewGenerator(store, "placeholders")
	ctx := context.Background()

	u, err := gen.Generate(ctx, "AB", Avatar)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.HasPrefix(u, "/uploads/placeholders/") || !strings.HasSuffix(u, "-170x170.png") {
		t.Fatalf("url = %q", u)
	}
	if err := gen.Discard(ctx, u); err != nil {
		t.Fatalf("Discard: %v", err)
	}

	var nilGen *Generator
	if _, err := nilGen.Generate(ctx, "AB", Avatar); err == nil {
		t.Fatal("nil generator produced an image")
	}
	if err := nilGen.Discard(ctx, u); err != nil {
		t.Fatalf("nil Discard: %v", err)
	}
}
