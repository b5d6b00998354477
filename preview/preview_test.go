package preview

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/alexozer/river"
	"github.com/tdewolff/test"
	"github.com/ungerik/go3d/float64/vec3"
)

func straightMesh() *river.Mesh {
	dir := river.LookRotation(river.AxisRight)
	return river.BuildMesh([]river.ControlPoint{
		{Position: vec3.Zero, Width: 2, Direction: dir},
		{Position: vec3.T{10, 0, 0}, Width: 2, Direction: dir},
	}, river.DefaultUVScale)
}

func sameColor(img image.Image, x, y int, want color.Color) bool {
	r0, g0, b0, _ := img.At(x, y).RGBA()
	r1, g1, b1, _ := want.RGBA()

	near := func(a, b uint32) bool {
		a, b = a>>8, b>>8
		return a <= b+2 && b <= a+2
	}
	return near(r0, r1) && near(g0, g1) && near(b0, b1)
}

func TestFit(t *testing.T) {
	proj := fit(straightMesh(), 512, 512, 16)
	test.FloatDiff(t, proj.scale, 48, 1e-9)

	x, y := proj.apply(&vec3.T{0, 0, -2})
	test.FloatDiff(t, x, 16, 1e-9)
	test.FloatDiff(t, y, 160, 1e-9)

	x, y = proj.apply(&vec3.T{10, 0, 2})
	test.FloatDiff(t, x, 496, 1e-9)
	test.FloatDiff(t, y, 352, 1e-9)

	empty := fit(&river.Mesh{}, 512, 512, 16)
	test.Float(t, empty.scale, 1)
}

func TestRender(t *testing.T) {
	opts := DefaultOptions()
	dc, err := Render(straightMesh(), opts)
	test.Error(t, err)
	defer dc.Close()

	img := dc.Image()
	test.T(t, img.Bounds(), image.Rect(0, 0, 512, 512))

	fill := color.NRGBA{0x3a, 0x78, 0xc2, 0xff}
	background := color.NRGBA{0xf4, 0xef, 0xe1, 0xff}

	test.That(t, sameColor(img, 100, 300, fill), "inside first face", img.At(100, 300))
	test.That(t, sameColor(img, 400, 200, fill), "inside second face", img.At(400, 200))
	test.That(t, sameColor(img, 2, 2, background), "corner", img.At(2, 2))
	test.That(t, sameColor(img, 256, 100, background), "beside the strip", img.At(256, 100))
}

func TestRenderEmpty(t *testing.T) {
	opts := DefaultOptions()
	opts.Width, opts.Height = 64, 32

	dc, err := Render(&river.Mesh{}, opts)
	test.Error(t, err)
	defer dc.Close()

	test.That(t, sameColor(dc.Image(), 32, 16, color.NRGBA{0xf4, 0xef, 0xe1, 0xff}))
}

func TestWritePNG(t *testing.T) {
	opts := DefaultOptions()
	opts.Width, opts.Height = 128, 96

	var buf bytes.Buffer
	test.Error(t, WritePNG(&buf, straightMesh(), opts))

	img, err := png.Decode(&buf)
	test.Error(t, err)
	test.T(t, img.Bounds(), image.Rect(0, 0, 128, 96))
}
