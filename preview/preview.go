// Package preview draws a top-down picture of a river mesh.
//
// The strip is projected onto the XZ plane (X to the right, Z down the
// image) and scaled to fit the image with a margin.
package preview

import (
	"io"
	"math"

	"github.com/alexozer/river"
	"github.com/alexozer/river/intersect"
	"github.com/gogpu/gg"
	"github.com/ungerik/go3d/float64/vec3"
)

type Options struct {
	Width, Height int

	// empty border around the strip, in pixels
	Margin float64

	// hex colors
	Background, Fill, Edge string
}

func DefaultOptions() Options {
	return Options{
		Width:      512,
		Height:     512,
		Margin:     16,
		Background: "#f4efe1",
		Fill:       "#3a78c2",
		Edge:       "#1d3c61",
	}
}

// projection maps mesh XZ coordinates to image pixels
type projection struct {
	minX, minZ float64
	scale      float64
	offX, offY float64
}

func fit(mesh *river.Mesh, width, height int, margin float64) projection {
	bb := intersect.BoundingBox{}
	if !bb.AddRange(mesh.Points).Initialized() {
		return projection{scale: 1}
	}

	minX, minZ := bb.Min[0], bb.Min[2]
	maxX, maxZ := bb.Max[0], bb.Max[2]

	availW := math.Max(float64(width)-2*margin, 1)
	availH := math.Max(float64(height)-2*margin, 1)
	dx, dz := maxX-minX, maxZ-minZ

	scale := 1.0
	switch {
	case dx > 0 && dz > 0:
		scale = math.Min(availW/dx, availH/dz)
	case dx > 0:
		scale = availW / dx
	case dz > 0:
		scale = availH / dz
	}

	// center the drawing in the free space
	return projection{
		minX:  minX,
		minZ:  minZ,
		scale: scale,
		offX:  margin + (availW-dx*scale)/2,
		offY:  margin + (availH-dz*scale)/2,
	}
}

func (this *projection) apply(p *vec3.T) (float64, float64) {
	return this.offX + (p[0]-this.minX)*this.scale, this.offY + (p[2]-this.minZ)*this.scale
}

// Render draws the mesh into a new context. The caller owns the context
// and must Close it.
func Render(mesh *river.Mesh, opts Options) (*gg.Context, error) {
	dc := gg.NewContext(opts.Width, opts.Height)
	dc.ClearWithColor(gg.Hex(opts.Background))

	proj := fit(mesh, opts.Width, opts.Height, opts.Margin)

	dc.SetHexColor(opts.Fill)
	for _, face := range mesh.Faces {
		for i, iPt := range face {
			x, y := proj.apply(&mesh.Points[iPt])
			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.ClosePath()

		if err := dc.Fill(); err != nil {
			dc.Close()
			return nil, err
		}
	}

	// left rail on even vertices, right rail on odd ones
	dc.SetHexColor(opts.Edge)
	dc.SetLineWidth(1.5)
	for rail := 0; rail < 2 && len(mesh.Points) >= 4; rail++ {
		for i := rail; i < len(mesh.Points); i += 2 {
			x, y := proj.apply(&mesh.Points[i])
			if i < 2 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}

		if err := dc.Stroke(); err != nil {
			dc.Close()
			return nil, err
		}
	}

	river.Logger().Debug("river preview rendered",
		"width", opts.Width, "height", opts.Height, "faces", len(mesh.Faces))

	return dc, nil
}

// WritePNG renders the mesh and encodes it as PNG
func WritePNG(w io.Writer, mesh *river.Mesh, opts Options) error {
	dc, err := Render(mesh, opts)
	if err != nil {
		return err
	}
	defer dc.Close()

	return dc.EncodePNG(w)
}
