package entity

import (
	"github.com/inamate/inamate/editor-go/internal/geom"
	"github.com/inamate/inamate/editor-go/internal/typeid"
)

// Image is a bitmap placed by its left-top corner. Decoding and drawing the
// bitmap is left to the renderer; the kernel only needs its size.
type Image struct {
	Base

	Source string
	Width  float64
	Height float64

	// position is the left-top corner relative to the rotate origin.
	position geom.Point
}

// NewImage places an image with its left-top corner at position and pivots
// it on its center.
func NewImage(position geom.Point, source string, width, height float64) *Image {
	img := &Image{
		Base:     newBase(typeid.NewEntityID()),
		Source:   source,
		Width:    width,
		Height:   height,
		position: position,
	}
	img.SetRotateOrigin(geom.Pt(position.X+0.5*width, position.Y+0.5*height))
	return img
}

func (img *Image) Kind() Kind { return KindImage }

// Position returns the left-top corner in the local frame.
func (img *Image) Position() geom.Point { return img.position }

func (img *Image) BoundWorld() geom.Rectangle {
	center := geom.Pt(img.position.X+0.5*img.Width, img.position.Y+0.5*img.Height)
	return geom.NewRectangle(center, img.Width, img.Height)
}

func (img *Image) SetRotateOrigin(origin geom.Point) error {
	img.position = geom.Pt(img.position.X-origin.X, img.position.Y-origin.Y)
	img.coord.SetBase(origin)
	return nil
}
